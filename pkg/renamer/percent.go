package renamer

import (
	"math"
	"strconv"
	"strings"
)

// expandToken substitutes "%<token>" in a wrapper template with value and
// collapses "%%" to a literal "%". Any other "%" sequence is copied
// verbatim.
func expandToken(template string, token byte, value string) string {
	var b strings.Builder

	for i := 0; i < len(template); {
		if template[i] == '%' && i+1 < len(template) {
			switch template[i+1] {
			case '%':
				b.WriteByte('%')
				i += 2
				continue
			case token:
				b.WriteString(value)
				i += 2
				continue
			}
		}
		b.WriteByte(template[i])
		i++
	}

	return b.String()
}

// substitutePercent expands "%name" placeholders in a template from vars.
// Placeholder names are the longest run of identifier characters after "%";
// unknown names are left verbatim, and "%%" yields a literal "%".
func substitutePercent(template string, vars map[string]string) string {
	var b strings.Builder

	for i := 0; i < len(template); {
		if template[i] != '%' {
			b.WriteByte(template[i])
			i++
			continue
		}

		if i+1 < len(template) && template[i+1] == '%' {
			b.WriteByte('%')
			i += 2
			continue
		}

		j := i + 1
		for j < len(template) && isIdentByte(template[j], j == i+1) {
			j++
		}
		if j == i+1 {
			b.WriteByte('%')
			i++
			continue
		}

		name := template[i+1 : j]
		if value, ok := vars[name]; ok {
			b.WriteString(value)
		} else {
			b.WriteString(template[i:j])
		}
		i = j
	}

	return b.String()
}

func isIdentByte(c byte, first bool) bool {
	if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
		return true
	}
	return !first && c >= '0' && c <= '9'
}

// roundTo rounds v to the given number of decimal digits.
func roundTo(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}

// formatRatio formats a rounded ratio with the shortest decimal
// representation, keeping at least one decimal digit ("1.0", not "1").
func formatRatio(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// fileExtension returns the lowercased file extension of a name without the
// leading period, or "" if the name has none. Names consisting only of
// leading periods ("..config") have no extension.
func fileExtension(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	if strings.Trim(name[:i], ".") == "" {
		return ""
	}
	return strings.ToLower(name[i+1:])
}

// filenameRoot returns the name without its file extension.
func filenameRoot(name string) string {
	if fileExtension(name) == "" {
		return name
	}
	return name[:strings.LastIndexByte(name, '.')]
}
