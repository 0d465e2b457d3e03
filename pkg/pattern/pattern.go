// Package pattern tokenizes filename pattern strings into literal text and
// field calls.
//
// Fields are enclosed in square brackets (such as "[layer name]"). Field
// arguments are separated by commas. To insert a literal comma or space in an
// argument, enclose the argument in square brackets. To insert literal square
// brackets in an argument, enclose the argument in square brackets and double
// the inner brackets ("[[", "]]"). If the last argument is enclosed in square
// brackets, insert a space or comma between the argument and the closing
// bracket of the field.
//
// Examples, assuming a "date" field returning the current date:
//
//	"image"                     -> "image"
//	"image_[date, %Y-%m-%d]"    -> "image_2016-07-16"
//	"[[image]]"                 -> "[image]"
//	"[date, [[[%Y,%m,%d]]] ]"   -> "[2016,07,16]"
//
// Malformed syntax never fails: unmatched brackets and unknown field names
// are preserved as literal text so that a partially edited pattern still
// renders to something visible.
package pattern

import "strings"

// Field is a single field call parsed out of a pattern.
type Field struct {
	// Name is the field name, i.e. the text up to the first unescaped comma.
	Name string

	// Args are the parsed arguments with escaping resolved.
	Args []string

	// Raw is the field body exactly as written, without the enclosing
	// brackets. Renderers substitute "[" + Raw + "]" when a field call
	// cannot be evaluated.
	Raw string

	// Start and End are byte offsets into the source pattern: Start is the
	// first byte of the field body, End is the offset of the closing
	// bracket.
	Start, End int
}

// Segment is one piece of a tokenized pattern: either literal text or a
// field call.
type Segment struct {
	// Literal holds verbatim pattern text. Empty for field segments.
	Literal string

	// Field is non-nil for field segments.
	Field *Field
}

// Pattern is a tokenized pattern string.
type Pattern struct {
	// Source is the original pattern string.
	Source string

	// Segments are the literal and field pieces in order. Concatenating
	// the segments (substituting each field with its evaluated value)
	// produces the output for one item.
	Segments []Segment
}

// Tokenize splits a pattern string into literal and field segments.
//
// known, if non-nil, reports whether a field name is recognized. Bracketed
// text whose field name is not recognized is kept as literal text, as is any
// text with unmatched brackets. Tokenize never fails.
func Tokenize(pattern string, known func(name string) bool) Pattern {
	var segments []Segment

	appendLiteral := func(s string) {
		if s == "" {
			return
		}
		if n := len(segments); n > 0 && segments[n-1].Field == nil {
			segments[n-1].Literal += s
			return
		}
		segments = append(segments, Segment{Literal: s})
	}

	index := 0
	startOfField := 0
	lastLiteralStart := 0
	depth := 0

	// Emits the literal text accumulated since the last segment boundary.
	// startOfField wins over lastLiteralStart so that an unclosed or
	// rejected field is reproduced from its opening bracket.
	flush := func(end int) {
		start := lastLiteralStart
		if startOfField > start {
			start = startOfField
		}
		if start > end {
			return
		}
		appendLiteral(pattern[start:end])
	}

	for index < len(pattern) {
		switch pattern[index] {
		case '[':
			escaped := isEscaped(pattern, index, '[')
			switch {
			case depth == 0 && escaped:
				flush(index)
				appendLiteral("[")
				lastLiteralStart = index + 2
				index += 2
				continue
			case depth == 0:
				flush(index)
				startOfField = index
				depth++
			case depth == 1:
				depth++
			case escaped:
				index += 2
				continue
			default:
				depth++
			}
		case ']':
			escaped := isEscaped(pattern, index, ']')
			switch {
			case depth == 0 && escaped:
				flush(index)
				appendLiteral("]")
				lastLiteralStart = index + 2
				index += 2
				continue
			case depth == 0:
				index++
				continue
			case depth == 1:
				depth--
			case escaped:
				index += 2
				continue
			default:
				depth--
				index++
				continue
			}

			// The matching closing bracket of a field.
			raw := pattern[startOfField+1 : index]
			name, args := ParseField(raw)
			if known == nil || known(name) {
				segments = append(segments, Segment{Field: &Field{
					Name:  name,
					Args:  args,
					Raw:   raw,
					Start: startOfField + 1,
					End:   index,
				}})
			} else {
				flush(index + 1)
			}
			lastLiteralStart = index + 1
		}
		index++
	}

	flush(len(pattern))

	return Pattern{Source: pattern, Segments: segments}
}

// ParseField splits a field body (without the enclosing brackets) into the
// field name and its arguments.
//
// The name is the text up to the first unescaped comma, with surrounding
// whitespace removed. Arguments are split on unescaped commas; an argument
// enclosed in single square brackets has the brackets removed and doubled
// brackets inside it collapsed to single literal brackets. Empty arguments
// are dropped, except that a bracketed empty argument ("[]") is kept as an
// empty string.
func ParseField(s string) (name string, args []string) {
	nameEnd := strings.IndexByte(s, ',')
	if nameEnd == -1 {
		return strings.TrimSpace(s), nil
	}

	name = strings.TrimSpace(s[:nameEnd])

	// The trailing comma lets the loop below emit the last argument without
	// a special case.
	argsStr := s[nameEnd+1:] + ","

	inBracketedArg := false
	lastArgEnd := 0
	var rawArgs []string

	index := 0
	for index < len(argsStr) {
		switch argsStr[index] {
		case ',':
			if !inBracketedArg {
				rawArgs = append(rawArgs, argsStr[lastArgEnd:index])
				lastArgEnd = index + 1
			}
		case '[':
			if isEscaped(argsStr, index, '[') {
				index += 2
				continue
			}
			inBracketedArg = true
		case ']':
			if isEscaped(argsStr, index, ']') {
				index += 2
				continue
			}
			inBracketedArg = false
		}
		index++
	}

	for _, rawArg := range rawArgs {
		arg := strings.TrimSpace(rawArg)
		if arg == "" {
			continue
		}

		if arg[0] == '[' && arg[len(arg)-1] == ']' {
			arg = arg[1 : len(arg)-1]
		}
		arg = strings.ReplaceAll(arg, "[[", "[")
		arg = strings.ReplaceAll(arg, "]]", "]")

		args = append(args, arg)
	}

	return name, args
}

// FieldAtPosition returns the name of the field whose body or closing
// bracket covers the given byte position in pattern, and whether such a
// field exists. Editors use this to show help for the field under the
// cursor.
func FieldAtPosition(pattern string, position int) (string, bool) {
	if position < 0 || position > len(pattern) {
		return "", false
	}

	parsed := Tokenize(pattern, nil)
	for _, segment := range parsed.Segments {
		if segment.Field == nil {
			continue
		}
		if segment.Field.Start <= position && position <= segment.Field.End {
			return segment.Field.Name, true
		}
	}

	return "", false
}

// Reconstruct builds a pattern string from segments. Field segments are
// written back as "[name, arg1, arg2]". Literal segments produced from
// escaped brackets are written as single brackets, so the result is not
// guaranteed to re-tokenize identically for patterns using bracket escapes.
func Reconstruct(segments []Segment) string {
	var b strings.Builder

	for _, segment := range segments {
		if segment.Field == nil {
			b.WriteString(segment.Literal)
			continue
		}

		components := make([]string, 0, 1+len(segment.Field.Args))
		components = append(components, segment.Field.Name)
		components = append(components, segment.Field.Args...)

		b.WriteString("[")
		b.WriteString(strings.Join(components, ", "))
		b.WriteString("]")
	}

	return b.String()
}

// isEscaped reports whether the bracket at index is doubled, i.e. followed
// by the same symbol.
func isEscaped(s string, index int, symbol byte) bool {
	return index+1 < len(s) && s[index+1] == symbol
}
