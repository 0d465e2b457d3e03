package renamer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kamilburda/gimp-export-layers/pkg/pattern"
)

// replaceFlags maps flag argument names (case-insensitive) to Go inline
// regexp flags.
var replaceFlags = map[string]string{
	"ignorecase": "i",
	"multiline":  "m",
	"dotall":     "s",
}

// evalReplace evaluates a target field to a string and performs a regex
// substitution on it.
//
// Arguments: target field (which may carry its own arguments, e.g.
// "[layer name, %e]"), search pattern, replacement, optional replacement
// count (0 or omitted replaces all occurrences), optional flag names
// (ignorecase, multiline, dotall). Replacement text may reference capture
// groups with $1 or ${name}.
//
// The number field is not a valid target: its value only exists relative to
// the numbering state, so there is no standalone string to post-process.
// Invalid targets, unknown flags and search patterns that fail to compile
// all fall back to the field's literal source text.
func evalReplace(r *Renderer, st *State, item Item, field *pattern.Field) (string, bool) {
	args := field.Args

	targetName, targetArgs := pattern.ParseField(args[0])

	spec := lookupField(targetName)
	if spec == nil || isNumberField(targetName) {
		return "", false
	}
	if !spec.accepts(len(targetArgs)) {
		return "", false
	}

	target, ok := spec.mustEval()(r, st, item, &pattern.Field{
		Name: targetName,
		Args: targetArgs,
		Raw:  args[0],
	})
	if !ok {
		return "", false
	}

	// A malformed count is ignored, but the argument still occupies the
	// count position: flags start at the fifth argument either way.
	count := 0
	if len(args) > 3 {
		if parsed, err := strconv.Atoi(args[3]); err == nil {
			count = parsed
		}
	}

	var flags []string
	if len(args) > 4 {
		for _, flagName := range args[4:] {
			flag, ok := replaceFlags[strings.ToLower(flagName)]
			if !ok {
				return "", false
			}
			flags = append(flags, flag)
		}
	}

	searchPattern := args[1]
	if len(flags) > 0 {
		searchPattern = "(?" + strings.Join(flags, "") + ")" + searchPattern
	}

	re, err := regexp.Compile(searchPattern)
	if err != nil {
		return "", false
	}

	return replaceCount(re, target, args[2], count), true
}

// replaceCount substitutes matches of re in src with the expanded
// replacement template, stopping after count matches. A count of zero or
// less replaces all matches.
func replaceCount(re *regexp.Regexp, src, replacement string, count int) string {
	if count <= 0 {
		return re.ReplaceAllString(src, replacement)
	}

	matches := re.FindAllStringSubmatchIndex(src, count)

	var b strings.Builder
	last := 0
	for _, match := range matches {
		b.WriteString(src[last:match[0]])
		b.Write(re.ExpandString(nil, replacement, src, match))
		last = match[1]
	}
	b.WriteString(src[last:])

	return b.String()
}
