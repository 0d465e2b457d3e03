package renamer

import (
	"fmt"

	"github.com/kamilburda/gimp-export-layers/pkg/pattern"
)

// noArgLimit marks a field accepting any number of arguments.
const noArgLimit = -1

// evalFunc evaluates one field call for one item. The second return value
// reports success; false makes the renderer substitute the field's literal
// source text instead (the fail-open policy for user input).
type evalFunc func(r *Renderer, st *State, item Item, field *pattern.Field) (string, bool)

// FieldSpec describes one field supported in patterns: its name, argument
// counts and usage examples. UIs list these to populate field pickers and
// inline help.
type FieldSpec struct {
	// Name is the canonical field name. The number field is matched by its
	// digit pattern ("001", "5", ...) rather than by name.
	Name string

	// MinArgs and MaxArgs bound the accepted argument count. MaxArgs of -1
	// means any number of arguments.
	MinArgs int
	MaxArgs int

	// Usage is a short insertion template, e.g. "[layer path, -, (%c)]".
	Usage string

	// Examples are "pattern -> output" lines for display.
	Examples []string

	match func(name string) bool
	eval  evalFunc
}

// accepts reports whether the given argument count is within bounds.
func (s *FieldSpec) accepts(argCount int) bool {
	if argCount < s.MinArgs {
		return false
	}
	return s.MaxArgs == noArgLimit || argCount <= s.MaxArgs
}

// fieldTable is the static field registry. Order matters: the first entry
// whose name matches a field call wins.
var fieldTable = []FieldSpec{
	{
		Name:    "number",
		MinArgs: 0,
		MaxArgs: noArgLimit,
		Usage:   "image[001]",
		Examples: []string{
			"[001] -> 001, 002, ...",
			"[1] -> 1, 2, ...",
			"[005] -> 005, 006, ...",
			"To continue numbering across layer groups, use %n.",
			"[001, %n] -> 001, 002, ...",
			"To use descending numbers, use %d (with the number of layers being 5):",
			"[000, %d] -> 005, 004, ...",
			"[10, %d2] -> 10, 09, ...",
		},
		match: isNumberField,
		eval:  evalNumber,
	},
	{
		Name:    "layer name",
		MinArgs: 0,
		MaxArgs: 1,
		Usage:   "[layer name]",
		Examples: []string{
			"Suppose a layer is named \"Frame.png\" and the file extension is \"png\".",
			"[layer name] -> Frame",
			"[layer name, %e] -> Frame.png",
			"[layer name, %i] -> Frame.png",
			"For a layer named \"Frame.jpg\", [layer name, %i] -> Frame",
		},
		eval: evalLayerName,
	},
	{
		Name:    "image name",
		MinArgs: 0,
		MaxArgs: 1,
		Usage:   "[image name]",
		Examples: []string{
			"Suppose the image is named \"Image.xcf\".",
			"[image name] -> Image",
			"[image name, %e] -> Image.xcf",
		},
		eval: evalImageName,
	},
	{
		Name:    "layer path",
		MinArgs: 0,
		MaxArgs: 3,
		Usage:   "[layer path]",
		Examples: []string{
			"Suppose a layer named \"Left\" has parent groups \"Hands\" and \"Body\".",
			"[layer path] -> Body-Hands-Left",
			"[layer path, _] -> Body_Hands_Left",
			"[layer path, _, (%c)] -> (Body)_(Hands)_(Left)",
			"For a layer named \"Left.jpg\", [layer path, -, %c, %e] -> Body-Hands-Left.jpg",
		},
		eval: evalLayerPath,
	},
	{
		Name:    "replace",
		MinArgs: 3,
		MaxArgs: noArgLimit,
		Usage:   "[replace]",
		Examples: []string{
			"Suppose a layer is named \"Animal copy #1\".",
			"[replace, [layer name], [a], [b] ] -> Animbl copy #1",
			"Search patterns use Go regular expression syntax.",
			"[replace, [layer name], [ copy(?: #[[0-9]]+)*$], [] ] -> Animal",
			"An optional count and flags can follow the replacement:",
			"[replace, [layer name], [a], [b], 1, ignorecase] -> bnimal copy #1",
		},
	},
	{
		Name:    "tags",
		MinArgs: 0,
		MaxArgs: noArgLimit,
		Usage:   "[tags]",
		Examples: []string{
			"Suppose a layer has tags \"left\", \"middle\" and \"right\".",
			"[tags] -> left-middle-right",
			"[tags, left, right] -> left-right",
			"[tags, _, (%t)] -> (left)_(middle)_(right)",
			"[tags, _, (%t), left, right] -> (left)_(right)",
		},
		eval: evalTags,
	},
	{
		Name:    "current date",
		MinArgs: 0,
		MaxArgs: 1,
		Usage:   "[current date]",
		Examples: []string{
			"[current date] -> 2019-01-28",
			"Custom formats use strftime directives:",
			"[current date, %m.%d.%Y_%H-%M] -> 01.28.2019_19-04",
		},
		eval: evalCurrentDate,
	},
	{
		Name:    "attributes",
		MinArgs: 1,
		MaxArgs: 2,
		Usage:   "[attributes]",
		Examples: []string{
			"Suppose a layer has width 1000, height 270, offsets 0 and 40,",
			"in an image of width 1000 and height 500.",
			"[attributes, %w-%h-%x-%y] -> 1000-270-0-40",
			"[attributes, %w-%h-%x-%y, %pc] -> 1.0-0.54-0.0-0.08",
			"[attributes, %w-%h-%x-%y, %pc1] -> 1.0-0.5-0.0-0.1",
			"[attributes, %iw-%ih] -> 1000-500",
		},
		eval: evalAttributes,
	},
}

// evalReplace looks fields up in fieldTable, so assigning it in the composite
// literal would create an initialization cycle; register it here instead.
func init() {
	for i := range fieldTable {
		if fieldTable[i].Name == "replace" {
			fieldTable[i].eval = evalReplace
		}
	}
}

// Fields returns descriptors for all supported fields, in registry order.
func Fields() []FieldSpec {
	specs := make([]FieldSpec, len(fieldTable))
	copy(specs, fieldTable)
	return specs
}

// IsField reports whether name refers to a supported field. Digit-only names
// refer to the number field.
func IsField(name string) bool {
	return lookupField(name) != nil
}

// lookupField returns the first registry entry matching the field name, or
// nil if the name is not recognized.
func lookupField(name string) *FieldSpec {
	for i := range fieldTable {
		spec := &fieldTable[i]
		if spec.match != nil {
			if spec.match(name) {
				return spec
			}
			continue
		}
		if spec.Name == name {
			return spec
		}
	}
	return nil
}

// isNumberField reports whether the field name is a digit pattern such as
// "001", which selects the number field.
func isNumberField(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// mustEval returns the evaluator for a registry entry. A registry entry
// without an evaluator is a configuration bug, not user input, so this
// panics instead of falling back.
func (s *FieldSpec) mustEval() evalFunc {
	if s.eval == nil {
		panic(fmt.Sprintf("renamer: field %q has no evaluator", s.Name))
	}
	return s.eval
}
