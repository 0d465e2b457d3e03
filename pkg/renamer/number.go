package renamer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kamilburda/gimp-export-layers/pkg/pattern"
)

// Number field flags.
const (
	// flagNoReset continues numbering across layer groups instead of
	// restarting the counter at each group boundary.
	flagNoReset = "%n"

	// flagDescending counts downwards. An optional digit suffix ("%d2")
	// overrides the padding implied by the field's digit pattern.
	flagDescending = "%d"
)

// evalNumber emits the next number for the field's counter. The field name
// is the digit pattern itself: "[001]" starts at 1 with padding 3.
//
// The counter is created on first use and keyed by (digit pattern, scope),
// where the scope is the item's parent path, or a single shared scope when
// %n is given. A descending counter whose digit pattern is all zeros starts
// at the number of items in its scope.
func evalNumber(r *Renderer, st *State, item Item, field *pattern.Field) (string, bool) {
	resetPerGroup := true
	ascending := true
	paddingOverride := -1

	for _, arg := range field.Args {
		switch {
		case arg == flagNoReset:
			resetPerGroup = false
		case strings.HasPrefix(arg, flagDescending):
			ascending = false
			if suffix := arg[len(flagDescending):]; suffix != "" {
				if p, err := strconv.Atoi(suffix); err == nil {
					paddingOverride = p
				}
			}
		default:
			return "", false
		}
	}

	scope := ""
	if resetPerGroup {
		scope = scopeKey(item.Path)
	}

	key := counterKey{digits: field.Name, scope: scope}
	c, ok := st.counters[key]
	if !ok {
		c = newCounter(st, field.Name, scope, resetPerGroup, ascending, paddingOverride)
		st.counters[key] = c
	}

	return c.emit(), true
}

func newCounter(
	st *State, digits, scope string, resetPerGroup, ascending bool, paddingOverride int,
) *counter {
	padding := len(digits)
	if paddingOverride >= 0 {
		padding = paddingOverride
	}

	// The digit pattern is guaranteed numeric by isNumberField.
	start, _ := strconv.Atoi(digits)

	step := 1
	if !ascending {
		step = -1
		if start == 0 {
			if resetPerGroup {
				start = st.scopeTotals[scope]
			} else {
				start = st.total
			}
		}
	}

	return &counter{next: start, step: step, padding: padding}
}

// padNumber zero-pads a number to the given width. Numbers wider than the
// padding are emitted in full, never truncated.
func padNumber(value, padding int) string {
	return fmt.Sprintf("%0*d", padding, value)
}
