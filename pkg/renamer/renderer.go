// Package renamer renders output filenames for image layers from a
// declarative pattern string.
//
// A pattern mixes literal text with bracketed fields:
//
//	r := renamer.New("export_[layer path, -]_[001]")
//	names := r.Render(items)
//
// Fields that cannot be evaluated (unknown name, wrong arguments, invalid
// regex) are substituted with their literal source text instead of failing,
// so a half-edited pattern still produces visible output for every item.
//
// Rendering a sequence of items is stateful: number fields advance counters
// from item to item, so one Render call (or one State passed to successive
// RenderOne calls) processes items strictly in order. A Renderer itself is
// read-only after construction and may be shared by concurrent passes as
// long as each pass uses its own State.
package renamer

import (
	"strings"
	"time"

	"github.com/kamilburda/gimp-export-layers/pkg/pattern"
)

// Renderer renders one filename pattern over items.
type Renderer struct {
	pattern       pattern.Pattern
	fileExtension string
	now           func() time.Time
}

// Option configures a Renderer using the functional options pattern.
type Option func(*Renderer)

// WithFileExtension sets the output file extension that the %i extension
// mode compares against (for example "png"). A leading period is accepted
// and ignored; the comparison is case-insensitive.
func WithFileExtension(extension string) Option {
	return func(r *Renderer) {
		r.fileExtension = strings.ToLower(strings.TrimPrefix(extension, "."))
	}
}

// WithNow sets the clock used by the current date field. Intended for
// tests; the default is time.Now.
func WithNow(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

// New tokenizes the pattern string and returns a Renderer for it.
// Construction never fails: malformed pattern text is kept as literal
// output per the fail-open policy.
func New(patternString string, opts ...Option) *Renderer {
	r := &Renderer{
		pattern: pattern.Tokenize(patternString, IsField),
		now:     time.Now,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Pattern returns the tokenized pattern.
func (r *Renderer) Pattern() pattern.Pattern {
	return r.pattern
}

// Render renders the pattern over all items in order and returns one name
// per item. Each call is an independent pass with fresh numbering state.
func (r *Renderer) Render(items []Item) []string {
	state := NewState(items)

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, r.RenderOne(item, state))
	}

	return names
}

// RenderOne renders the pattern for a single item, advancing the given
// pass state. Callers driving an incremental preview create the State with
// NewState over the full item sequence and feed items in sequence order.
func (r *Renderer) RenderOne(item Item, state *State) string {
	var b strings.Builder

	for _, segment := range r.pattern.Segments {
		if segment.Field == nil {
			b.WriteString(segment.Literal)
			continue
		}
		b.WriteString(r.evalField(segment.Field, item, state))
	}

	return b.String()
}

// evalField evaluates one field call, substituting the field's literal
// source text when the call cannot be evaluated.
func (r *Renderer) evalField(field *pattern.Field, item Item, state *State) string {
	literal := "[" + field.Raw + "]"

	spec := lookupField(field.Name)
	if spec == nil {
		return literal
	}
	if !spec.accepts(len(field.Args)) {
		return literal
	}

	value, ok := spec.mustEval()(r, state, item, field)
	if !ok {
		return literal
	}

	return value
}
