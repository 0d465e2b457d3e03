package layertree

import (
	"fmt"
	"strings"
)

// ValidationError represents a schema-level validation error in a tree
// file (invalid image dimensions, too many layers, excessive nesting).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LayerError represents an error specific to an individual layer.
type LayerError struct {
	// Path locates the layer: ancestor names followed by the layer name,
	// or a "[i]" index for unnamed layers.
	Path    []string
	Field   string
	Message string
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("layer %q: %s: %s", strings.Join(e.Path, "/"), e.Field, e.Message)
}
