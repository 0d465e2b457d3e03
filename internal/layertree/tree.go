// Package layertree loads layer-tree descriptions from YAML files and
// flattens them into the item sequence consumed by the renamer.
//
// A tree file describes one image and its layers:
//
//	image:
//	  name: Image.xcf
//	  width: 1000
//	  height: 500
//	  layers:
//	    - name: foreground
//	      tags: [left]
//	      width: 100
//	      height: 50
//	    - name: Corners
//	      layers:
//	        - name: corner
//
// A layer with a "layers" list (or an explicit "group: true") is a layer
// group; its children inherit it as a path component.
package layertree

import (
	"fmt"

	"github.com/kamilburda/gimp-export-layers/pkg/renamer"
)

// File represents the structure of a YAML layer-tree file.
type File struct {
	Image Image `yaml:"image"`
}

// Image describes the image the layers belong to.
type Image struct {
	// Name is the image name, typically with a file extension
	// ("Image.xcf"). May be empty.
	Name string `yaml:"name"`

	// Width and Height are the image dimensions in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Layers are the top-level layers, in stacking order.
	Layers []Layer `yaml:"layers"`
}

// Layer is one layer or layer group.
type Layer struct {
	// Name is the layer name. Required.
	Name string `yaml:"name"`

	// Tags assigned to the layer.
	Tags []string `yaml:"tags"`

	// Layer geometry in pixels.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	X      int `yaml:"x"`
	Y      int `yaml:"y"`

	// Group marks an empty layer group. Layers with children are groups
	// regardless of this flag.
	Group bool `yaml:"group"`

	// Layers are the child layers for groups.
	Layers []Layer `yaml:"layers"`
}

// IsGroup reports whether the layer is a layer group.
func (l *Layer) IsGroup() bool {
	return l.Group || len(l.Layers) > 0
}

// FlattenOptions controls which items Flatten emits.
type FlattenOptions struct {
	// IncludeGroups emits an item for each layer group in addition to its
	// children. The default emits plain layers only, matching the default
	// export behavior.
	IncludeGroups bool
}

// Flatten walks the tree depth-first in stacking order and returns one
// renamer item per exported layer. Ancestor group names become the item's
// path and image attributes are copied onto every item.
func Flatten(f *File, opts FlattenOptions) []renamer.Item {
	var items []renamer.Item
	var walk func(layers []Layer, path []string)

	walk = func(layers []Layer, path []string) {
		for _, layer := range layers {
			isGroup := layer.IsGroup()

			if !isGroup || opts.IncludeGroups {
				items = append(items, renamer.Item{
					Name:        layer.Name,
					Path:        append([]string(nil), path...),
					Tags:        layer.Tags,
					IsGroup:     isGroup,
					Width:       layer.Width,
					Height:      layer.Height,
					X:           layer.X,
					Y:           layer.Y,
					ImageWidth:  f.Image.Width,
					ImageHeight: f.Image.Height,
					ImageName:   f.Image.Name,
				})
			}

			if isGroup {
				walk(layer.Layers, append(path, layer.Name))
			}
		}
	}

	walk(f.Image.Layers, nil)

	return items
}

// Validate performs schema-level validation on the tree file. It checks
// image dimensions, layer name presence, nesting depth and total layer
// count.
func (f *File) Validate() error {
	if f.Image.Width < 0 || f.Image.Height < 0 {
		return &ValidationError{
			Field:   "image",
			Message: fmt.Sprintf("dimensions must be non-negative, got %dx%d", f.Image.Width, f.Image.Height),
		}
	}

	count := 0
	return validateLayers(f.Image.Layers, nil, 1, &count)
}

func validateLayers(layers []Layer, path []string, depth int, count *int) error {
	if depth > MaxTreeDepth {
		return &ValidationError{
			Field:   "layers",
			Message: fmt.Sprintf("nesting deeper than %d levels", MaxTreeDepth),
		}
	}

	for i, layer := range layers {
		*count++
		if *count > MaxLayerCount {
			return &ValidationError{
				Field:   "layers",
				Message: fmt.Sprintf("more than %d layers", MaxLayerCount),
			}
		}

		if layer.Name == "" {
			return &LayerError{
				Path:    append(append([]string(nil), path...), fmt.Sprintf("[%d]", i)),
				Field:   "name",
				Message: "name is required",
			}
		}

		if layer.Width < 0 || layer.Height < 0 {
			return &LayerError{
				Path:    append(append([]string(nil), path...), layer.Name),
				Field:   "size",
				Message: fmt.Sprintf("dimensions must be non-negative, got %dx%d", layer.Width, layer.Height),
			}
		}

		if len(layer.Layers) > 0 {
			err := validateLayers(layer.Layers, append(path, layer.Name), depth+1, count)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
