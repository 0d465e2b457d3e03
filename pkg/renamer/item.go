package renamer

// Item is one exportable unit to be named: a layer or a layer group.
// The renderer only reads items, never mutates them.
type Item struct {
	// Name is the layer's own name.
	Name string

	// Path holds the names of the item's ancestor groups, nearest the root
	// first. Empty for top-level items.
	Path []string

	// Tags are the tags assigned to the item.
	Tags []string

	// IsGroup reports whether the item is a layer group.
	IsGroup bool

	// Layer geometry in pixels.
	Width, Height, X, Y int

	// Dimensions of the image the layer belongs to, in pixels.
	ImageWidth, ImageHeight int

	// ImageName is the name of the image the layer belongs to. May include
	// a file extension ("Image.xcf").
	ImageName string
}

// hasTag reports whether the item carries the given tag.
func (it Item) hasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
