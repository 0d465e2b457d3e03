package renamer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/lestrrat-go/strftime"

	"github.com/kamilburda/gimp-export-layers/pkg/pattern"
)

// File extension modes shared by the layer name, image name and layer path
// fields.
const (
	// extKeep retains a recognized file extension.
	extKeep = "%e"

	// extKeepIfMatching retains the extension only if it matches the
	// configured output file extension.
	extKeepIfMatching = "%i"
)

// Placeholder tokens for per-component wrapper templates.
const (
	pathComponentToken = "%c"
	tagToken           = "%t"
)

const defaultDateFormat = "%Y-%m-%d"

// untitledImageName substitutes for images without a name.
const untitledImageName = "Untitled"

func validExtensionMode(mode string) bool {
	return mode == "" || mode == extKeep || mode == extKeepIfMatching
}

// applyExtensionMode returns name with its file extension stripped or
// retained according to mode. extKeepIfMatching retains the extension only
// when it equals targetExtension.
func applyExtensionMode(name, mode, targetExtension string) string {
	if mode == extKeep || mode == extKeepIfMatching {
		extension := fileExtension(name)
		if extension != "" && (mode == extKeep || extension == targetExtension) {
			return name
		}
	}
	return filenameRoot(name)
}

func evalLayerName(r *Renderer, st *State, item Item, field *pattern.Field) (string, bool) {
	mode := ""
	if len(field.Args) > 0 {
		mode = field.Args[0]
	}
	if !validExtensionMode(mode) {
		return "", false
	}

	return applyExtensionMode(item.Name, mode, r.fileExtension), true
}

func evalImageName(r *Renderer, st *State, item Item, field *pattern.Field) (string, bool) {
	mode := ""
	if len(field.Args) > 0 {
		mode = field.Args[0]
	}
	if mode != "" && mode != extKeep {
		return "", false
	}

	imageName := item.ImageName
	if imageName == "" {
		imageName = untitledImageName
	}

	if mode == extKeep {
		return imageName, true
	}
	return filenameRoot(imageName), true
}

// evalLayerPath joins the item's ancestor names and its own name with a
// separator, optionally wrapping each component in a template containing
// %c. The extension mode applies to the last component only.
func evalLayerPath(r *Renderer, st *State, item Item, field *pattern.Field) (string, bool) {
	separator := "-"
	wrapper := ""
	mode := ""

	if len(field.Args) > 0 {
		separator = field.Args[0]
	}
	if len(field.Args) > 1 {
		wrapper = field.Args[1]
	}
	if len(field.Args) > 2 {
		mode = field.Args[2]
	}
	if !validExtensionMode(mode) {
		return "", false
	}

	// A wrapper without the component token is treated as no wrapper.
	if !strings.Contains(wrapper, pathComponentToken) {
		wrapper = ""
	}

	components := make([]string, 0, len(item.Path)+1)
	components = append(components, item.Path...)
	components = append(components, applyExtensionMode(item.Name, mode, r.fileExtension))

	if wrapper != "" {
		for i, component := range components {
			components[i] = expandToken(wrapper, 'c', component)
		}
	}

	return strings.Join(components, separator), true
}

// evalTags joins the item's tags with a separator and optional per-tag
// wrapper.
//
// With no arguments, all tags are inserted in case-insensitive alphabetical
// order. If the second argument contains %t, the first two arguments are a
// (separator, wrapper) pair and any remaining arguments select tags
// explicitly; otherwise all arguments are an explicit tag list. Explicitly
// listed tags keep their listed order, and tags the item does not carry are
// skipped.
func evalTags(r *Renderer, st *State, item Item, field *pattern.Field) (string, bool) {
	separator := "-"
	wrapper := ""
	args := field.Args

	var tags []string
	switch {
	case len(args) == 0:
		tags = sortedTags(item)
	case len(args) >= 2 && strings.Contains(args[1], tagToken):
		separator = args[0]
		wrapper = args[1]
		if len(args) > 2 {
			tags = explicitTags(item, args[2:])
		} else {
			tags = sortedTags(item)
		}
	default:
		tags = explicitTags(item, args)
	}

	if wrapper != "" {
		for i, tag := range tags {
			tags[i] = expandToken(wrapper, 't', tag)
		}
	}

	return strings.Join(tags, separator), true
}

func sortedTags(item Item) []string {
	tags := make([]string, len(item.Tags))
	copy(tags, item.Tags)

	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i]) < strings.ToLower(tags[j])
	})
	return tags
}

func explicitTags(item Item, names []string) []string {
	var tags []string
	for _, name := range names {
		if item.hasTag(name) {
			tags = append(tags, name)
		}
	}
	return tags
}

func evalCurrentDate(r *Renderer, st *State, item Item, field *pattern.Field) (string, bool) {
	format := defaultDateFormat
	if len(field.Args) > 0 {
		format = field.Args[0]
	}

	formatted, err := strftime.Format(format, r.now())
	if err != nil {
		return "", false
	}
	return formatted, true
}

// evalAttributes formats layer and image measurements according to a
// %-coded template: %w, %h, %x, %y for the layer, %iw, %ih for the image.
// The optional second argument selects pixels ("%px", the default) or the
// fraction of the image dimensions ("%pc", with an optional rounding digit
// count such as "%pc1"; the default is 2 digits).
func evalAttributes(r *Renderer, st *State, item Item, field *pattern.Field) (string, bool) {
	template := field.Args[0]

	measure := "%px"
	if len(field.Args) > 1 {
		measure = field.Args[1]
	}

	vars := map[string]string{
		"iw": strconv.Itoa(item.ImageWidth),
		"ih": strconv.Itoa(item.ImageHeight),
	}

	switch {
	case measure == "%px":
		vars["w"] = strconv.Itoa(item.Width)
		vars["h"] = strconv.Itoa(item.Height)
		vars["x"] = strconv.Itoa(item.X)
		vars["y"] = strconv.Itoa(item.Y)

	case strings.HasPrefix(measure, "%pc"):
		digits := 2
		if suffix := measure[len("%pc"):]; suffix != "" {
			parsed, err := strconv.Atoi(suffix)
			if err != nil || parsed < 0 {
				return "", false
			}
			digits = parsed
		}
		if item.ImageWidth == 0 || item.ImageHeight == 0 {
			return "", false
		}

		imageWidth := float64(item.ImageWidth)
		imageHeight := float64(item.ImageHeight)
		vars["w"] = formatRatio(roundTo(float64(item.Width)/imageWidth, digits))
		vars["h"] = formatRatio(roundTo(float64(item.Height)/imageHeight, digits))
		vars["x"] = formatRatio(roundTo(float64(item.X)/imageWidth, digits))
		vars["y"] = formatRatio(roundTo(float64(item.Y)/imageHeight, digits))

	default:
		return "", false
	}

	return substitutePercent(template, vars), true
}
