package renamer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamilburda/gimp-export-layers/pkg/renamer"
)

func renderSingle(t *testing.T, pattern string, item renamer.Item, opts ...renamer.Option) string {
	t.Helper()

	r := renamer.New(pattern, opts...)
	names := r.Render([]renamer.Item{item})
	require.Len(t, names, 1)
	return names[0]
}

func TestLayerName(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		item    renamer.Item
		want    string
	}{
		{"strips_extension_by_default", "[layer name]",
			renamer.Item{Name: "Frame.png"}, "Frame"},
		{"no_extension", "[layer name]",
			renamer.Item{Name: "Frame"}, "Frame"},
		{"keep_extension", "[layer name, %e]",
			renamer.Item{Name: "Frame.png"}, "Frame.png"},
		{"keep_extension_without_extension", "[layer name, %e]",
			renamer.Item{Name: "Frame"}, "Frame"},
		{"keep_matching_extension", "[layer name, %i]",
			renamer.Item{Name: "Frame.png"}, "Frame.png"},
		{"strip_non_matching_extension", "[layer name, %i]",
			renamer.Item{Name: "Frame.jpg"}, "Frame"},
		{"dotfile_has_no_extension", "[layer name]",
			renamer.Item{Name: ".hidden"}, ".hidden"},
		{"unknown_mode_falls_back", "[layer name, %z]",
			renamer.Item{Name: "Frame.png"}, "[layer name, %z]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderSingle(t, tt.pattern, tt.item, renamer.WithFileExtension("png"))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestImageName(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		item    renamer.Item
		want    string
	}{
		{"strips_extension_by_default", "[image name]",
			renamer.Item{ImageName: "Image.xcf"}, "Image"},
		{"keep_extension", "[image name, %e]",
			renamer.Item{ImageName: "Image.xcf"}, "Image.xcf"},
		{"unnamed_image", "[image name]",
			renamer.Item{}, "Untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderSingle(t, tt.pattern, tt.item))
		})
	}
}

func TestLayerPath(t *testing.T) {
	item := renamer.Item{
		Name: "Left",
		Path: []string{"Body", "Hands"},
	}
	itemWithExtension := renamer.Item{
		Name: "Left.jpg",
		Path: []string{"Body", "Hands"},
	}

	tests := []struct {
		name    string
		pattern string
		item    renamer.Item
		want    string
	}{
		{"default_separator", "[layer path]", item, "Body-Hands-Left"},
		{"custom_separator", "[layer path, _]", item, "Body_Hands_Left"},
		{"wrapper", "[layer path, _, (%c)]", item, "(Body)_(Hands)_(Left)"},
		{"wrapper_without_token_ignored", "[layer path, _, xx]", item, "Body_Hands_Left"},
		{"keep_extension_on_last_component", "[layer path, -, %c, %e]",
			itemWithExtension, "Body-Hands-Left.jpg"},
		{"strip_non_matching_extension", "[layer path, -, %c, %i]",
			itemWithExtension, "Body-Hands-Left"},
		{"top_level_item", "[layer path]", renamer.Item{Name: "Left"}, "Left"},
		{"escaped_brackets_and_commas", "[layer path, [,], [[[%c]]] ]", item,
			"[Body],[Hands],[Left]"},
		{"percent_escape_in_wrapper", "[layer path, -, [%%(%c)%%] ]", item,
			"%(Body)%-%(Hands)%-%(Left)%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderSingle(t, tt.pattern, tt.item, renamer.WithFileExtension("png"))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTags(t *testing.T) {
	item := renamer.Item{
		Name: "layer",
		Tags: []string{"right", "left", "middle"},
	}

	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"all_tags_sorted", "[tags]", "left-middle-right"},
		{"explicit_tags_keep_listed_order", "[tags, right, left]", "right-left"},
		{"explicit_tag_absent_on_item_skipped", "[tags, left, bottom]", "left"},
		{"separator_and_wrapper", "[tags, _, (%t)]", "(left)_(middle)_(right)"},
		{"separator_wrapper_and_explicit_tags", "[tags, _, (%t), left, right]",
			"(left)_(right)"},
		// Boundary: exactly two arguments. With the tag token in the
		// second argument they are (separator, wrapper); without it they
		// are an explicit tag list.
		{"two_args_with_token", "[tags, +, <%t>]", "<left>+<middle>+<right>"},
		{"two_args_without_token", "[tags, left, middle]", "left-middle"},
		{"percent_escape_in_wrapper", "[tags, -, [%%%t] ]", "%left-%middle-%right"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderSingle(t, tt.pattern, item))
		})
	}
}

func TestTags_NoTags(t *testing.T) {
	assert.Equal(t, "", renderSingle(t, "[tags]", renamer.Item{Name: "layer"}))
}

func TestTags_SortIsCaseInsensitive(t *testing.T) {
	item := renamer.Item{Tags: []string{"Zebra", "apple", "Mango"}}
	assert.Equal(t, "apple-Mango-Zebra", renderSingle(t, "[tags]", item))
}

func TestCurrentDate(t *testing.T) {
	now := func() time.Time {
		return time.Date(2019, 1, 28, 19, 4, 0, 0, time.UTC)
	}

	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"default_format", "[current date]", "2019-01-28"},
		{"custom_format", "[current date, %m.%d.%Y_%H-%M]", "01.28.2019_19-04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderSingle(t, tt.pattern, renamer.Item{}, renamer.WithNow(now))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAttributes(t *testing.T) {
	item := renamer.Item{
		Name:        "layer",
		Width:       1000,
		Height:      270,
		X:           0,
		Y:           40,
		ImageWidth:  1000,
		ImageHeight: 500,
	}

	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"pixels", "[attributes, %w-%h-%x-%y]", "1000-270-0-40"},
		{"pixels_explicit", "[attributes, %w-%h-%x-%y, %px]", "1000-270-0-40"},
		{"percentages", "[attributes, %w-%h-%x-%y, %pc]", "1.0-0.54-0.0-0.08"},
		{"percentages_with_rounding", "[attributes, %w-%h-%x-%y, %pc1]", "1.0-0.5-0.0-0.1"},
		{"image_dimensions", "[attributes, %iw-%ih]", "1000-500"},
		{"literal_percent", "[attributes, %%%w]", "%1000"},
		{"unknown_placeholder_left_verbatim", "[attributes, %w-%q]", "1000-%q"},
		{"invalid_measure_falls_back", "[attributes, %w, %zz]", "[attributes, %w, %zz]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderSingle(t, tt.pattern, item))
		})
	}
}

func TestAttributes_PercentageWithZeroImageSizeFallsBack(t *testing.T) {
	item := renamer.Item{Name: "layer", Width: 10}
	got := renderSingle(t, "[attributes, %w, %pc]", item)
	assert.Equal(t, "[attributes, %w, %pc]", got)
}
