package renamer_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kamilburda/gimp-export-layers/pkg/renamer"
)

// flatItems builds n top-level items named item1..itemN.
func flatItems(n int) []renamer.Item {
	items := make([]renamer.Item, n)
	for i := range items {
		items[i] = renamer.Item{Name: fmt.Sprintf("item%d", i+1)}
	}
	return items
}

func TestNumber_PaddingAndOverflow(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		count   int
		want    []string
	}{
		{"two_padding_zeroes", "[001]", 3, []string{"001", "002", "003"}},
		{"one_padding_zero", "[01]", 3, []string{"01", "02", "03"}},
		{"no_padding", "[1]", 3, []string{"1", "2", "3"}},
		{"start_greater_than_one", "[005]", 3, []string{"005", "006", "007"}},
		{"increment_removes_padded_zero", "[009]", 3, []string{"009", "010", "011"}},
		{"increment_exceeds_padding", "[999]", 3, []string{"999", "1000", "1001"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := renamer.New(tt.pattern)
			assert.Equal(t, tt.want, r.Render(flatItems(tt.count)))
		})
	}
}

func TestNumber_ResetsPerGroupByDefault(t *testing.T) {
	items := []renamer.Item{
		{Name: "foreground"},
		{Name: "corner", Path: []string{"Corners"}},
		{Name: "bottom-left", Path: []string{"Corners", "top-left"}},
		{Name: "bottom-right", Path: []string{"Corners", "top-left"}},
		{Name: "top-left", Path: []string{"Corners", "top-left"}},
		{Name: "top-right", Path: []string{"Corners"}},
		{Name: "top-frame", Path: []string{"Frames"}},
		{Name: "background"},
		{Name: "overlay"},
	}

	r := renamer.New("image[001]")

	assert.Equal(t, []string{
		"image001",
		"image001",
		"image001",
		"image002",
		"image003",
		"image002",
		"image001",
		"image002",
		"image003",
	}, r.Render(items))
}

func TestNumber_CrossGroupContinuation(t *testing.T) {
	items := []renamer.Item{
		{Name: "a"},
		{Name: "b", Path: []string{"G"}},
		{Name: "c", Path: []string{"G"}},
		{Name: "d", Path: []string{"H"}},
		{Name: "e"},
	}

	r := renamer.New("[001, %n]")

	assert.Equal(t, []string{"001", "002", "003", "004", "005"}, r.Render(items))
}

func TestNumber_CrossGroupIsolationFirstOutputs(t *testing.T) {
	items := []renamer.Item{
		{Name: "a", Path: []string{"G"}},
		{Name: "b", Path: []string{"H"}},
	}

	r := renamer.New("[001]")

	// Without %n each group starts its own counter.
	assert.Equal(t, []string{"001", "001"}, r.Render(items))
}

func TestNumber_MultipleFieldsIncrementIndependently(t *testing.T) {
	r := renamer.New("image[001]_[005]")

	assert.Equal(t, []string{
		"image001_005",
		"image002_006",
		"image003_007",
	}, r.Render(flatItems(3)))
}

func TestNumber_SameDigitPatternSharesCounter(t *testing.T) {
	// Two identical digit patterns in one pattern advance one shared
	// counter, so a single item consumes two values.
	r := renamer.New("[001]_[001]")

	assert.Equal(t, []string{"001_002", "003_004"}, r.Render(flatItems(2)))
}

func TestNumber_Descending(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		count   int
		want    []string
	}{
		{"zero_start_counts_down_from_total", "[000, %d]", 5,
			[]string{"005", "004", "003", "002", "001"}},
		{"explicit_start", "[10, %d]", 3, []string{"10", "09", "08"}},
		{"padding_override", "[10, %d2]", 3, []string{"10", "09", "08"}},
		{"padding_override_wider", "[10, %d4]", 2, []string{"0010", "0009"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := renamer.New(tt.pattern)
			assert.Equal(t, tt.want, r.Render(flatItems(tt.count)))
		})
	}
}

func TestNumber_DescendingPerGroupUsesScopeTotals(t *testing.T) {
	items := []renamer.Item{
		{Name: "a", Path: []string{"G"}},
		{Name: "b", Path: []string{"G"}},
		{Name: "c", Path: []string{"G"}},
		{Name: "d", Path: []string{"H"}},
		{Name: "e", Path: []string{"H"}},
	}

	r := renamer.New("[000, %d]")

	assert.Equal(t, []string{"003", "002", "001", "002", "001"}, r.Render(items))
}

func TestNumber_DescendingCrossGroupUsesGrandTotal(t *testing.T) {
	items := []renamer.Item{
		{Name: "a", Path: []string{"G"}},
		{Name: "b", Path: []string{"H"}},
		{Name: "c"},
	}

	r := renamer.New("[000, %d, %n]")

	assert.Equal(t, []string{"003", "002", "001"}, r.Render(items))
}

func TestNumber_UnknownFlagFallsBackToLiteral(t *testing.T) {
	r := renamer.New("[001, %x]")

	names := r.Render(flatItems(1))

	require.Len(t, names, 1)
	assert.Equal(t, "[001, %x]", names[0])
}
