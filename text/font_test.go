package text

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inked(raster *image.Alpha) int {
	n := 0
	for _, a := range raster.Pix {
		if a != 0 {
			n++
		}
	}
	return n
}

func TestBasicFontNativeSize(t *testing.T) {
	f := NewBasicFont()
	raster, ok := f.DrawGrapheme("A", f.NativeSize())
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 7, 13), raster.Rect)
	assert.Positive(t, inked(raster))

	space, ok := f.DrawGrapheme(" ", 0)
	require.True(t, ok)
	assert.Zero(t, inked(space))
}

func TestBasicFontScales(t *testing.T) {
	f := NewBasicFont()
	raster, ok := f.DrawGrapheme("W", 26)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 14, 26), raster.Rect)
	assert.Positive(t, inked(raster))
}

func TestBasicFontMissingGlyph(t *testing.T) {
	f := NewBasicFont()
	_, ok := f.DrawGrapheme("中", 13)
	assert.False(t, ok)
	_, ok = f.DrawGrapheme("", 13)
	assert.False(t, ok)
}

func TestGraphemes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "ascii", text: "abc", want: []string{"a", "b", "c"}},
		{name: "combining accent", text: "éx", want: []string{"é", "x"}},
		{name: "flag", text: "🇳🇱!", want: []string{"🇳🇱", "!"}},
		{name: "empty", text: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Graphemes(tt.text))
		})
	}
}
