package placeholder

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImage_Gradient(t *testing.T) {
	img := Image("Lavendel")

	assert.Equal(t, Width, img.Bounds().Dx())
	assert.Equal(t, Height, img.Bounds().Dy())
	assert.Equal(t, From, img.RGBAAt(0, 0))
	assert.Equal(t, To, img.RGBAAt(Width-1, Height-1))
}

func TestImage_DrawsName(t *testing.T) {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	countWhite := func(name string) int {
		img := Image(name)
		n := 0
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				if img.RGBAAt(x, y) == white {
					n++
				}
			}
		}
		return n
	}

	assert.Zero(t, countWhite(""))
	assert.Positive(t, countWhite("Lavendel"))
	assert.Greater(t, countWhite("Grote kattenstaart"), countWhite("Iris"))
}

func TestRender_PNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, "Vingerhoedskruid"))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Width, img.Bounds().Dx())
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		cols     int
		maxLines int
		want     []string
	}{
		{"empty", "", 10, 3, nil},
		{"fits", "Hosta", 10, 3, []string{"Hosta"}},
		{"breaks on space", "Grote kattenstaart", 10, 3, []string{"Grote", "kattenstaart"[:10], "rt"}},
		{"joins short words", "Echte kamille bloem", 13, 3, []string{"Echte kamille", "bloem"}},
		{"collapses whitespace", "  Gele   lis ", 20, 3, []string{"Gele lis"}},
		{"truncates with ellipsis", "een twee drie vier", 4, 2, []string{"een", "t..."}},
		{"zero cols", "Hosta", 0, 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.in, tt.cols, tt.maxLines))
		})
	}
}

func TestWrap_LineLimits(t *testing.T) {
	name := strings.Repeat("Vingerhoedskruid ", 20)
	lines := Wrap(name, maxColumns(), maxLines())

	assert.Len(t, lines, maxLines())
	for _, l := range lines {
		assert.LessOrEqual(t, len([]rune(l)), maxColumns())
	}
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "..."))
}
