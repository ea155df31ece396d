// Package placeholder generates the stand-in picture shown on plant cards:
// a green diagonal gradient with the plant's name written on it.
package placeholder

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Image dimensions in pixels.
const (
	Width  = 300
	Height = 150
)

const (
	padding    = 12
	lineHeight = 16
	ellipsis   = "..."
)

var (
	// Gradient endpoints, top-left to bottom-right
	From = color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff}
	To   = color.RGBA{R: 0x45, G: 0xa0, B: 0x49, A: 0xff}

	face = basicfont.Face7x13
)

// Image draws the placeholder for name.
func Image(name string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	fillGradient(img)

	lines := Wrap(strings.TrimSpace(name), maxColumns(), maxLines())
	if len(lines) == 0 {
		return img
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
	}

	ascent := face.Metrics().Ascent.Ceil()
	blockHeight := len(lines) * lineHeight
	top := (Height-blockHeight)/2 + ascent
	for i, line := range lines {
		w := d.MeasureString(line).Ceil()
		d.Dot = fixed.P((Width-w)/2, top+i*lineHeight)
		d.DrawString(line)
	}
	return img
}

// Render writes the placeholder for name as PNG.
func Render(w io.Writer, name string) error {
	return png.Encode(w, Image(name))
}

func fillGradient(img *image.RGBA) {
	span := float64(Width + Height - 2)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			t := float64(x+y) / span
			img.SetRGBA(x, y, color.RGBA{
				R: lerp(From.R, To.R, t),
				G: lerp(From.G, To.G, t),
				B: lerp(From.B, To.B, t),
				A: 0xff,
			})
		}
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func maxColumns() int {
	adv, _ := face.GlyphAdvance('M')
	return (Width - 2*padding) / adv.Ceil()
}

func maxLines() int {
	return (Height - 2*padding) / lineHeight
}

// Wrap breaks s into at most maxLines lines of at most cols characters,
// breaking on spaces where possible. Text that does not fit ends in "...".
func Wrap(s string, cols, maxLines int) []string {
	if cols <= 0 || maxLines <= 0 {
		return nil
	}

	var lines []string
	var cur string
	for _, word := range strings.Fields(s) {
		for utf8.RuneCountInString(word) > cols {
			if cur != "" {
				lines = append(lines, cur)
				cur = ""
			}
			head, tail := splitRunes(word, cols)
			lines = append(lines, head)
			word = tail
		}
		switch {
		case cur == "":
			cur = word
		case utf8.RuneCountInString(cur)+1+utf8.RuneCountInString(word) <= cols:
			cur += " " + word
		default:
			lines = append(lines, cur)
			cur = word
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}

	if len(lines) <= maxLines {
		return lines
	}
	lines = lines[:maxLines]
	last := lines[maxLines-1]
	if n := utf8.RuneCountInString(last); n+len(ellipsis) > cols {
		last, _ = splitRunes(last, cols-len(ellipsis))
	}
	lines[maxLines-1] = last + ellipsis
	return lines
}

func splitRunes(s string, n int) (string, string) {
	if n <= 0 {
		return "", s
	}
	i := 0
	for j := range s {
		if i == n {
			return s[:j], s[j:]
		}
		i++
	}
	return s, ""
}
