package opengl

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	gui "github.com/go-theft-auto/modkit"
)

// RasterizeAtlas draws printable ASCII into a single channel image laid out the
// way gui.DrawList addresses it: rune r sits in cell r-32, row major, with
// gui.AtlasColumns cells per row.
func RasterizeAtlas() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, gui.AtlasWidth, gui.AtlasHeight))
	face := basicfont.Face7x13
	d := font.Drawer{Dst: img, Src: image.Opaque, Face: face}

	for r := rune(33); r < 127; r++ {
		idx := int(r - 32)
		col, row := idx%gui.AtlasColumns, idx/gui.AtlasColumns
		d.Dot = fixed.P(col*gui.GlyphWidth, row*gui.GlyphHeight+face.Ascent)
		d.DrawString(string(r))
	}
	return img
}

// atlasCell returns the pixel rectangle holding r.
func atlasCell(r rune) image.Rectangle {
	idx := int(r - 32)
	x := (idx % gui.AtlasColumns) * gui.GlyphWidth
	y := (idx / gui.AtlasColumns) * gui.GlyphHeight
	return image.Rect(x, y, x+gui.GlyphWidth, y+gui.GlyphHeight)
}
