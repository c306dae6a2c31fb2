package x11

import (
	"image"
	"image/color"
	"os"

	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// fontResources wraps whichever glyph source the adapter managed to
// load: a real TrueType face (via golang/freetype, the same library
// xgbutil/xgraphics uses internally for its own Text() helper) when
// Config.FontName names a readable .ttf file, or the bitmap face from
// golang.org/x/image/font/basicfont otherwise. dwm falls back
// similarly when its configured font name doesn't resolve.
type fontResources struct {
	ttf      *truetype.Font
	ttfSize  float64
	fallback font.Face
	height   int
}

func (c *conn) initFont(name string) error {
	if name != "" {
		if data, err := os.ReadFile(name); err == nil {
			if f, err := truetype.Parse(data); err == nil {
				c.fontDraw = &fontResources{ttf: f, ttfSize: 12}
				c.barHeight = clampBarHeight(int(c.fontDraw.ttfSize*1.6) + 2)
				return nil
			}
		}
	}
	face := basicfont.Face7x13
	c.fontDraw = &fontResources{fallback: face, height: face.Height}
	c.barHeight = clampBarHeight(face.Height + 6)
	return nil
}

func clampBarHeight(h int) int {
	if h < 14 {
		return 14
	}
	return h
}

func (c *conn) freeFont() {
	c.fontDraw = nil
}

func (c *conn) BarHeight() int { return c.barHeight }

// TextWidth measures a string under the loaded font without drawing
// it, used by the bar layout math to size the tag boxes, the layout
// symbol box and the status text.
func (c *conn) TextWidth(s string) int {
	if c.fontDraw.ttf != nil {
		w, _, err := xgraphics.Extents(c.fontDraw.ttf, c.fontDraw.ttfSize, s)
		if err == nil {
			return w
		}
	}
	face := c.fontDraw.fallback
	return font.MeasureString(face, s).Round()
}

// DrawBar renders one full bar redraw batch into an off-screen
// xgraphics.Image sized to r and paints it onto w in one XCopyArea,
// matching dwm's single-Pixmap-per-redraw discipline (no visible
// tearing from drawing primitive-by-primitive on the live window).
func (c *conn) DrawBar(w Window, r Rect, cmds []DrawCmd) {
	img := xgraphics.New(c.xu, image.Rect(0, 0, r.Width, r.Height))
	defer img.Destroy()

	_, bg, _ := schemeColors(c, SchemeNorm)
	img.For(func(x, y int) xgraphics.BGRA {
		return pixelToBGRA(bg)
	})

	for _, cmd := range cmds {
		c.drawOne(img, cmd)
	}

	if err := img.XSurfaceSet(w); err != nil {
		return
	}
	img.XDraw()
	img.XPaint(w)
}

func (c *conn) drawOne(img *xgraphics.Image, cmd DrawCmd) {
	fg, bg, border := schemeColors(c, cmd.Scheme)
	switch cmd.Kind {
	case DrawClearRect:
		fillRect(img, cmd.Rect, pixelToBGRA(bg))
	case DrawText:
		fillRect(img, cmd.Rect, pixelToBGRA(bg))
		c.drawText(img, cmd.Rect, cmd.Text, pixelToColor(fg))
	case DrawSquare:
		drawSquare(img, cmd.Rect, pixelToBGRA(border), cmd.Filled)
	}
}

func (c *conn) drawText(img *xgraphics.Image, r Rect, s string, col color.RGBA) {
	baseline := r.Y + (r.Height+c.barHeight)/2 - 2
	if c.fontDraw.ttf != nil {
		img.Text(r.X+2, baseline-int(c.fontDraw.ttfSize), col, c.fontDraw.ttfSize, c.fontDraw.ttf, s)
		return
	}
	drawBitmapString(img, c.fontDraw.fallback, r.X+2, baseline, col, s)
}

func fillRect(img *xgraphics.Image, r Rect, col xgraphics.BGRA) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			img.Set(x, y, col)
		}
	}
}

func drawSquare(img *xgraphics.Image, r Rect, col xgraphics.BGRA, filled bool) {
	if filled {
		fillRect(img, r, col)
		return
	}
	for x := r.X; x < r.X+r.Width; x++ {
		img.Set(x, r.Y, col)
		img.Set(x, r.Y+r.Height-1, col)
	}
	for y := r.Y; y < r.Y+r.Height; y++ {
		img.Set(r.X, y, col)
		img.Set(r.X+r.Width-1, y, col)
	}
}

func drawBitmapString(img *xgraphics.Image, face font.Face, x, y int, col color.RGBA, s string) {
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	drawer.Dot = fixedPoint(x, y)
	drawer.DrawString(s)
}

func fixedPoint(x, y int) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
}

func pixelToBGRA(pixel uint32) xgraphics.BGRA {
	r, g, b := pixelRGB(pixel)
	return xgraphics.BGRA{B: b, G: g, R: r, A: 255}
}

func pixelToColor(pixel uint32) color.RGBA {
	r, g, b := pixelRGB(pixel)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func pixelRGB(pixel uint32) (r, g, b uint8) {
	return uint8(pixel >> 16), uint8(pixel >> 8), uint8(pixel)
}
