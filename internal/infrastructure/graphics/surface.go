// Package graphics backs render surfaces with ebiten images.
package graphics

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/screenflow/internal/application/render"
	"golang.org/x/image/font/basicfont"
)

// Face is the bitmap font every label is drawn with. Its glyphs are 7x13.
var Face text.Face = text.NewGoXFace(basicfont.Face7x13)

// Surface wraps an ebiten image
type Surface struct {
	img   *ebiten.Image
	owned bool
}

// Wrap adapts an image the caller owns, such as the ebiten screen.
// Disposing the wrapper leaves the image alone.
func Wrap(img *ebiten.Image) *Surface {
	return &Surface{img: img}
}

// Image returns the backing image
func (s *Surface) Image() *ebiten.Image { return s.img }

// Size implements render.Surface
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear implements render.Surface
func (s *Surface) Clear() { s.img.Clear() }

// Fill implements render.Surface
func (s *Surface) Fill(c color.Color) { s.img.Fill(c) }

// FillRect implements render.Surface
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.FillRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawText implements render.Surface. (x, y) is the top-left of the line.
func (s *Surface) DrawText(str string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.img, str, Face, op)
}

// Composite implements render.Surface. Sources from another backend are
// ignored.
func (s *Surface) Composite(src render.Surface, opts render.CompositeOptions) {
	other, ok := src.(*Surface)
	if !ok || other == nil || opts.Alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	sx, sy := opts.Scale()
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(opts.OffsetX, opts.OffsetY)
	op.ColorScale.ScaleAlpha(float32(min(opts.Alpha, 1)))
	if opts.Additive {
		op.Blend = ebiten.BlendLighter
	}
	op.Filter = ebiten.FilterLinear
	s.img.DrawImage(other.img, op)
}

// Dispose implements render.Surface
func (s *Surface) Dispose() {
	if s.owned {
		s.img.Deallocate()
	}
}

// Allocator creates ebiten-backed surfaces
type Allocator struct{}

// NewSurface implements render.Allocator
func (Allocator) NewSurface(w, h int) render.Surface {
	return &Surface{img: ebiten.NewImage(max(w, 1), max(h, 1)), owned: true}
}

// FromImage uploads a decoded texture. It is the resource manager's
// upload hook.
func FromImage(img image.Image) render.Surface {
	return &Surface{img: ebiten.NewImageFromImage(img), owned: true}
}

var _ render.Allocator = Allocator{}
