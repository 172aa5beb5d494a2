package screens

import "image/color"

var (
	colorBlack  = color.RGBA{0, 0, 0, 255}
	colorText   = color.RGBA{230, 230, 240, 255}
	colorDim    = color.RGBA{120, 120, 140, 255}
	colorAccent = color.RGBA{255, 200, 80, 255}
	colorLocked = color.RGBA{70, 70, 80, 255}
	colorMenuBg = color.RGBA{24, 20, 48, 255}
	colorSky    = color.RGBA{40, 60, 110, 255}
	colorGround = color.RGBA{60, 110, 60, 255}
	colorPlayer = color.RGBA{240, 240, 255, 255}
	colorBoss   = color.RGBA{200, 60, 60, 255}
	colorShield = color.RGBA{120, 200, 255, 255}
	colorBar    = color.RGBA{40, 40, 50, 255}
	colorDanger = color.RGBA{255, 70, 70, 255}
)

// glyph metrics of the bitmap font the backends draw with
const (
	glyphW = 7
	glyphH = 13
)

// centerX returns the x that centers s in a surface of width w
func centerX(w int, s string) float64 {
	return float64(w)/2 - float64(len(s)*glyphW)/2
}
