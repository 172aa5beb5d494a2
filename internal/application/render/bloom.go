package render

// bloomTaps are the offsets of the box blur added on top of the frame
var bloomTaps = [][2]float64{{-2, 0}, {2, 0}, {0, -2}, {0, 2}}

// Bloom presents src onto dst and adds a cheap additive blur. The blur is
// built from offset copies of src so no differently-sized target is needed.
func Bloom(dst, src Surface, strength float64) {
	dst.Composite(src, Opaque)
	strength = clamp01(strength)
	if strength == 0 {
		return
	}
	a := strength / float64(len(bloomTaps))
	for _, tap := range bloomTaps {
		dst.Composite(src, CompositeOptions{
			Alpha:    a,
			OffsetX:  tap[0],
			OffsetY:  tap[1],
			Additive: true,
		})
	}
}
