package screens

import (
	"image/color"

	"github.com/younwookim/screenflow/internal/application/render"
)

// menu is a vertical list with a cursor. Disabled items are skipped.
type menu struct {
	labels  []string
	enabled []bool
	cursor  int

	top        float64
	lineHeight float64
}

func newMenu(labels []string, top float64) *menu {
	enabled := make([]bool, len(labels))
	for i := range enabled {
		enabled[i] = true
	}
	return &menu{labels: labels, enabled: enabled, top: top, lineHeight: 18}
}

// setCursor moves the cursor to i if it is selectable
func (m *menu) setCursor(i int) bool {
	if i < 0 || i >= len(m.labels) || !m.enabled[i] {
		return false
	}
	m.cursor = i
	return true
}

// move steps the cursor by delta, wrapping and skipping disabled items
func (m *menu) move(delta int) bool {
	n := len(m.labels)
	if n == 0 {
		return false
	}
	for step := 1; step <= n; step++ {
		i := ((m.cursor+delta*step)%n + n) % n
		if m.enabled[i] {
			moved := i != m.cursor
			m.cursor = i
			return moved
		}
	}
	return false
}

// hit returns the item on the row at y
func (m *menu) hit(y int) (int, bool) {
	fy := float64(y)
	if fy < m.top {
		return 0, false
	}
	i := int((fy - m.top) / m.lineHeight)
	if i >= len(m.labels) || !m.enabled[i] {
		return 0, false
	}
	return i, true
}

// draw renders the items. reveal in [0,1] pops items in top to bottom;
// pulse in [0,1] modulates the cursor highlight.
func (m *menu) draw(dst render.Surface, reveal, pulse float64) {
	w, _ := dst.Size()
	shown := int(reveal*float64(len(m.labels)) + 0.999)
	for i, label := range m.labels[:min(shown, len(m.labels))] {
		var c color.RGBA
		switch {
		case !m.enabled[i]:
			c = colorLocked
		case i == m.cursor:
			c = render.Fade(colorAccent, 0.6+0.4*pulse)
		default:
			c = colorText
		}
		y := m.top + float64(i)*m.lineHeight
		if i == m.cursor {
			dst.FillRect(centerX(w, label)-6, y+4, 3, 3, c)
		}
		dst.DrawText(label, centerX(w, label), y, c)
	}
}
