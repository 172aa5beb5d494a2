package screens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/screenflow/internal/application/render/rendertest"
)

func TestMenu_MoveWrapsAndSkipsDisabled(t *testing.T) {
	m := newMenu([]string{"a", "b", "c", "d"}, 100)
	m.enabled[1] = false

	assert.True(t, m.move(1))
	assert.Equal(t, 2, m.cursor)
	assert.True(t, m.move(1))
	assert.Equal(t, 3, m.cursor)
	assert.True(t, m.move(1))
	assert.Equal(t, 0, m.cursor, "wraps to the top")
	assert.True(t, m.move(-1))
	assert.Equal(t, 3, m.cursor, "wraps to the bottom")
}

func TestMenu_MoveWithSingleEnabled(t *testing.T) {
	m := newMenu([]string{"a", "b"}, 0)
	m.enabled[1] = false
	assert.False(t, m.move(1))
	assert.Equal(t, 0, m.cursor)
}

func TestMenu_SetCursorAndHit(t *testing.T) {
	m := newMenu([]string{"a", "b", "c"}, 100)
	m.enabled[2] = false

	assert.False(t, m.setCursor(2))
	assert.False(t, m.setCursor(-1))
	assert.True(t, m.setCursor(1))

	i, ok := m.hit(100 + 18 + 5)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = m.hit(50)
	assert.False(t, ok, "above the menu")
	_, ok = m.hit(100 + 2*18 + 1)
	assert.False(t, ok, "disabled row")
	_, ok = m.hit(100 + 10*18)
	assert.False(t, ok, "below the menu")
}

func TestMenu_DrawRevealsItems(t *testing.T) {
	alloc := rendertest.NewAllocator()
	dst := alloc.NewSurface(320, 240)
	m := newMenu([]string{"a", "b", "c", "d"}, 100)

	m.draw(dst, 0.5, 1)
	assert.Equal(t, []string{"a", "b"}, alloc.Texts())

	alloc.Reset()
	m.draw(dst, 1, 1)
	assert.Equal(t, []string{"a", "b", "c", "d"}, alloc.Texts())
}
