// Package progress models the world/level catalog and the player's unlocks.
package progress

// World describes one world of the catalog
type World struct {
	Name   string
	Levels int
	// Boss marks the world's last level as a boss level
	Boss bool
}

// Catalog is the ordered list of worlds
type Catalog struct {
	Worlds []World
}

// WorldCount returns the number of worlds
func (c Catalog) WorldCount() int { return len(c.Worlds) }

// LevelCount returns the number of levels in world w, 0 if out of range
func (c Catalog) LevelCount(w int) int {
	if w < 0 || w >= len(c.Worlds) {
		return 0
	}
	return c.Worlds[w].Levels
}

// Contains reports whether (w, l) names a level of the catalog
func (c Catalog) Contains(w, l int) bool {
	return l >= 0 && l < c.LevelCount(w)
}

// IsBossLevel reports whether (w, l) is a boss level
func (c Catalog) IsBossLevel(w, l int) bool {
	if !c.Contains(w, l) {
		return false
	}
	return c.Worlds[w].Boss && l == c.Worlds[w].Levels-1
}

// IsFinalLevel reports whether (w, l) is the last level of the last world
func (c Catalog) IsFinalLevel(w, l int) bool {
	last := len(c.Worlds) - 1
	return w == last && l == c.LevelCount(last)-1
}
