package progress

// Progress records what the player has unlocked. A world is unlocked when
// its entry in UnlockedLevels is positive; the value is the number of
// unlocked levels in that world.
type Progress struct {
	UnlockedLevels []int `toml:"unlocked_levels"`
	Completed      int   `toml:"completed"`
}

// Advance describes what completing a level unlocked
type Advance struct {
	NextWorld int
	NextLevel int
	// NewLevel is true when the next level was locked before
	NewLevel bool
	// NewWorld is true when completing the level opened a new world
	NewWorld bool
	// Finished is true when the final level of the catalog was completed
	Finished bool
}

// New returns progress with only the first level unlocked
func New(c Catalog) *Progress {
	p := &Progress{}
	p.Normalize(c)
	return p
}

// Normalize fits the unlock table to the catalog. Entries beyond the
// catalog are dropped and the first level is always unlocked.
func (p *Progress) Normalize(c Catalog) {
	levels := make([]int, c.WorldCount())
	copy(levels, p.UnlockedLevels)
	for w := range levels {
		if levels[w] > c.LevelCount(w) {
			levels[w] = c.LevelCount(w)
		}
		if levels[w] < 0 {
			levels[w] = 0
		}
	}
	if len(levels) > 0 && levels[0] == 0 && c.LevelCount(0) > 0 {
		levels[0] = 1
	}
	p.UnlockedLevels = levels
}

// IsWorldUnlocked reports whether world w is playable
func (p *Progress) IsWorldUnlocked(w int) bool {
	return w >= 0 && w < len(p.UnlockedLevels) && p.UnlockedLevels[w] > 0
}

// IsUnlocked reports whether level l of world w is playable
func (p *Progress) IsUnlocked(w, l int) bool {
	return p.IsWorldUnlocked(w) && l >= 0 && l < p.UnlockedLevels[w]
}

// UnlockedWorlds returns the number of leading unlocked worlds
func (p *Progress) UnlockedWorlds() int {
	n := 0
	for _, levels := range p.UnlockedLevels {
		if levels == 0 {
			break
		}
		n++
	}
	return n
}

// FurthestUnlocked returns the last unlocked level of the last unlocked world
func (p *Progress) FurthestUnlocked() (world, level int) {
	n := p.UnlockedWorlds()
	if n == 0 {
		return 0, 0
	}
	return n - 1, p.UnlockedLevels[n-1] - 1
}

// FurthestInWorld returns the last unlocked level of world w, 0 if locked
func (p *Progress) FurthestInWorld(w int) int {
	if !p.IsWorldUnlocked(w) {
		return 0
	}
	return p.UnlockedLevels[w] - 1
}

// Complete records that (w, l) was beaten and unlocks what follows it
func (p *Progress) Complete(c Catalog, w, l int) Advance {
	p.Completed++
	if c.IsFinalLevel(w, l) {
		return Advance{NextWorld: w, NextLevel: l, Finished: true}
	}

	next := Advance{NextWorld: w, NextLevel: l + 1}
	if l+1 >= c.LevelCount(w) {
		next.NextWorld, next.NextLevel = w+1, 0
	}

	if !p.IsUnlocked(next.NextWorld, next.NextLevel) && next.NextWorld < len(p.UnlockedLevels) {
		next.NewWorld = !p.IsWorldUnlocked(next.NextWorld)
		next.NewLevel = true
		p.UnlockedLevels[next.NextWorld] = next.NextLevel + 1
	}
	return next
}
