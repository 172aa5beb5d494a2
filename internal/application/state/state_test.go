package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindMainMenu, "MainMenu"},
		{KindWorldSelect, "WorldSelect"},
		{KindLevelSelect, "LevelSelect"},
		{KindLevelStart, "LevelStart"},
		{KindInGame, "InGame"},
		{KindInGameBoss, "InGameBoss"},
		{KindInGamePause, "InGamePause"},
		{KindLevelEnd, "LevelEnd"},
		{KindLevelComplete, "LevelComplete"},
		{KindBossComplete, "BossComplete"},
		{KindGameComplete, "GameComplete"},
		{KindGameOver, "GameOver"},
		{KindCredits, "Credits"},
		{Kind(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestKindConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Kind(0), KindMainMenu)
	assert.Equal(t, Kind(4), KindInGame)
	assert.Equal(t, Kind(6), KindInGamePause)
	assert.Equal(t, Kind(12), KindCredits)
	assert.Len(t, Kinds(), 13)
}

func TestKind_Classification(t *testing.T) {
	assert.True(t, KindInGame.IsGameplay())
	assert.True(t, KindInGameBoss.IsGameplay())
	assert.False(t, KindInGamePause.IsGameplay())
	assert.True(t, KindInGamePause.IsOverlay())
	assert.False(t, KindMainMenu.IsOverlay())
	assert.False(t, Kind(-1).Valid())
	assert.False(t, kindCount.Valid())
}

func TestParams_OptionalFields(t *testing.T) {
	var p Params
	_, ok := p.World()
	assert.False(t, ok)
	_, ok = p.Unlocking()
	assert.False(t, ok)
	assert.True(t, p.FadeIn(), "fade-in defaults to on")
	assert.Equal(t, "{}", p.String())

	q := p.WithWorld(2).WithLevel(3).WithFadeIn(false)
	w, ok := q.World()
	assert.True(t, ok)
	assert.Equal(t, 2, w)
	l, ok := q.Level()
	assert.True(t, ok)
	assert.Equal(t, 3, l)
	assert.False(t, q.FadeIn())
	assert.Equal(t, "{world=2 level=3 fadeIn=false}", q.String())

	// the original value is untouched
	_, ok = p.World()
	assert.False(t, ok)
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		parsed, ok := ParseKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, parsed)
	}
	_, ok := ParseKind("Unknown")
	assert.False(t, ok)
}
