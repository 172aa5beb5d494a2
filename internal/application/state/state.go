// Package state defines the closed set of display state kinds and the
// parameter bag handed to a screen when it is constructed.
package state

// Kind identifies one logical screen of the game
type Kind int

const (
	KindMainMenu Kind = iota
	KindWorldSelect
	KindLevelSelect
	KindLevelStart
	KindInGame
	KindInGameBoss
	KindInGamePause
	KindLevelEnd
	KindLevelComplete
	KindBossComplete
	KindGameComplete
	KindGameOver
	KindCredits

	kindCount
)

// Kinds returns every kind in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := KindMainMenu; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether k is one of the declared kinds
func (k Kind) Valid() bool {
	return k >= KindMainMenu && k < kindCount
}

// IsGameplay reports whether the kind runs the simulation
func (k Kind) IsGameplay() bool {
	return k == KindInGame || k == KindInGameBoss
}

// IsOverlay reports whether the kind is installed over a retained backdrop
func (k Kind) IsOverlay() bool {
	return k == KindInGamePause
}

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindMainMenu:
		return "MainMenu"
	case KindWorldSelect:
		return "WorldSelect"
	case KindLevelSelect:
		return "LevelSelect"
	case KindLevelStart:
		return "LevelStart"
	case KindInGame:
		return "InGame"
	case KindInGameBoss:
		return "InGameBoss"
	case KindInGamePause:
		return "InGamePause"
	case KindLevelEnd:
		return "LevelEnd"
	case KindLevelComplete:
		return "LevelComplete"
	case KindBossComplete:
		return "BossComplete"
	case KindGameComplete:
		return "GameComplete"
	case KindGameOver:
		return "GameOver"
	case KindCredits:
		return "Credits"
	default:
		return "Unknown"
	}
}

// ParseKind returns the kind whose String is name
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
