// Package sound names the discrete audio cues screens can trigger.
package sound

// Cue identifies a one-shot or looping sound
type Cue int

const (
	CueMenuMove Cue = iota
	CueConfirm
	CueBack
	CuePause
	CueLevelStart
	CueBossWarning
	CueVictory
	CueUnlock
	CueGameOver

	cueCount
)

// Count returns the number of cues
func Count() int { return int(cueCount) }

// String returns the string representation of the cue
func (c Cue) String() string {
	switch c {
	case CueMenuMove:
		return "MenuMove"
	case CueConfirm:
		return "Confirm"
	case CueBack:
		return "Back"
	case CuePause:
		return "Pause"
	case CueLevelStart:
		return "LevelStart"
	case CueBossWarning:
		return "BossWarning"
	case CueVictory:
		return "Victory"
	case CueUnlock:
		return "Unlock"
	case CueGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
