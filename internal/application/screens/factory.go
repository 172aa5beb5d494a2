// Package screens implements every display state of the game.
//
// Screens with a scripted sequence share the flow helper: tick every owned
// ticker each frame, fold their done flags into one ready signal and act on
// input only once the input-accepting phase is reached. Every screen owns a
// render chain sized to the window and releases its assets on Close.
package screens

import (
	"fmt"

	"github.com/younwookim/screenflow/internal/application/display"
	"github.com/younwookim/screenflow/internal/application/state"
)

// New is the display.Factory for every kind
func New(kind state.Kind, params state.Params, ctx *display.Context) (display.State, error) {
	switch kind {
	case state.KindMainMenu:
		return NewMainMenu(ctx, params), nil
	case state.KindWorldSelect:
		return NewWorldSelect(ctx, params), nil
	case state.KindLevelSelect:
		return NewLevelSelect(ctx, params), nil
	case state.KindLevelStart:
		return NewLevelStart(ctx, params), nil
	case state.KindInGame:
		return NewInGame(ctx, params), nil
	case state.KindInGameBoss:
		return NewInGameBoss(ctx, params), nil
	case state.KindInGamePause:
		return NewInGamePause(ctx, params), nil
	case state.KindLevelEnd:
		return NewLevelEnd(ctx, params), nil
	case state.KindLevelComplete:
		return NewLevelComplete(ctx, params), nil
	case state.KindBossComplete:
		return NewBossComplete(ctx, params), nil
	case state.KindGameComplete:
		return NewGameComplete(ctx, params), nil
	case state.KindGameOver:
		return NewGameOver(ctx, params), nil
	case state.KindCredits:
		return NewCredits(ctx, params), nil
	default:
		return nil, fmt.Errorf("no screen for kind %s (%d)", kind, int(kind))
	}
}

var _ display.Factory = New
