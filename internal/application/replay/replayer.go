package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/screenflow/internal/application/display"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("failed to decode replay: no frames")
	}
	return &data, nil
}

// Next returns the delta and events of the current frame and advances
func (r *Replayer) Next() (float64, []display.Event, bool) {
	if r.frame >= len(r.data.Frames) {
		return 0, nil, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Dt, fi.Events, true
}

// Data returns the replay being played
func (r *Replayer) Data() ReplayData {
	return r.data
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Script builds replay data from a list of frames, each a dt and the
// events dispatched in it. Tests and demos use it.
func Script(start string, w, h int, frames ...FrameInput) ReplayData {
	data := ReplayData{Version: Version, Start: start, Width: w, Height: h, Frames: frames}
	for i := range data.Frames {
		data.Frames[i].F = i
	}
	return data
}

// Idle returns n frames of dt with no input
func Idle(n int, dt float64) []FrameInput {
	out := make([]FrameInput, n)
	for i := range out {
		out[i] = FrameInput{Dt: dt}
	}
	return out
}
