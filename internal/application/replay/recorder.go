package replay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/younwookim/screenflow/internal/application/display"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a recorder for a session starting on start at w x h
// with the given unlock table
func NewRecorder(start string, w, h int, unlocked []int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Start:     start,
			Width:     w,
			Height:    h,
			Progress:  slices.Clone(unlocked),
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single frame's events
func (r *Recorder) RecordFrame(dt float64, events []display.Event) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, FrameInput{
		F:      r.frame,
		Dt:     dt,
		Events: slices.Clone(events),
	})
	r.frame++
}

// Save writes the replay to target and returns the written path. A target
// that is an existing directory gets a timestamped file name inside it. The
// file is replaced atomically so an interrupted save keeps the old replay.
func (r *Recorder) Save(target string) (string, error) {
	if len(r.data.Frames) == 0 {
		return "", fmt.Errorf("no frames to save")
	}
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		target = filepath.Join(target, GenerateFilename())
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return "", fmt.Errorf("failed to encode replay: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".replay-*")
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	return target, nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the recorded data
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
