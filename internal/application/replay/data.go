// Package replay records the input events dispatched each frame so a
// screen-flow session can be reproduced headless.
package replay

import "github.com/younwookim/screenflow/internal/application/display"

// FrameInput records the input dispatched during a single frame
type FrameInput struct {
	F      int             `json:"f"`           // Frame number
	Dt     float64         `json:"dt"`          // Frame delta in seconds
	Events []display.Event `json:"e,omitempty"` // Events in dispatch order
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Start     string       `json:"start"` // Kind of the first screen
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	Progress  []int        `json:"progress,omitempty"` // Unlocked levels per world at start
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Version is written into every recording
const Version = "2.0"
