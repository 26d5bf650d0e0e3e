package replay

import (
	"time"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/ecs"
)

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F     int  `json:"f"`           // Frame number
	L     bool `json:"l,omitempty"` // Left
	R     bool `json:"r,omitempty"` // Right
	Shoot bool `json:"s,omitempty"` // Fire (edge)
}

// FromInput converts a tick input into its recorded form
func FromInput(frame int, in ecs.Input) FrameInput {
	return FrameInput{F: frame, L: in.MoveLeft, R: in.MoveRight, Shoot: in.Fire}
}

// Input converts a recorded frame back into a tick input
func (fi FrameInput) Input() ecs.Input {
	return ecs.Input{MoveLeft: fi.L, MoveRight: fi.R, Fire: fi.Shoot}
}

// ReplayData contains all data needed to replay a game session.
// The simulation is deterministic, so the config name and the input
// stream are enough to reproduce a run.
type ReplayData struct {
	Version   string       `json:"version"`
	Config    string       `json:"config"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewData starts an empty recording of a round played with config
func NewData(config string, started time.Time) ReplayData {
	return ReplayData{
		Version:   Version,
		Config:    config,
		StartTime: started.Format(time.RFC3339),
		Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60 TPS
	}
}

// Append records in as the next frame
func (d *ReplayData) Append(in ecs.Input) {
	d.Frames = append(d.Frames, FromInput(len(d.Frames), in))
}

// Scripted builds a recording of an idle player who fires on every
// fireEvery-th frame. fireEvery <= 0 never fires.
func Scripted(frames, fireEvery int) ReplayData {
	data := NewData("test", time.Now())
	for i := 0; i < frames; i++ {
		data.Append(ecs.Input{Fire: fireEvery > 0 && i%fireEvery == 0})
	}
	return data
}
