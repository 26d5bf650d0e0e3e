package replay

import (
	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/system"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/ecs"
)

// Replayer hands out recorded inputs one tick at a time
type Replayer struct {
	data ReplayData
	pos  int
}

// NewReplayer creates a replayer positioned at the first frame
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Next returns the input for the next frame. ok is false once every
// frame has been consumed.
func (r *Replayer) Next() (in ecs.Input, ok bool) {
	if r.pos >= len(r.data.Frames) {
		return ecs.Input{}, false
	}
	in = r.data.Frames[r.pos].Input()
	r.pos++
	return in, true
}

// Pos is the number of frames consumed so far
func (r *Replayer) Pos() int { return r.pos }

// Len is the number of recorded frames
func (r *Replayer) Len() int { return len(r.data.Frames) }

// Config names the config file the run was recorded with
func (r *Replayer) Config() string { return r.data.Config }

// Rewind moves back to the first frame
func (r *Replayer) Rewind() { r.pos = 0 }

// Play feeds recorded frames into sim until the frames run out or the
// round finishes, and returns the last tick's result. observe, when not
// nil, sees every tick.
func Play(sim *system.Simulation, r *Replayer, observe func(system.TickResult)) system.TickResult {
	last := system.TickResult{Tick: sim.Tick(), State: sim.State()}
	for !sim.State().Finished() {
		in, ok := r.Next()
		if !ok {
			break
		}
		last = sim.Step(in)
		if observe != nil {
			observe(last)
		}
	}
	return last
}
