package playing

import (
	"time"

	"github.com/Carter0/Bubble-Trouble-Clone/internal/application/replay"
	"github.com/Carter0/Bubble-Trouble-Clone/internal/ecs"
)

// Recorder collects the input of the round being played so it can be
// written out as a replay.
type Recorder struct {
	path   string
	config string
	data   replay.ReplayData
}

// NewRecorder records into path. config is stored so a replay can be
// run against the same tuning.
func NewRecorder(path, config string) *Recorder {
	return &Recorder{
		path:   path,
		config: config,
		data:   replay.NewData(config, time.Now()),
	}
}

// Record appends one tick's input
func (r *Recorder) Record(in ecs.Input) {
	r.data.Append(in)
}

// Frames is the number of ticks recorded in the current round
func (r *Recorder) Frames() int { return len(r.data.Frames) }

func (r *Recorder) Path() string { return r.path }

// Save writes the current round to the recorder's path
func (r *Recorder) Save() error {
	return replay.Save(r.path, r.data)
}

// Restart drops the recorded frames for a new round. The file is reused.
func (r *Recorder) Restart() {
	r.data = replay.NewData(r.config, time.Now())
}
