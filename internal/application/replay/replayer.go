package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/ledgeline/internal/domain/input"
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
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (input.Frame, bool) {
	if r.frame >= len(r.data.Frames) {
		return input.Frame{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Frame(), true
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Room returns the name of the room the recording started in
func (r *Replayer) Room() string {
	return r.data.Room
}

// TickRate returns the recorded tick rate, or fallback when none was stored
func (r *Replayer) TickRate(fallback int) int {
	if r.data.TickRate > 0 {
		return r.data.TickRate
	}
	return fallback
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}
