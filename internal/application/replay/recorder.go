package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/younwookim/ledgeline/internal/domain/input"
	"github.com/younwookim/ledgeline/internal/infrastructure/config"
)

// ErrEmpty is returned when saving a recording with no frames
var ErrEmpty = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder starts a recording of a session in room
func NewRecorder(room string, tickRate int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Room:      room,
			TickRate:  tickRate,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, tickRate*60), // about a minute
		},
		recording: true,
	}
}

// RecordFrame records a single frame's input
func (r *Recorder) RecordFrame(f input.Frame) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, NewFrameInput(r.frame, f))
	r.frame++
}

// Retune records the tuning in effect from the next recorded frame on.
// Before the first frame it sets the starting tuning.
func (r *Recorder) Retune(physics *config.PhysicsConfig) {
	if !r.recording || physics == nil {
		return
	}
	c := *physics
	if len(r.data.Frames) == 0 {
		r.data.Physics = &c
		r.data.Retunes = nil
		return
	}
	r.data.Retunes = append(r.data.Retunes, Retune{F: r.frame, Physics: &c})
}

// Encode writes the recording as indented JSON
func (r *Recorder) Encode(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Save writes the recording to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := r.Encode(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
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

// Data returns the recording so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
