package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ReplayInput represents input state during replay
type ReplayInput struct {
	Left         bool
	Right        bool
	Up           bool
	Down         bool
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	Dash         bool
	ToggleGod    bool
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return DecodeReplay(file)
}

// DecodeReplay reads replay data from r
func DecodeReplay(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Level == "" {
		return nil, fmt.Errorf("replay has no level")
	}
	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		Left:         fi.L,
		Right:        fi.R,
		Up:           fi.U,
		Down:         fi.D,
		Jump:         fi.J,
		JumpPressed:  fi.JP,
		JumpReleased: fi.JR,
		Dash:         fi.Dsh,
		ToggleGod:    fi.God,
	}, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Level returns the level path the run was recorded on
func (r *Replayer) Level() string {
	return r.data.Level
}

// GodMode reports whether the run started invulnerable
func (r *Replayer) GodMode() bool {
	return r.data.GodMode
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, level string) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Level:     level,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
