// Package replay stores recorded level runs and plays their input back.
package replay

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  `json:"f"`             // Frame number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	U   bool `json:"u,omitempty"`   // Up
	D   bool `json:"d,omitempty"`   // Down
	J   bool `json:"j,omitempty"`   // Jump
	JP  bool `json:"jp,omitempty"`  // JumpPressed
	JR  bool `json:"jr,omitempty"`  // JumpReleased
	Dsh bool `json:"dsh,omitempty"` // Dash
	God bool `json:"god,omitempty"` // ToggleGod
}

// ReplayData contains all data needed to replay a level run
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	GodMode   bool         `json:"godMode,omitempty"` // invulnerable at start
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
