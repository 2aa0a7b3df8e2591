// Package replay records per-frame host input and plays it back.
package replay

// FormatVersion is written into every recording.
const FormatVersion = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	MX int     `json:"mx"`           // MouseX
	MY int     `json:"my"`           // MouseY
	MD bool    `json:"md,omitempty"` // MouseDown
	MC bool    `json:"mc,omitempty"` // MouseClick
	DT float32 `json:"dt"`           // Frame time in seconds
	SW int     `json:"sw"`           // Screen width
	SH int     `json:"sh"`           // Screen height
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Scene     string       `json:"scene"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
