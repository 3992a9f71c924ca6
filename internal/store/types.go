package store

import "time"

// DetectionRun is one recorded detection outcome for a codebase root.
type DetectionRun struct {
	ID                 int64
	Root               string
	DetectedTechnology string
	Confidence         float64
	FallbackUsed       bool
	TemplateMissing    bool
	FileCount          int
	CreatedAt          time.Time
}
