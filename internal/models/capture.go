package models

import "time"

// Capture is the outcome of one scan on a capture device: an opaque
// fixed-length template, the modality it encodes, and the device's quality
// assessment in [0,1]. The template is never mutated after capture.
type Capture struct {
	ID          string
	Template    []byte
	Modality    Modality
	Quality     float64
	CaptureTime time.Time
}
