// Package models holds the value types shared by the biometric engine and
// its collaborators: captures, users, access levels and authentication
// results. All of them are immutable after construction.
package models

// Modality identifies the biometric type a template encodes.
type Modality int

const (
	ModalityUnknown Modality = iota
	ModalityFingerprint
	ModalityFacial
	ModalityIris
)

func (m Modality) String() string {
	switch m {
	case ModalityFingerprint:
		return "FINGERPRINT"
	case ModalityFacial:
		return "FACIAL_RECOGNITION"
	case ModalityIris:
		return "IRIS_SCAN"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether m is one of the declared modalities.
func (m Modality) Valid() bool {
	return m == ModalityFingerprint || m == ModalityFacial || m == ModalityIris
}
