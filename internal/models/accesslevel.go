package models

// AccessLevel is the ordered authorization tier a user may be granted.
// Higher values strictly include the lower ones.
type AccessLevel int

const (
	AccessLevelNone         AccessLevel = 0
	AccessLevelPublic       AccessLevel = 1
	AccessLevelRestricted   AccessLevel = 2
	AccessLevelConfidential AccessLevel = 3
)

func (l AccessLevel) String() string {
	switch l {
	case AccessLevelPublic:
		return "PUBLIC"
	case AccessLevelRestricted:
		return "RESTRICTED"
	case AccessLevelConfidential:
		return "CONFIDENTIAL"
	default:
		return "NONE"
	}
}

// Description is the operator-facing label for the tier.
func (l AccessLevel) Description() string {
	switch l {
	case AccessLevelPublic:
		return "Public access"
	case AccessLevelRestricted:
		return "Restricted access - directors"
	case AccessLevelConfidential:
		return "Confidential access - minister"
	default:
		return "No access"
	}
}

// Valid reports whether l is one of the three grantable tiers.
func (l AccessLevel) Valid() bool {
	return l >= AccessLevelPublic && l <= AccessLevelConfidential
}

// Allows reports whether a user holding l may be granted requested.
func (l AccessLevel) Allows(requested AccessLevel) bool {
	return l >= requested
}
