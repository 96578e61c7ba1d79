package enums

import "fmt"

// HostType identifies who owns the canonical copy of an activity.
type HostType string

const (
	HostTypeSelf   HostType = "self"
	HostTypeFriend HostType = "friend"
	HostTypePublic HostType = "public"
)

var validHostTypes = []HostType{
	HostTypeSelf,
	HostTypeFriend,
	HostTypePublic,
}

var hostTypeCardLabels = map[HostType]string{
	HostTypeSelf:   "My plan",
	HostTypeFriend: "Friend",
	HostTypePublic: "Public",
}

var hostTypeDetailLabels = map[HostType]string{
	HostTypeSelf:   "My plan",
	HostTypeFriend: "Friend activity",
	HostTypePublic: "Public event",
}

// String implements fmt.Stringer.
func (h HostType) String() string {
	return string(h)
}

// IsValid reports whether the value matches a known HostType.
func (h HostType) IsValid() bool {
	for _, candidate := range validHostTypes {
		if candidate == h {
			return true
		}
	}
	return false
}

// CardLabel returns the compact display label used on activity cards.
func (h HostType) CardLabel() string {
	return hostTypeCardLabels[h]
}

// DetailLabel returns the descriptive label used on activity detail views.
func (h HostType) DetailLabel() string {
	return hostTypeDetailLabels[h]
}

// ParseHostType converts raw input into a HostType.
func ParseHostType(value string) (HostType, error) {
	for _, candidate := range validHostTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid host type %q", value)
}
