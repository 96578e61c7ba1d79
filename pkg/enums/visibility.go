package enums

import "fmt"

// Visibility controls which viewers may see an activity.
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityFriends Visibility = "friends"
	VisibilityPublic  Visibility = "public"
)

var validVisibilities = []Visibility{
	VisibilityPrivate,
	VisibilityFriends,
	VisibilityPublic,
}

// String implements fmt.Stringer.
func (v Visibility) String() string {
	return string(v)
}

// IsValid reports whether the value matches a known Visibility.
func (v Visibility) IsValid() bool {
	for _, candidate := range validVisibilities {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseVisibility converts raw input into a Visibility.
func ParseVisibility(value string) (Visibility, error) {
	for _, candidate := range validVisibilities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid visibility %q", value)
}

// VisibilityForHost derives the request visibility when the activity carries
// none: public hosts imply public, everything else stays friends-only.
func VisibilityForHost(hostType HostType) Visibility {
	if hostType == HostTypePublic {
		return VisibilityPublic
	}
	return VisibilityFriends
}
