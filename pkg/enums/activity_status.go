package enums

import "fmt"

// ActivityStatus captures the participation lifecycle of an activity entry.
type ActivityStatus string

const (
	ActivityStatusPending   ActivityStatus = "pending"
	ActivityStatusConfirmed ActivityStatus = "confirmed"
	ActivityStatusHosting   ActivityStatus = "hosting"
)

var validActivityStatuses = []ActivityStatus{
	ActivityStatusPending,
	ActivityStatusConfirmed,
	ActivityStatusHosting,
}

// String implements fmt.Stringer.
func (a ActivityStatus) String() string {
	return string(a)
}

// IsValid reports whether the value matches a known ActivityStatus.
func (a ActivityStatus) IsValid() bool {
	for _, candidate := range validActivityStatuses {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseActivityStatus converts raw input into an ActivityStatus.
func ParseActivityStatus(value string) (ActivityStatus, error) {
	for _, candidate := range validActivityStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid activity status %q", value)
}
