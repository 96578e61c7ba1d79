package community

import (
	"encoding/json"

	"github.com/breakloop/community-backend/pkg/enums"
)

// Participant is a confirmed attendee embedded in an activity.
type Participant struct {
	ID     string              `json:"id"`
	Name   string              `json:"name"`
	Status enums.RequestStatus `json:"status"`
}

// Activity is one event entry. The same logical event may appear as a
// canonical shared/public copy and as a personal upcoming copy; SourceID is
// the weak back-reference from the personal copy to the canonical one.
// An empty SourceID means the entry is itself the canonical copy.
type Activity struct {
	ID              string               `json:"id"`
	SourceID        string               `json:"sourceId,omitempty"`
	RequestID       string               `json:"requestId,omitempty"`
	Title           string               `json:"title"`
	Description     string               `json:"description,omitempty"`
	Date            string               `json:"date,omitempty"`
	Time            string               `json:"time,omitempty"`
	EndTime         string               `json:"endTime,omitempty"`
	Location        string               `json:"location,omitempty"`
	HostType        enums.HostType       `json:"hostType,omitempty"`
	HostID          string               `json:"hostId,omitempty"`
	HostName        string               `json:"hostName,omitempty"`
	Visibility      enums.Visibility     `json:"visibility,omitempty"`
	Status          enums.ActivityStatus `json:"status,omitempty"`
	Participants    []Participant        `json:"participants,omitempty"`
	MaxParticipants int                  `json:"maxParticipants,omitempty"`
	Live            bool                 `json:"live,omitempty"`
	AllowJoin       bool                 `json:"allowJoin,omitempty"`
	StartedAt       int64                `json:"startedAt,omitempty"`
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	out := a
	if a.Participants != nil {
		out.Participants = make([]Participant, len(a.Participants))
		copy(out.Participants, a.Participants)
	}
	return out
}

// JoinRequest records one user's request to join one activity. The request
// ledger is append-only except for requester-initiated cancellation.
type JoinRequest struct {
	ID            string              `json:"id"`
	ActivityID    string              `json:"activityId"`
	ActivityTitle string              `json:"activityTitle"`
	RequesterID   string              `json:"requesterId"`
	RequesterName string              `json:"requesterName"`
	HostID        string              `json:"hostId"`
	Status        enums.RequestStatus `json:"status"`
	Visibility    enums.Visibility    `json:"visibility"`
}

// Requester identifies the user asking to join an activity.
type Requester struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Snapshot is the aggregate community state. PendingRequests is a legacy
// alias of IncomingRequests; every transition keeps the two equal.
type Snapshot struct {
	UpcomingActivities      []Activity    `json:"upcomingActivities"`
	FriendSharedActivities  []Activity    `json:"friendSharedActivities"`
	PublicEvents            []Activity    `json:"publicEvents"`
	SharedCurrentActivities []Activity    `json:"sharedCurrentActivities"`
	IncomingRequests        []JoinRequest `json:"incomingRequests"`
	PendingRequests         []JoinRequest `json:"pendingRequests"`
	CurrentActivity         *Activity     `json:"currentActivity"`
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		UpcomingActivities:      cloneActivities(s.UpcomingActivities),
		FriendSharedActivities:  cloneActivities(s.FriendSharedActivities),
		PublicEvents:            cloneActivities(s.PublicEvents),
		SharedCurrentActivities: cloneActivities(s.SharedCurrentActivities),
		IncomingRequests:        cloneRequests(s.IncomingRequests),
		PendingRequests:         cloneRequests(s.PendingRequests),
		CurrentActivity:         cloneActivityPtr(s.CurrentActivity),
	}
}

func cloneActivities(in []Activity) []Activity {
	out := make([]Activity, len(in))
	for i, activity := range in {
		out[i] = activity.Clone()
	}
	return out
}

func cloneRequests(in []JoinRequest) []JoinRequest {
	out := make([]JoinRequest, len(in))
	copy(out, in)
	return out
}

func cloneActivityPtr(in *Activity) *Activity {
	if in == nil {
		return nil
	}
	cloned := in.Clone()
	return &cloned
}

// Patch is a partial snapshot. Nil list fields mean "leave unchanged";
// CurrentActivitySet distinguishes "clear the current activity" from
// "do not touch it", which plain JSON null cannot express for lists.
type Patch struct {
	UpcomingActivities      []Activity
	FriendSharedActivities  []Activity
	PublicEvents            []Activity
	SharedCurrentActivities []Activity
	IncomingRequests        []JoinRequest
	PendingRequests         []JoinRequest
	CurrentActivity         *Activity
	CurrentActivitySet      bool
}

// UnmarshalJSON records whether the currentActivity key was present so a
// JSON null can clear it while an absent key leaves it alone.
func (p *Patch) UnmarshalJSON(data []byte) error {
	var raw struct {
		UpcomingActivities      []Activity      `json:"upcomingActivities"`
		FriendSharedActivities  []Activity      `json:"friendSharedActivities"`
		PublicEvents            []Activity      `json:"publicEvents"`
		SharedCurrentActivities []Activity      `json:"sharedCurrentActivities"`
		IncomingRequests        []JoinRequest   `json:"incomingRequests"`
		PendingRequests         []JoinRequest   `json:"pendingRequests"`
		CurrentActivity         json.RawMessage `json:"currentActivity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.UpcomingActivities = raw.UpcomingActivities
	p.FriendSharedActivities = raw.FriendSharedActivities
	p.PublicEvents = raw.PublicEvents
	p.SharedCurrentActivities = raw.SharedCurrentActivities
	p.IncomingRequests = raw.IncomingRequests
	p.PendingRequests = raw.PendingRequests
	p.CurrentActivity = nil
	p.CurrentActivitySet = false

	if raw.CurrentActivity != nil {
		p.CurrentActivitySet = true
		if string(raw.CurrentActivity) != "null" {
			var current Activity
			if err := json.Unmarshal(raw.CurrentActivity, &current); err != nil {
				return err
			}
			p.CurrentActivity = &current
		}
	}
	return nil
}

// PatchFrom converts a full snapshot into a patch touching every field.
func PatchFrom(s Snapshot) Patch {
	return Patch{
		UpcomingActivities:      s.UpcomingActivities,
		FriendSharedActivities:  s.FriendSharedActivities,
		PublicEvents:            s.PublicEvents,
		SharedCurrentActivities: s.SharedCurrentActivities,
		IncomingRequests:        s.IncomingRequests,
		PendingRequests:         s.PendingRequests,
		CurrentActivity:         s.CurrentActivity,
		CurrentActivitySet:      true,
	}
}

// Merge lays a patch over a base snapshot field-by-field. Untouched fields
// come from the base; the result is always a fresh deep copy with non-nil
// lists so serialized snapshots round-trip without resurrecting defaults.
func Merge(base Snapshot, patch Patch) Snapshot {
	merged := base.Clone()
	if patch.UpcomingActivities != nil {
		merged.UpcomingActivities = cloneActivities(patch.UpcomingActivities)
	}
	if patch.FriendSharedActivities != nil {
		merged.FriendSharedActivities = cloneActivities(patch.FriendSharedActivities)
	}
	if patch.PublicEvents != nil {
		merged.PublicEvents = cloneActivities(patch.PublicEvents)
	}
	if patch.SharedCurrentActivities != nil {
		merged.SharedCurrentActivities = cloneActivities(patch.SharedCurrentActivities)
	}
	if patch.IncomingRequests != nil {
		merged.IncomingRequests = cloneRequests(patch.IncomingRequests)
	}
	if patch.PendingRequests != nil {
		merged.PendingRequests = cloneRequests(patch.PendingRequests)
	}
	if patch.CurrentActivitySet {
		merged.CurrentActivity = cloneActivityPtr(patch.CurrentActivity)
	}
	return merged
}
