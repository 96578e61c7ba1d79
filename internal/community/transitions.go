package community

import (
	"github.com/breakloop/community-backend/pkg/enums"
	"github.com/google/uuid"
)

// Transition functions are pure and total: they never mutate their inputs,
// always return a fresh snapshot, and treat "nothing matched" as a silent
// no-op so optimistic UI actions stay idempotent and replay-safe.

// CreateOptions lets callers pin generated ids for deterministic replays.
type CreateOptions struct {
	RequestID string
	EntryID   string
}

// NewRequestID generates a join-request id.
func NewRequestID() string {
	return "req-" + uuid.NewString()
}

// NewEntryID generates an id for a personal upcoming entry.
func NewEntryID() string {
	return "ua-" + uuid.NewString()
}

// CreateJoinRequest appends a pending join request for the requester and
// mirrors the pending status onto every representation of the activity:
// the requester's personal upcoming copy (created if absent) and whichever
// shared lists carry the canonical copy. The shared lists are what other
// viewers see; upcomingActivities is what the requester sees.
func CreateJoinRequest(prev Snapshot, activity Activity, requester Requester, opts CreateOptions) Snapshot {
	next := prev.Clone()

	requestID := opts.RequestID
	if requestID == "" {
		requestID = NewRequestID()
	}
	target := targetID(activity)

	visibility := activity.Visibility
	if visibility == "" {
		visibility = enums.VisibilityForHost(activity.HostType)
	}

	existing := false
	for _, entry := range next.UpcomingActivities {
		if (entry.SourceID != "" && entry.SourceID == target) || (entry.ID != "" && entry.ID == target) {
			existing = true
			break
		}
	}

	if existing {
		for i, entry := range next.UpcomingActivities {
			if (entry.SourceID != "" && entry.SourceID == target) || (entry.ID != "" && entry.ID == target) {
				next.UpcomingActivities[i].Status = enums.ActivityStatusPending
				next.UpcomingActivities[i].RequestID = requestID
			}
		}
	} else {
		entry := activity.Clone()
		entry.ID = opts.EntryID
		if entry.ID == "" {
			entry.ID = NewEntryID()
		}
		entry.SourceID = target
		entry.Status = enums.ActivityStatusPending
		entry.RequestID = requestID
		entry.Visibility = visibility
		next.UpcomingActivities = append(next.UpcomingActivities, entry)
	}

	markPending := func(list []Activity) {
		for i, item := range list {
			if (item.ID != "" && item.ID == activity.ID) || (item.ID != "" && item.ID == target) {
				list[i].Status = enums.ActivityStatusPending
			}
		}
	}
	if activity.HostType == enums.HostTypeFriend {
		markPending(next.FriendSharedActivities)
	}
	if activity.HostType == enums.HostTypePublic {
		markPending(next.PublicEvents)
	}
	markPending(next.SharedCurrentActivities)

	next.IncomingRequests = append(next.IncomingRequests, JoinRequest{
		ID:            requestID,
		ActivityID:    target,
		ActivityTitle: activity.Title,
		RequesterID:   requester.ID,
		RequesterName: requester.Name,
		HostID:        activity.HostID,
		Status:        enums.RequestStatusPending,
		Visibility:    visibility,
	})
	next.PendingRequests = next.IncomingRequests

	return next
}

// AcceptJoinRequest flips the request to confirmed and promotes the
// requester to a participant on every list that carries a matching
// activity. A host's own "hosting" copy is never demoted. The request stays
// in the ledger.
func AcceptJoinRequest(prev Snapshot, request JoinRequest) Snapshot {
	next := prev.Clone()

	var participant *Participant
	if request.RequesterID != "" {
		participant = &Participant{
			ID:     request.RequesterID,
			Name:   request.RequesterName,
			Status: enums.RequestStatusConfirmed,
		}
	}

	for i, req := range next.IncomingRequests {
		if req.ID == request.ID {
			next.IncomingRequests[i].Status = enums.RequestStatusConfirmed
		}
	}
	next.PendingRequests = next.IncomingRequests

	confirmMatching(next.UpcomingActivities, request, participant)
	confirmMatching(next.FriendSharedActivities, request, participant)
	confirmMatching(next.PublicEvents, request, participant)
	confirmMatching(next.SharedCurrentActivities, request, participant)

	return next
}

func confirmMatching(list []Activity, request JoinRequest, participant *Participant) {
	for i, activity := range list {
		matches := (activity.RequestID != "" && activity.RequestID == request.ID) ||
			(activity.SourceID != "" && activity.SourceID == request.ActivityID) ||
			(activity.ID != "" && activity.ID == request.ActivityID)
		if !matches {
			continue
		}
		if list[i].Status != enums.ActivityStatusHosting {
			list[i].Status = enums.ActivityStatusConfirmed
		}
		if participant != nil {
			list[i].Participants = appendParticipant(list[i].Participants, *participant)
		}
	}
}

// appendParticipant adds the participant unless one with the same id is
// already present.
func appendParticipant(participants []Participant, participant Participant) []Participant {
	for _, existing := range participants {
		if existing.ID == participant.ID {
			return participants
		}
	}
	return append(participants, participant)
}

// DeclineJoinRequest flips the request to rejected — it stays in the ledger
// as history — and removes the requester's pending upcoming copy.
func DeclineJoinRequest(prev Snapshot, request JoinRequest) Snapshot {
	next := prev.Clone()

	for i, req := range next.IncomingRequests {
		if req.ID == request.ID {
			next.IncomingRequests[i].Status = enums.RequestStatusRejected
		}
	}
	next.PendingRequests = next.IncomingRequests

	kept := next.UpcomingActivities[:0]
	for _, activity := range next.UpcomingActivities {
		if activity.RequestID != request.ID {
			kept = append(kept, activity)
		}
	}
	next.UpcomingActivities = kept

	return next
}

// CancelJoinRequest is the requester withdrawing their own still-pending
// request: the pending upcoming copy and the pending ledger entry both
// disappear. Confirmed or rejected requests are historical record and are
// left alone.
func CancelJoinRequest(prev Snapshot, activity Activity, requesterID string) Snapshot {
	next := prev.Clone()
	target := targetID(activity)

	keptActivities := next.UpcomingActivities[:0]
	for _, entry := range next.UpcomingActivities {
		matches := (entry.ID != "" && entry.ID == activity.ID) ||
			(entry.SourceID != "" && entry.SourceID == target) ||
			(entry.ID != "" && entry.ID == target)
		if matches && entry.Status == enums.ActivityStatusPending {
			continue
		}
		keptActivities = append(keptActivities, entry)
	}
	next.UpcomingActivities = keptActivities

	keptRequests := next.IncomingRequests[:0]
	for _, req := range next.IncomingRequests {
		matches := req.ActivityID != "" && (req.ActivityID == target || req.ActivityID == activity.ID)
		if matches && req.RequesterID == requesterID && req.Status == enums.RequestStatusPending {
			continue
		}
		keptRequests = append(keptRequests, req)
	}
	next.IncomingRequests = keptRequests
	next.PendingRequests = next.IncomingRequests

	return next
}

// SetCurrentActivity replaces the live current-activity card wholesale; nil
// clears it. The caller owns payload validity.
func SetCurrentActivity(prev Snapshot, current *Activity) Snapshot {
	next := prev.Clone()
	next.CurrentActivity = cloneActivityPtr(current)
	return next
}
