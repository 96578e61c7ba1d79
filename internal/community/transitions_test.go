package community

import (
	"testing"

	"github.com/breakloop/community-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptySnapshot() Snapshot {
	return Snapshot{
		UpcomingActivities:      []Activity{},
		FriendSharedActivities:  []Activity{},
		PublicEvents:            []Activity{},
		SharedCurrentActivities: []Activity{},
		IncomingRequests:        []JoinRequest{},
		PendingRequests:         []JoinRequest{},
	}
}

func boardGameNight() Activity {
	return Activity{
		ID:         "event-1",
		Title:      "Board Game Night",
		Date:       "2026-09-06",
		Time:       "19:00",
		HostType:   enums.HostTypePublic,
		HostID:     "host-1",
		HostName:   "Spielcafe",
		Visibility: enums.VisibilityPublic,
		Status:     enums.ActivityStatusConfirmed,
	}
}

func TestCreateJoinRequestAddsPendingEverywhere(t *testing.T) {
	prev := emptySnapshot()
	prev.PublicEvents = []Activity{boardGameNight()}

	next := CreateJoinRequest(prev, boardGameNight(), Requester{ID: "user-1", Name: "Alex"}, CreateOptions{
		RequestID: "req-1",
		EntryID:   "ua-1",
	})

	require.Len(t, next.IncomingRequests, 1)
	request := next.IncomingRequests[0]
	assert.Equal(t, "req-1", request.ID)
	assert.Equal(t, "event-1", request.ActivityID)
	assert.Equal(t, "Board Game Night", request.ActivityTitle)
	assert.Equal(t, "user-1", request.RequesterID)
	assert.Equal(t, "host-1", request.HostID)
	assert.Equal(t, enums.RequestStatusPending, request.Status)

	require.Len(t, next.UpcomingActivities, 1)
	entry := next.UpcomingActivities[0]
	assert.Equal(t, "ua-1", entry.ID)
	assert.Equal(t, "event-1", entry.SourceID)
	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, enums.ActivityStatusPending, entry.Status)

	require.Len(t, next.PublicEvents, 1)
	assert.Equal(t, enums.ActivityStatusPending, next.PublicEvents[0].Status)

	assert.Equal(t, next.IncomingRequests, next.PendingRequests)
}

func TestCreateJoinRequestFlipsExistingEntry(t *testing.T) {
	prev := emptySnapshot()
	prev.UpcomingActivities = []Activity{{
		ID:       "ua-1",
		SourceID: "event-1",
		Title:    "Board Game Night",
		Status:   enums.ActivityStatusConfirmed,
	}}

	next := CreateJoinRequest(prev, boardGameNight(), Requester{ID: "user-1", Name: "Alex"}, CreateOptions{RequestID: "req-2"})

	require.Len(t, next.UpcomingActivities, 1)
	assert.Equal(t, "ua-1", next.UpcomingActivities[0].ID)
	assert.Equal(t, enums.ActivityStatusPending, next.UpcomingActivities[0].Status)
	assert.Equal(t, "req-2", next.UpcomingActivities[0].RequestID)
	require.Len(t, next.IncomingRequests, 1)
}

func TestCreateJoinRequestFriendVisibilityDefault(t *testing.T) {
	friend := Activity{ID: "fa-1", Title: "Bouldering", HostType: enums.HostTypeFriend, HostID: "f1"}
	prev := emptySnapshot()
	prev.FriendSharedActivities = []Activity{friend}

	next := CreateJoinRequest(prev, friend, Requester{ID: "user-1", Name: "Alex"}, CreateOptions{RequestID: "req-1"})

	assert.Equal(t, enums.VisibilityFriends, next.IncomingRequests[0].Visibility)
	assert.Equal(t, enums.ActivityStatusPending, next.FriendSharedActivities[0].Status)
}

func TestCreateJoinRequestDoesNotMutateInput(t *testing.T) {
	prev := emptySnapshot()
	prev.PublicEvents = []Activity{boardGameNight()}

	_ = CreateJoinRequest(prev, boardGameNight(), Requester{ID: "user-1"}, CreateOptions{RequestID: "req-1"})

	assert.Empty(t, prev.IncomingRequests)
	assert.Empty(t, prev.UpcomingActivities)
	assert.Equal(t, enums.ActivityStatusConfirmed, prev.PublicEvents[0].Status)
}

func TestAcceptJoinRequestConfirmsAndAddsParticipant(t *testing.T) {
	prev := emptySnapshot()
	prev.PublicEvents = []Activity{boardGameNight()}
	created := CreateJoinRequest(prev, boardGameNight(), Requester{ID: "user-1", Name: "Alex"}, CreateOptions{
		RequestID: "req-1",
		EntryID:   "ua-1",
	})

	accepted := AcceptJoinRequest(created, created.IncomingRequests[0])

	require.Len(t, accepted.IncomingRequests, 1)
	assert.Equal(t, enums.RequestStatusConfirmed, accepted.IncomingRequests[0].Status)
	assert.Equal(t, accepted.IncomingRequests, accepted.PendingRequests)

	assert.Equal(t, enums.ActivityStatusConfirmed, accepted.UpcomingActivities[0].Status)
	assert.Equal(t, enums.ActivityStatusConfirmed, accepted.PublicEvents[0].Status)

	require.Len(t, accepted.PublicEvents[0].Participants, 1)
	assert.Equal(t, "user-1", accepted.PublicEvents[0].Participants[0].ID)
	assert.Equal(t, "Alex", accepted.PublicEvents[0].Participants[0].Name)
	assert.Equal(t, enums.RequestStatusConfirmed, accepted.PublicEvents[0].Participants[0].Status)
	require.Len(t, accepted.UpcomingActivities[0].Participants, 1)
}

func TestAcceptJoinRequestIdempotent(t *testing.T) {
	prev := emptySnapshot()
	prev.PublicEvents = []Activity{boardGameNight()}
	created := CreateJoinRequest(prev, boardGameNight(), Requester{ID: "user-1", Name: "Alex"}, CreateOptions{RequestID: "req-1"})

	once := AcceptJoinRequest(created, created.IncomingRequests[0])
	twice := AcceptJoinRequest(once, once.IncomingRequests[0])

	assert.Equal(t, once, twice)
	require.Len(t, twice.PublicEvents[0].Participants, 1)
}

func TestAcceptJoinRequestKeepsHostingStatus(t *testing.T) {
	prev := emptySnapshot()
	prev.UpcomingActivities = []Activity{{
		ID:       "event-1",
		Title:    "Board Game Night",
		HostType: enums.HostTypeSelf,
		Status:   enums.ActivityStatusHosting,
	}}
	prev.IncomingRequests = []JoinRequest{{
		ID:            "req-1",
		ActivityID:    "event-1",
		RequesterID:   "user-1",
		RequesterName: "Alex",
		Status:        enums.RequestStatusPending,
	}}
	prev.PendingRequests = prev.IncomingRequests

	accepted := AcceptJoinRequest(prev, prev.IncomingRequests[0])

	assert.Equal(t, enums.ActivityStatusHosting, accepted.UpcomingActivities[0].Status)
	require.Len(t, accepted.UpcomingActivities[0].Participants, 1)
	assert.Equal(t, "user-1", accepted.UpcomingActivities[0].Participants[0].ID)
}

func TestDeclineJoinRequestKeepsHistory(t *testing.T) {
	prev := emptySnapshot()
	prev.PublicEvents = []Activity{boardGameNight()}
	created := CreateJoinRequest(prev, boardGameNight(), Requester{ID: "user-1", Name: "Alex"}, CreateOptions{
		RequestID: "req-1",
		EntryID:   "ua-1",
	})

	declined := DeclineJoinRequest(created, created.IncomingRequests[0])

	require.Len(t, declined.IncomingRequests, 1)
	assert.Equal(t, enums.RequestStatusRejected, declined.IncomingRequests[0].Status)
	assert.Equal(t, declined.IncomingRequests, declined.PendingRequests)
	assert.Empty(t, declined.UpcomingActivities)
}

func TestCancelJoinRequestRemovesPendingPair(t *testing.T) {
	prev := emptySnapshot()
	prev.PublicEvents = []Activity{boardGameNight()}
	created := CreateJoinRequest(prev, boardGameNight(), Requester{ID: "user-1", Name: "Alex"}, CreateOptions{
		RequestID: "req-1",
		EntryID:   "ua-1",
	})

	canceled := CancelJoinRequest(created, boardGameNight(), "user-1")

	assert.Empty(t, canceled.UpcomingActivities)
	assert.Empty(t, canceled.IncomingRequests)
	assert.Equal(t, canceled.IncomingRequests, canceled.PendingRequests)
}

func TestCancelJoinRequestLeavesConfirmedAlone(t *testing.T) {
	prev := emptySnapshot()
	prev.PublicEvents = []Activity{boardGameNight()}
	created := CreateJoinRequest(prev, boardGameNight(), Requester{ID: "user-1", Name: "Alex"}, CreateOptions{RequestID: "req-1"})
	accepted := AcceptJoinRequest(created, created.IncomingRequests[0])

	canceled := CancelJoinRequest(accepted, boardGameNight(), "user-1")

	require.Len(t, canceled.IncomingRequests, 1)
	assert.Equal(t, enums.RequestStatusConfirmed, canceled.IncomingRequests[0].Status)
	require.Len(t, canceled.UpcomingActivities, 1)
}

func TestCancelJoinRequestOnlyOwnRequests(t *testing.T) {
	prev := emptySnapshot()
	prev.PublicEvents = []Activity{boardGameNight()}
	created := CreateJoinRequest(prev, boardGameNight(), Requester{ID: "user-2", Name: "Mia"}, CreateOptions{
		RequestID: "req-9",
		EntryID:   "ua-9",
	})

	canceled := CancelJoinRequest(created, boardGameNight(), "user-1")

	// Someone else's pending request survives; their upcoming copy does
	// not carry requester identity so it is removed with the target match.
	require.Len(t, canceled.IncomingRequests, 1)
	assert.Equal(t, "req-9", canceled.IncomingRequests[0].ID)
}

func TestSetCurrentActivityReplacesAndClears(t *testing.T) {
	prev := emptySnapshot()
	current := Activity{ID: "curr-1", Title: "Focus Walk", Live: true}

	withCurrent := SetCurrentActivity(prev, &current)
	require.NotNil(t, withCurrent.CurrentActivity)
	assert.Equal(t, "curr-1", withCurrent.CurrentActivity.ID)

	// The stored copy is detached from the caller's value.
	current.Title = "changed"
	assert.Equal(t, "Focus Walk", withCurrent.CurrentActivity.Title)

	cleared := SetCurrentActivity(withCurrent, nil)
	assert.Nil(t, cleared.CurrentActivity)
}

func TestJoinFlowEndToEnd(t *testing.T) {
	prev := emptySnapshot()
	prev.PublicEvents = []Activity{boardGameNight()}

	created := CreateJoinRequest(prev, boardGameNight(), Requester{ID: "user-1", Name: "Alex"}, CreateOptions{
		RequestID: "req-1",
		EntryID:   "ua-1",
	})
	accepted := AcceptJoinRequest(created, created.IncomingRequests[0])

	assert.Equal(t, enums.RequestStatusConfirmed, accepted.IncomingRequests[0].Status)
	found, ok := FindUpcoming(boardGameNight(), accepted.UpcomingActivities)
	require.True(t, ok)
	assert.Equal(t, enums.ActivityStatusConfirmed, found.Status)

	// Cancel after confirmation changes nothing.
	after := CancelJoinRequest(accepted, boardGameNight(), "user-1")
	assert.Equal(t, accepted, after)
}
