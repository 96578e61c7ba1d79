package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindUpcomingBySourceID(t *testing.T) {
	canonical := Activity{ID: "event-1", Title: "Board Game Night"}
	upcoming := []Activity{
		{ID: "ua-1", SourceID: "event-1", Title: "Board Game Night"},
		{ID: "ua-2", Title: "Morning Yoga"},
	}

	found, ok := FindUpcoming(canonical, upcoming)
	require.True(t, ok)
	assert.Equal(t, "ua-1", found.ID)
}

func TestFindUpcomingByOwnID(t *testing.T) {
	personal := Activity{ID: "ua-1", SourceID: "event-1"}
	upcoming := []Activity{{ID: "ua-1", SourceID: "event-1"}}

	found, ok := FindUpcoming(personal, upcoming)
	require.True(t, ok)
	assert.Equal(t, "ua-1", found.ID)
}

func TestFindUpcomingBySharedSource(t *testing.T) {
	// Two different personal copies of the same canonical event still match
	// through their shared sourceId.
	copyA := Activity{ID: "ua-a", SourceID: "event-9"}
	upcoming := []Activity{{ID: "ua-b", SourceID: "event-9"}}

	found, ok := FindUpcoming(copyA, upcoming)
	require.True(t, ok)
	assert.Equal(t, "ua-b", found.ID)
}

func TestFindUpcomingEmptyIDsNeverMatch(t *testing.T) {
	blank := Activity{}
	upcoming := []Activity{{ID: "", SourceID: ""}, {ID: "ua-1"}}

	_, ok := FindUpcoming(blank, upcoming)
	assert.False(t, ok)
}

func TestFindUpcomingNoMatch(t *testing.T) {
	_, ok := FindUpcoming(Activity{ID: "event-1"}, []Activity{{ID: "ua-1", SourceID: "event-2"}})
	assert.False(t, ok)
}
