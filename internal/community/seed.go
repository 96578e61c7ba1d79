package community

import "github.com/breakloop/community-backend/pkg/enums"

// CurrentUserID is the default local-user id used when no account context
// is configured.
const CurrentUserID = "f0"

// DefaultSnapshot returns the demo seed state. Every call returns a fresh
// copy so callers can never alias the seed data.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		UpcomingActivities: []Activity{
			{
				ID:         "ua-yoga",
				Title:      "Morning Yoga",
				Date:       "2026-09-02",
				Time:       "07:30",
				EndTime:    "08:15",
				Location:   "Westpark",
				HostType:   enums.HostTypeSelf,
				HostID:     CurrentUserID,
				HostName:   "Wei",
				Visibility: enums.VisibilityFriends,
				Status:     enums.ActivityStatusHosting,
				Participants: []Participant{
					{ID: CurrentUserID, Name: "Wei", Status: enums.RequestStatusConfirmed},
				},
			},
		},
		FriendSharedActivities: []Activity{
			{
				ID:         "fa-reading",
				Title:      "Reading at Cafe",
				Date:       "2026-09-03",
				Time:       "18:00",
				Location:   "Cafe Kosmos",
				HostType:   enums.HostTypeFriend,
				HostID:     "f3",
				HostName:   "Sarah",
				Visibility: enums.VisibilityFriends,
				Status:     enums.ActivityStatusConfirmed,
				Participants: []Participant{
					{ID: "f3", Name: "Sarah", Status: enums.RequestStatusConfirmed},
				},
			},
			{
				ID:         "fa-bouldering",
				Title:      "Bouldering Session",
				Date:       "2026-09-05",
				Time:       "17:30",
				Location:   "Boulderwelt Ost",
				HostType:   enums.HostTypeFriend,
				HostID:     "f1",
				HostName:   "Hans",
				Visibility: enums.VisibilityFriends,
				Status:     enums.ActivityStatusConfirmed,
				Participants: []Participant{
					{ID: "f1", Name: "Hans", Status: enums.RequestStatusConfirmed},
				},
			},
		},
		PublicEvents: []Activity{
			{
				ID:              "pe-boardgames",
				Title:           "Board Game Night",
				Date:            "2026-09-06",
				Time:            "19:00",
				Location:        "Spielcafe Munich",
				HostType:        enums.HostTypePublic,
				HostID:          "host-spielcafe",
				HostName:        "Spielcafe",
				Visibility:      enums.VisibilityPublic,
				Status:          enums.ActivityStatusConfirmed,
				MaxParticipants: 12,
			},
			{
				ID:         "pe-runclub",
				Title:      "Isar Run Club",
				Date:       "2026-09-07",
				Time:       "09:00",
				Location:   "Isar banks",
				HostType:   enums.HostTypePublic,
				HostID:     "host-runclub",
				HostName:   "Run Club Munich",
				Visibility: enums.VisibilityPublic,
				Status:     enums.ActivityStatusConfirmed,
			},
		},
		SharedCurrentActivities: []Activity{},
		IncomingRequests:        []JoinRequest{},
		PendingRequests:         []JoinRequest{},
		CurrentActivity:         nil,
	}
}
