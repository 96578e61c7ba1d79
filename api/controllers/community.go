package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/breakloop/community-backend/api/responses"
	"github.com/breakloop/community-backend/api/validators"
	"github.com/breakloop/community-backend/internal/community"
	pkgerrors "github.com/breakloop/community-backend/pkg/errors"
	"github.com/breakloop/community-backend/pkg/logger"
	"github.com/breakloop/community-backend/pkg/timeutil"
)

type createJoinRequestBody struct {
	Activity  community.Activity  `json:"activity" validate:"required"`
	Requester community.Requester `json:"requester" validate:"required"`
	RequestID string              `json:"requestId"`
}

type cancelJoinRequestBody struct {
	Activity    community.Activity `json:"activity" validate:"required"`
	RequesterID string             `json:"requesterId"`
}

type setCurrentActivityBody struct {
	CurrentActivity *community.Activity `json:"currentActivity"`
}

// CommunityState returns the full cached snapshot.
func CommunityState(svc community.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "community service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.State(r.Context()))
	}
}

// CommunityPersist lays a partial snapshot over the cached state and
// returns the merged result.
func CommunityPersist(svc community.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "community service unavailable"))
			return
		}

		var patch community.Patch
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		merged, err := svc.Persist(r.Context(), patch)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, merged)
	}
}

// CreateJoinRequest registers a join request for the given activity.
func CreateJoinRequest(svc community.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "community service unavailable"))
			return
		}

		var body createJoinRequestBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if body.Activity.ID == "" && body.Activity.SourceID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "activity id is required"))
			return
		}
		if body.Requester.ID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "requester id is required"))
			return
		}

		snapshot, err := svc.CreateJoinRequest(r.Context(), normalizeSchedule(body.Activity), body.Requester, community.CreateOptions{
			RequestID: body.RequestID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, snapshot)
	}
}

// normalizeSchedule converts display-formatted dates like "Mon, Nov 18"
// and 12-hour clock values to the ISO/24-hour forms the snapshot stores.
// Values that are already normalized, or unparseable, pass through as-is.
func normalizeSchedule(activity community.Activity) community.Activity {
	activity.Date = timeutil.ParseFormattedDate(activity.Date, activity.Date, time.Now())
	if clocks := timeutil.ParseClockRange(activity.Time); clocks.Start != "" {
		activity.Time = clocks.Start
		if activity.EndTime == "" && clocks.End != "" {
			activity.EndTime = clocks.End
		}
	}
	if end := timeutil.ParseClock(activity.EndTime); end != "" {
		activity.EndTime = end
	}
	return activity
}

// AcceptJoinRequest confirms the request with the given id. Unknown ids
// leave the snapshot unchanged.
func AcceptJoinRequest(svc community.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "community service unavailable"))
			return
		}

		requestID := chi.URLParam(r, "requestID")
		if requestID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "request id is required"))
			return
		}

		snapshot, err := svc.AcceptJoinRequest(r.Context(), requestID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snapshot)
	}
}

// DeclineJoinRequest rejects the request with the given id but keeps it in
// the ledger.
func DeclineJoinRequest(svc community.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "community service unavailable"))
			return
		}

		requestID := chi.URLParam(r, "requestID")
		if requestID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "request id is required"))
			return
		}

		snapshot, err := svc.DeclineJoinRequest(r.Context(), requestID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snapshot)
	}
}

// CancelJoinRequest withdraws the requester's own pending request for the
// given activity. An absent requesterId falls back to the configured local
// user.
func CancelJoinRequest(svc community.Service, logg *logger.Logger, defaultRequesterID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "community service unavailable"))
			return
		}

		var body cancelJoinRequestBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if body.Activity.ID == "" && body.Activity.SourceID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "activity id is required"))
			return
		}
		requesterID := body.RequesterID
		if requesterID == "" {
			requesterID = defaultRequesterID
		}
		if requesterID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "requester id is required"))
			return
		}

		snapshot, err := svc.CancelJoinRequest(r.Context(), body.Activity, requesterID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snapshot)
	}
}

// SetCurrentActivity replaces or clears the live current-activity card.
func SetCurrentActivity(svc community.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "community service unavailable"))
			return
		}

		var body setCurrentActivityBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		snapshot, err := svc.SetCurrentActivity(r.Context(), body.CurrentActivity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, snapshot)
	}
}
