package controllers

import (
	"net/http"

	"github.com/breakloop/community-backend/api/responses"
	"github.com/breakloop/community-backend/api/validators"
	"github.com/breakloop/community-backend/internal/suggestions"
	pkgerrors "github.com/breakloop/community-backend/pkg/errors"
	"github.com/breakloop/community-backend/pkg/logger"
)

// GenerateSuggestions produces alternative-activity ideas for the given
// mood and context.
func GenerateSuggestions(svc suggestions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "suggestions service unavailable"))
			return
		}
		if !svc.Enabled() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "suggestions are not configured"))
			return
		}

		var body suggestions.Request
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ideas, err := svc.Suggest(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ideas)
	}
}
