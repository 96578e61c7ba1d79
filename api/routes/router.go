package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/breakloop/community-backend/api/controllers"
	"github.com/breakloop/community-backend/api/middleware"
	"github.com/breakloop/community-backend/internal/community"
	"github.com/breakloop/community-backend/internal/settings"
	"github.com/breakloop/community-backend/internal/suggestions"
	"github.com/breakloop/community-backend/pkg/config"
	"github.com/breakloop/community-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	pingers map[string]controllers.Pinger,
	registry *prometheus.Registry,
	communityService community.Service,
	settingsService settings.Service,
	suggestionsService suggestions.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, pingers))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/community", func(r chi.Router) {
		r.Get("/state", controllers.CommunityState(communityService, logg))
		r.Patch("/state", controllers.CommunityPersist(communityService, logg))
		r.Put("/current-activity", controllers.SetCurrentActivity(communityService, logg))

		r.Route("/requests", func(r chi.Router) {
			r.Post("/", controllers.CreateJoinRequest(communityService, logg))
			r.Post("/cancel", controllers.CancelJoinRequest(communityService, logg, cfg.Snapshot.CurrentUserID))
			r.Post("/{requestID}/accept", controllers.AcceptJoinRequest(communityService, logg))
			r.Post("/{requestID}/decline", controllers.DeclineJoinRequest(communityService, logg))
		})
	})

	r.Route("/api/v1/settings", func(r chi.Router) {
		r.Get("/", controllers.GetSettings(settingsService, logg))
		r.Put("/", controllers.UpdateSettings(settingsService, logg))
		r.Post("/reset", controllers.ResetSettings(settingsService, logg))
	})

	r.Route("/api/v1/suggestions", func(r chi.Router) {
		r.Post("/", controllers.GenerateSuggestions(suggestionsService, logg))
	})

	return r
}
