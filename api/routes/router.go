package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dormpack/dormpack-backend/api/controllers"
	"github.com/dormpack/dormpack-backend/api/middleware"
	"github.com/dormpack/dormpack-backend/internal/auth"
	"github.com/dormpack/dormpack-backend/internal/lists"
	"github.com/dormpack/dormpack-backend/internal/profiles"
	"github.com/dormpack/dormpack-backend/internal/sharing"
	"github.com/dormpack/dormpack-backend/internal/suggestions"
	"github.com/dormpack/dormpack-backend/pkg/auth/session"
	"github.com/dormpack/dormpack-backend/pkg/config"
	"github.com/dormpack/dormpack-backend/pkg/logger"
	"github.com/dormpack/dormpack-backend/pkg/metrics"
	"github.com/dormpack/dormpack-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	healthDeps map[string]controllers.Pinger,
	redisClient *redis.Client,
	promRegistry *prometheus.Registry,
	httpMetrics *metrics.HTTPMetrics,
	sessionChecker session.AccessSessionChecker,
	authService auth.Service,
	registerService auth.RegisterService,
	profileService profiles.Service,
	listService lists.Service,
	sharingService sharing.Service,
	suggestionService suggestions.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(httpMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, healthDeps))
	})

	if promRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}))
	}

	// Public shared-list surface. Viewers arrive anonymously with a token;
	// owners and suggestion authors may also carry a bearer token.
	r.Route("/shared/{listId}", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(cfg.JWT, sessionChecker, logg))
		r.Get("/", controllers.GetSharedList(sharingService, logg))
		r.Get("/categories", controllers.GetSharedCategories(sharingService, logg))
		r.Get("/items", controllers.GetSharedItems(sharingService, logg))
		r.Patch("/items/{itemId}", controllers.ToggleSharedItem(sharingService, logg))
		r.Post("/suggestions", controllers.SubmitSuggestion(suggestionService, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).
			Post("/login", controllers.AuthLogin(authService, logg))
		r.With(
			middleware.AuthRateLimit(registerPolicy, redisClient, logg),
			middleware.Idempotency(redisClient, logg),
		).Post("/register", controllers.AuthRegister(registerService, logg))
		r.Post("/refresh", controllers.AuthRefresh(authService, logg))
		r.With(middleware.Auth(cfg.JWT, sessionChecker, logg)).
			Post("/logout", controllers.AuthLogout(authService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessionChecker, logg))
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.GetProfile(profileService, logg))
			r.Put("/", controllers.UpdateProfile(profileService, logg))
		})

		r.Route("/lists", func(r chi.Router) {
			r.Post("/", controllers.CreateList(listService, logg))
			r.Get("/", controllers.GetLists(listService, logg))
			r.Route("/{listId}", func(r chi.Router) {
				r.Get("/", controllers.GetList(listService, logg))
				r.Patch("/", controllers.UpdateList(listService, logg))
				r.Delete("/", controllers.DeleteList(listService, logg))
				r.Put("/sharing", controllers.UpdateSharing(listService, logg))
				r.Post("/sharing/rotate", controllers.RotateShareToken(listService, logg))
				r.Post("/copy", controllers.CopyList(listService, logg))
				r.Post("/templates", controllers.InstallTemplate(listService, logg))
				r.Post("/categories", controllers.CreateCategory(listService, logg))
				r.Get("/suggestions", controllers.ListPendingSuggestions(suggestionService, logg))
			})
		})

		r.Route("/categories/{categoryId}", func(r chi.Router) {
			r.Patch("/", controllers.RenameCategory(listService, logg))
			r.Delete("/", controllers.DeleteCategory(listService, logg))
			r.Post("/items", controllers.CreateItem(listService, logg))
		})

		r.Route("/items/{itemId}", func(r chi.Router) {
			r.Patch("/", controllers.UpdateItem(listService, logg))
			r.Delete("/", controllers.DeleteItem(listService, logg))
		})

		r.Route("/suggestions/{suggestionId}", func(r chi.Router) {
			r.Post("/accept", controllers.AcceptSuggestion(suggestionService, logg))
			r.Post("/reject", controllers.RejectSuggestion(suggestionService, logg))
		})
	})

	return r
}
