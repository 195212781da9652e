package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mercie-ux/mkulima-cooperative/api/controllers"
	"github.com/mercie-ux/mkulima-cooperative/api/middleware"
	"github.com/mercie-ux/mkulima-cooperative/internal/auth"
	"github.com/mercie-ux/mkulima-cooperative/internal/crops"
	"github.com/mercie-ux/mkulima-cooperative/internal/farmers"
	usersvc "github.com/mercie-ux/mkulima-cooperative/internal/users"
	"github.com/mercie-ux/mkulima-cooperative/pkg/config"
	"github.com/mercie-ux/mkulima-cooperative/pkg/db"
	"github.com/mercie-ux/mkulima-cooperative/pkg/enums"
	"github.com/mercie-ux/mkulima-cooperative/pkg/logger"
	"github.com/mercie-ux/mkulima-cooperative/pkg/metrics"
	"github.com/mercie-ux/mkulima-cooperative/pkg/redis"
)

// Deps bundles everything the router needs wired in.
type Deps struct {
	Config          *config.Config
	Logger          *logger.Logger
	DBPinger        db.Pinger
	Redis           *redis.Client
	HTTPMetrics     *metrics.HTTPMetrics
	MetricsRegistry prometheus.Gatherer
	AuthService     auth.Service
	RegisterService auth.RegisterService
	UsersService    usersvc.Service
	CropsService    crops.Service
	FarmersService  farmers.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.CORS),
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
	rateLimited := func(policy middleware.AuthRateLimitPolicy) func(http.Handler) http.Handler {
		if deps.Redis == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return middleware.AuthRateLimit(policy, deps.Redis, logg)
	}

	// deps.Redis is a concrete pointer; assigning it to the Pinger
	// interface while nil would make the readiness probe ping a client
	// that was never configured.
	var redisPinger redis.Pinger
	if deps.Redis != nil {
		redisPinger = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DBPinger, redisPinger, logg))
	})

	if deps.MetricsRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.MetricsRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", controllers.Health())

		r.Route("/auth", func(r chi.Router) {
			r.With(rateLimited(registerPolicy)).Post("/register", controllers.AuthRegister(deps.RegisterService, logg))
			r.With(rateLimited(loginPolicy)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))

			r.Route("/users/profile", func(r chi.Router) {
				r.Get("/", controllers.GetProfile(deps.UsersService, logg))
				r.Put("/", controllers.UpdateProfile(deps.UsersService, logg))
			})

			r.Route("/mycrops", func(r chi.Router) {
				r.Get("/", controllers.ListCrops(deps.CropsService, logg))
				r.Post("/", controllers.CreateCrop(deps.CropsService, logg))
				r.Route("/{cropId}", func(r chi.Router) {
					r.Get("/", controllers.GetCrop(deps.CropsService, logg))
					r.Put("/", controllers.UpdateCrop(deps.CropsService, logg))
					r.Delete("/", controllers.DeleteCrop(deps.CropsService, logg))
				})
			})

			r.Route("/farmers", func(r chi.Router) {
				r.Get("/", controllers.ListFarmers(deps.FarmersService, logg))

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))
					r.Post("/", controllers.CreateFarmer(deps.FarmersService, logg))
					r.Put("/{farmerId}", controllers.UpdateFarmer(deps.FarmersService, logg))
					r.Delete("/{farmerId}", controllers.DeleteFarmer(deps.FarmersService, logg))
				})
			})
		})
	})

	return r
}
