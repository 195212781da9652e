package controllers

import (
	"net/http"
	"time"

	"github.com/mercie-ux/mkulima-cooperative/api/responses"
	"github.com/mercie-ux/mkulima-cooperative/pkg/config"
	"github.com/mercie-ux/mkulima-cooperative/pkg/db"
	pkgerrors "github.com/mercie-ux/mkulima-cooperative/pkg/errors"
	"github.com/mercie-ux/mkulima-cooperative/pkg/logger"
	"github.com/mercie-ux/mkulima-cooperative/pkg/redis"
)

// Health serves the public API heartbeat.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccessMessage(w, http.StatusOK, "Mkulima API is running", map[string]string{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// HealthLive reports process liveness only.
func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Mkulima-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady verifies the backing stores are reachable.
func HealthReady(cfg *config.Config, dbPinger db.Pinger, redisPinger redis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Mkulima-Env", cfg.App.Env)

		if dbPinger != nil {
			if err := dbPinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
		}
		if redisPinger != nil {
			if err := redisPinger.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
