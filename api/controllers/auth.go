package controllers

import (
	"net/http"

	"github.com/mercie-ux/mkulima-cooperative/api/responses"
	"github.com/mercie-ux/mkulima-cooperative/api/validators"
	"github.com/mercie-ux/mkulima-cooperative/internal/auth"
	pkgerrors "github.com/mercie-ux/mkulima-cooperative/pkg/errors"
	"github.com/mercie-ux/mkulima-cooperative/pkg/logger"
)

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
