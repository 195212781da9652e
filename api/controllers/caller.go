package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/mercie-ux/mkulima-cooperative/api/middleware"
	"github.com/mercie-ux/mkulima-cooperative/internal/resource"
	"github.com/mercie-ux/mkulima-cooperative/pkg/enums"
	pkgerrors "github.com/mercie-ux/mkulima-cooperative/pkg/errors"
)

// callerFromRequest rebuilds the authenticated caller from the context
// fields seeded by the auth gate.
func callerFromRequest(r *http.Request) (resource.Caller, error) {
	rawID := middleware.UserIDFromContext(r.Context())
	if rawID == "" {
		return resource.Caller{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return resource.Caller{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid subject")
	}
	role, err := enums.ParseUserRole(middleware.RoleFromContext(r.Context()))
	if err != nil {
		return resource.Caller{}, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "unknown role")
	}
	return resource.Caller{ID: id, Role: role}, nil
}
