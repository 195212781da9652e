package resource

import (
	"github.com/google/uuid"
	"github.com/mercie-ux/mkulima-cooperative/pkg/enums"
	pkgerrors "github.com/mercie-ux/mkulima-cooperative/pkg/errors"
)

// Caller identifies the authenticated actor applying an operation.
type Caller struct {
	ID   uuid.UUID
	Role enums.UserRole
}

// SeesAll reports whether the caller bypasses ownership scoping.
func (c Caller) SeesAll() bool {
	return c.Role == enums.UserRoleAdmin
}

// Owned is implemented by models tied to exactly one owning identity.
type Owned interface {
	OwnerID() uuid.UUID
}

// Scope restricts a listing to one owner. A nil OwnerID means unscoped.
type Scope struct {
	OwnerID *uuid.UUID
}

// ScopeFor derives the listing scope from the caller: admins list the
// full set, everyone else only their own rows.
func ScopeFor(caller Caller) Scope {
	if caller.SeesAll() {
		return Scope{}
	}
	id := caller.ID
	return Scope{OwnerID: &id}
}

// Authorize checks whether the caller may observe or mutate the entity.
// A present-but-not-owned entity reports forbidden, not found hiding is
// handled at the repo layer by the owner scope on listings.
func Authorize(caller Caller, entity Owned) error {
	if caller.SeesAll() {
		return nil
	}
	if entity == nil {
		return pkgerrors.New(pkgerrors.CodeForbidden, "access denied")
	}
	if entity.OwnerID() != caller.ID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "access denied")
	}
	return nil
}
