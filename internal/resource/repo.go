package resource

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mercie-ux/mkulima-cooperative/pkg/pagination"
	"gorm.io/gorm"
)

// Pageable couples ownership with the keyset cursor columns.
type Pageable interface {
	Owned
	CursorKey() (time.Time, uuid.UUID)
}

// Repo is a generic persistence layer for owned entities. It handles the
// ownership scope and keyset pagination once so each entity type does
// not re-implement the policy.
type Repo[T Pageable] struct {
	db          *gorm.DB
	ownerColumn string
}

// NewRepo binds a generic repo to the GORM connection. ownerColumn names
// the foreign key column holding the owner identity.
func NewRepo[T Pageable](db *gorm.DB, ownerColumn string) *Repo[T] {
	if ownerColumn == "" {
		ownerColumn = "owner_id"
	}
	return &Repo[T]{db: db, ownerColumn: ownerColumn}
}

func (r *Repo[T]) conn(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return r.db
	}
	return r.db.WithContext(ctx)
}

// List returns one page ordered newest first by (created_at, id) plus the
// cursor for the next page, empty when the listing is exhausted.
func (r *Repo[T]) List(ctx context.Context, scope Scope, params pagination.Params) ([]T, string, error) {
	limit := pagination.NormalizeLimit(params.Limit)

	query := r.conn(ctx).Model(new(T))
	if scope.OwnerID != nil {
		query = query.Where(fmt.Sprintf("%s = ?", r.ownerColumn), *scope.OwnerID)
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", err
	}
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []T
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit)).
		Find(&rows).Error; err != nil {
		return nil, "", err
	}

	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		createdAt, id := rows[limit-1].CursorKey()
		next = pagination.EncodeCursor(pagination.Cursor{CreatedAt: createdAt, ID: id})
	}
	return rows, next, nil
}

// FindByID loads the entity regardless of owner; callers run Authorize
// on the result before acting on it.
func (r *Repo[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	if err := r.conn(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts the entity.
func (r *Repo[T]) Create(ctx context.Context, entity *T) error {
	return r.conn(ctx).Create(entity).Error
}

// Updates applies the column values to the row with the given id.
func (r *Repo[T]) Updates(ctx context.Context, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.conn(ctx).Model(new(T)).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the row and reports how many rows went away, letting
// the service distinguish the second delete of the same id.
func (r *Repo[T]) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.conn(ctx).Where("id = ?", id).Delete(new(T))
	return res.RowsAffected, res.Error
}
