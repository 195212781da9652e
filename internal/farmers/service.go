package farmers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mercie-ux/mkulima-cooperative/pkg/db"
	"github.com/mercie-ux/mkulima-cooperative/pkg/db/models"
	pkgerrors "github.com/mercie-ux/mkulima-cooperative/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type rosterRepo interface {
	List(ctx context.Context) ([]models.Farmer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Farmer, error)
	FindByEmail(ctx context.Context, email string) (*models.Farmer, error)
	Create(ctx context.Context, farmer *models.Farmer) error
	Updates(ctx context.Context, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// Service exposes roster management. Reads are open to any member;
// the router restricts mutations to admins.
type Service interface {
	List(ctx context.Context) ([]FarmerDTO, error)
	Create(ctx context.Context, dto CreateFarmerDTO) (*FarmerDTO, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateFarmerDTO) (*FarmerDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo rosterRepo
}

// NewService builds a farmers service with the required dependencies.
func NewService(repo rosterRepo) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "farmers repo is required")
	}
	return &service{repo: repo}, nil
}

// List returns the whole roster.
func (s *service) List(ctx context.Context) ([]FarmerDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list farmers")
	}
	out := make([]FarmerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// Create adds a roster entry, enforcing email uniqueness.
func (s *service) Create(ctx context.Context, dto CreateFarmerDTO) (*FarmerDTO, error) {
	name := strings.TrimSpace(dto.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	email := strings.ToLower(strings.TrimSpace(dto.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	farmSize := decimal.Zero
	if dto.FarmSize != nil {
		if dto.FarmSize.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "farm size must not be negative")
		}
		farmSize = *dto.FarmSize
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "farmer email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check farmer email")
	}

	farmer := &models.Farmer{
		Name:     name,
		Email:    email,
		Phone:    dto.Phone,
		Location: dto.Location,
		FarmSize: farmSize,
	}
	if err := s.repo.Create(ctx, farmer); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "farmer email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create farmer")
	}
	return FromModel(farmer), nil
}

// Update applies the present fields to one roster entry.
func (s *service) Update(ctx context.Context, id uuid.UUID, dto UpdateFarmerDTO) (*FarmerDTO, error) {
	if _, err := s.load(ctx, id); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if dto.Name != nil {
		name := strings.TrimSpace(*dto.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "name must not be blank")
		}
		updates["name"] = name
	}
	if dto.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*dto.Email))
		if email == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "email must not be blank")
		}
		if existing, err := s.repo.FindByEmail(ctx, email); err == nil && existing.ID != id {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "farmer email already registered")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check farmer email")
		}
		updates["email"] = email
	}
	if dto.Phone != nil {
		updates["phone"] = *dto.Phone
	}
	if dto.Location != nil {
		updates["location"] = *dto.Location
	}
	if dto.FarmSize != nil {
		if dto.FarmSize.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "farm size must not be negative")
		}
		updates["farm_size"] = *dto.FarmSize
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
		if err := s.repo.Updates(ctx, id, updates); err != nil {
			if db.IsUniqueViolation(err, "") {
				return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "farmer email already registered")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update farmer")
		}
	}

	refreshed, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return FromModel(refreshed), nil
}

// Delete removes a roster entry; the second delete of the same id
// reports not found.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "farmer id is required")
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete farmer")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "farmer not found")
	}
	return nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Farmer, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "farmer id is required")
	}
	farmer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "farmer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load farmer")
	}
	return farmer, nil
}
