package crops

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mercie-ux/mkulima-cooperative/internal/resource"
	"github.com/mercie-ux/mkulima-cooperative/pkg/db/models"
	"github.com/mercie-ux/mkulima-cooperative/pkg/enums"
	pkgerrors "github.com/mercie-ux/mkulima-cooperative/pkg/errors"
	"github.com/mercie-ux/mkulima-cooperative/pkg/pagination"
	"gorm.io/gorm"
)

type cropRepo interface {
	List(ctx context.Context, scope resource.Scope, params pagination.Params) ([]models.Crop, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Crop, error)
	Create(ctx context.Context, crop *models.Crop) error
	Updates(ctx context.Context, id uuid.UUID, updates map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// Service exposes the ownership-scoped crop operations.
type Service interface {
	List(ctx context.Context, caller resource.Caller, params pagination.Params) (CropsPageDTO, error)
	Create(ctx context.Context, caller resource.Caller, dto CreateCropDTO) (*CropDTO, error)
	Get(ctx context.Context, caller resource.Caller, id uuid.UUID) (*CropDTO, error)
	Update(ctx context.Context, caller resource.Caller, id uuid.UUID, dto UpdateCropDTO) (*CropDTO, error)
	Delete(ctx context.Context, caller resource.Caller, id uuid.UUID) error
}

type service struct {
	repo cropRepo
}

// NewService builds a crops service with the required dependencies.
func NewService(repo cropRepo) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "crops repo is required")
	}
	return &service{repo: repo}, nil
}

// List returns the page visible to the caller: the full set for admins,
// the caller's own rows otherwise.
func (s *service) List(ctx context.Context, caller resource.Caller, params pagination.Params) (CropsPageDTO, error) {
	rows, next, err := s.repo.List(ctx, resource.ScopeFor(caller), params)
	if err != nil {
		return CropsPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list crops")
	}
	return pageFromModels(rows, next), nil
}

// Create plants a new crop owned by the caller.
func (s *service) Create(ctx context.Context, caller resource.Caller, dto CreateCropDTO) (*CropDTO, error) {
	cropType := strings.TrimSpace(dto.CropType)
	if cropType == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "crop type is required")
	}
	if !dto.Area.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "area must be positive")
	}
	if err := validateDateOrder(dto.PlantingDate, dto.ExpectedHarvest); err != nil {
		return nil, err
	}

	status := enums.CropStatusPlanted
	if dto.Status != nil {
		parsed, err := enums.ParseCropStatus(*dto.Status)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		status = parsed
	}

	healthScore := 100
	if dto.HealthScore != nil {
		if *dto.HealthScore < 0 || *dto.HealthScore > 100 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "health score must be between 0 and 100")
		}
		healthScore = *dto.HealthScore
	}

	crop := &models.Crop{
		FarmerID:        caller.ID,
		CropType:        cropType,
		Variety:         dto.Variety,
		Area:            dto.Area,
		Location:        dto.Location,
		PlantingDate:    dto.PlantingDate,
		ExpectedHarvest: dto.ExpectedHarvest,
		Status:          status,
		HealthScore:     healthScore,
		Notes:           dto.Notes,
	}
	if err := s.repo.Create(ctx, crop); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create crop")
	}
	return FromModel(crop), nil
}

// Get loads a single crop if the caller may see it.
func (s *service) Get(ctx context.Context, caller resource.Caller, id uuid.UUID) (*CropDTO, error) {
	crop, err := s.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	return FromModel(crop), nil
}

// Update applies the present fields. Absent fields keep their stored
// value; the last write wins on concurrent updates.
func (s *service) Update(ctx context.Context, caller resource.Caller, id uuid.UUID, dto UpdateCropDTO) (*CropDTO, error) {
	crop, err := s.load(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if dto.CropType != nil {
		trimmed := strings.TrimSpace(*dto.CropType)
		if trimmed == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "crop type must not be blank")
		}
		updates["crop_type"] = trimmed
	}
	if dto.Variety != nil {
		updates["variety"] = *dto.Variety
	}
	if dto.Area != nil {
		if !dto.Area.IsPositive() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "area must be positive")
		}
		updates["area"] = *dto.Area
	}
	if dto.Location != nil {
		updates["location"] = *dto.Location
	}

	planting := crop.PlantingDate
	if dto.PlantingDate != nil {
		planting = *dto.PlantingDate
		updates["planting_date"] = planting
	}
	harvest := crop.ExpectedHarvest
	if dto.ExpectedHarvest != nil {
		harvest = *dto.ExpectedHarvest
		updates["expected_harvest"] = harvest
	}
	if dto.PlantingDate != nil || dto.ExpectedHarvest != nil {
		if err := validateDateOrder(planting, harvest); err != nil {
			return nil, err
		}
	}

	if dto.Status != nil {
		parsed, err := enums.ParseCropStatus(*dto.Status)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		updates["status"] = parsed
	}
	if dto.HealthScore != nil {
		if *dto.HealthScore < 0 || *dto.HealthScore > 100 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "health score must be between 0 and 100")
		}
		updates["health_score"] = *dto.HealthScore
	}
	if dto.Notes != nil {
		updates["notes"] = *dto.Notes
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now().UTC()
		if err := s.repo.Updates(ctx, id, updates); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update crop")
		}
	}

	refreshed, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload crop")
	}
	return FromModel(refreshed), nil
}

// Delete removes the crop. A repeat delete of the same id reports not
// found rather than succeeding twice.
func (s *service) Delete(ctx context.Context, caller resource.Caller, id uuid.UUID) error {
	if _, err := s.load(ctx, caller, id); err != nil {
		return err
	}
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete crop")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "crop not found")
	}
	return nil
}

func (s *service) load(ctx context.Context, caller resource.Caller, id uuid.UUID) (*models.Crop, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "crop id is required")
	}
	crop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "crop not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load crop")
	}
	if err := resource.Authorize(caller, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

func validateDateOrder(planting, harvest time.Time) error {
	if planting.IsZero() || harvest.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "planting and harvest dates are required")
	}
	if !harvest.After(planting) {
		return pkgerrors.New(pkgerrors.CodeValidation, "expected harvest must be after planting date")
	}
	return nil
}
