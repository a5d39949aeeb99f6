package usecase

import (
	"context"
	"errors"
	"strings"

	"cityfuture/internal/domain/entities"
	"cityfuture/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMaterialNotFound      = errors.New("material not found")
	ErrMaterialAlreadyExists = errors.New("material already exists")
	ErrInvalidMaterialID     = errors.New("invalid material id")
	ErrInvalidMaterialInput  = errors.New("invalid material input")
)

type MaterialInput struct {
	Code     string
	Name     string
	Quantity int
}

// IMaterialUseCase exposes material inventory CRUD. Quantities here are
// replenishment-side; reservation happens through order creation only.
type IMaterialUseCase interface {
	CreateMaterial(ctx context.Context, input MaterialInput) (entities.Material, error)
	GetMaterialByID(ctx context.Context, id string) (entities.Material, error)
	GetAllMaterials(ctx context.Context) ([]entities.Material, error)
	UpdateMaterial(ctx context.Context, id string, input MaterialInput) (entities.Material, error)
	DeleteMaterial(ctx context.Context, id string) error
}

type MaterialUseCase struct {
	materials interfaces.IMaterialRepository
	clock     interfaces.Clock
}

var _ IMaterialUseCase = (*MaterialUseCase)(nil)

func NewMaterialUseCase(materials interfaces.IMaterialRepository, clock interfaces.Clock) *MaterialUseCase {
	return &MaterialUseCase{materials: materials, clock: clock}
}

func (u *MaterialUseCase) CreateMaterial(ctx context.Context, input MaterialInput) (entities.Material, error) {
	input.Code = strings.TrimSpace(input.Code)
	input.Name = strings.TrimSpace(input.Name)
	if input.Code == "" || input.Name == "" || input.Quantity < 0 {
		return entities.Material{}, ErrInvalidMaterialInput
	}

	existing, err := u.materials.GetByName(ctx, input.Name)
	if err != nil {
		return entities.Material{}, err
	}
	if existing.ID != "" {
		return entities.Material{}, ErrMaterialAlreadyExists
	}

	now := u.clock.Today()
	material := entities.Material{
		ID:        uuid.NewString(),
		Code:      input.Code,
		Name:      input.Name,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.materials.Create(ctx, material)
}

func (u *MaterialUseCase) GetMaterialByID(ctx context.Context, id string) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}

	material, err := u.materials.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if material.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}
	return material, nil
}

func (u *MaterialUseCase) GetAllMaterials(ctx context.Context) ([]entities.Material, error) {
	return u.materials.GetAll(ctx)
}

func (u *MaterialUseCase) UpdateMaterial(ctx context.Context, id string, input MaterialInput) (entities.Material, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Material{}, ErrInvalidMaterialID
	}
	input.Code = strings.TrimSpace(input.Code)
	input.Name = strings.TrimSpace(input.Name)
	if input.Code == "" || input.Name == "" || input.Quantity < 0 {
		return entities.Material{}, ErrInvalidMaterialInput
	}

	existing, err := u.materials.GetByID(ctx, id)
	if err != nil {
		return entities.Material{}, err
	}
	if existing.ID == "" {
		return entities.Material{}, ErrMaterialNotFound
	}

	// The new name must not collide with a different material.
	sameName, err := u.materials.GetByName(ctx, input.Name)
	if err != nil {
		return entities.Material{}, err
	}
	if sameName.ID != "" && sameName.ID != id {
		return entities.Material{}, ErrMaterialAlreadyExists
	}

	existing.Code = input.Code
	existing.Name = input.Name
	existing.Quantity = input.Quantity
	existing.UpdatedAt = u.clock.Today()

	return u.materials.Update(ctx, existing)
}

func (u *MaterialUseCase) DeleteMaterial(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidMaterialID
	}

	existing, err := u.materials.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrMaterialNotFound
	}
	return u.materials.Delete(ctx, id)
}
