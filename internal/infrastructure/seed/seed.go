package seed

import (
	"context"
	"log"

	"cityfuture/internal/domain/entities"
	"cityfuture/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// baseMaterials is the initial warehouse stock. Seeding is additive and
// idempotent: a material whose code already exists is left alone.
var baseMaterials = []entities.Material{
	{Code: "Ce", Name: "Cement", Quantity: 1000},
	{Code: "Gr", Name: "Gravel", Quantity: 800},
	{Code: "Ar", Name: "Sand", Quantity: 1500},
	{Code: "Ma", Name: "Wood", Quantity: 600},
	{Code: "Ad", Name: "Adobe", Quantity: 400},
}

// Materials inserts the base stock for every material code not yet present.
func Materials(ctx context.Context, materials interfaces.IMaterialRepository, clock interfaces.Clock) error {
	now := clock.Today()
	for _, base := range baseMaterials {
		existing, err := materials.GetByCode(ctx, base.Code)
		if err != nil {
			return err
		}
		if existing.ID != "" {
			continue
		}

		base.ID = uuid.NewString()
		base.CreatedAt = now
		base.UpdatedAt = now
		if _, err := materials.Create(ctx, base); err != nil {
			return err
		}
		log.Printf("Seeded material %s (%s) with quantity %d", base.Name, base.Code, base.Quantity)
	}
	return nil
}
