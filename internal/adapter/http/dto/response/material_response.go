package response

import (
	"time"

	"cityfuture/internal/domain/entities"
)

type MaterialResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromMaterial(m entities.Material) MaterialResponse {
	return MaterialResponse{
		ID:        m.ID,
		Code:      m.Code,
		Name:      m.Name,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromMaterials(materials []entities.Material) []MaterialResponse {
	out := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, FromMaterial(m))
	}
	return out
}
