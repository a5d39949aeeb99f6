package entities

import "time"

// Material is a stocked construction material. Quantity is decremented when
// an order is confirmed; replenishment happens through the material CRUD API,
// never automatically.
type Material struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
