package entities

import "strings"

// MaterialRequirement is one line of a construction type's bill of materials.
// Requirements keep their declaration order so validation failures always
// report the same material first.
type MaterialRequirement struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

// ConstructionCriteria holds what a construction type consumes and how long
// it takes.
type ConstructionCriteria struct {
	Type          string                `json:"type"`
	Materials     []MaterialRequirement `json:"materials"`
	EstimatedDays int                   `json:"estimated_days"`
}

// ConstructionCatalog is the fixed table of supported construction types.
// It is built once at startup and never mutated; swap it out in tests.
type ConstructionCatalog struct {
	criteria []ConstructionCriteria
}

func NewConstructionCatalog(criteria []ConstructionCriteria) ConstructionCatalog {
	return ConstructionCatalog{criteria: criteria}
}

// Resolve matches a type name case-insensitively against the catalog.
func (c ConstructionCatalog) Resolve(typeName string) (ConstructionCriteria, bool) {
	name := strings.TrimSpace(typeName)
	for _, cr := range c.criteria {
		if strings.EqualFold(cr.Type, name) {
			return cr, true
		}
	}
	return ConstructionCriteria{}, false
}

// Types lists the supported type names in catalog order.
func (c ConstructionCatalog) Types() []string {
	names := make([]string, 0, len(c.criteria))
	for _, cr := range c.criteria {
		names = append(names, cr.Type)
	}
	return names
}

// DefaultCatalog is the deployment constant set of construction types.
func DefaultCatalog() ConstructionCatalog {
	return NewConstructionCatalog([]ConstructionCriteria{
		{
			Type: "House",
			Materials: []MaterialRequirement{
				{Code: "Ce", Quantity: 100},
				{Code: "Gr", Quantity: 50},
				{Code: "Ar", Quantity: 90},
				{Code: "Ma", Quantity: 20},
				{Code: "Ad", Quantity: 100},
			},
			EstimatedDays: 3,
		},
		{
			Type: "Lake",
			Materials: []MaterialRequirement{
				{Code: "Ce", Quantity: 50},
				{Code: "Gr", Quantity: 60},
				{Code: "Ar", Quantity: 80},
				{Code: "Ma", Quantity: 10},
				{Code: "Ad", Quantity: 20},
			},
			EstimatedDays: 2,
		},
		{
			Type: "SoccerField",
			Materials: []MaterialRequirement{
				{Code: "Ce", Quantity: 20},
				{Code: "Gr", Quantity: 20},
				{Code: "Ar", Quantity: 20},
				{Code: "Ma", Quantity: 20},
				{Code: "Ad", Quantity: 20},
			},
			EstimatedDays: 1,
		},
		{
			Type: "Building",
			Materials: []MaterialRequirement{
				{Code: "Ce", Quantity: 200},
				{Code: "Gr", Quantity: 100},
				{Code: "Ar", Quantity: 180},
				{Code: "Ma", Quantity: 40},
				{Code: "Ad", Quantity: 200},
			},
			EstimatedDays: 6,
		},
		{
			Type: "Gym",
			Materials: []MaterialRequirement{
				{Code: "Ce", Quantity: 50},
				{Code: "Gr", Quantity: 25},
				{Code: "Ar", Quantity: 45},
				{Code: "Ma", Quantity: 10},
				{Code: "Ad", Quantity: 50},
			},
			EstimatedDays: 2,
		},
	})
}
