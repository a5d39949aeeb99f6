package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"cityfuture/internal/domain/entities"
	"cityfuture/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrUnknownConstructionType = errors.New("unknown construction type")
	ErrLocationOccupied        = errors.New("location occupied")
	ErrInsufficientMaterial    = errors.New("insufficient material")
	ErrOrderNotFound           = errors.New("construction order not found")
	ErrInvalidOrderID          = errors.New("invalid order id")
	ErrInvalidProjectName      = errors.New("invalid project name")
	ErrInvalidCoordinate       = errors.New("coordinate out of range")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
)

// LocationOccupiedError reports the coordinate that is already taken.
type LocationOccupiedError struct {
	Latitude  float64
	Longitude float64
}

func (e *LocationOccupiedError) Error() string {
	return fmt.Sprintf("a construction order already exists at coordinates %v, %v", e.Latitude, e.Longitude)
}

func (e *LocationOccupiedError) Unwrap() error { return ErrLocationOccupied }

// InsufficientMaterialError reports the first material found lacking.
type InsufficientMaterialError struct {
	Code      string
	Required  int
	Available int
}

func (e *InsufficientMaterialError) Error() string {
	return fmt.Sprintf("insufficient material %s: required %d, available %d", e.Code, e.Required, e.Available)
}

func (e *InsufficientMaterialError) Unwrap() error { return ErrInsufficientMaterial }

type CreateOrderInput struct {
	ProjectName      string
	Location         entities.Coordinate
	ConstructionType string
}

type UpdateOrderInput struct {
	ProjectName      string
	ConstructionType string
}

// ValidationResult is the non-throwing twin of CreateOrder's checks, used for
// preflight validation. Domain failures land in Error/Message instead of an
// error return.
type ValidationResult struct {
	Valid         bool
	Error         string
	Message       string
	EstimatedDays int
}

// IConstructionOrderUseCase exposes the order orchestration operations
// consumed by the HTTP adapter.
type IConstructionOrderUseCase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (entities.ConstructionOrder, error)
	ValidateOrder(ctx context.Context, input CreateOrderInput) (ValidationResult, error)
	UpdateOrder(ctx context.Context, id string, input UpdateOrderInput) (entities.ConstructionOrder, error)
	DeleteOrder(ctx context.Context, id string) error
	GetOrderByID(ctx context.Context, id string) (entities.ConstructionOrder, error)
	GetAllOrders(ctx context.Context) ([]entities.ConstructionOrder, error)
	GetOrdersByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.ConstructionOrder, error)
	GenerateReport(ctx context.Context) (entities.ConstructionReport, error)
	GetProjectSummary(ctx context.Context) (entities.ProjectSummary, error)
	GetProjectEndDate(ctx context.Context) (time.Time, error)
}

// ConstructionOrderUseCase orchestrates catalog lookups, location and material
// validation and timeline placement.
//
// The mutex serializes the append and delete paths: two concurrent creations
// racing on the last delivery date would otherwise compute the same slot.
type ConstructionOrderUseCase struct {
	mu        sync.Mutex
	orders    interfaces.IConstructionOrderRepository
	materials interfaces.IMaterialRepository
	catalog   entities.ConstructionCatalog
	timeline  *Timeline
	clock     interfaces.Clock
}

var _ IConstructionOrderUseCase = (*ConstructionOrderUseCase)(nil)

func NewConstructionOrderUseCase(
	orders interfaces.IConstructionOrderRepository,
	materials interfaces.IMaterialRepository,
	catalog entities.ConstructionCatalog,
	timeline *Timeline,
	clock interfaces.Clock,
) *ConstructionOrderUseCase {
	return &ConstructionOrderUseCase{
		orders:    orders,
		materials: materials,
		catalog:   catalog,
		timeline:  timeline,
		clock:     clock,
	}
}

// CreateOrder validates type, location and materials (in that order), reserves
// the materials, appends the order to the timeline and persists it as Pending.
// Nothing is persisted or reserved when any check fails.
func (u *ConstructionOrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (entities.ConstructionOrder, error) {
	input.ProjectName = strings.TrimSpace(input.ProjectName)
	if input.ProjectName == "" {
		return entities.ConstructionOrder{}, ErrInvalidProjectName
	}
	if !input.Location.InRange() {
		return entities.ConstructionOrder{}, ErrInvalidCoordinate
	}
	criteria, ok := u.catalog.Resolve(input.ConstructionType)
	if !ok {
		return entities.ConstructionOrder{}, fmt.Errorf("%w: %s", ErrUnknownConstructionType, input.ConstructionType)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	free, err := u.timeline.LocationIsFree(ctx, input.Location)
	if err != nil {
		return entities.ConstructionOrder{}, err
	}
	if !free {
		return entities.ConstructionOrder{}, &LocationOccupiedError{
			Latitude:  input.Location.Latitude,
			Longitude: input.Location.Longitude,
		}
	}

	if err := u.checkMaterials(ctx, criteria.Materials); err != nil {
		return entities.ConstructionOrder{}, err
	}

	start, delivery, err := u.timeline.NextSlot(ctx, criteria.EstimatedDays)
	if err != nil {
		return entities.ConstructionOrder{}, err
	}

	if err := u.reserveMaterials(ctx, criteria.Materials); err != nil {
		return entities.ConstructionOrder{}, err
	}

	now := u.clock.Today()
	order := entities.ConstructionOrder{
		ID:               uuid.NewString(),
		ProjectName:      input.ProjectName,
		Location:         input.Location,
		ConstructionType: criteria.Type,
		Status:           entities.OrderStatusPending,
		EstimatedDays:    criteria.EstimatedDays,
		StartDate:        start,
		DeliveryDate:     delivery,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		u.releaseMaterials(ctx, criteria.Materials)
		return entities.ConstructionOrder{}, err
	}
	return created, nil
}

// ValidateOrder runs the same checks as CreateOrder without persisting or
// reserving anything. Domain failures come back inside the result; only
// storage failures surface as errors.
func (u *ConstructionOrderUseCase) ValidateOrder(ctx context.Context, input CreateOrderInput) (ValidationResult, error) {
	if strings.TrimSpace(input.ProjectName) == "" {
		return ValidationResult{
			Valid:   false,
			Error:   "Invalid project name",
			Message: "the project name must not be empty",
		}, nil
	}
	criteria, ok := u.catalog.Resolve(input.ConstructionType)
	if !ok {
		return ValidationResult{
			Valid:   false,
			Error:   "Invalid construction type",
			Message: fmt.Sprintf("unknown construction type: %s", input.ConstructionType),
		}, nil
	}
	if !input.Location.InRange() {
		return ValidationResult{
			Valid:   false,
			Error:   "Invalid location",
			Message: "latitude must be in [-90,90] and longitude in [-180,180]",
		}, nil
	}

	free, err := u.timeline.LocationIsFree(ctx, input.Location)
	if err != nil {
		return ValidationResult{}, err
	}
	if !free {
		occupied := &LocationOccupiedError{Latitude: input.Location.Latitude, Longitude: input.Location.Longitude}
		return ValidationResult{Valid: false, Error: "Location occupied", Message: occupied.Error()}, nil
	}

	if err := u.checkMaterials(ctx, criteria.Materials); err != nil {
		var insufficient *InsufficientMaterialError
		if errors.As(err, &insufficient) {
			return ValidationResult{Valid: false, Error: "Insufficient materials", Message: insufficient.Error()}, nil
		}
		return ValidationResult{}, err
	}

	return ValidationResult{
		Valid:         true,
		Message:       "the construction request can be fulfilled",
		EstimatedDays: criteria.EstimatedDays,
	}, nil
}

// UpdateOrder changes project name and/or construction type. Material
// sufficiency is re-checked for the current type even when it does not change
// (a deliberate idempotent revalidation; stock is never decremented here), the
// status resets to Pending, and the dates set at creation are preserved.
func (u *ConstructionOrderUseCase) UpdateOrder(ctx context.Context, id string, input UpdateOrderInput) (entities.ConstructionOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ConstructionOrder{}, ErrInvalidOrderID
	}

	existing, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ConstructionOrder{}, err
	}
	if existing.ID == "" {
		return entities.ConstructionOrder{}, ErrOrderNotFound
	}

	currentCriteria, ok := u.catalog.Resolve(existing.ConstructionType)
	if !ok {
		return entities.ConstructionOrder{}, fmt.Errorf("%w: %s", ErrUnknownConstructionType, existing.ConstructionType)
	}
	if err := u.checkMaterials(ctx, currentCriteria.Materials); err != nil {
		return entities.ConstructionOrder{}, err
	}

	newType := strings.TrimSpace(input.ConstructionType)
	if newType != "" && !strings.EqualFold(existing.ConstructionType, newType) {
		newCriteria, ok := u.catalog.Resolve(newType)
		if !ok {
			return entities.ConstructionOrder{}, fmt.Errorf("%w: %s", ErrUnknownConstructionType, newType)
		}
		if err := u.checkMaterials(ctx, newCriteria.Materials); err != nil {
			return entities.ConstructionOrder{}, err
		}
		existing.ConstructionType = newCriteria.Type
		existing.EstimatedDays = newCriteria.EstimatedDays
	}

	if name := strings.TrimSpace(input.ProjectName); name != "" {
		existing.ProjectName = name
	}
	existing.Status = entities.OrderStatusPending
	existing.UpdatedAt = u.clock.Today()

	return u.orders.Update(ctx, existing)
}

// DeleteOrder removes the order and reflows the timeline so later orders close
// the gap.
func (u *ConstructionOrderUseCase) DeleteOrder(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	existing, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrOrderNotFound
	}

	return u.timeline.RemoveAndReflow(ctx, existing)
}

func (u *ConstructionOrderUseCase) GetOrderByID(ctx context.Context, id string) (entities.ConstructionOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ConstructionOrder{}, ErrInvalidOrderID
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.ConstructionOrder{}, err
	}
	if order.ID == "" {
		return entities.ConstructionOrder{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *ConstructionOrderUseCase) GetAllOrders(ctx context.Context) ([]entities.ConstructionOrder, error) {
	return u.orders.GetAll(ctx)
}

func (u *ConstructionOrderUseCase) GetOrdersByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.ConstructionOrder, error) {
	if !status.Valid() {
		return nil, ErrInvalidOrderStatus
	}

	all, err := u.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]entities.ConstructionOrder, 0, len(all))
	for _, order := range all {
		if order.Status == status {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

// GenerateReport tallies every order by status and construction type and
// embeds the project summary.
func (u *ConstructionOrderUseCase) GenerateReport(ctx context.Context) (entities.ConstructionReport, error) {
	all, err := u.orders.GetAll(ctx)
	if err != nil {
		return entities.ConstructionReport{}, err
	}

	report := entities.ConstructionReport{
		ReportDate:       u.clock.Today(),
		TotalOrders:      len(all),
		PendingByType:    map[string]int{},
		InProgressByType: map[string]int{},
		FinishedByType:   map[string]int{},
	}

	for _, order := range all {
		switch order.Status {
		case entities.OrderStatusPending:
			report.PendingOrders++
			report.PendingByType[order.ConstructionType]++
		case entities.OrderStatusInProgress:
			report.InProgressOrders++
			report.InProgressByType[order.ConstructionType]++
		case entities.OrderStatusFinished:
			report.FinishedOrders++
			report.FinishedByType[order.ConstructionType]++
		}
	}

	summary, err := u.GetProjectSummary(ctx)
	if err != nil {
		return entities.ConstructionReport{}, err
	}
	report.ProjectSummary = summary

	return report, nil
}

// GetProjectSummary derives the overall project state from the timeline.
func (u *ConstructionOrderUseCase) GetProjectSummary(ctx context.Context) (entities.ProjectSummary, error) {
	totalDays, err := u.timeline.TotalEstimatedDays(ctx)
	if err != nil {
		return entities.ProjectSummary{}, err
	}
	startDate, err := u.timeline.ProjectStartDate(ctx)
	if err != nil {
		return entities.ProjectSummary{}, err
	}
	endDate, err := u.timeline.ProjectEndDate(ctx)
	if err != nil {
		return entities.ProjectSummary{}, err
	}
	totalOrders, err := u.orders.Count(ctx)
	if err != nil {
		return entities.ProjectSummary{}, err
	}

	today := u.clock.Today()
	status := entities.ProjectStatusInProgress
	switch {
	case totalOrders == 0:
		status = entities.ProjectStatusNoOrders
	case today.Before(startDate):
		status = entities.ProjectStatusNotStarted
	case today.After(endDate):
		status = entities.ProjectStatusCompleted
	}

	return entities.ProjectSummary{
		TotalConstructionDays: totalDays,
		ProjectStartDate:      startDate,
		ProjectEndDate:        endDate,
		EstimatedDeliveryDate: endDate,
		TotalOrders:           totalOrders,
		Status:                status,
	}, nil
}

func (u *ConstructionOrderUseCase) GetProjectEndDate(ctx context.Context) (time.Time, error) {
	return u.timeline.ProjectEndDate(ctx)
}

// checkMaterials verifies stock covers every requirement, reporting the first
// lacking material in requirement order. An unknown code counts as zero stock.
func (u *ConstructionOrderUseCase) checkMaterials(ctx context.Context, requirements []entities.MaterialRequirement) error {
	for _, req := range requirements {
		material, err := u.materials.GetByCode(ctx, req.Code)
		if err != nil {
			return err
		}
		available := 0
		if material.ID != "" {
			available = material.Quantity
		}
		if available < req.Quantity {
			return &InsufficientMaterialError{Code: req.Code, Required: req.Quantity, Available: available}
		}
	}
	return nil
}

// reserveMaterials decrements stock for every requirement. Each decrement is
// conditional on sufficient stock; when one fails, the ones already taken are
// put back before reporting the shortage.
func (u *ConstructionOrderUseCase) reserveMaterials(ctx context.Context, requirements []entities.MaterialRequirement) error {
	for i, req := range requirements {
		ok, err := u.materials.DecrementQuantity(ctx, req.Code, req.Quantity)
		if err == nil && ok {
			continue
		}

		u.releaseMaterials(ctx, requirements[:i])
		if err != nil {
			return err
		}

		material, getErr := u.materials.GetByCode(ctx, req.Code)
		if getErr != nil {
			return getErr
		}
		return &InsufficientMaterialError{Code: req.Code, Required: req.Quantity, Available: material.Quantity}
	}
	return nil
}

// releaseMaterials undoes reservations on a failed creation. Best effort: the
// original quantities are restored one code at a time.
func (u *ConstructionOrderUseCase) releaseMaterials(ctx context.Context, requirements []entities.MaterialRequirement) {
	for _, req := range requirements {
		_ = u.materials.IncrementQuantity(ctx, req.Code, req.Quantity)
	}
}
