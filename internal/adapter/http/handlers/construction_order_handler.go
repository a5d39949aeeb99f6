package handlers

import (
	"errors"
	"net/http"

	request "cityfuture/internal/adapter/http/dto/request"
	response "cityfuture/internal/adapter/http/dto/response"
	"cityfuture/internal/domain/entities"
	"cityfuture/internal/usecase"
	"cityfuture/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid construction order payload", http.StatusBadRequest)
)

// ConstructionOrderHandler handles HTTP requests for construction orders:
// creation, preflight validation, lookups, updates and deletion.

type ConstructionOrderHandler struct {
	usecase usecase.IConstructionOrderUseCase
}

func NewConstructionOrderHandler(uc usecase.IConstructionOrderUseCase) *ConstructionOrderHandler {
	return &ConstructionOrderHandler{usecase: uc}
}

func (h *ConstructionOrderHandler) CreateOrder(c *gin.Context) {
	var payload request.ConstructionOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		ProjectName:      payload.ResolveProjectName(),
		Location:         payload.Location.ToCoordinate(),
		ConstructionType: payload.ConstructionType,
	})
	if err != nil {
		appErr := mapConstructionOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromConstructionOrder(order))
}

// ValidateOrder is the dry-run twin of CreateOrder. A fulfillable request
// answers 200, a domain rejection answers 400, both with the same
// {valid,...} body.
func (h *ConstructionOrderHandler) ValidateOrder(c *gin.Context) {
	var payload request.ConstructionOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ValidateOrder(c.Request.Context(), usecase.CreateOrderInput{
		ProjectName:      payload.ResolveProjectName(),
		Location:         payload.Location.ToCoordinate(),
		ConstructionType: payload.ConstructionType,
	})
	if err != nil {
		appErr := mapConstructionOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusBadRequest
	}
	c.JSON(status, response.ValidationResponse{
		Valid:         result.Valid,
		Error:         result.Error,
		Message:       result.Message,
		EstimatedDays: result.EstimatedDays,
	})
}

// GetOrders lists all orders, optionally filtered by the status query
// parameter.
func (h *ConstructionOrderHandler) GetOrders(c *gin.Context) {
	var (
		orders []entities.ConstructionOrder
		err    error
	)
	if status := c.Query("status"); status != "" {
		orders, err = h.usecase.GetOrdersByStatus(c.Request.Context(), entities.OrderStatus(status))
	} else {
		orders, err = h.usecase.GetAllOrders(c.Request.Context())
	}
	if err != nil {
		appErr := mapConstructionOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConstructionOrders(orders))
}

func (h *ConstructionOrderHandler) GetOrderByID(c *gin.Context) {
	order, err := h.usecase.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapConstructionOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConstructionOrder(order))
}

func (h *ConstructionOrderHandler) UpdateOrder(c *gin.Context) {
	var payload request.UpdateConstructionOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.UpdateOrder(c.Request.Context(), c.Param("id"), usecase.UpdateOrderInput{
		ProjectName:      payload.ProjectName,
		ConstructionType: payload.ConstructionType,
	})
	if err != nil {
		appErr := mapConstructionOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConstructionOrder(order))
}

func (h *ConstructionOrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.usecase.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapConstructionOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapConstructionOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectName),
		errors.Is(err, usecase.ErrInvalidCoordinate),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownConstructionType):
		return pkg.NewDomainErrorSimple("UNKNOWN_CONSTRUCTION_TYPE", "Unknown construction type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLocationOccupied):
		return pkg.NewDomainErrorSimple("LOCATION_OCCUPIED", "A construction order already exists at this location", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientMaterial):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_MATERIALS", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Construction order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
