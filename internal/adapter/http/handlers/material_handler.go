package handlers

import (
	"errors"
	"net/http"

	request "cityfuture/internal/adapter/http/dto/request"
	response "cityfuture/internal/adapter/http/dto/response"
	"cityfuture/internal/usecase"
	"cityfuture/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidMaterialPayload = pkg.NewDomainErrorSimple("INVALID_MATERIAL_INPUT", "Invalid material payload", http.StatusBadRequest)
)

// MaterialHandler handles HTTP requests for the material inventory.

type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

func (h *MaterialHandler) CreateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	material, err := h.usecase.CreateMaterial(c.Request.Context(), usecase.MaterialInput{
		Code:     payload.Code,
		Name:     payload.Name,
		Quantity: payload.ResolveQuantity(),
	})
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMaterial(material))
}

func (h *MaterialHandler) GetMaterials(c *gin.Context) {
	materials, err := h.usecase.GetAllMaterials(c.Request.Context())
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterials(materials))
}

func (h *MaterialHandler) GetMaterialByID(c *gin.Context) {
	material, err := h.usecase.GetMaterialByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterial(material))
}

func (h *MaterialHandler) UpdateMaterial(c *gin.Context) {
	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	material, err := h.usecase.UpdateMaterial(c.Request.Context(), c.Param("id"), usecase.MaterialInput{
		Code:     payload.Code,
		Name:     payload.Name,
		Quantity: payload.ResolveQuantity(),
	})
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMaterial(material))
}

func (h *MaterialHandler) DeleteMaterial(c *gin.Context) {
	if err := h.usecase.DeleteMaterial(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapMaterialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMaterialID), errors.Is(err, usecase.ErrInvalidMaterialInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMaterialAlreadyExists):
		return pkg.NewDomainErrorSimple("MATERIAL_ALREADY_EXISTS", "A material with this name already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
