package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cityfuture/internal/adapter/http/handlers/mocks"
	"cityfuture/internal/domain/entities"
	"cityfuture/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestMaterialHandler_CreateMaterial(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		r := gin.New()
		r.POST("/v1/materials", h.CreateMaterial)

		req := httptest.NewRequest(http.MethodPost, "/v1/materials", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		r := gin.New()
		r.POST("/v1/materials", h.CreateMaterial)

		req := httptest.NewRequest(http.MethodPost, "/v1/materials", bytes.NewBufferString(`{"code":"Ce","name":"Cement"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		r := gin.New()
		r.POST("/v1/materials", h.CreateMaterial)

		uc.EXPECT().CreateMaterial(gomock.Any(), usecase.MaterialInput{Code: "Ce", Name: "Cement", Quantity: 100}).
			Return(entities.Material{}, usecase.ErrMaterialAlreadyExists)

		req := httptest.NewRequest(http.MethodPost, "/v1/materials", bytes.NewBufferString(`{"code":"Ce","name":"Cement","quantity":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		r := gin.New()
		r.POST("/v1/materials", h.CreateMaterial)

		uc.EXPECT().CreateMaterial(gomock.Any(), usecase.MaterialInput{Code: "Ce", Name: "Cement", Quantity: 100}).
			Return(entities.Material{ID: "m1", Code: "Ce", Name: "Cement", Quantity: 100}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/materials", bytes.NewBufferString(`{"code":"Ce","name":"Cement","quantity":100}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "m1" || body["quantity"] != float64(100) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMaterialHandler_GetUpdateDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		r := gin.New()
		r.GET("/v1/materials", h.GetMaterials)

		uc.EXPECT().GetAllMaterials(gomock.Any()).Return([]entities.Material{{ID: "m1"}, {ID: "m2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/materials", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get by id not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		r := gin.New()
		r.GET("/v1/materials/:id", h.GetMaterialByID)

		uc.EXPECT().GetMaterialByID(gomock.Any(), "missing").Return(entities.Material{}, usecase.ErrMaterialNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/materials/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		r := gin.New()
		r.PUT("/v1/materials/:id", h.UpdateMaterial)

		uc.EXPECT().UpdateMaterial(gomock.Any(), "m1", usecase.MaterialInput{Code: "Ce", Name: "Cement", Quantity: 0}).
			Return(entities.Material{ID: "m1", Code: "Ce", Name: "Cement", Quantity: 0}, nil)

		req := httptest.NewRequest(http.MethodPut, "/v1/materials/m1", bytes.NewBufferString(`{"code":"Ce","name":"Cement","quantity":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("delete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIMaterialUseCase(ctrl)
		h := NewMaterialHandler(uc)

		r := gin.New()
		r.DELETE("/v1/materials/:id", h.DeleteMaterial)

		uc.EXPECT().DeleteMaterial(gomock.Any(), "m1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/materials/m1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestMapMaterialError(t *testing.T) {
	if got := mapMaterialError(usecase.ErrInvalidMaterialID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapMaterialError(usecase.ErrInvalidMaterialInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapMaterialError(usecase.ErrMaterialAlreadyExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapMaterialError(usecase.ErrMaterialNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapMaterialError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
