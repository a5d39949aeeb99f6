package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cityfuture/internal/domain/entities"
	mock_interfaces "cityfuture/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMaterialUseCase_CreateMaterial(t *testing.T) {
	today := date(2024, time.January, 1)
	clk := fixedClock{today: today}

	t.Run("creates with trimmed fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo, clk)

		repo.EXPECT().GetByName(gomock.Any(), "Cement").Return(entities.Material{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, material entities.Material) (entities.Material, error) {
				if material.ID == "" {
					t.Fatalf("expected an assigned id")
				}
				if material.Code != "Ce" || material.Name != "Cement" || material.Quantity != 1000 {
					t.Fatalf("unexpected material: %+v", material)
				}
				if !material.CreatedAt.Equal(today) {
					t.Fatalf("expected created at %v, got %v", today, material.CreatedAt)
				}
				return material, nil
			})

		_, err := uc.CreateMaterial(context.Background(), MaterialInput{Code: " Ce ", Name: " Cement ", Quantity: 1000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects blank input and negative quantity", func(t *testing.T) {
		uc := NewMaterialUseCase(nil, clk)

		cases := []MaterialInput{
			{Code: "", Name: "Cement", Quantity: 10},
			{Code: "Ce", Name: "   ", Quantity: 10},
			{Code: "Ce", Name: "Cement", Quantity: -1},
		}
		for _, input := range cases {
			if _, err := uc.CreateMaterial(context.Background(), input); !errors.Is(err, ErrInvalidMaterialInput) {
				t.Fatalf("expected ErrInvalidMaterialInput for %+v, got %v", input, err)
			}
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo, clk)

		repo.EXPECT().GetByName(gomock.Any(), "Cement").Return(entities.Material{ID: "m1", Name: "Cement"}, nil)

		_, err := uc.CreateMaterial(context.Background(), MaterialInput{Code: "Ce", Name: "Cement", Quantity: 10})
		if !errors.Is(err, ErrMaterialAlreadyExists) {
			t.Fatalf("expected ErrMaterialAlreadyExists, got %v", err)
		}
	})
}

func TestMaterialUseCase_GetMaterialByID(t *testing.T) {
	clk := fixedClock{today: date(2024, time.January, 1)}

	t.Run("blank id", func(t *testing.T) {
		uc := NewMaterialUseCase(nil, clk)
		if _, err := uc.GetMaterialByID(context.Background(), "  "); !errors.Is(err, ErrInvalidMaterialID) {
			t.Fatalf("expected ErrInvalidMaterialID, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo, clk)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Material{}, nil)

		if _, err := uc.GetMaterialByID(context.Background(), "missing"); !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo, clk)

		repo.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1", Code: "Ce"}, nil)

		material, err := uc.GetMaterialByID(context.Background(), "m1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if material.Code != "Ce" {
			t.Fatalf("unexpected material: %+v", material)
		}
	})
}

func TestMaterialUseCase_UpdateMaterial(t *testing.T) {
	today := date(2024, time.March, 1)
	clk := fixedClock{today: today}

	existing := entities.Material{
		ID: "m1", Code: "Ce", Name: "Cement", Quantity: 100,
		CreatedAt: date(2024, time.January, 1), UpdatedAt: date(2024, time.January, 1),
	}

	t.Run("updates fields and refreshes timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo, clk)

		repo.EXPECT().GetByID(gomock.Any(), "m1").Return(existing, nil)
		repo.EXPECT().GetByName(gomock.Any(), "Cement").Return(existing, nil)

		want := existing
		want.Quantity = 250
		want.UpdatedAt = today
		repo.EXPECT().Update(gomock.Any(), want).Return(want, nil)

		updated, err := uc.UpdateMaterial(context.Background(), "m1", MaterialInput{Code: "Ce", Name: "Cement", Quantity: 250})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Quantity != 250 {
			t.Fatalf("expected quantity 250, got %d", updated.Quantity)
		}
	})

	t.Run("name collision with another material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo, clk)

		repo.EXPECT().GetByID(gomock.Any(), "m1").Return(existing, nil)
		repo.EXPECT().GetByName(gomock.Any(), "Gravel").Return(entities.Material{ID: "m2", Name: "Gravel"}, nil)

		_, err := uc.UpdateMaterial(context.Background(), "m1", MaterialInput{Code: "Ce", Name: "Gravel", Quantity: 100})
		if !errors.Is(err, ErrMaterialAlreadyExists) {
			t.Fatalf("expected ErrMaterialAlreadyExists, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo, clk)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Material{}, nil)

		_, err := uc.UpdateMaterial(context.Background(), "missing", MaterialInput{Code: "Ce", Name: "Cement", Quantity: 1})
		if !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})
}

func TestMaterialUseCase_DeleteMaterial(t *testing.T) {
	clk := fixedClock{today: date(2024, time.March, 1)}

	t.Run("deletes existing material", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo, clk)

		repo.EXPECT().GetByID(gomock.Any(), "m1").Return(entities.Material{ID: "m1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "m1").Return(nil)

		if err := uc.DeleteMaterial(context.Background(), "m1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMaterialRepository(ctrl)
		uc := NewMaterialUseCase(repo, clk)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Material{}, nil)

		if err := uc.DeleteMaterial(context.Background(), "missing"); !errors.Is(err, ErrMaterialNotFound) {
			t.Fatalf("expected ErrMaterialNotFound, got %v", err)
		}
	})
}
