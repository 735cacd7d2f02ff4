package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldops/internal/domain/entities"
	mock_interfaces "fieldops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTechnicianUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewTechnicianUseCase(nil)
		_, err := uc.Create(context.Background(), "   ", "", "", nil)
		if !errors.Is(err, ErrInvalidTechnicianInput) {
			t.Fatalf("expected ErrInvalidTechnicianInput, got %v", err)
		}
	})

	t.Run("create success starts active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := NewTechnicianUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Technician{})).DoAndReturn(
			func(_ context.Context, tech entities.Technician) (entities.Technician, error) {
				if tech.ID == "" || tech.Name != "Ana" || !tech.Active {
					t.Fatalf("unexpected technician: %+v", tech)
				}
				return tech, nil
			})

		tech, err := uc.Create(context.Background(), "  Ana ", "+551199", "ana@x.com", []string{"plumbing"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tech.Phone != "+551199" || len(tech.Skills) != 1 {
			t.Fatalf("unexpected technician: %+v", tech)
		}
	})
}

func TestTechnicianUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := NewTechnicianUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Technician{}, nil)

		_, err := uc.Update(context.Background(), "missing", UpdateTechnicianInput{Name: sptr("Bia")})
		if !errors.Is(err, ErrTechnicianNotFound) {
			t.Fatalf("expected ErrTechnicianNotFound, got %v", err)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := NewTechnicianUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "tech-1").Return(entities.Technician{ID: "tech-1", Name: "Ana"}, nil)

		_, err := uc.Update(context.Background(), "tech-1", UpdateTechnicianInput{Name: sptr("   ")})
		if !errors.Is(err, ErrInvalidTechnicianInput) {
			t.Fatalf("expected ErrInvalidTechnicianInput, got %v", err)
		}
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := NewTechnicianUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "tech-1").Return(entities.Technician{ID: "tech-1", Name: "Ana", Phone: "+551188", Active: true}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Technician{})).DoAndReturn(
			func(_ context.Context, tech entities.Technician) (entities.Technician, error) {
				if tech.Name != "Ana Silva" || tech.Phone != "+551188" {
					t.Fatalf("unexpected technician: %+v", tech)
				}
				return tech, nil
			})

		_, err := uc.Update(context.Background(), "tech-1", UpdateTechnicianInput{Name: sptr("Ana Silva")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTechnicianUseCase_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
	uc := NewTechnicianUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "tech-1").Return(entities.Technician{ID: "tech-1", Name: "Ana", Active: true}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Technician{})).DoAndReturn(
		func(_ context.Context, tech entities.Technician) (entities.Technician, error) {
			if tech.Active {
				t.Fatalf("expected technician deactivated")
			}
			return tech, nil
		})

	tech, err := uc.Deactivate(context.Background(), "tech-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tech.Active {
		t.Fatalf("expected inactive technician")
	}
}

func TestTechnicianUseCase_UpdateMissMapsToNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockITechnicianRepository(ctrl)
	uc := NewTechnicianUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "tech-1").Return(entities.Technician{ID: "tech-1", Name: "Ana", Active: true}, nil)
	// Technician deleted between read and conditional write.
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Technician{})).Return(entities.Technician{}, nil)

	_, err := uc.Deactivate(context.Background(), "tech-1")
	if !errors.Is(err, ErrTechnicianNotFound) {
		t.Fatalf("expected ErrTechnicianNotFound, got %v", err)
	}
}
