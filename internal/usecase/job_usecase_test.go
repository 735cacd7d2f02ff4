package usecase

import (
	"context"
	"errors"
	"testing"

	"fieldops/internal/domain/entities"
	mock_interfaces "fieldops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func fptr(v float64) *float64 { return &v }

func sptr(s string) *string { return &s }

func TestJobUseCase_CreateJob(t *testing.T) {
	t.Run("missing customer name", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.CreateJob(context.Background(), CreateJobInput{Title: "Boiler repair", PricingMode: entities.PricingModeFixedTotal})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})

	t.Run("invalid pricing mode", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.CreateJob(context.Background(), CreateJobInput{CustomerName: "Acme", Title: "Boiler repair", PricingMode: "BY_WEIGHT"})
		if !errors.Is(err, ErrInvalidPricingMode) {
			t.Fatalf("expected ErrInvalidPricingMode, got %v", err)
		}
	})

	t.Run("non-positive estimated total", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.CreateJob(context.Background(), CreateJobInput{
			CustomerName: "Acme", Title: "Boiler repair",
			PricingMode: entities.PricingModeFixedTotal, EstimatedTotal: fptr(0),
		})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" || j.CustomerName != "Acme" || j.Status != entities.JobStatusOpen {
					t.Fatalf("unexpected job: %+v", j)
				}
				if j.CreatedAt.IsZero() || j.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return j, nil
			},
		)

		res, err := uc.CreateJob(context.Background(), CreateJobInput{
			CustomerName: " Acme ", Title: "Boiler repair",
			PricingMode: entities.PricingModePerVisit, DefaultVisitRate: fptr(80),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestJobUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.GetByID(context.Background(), "job-1")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestJobUseCase_ChangePricingMode(t *testing.T) {
	t.Run("invalid mode", func(t *testing.T) {
		uc := NewJobUseCase(nil, nil)
		_, err := uc.ChangePricingMode(context.Background(), "job-1", "NOPE")
		if !errors.Is(err, ErrInvalidPricingMode) {
			t.Fatalf("expected ErrInvalidPricingMode, got %v", err)
		}
	})

	t.Run("same mode is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		job := entities.Job{ID: "job-1", PricingMode: entities.PricingModePerVisit}
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		res, err := uc.ChangePricingMode(context.Background(), "job-1", entities.PricingModePerVisit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PricingMode != entities.PricingModePerVisit {
			t.Fatalf("unexpected mode %s", res.PricingMode)
		}
	})

	t.Run("locked by completed visit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		visitRepo := mock_interfaces.NewMockIVisitRepository(ctrl)
		uc := NewJobUseCase(repo, visitRepo)

		job := entities.Job{ID: "job-1", PricingMode: entities.PricingModePerVisit}
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		visitRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Visit{
			{ID: "v-1", Status: entities.VisitStatusCompleted},
		}, nil)

		_, err := uc.ChangePricingMode(context.Background(), "job-1", entities.PricingModeHybrid)
		if !errors.Is(err, ErrPricingModeLocked) {
			t.Fatalf("expected ErrPricingModeLocked, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		visitRepo := mock_interfaces.NewMockIVisitRepository(ctrl)
		uc := NewJobUseCase(repo, visitRepo)

		job := entities.Job{ID: "job-1", PricingMode: entities.PricingModePerVisit}
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		visitRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Visit{
			{ID: "v-1", Status: entities.VisitStatusScheduled},
		}, nil)
		updated := job
		updated.PricingMode = entities.PricingModeHybrid
		repo.EXPECT().UpdatePricingMode(gomock.Any(), "job-1", entities.PricingModeHybrid).Return(updated, nil)

		res, err := uc.ChangePricingMode(context.Background(), "job-1", entities.PricingModeHybrid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PricingMode != entities.PricingModeHybrid {
			t.Fatalf("expected HYBRID, got %s", res.PricingMode)
		}
	})
}

func TestJobUseCase_UpdateDetails(t *testing.T) {
	t.Run("blank title rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Title: "Old"}, nil)

		_, err := uc.UpdateDetails(context.Background(), "job-1", UpdateJobInput{Title: sptr("   ")})
		if !errors.Is(err, ErrInvalidJobInput) {
			t.Fatalf("expected ErrInvalidJobInput, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Title: "Old", CustomerName: "Acme"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Title != "New title" || j.EstimatedTotal == nil || *j.EstimatedTotal != 300 {
					t.Fatalf("unexpected job: %+v", j)
				}
				return j, nil
			},
		)

		_, err := uc.UpdateDetails(context.Background(), "job-1", UpdateJobInput{Title: sptr("New title"), EstimatedTotal: fptr(300)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("update miss maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Title: "Old", CustomerName: "Acme"}, nil)
		// Job deleted between read and conditional write.
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).Return(entities.Job{}, nil)

		_, err := uc.UpdateDetails(context.Background(), "job-1", UpdateJobInput{Title: sptr("New title")})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})
}

func TestJobUseCase_GetPricing(t *testing.T) {
	t.Run("visits sorted and calculated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		visitRepo := mock_interfaces.NewMockIVisitRepository(ctrl)
		uc := NewJobUseCase(repo, visitRepo)

		job := entities.Job{ID: "job-1", PricingMode: entities.PricingModePerVisit, DefaultVisitRate: fptr(50)}
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		// Out of order on purpose; GetPricing must sort by visit number.
		visitRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Visit{
			{ID: "v-2", VisitNumber: 2, Status: entities.VisitStatusScheduled},
			{ID: "v-1", VisitNumber: 1, Status: entities.VisitStatusCompleted, ActualPrice: fptr(120)},
		}, nil)

		res, err := uc.GetPricing(context.Background(), "job-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Visits[0].VisitNumber != 1 || res.Visits[1].VisitNumber != 2 {
			t.Fatalf("expected visits sorted by number, got %+v", res.Visits)
		}
		if res.Calculation.Subtotal != 170 {
			t.Fatalf("expected subtotal 170, got %v", res.Calculation.Subtotal)
		}
		if res.Calculation.CompletedVisitsTotal != 120 || res.Calculation.PendingVisitsTotal != 50 {
			t.Fatalf("unexpected buckets: %+v", res.Calculation)
		}
	})

	t.Run("visit repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		visitRepo := mock_interfaces.NewMockIVisitRepository(ctrl)
		uc := NewJobUseCase(repo, visitRepo)

		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)
		visitRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, errors.New("db"))

		_, err := uc.GetPricing(context.Background(), "job-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
