package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"fieldops/internal/domain/entities"
	mock_interfaces "fieldops/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDispatchUseCase_Board(t *testing.T) {
	t.Run("invalid date", func(t *testing.T) {
		uc := NewDispatchUseCase(nil, nil)
		_, err := uc.Board(context.Background(), "10/09/2026")
		if !errors.Is(err, ErrInvalidDispatchDate) {
			t.Fatalf("expected ErrInvalidDispatchDate, got %v", err)
		}
	})

	t.Run("groups by technician with unassigned bucket", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		visitRepo := mock_interfaces.NewMockIVisitRepository(ctrl)
		techRepo := mock_interfaces.NewMockITechnicianRepository(ctrl)
		uc := NewDispatchUseCase(visitRepo, techRepo)

		morning := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
		noon := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
		visitRepo.EXPECT().ListByScheduledDay(gomock.Any(), "2026-09-10").Return([]entities.Visit{
			{ID: "v-1", TechnicianID: "tech-1", ScheduledDate: &noon},
			{ID: "v-2", TechnicianID: "tech-1", ScheduledDate: &morning},
			{ID: "v-3", ScheduledDate: &morning},
			{ID: "v-4", TechnicianID: "tech-gone", ScheduledDate: &noon},
		}, nil)
		techRepo.EXPECT().List(gomock.Any(), true).Return([]entities.Technician{
			{ID: "tech-1", Name: "Ana"},
			{ID: "tech-2", Name: "Bruno"},
		}, nil)

		board, err := uc.Board(context.Background(), "2026-09-10")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(board.Columns) != 3 {
			t.Fatalf("expected 3 columns, got %d", len(board.Columns))
		}

		ana := board.Columns[0]
		if ana.TechnicianName != "Ana" || len(ana.Visits) != 2 {
			t.Fatalf("unexpected first column: %+v", ana)
		}
		if ana.Visits[0].ID != "v-2" {
			t.Fatalf("expected earliest visit first, got %s", ana.Visits[0].ID)
		}

		if bruno := board.Columns[1]; len(bruno.Visits) != 0 {
			t.Fatalf("expected empty column for Bruno, got %+v", bruno.Visits)
		}

		unassigned := board.Columns[2]
		if unassigned.TechnicianID != "" || len(unassigned.Visits) != 2 {
			t.Fatalf("unexpected unassigned bucket: %+v", unassigned)
		}
	})

	t.Run("visit repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		visitRepo := mock_interfaces.NewMockIVisitRepository(ctrl)
		uc := NewDispatchUseCase(visitRepo, nil)

		visitRepo.EXPECT().ListByScheduledDay(gomock.Any(), "2026-09-10").Return(nil, errors.New("db"))

		_, err := uc.Board(context.Background(), "2026-09-10")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
