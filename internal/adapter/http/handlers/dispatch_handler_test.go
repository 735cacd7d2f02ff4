package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldops/internal/adapter/http/handlers/mocks"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDispatchHandler_GetBoard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewDispatchHandler(uc)

		r := gin.New()
		r.GET("/v1/dispatch", h.GetBoard)

		uc.EXPECT().Board(gomock.Any(), "not-a-date").Return(usecase.DispatchBoard{}, usecase.ErrInvalidDispatchDate)

		req := httptest.NewRequest(http.MethodGet, "/v1/dispatch?date=not-a-date", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success groups per technician", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDispatchUseCase(ctrl)
		h := NewDispatchHandler(uc)

		r := gin.New()
		r.GET("/v1/dispatch", h.GetBoard)

		uc.EXPECT().Board(gomock.Any(), "2026-08-29").Return(usecase.DispatchBoard{
			Date: "2026-08-29",
			Columns: []usecase.DispatchColumn{
				{TechnicianID: "tech-1", TechnicianName: "Ana", Visits: []entities.Visit{{ID: "v-1", TechnicianID: "tech-1"}}},
				{Visits: []entities.Visit{{ID: "v-2"}}},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/dispatch?date=2026-08-29", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Date    string `json:"date"`
			Columns []struct {
				TechnicianID string `json:"technician_id"`
				Visits       []struct {
					ID string `json:"id"`
				} `json:"visits"`
			} `json:"columns"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Date != "2026-08-29" || len(body.Columns) != 2 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body.Columns[0].TechnicianID != "tech-1" || len(body.Columns[1].Visits) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
