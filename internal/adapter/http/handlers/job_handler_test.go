package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fieldops/internal/adapter/http/handlers/mocks"
	"fieldops/internal/domain/entities"
	"fieldops/internal/domain/pricing"
	"fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(entities.Job{}, usecase.ErrInvalidPricingMode)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"customer_name":"Maria","title":"Boiler","pricing_mode":"WHATEVER"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		now := time.Now().UTC()
		uc.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(entities.Job{
			ID:           "job-1",
			CustomerName: "Maria",
			Title:        "Boiler replacement",
			PricingMode:  entities.PricingModePerVisit,
			Status:       entities.JobStatusOpen,
			CreatedAt:    now,
			UpdatedAt:    now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"customer_name":"Maria","title":"Boiler replacement","pricing_mode":"PER_VISIT"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "job-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_ChangePricingMode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("locked after completed visit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/pricing-mode", h.ChangePricingMode)

		uc.EXPECT().ChangePricingMode(gomock.Any(), "job-1", entities.PricingModeFixedTotal).Return(entities.Job{}, usecase.ErrPricingModeLocked)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/pricing-mode", bytes.NewBufferString(`{"pricing_mode":"FIXED_TOTAL"}`))
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
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/pricing-mode", h.ChangePricingMode)

		uc.EXPECT().ChangePricingMode(gomock.Any(), "job-1", entities.PricingModeHybrid).Return(entities.Job{ID: "job-1", PricingMode: entities.PricingModeHybrid}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/pricing-mode", bytes.NewBufferString(`{"pricing_mode":"HYBRID"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["pricing_mode"] != "HYBRID" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestJobHandler_GetPricing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/pricing", h.GetPricing)

		uc.EXPECT().GetPricing(gomock.Any(), "missing").Return(usecase.JobPricing{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/missing/pricing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success includes calculation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIJobUseCase(ctrl)
		h := NewJobHandler(uc)

		r := gin.New()
		r.GET("/v1/jobs/:job_id/pricing", h.GetPricing)

		uc.EXPECT().GetPricing(gomock.Any(), "job-1").Return(usecase.JobPricing{
			Job: entities.Job{ID: "job-1", PricingMode: entities.PricingModePerVisit},
			Visits: []entities.Visit{
				{ID: "v-1", JobID: "job-1", VisitNumber: 1, Status: entities.VisitStatusCompleted},
			},
			Calculation: pricing.PricingCalculation{
				Mode:       entities.PricingModePerVisit,
				Subtotal:   150,
				BalanceDue: 100,
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1/pricing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Calculation struct {
				Subtotal   float64 `json:"subtotal"`
				BalanceDue float64 `json:"balance_due"`
			} `json:"calculation"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Calculation.Subtotal != 150 || body.Calculation.BalanceDue != 100 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapJobError(t *testing.T) {
	if got := mapJobError(usecase.ErrInvalidJobInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapJobError(usecase.ErrJobNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapJobError(usecase.ErrPricingModeLocked); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapJobError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
