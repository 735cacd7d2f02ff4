package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fieldops/internal/adapter/http/handlers/mocks"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestVehicleHandler_CreateVehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing plate rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles", h.CreateVehicle)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"name":"Van 1"}`))
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
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles", h.CreateVehicle)

		uc.EXPECT().Create(gomock.Any(), usecase.CreateVehicleInput{Name: "Van 1", Plate: "ABC1D23", Make: "Fiat", Model: "Ducato", Year: 2021}).Return(
			entities.Vehicle{ID: "veh-1", Name: "Van 1", Plate: "ABC1D23", Status: entities.VehicleStatusAvailable}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"name":"Van 1","plate":"ABC1D23","make":"Fiat","model":"Ducato","year":2021}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "veh-1" || body["status"] != string(entities.VehicleStatusAvailable) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestVehicleHandler_ListVehicles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status filter forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles", h.ListVehicles)

		uc.EXPECT().List(gomock.Any(), entities.VehicleStatusInService).Return([]entities.Vehicle{
			{ID: "veh-1", Name: "Van 1", Plate: "ABC1D23", Status: entities.VehicleStatusInService},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles?status=IN_SERVICE", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "veh-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles", h.ListVehicles)

		uc.EXPECT().List(gomock.Any(), entities.VehicleStatus("FLYING")).Return(nil, usecase.ErrInvalidVehicleStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles?status=FLYING", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestVehicleHandler_ChangeVehicleStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIVehicleUseCase(ctrl)
	h := NewVehicleHandler(uc)

	r := gin.New()
	r.PATCH("/v1/vehicles/:vehicle_id/status", h.ChangeVehicleStatus)

	uc.EXPECT().ChangeStatus(gomock.Any(), "veh-1", entities.VehicleStatusMaintenance).Return(
		entities.Vehicle{ID: "veh-1", Name: "Van 1", Plate: "ABC1D23", Status: entities.VehicleStatusMaintenance}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/v1/vehicles/veh-1/status", bytes.NewBufferString(`{"status":"MAINTENANCE"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["status"] != string(entities.VehicleStatusMaintenance) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestVehicleHandler_AssignVehicleTechnician(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown technician", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.PATCH("/v1/vehicles/:vehicle_id/technician", h.AssignVehicleTechnician)

		uc.EXPECT().AssignTechnician(gomock.Any(), "veh-1", "ghost").Return(entities.Vehicle{}, usecase.ErrTechnicianNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/vehicles/veh-1/technician", bytes.NewBufferString(`{"technician_id":"ghost"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("assign success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.PATCH("/v1/vehicles/:vehicle_id/technician", h.AssignVehicleTechnician)

		uc.EXPECT().AssignTechnician(gomock.Any(), "veh-1", "tech-1").Return(
			entities.Vehicle{ID: "veh-1", Name: "Van 1", Plate: "ABC1D23", AssignedTechnicianID: "tech-1"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/vehicles/veh-1/technician", bytes.NewBufferString(`{"technician_id":"tech-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["assigned_technician_id"] != "tech-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapVehicleError(t *testing.T) {
	if got := mapVehicleError(usecase.ErrInvalidVehicleStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapVehicleError(usecase.ErrVehicleNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapVehicleError(usecase.ErrTechnicianNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapVehicleError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
