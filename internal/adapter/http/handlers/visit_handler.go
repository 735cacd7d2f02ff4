package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	request "fieldops/internal/adapter/http/dto/request"
	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidVisitPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// VisitHandler handles HTTP requests for visits: lifecycle transitions,
// technician price proposals and deposit collection.

type VisitHandler struct {
	usecase usecase.IVisitUseCase
}

func NewVisitHandler(uc usecase.IVisitUseCase) *VisitHandler {
	return &VisitHandler{usecase: uc}
}

func (h *VisitHandler) CreateVisit(c *gin.Context) {
	var payload request.CreateVisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
		return
	}

	visit, err := h.usecase.CreateVisit(c.Request.Context(), c.Param("job_id"), payload.ToInput())
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVisit(visit))
}

func (h *VisitHandler) ListVisitsByJob(c *gin.Context) {
	visits, err := h.usecase.ListByJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVisits(visits))
}

func (h *VisitHandler) GetVisit(c *gin.Context) {
	visit, err := h.usecase.GetByID(c.Request.Context(), c.Param("visit_id"))
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVisit(visit))
}

// AssignVisit sets or clears the visit's technician and optionally a vehicle.
func (h *VisitHandler) AssignVisit(c *gin.Context) {
	var payload request.AssignVisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
		return
	}

	visit, err := h.usecase.Assign(c.Request.Context(), c.Param("visit_id"), payload.TechnicianID, payload.VehicleID)
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVisit(visit))
}

func (h *VisitHandler) ScheduleVisit(c *gin.Context) {
	var payload request.ScheduleVisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
		return
	}

	visit, err := h.usecase.Schedule(c.Request.Context(), c.Param("visit_id"), payload.ScheduledDate)
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVisit(visit))
}

func (h *VisitHandler) StartVisit(c *gin.Context) {
	visit, err := h.usecase.Start(c.Request.Context(), c.Param("visit_id"))
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVisit(visit))
}

func (h *VisitHandler) CompleteVisit(c *gin.Context) {
	var payload request.CompleteVisitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
			return
		}
	}

	visit, err := h.usecase.Complete(c.Request.Context(), c.Param("visit_id"), payload.ActualPrice)
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVisit(visit))
}

func (h *VisitHandler) CancelVisit(c *gin.Context) {
	visit, err := h.usecase.Cancel(c.Request.Context(), c.Param("visit_id"))
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVisit(visit))
}

// ProposePrice records a technician's price for the visit and returns the
// variance verdict alongside the stored visit.
func (h *VisitHandler) ProposePrice(c *gin.Context) {
	var payload request.ProposePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
		return
	}

	visit, result, err := h.usecase.ProposePrice(c.Request.Context(), c.Param("visit_id"), payload.Price)
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposedPrice(visit, result))
}

func (h *VisitHandler) ApproveProposedPrice(c *gin.Context) {
	visit, err := h.usecase.ApproveProposedPrice(c.Request.Context(), c.Param("visit_id"))
	if err != nil {
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVisit(visit))
}

// PayDeposit charges the visit deposit. The body is forwarded to the payment
// gateway; the amount itself always comes from the stored visit.
func (h *VisitHandler) PayDeposit(c *gin.Context) {
	visitID := c.Param("visit_id")
	log.Printf("[deposit][handler] pay start visit_id=%s", visitID)
	mockMode := isPaymentGatewayMockEnabled()
	payload, err := readDepositPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[deposit][handler] payload invalid in mock mode; fallback to empty payload visit_id=%s err=%v", visitID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[deposit][handler] invalid payload visit_id=%s err=%v", visitID, err)
			c.JSON(errInvalidVisitPayload.HTTPStatus, errInvalidVisitPayload.ToHTTPError())
			return
		}
	}

	visit, err := h.usecase.PayDeposit(c.Request.Context(), visitID, payload)
	if err != nil {
		log.Printf("[deposit][handler] pay failed visit_id=%s err=%v", visitID, err)
		appErr := mapVisitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[deposit][handler] pay success visit_id=%s payment_id=%s", visit.ID, visit.DepositPaymentID)

	c.JSON(http.StatusOK, response.FromVisit(visit))
}

func readDepositPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["payment_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("payment_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapVisitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVisitID), errors.Is(err, usecase.ErrInvalidVisitInput),
		errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVisitNotFound):
		return pkg.NewDomainErrorSimple("VISIT_NOT_FOUND", "Visit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVisitClosed):
		return pkg.NewDomainErrorSimple("VISIT_ALREADY_CLOSED", "Visit already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobClosed):
		return pkg.NewDomainErrorSimple("JOB_ALREADY_CLOSED", "Job already closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoProposedPrice):
		return pkg.NewDomainErrorSimple("NO_PROPOSED_PRICE", "Visit has no proposed price to approve", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositNotRequired):
		return pkg.NewDomainErrorSimple("DEPOSIT_NOT_REQUIRED", "Visit does not require a deposit", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositAlreadyPaid):
		return pkg.NewDomainErrorSimple("DEPOSIT_ALREADY_PAID", "Deposit already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
