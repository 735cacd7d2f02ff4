package handlers

import (
	"errors"
	"net/http"

	request "fieldops/internal/adapter/http/dto/request"
	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/domain/entities"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidConsentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// ConsentHandler handles HTTP requests for WhatsApp messaging consent.

type ConsentHandler struct {
	usecase usecase.IConsentUseCase
}

func NewConsentHandler(uc usecase.IConsentUseCase) *ConsentHandler {
	return &ConsentHandler{usecase: uc}
}

// RecordConsent appends an opt-in or opt-out event for a phone number.
func (h *ConsentHandler) RecordConsent(c *gin.Context) {
	var payload request.RecordConsentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConsentPayload.HTTPStatus, errInvalidConsentPayload.ToHTTPError())
		return
	}

	event, err := h.usecase.Record(c.Request.Context(), payload.CustomerPhone, entities.ConsentAction(payload.Action), payload.Source, payload.Note)
	if err != nil {
		appErr := mapConsentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromConsentEvent(event))
}

// GetConsentState returns the current standing derived from the event log.
func (h *ConsentHandler) GetConsentState(c *gin.Context) {
	state, err := h.usecase.GetState(c.Request.Context(), c.Param("phone"))
	if err != nil {
		appErr := mapConsentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, state)
}

// GetConsentHistory returns the full audit trail, newest first.
func (h *ConsentHandler) GetConsentHistory(c *gin.Context) {
	history, err := h.usecase.History(c.Request.Context(), c.Param("phone"))
	if err != nil {
		appErr := mapConsentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConsentEvents(history))
}

func mapConsentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidConsentPhone), errors.Is(err, usecase.ErrInvalidConsentAction):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrConsentUnchanged):
		return pkg.NewDomainErrorSimple("CONSENT_UNCHANGED", "Consent state would not change", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
