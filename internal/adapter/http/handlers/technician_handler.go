package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "fieldops/internal/adapter/http/dto/request"
	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTechnicianPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// TechnicianHandler handles HTTP requests for the technician roster.

type TechnicianHandler struct {
	usecase usecase.ITechnicianUseCase
}

func NewTechnicianHandler(uc usecase.ITechnicianUseCase) *TechnicianHandler {
	return &TechnicianHandler{usecase: uc}
}

func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	var payload request.CreateTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTechnicianPayload.HTTPStatus, errInvalidTechnicianPayload.ToHTTPError())
		return
	}

	tech, err := h.usecase.Create(c.Request.Context(), payload.Name, payload.Phone, payload.Email, payload.Skills)
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromTechnician(tech))
}

func (h *TechnicianHandler) GetTechnician(c *gin.Context) {
	tech, err := h.usecase.GetByID(c.Request.Context(), c.Param("technician_id"))
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTechnician(tech))
}

// ListTechnicians returns the roster; ?active=true narrows to active members.
func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	activeOnly, _ := strconv.ParseBool(c.Query("active"))

	techs, err := h.usecase.List(c.Request.Context(), activeOnly)
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTechnicians(techs))
}

func (h *TechnicianHandler) UpdateTechnician(c *gin.Context) {
	var payload request.UpdateTechnicianRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTechnicianPayload.HTTPStatus, errInvalidTechnicianPayload.ToHTTPError())
		return
	}

	tech, err := h.usecase.Update(c.Request.Context(), c.Param("technician_id"), payload.ToInput())
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTechnician(tech))
}

// DeactivateTechnician marks the technician inactive instead of deleting the
// record, so past visits keep their reference.
func (h *TechnicianHandler) DeactivateTechnician(c *gin.Context) {
	tech, err := h.usecase.Deactivate(c.Request.Context(), c.Param("technician_id"))
	if err != nil {
		appErr := mapTechnicianError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTechnician(tech))
}

func mapTechnicianError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTechnicianID), errors.Is(err, usecase.ErrInvalidTechnicianInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTechnicianNotFound):
		return pkg.NewDomainErrorSimple("TECHNICIAN_NOT_FOUND", "Technician not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
