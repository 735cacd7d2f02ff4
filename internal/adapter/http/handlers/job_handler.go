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
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// JobHandler handles HTTP requests for jobs, including the pricing endpoint.

type JobHandler struct {
	usecase usecase.IJobUseCase
}

func NewJobHandler(uc usecase.IJobUseCase) *JobHandler {
	return &JobHandler{usecase: uc}
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.CreateJob(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.usecase.GetByID(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ListJobs returns all jobs, optionally filtered by ?status=.
func (h *JobHandler) ListJobs(c *gin.Context) {
	status := entities.JobStatus(c.Query("status"))

	jobs, err := h.usecase.List(c.Request.Context(), status)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, response.FromJob(j))
	}
	c.JSON(http.StatusOK, out)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	var payload request.UpdateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.UpdateDetails(c.Request.Context(), c.Param("job_id"), payload.ToInput())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// ChangePricingMode switches the job's pricing mode. Rejected once any visit
// has completed.
func (h *JobHandler) ChangePricingMode(c *gin.Context) {
	var payload request.ChangePricingModeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.usecase.ChangePricingMode(c.Request.Context(), c.Param("job_id"), entities.PricingMode(payload.PricingMode))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// GetPricing runs the pricing calculator over the job and its visits.
func (h *JobHandler) GetPricing(c *gin.Context) {
	p, err := h.usecase.GetPricing(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobPricing(p))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidJobInput), errors.Is(err, usecase.ErrInvalidPricingMode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPricingModeLocked):
		return pkg.NewDomainErrorSimple("PRICING_MODE_LOCKED", "Pricing mode is locked after a visit has completed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
