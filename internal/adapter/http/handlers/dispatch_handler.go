package handlers

import (
	"errors"
	"net/http"
	"time"

	response "fieldops/internal/adapter/http/dto/response"
	"fieldops/internal/usecase"
	"fieldops/pkg"

	"github.com/gin-gonic/gin"
)

// DispatchHandler serves the read-only dispatch board.

type DispatchHandler struct {
	usecase usecase.IDispatchUseCase
}

func NewDispatchHandler(uc usecase.IDispatchUseCase) *DispatchHandler {
	return &DispatchHandler{usecase: uc}
}

// GetBoard returns the day's visits grouped per technician. ?date= defaults
// to today (UTC).
func (h *DispatchHandler) GetBoard(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	}

	board, err := h.usecase.Board(c.Request.Context(), date)
	if err != nil {
		appErr := mapDispatchError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDispatchBoard(board))
}

func mapDispatchError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDispatchDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
