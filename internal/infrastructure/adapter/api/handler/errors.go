package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/condoindica/condoindica-api/internal/domain/error"
	"github.com/condoindica/condoindica-api/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrIncompleteProfile):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrInsufficientPoints),
		errors.Is(err, domainerr.ErrCouponExpired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrCouponAlreadyUsed),
		errors.Is(err, domainerr.ErrConcurrentModification),
		errors.Is(err, domainerr.ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrInvalidAmount),
		errors.Is(err, domainerr.ErrInvalidRating),
		errors.Is(err, domainerr.ErrInvalidUserID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a standardized error response for a domain error
func respondError(c *gin.Context, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal detail stays in the logs
		message = "Internal server error"
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
