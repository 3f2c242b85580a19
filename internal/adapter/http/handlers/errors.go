package handlers

import (
	"errors"
	"net/http"

	"lotes_backoffice/internal/infrastructure/backend"
	"lotes_backoffice/internal/infrastructure/logger"
	"lotes_backoffice/internal/usecase"
	"lotes_backoffice/internal/usecase/interfaces"
	"lotes_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Login required", http.StatusUnauthorized)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.For("http").Error().Err(appErr).Str("path", c.FullPath()).Msg("request failed")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapCommonError covers the failures every route shares: form validation and
// backend answers.
func mapCommonError(err error) *pkg.AppError {
	var vErr *usecase.ValidationError
	var apiErr *backend.APIError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewValidationError("Invalid form", vErr.Fields, http.StatusUnprocessableEntity)
	case errors.Is(err, interfaces.ErrUnauthorized):
		return pkg.NewDomainErrorSimple("SESSION_EXPIRED", "Session expired, please log in again", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrBackendUnavailable):
		return pkg.NewDomainError("BACKEND_UNAVAILABLE", "Sales backend unavailable", err, http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrNotFound):
		return pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	case errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500:
		return pkg.NewDomainError("BACKEND_REJECTED", apiErr.Message, err, apiErr.Status)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
