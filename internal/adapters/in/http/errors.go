package http

import (
	"errors"
	"net/http"

	"grocery/internal/generated/servers"
	"grocery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error taxonomy of the core onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrActorNotPermitted):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrStaleObject):
		return http.StatusConflict
	case errors.Is(err, errs.ErrStorage):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	switch status {
	case http.StatusServiceUnavailable:
		s.logger.ErrorContext(ctx.Request().Context(), "Order storage failed", "error", err)
		message = "Order storage is unavailable"
	case http.StatusInternalServerError:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed", "error", err)
		message = "Internal server error"
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}
