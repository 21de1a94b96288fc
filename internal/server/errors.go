package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alexanderramin/fitplan/internal/contract"
	"github.com/alexanderramin/fitplan/internal/domain"
	"github.com/alexanderramin/fitplan/internal/repository"
	"github.com/alexanderramin/fitplan/internal/service"
)

// statusFor maps an error to an HTTP status and a client-facing reason.
func statusFor(err error) (int, string) {
	var ge *contract.GenerateError
	var he *echo.HTTPError
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ge):
		switch ge.Code {
		case contract.ErrInvalidRequest:
			return http.StatusBadRequest, ge.Message
		case contract.ErrProfileNotFound:
			return http.StatusNotFound, ge.Message
		default:
			return http.StatusInternalServerError, ge.Message
		}
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &he):
		return he.Code, fmt.Sprint(he.Message)
	case errors.As(err, &ve):
		return http.StatusInternalServerError, "generated plan failed validation"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status, reason := statusFor(err)
	if status >= http.StatusInternalServerError {
		loggerFrom(c).Error().Err(err).Msg("request failed")
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, contract.Failure(requestID(c), reason))
}
