package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"blogapi/internal/apierror"
)

var statusCodes = map[int]string{
	http.StatusBadRequest:       "ERR_VALIDATION",
	http.StatusUnauthorized:     "ERR_UNAUTHORIZED",
	http.StatusNotFound:         "ERR_NOT_FOUND",
	http.StatusMethodNotAllowed: "ERR_METHOD_NOT_ALLOWED",
	http.StatusConflict:         "ERR_CONFLICT",
}

// handleError is the central echo error handler. It renders every error
// as a uniform JSON body {code, message} with field details for
// validation failures. Unexpected errors are logged with their cause
// and rendered as the internal kind with no detail leaked.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			// Routing-level errors (unknown path, bad method, oversized
			// body) surface as echo.HTTPError.
			code, ok := statusCodes[httpErr.Code]
			if !ok {
				code = "ERR_INTERNAL"
			}
			apiErr = &apierror.Error{
				Status:  httpErr.Code,
				Code:    code,
				Message: http.StatusText(httpErr.Code),
			}
		} else {
			apiErr = apierror.Internal(err)
		}
	}

	if apiErr.Status >= http.StatusInternalServerError {
		s.log.Error().Err(err).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Msg("request failed")
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(apiErr.Status); err != nil {
			s.log.Error().Err(err).Msg("render error response")
		}
		return
	}
	if err := c.JSON(apiErr.Status, apiErr); err != nil {
		s.log.Error().Err(err).Msg("render error response")
	}
}
