package http

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"lockers/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var statusByKind = map[errs.Kind]int{
	errs.KindUnauthenticated:   http.StatusUnauthorized,
	errs.KindUnauthorized:      http.StatusForbidden,
	errs.KindNotFound:          http.StatusNotFound,
	errs.KindConflict:          http.StatusConflict,
	errs.KindInvalidState:      http.StatusBadRequest,
	errs.KindInvalidCredential: http.StatusBadRequest,
	errs.KindTooManyAttempts:   http.StatusTooManyRequests,
	errs.KindUnavailable:       http.StatusServiceUnavailable,
	errs.KindInvalidInput:      http.StatusBadRequest,
}

// StatusFor maps an error kind onto its HTTP status.
func StatusFor(kind errs.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeError renders err. Storage and internal failures are logged with their
// cause and reach the client only as a generic message.
func writeError(c echo.Context, logger *slog.Logger, err error) error {
	kind := errs.KindOf(err)
	status := StatusFor(kind)

	message := err.Error()
	switch kind {
	case errs.KindUnavailable:
		message = "service temporarily unavailable"
		logger.Error("request failed", "path", c.Path(), "kind", kind.String(), "error", err)
	case errs.KindInternal:
		message = "internal error"
		logger.Error("request failed", "path", c.Path(), "kind", kind.String(), "error", err)
	case errs.KindUnauthenticated:
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Bearer realm="lockers"`)
	case errs.KindTooManyAttempts:
		var tooMany *errs.TooManyAttemptsError
		if errors.As(err, &tooMany) {
			seconds := int(math.Ceil(tooMany.RetryAfter.Seconds()))
			c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
		}
	}

	return c.JSON(status, Error{Code: status, Message: message})
}

// ErrorHandler renders errors that escape a route, including echo's own
// routing and binding errors.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, Error{Code: he.Code, Message: fmt.Sprint(he.Message)})
			return
		}

		_ = writeError(c, logger, err)
	}
}
