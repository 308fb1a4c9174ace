package middleware

import (
	"log/slog"
	"net/http"

	"foodcart/internal/delivery/api/response"
	deliverycontext "foodcart/internal/delivery/context"
	domainerrors "foodcart/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Codes for failures raised by echo itself rather than a handler.
const (
	CodeRouteNotFound    = "ROUTE_NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodePayloadTooLarge  = "PAYLOAD_TOO_LARGE"
	CodeMalformedRequest = "MALFORMED_REQUEST"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeHTTPError        = "HTTP_ERROR"
)

// ErrorMiddleware renders every error that reaches echo as a JSON envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logFailure(c, err)
		}
		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, codeForStatus(httpErr.Code), message, nil)

		return
	}

	m.logFailure(c, err)
	_ = response.Error(c, domainerrors.ErrInternalError.HTTPCode(), domainerrors.ErrInternalError.ErrorCode(),
		domainerrors.ErrInternalError.Message(), nil)
}

func (m *ErrorMiddleware) logFailure(c echo.Context, err error) {
	deliverycontext.LoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return CodeRouteNotFound
	case http.StatusMethodNotAllowed:
		return CodeMethodNotAllowed
	case http.StatusRequestEntityTooLarge:
		return CodePayloadTooLarge
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return CodeMalformedRequest
	case http.StatusUnauthorized:
		return CodeUnauthorized
	default:
		return CodeHTTPError
	}
}
