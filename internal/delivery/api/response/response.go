// Package response writes the JSON envelopes of the manager API.
package response

import (
	"net/http"

	deliverycontext "foodcart/internal/delivery/context"
	domainerrors "foodcart/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorBody is the error part of the envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Meta is attached to every envelope.
type Meta struct {
	RequestID string `json:"request_id"`
}

// SuccessEnvelope wraps successful payloads.
type SuccessEnvelope struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta"`
}

// ErrorEnvelope wraps failures.
type ErrorEnvelope struct {
	Error *ErrorBody `json:"error"`
	Meta  *Meta      `json:"meta"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessEnvelope{
		Data: data,
		Meta: meta(c),
	})
}

// Error returns an error response. Details are dropped for 5xx, 401 and 403.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorEnvelope{
		Error: &ErrorBody{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

func meta(c echo.Context) *Meta {
	return &Meta{
		RequestID: deliverycontext.GetRequestID(c),
	}
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// HandleAppError renders AppErrors and hands anything else to the echo error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}
