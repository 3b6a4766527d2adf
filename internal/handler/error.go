// Package handler holds the HTTP surface shared by the admin and portal
// APIs: error translation, request validation and the auth endpoints.
package handler

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/altamar/portal/internal/domain"
)

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse is the JSON error body returned by every endpoint.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// Error writes a domain error as a JSON response. Internal errors hide
// their details behind a generic message.
func Error(c echo.Context, err error) error {
	code := domain.ErrorCode(err)
	return c.JSON(ErrorCodeToHTTPStatus(code), ErrorResponse{
		Code:  code,
		Error: domain.ErrorMessage(err),
	})
}

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds the request validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}

// Bind decodes and validates a request body, translating failures into
// EINVALID domain errors.
func Bind(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return domain.Invalid("request.bind", "Malformed request body")
	}
	if err := c.Validate(v); err != nil {
		return domain.Invalid("request.validate", err.Error())
	}
	return nil
}
