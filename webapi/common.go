// Package webapi exposes the service over HTTP with fiber. Handlers bind and
// validate request bodies, call the services with typed inputs and map domain
// error kinds to transport responses.
package webapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/CaueSilva/bank-account-api/pkg/domain"
	"github.com/CaueSilva/bank-account-api/pkg/repository"
)

// Response is the standard envelope for success cases.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

var validate = validator.New()

// SuccessResponseJSON writes the success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// ErrorResponseJSON writes a problem+json response with the given status.
func ErrorResponseJSON(c *fiber.Ctx, status int, title, detail string) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}
	return c.Status(status).JSON(pd, "application/problem+json")
}

// ProblemDetailsJSON maps a domain error to its status code and writes the
// problem response. Unexpected errors surface a generic detail.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error) error {
	status := ErrorToStatusCode(err)
	detail := err.Error()
	if status == fiber.StatusInternalServerError {
		detail = "an error occurred while performing the request"
	}
	return ErrorResponseJSON(c, status, title, detail)
}

// ErrorToStatusCode maps domain error kinds to HTTP status codes.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrHolderNotFound),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrDocumentAlreadyExists),
		errors.Is(err, domain.ErrAccountAlreadyExists),
		errors.Is(err, domain.ErrStatusNotAllowed),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrValueNotPositive),
		errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body into T and validates it with
// go-playground/validator. On failure the error response is already written
// and a non-nil error is returned.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &input, nil
}

// ParseListParams reads the pagination query params, falling back to the
// defaults when absent. Out-of-range values are a validation failure; the
// error response is already written when nil is returned.
func ParseListParams(c *fiber.Ctx) (*repository.ListParams, error) {
	page := c.QueryInt("currentPage", repository.DefaultPage)
	size := c.QueryInt("maxItemsPerPage", repository.DefaultPageSize)
	params, err := repository.NewListParams(page, size)
	if err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &params, nil
}
