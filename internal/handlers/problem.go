package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// MIMEProblemJSON is the content type of RFC 7807 problem documents.
const MIMEProblemJSON = "application/problem+json"

// Problem is an RFC 7807 problem document. Errors is only set for validation
// problems and maps field names to their messages.
type Problem struct {
	Type   string              `json:"type"`
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Detail string              `json:"detail,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

// WriteProblem sends a problem document with the given status.
func WriteProblem(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(Problem{
		Type:   "about:blank",
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}, MIMEProblemJSON)
}

// WriteValidationProblem sends a 422 problem document listing field errors.
func WriteValidationProblem(c *fiber.Ctx, fields map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(Problem{
		Type:   "about:blank",
		Title:  "One or more validation errors occurred.",
		Status: fiber.StatusUnprocessableEntity,
		Errors: fields,
	}, MIMEProblemJSON)
}

// ErrorHandler is the fiber.Config ErrorHandler; it renders unhandled errors,
// unknown routes included, as problem documents.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	detail := "An unexpected error occurred."
	if fe, ok := err.(*fiber.Error); ok {
		status = fe.Code
		detail = fe.Message
	}
	return WriteProblem(c, status, detail)
}
