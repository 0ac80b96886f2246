// Package validators checks product requests against their field rules before
// anything reaches the repository.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"productsvc/internal/dto"
	"productsvc/internal/models"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single rule violation on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result is the outcome of validating a request. A failed validation is an
// expected outcome, never an error value.
type Result struct {
	Valid  bool
	Errors []FieldError
}

// ByField groups messages by field name, keeping the order they were reported in.
func (r Result) ByField() map[string][]string {
	out := make(map[string][]string, len(r.Errors))
	for _, e := range r.Errors {
		out[e.Field] = append(out[e.Field], e.Message)
	}
	return out
}

// Error joins every message into one line.
func (r Result) Error() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, ", ")
}

// messages is keyed by struct field, then by failing tag.
var messages = map[string]map[string]string{
	"ProductID": {
		"required": "Product ID is required.",
		"uuid":     "Product ID must be a valid UUID.",
	},
	"ProductName": {
		"required": "Product name is required.",
		"notblank": "Product name is required.",
		"max":      "Product name cannot exceed 100 characters.",
	},
	"UnitPrice": {
		"gt": "Price must be greater than zero.",
	},
	"QuantityInStock": {
		"required": "Quantity in stock is required.",
		"gte":      "Quantity in stock must be a non-negative integer.",
		"lte":      "Quantity in stock must be a non-negative integer.",
	},
	"Category": {
		"required": "Category is required.",
		"category": "Category is required.",
	},
}

// ProductValidator validates add and update requests.
type ProductValidator struct {
	validate *validator.Validate
}

// NewProductValidator creates a ProductValidator with the product rules registered.
func NewProductValidator() *ProductValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return models.CategoryOptions(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &ProductValidator{validate: v}
}

// ValidateAdd checks an add request.
func (pv *ProductValidator) ValidateAdd(req *dto.ProductAddRequest) Result {
	if req == nil {
		return Result{Errors: []FieldError{{Field: "body", Message: "Product data is required."}}}
	}
	return pv.run(req)
}

// ValidateUpdate checks an update request, including its identifier.
func (pv *ProductValidator) ValidateUpdate(req *dto.ProductUpdateRequest) Result {
	if req == nil {
		return Result{Errors: []FieldError{{Field: "body", Message: "Product data is required."}}}
	}
	return pv.run(req)
}

func (pv *ProductValidator) run(req interface{}) Result {
	err := pv.validate.Struct(req)
	if err == nil {
		return Result{Valid: true}
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return Result{Errors: []FieldError{{Field: "body", Message: err.Error()}}}
	}

	res := Result{Errors: make([]FieldError, 0, len(validationErrors))}
	for _, e := range validationErrors {
		res.Errors = append(res.Errors, FieldError{
			Field:   e.Field(),
			Message: messageFor(e),
		})
	}
	return res
}

func messageFor(e validator.FieldError) string {
	if byTag, ok := messages[e.StructField()]; ok {
		if msg, ok := byTag[e.Tag()]; ok {
			return msg
		}
	}
	return fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
}
