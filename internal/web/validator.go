package web

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// NameRequest carries a venue or target name
type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

// SelectTargetRequest selects an assist target; empty selects the unset marker
type SelectTargetRequest struct {
	Name string `json:"name"`
}

// requestError is a rejected request body
type requestError struct {
	code    string
	details string
	message string
}

func (e *requestError) Error() string {
	return e.message + ": " + e.details
}

// bind parses the JSON body into v and checks its validate tags
func bind(c *fiber.Ctx, v any) error {
	if err := c.BodyParser(v); err != nil {
		return &requestError{code: CodeInvalidBody, details: err.Error(), message: "invalid request body"}
	}
	if err := validate.Struct(v); err != nil {
		return &requestError{code: CodeValidation, details: describe(err), message: "validation failed"}
	}
	return nil
}

// describe renders validator errors as one clause per field
func describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	var details strings.Builder
	for _, fe := range fieldErrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "required":
			details.WriteString(fmt.Sprintf("%s is required", fe.Field()))
		case "gte":
			details.WriteString(fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return details.String()
}
