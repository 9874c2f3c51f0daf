package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"futsal/internal/domain"
	"futsal/internal/logging"
)

// Error codes returned in ErrorResponse.Code
const (
	CodeConflict      = "CONFLICT"
	CodeImportFailed  = "IMPORT_FAILED"
	CodeInternal      = "INTERNAL_ERROR"
	CodeInvalidBody   = "INVALID_REQUEST"
	CodeInvalidPeriod = "INVALID_PERIOD"
	CodeNotFound      = "NOT_FOUND"
	CodeReservedName  = "RESERVED_NAME"
	CodeValidation    = "VALIDATION_FAILED"
)

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
	Error   string `json:"error"`
}

// customErrorHandler provides consistent error responses
func customErrorHandler(c *fiber.Ctx, err error) error {
	status, response := classify(err)
	if status >= fiber.StatusInternalServerError {
		logging.Logger.Error("Request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return c.Status(status).JSON(response)
}

// classify maps domain and fiber errors onto an HTTP status and response body
func classify(err error) (int, ErrorResponse) {
	var verr *domain.ValidationError
	var ferr *fiber.Error
	var rerr *requestError

	switch {
	case errors.As(err, &rerr):
		return fiber.StatusBadRequest, ErrorResponse{Code: rerr.code, Details: rerr.details, Error: rerr.message}
	case errors.As(err, &verr):
		return fiber.StatusBadRequest, ErrorResponse{Code: CodeValidation, Details: verr.Error(), Error: "validation failed"}
	case errors.Is(err, domain.ErrInvalidImport):
		return fiber.StatusBadRequest, ErrorResponse{Code: CodeImportFailed, Details: err.Error(), Error: "import failed"}
	case errors.Is(err, domain.ErrInvalidPeriod):
		return fiber.StatusBadRequest, ErrorResponse{Code: CodeInvalidPeriod, Details: err.Error(), Error: "invalid period"}
	case errors.Is(err, domain.ErrEmptyName):
		return fiber.StatusBadRequest, ErrorResponse{Code: CodeValidation, Details: err.Error(), Error: "validation failed"}
	case errors.Is(err, domain.ErrReservedName):
		return fiber.StatusBadRequest, ErrorResponse{Code: CodeReservedName, Details: err.Error(), Error: "name is reserved"}
	case errors.Is(err, domain.ErrDuplicateName):
		return fiber.StatusConflict, ErrorResponse{Code: CodeConflict, Details: err.Error(), Error: "name already exists"}
	case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrNameNotFound):
		return fiber.StatusNotFound, ErrorResponse{Code: CodeNotFound, Details: err.Error(), Error: "not found"}
	case errors.As(err, &ferr):
		code := CodeInternal
		switch ferr.Code {
		case fiber.StatusNotFound:
			code = CodeNotFound
		case fiber.StatusBadRequest, fiber.StatusUnsupportedMediaType:
			code = CodeInvalidBody
		}
		return ferr.Code, ErrorResponse{Code: code, Error: ferr.Message}
	default:
		return fiber.StatusInternalServerError, ErrorResponse{Code: CodeInternal, Error: "internal server error"}
	}
}
