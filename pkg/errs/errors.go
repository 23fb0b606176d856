package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotFound       = http.StatusNotFound
	// Duplicate category names are reported as a client error rather than 409.
	ErrStatusAlreadyExists = http.StatusBadRequest
)

var (
	ErrInternalServer        = errors.New("Internal server error")
	ErrClient                = errors.New("Bad request")
	ErrInvalidRequestBody    = errors.New("Invalid request body")
	ErrNotFound              = errors.New("Resource not found")
	ErrCategoryNotFound      = errors.New("Category not found")
	ErrProductNotFound       = errors.New("Product not found")
	ErrCategoryAlreadyExists = errors.New("Category already exists")
	ErrCategoryNameRequired  = errors.New("Category name is required")
	ErrProductNameRequired   = errors.New("Product name is required")
	ErrProductFieldsRequired = errors.New("Name, price, and category are required")
	ErrCategoryIDRequired    = errors.New("Category ID is required")
	ErrInvalidCategoryID     = errors.New("Category must be a valid identifier")
)

var errorMap = map[error]int{
	ErrInternalServer:        ErrStatusInternalServer,
	ErrClient:                ErrStatusClient,
	ErrInvalidRequestBody:    ErrStatusClient,
	ErrNotFound:              ErrStatusNotFound,
	ErrCategoryNotFound:      ErrStatusNotFound,
	ErrProductNotFound:       ErrStatusNotFound,
	ErrCategoryAlreadyExists: ErrStatusAlreadyExists,
	ErrCategoryNameRequired:  ErrStatusClient,
	ErrProductNameRequired:   ErrStatusClient,
	ErrProductFieldsRequired: ErrStatusClient,
	ErrCategoryIDRequired:    ErrStatusClient,
	ErrInvalidCategoryID:     ErrStatusClient,
}

// GetErrorStatusCode returns the HTTP status registered for err or for the
// first sentinel it wraps. Unknown errors map to 500.
func GetErrorStatusCode(err error) int {
	if errStatusCode, ok := errorMap[err]; ok {
		return errStatusCode
	}

	for sentinel, errStatusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return errStatusCode
		}
	}

	return errorMap[ErrInternalServer]
}

// IsClientError reports whether err maps to a 4xx status.
func IsClientError(err error) bool {
	code := GetErrorStatusCode(err)
	return code >= 400 && code < 500
}

type FieldError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
}

// ValidationError carries the offending request fields alongside one of the
// sentinel errors above.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
