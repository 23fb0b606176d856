package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetErrorStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "validation", err: ErrProductFieldsRequired, expected: http.StatusBadRequest},
		{name: "duplicate category", err: ErrCategoryAlreadyExists, expected: http.StatusBadRequest},
		{name: "missing category id", err: ErrCategoryIDRequired, expected: http.StatusBadRequest},
		{name: "category not found", err: ErrCategoryNotFound, expected: http.StatusNotFound},
		{name: "product not found", err: ErrProductNotFound, expected: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("lookup: %w", ErrProductNotFound), expected: http.StatusNotFound},
		{name: "unknown error", err: errors.New("connection refused"), expected: http.StatusInternalServerError},
		{name: "internal", err: ErrInternalServer, expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, GetErrorStatusCode(tc.err))
		})
	}
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(ErrInvalidRequestBody))
	assert.True(t, IsClientError(ErrCategoryNotFound))
	assert.False(t, IsClientError(errors.New("socket closed")))
}
