package apierror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(http.StatusNotFound, "Not found")

	assert.Equal(t, http.StatusNotFound, err.GetStatus())
	assert.Equal(t, "Not found", err.Error())
}

func TestNew_WithDetails(t *testing.T) {
	err := New(http.StatusUnprocessableEntity, "validation failed", errors.New("expected integer"), nil)

	assert.Equal(t, "validation failed: expected integer", err.Error())
}
