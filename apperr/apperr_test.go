package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{New(MissingField, "name missing"), http.StatusBadRequest},
		{New(InvalidReference, "no such cuisine"), http.StatusBadRequest},
		{New(NotFound, "recipe not found"), http.StatusNotFound},
		{Wrap(StoreFailure, "insert failed", errors.New("conn reset")), http.StatusInternalServerError},
		{errors.New("plain error"), http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Status(tc.err))
	}
}

func TestMessage_HidesStoreDetail(t *testing.T) {
	err := Wrap(StoreFailure, "insert failed", errors.New("conn reset"))
	assert.Equal(t, "internal server error", Message(err))
	// the detail remains available for logging
	assert.Contains(t, err.Error(), "conn reset")
}

func TestMessage_EchoesValidation(t *testing.T) {
	assert.Equal(t, "name missing", Message(New(MissingField, "name missing")))
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(NotFound, "gone"))
	assert.Equal(t, NotFound, KindOf(err))
}
