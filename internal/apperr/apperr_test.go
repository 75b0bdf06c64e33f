package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected int
	}{
		{KindNotFound, http.StatusNotFound},
		{KindValidation, http.StatusBadRequest},
		{KindBadRequest, http.StatusBadRequest},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
		{KindUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, New(tt.kind, "x").HTTPStatus())
	}
}

func TestGetKindThroughWrapping(t *testing.T) {
	base := NotFound("campaign not found")
	wrapped := fmt.Errorf("loading: %w", base)

	assert.Equal(t, KindNotFound, GetKind(wrapped))
	assert.True(t, IsNotFound(wrapped))
	assert.Equal(t, KindUnknown, GetKind(errors.New("plain")))
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(KindConflict, "lead already in campaign", cause).WithOp("AddLead")

	assert.Equal(t, "AddLead: lead already in campaign", err.Error())
	assert.ErrorIs(t, err, cause)
}
