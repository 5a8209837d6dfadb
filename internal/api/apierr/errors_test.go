package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/courtbot/internal/model"
	"github.com/mcoot/courtbot/internal/services/auth"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid court count", model.ErrInvalidCourtCount, http.StatusBadRequest, CodeInvalidCourtCount},
		{"auto capacity", model.ErrAutoCapacity, http.StatusConflict, CodeAutoCapacity},
		{"empty sender", model.ErrEmptySender, http.StatusBadRequest, CodeInvalidRequest},
		{"wrapped history error", fmt.Errorf("%w: connection refused", model.ErrHistoryUnavailable), http.StatusServiceUnavailable, CodeHistoryUnavailable},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, CodeUnauthorized},
		{"explicit invalid request", NewInvalidRequestError("bad"), http.StatusBadRequest, CodeInvalidRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			WriteError(rr, tt.err)

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}
