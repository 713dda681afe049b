package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/bibliotheque-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         interface{}
		expectedBody string
	}{
		{
			name:         "array response",
			status:       http.StatusOK,
			data:         []int{1, 2},
			expectedBody: "[1,2]\n",
		},
		{
			name:         "empty object",
			status:       http.StatusCreated,
			data:         map[string]interface{}{},
			expectedBody: "{}\n",
		},
		{
			name:         "nil response",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: "null\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithJSON(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	w := httptest.NewRecorder()

	RespondWithMessage(w, req, http.StatusOK, "Route publique OK")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Route publique OK"}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPut, "/books/abc", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "ID invalide")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"ID invalide"}`, w.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		opts          []ResponseOption
		expectedLevel string
	}{
		{name: "server error logs at ERROR", status: http.StatusInternalServerError, expectedLevel: "ERROR"},
		{name: "client error logs at DEBUG", status: http.StatusNotFound, expectedLevel: "DEBUG"},
		{
			name:          "elevated client error logs at WARN",
			status:        http.StatusUnauthorized,
			opts:          []ResponseOption{WithElevatedLogLevel()},
			expectedLevel: "WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			req := httptest.NewRequest(http.MethodGet, "/books", nil)
			req = req.WithContext(logger.WithLogger(req.Context(), log))
			w := httptest.NewRecorder()

			secretErr := errors.New("dial postgres://admin:hunter2@db:5432/books failed")
			RespondWithErrorAndLog(w, req, tc.status, "Erreur interne", secretErr, tc.opts...)

			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, `{"message":"Erreur interne"}`, w.Body.String())
			assert.NotContains(t, w.Body.String(), "hunter2", "raw error must not reach the client")

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tc.expectedLevel, entry["level"])
			assert.Equal(t, "Erreur interne", entry["user_message"])
			assert.NotContains(t, buf.String(), "hunter2", "logged error must be redacted")
		})
	}
}
