package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// DoRequest executes a request against handler and returns the recorded response.
// body may be nil, a string (sent verbatim) or any value encoded as JSON.
func DoRequest(
	t *testing.T,
	handler http.Handler,
	method, path string,
	body interface{},
	headers map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewBuffer(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// AuthHeaders is a convenience for a headers map carrying only Authorization.
func AuthHeaders(value string) map[string]string {
	return map[string]string{"Authorization": value}
}

// DecodeJSONResponse unmarshals the recorded body into v.
func DecodeJSONResponse(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "response body: %s", rec.Body.String())
}

// ResponseMessage returns the "message" field of a JSON response.
func ResponseMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Message string `json:"message"`
	}
	DecodeJSONResponse(t, rec, &payload)
	return payload.Message
}
