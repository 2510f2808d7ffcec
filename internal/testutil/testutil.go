package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/httpx"

	"github.com/stretchr/testify/require"
)

// NewRequest creates a new HTTP request for testing. pathValues are
// name/value pairs set as if a ServeMux pattern had matched them.
func NewRequest(method, target string, pathValues ...string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	for i := 0; i+1 < len(pathValues); i += 2 {
		r.SetPathValue(pathValues[i], pathValues[i+1])
	}
	return r
}

// Envelope is the body written by httpx.JSONSuccess and httpx.JSONError.
type Envelope struct {
	Success bool                    `json:"success"`
	Data    json.RawMessage         `json:"data"`
	Error   httpx.ErrorResponseBody `json:"error"`
	Meta    map[string]interface{}  `json:"meta"`
}

// RecordResponse records the HTTP response for testing
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   Envelope
}

// RecordHTTPResponse decodes the envelope held by w.
func RecordHTTPResponse(t testing.TB, w *httptest.ResponseRecorder) RecordResponse {
	t.Helper()
	result := w.Result()
	defer result.Body.Close()

	var env Envelope
	require.NoError(t, json.NewDecoder(result.Body).Decode(&env), "decode response body")

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   env,
	}
}

// Serve runs handler against r and records the response.
func Serve(t testing.TB, handler http.HandlerFunc, r *http.Request) RecordResponse {
	t.Helper()
	w := httptest.NewRecorder()
	handler(w, r)
	return RecordHTTPResponse(t, w)
}

// Data unmarshals the envelope's data into v after checking for a 200.
func (rr RecordResponse) Data(t testing.TB, v interface{}) {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code, "error code %s", rr.Body.Error.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Data, v))
}
