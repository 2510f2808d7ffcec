package testutil

import (
	"net/http"
	"testing"

	"bookstore/internal/httpx"

	"github.com/stretchr/testify/assert"
)

func TestServe_Success(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONSuccess(w, r, map[string]string{"name": r.PathValue("name")}, map[string]interface{}{"total": 1})
	}

	rr := Serve(t, handler, NewRequest(http.MethodGet, "/items/ubik", "name", "ubik"))

	var body map[string]string
	rr.Data(t, &body)
	assert.True(t, rr.Body.Success)
	assert.Equal(t, "ubik", body["name"])
	assert.Equal(t, float64(1), rr.Body.Meta["total"])
	assert.Equal(t, "application/json", rr.Header.Get("Content-Type"))
}

func TestServe_Error(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "missing", nil)
	}

	rr := Serve(t, handler, NewRequest(http.MethodGet, "/items/x"))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.False(t, rr.Body.Success)
	assert.Equal(t, "NOT_FOUND", rr.Body.Error.Code)
	assert.Equal(t, "missing", rr.Body.Error.Message)
}
