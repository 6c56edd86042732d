package mcp

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	server, err := NewServer(&Ports{Catalog: &mockCatalogService{}})
	require.NoError(t, err)
	return server.Handler()
}

func TestServer_Handler_Status(t *testing.T) {
	handler := newTestHandler(t)

	get := func(path string) (*httptest.ResponseRecorder, map[string]any) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		var doc map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		return rec, doc
	}

	t.Run("root serves the status document", func(t *testing.T) {
		rec, doc := get("/")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, ServerName, doc["name"])
		assert.Equal(t, Version, doc["version"])
		assert.Equal(t, "healthy", doc["status"])

		endpoints, ok := doc["endpoints"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, SSEPath, endpoints["sse"])
		assert.Equal(t, MCPPath, endpoints["mcp"])
	})

	t.Run("health alias serves the identical document", func(t *testing.T) {
		rootRec, rootDoc := get("/")
		healthRec, healthDoc := get(HealthPath)

		assert.Equal(t, http.StatusOK, healthRec.Code)
		assert.Equal(t, rootRec.Code, healthRec.Code)
		assert.Equal(t, rootDoc, healthDoc)
	})
}

func TestServer_Handler_NotFound(t *testing.T) {
	handler := newTestHandler(t)

	for _, path := range []string{"/nope", "/sse/other", "/HEALTH", "/mcp/extra"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			body, err := io.ReadAll(rec.Result().Body)
			require.NoError(t, err)
			assert.Equal(t, "Not found", string(body))
		})
	}
}
