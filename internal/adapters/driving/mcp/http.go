package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tastebud-labs/storefront-mcp/internal/logger"
)

// Fixed transport paths. Case-sensitive; anything else is a 404.
const (
	SSEPath        = "/sse"
	SSEMessagePath = "/sse/message"
	MCPPath        = "/mcp"
	HealthPath     = "/health"
)

// statusDocument is the JSON body served on "/" and "/health".
type statusDocument struct {
	Name      string          `json:"name"`
	Version   string          `json:"version"`
	Status    string          `json:"status"`
	Endpoints statusEndpoints `json:"endpoints"`
}

type statusEndpoints struct {
	SSE string `json:"sse"`
	MCP string `json:"mcp"`
}

// Handler returns the HTTP dispatch surface: the SSE transport on
// /sse (with its message sub-path), the streamable session transport
// on /mcp, the status document on / and /health, and 404 elsewhere.
// Each transport connection gets its own session via newSession.
func (s *Server) Handler() http.Handler {
	getSession := func(_ *http.Request) *mcp.Server {
		return s.newSession()
	}

	sse := mcp.NewSSEHandler(getSession, nil)
	streamable := mcp.NewStreamableHTTPHandler(getSession, nil)

	mux := http.NewServeMux()
	mux.Handle(SSEPath, sse)
	mux.Handle(SSEMessagePath, sse)
	mux.Handle(MCPPath, streamable)
	mux.HandleFunc("/", s.handleStatus)
	return mux
}

// handleStatus serves the health document on "/" and "/health" and a
// plain-text 404 for every unknown path (the catch-all pattern routes
// those here too).
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != HealthPath {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Not found")) //nolint:errcheck
		return
	}

	doc := statusDocument{
		Name:    ServerName,
		Version: Version,
		Status:  "healthy",
		Endpoints: statusEndpoints{
			SSE: SSEPath,
			MCP: MCPPath,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(doc) //nolint:errcheck
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		logger.Info("shutting down HTTP server")
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	logger.Info("HTTP server listening on %s", addr)
	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
