package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server identity advertised over MCP and in the status document.
const (
	ServerName = "storefront-mcp"
	Version    = "0.1.0"
)

// Server is the MCP server for the storefront product catalog.
type Server struct {
	ports *Ports
	impl  *mcp.Implementation
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	return &Server{
		ports: ports,
		impl: &mcp.Implementation{
			Name:    ServerName,
			Version: Version,
		},
	}, nil
}

// newSession builds a fresh protocol server with the four catalog tools
// registered. Registration is the only state a session carries, so a
// new instance per connection is cheap and keeps connections isolated.
func (s *Server) newSession() *mcp.Server {
	session := mcp.NewServer(s.impl, nil)
	s.registerTools(session)
	return session
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.newSession().Run(ctx, &mcp.StdioTransport{})
}
