// Package driving defines the interfaces through which external actors
// drive the application.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them, and driving adapters (the MCP server)
// call them.
package driving
