// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// The only driven port is SearchIndex: the externally-hosted retrieval
// service that owns indexing, embedding and ranking. It is an opaque
// collaborator; this codebase never implements search itself.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
