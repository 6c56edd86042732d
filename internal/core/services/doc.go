// Package services implements the driving port interfaces.
// Services contain the core business logic: building queries from tool
// arguments, calling the retrieval port, and rendering ranked hits into
// response text.
package services
