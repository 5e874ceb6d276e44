// Package driving defines the interfaces that delivery surfaces call IN to
// the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI and TUI adapters depend on these interfaces, and core services
// implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
