// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - Fetcher: Loads one configured source payload (HTTP or folder)
//   - CacheStore: Persists raw payloads locally, best-effort
//   - ConfigStore: Application configuration
//
// Both Fetcher and CacheStore are fallible collaborators whose failures the
// core treats as soft: a failed fetch omits that one source from the load,
// and cache errors degrade to an empty read or a skipped write.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
