// Package fetch provides the Fetcher driven-port implementations: an HTTP
// fetcher for the hosted library and a local folder reader with optional
// change watching.
package fetch
