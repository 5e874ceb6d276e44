// Package normalisers converts raw library JSON payloads into the uniform
// document model. Each payload shape (dated list, compound steps/traditions,
// generic sectioned book) has its own normaliser; shape detection runs as an
// explicit step before any transformation, and unrecognised or malformed
// input degrades to an empty unknown document rather than an error.
package normalisers
