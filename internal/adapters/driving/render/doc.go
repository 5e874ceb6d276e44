// Package render turns annotated paragraph text into styled terminal output.
// It applies the resolved annotation ranges of a text as lipgloss styles, one
// style per match kind, and degrades to plain text when colour is disabled.
package render
