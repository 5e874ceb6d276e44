// Package file provides the TOML file-backed implementation of the
// ConfigStore driven port. Configuration lives in a single config.toml in the
// StudyShelf config directory; nested tables are flattened into dot-notation
// keys such as "library.base_url".
package file
