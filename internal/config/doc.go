// Package config defines the format-agnostic model for the launcher's
// defaults file and the Loader interface its parsers implement.
package config
