// Package backend models the closed set of notebook server implementations
// the launcher can start and resolves user-facing names onto them.
package backend
