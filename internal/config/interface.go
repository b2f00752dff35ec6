package config

import "context"

// Loader loads the launcher defaults from a path. An empty path means the
// implementation's default location; a missing file there is an empty Model,
// while a missing file the user named explicitly is an error.
type Loader interface {
	Load(ctx context.Context, path string) (*Model, error)
}
