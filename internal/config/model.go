package config

// Model is the loaded launcher defaults file.
type Model struct {
	// DefaultNotebook names which backend starts when the user names none.
	DefaultNotebook string
	// Backends holds per-backend launch defaults keyed by canonical name.
	Backends map[string]*BackendDefaults
}

// BackendDefaults are the launch defaults for a single backend.
type BackendDefaults struct {
	// Args are prepended to the user's trailing tokens.
	Args []string
	// Env entries are appended to the server process environment.
	Env map[string]string
}

// NewModel creates an empty Model.
func NewModel() *Model {
	return &Model{Backends: make(map[string]*BackendDefaults)}
}
