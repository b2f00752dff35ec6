package app

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/nblaunch/internal/config"
)

// stubLoader returns a fixed model without touching the filesystem.
type stubLoader struct {
	model *config.Model
}

func (s *stubLoader) Load(ctx context.Context, path string) (*config.Model, error) {
	return s.model, nil
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		cfg       Config
		expectErr bool
	}{
		{
			name: "valid config",
			cfg:  Config{Notebook: "jupyter", LogLevel: "info", LogFormat: "text"},
		},
		{
			name:      "missing notebook",
			cfg:       Config{LogLevel: "info", LogFormat: "text"},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := NewConfig(tc.cfg)

			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.cfg.Notebook, cfg.Notebook)
		})
	}
}

func TestNewApp_ResolvesRequestedBackend(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Notebook: "sagenb", LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)

	a, err := NewApp(io.Discard, cfg, &stubLoader{model: config.NewModel()})

	require.NoError(t, err)
	assert.Equal(t, "sagenb", a.Launcher().Name())
}

func TestNewApp_DefaultComesFromDefaultsFile(t *testing.T) {
	t.Parallel()

	model := config.NewModel()
	model.DefaultNotebook = "sagenb"
	cfg, err := NewConfig(Config{Notebook: "default", LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)

	a, err := NewApp(io.Discard, cfg, &stubLoader{model: model})

	require.NoError(t, err)
	assert.Equal(t, "sagenb", a.Launcher().Name())
}

func TestNewApp_UnknownNotebookIsAnError(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Notebook: "zeppelin", LogLevel: "info", LogFormat: "text"})
	require.NoError(t, err)

	a, err := NewApp(io.Discard, cfg, &stubLoader{model: config.NewModel()})

	require.Error(t, err)
	require.Nil(t, a)
	assert.Contains(t, err.Error(), "unknown notebook")
}

func TestBackendArgs_DefaultsComeFirst(t *testing.T) {
	t.Parallel()

	model := config.NewModel()
	model.Backends["jupyter"] = &config.BackendDefaults{Args: []string{"--no-browser"}}
	cfg, err := NewConfig(Config{
		Notebook:    "jupyter",
		LogLevel:    "info",
		LogFormat:   "text",
		BackendArgs: []string{"--port=9000"},
	})
	require.NoError(t, err)

	a, err := NewApp(io.Discard, cfg, &stubLoader{model: model})
	require.NoError(t, err)

	assert.Equal(t, []string{"--no-browser", "--port=9000"}, a.backendArgs())
}
