package hcl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/nblaunch/internal/config"
	"github.com/vk/nblaunch/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL defaults loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes the top-level content of a defaults file.
type fileRoot struct {
	DefaultNotebook string           `hcl:"default_notebook,optional"`
	Notebooks       []*notebookBlock `hcl:"notebook,block"`
}

// notebookBlock is one 'notebook "<name>" { ... }' block.
type notebookBlock struct {
	Name string            `hcl:"name,label"`
	Args []string          `hcl:"args,optional"`
	Env  map[string]string `hcl:"env,optional"`
}

// defaultPath is the location probed when the user names no defaults file.
func defaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "nblaunch", "config.hcl"), nil
}

// Load parses the defaults file into the config model. A missing file at the
// default location yields an empty model; a missing file the user asked for
// by name surfaces as a parse error.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := config.NewModel()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultPath(); err != nil {
			logger.Debug("No home directory, skipping defaults file.", "error", err)
			return model, nil
		}
	}

	if _, err := os.Stat(path); !explicit && errors.Is(err, fs.ErrNotExist) {
		logger.Debug("No defaults file present.", "path", path)
		return model, nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse defaults file %s: %w", path, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode defaults file %s: %w", path, diags)
	}

	model.DefaultNotebook = root.DefaultNotebook
	for _, block := range root.Notebooks {
		model.Backends[block.Name] = &config.BackendDefaults{
			Args: block.Args,
			Env:  block.Env,
		}
	}

	logger.Debug("Defaults file loaded.", "path", path, "backends", len(model.Backends))
	return model, nil
}
