package backend

import (
	"context"
	"fmt"
	"os/exec"
)

// Jupyter starts the Jupyter notebook server. Its command line is its own
// contract, so the trailing tokens pass through verbatim.
type Jupyter struct{}

// Name returns the canonical backend name.
func (j *Jupyter) Name() string { return "jupyter" }

// DefaultPort returns the port Jupyter serves on when none is given.
func (j *Jupyter) DefaultPort() int { return 8888 }

// CheckPrerequisites verifies the jupyter executable is installed.
func (j *Jupyter) CheckPrerequisites() error {
	if _, err := exec.LookPath("jupyter"); err != nil {
		return fmt.Errorf("the Jupyter notebook requires the 'jupyter' executable on PATH: %w", err)
	}
	return nil
}

// Command builds the 'jupyter notebook' process with the raw tokens appended.
func (j *Jupyter) Command(ctx context.Context, tokens []string) (*exec.Cmd, error) {
	args := append([]string{"notebook"}, tokens...)
	return exec.CommandContext(ctx, "jupyter", args...), nil
}
