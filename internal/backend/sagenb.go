package backend

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/vk/nblaunch/internal/callsig"
)

// SageNB starts the legacy notebook server. Its entry point takes positional
// and keyword arguments, so the trailing tokens are translated into a call
// signature and rendered back into the server's argument convention.
type SageNB struct{}

// Name returns the canonical backend name.
func (s *SageNB) Name() string { return "sagenb" }

// DefaultPort returns the port the legacy server serves on when none is given.
func (s *SageNB) DefaultPort() int { return 8080 }

// CheckPrerequisites verifies the legacy server is installed.
func (s *SageNB) CheckPrerequisites() error {
	if _, err := exec.LookPath("sagenb"); err != nil {
		return fmt.Errorf("the legacy notebook requires the 'sagenb' server on PATH: %w", err)
	}
	return nil
}

// Command translates the tokens and builds the legacy server process.
func (s *SageNB) Command(ctx context.Context, tokens []string) (*exec.Cmd, error) {
	sig := callsig.Translate(tokens)
	return exec.CommandContext(ctx, "sagenb", sig.CommandArgs()...), nil
}
