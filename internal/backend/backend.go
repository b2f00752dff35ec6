package backend

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Kind identifies one of the notebook server implementations. The set is a
// fixed enumeration, not a plugin registry.
type Kind int

const (
	KindJupyter Kind = iota
	KindSageNB
)

// Launcher starts one notebook server implementation.
type Launcher interface {
	// Name is the canonical backend name.
	Name() string
	// DefaultPort is the port the server listens on when none is given.
	DefaultPort() int
	// CheckPrerequisites verifies the backend can run on this host.
	CheckPrerequisites() error
	// Command builds the server process from the trailing CLI tokens.
	Command(ctx context.Context, tokens []string) (*exec.Cmd, error)
}

// kinds maps every accepted notebook name, aliases included, onto a Kind.
var kinds = map[string]Kind{
	"default": KindJupyter,
	"jupyter": KindJupyter,
	"ipython": KindJupyter,
	"sagenb":  KindSageNB,
}

// Resolve maps a notebook name onto its Launcher. Unknown names are an
// error; the set of backends is fixed at two.
func Resolve(name string) (Launcher, error) {
	kind, ok := kinds[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown notebook %q: valid choices are 'jupyter' and 'sagenb'", name)
	}

	switch kind {
	case KindSageNB:
		return &SageNB{}, nil
	default:
		return &Jupyter{}, nil
	}
}

// Port determines the port the backend will serve on: an explicit 'port=N',
// '--port=N' or '--port N' token wins, else the backend default.
func Port(l Launcher, tokens []string) int {
	for i, token := range tokens {
		var raw string
		switch {
		case strings.HasPrefix(token, "port="):
			raw = strings.TrimPrefix(token, "port=")
		case strings.HasPrefix(token, "--port="):
			raw = strings.TrimPrefix(token, "--port=")
		case token == "--port" && i+1 < len(tokens):
			raw = tokens[i+1]
		default:
			continue
		}
		if port, err := strconv.Atoi(raw); err == nil {
			return port
		}
	}
	return l.DefaultPort()
}
