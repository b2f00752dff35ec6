package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/nblaunch/internal/backend"
	"github.com/vk/nblaunch/internal/ctxlog"
	"github.com/vk/nblaunch/internal/probe"
)

// Run starts the selected backend and waits for it to exit. The backend's
// exit status propagates to the caller as an *exec.ExitError.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.launcher.CheckPrerequisites(); err != nil {
		return err
	}
	a.logger.Debug("Backend prerequisites satisfied.", "name", a.launcher.Name())

	printBanner(a.outW)

	args := a.backendArgs()
	cmd, err := a.launcher.Command(ctx, args)
	if err != nil {
		return err
	}

	if d, ok := a.defaults.Backends[a.launcher.Name()]; ok && len(d.Env) > 0 {
		cmd.Env = os.Environ()
		for key, value := range d.Env {
			cmd.Env = append(cmd.Env, key+"="+value)
		}
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	a.logger.Info("🚀 Starting notebook server...", "backend", a.launcher.Name(), "args", args)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", a.launcher.Name(), err)
	}

	if a.config.WaitReady {
		url := fmt.Sprintf("http://localhost:%d/", backend.Port(a.launcher, args))
		if err := probe.WaitReady(ctx, url, probe.DefaultTimeout); err != nil {
			a.logger.Warn("Server did not answer before the readiness timeout.", "url", url, "error", err)
		} else {
			a.logger.Info("🩺 Notebook server is ready.", "url", url)
		}
	}

	// The backend owns the terminal from here on.
	err = cmd.Wait()
	a.logger.Debug("App.Run method finished.")
	return err
}

// backendArgs combines the defaults-file args for the resolved backend with
// the user's trailing tokens, user tokens last so they win.
func (a *App) backendArgs() []string {
	defaults, ok := a.defaults.Backends[a.launcher.Name()]
	if !ok || len(defaults.Args) == 0 {
		return a.config.BackendArgs
	}
	args := make([]string, 0, len(defaults.Args)+len(a.config.BackendArgs))
	args = append(args, defaults.Args...)
	return append(args, a.config.BackendArgs...)
}
