package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/nblaunch/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("nblaunch", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
nblaunch - Start a notebook server.

Usage:
  nblaunch [options] [--] [BACKEND_ARGS...]

Arguments:
  BACKEND_ARGS
    Passed through to the selected notebook server. An optional leading
    '--' stops option processing, so backend arguments may look like flags.

Options:
`)
		flagSet.PrintDefaults()
	}

	notebookFlag := flagSet.String("notebook", "", "Which notebook server to start. Options: 'jupyter' or 'sagenb'.")
	nFlag := flagSet.String("n", "", "Which notebook server to start (shorthand).")
	logLevelFlag := flagSet.String("log", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	configFlag := flagSet.String("config", "", "Path to the launcher defaults file (HCL).")
	waitFlag := flagSet.Bool("wait", false, "Wait until the started server answers HTTP before reporting it ready.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	name := "default"
	if *notebookFlag != "" {
		name = *notebookFlag
	} else if *nFlag != "" {
		name = *nFlag
	}
	slog.Debug("Notebook backend determined.", "name", name)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Notebook:    name,
		ConfigPath:  *configFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		WaitReady:   *waitFlag,
		BackendArgs: flagSet.Args(),
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
