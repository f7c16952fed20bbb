package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/priorspec/internal/app"
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
	flagSet := flag.NewFlagSet("priorspec", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
priorspec - load, validate, and draw from kilonova/GRB prior files.

Usage:
  priorspec [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to an .hcl run configuration describing priors and injection jobs.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the run configuration file.")
	cFlag := flagSet.String("c", "", "Path to the run configuration file (shorthand).")
	priorsFlag := flagSet.String("priors", "", "Path to a prior file or directory; validates it without a run configuration.")
	inspectFlag := flagSet.Bool("inspect", false, "With -priors, write the parsed table to stdout.")
	formatFlag := flagSet.String("format", "json", "Inspect output format. Options: 'json' or 'yaml'.")
	seedFlag := flagSet.Int64("seed", app.UnsetSeed, "Override the seed of every injection job. -1 keeps the configured seeds.")
	servePortFlag := flagSet.Int("serve-port", 0, "Port for the HTTP prior table endpoint. 0 is disabled.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	configPath := ""
	if *configFlag != "" {
		configPath = *configFlag
	} else if *cFlag != "" {
		configPath = *cFlag
	} else if flagSet.NArg() > 0 {
		configPath = flagSet.Arg(0)
	}
	slog.Debug("Config path determined.", "path", configPath)

	if configPath == "" && *priorsFlag == "" {
		slog.Debug("No config or priors path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	format := strings.ToLower(*formatFlag)
	if format != "json" && format != "yaml" {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'json' or 'yaml'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath: configPath,
		PriorsPath: *priorsFlag,
		Inspect:    *inspectFlag,
		Format:     format,
		Seed:       *seedFlag,
		ServePort:  *servePortFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
