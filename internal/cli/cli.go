package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/lazyframe/internal/app"
	"github.com/specialistvlad/lazyframe/internal/nodeid"
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

// Parse processes command-line arguments on top of defaults. It returns a
// populated Config, a boolean indicating if the program should exit
// cleanly, or an ExitError.
func Parse(args []string, output io.Writer, defaults app.Settings) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("lazyframe", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
Lazyframe - derives new table columns from a declarative pipeline.

Usage:
  lazyframe [options] [PIPELINE_PATH...]

Arguments:
  PIPELINE_PATH
    Path to a single .hcl file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	pipelineFlag := flagSet.String("pipeline", defaults.Pipeline, "Comma separated pipeline files or directories.")
	pFlag := flagSet.String("p", "", "Pipeline files or directories (shorthand).")
	inputFlag := flagSet.String("input", defaults.Input, "Input table (.csv or .xlsx).")
	outputFlag := flagSet.String("output", defaults.Output, "Output table (.csv or .xlsx). Empty writes CSV to stdout.")
	columnsFlag := flagSet.String("columns", "", "Comma separated names to output. Defaults to the pipeline's output block, or every derived column.")
	planFlag := flagSet.Bool("plan", false, "Print the evaluation order and exit without evaluating.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn' (or 'warning'), 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var paths []string
	switch {
	case *pFlag != "":
		paths = nodeid.ParseList(*pFlag)
	case flagSet.NArg() > 0:
		paths = flagSet.Args()
	case *pipelineFlag != "":
		paths = nodeid.ParseList(*pipelineFlag)
	}
	slog.Debug("Pipeline paths determined.", "paths", paths)

	if len(paths) == 0 {
		slog.Debug("No pipeline path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "warning", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', 'warning' or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		PipelinePaths: paths,
		InputPath:     *inputFlag,
		OutputPath:    *outputFlag,
		Columns:       nodeid.ParseList(*columnsFlag),
		PlanOnly:      *planFlag,
		LogFormat:     logFormat,
		LogLevel:      logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
