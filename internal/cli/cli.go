package cli

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"
	"strings"

	"github.com/vk/utc/internal/app"
	"github.com/vk/utc/internal/zulu"
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

// Parse processes command-line arguments. It returns a populated
// app.Config, a boolean indicating if the program should exit cleanly
// (help or version was requested), or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("utc", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
utc - Convert a local clock time to Coordinated Universal Time.

Usage:
  utc [options] [TIME] [AM|PM]

Arguments:
  TIME
    Wall-clock time as H:MM or HH:MM. Defaults to the current local time.
  AM|PM
    Meridian marker. When omitted it is taken from the current local hour.

Options:
`)
		flagSet.PrintDefaults()
	}

	timeFormatFlag := flagSet.String("time-format", "", "strftime template applied to the UTC result. Defaults to '%R'.")
	tFlag := flagSet.String("t", "", "strftime template applied to the UTC result (shorthand).")
	configFlag := flagSet.String("config", "", "Path to the defaults file. Defaults to the 'utc/utc.hcl' file under the user config directory.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	versionFlag := flagSet.Bool("version", false, "Print the version and exit.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if *versionFlag {
		fmt.Fprintln(output, version())
		return nil, true, nil
	}

	if flagSet.NArg() > 2 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument: %s", flagSet.Arg(2))}
	}

	timeFormat := *timeFormatFlag
	if timeFormat == "" {
		timeFormat = *tFlag
	}

	cfg := app.Config{
		TimeFormat: timeFormat,
		ConfigPath: *configFlag,
		LogFormat:  strings.ToLower(*logFormatFlag),
		LogLevel:   strings.ToLower(*logLevelFlag),
	}

	if flagSet.NArg() > 0 {
		t, err := zulu.ParseClockTime(flagSet.Arg(0))
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg.Time = &t
	}
	if flagSet.NArg() > 1 {
		m, err := zulu.ParseMeridian(flagSet.Arg(1))
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg.Meridian = &m
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}

// version reports the module version stamped into the binary, falling
// back to the usual placeholder for non-released builds.
func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return "utc " + info.Main.Version
	}
	return "utc (devel)"
}
