package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/utc/internal/app"
	"github.com/vk/utc/internal/cli"
	"github.com/vk/utc/internal/clock"
	"github.com/vk/utc/internal/hcl"
)

// main is the entrypoint for the utc command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and
// error handling. The result line goes to outW; logs go to logW.
func run(outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader and the system clock to pass
	// to the app.
	loader := hcl.NewLoader()
	utcApp, err := app.NewApp(outW, logW, appConfig, loader, clock.System{})
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	return utcApp.Run(context.Background())
}
