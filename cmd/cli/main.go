package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/tcgprice/internal/app"
	"github.com/vk/tcgprice/internal/cli"
	"github.com/vk/tcgprice/internal/hcl"
)

// main is the entrypoint for the tcgprice application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	os.Exit(report(run(os.Stdout, os.Stderr, os.Args[1:]), os.Stdout, os.Stderr))
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, logW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW, logW, hcl.NewLoader())
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	return app.NewApp(outW, logW, appConfig).Run(context.Background())
}

// report prints the diagnostic for err and returns the process exit code.
// Usage errors go to errW with their own code; run failures are printed to
// outW as a single "Error: ..." line and exit with 1.
func report(err error, outW, errW io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(errW, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintf(outW, "Error: %v\n", err)
	return 1
}
