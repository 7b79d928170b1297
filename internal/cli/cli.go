package cli

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/tcgprice/internal/app"
	"github.com/vk/tcgprice/internal/config"
	"github.com/vk/tcgprice/internal/pricing"
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

// UsageExitCode is returned for malformed or missing command-line input.
const UsageExitCode = 2

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Help goes to output; usage shown alongside an error goes to errOutput.
// loader reads the optional --config profile.
func Parse(args []string, output, errOutput io.Writer, loader config.Loader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("tcgprice", flag.ContinueOnError)
	// Usage is buffered until Parse reports whether help was requested.
	var parseOutput bytes.Buffer
	flagSet.SetOutput(&parseOutput)

	flagSet.Usage = func() {
		fmt.Fprint(flagSet.Output(), `
tcgprice - Update TCG Marketplace Price from TCG Low Price in a CSV file.

Usage:
  tcgprice --file PATH --price-floor DECIMAL [options]

The updated sheet is written next to the input as <name>_updated<ext>.

Options:
`)
		flagSet.PrintDefaults()
	}

	var (
		file     string
		floor    float64
		floorSet bool
	)
	setFile := func(v string) error {
		file = v
		return nil
	}
	setFloor := func(v string) error {
		f, err := pricing.ParsePrice(v)
		if err != nil {
			return fmt.Errorf("invalid float value: %q", v)
		}
		floor, floorSet = f, true
		return nil
	}

	flagSet.Func("file", "Input CSV file path (required).", setFile)
	flagSet.Func("f", "Input CSV file path (shorthand).", setFile)
	flagSet.Func("price-floor", "Price floor, the minimum marketplace price (required).", setFloor)
	flagSet.Func("pf", "Price floor (shorthand).", setFloor)
	configFlag := flagSet.String("config", "", "Path to an HCL profile supplying defaults for these options.")
	cFlag := flagSet.String("c", "", "Path to an HCL profile (shorthand).")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. (default \"text\")")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. (default \"warn\")")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			_, _ = parseOutput.WriteTo(output)
			return nil, true, nil
		}
		_, _ = parseOutput.WriteTo(errOutput)
		return nil, false, &ExitError{Code: UsageExitCode, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: UsageExitCode, Message: fmt.Sprintf("unrecognized arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	profilePath := *configFlag
	if profilePath == "" {
		profilePath = *cFlag
	}

	var profile config.Profile
	if profilePath != "" {
		p, err := loader.Load(context.Background(), profilePath)
		if err != nil {
			return nil, false, &ExitError{Code: UsageExitCode, Message: err.Error()}
		}
		profile = *p
		slog.Debug("Profile applied.", "path", profilePath)
	}

	if file == "" {
		file = profile.File
	}
	if !floorSet && profile.PriceFloor != nil {
		floor, floorSet = *profile.PriceFloor, true
	}

	var missing []string
	if file == "" {
		missing = append(missing, "--file/-f")
	}
	if !floorSet {
		missing = append(missing, "--price-floor/-pf")
	}
	if len(missing) > 0 {
		flagSet.SetOutput(errOutput)
		flagSet.Usage()
		return nil, false, &ExitError{
			Code:    UsageExitCode,
			Message: "the following arguments are required: " + strings.Join(missing, ", "),
		}
	}

	logFormat := strings.ToLower(firstNonEmpty(*logFormatFlag, profile.LogFormat))
	logLevel := strings.ToLower(firstNonEmpty(*logLevelFlag, profile.LogLevel))

	cfg, err := app.NewConfig(app.Config{
		InputPath:  file,
		PriceFloor: floor,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: UsageExitCode, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
