package pipeline

import (
	"context"

	"github.com/vk/tcgprice/internal/ctxlog"
	"github.com/vk/tcgprice/internal/fsutil"
	"github.com/vk/tcgprice/internal/model"
)

// OutputSuffix is inserted before the extension of the input path to name
// the output file.
const OutputSuffix = "_updated"

// RequiredColumns must be present in the header before any row is read.
// The low price column is checked per row instead.
var RequiredColumns = []string{model.ColMarketPrice, model.ColMarketplacePrice}

// Options configures a single run.
type Options struct {
	InputPath  string
	PriceFloor float64
}

// Result summarises a successful run.
type Result struct {
	OutputPath string
	Rows       int
	Floored    int
}

// OutputPath returns the path the updated sheet for input is written to.
func OutputPath(input string) string {
	return fsutil.WithSuffix(input, OutputSuffix)
}

// Run reads the sheet at opts.InputPath, applies the price floor to every
// row and writes the updated sheet next to the input. Any failure aborts the
// run before the output file is created.
func Run(ctx context.Context, opts Options) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	output := OutputPath(opts.InputPath)
	logger.Debug("Pipeline started.", "input", opts.InputPath, "output", output, "price_floor", opts.PriceFloor)

	s, err := readSheet(ctx, opts.InputPath, opts.PriceFloor)
	if err != nil {
		logger.Debug("Read phase failed, no output written.", "error", err)
		return nil, err
	}
	logger.Debug("All rows transformed.", "rows", len(s.records), "floored", s.floored)

	if err := writeSheet(output, s); err != nil {
		return nil, newError(Unexpected, output, err)
	}
	logger.Info("Price sheet updated.", "output", output, "rows", len(s.records), "floored", s.floored)

	return &Result{
		OutputPath: output,
		Rows:       len(s.records),
		Floored:    s.floored,
	}, nil
}
