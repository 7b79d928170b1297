package app

import (
	"context"
	"fmt"

	"github.com/vk/tcgprice/internal/ctxlog"
	"github.com/vk/tcgprice/internal/pipeline"
)

// Run executes the price update and reports the output path on success.
// Errors are returned unchanged so the caller can classify them.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath, "price_floor", a.config.PriceFloor)

	res, err := pipeline.Run(ctx, pipeline.Options{
		InputPath:  a.config.InputPath,
		PriceFloor: a.config.PriceFloor,
	})
	if err != nil {
		a.logger.Info("Run failed.", "error", err)
		return err
	}

	fmt.Fprintf(a.outW, "Output written to %s\n", res.OutputPath)
	a.logger.Debug("App.Run method finished.", "rows", res.Rows, "floored", res.Floored)
	return nil
}
