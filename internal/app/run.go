package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/argdump/internal/ctxlog"
	"github.com/specialistvlad/argdump/internal/model"
	"github.com/specialistvlad/argdump/internal/printer"
)

// Run prints the parsed arguments to the App's output writer.
func (a *App) Run(ctx context.Context, args *model.Arguments) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "arguments", args.String())

	if args == nil {
		return fmt.Errorf("no parsed arguments to print")
	}

	if err := printer.Fprint(ctx, a.outW, args); err != nil {
		return fmt.Errorf("failed to print arguments: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
