package app

import (
	"context"
	"fmt"

	"github.com/vk/utc/internal/ctxlog"
	"github.com/vk/utc/internal/format"
	"github.com/vk/utc/internal/zulu"
)

// Run performs the single parse-resolve-format-print transform. The
// output template is compiled before the clock is read so a bad
// template fails like any other argument error.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	formatter, err := format.New(a.config.TimeFormat)
	if err != nil {
		return err
	}

	now := a.clock.Now()
	logger.Debug("Host clock read.", "now", now, "zone", now.Format("-07:00"))

	instant := zulu.Resolve(a.config.Time, a.config.Meridian, now)
	logger.Debug("Local time resolved.", "utc", instant)

	if _, err := fmt.Fprintln(a.outW, formatter.Format(instant)); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}
