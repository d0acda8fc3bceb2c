package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/alecthomas/kong"

	"github.com/fbdl-go/fbdl/telemetry"
)

// startTelemetry installs a timing collector in ctx when telemetry is
// enabled and opens the command's root timer. The returned report func ends
// the root timer and prints the tree to stderr; it only does so once, so it
// may be both deferred and called on an early exit path.
func startTelemetry(ctx context.Context, kctx *kong.Context, globals *Globals, command, filename string) (context.Context, func()) {
	if !globals.Telemetry {
		return ctx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	ctx = telemetry.WithCollector(ctx, collector)

	rootTimer := collector.Start(fmt.Sprintf("%s %s", command, filepath.Base(filename)))
	ctx = telemetry.WithRootTimer(ctx, rootTimer)

	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			rootTimer.End()
			_, _ = fmt.Fprintln(kctx.Stderr)
			collector.Report(kctx.Stderr, globals.styles(kctx.Stderr))
		})
	}
}
