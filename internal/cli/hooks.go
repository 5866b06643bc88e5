package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks forwards benchmark and cache events to the CLI logger at debug
// level. It is registered by SetLogLevel in verbose mode.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnRunStart(_ context.Context, generator string, n int) {
	h.logger.Debug("run start", "generator", generator, "n", n)
}

func (h *logHooks) OnRunComplete(_ context.Context, generator string, n int, count uint64, duration time.Duration, err error) {
	if err != nil {
		h.logger.Debug("run failed", "generator", generator, "n", n, "error", err)
		return
	}
	h.logger.Debug("run complete", "generator", generator, "n", n, "count", count, "duration", duration.Round(time.Microsecond))
}

func (h *logHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *logHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *logHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}
