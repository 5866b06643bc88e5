package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := &logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnRunStart(ctx, "heap", 9)
	h.OnRunComplete(ctx, "heap", 9, 362880, 3*time.Millisecond, nil)
	h.OnRunComplete(ctx, "engine", 9, 0, 0, errors.New("boom"))
	h.OnCacheHit(ctx, "bench")
	h.OnCacheMiss(ctx, "bench")
	h.OnCacheSet(ctx, "bench", 128)

	out := buf.String()
	for _, want := range []string{"run start", "run complete", "count=362880", "run failed", "boom", "cache hit", "cache miss", "bytes=128"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooks_SilentAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := &logHooks{logger: newLogger(&buf, log.InfoLevel)}
	h.OnCacheHit(context.Background(), "bench")
	if buf.Len() != 0 {
		t.Errorf("hooks should log at debug level only, got %q", buf.String())
	}
}
