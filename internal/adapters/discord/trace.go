package discord

import (
	"log/slog"
	"time"
)

func step(log *slog.Logger, label string) func() {
	start := time.Now()
	return func() { log.Debug("[trace]", "step", label, "took", time.Since(start)) }
}
