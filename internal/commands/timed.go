package commands

import (
	"log/slog"
	"time"
)

type timedCommand struct {
	inner Command
}

// Timed decorates a command so each execution is measured and logged. It
// sits entirely in the collaborator layer; the wrapped command's result is
// passed through unchanged.
func Timed(inner Command) Command {
	return &timedCommand{inner: inner}
}

func (c *timedCommand) Name() string {
	return c.inner.Name()
}

func (c *timedCommand) Execute() error {
	start := time.Now()
	err := c.inner.Execute()
	elapsed := time.Since(start)

	if err != nil {
		slog.Warn("command failed",
			"command", c.inner.Name(),
			"duration_ms", elapsed.Milliseconds(),
			"error", err)
	} else {
		slog.Info("command executed",
			"command", c.inner.Name(),
			"duration_ms", elapsed.Milliseconds())
	}

	return err
}
