package config

import (
	"fmt"
	"slices"
)

// maxWorkers caps the batch pool size.
const maxWorkers = 256

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks enums and ranges. Load calls it automatically.
func (c *Config) Validate() error {
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if c.Log.Format != LogFormatJSON && c.Log.Format != LogFormatConsole {
		return fmt.Errorf("log.format must be %q or %q (got %q)", LogFormatJSON, LogFormatConsole, c.Log.Format)
	}
	if c.Render.Mode != RenderFraction && c.Render.Mode != RenderDigits {
		return fmt.Errorf("render.mode must be %q or %q (got %q)", RenderFraction, RenderDigits, c.Render.Mode)
	}
	if err := c.Batch.validate(); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	return nil
}

func (b *BatchConfig) validate() error {
	if b.Workers < 1 || b.Workers > maxWorkers {
		return fmt.Errorf("workers must be in [1, %d] (got %d)", maxWorkers, b.Workers)
	}
	switch b.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("format must be text, json or yaml (got %q)", b.Format)
	}
	switch b.Direction {
	case DirectionParse, DirectionRender:
	default:
		return fmt.Errorf("direction must be parse or render (got %q)", b.Direction)
	}
	return nil
}
