// Package config loads numwords settings from YAML and the environment.
package config

// Config is the root configuration.
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
	Batch  BatchConfig  `yaml:"batch"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"NUMWORDS_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"NUMWORDS_LOG_FORMAT" env-default:"json"`
}

// RenderConfig holds number-to-phrase settings.
type RenderConfig struct {
	// Mode is "fraction" (0.1 is "one tenth") or "digits" (0.1 is "zero
	// point one").
	Mode string `yaml:"mode" env:"NUMWORDS_RENDER_MODE" env-default:"fraction"`
}

// BatchConfig holds settings for the batch command.
type BatchConfig struct {
	Workers   int    `yaml:"workers"   env:"NUMWORDS_BATCH_WORKERS"   env-default:"4"`
	Format    string `yaml:"format"    env:"NUMWORDS_BATCH_FORMAT"    env-default:"text"`
	Direction string `yaml:"direction" env:"NUMWORDS_BATCH_DIRECTION" env-default:"parse"`
}

// Output formats for batch results.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Batch directions.
const (
	DirectionParse  = "parse"
	DirectionRender = "render"
)

// Render modes.
const (
	RenderFraction = "fraction"
	RenderDigits   = "digits"
)

// Log formats.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)
