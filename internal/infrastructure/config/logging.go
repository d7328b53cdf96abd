package config

// LoggingConfig holds logging configuration for cmd/homeworlds. The pure
// engine package never logs. These settings are loaded, defaulted and
// validated, but no code reads them: the CLI's log lines use the standard
// log package's default flags and output.
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Log format: json, text
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}
