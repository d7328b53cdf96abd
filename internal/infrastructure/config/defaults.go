package config

// SetDefaults sets default values for any configuration field left unset.
func SetDefaults(cfg *Config) {
	if cfg.Runner.ScenarioDir == "" {
		cfg.Runner.ScenarioDir = "."
	}
	if cfg.Runner.OutputFormat == "" {
		cfg.Runner.OutputFormat = "text"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
}
