package logging

// Config defines the logging section of config.toml.
type Config struct {
	// Level is the minimum level to output ("debug", "info", "warn", "error").
	// TIERMAKER_LOG_LEVEL overrides it.
	Level string `toml:"level"`

	// File is the log file path. Empty disables the file sink.
	File string `toml:"file"`

	// Format is "text" (default) or "json".
	Format string `toml:"format"`
}
