package constants

const (
	// ConfigName is the base name of the config file (without extension).
	ConfigName = "config"

	// ConfigFormat is the config file format used by viper.
	ConfigFormat = "yaml"

	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. APPOINTEASE_DATABASE_HOST overrides database.host.
	EnvPrefix = "APPOINTEASE"
)
