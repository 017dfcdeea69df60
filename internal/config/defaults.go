// Package config provides configuration loading and defaults for psyscore.
package config

// DefaultConfigDir is the default location for psyscore configuration.
const DefaultConfigDir = "~/.config/psyscore"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "psyscore.db"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultLogLevel is used when neither the config file nor the
// environment sets one.
const DefaultLogLevel = "info"

// EnvPrefix namespaces environment overrides, e.g. PSYSCORE_LOG_LEVEL.
const EnvPrefix = "PSYSCORE"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultReport holds the default report options.
var DefaultReport = Report{
	IncludeUncategorized: true,
}
