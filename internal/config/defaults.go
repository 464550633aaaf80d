package config

const (
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
	defaultWorkers   = 1
	maxWorkers       = 64
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir(),
		},
		Workflow: Workflow{
			Workers: defaultWorkers,
		},
		Ledger: Ledger{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
