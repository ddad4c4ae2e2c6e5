package config

const (
	defaultInputDir   = "./input"
	defaultOutputDir  = "./output"
	defaultInputFile  = "input.xlsx"
	defaultPrefix     = "split"
	defaultMaxRows    = 1000
	defaultLogFormat  = "auto"
	defaultLogLevel   = "info"
	defaultConfigPath = "~/.config/sheetsplit/config.toml"
	projectConfigName = "sheetsplit.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			InputDir:  defaultInputDir,
			OutputDir: defaultOutputDir,
			InputFile: defaultInputFile,
		},
		Split: Split{
			Prefix:  defaultPrefix,
			MaxRows: defaultMaxRows,
		},
		Backup: Backup{
			Extensions: []string{".xlsx"},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
