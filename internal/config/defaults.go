package config

const (
	defaultLogDir           = "~/.local/share/mediaclean/logs"
	defaultDataDir          = "~/.local/share/mediaclean"
	defaultProvider         = "tmdb"
	defaultLanguage         = "es-ES"
	defaultMode             = "copy"
	defaultOutputFolderName = "_MediaClean_Output"
	defaultToolTimeout      = 600
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:  defaultLogDir,
			DataDir: defaultDataDir,
		},
		Metadata: Metadata{
			Provider: defaultProvider,
			Language: defaultLanguage,
		},
		Organize: Organize{
			Mode:             defaultMode,
			OutputFolderName: defaultOutputFolderName,
		},
		Extraction: Extraction{
			ToolTimeout: defaultToolTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
