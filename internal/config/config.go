package config

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	DEFAULT_LOG_FILE  = "debug.log"
	DEFAULT_LOG_LEVEL = log.DebugLevel
)

type Config struct {
	// Debug enables logging. The terminal belongs to the TUI, so logs only go to LogFile.
	Debug    bool
	LogFile  string
	LogLevel log.Level
}

func envKey(name string) string {
	return strings.ToUpper(AppID) + "_" + name
}

// Load reads DEBUG, JSB_LOG_FILE and JSB_LOG_LEVEL. Unknown levels fall back to debug.
func Load() Config {
	return load(os.Getenv)
}

func load(getenv func(string) string) Config {
	cfg := Config{
		Debug:    len(getenv("DEBUG")) > 0,
		LogFile:  DEFAULT_LOG_FILE,
		LogLevel: DEFAULT_LOG_LEVEL,
	}

	if f := getenv(envKey("LOG_FILE")); f != "" {
		cfg.LogFile = f
	}
	if l := getenv(envKey("LOG_LEVEL")); l != "" {
		if level, err := log.ParseLevel(l); err == nil {
			cfg.LogLevel = level
		}
	}

	return cfg
}
