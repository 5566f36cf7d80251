package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/dockapps/go-media-dock/logger"
)

const (
	AppName    = "media-dock"
	AppVersion = "0.2.1"
)

type Config struct {
	MPRIS    *MPRISConfig
	LogLevel logger.Level
}

type MPRISConfig struct {
	// Timeout bounds every D-Bus round trip (property reads, probes, commands).
	Timeout time.Duration
	// PollInterval is the fixed period of the status poller.
	PollInterval time.Duration
	// NameOverrides maps a bus-name suffix (e.g. "vlc") to a display name,
	// taking precedence over Identity/DesktopEntry resolution.
	NameOverrides map[string]string
}

func New() (*Config, error) {
	viper.SetDefault("mpris.timeout", "5s")
	viper.SetDefault("mpris.poll_interval", "1s")
	viper.SetDefault("loglevel", "WARN")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join("/etc", AppName))
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", AppName))
	}

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, continue with defaults if not found
		if _, isNotFound := err.(viper.ConfigFileNotFoundError); !isNotFound {
			logger.Warn("failed to read config: %v", err)
		}
	}

	cfg := Config{
		MPRIS:    mprisConfig(),
		LogLevel: logger.ParseLevel(viper.GetString("loglevel")),
	}

	return &cfg, nil
}

// mprisConfig builds the MPRIS section from the current viper state.
func mprisConfig() *MPRISConfig {
	timeout := viper.GetDuration("mpris.timeout")
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	poll := viper.GetDuration("mpris.poll_interval")
	if poll <= 0 {
		poll = time.Second
	}

	return &MPRISConfig{
		Timeout:       timeout,
		PollInterval:  poll,
		NameOverrides: viper.GetStringMapString("players.names"),
	}
}

// Watch re-applies the log level when the config file changes on disk and
// invokes onReload (may be nil) with the re-read MPRIS section.
func Watch(onReload func(*MPRISConfig)) {
	viper.OnConfigChange(func(e fsnotify.Event) {
		logger.Info("[%s] config changed: %s", AppName, e.Name)
		logger.SetLevel(logger.ParseLevel(viper.GetString("loglevel")))
		if onReload != nil {
			onReload(mprisConfig())
		}
	})
	viper.WatchConfig()
}
