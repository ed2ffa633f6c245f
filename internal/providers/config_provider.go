package providers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pbaille/blueprint/internal/structures"
	"github.com/spf13/viper"
)

const AppName = "blueprint"

// DefaultDBPath is where the sqlite database lives when nothing else is configured
func DefaultDBPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".blueprint", "blueprint.db")
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	v.SetDefault("webServer.addr", ":8080")
	v.SetDefault("store.driver", "sqlite3")
	v.SetDefault("store.dsn", DefaultDBPath())
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 8)
	v.SetDefault("cache.ttl", 300)
	v.SetDefault("metrics.enabled", true)

	v.BindEnv("webServer.addr", "BLUEPRINT_ADDR")
	v.BindEnv("store.driver", "BLUEPRINT_DB_DRIVER")
	v.BindEnv("store.dsn", "BLUEPRINT_DB_DSN")
	v.BindEnv("logger.level", "BLUEPRINT_LOG_LEVEL")
	v.BindEnv("cache.enabled", "BLUEPRINT_CACHE_ENABLED")
	v.BindEnv("metrics.enabled", "BLUEPRINT_METRICS_ENABLED")

	if flags.ConfigPath != "" {
		filename := filepath.Base(flags.ConfigPath)
		v.AddConfigPath(filepath.Dir(flags.ConfigPath))
		v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	if flags.DBPath != "" {
		conf.Store.Driver = "sqlite3"
		conf.Store.DSN = flags.DBPath
	}
	if flags.Addr != "" {
		conf.WebServer.Addr = flags.Addr
	}
	if flags.DebugMode {
		conf.Logger.Level = "debug"
	}

	cnfValidator := NewCnfValidator(&conf)
	if err := cnfValidator.Validate(); err != nil {
		return nil, err
	}

	conf.AppName = AppName
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
