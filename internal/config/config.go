package config

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds application-level settings
type Config struct {
	DatabasePath  string
	ServerPort    int
	PlatformsFile string
	LogDir        string
}

// Options controls where configuration is loaded from
type Options struct {
	ConfigPath string
	ConfigName string
	ConfigType string
	EnvPrefix  string
}

// LoadConfig loads application config from pegasus.yaml with env overrides
// (PEGASUS_DATABASE_PATH, PEGASUS_SERVER_PORT, ...). A missing config file is
// fine; defaults apply.
func LoadConfig() *Config {
	return LoadConfigWithOptions(Options{
		ConfigPath: "./config",
		ConfigName: "pegasus",
		ConfigType: "yaml",
		EnvPrefix:  "PEGASUS",
	})
}

// LoadConfigWithOptions loads configuration with custom options
func LoadConfigWithOptions(opts Options) *Config {
	v := viper.New()
	v.SetConfigType(opts.ConfigType)
	v.SetConfigName(opts.ConfigName)

	// Add multiple search paths for flexibility
	configPaths := []string{opts.ConfigPath}
	if opts.ConfigPath != "./config" {
		configPaths = append(configPaths, "./config")
	}
	configPaths = append(configPaths, "/etc/pegasus", "$HOME/.pegasus")

	for _, path := range configPaths {
		v.AddConfigPath(path)
	}

	if opts.EnvPrefix != "" {
		v.SetEnvPrefix(opts.EnvPrefix)
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	}

	v.SetDefault("database.path", "./pegasus.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("platforms.file", "./config/platforms.yaml")
	v.SetDefault("log.dir", "./logs")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Infof("No config file '%s' found in paths %v, using defaults", opts.ConfigName, configPaths)
		} else {
			log.Warnf("Error reading config file: %v, using defaults", err)
		}
	} else {
		log.Infof("Loaded config file: %s", v.ConfigFileUsed())
	}

	return &Config{
		DatabasePath:  v.GetString("database.path"),
		ServerPort:    v.GetInt("server.port"),
		PlatformsFile: v.GetString("platforms.file"),
		LogDir:        v.GetString("log.dir"),
	}
}

// Validate checks that the loaded configuration is usable
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.ServerPort < 1 || c.ServerPort > 65535 {
		return fmt.Errorf("server port %d out of range", c.ServerPort)
	}
	return nil
}
