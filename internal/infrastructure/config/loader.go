package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "LOL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"./.env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment. A
// missing config file is not an error; the defaults apply.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}
	return load(getEnvironment(), ConfigPaths)
}

func load(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v, env)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper, env string) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8787)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 0)       // seconds; 0 keeps SSE streams open
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("logging.subsystem", "app")
	v.SetDefault("logging.minSeverity", "error")
	v.SetDefault("logging.severities", "")
	v.SetDefault("logging.sinkTimeout", 1000) // milliseconds
	v.SetDefault("logging.format.includeTags", true)
	v.SetDefault("logging.format.includeMetadata", true)
	v.SetDefault("logging.format.metadataStyle", "compact")
	v.SetDefault("logging.format.includeTimestamp", false)
	v.SetDefault("logging.format.timestampLayout", "2006-01-02 15:04:05.000")
	v.SetDefault("logging.format.includeSourceLocation", env != Production)

	v.SetDefault("console.capacity", 1000)
	v.SetDefault("console.attachTo", []string{"default"})

	if env == Production {
		v.SetDefault("diagnostics.level", "warning")
	} else {
		v.SetDefault("diagnostics.level", "debug")
	}
}

// getEnvironment determines the environment to use based on LOL_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides makes environment variables win over config values
// for keys whose env names do not follow the nested key layout
func processEnvOverrides(v *viper.Viper) {
	if host := os.Getenv("LOL_SERVER_HOST"); host != "" {
		v.Set("server.host", host)
	}
	if port := getEnvInt("LOL_SERVER_PORT", 0); port > 0 {
		v.Set("server.port", port)
	}

	if subsystem := os.Getenv("LOL_SUBSYSTEM"); subsystem != "" {
		v.Set("logging.subsystem", subsystem)
	}
	if minimum := os.Getenv("LOL_MIN_SEVERITY"); minimum != "" {
		v.Set("logging.minSeverity", minimum)
	}
	if severities := os.Getenv("LOL_SEVERITIES"); severities != "" {
		v.Set("logging.severities", severities)
	}
	if timeout := getEnvInt("LOL_SINK_TIMEOUT_MS", -1); timeout >= 0 {
		v.Set("logging.sinkTimeout", timeout)
	}

	if capacity := getEnvInt("LOL_CONSOLE_CAPACITY", 0); capacity > 0 {
		v.Set("console.capacity", capacity)
	}
	if attach := os.Getenv("LOL_CONSOLE_ATTACH_TO"); attach != "" {
		v.Set("console.attachTo", splitList(attach))
	}

	if level := os.Getenv("LOL_DIAGNOSTICS_LEVEL"); level != "" {
		v.Set("diagnostics.level", level)
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

func splitList(list string) []string {
	var out []string
	for _, part := range strings.Split(list, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Logging.SinkTimeout = time.Duration(config.Logging.SinkTimeout) * time.Millisecond
}

func validate(config *Config) error {
	if config.Console.Capacity <= 0 {
		return fmt.Errorf("console.capacity must be positive, got %d", config.Console.Capacity)
	}
	if _, err := config.Logging.Severities(config.Environment); err != nil {
		return err
	}
	if _, err := config.Logging.Policy(); err != nil {
		return err
	}
	if _, err := config.Diagnostics.DiagnosticsLevel(); err != nil {
		return fmt.Errorf("diagnostics.level: %w", err)
	}
	return nil
}
