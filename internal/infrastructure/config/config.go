package config

import (
	"fmt"
	"time"

	"github.com/Aeastr/LogOutLoud/internal/domain/entity"
)

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Console     ConsoleConfig     `mapstructure:"console"`
	Diagnostics DiagnosticsConfig `mapstructure:"diagnostics"`
}

// ServerConfig contains HTTP server settings for the console viewer
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// LoggingConfig contains the settings every logger of the registry starts with
type LoggingConfig struct {
	Subsystem    string        `mapstructure:"subsystem"`
	MinSeverity  string        `mapstructure:"minSeverity"`
	SeverityList string        `mapstructure:"severities"`  // comma separated; overrides minSeverity
	SinkTimeout  time.Duration `mapstructure:"sinkTimeout"` // milliseconds
	Format       FormatConfig  `mapstructure:"format"`
}

// FormatConfig mirrors entity.FormatPolicy
type FormatConfig struct {
	IncludeTags           bool     `mapstructure:"includeTags"`
	IncludeMetadata       bool     `mapstructure:"includeMetadata"`
	MetadataStyle         string   `mapstructure:"metadataStyle"`
	IncludeTimestamp      bool     `mapstructure:"includeTimestamp"`
	TimestampLayout       string   `mapstructure:"timestampLayout"`
	IncludeSourceLocation bool     `mapstructure:"includeSourceLocation"`
	VisibleKeys           []string `mapstructure:"visibleKeys"`
	HiddenKeys            []string `mapstructure:"hiddenKeys"`
}

// ConsoleConfig contains console store settings
type ConsoleConfig struct {
	Capacity int      `mapstructure:"capacity"`
	AttachTo []string `mapstructure:"attachTo"` // logger keys feeding the store
}

// DiagnosticsConfig contains settings of the facade's own fault channel
type DiagnosticsConfig struct {
	Level string `mapstructure:"level"`
}

// IsProduction reports whether the production environment is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// Severities returns the initial allow-list for new loggers. An explicit
// list wins; otherwise production allows minSeverity and above and every
// other environment allows everything.
func (l LoggingConfig) Severities(env string) ([]entity.Severity, error) {
	if l.SeverityList != "" {
		return entity.ParseSeverities(l.SeverityList)
	}
	if env != Production {
		return entity.AllSeverities(), nil
	}
	minimum, err := entity.ParseSeverity(l.MinSeverity)
	if err != nil {
		return nil, fmt.Errorf("logging.minSeverity: %w", err)
	}
	return entity.SeveritiesAtOrAbove(minimum), nil
}

// Policy converts the format section into a formatting policy
func (l LoggingConfig) Policy() (entity.FormatPolicy, error) {
	f := l.Format
	style, err := entity.ParseMetadataStyle(f.MetadataStyle)
	if err != nil {
		return entity.FormatPolicy{}, fmt.Errorf("logging.format.metadataStyle: %w", err)
	}

	visibility := entity.AllKeys()
	switch {
	case len(f.VisibleKeys) > 0 && len(f.HiddenKeys) > 0:
		return entity.FormatPolicy{}, fmt.Errorf("logging.format: visibleKeys and hiddenKeys are mutually exclusive")
	case len(f.VisibleKeys) > 0:
		visibility = entity.IncludeKeys(f.VisibleKeys...)
	case len(f.HiddenKeys) > 0:
		visibility = entity.ExcludeKeys(f.HiddenKeys...)
	}

	layout := f.TimestampLayout
	if layout == "" {
		layout = entity.DefaultTimestampLayout
	}

	return entity.FormatPolicy{
		IncludeTags:           f.IncludeTags,
		IncludeMetadata:       f.IncludeMetadata,
		MetadataStyle:         style,
		Visibility:            visibility,
		IncludeTimestamp:      f.IncludeTimestamp,
		TimestampLayout:       layout,
		IncludeSourceLocation: f.IncludeSourceLocation,
	}, nil
}

// DiagnosticsLevel parses the diagnostics level
func (d DiagnosticsConfig) DiagnosticsLevel() (entity.Severity, error) {
	return entity.ParseSeverity(d.Level)
}
