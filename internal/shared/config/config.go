package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/reshetovitsme/telegram-export-notes/internal/shared/errors"
	"github.com/samber/lo"
	"github.com/samber/oops"
)

// EnvPrefix is stripped from environment variables before they are mapped to config keys.
const EnvPrefix = "TG2NOTES_"

type Config struct {
	InputDir       string        `koanf:"input_dir"`
	OutputDir      string        `koanf:"output_dir"`
	ExportFile     string        `koanf:"export_file"`
	NotesDir       string        `koanf:"notes_dir"`
	BurstThreshold time.Duration `koanf:"burst_threshold"`
	TimeZone       string        `koanf:"time_zone"`
	CopyFolders    bool          `koanf:"copy_folders"`
	FeedEnabled    bool          `koanf:"feed_enabled"`
	FeedTitle      string        `koanf:"feed_title"`
	FeedFile       string        `koanf:"feed_file"`
	AppEnv         AppEnv        `koanf:"app_env"`
}

// ExportPath returns the location of the export JSON document.
func (c *Config) ExportPath() string {
	if filepath.IsAbs(c.ExportFile) {
		return c.ExportFile
	}
	return filepath.Join(c.InputDir, c.ExportFile)
}

// Location resolves TimeZone. Export timestamps carry no offset and are read in this location.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || strings.EqualFold(c.TimeZone, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, oops.With("time_zone", c.TimeZone).Wrap(errors.ErrInvalidConfig)
	}
	return loc, nil
}

// Load reads configuration from the given file (or the first config.* file found in the
// working directory), then environment variables, then overrides.
func Load(configFile string, overrides map[string]any) (*Config, error) {
	k := koanf.New(".")

	if configFile == "" {
		candidates := []string{
			"config.yaml",
			"config.yml",
			"config.json",
			"config.toml",
		}
		configFile, _ = lo.Find(candidates, func(file string) bool {
			_, err := os.Stat(file)
			return err == nil
		})
	}

	if configFile != "" {
		var parser koanf.Parser
		ext := filepath.Ext(configFile)

		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		case ".toml":
			parser = toml.Parser()
		default:
			return nil, oops.Errorf("unsupported config file extension: %s", ext)
		}

		if err := k.Load(file.Provider(configFile), parser); err != nil {
			return nil, oops.With("config_file", configFile).Wrap(err)
		}
	}

	// TG2NOTES_OUTPUT_DIR -> output_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, oops.With("context", "loading environment variables").Wrap(err)
	}

	for key, value := range overrides {
		if err := k.Set(key, value); err != nil {
			return nil, oops.With("key", key, "context", "applying override").Wrap(err)
		}
	}

	defaults := map[string]any{
		"input_dir":       "input",
		"output_dir":      "output",
		"export_file":     "result.json",
		"notes_dir":       "notes",
		"burst_threshold": "2m",
		"time_zone":       "Local",
		"copy_folders":    true,
		"feed_enabled":    false,
		"feed_title":      "Telegram notes",
		"feed_file":       "feed.xml",
		"app_env":         "production",
	}
	for key, value := range defaults {
		if !k.Exists(key) {
			if err := k.Set(key, value); err != nil {
				return nil, oops.With("key", key, "context", "setting default").Wrap(err)
			}
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.With("context", "unmarshaling config").Wrap(err)
	}

	if appEnv, err := ParseAppEnv(k.String("app_env")); err == nil {
		cfg.AppEnv = appEnv
	} else {
		cfg.AppEnv = AppEnvProduction
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports the first setting that makes a run impossible.
func (c *Config) Validate() error {
	switch {
	case c.InputDir == "":
		return oops.With("key", "input_dir").Wrap(errors.ErrInvalidConfig)
	case c.OutputDir == "":
		return oops.With("key", "output_dir").Wrap(errors.ErrInvalidConfig)
	case c.ExportFile == "":
		return oops.With("key", "export_file").Wrap(errors.ErrInvalidConfig)
	case c.BurstThreshold <= 0:
		return oops.With("key", "burst_threshold", "value", c.BurstThreshold).Wrap(errors.ErrInvalidConfig)
	}

	_, err := c.Location()
	return err
}

// Verbose reports whether debug logging should be enabled.
func (c *Config) Verbose() bool {
	return c.AppEnv == AppEnvLocal || c.AppEnv == AppEnvDevelopment
}
