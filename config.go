package ajax

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config configures an ajax client.
type Config struct {
	// BaseURL is prepended literally to every request path.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is carried on every request descriptor. Zero means unset;
	// the transport's own default applies.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are the initial default headers applied to all requests.
	// Replaceable at runtime via Client.SetHeaders.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Headers == nil {
		c.Headers = make(map[string]string)
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("ajax: timeout must not be negative")
	}
	return nil
}

// Load reads a Config from a YAML file, with AJAX_-prefixed environment
// variables taking precedence over file values. A .env file in the working
// directory is loaded first when present.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("AJAX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("ajax: read config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("ajax: parse config %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
