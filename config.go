package client

import (
	"time"

	configloader "github.com/GabrielNunesIT/go-libs/config-loader"
)

// EnvPrefix is the prefix of environment variables read by [LoadConfig],
// e.g. LOGSHIP_RETRYATTEMPTS.
const EnvPrefix = "LOGSHIP_"

// Config is the file and environment representation of the client settings.
type Config struct {
	BaseURL       string        `koanf:"baseurl" yaml:"base_url" json:"base_url"`
	APIKey        string        `koanf:"apikey" yaml:"api_key" json:"api_key"`
	Timeout       time.Duration `koanf:"timeout" yaml:"timeout" json:"timeout"`
	RetryAttempts int           `koanf:"retryattempts" yaml:"retry_attempts" json:"retry_attempts"`
	RetryDelay    time.Duration `koanf:"retrydelay" yaml:"retry_delay" json:"retry_delay"`
	Debug         bool          `koanf:"debug" yaml:"debug" json:"debug"`
	AppName       string        `koanf:"appname" yaml:"app_name" json:"app_name"`
	AppUUID       string        `koanf:"appuuid" yaml:"app_uuid" json:"app_uuid"`
}

// DefaultConfig returns the settings a [Client] uses when no option is given.
func DefaultConfig() Config {
	return Config{
		BaseURL:       DefaultBaseURL,
		Timeout:       5 * time.Second,
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}
}

// LoadConfig reads settings with layered overrides.
// Order: defaults -> config file (if path is not empty) -> environment variables.
func LoadConfig(path string) (Config, error) {
	opts := []configloader.Option[Config]{
		configloader.WithDefaults[Config](DefaultConfig()),
	}

	if path != "" {
		opts = append(opts, configloader.WithFile[Config](path))
	}

	opts = append(opts, configloader.WithEnv[Config](EnvPrefix))

	loader := configloader.NewConfigLoader[Config](opts...)
	return loader.Load()
}

// WithConfig applies every setting of cfg. Invalid values are ignored like
// their individual options and a zero RetryDelay keeps the current delay.
// The API key is passed to [New] or [NewFromConfig].
func WithConfig(cfg Config) Option {
	return func(o *Options) {
		opts := []Option{
			WithBaseURL(cfg.BaseURL),
			WithTimeout(cfg.Timeout),
			WithRetryAttempts(cfg.RetryAttempts),
			WithDebug(cfg.Debug),
			WithAppName(cfg.AppName),
			WithAppUUID(cfg.AppUUID),
		}
		if cfg.RetryDelay != 0 {
			opts = append(opts, WithRetryDelay(cfg.RetryDelay))
		}

		for _, opt := range opts {
			opt(o)
		}
	}
}

// NewFromConfig creates a client from cfg. opts are applied after cfg.
func NewFromConfig(cfg Config, opts ...Option) *Client {
	return New(cfg.APIKey, append([]Option{WithConfig(cfg)}, opts...)...)
}
