package bcex

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the yaml session configuration. The api secret may be left out of
// the file and provided through BCEX_API_SECRET instead.
type Config struct {
	Environment  string   `yaml:"environment"`
	Symbols      []string `yaml:"symbols"`
	Channels     []string `yaml:"channels"`
	CancelOnExit bool     `yaml:"cancel_on_exit"`
	APISecret    string   `yaml:"api_secret"`
	Prices       struct {
		Granularity int `yaml:"granularity"`
	} `yaml:"prices"`
}

// LoadConfig reads and validates a yaml config file. The environment variable
// overrides the configured api secret when set.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessage(err, "fail read config file")
	}
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.WithMessage(err, "fail parse config file")
	}
	if secret := os.Getenv(APISecretEnvVar); secret != "" {
		config.APISecret = secret
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the config before it is turned into client options.
func (c *Config) Validate() error {
	if _, err := EnvironmentStrToType(c.Environment); err != nil {
		return err
	}
	if len(c.Symbols) == 0 {
		return errors.New("at least one symbol is required")
	}
	for _, name := range c.Channels {
		if _, err := ChannelStrToType(name); err != nil {
			return err
		}
	}
	return nil
}

// Options converts the config into client options.
func (c *Config) Options() (Options, error) {
	env, err := EnvironmentStrToType(c.Environment)
	if err != nil {
		return Options{}, err
	}
	var channels []Channel
	for _, name := range c.Channels {
		ch, err := ChannelStrToType(name)
		if err != nil {
			return Options{}, err
		}
		channels = append(channels, ch)
	}
	var params map[Channel]map[string]interface{}
	if c.Prices.Granularity > 0 {
		params = map[Channel]map[string]interface{}{
			ChannelPrices: {"granularity": c.Prices.Granularity},
		}
	}
	return Options{
		Symbols:       c.Symbols,
		Channels:      channels,
		ChannelParams: params,
		Env:           env,
		APISecret:     c.APISecret,
		CancelOnExit:  c.CancelOnExit,
	}, nil
}
