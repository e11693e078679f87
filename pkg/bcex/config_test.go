package bcex_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/simon-bc/bcex/pkg/bcex"
	"gotest.tools/assert"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bcex.yaml")
	assert.NilError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
environment: staging
symbols:
  - BTC-USD
  - ETH-USD
channels:
  - heartbeat
  - l2
  - trading
cancel_on_exit: true
api_secret: file-secret
prices:
  granularity: 300
`)

	config, err := bcex.LoadConfig(path)
	assert.NilError(t, err)
	assert.Equal(t, config.APISecret, "file-secret")

	opts, err := config.Options()
	assert.NilError(t, err)
	assert.Equal(t, opts.Env, bcex.EnvironmentStaging)
	assert.DeepEqual(t, opts.Symbols, []string{"BTC-USD", "ETH-USD"})
	assert.Equal(t, len(opts.Channels), 3)
	assert.Equal(t, opts.Channels[2], bcex.ChannelTrading)
	assert.Check(t, opts.CancelOnExit)
	assert.Equal(t, opts.ChannelParams[bcex.ChannelPrices]["granularity"], 300)
}

func TestLoadConfig_SecretFromEnvironment(t *testing.T) {
	t.Setenv(bcex.APISecretEnvVar, "env-secret")

	path := writeConfigFile(t, `
environment: production
symbols:
  - BTC-USD
api_secret: file-secret
`)

	config, err := bcex.LoadConfig(path)
	assert.NilError(t, err)
	assert.Equal(t, config.APISecret, "env-secret", "environment wins over the file")
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := bcex.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "fail read config file")

	path := writeConfigFile(t, `
environment: testnet
symbols:
  - BTC-USD
`)
	_, err = bcex.LoadConfig(path)
	assert.ErrorContains(t, err, "unsupported environment")

	path = writeConfigFile(t, `
environment: production
symbols: []
`)
	_, err = bcex.LoadConfig(path)
	assert.Error(t, err, "at least one symbol is required")

	path = writeConfigFile(t, `
environment: production
symbols:
  - BTC-USD
channels:
  - orderbook
`)
	_, err = bcex.LoadConfig(path)
	assert.ErrorContains(t, err, "unsupported channel")
}
