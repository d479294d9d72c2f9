package testhelper

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/Control-D-Inc/hostname"
)

// SampleConfig returns the config parsed from SampleConfigContent.
func SampleConfig(t *testing.T) *hostname.Config {
	return ParseConfig(t, SampleConfigContent)
}

// ParseConfig parses the TOML content the same way hostcheck does.
func ParseConfig(t *testing.T, content string) *hostname.Config {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	hostname.InitConfig(v, "test_load_config")
	require.NoError(t, v.ReadConfig(strings.NewReader(content)))
	var cfg hostname.Config
	require.NoError(t, v.Unmarshal(&cfg))
	return &cfg
}

// SampleConfigContent is a valid config with two groups.
var SampleConfigContent = `
[service]
log_level = "info"
log_path = "/path/to/log.log"

[group.0]
name = "Home Lab"
hostnames = ["nas.home.arpa", "printer", "50-name"]

[group.1]
name = "Servers"
hostnames = ["example.com", "123.456", "VaLiD-HoStNaMe"]
`

// InvalidConfigContent is a config with hostnames that fail validation.
var InvalidConfigContent = `
[group.0]
name = "Broken"
hostnames = ["-invalid-name", "fine.example", "invalid.name."]
`
