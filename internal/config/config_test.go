package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "riskmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "updated_risk_heatmap.png", cfg.Output)
	assert.False(t, cfg.NeedsAWS())

	opts := cfg.RenderOptions()
	assert.Equal(t, 12*vg.Inch, opts.Width)
	assert.Equal(t, 10*vg.Inch, opts.Height)
	assert.Equal(t, 100, opts.DPI)
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
output: out/heatmap.svg
log:
  level: debug
register:
  ssm_parameter: /riskmap/register
aws:
  region: eu-west-1
publish:
  s3_bucket: reports
slack:
  webhook_url: https://hooks.slack.com/services/T/B/X
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "out/heatmap.svg", cfg.Output)
	assert.Equal(t, 100, cfg.DPI)
	assert.Equal(t, 12.0, cfg.WidthIn)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/riskmap/register", cfg.Register.SSMParameter)
	assert.Equal(t, "eu-west-1", cfg.AWS.Region)
	assert.True(t, cfg.NeedsAWS())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	_, err = LoadConfig(writeConfig(t, "dpi: [not a number"))
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"format", func(c *Config) { c.Output = "heatmap.gif" }, "invalid output"},
		{"size", func(c *Config) { c.WidthIn = 0 }, "invalid figure size"},
		{"dpi", func(c *Config) { c.DPI = -1 }, "invalid dpi"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "invalid log level"},
		{"register sources", func(c *Config) {
			c.Register.File = "risks.yaml"
			c.Register.SSMParameter = "/risks"
		}, "mutually exclusive"},
		{"publish key", func(c *Config) { c.Publish.S3Key = "a.png" }, "without publish.s3_bucket"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
