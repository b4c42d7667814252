package config

import (
	"fmt"
	"os"

	"github.com/K0NGR3SS/riskmap/internal/heatmap"
	"github.com/K0NGR3SS/riskmap/internal/logging"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Output   string         `yaml:"output"`
	Title    string         `yaml:"title"`
	WidthIn  float64        `yaml:"width_in"`
	HeightIn float64        `yaml:"height_in"`
	DPI      int            `yaml:"dpi"`
	Log      logging.Config `yaml:"log"`
	Register RegisterConfig `yaml:"register"`
	AWS      AWSConfig      `yaml:"aws"`
	Publish  PublishConfig  `yaml:"publish"`
	Slack    SlackConfig    `yaml:"slack"`
}

type RegisterConfig struct {
	File         string `yaml:"file"`
	SSMParameter string `yaml:"ssm_parameter"`
}

type AWSConfig struct {
	Region string `yaml:"region"`
}

type PublishConfig struct {
	S3Bucket string `yaml:"s3_bucket"`
	S3Key    string `yaml:"s3_key"`
}

type SlackConfig struct {
	WebhookURL string `yaml:"webhook_url"`
	Channel    string `yaml:"channel"`
}

// Default reproduces the fixed heatmap: built-in register, 12x10in at
// 100 DPI, written to updated_risk_heatmap.png.
func Default() *Config {
	return &Config{
		Output:   heatmap.DefaultOutput,
		Title:    heatmap.DefaultTitle,
		WidthIn:  12,
		HeightIn: 10,
		DPI:      100,
		Log:      logging.Config{Level: "info"},
	}
}

// LoadConfig reads path over the defaults. Keys missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := heatmap.FormatFor(c.Output); err != nil {
		return fmt.Errorf("invalid output: %w", err)
	}
	if c.WidthIn <= 0 || c.HeightIn <= 0 {
		return fmt.Errorf("invalid figure size: %gx%g in", c.WidthIn, c.HeightIn)
	}
	if c.DPI <= 0 {
		return fmt.Errorf("invalid dpi: %d", c.DPI)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Register.File != "" && c.Register.SSMParameter != "" {
		return fmt.Errorf("register.file and register.ssm_parameter are mutually exclusive")
	}
	if c.Publish.S3Key != "" && c.Publish.S3Bucket == "" {
		return fmt.Errorf("publish.s3_key set without publish.s3_bucket")
	}

	return nil
}

// RenderOptions converts the figure settings to renderer options.
func (c *Config) RenderOptions() heatmap.Options {
	opts := heatmap.DefaultOptions()
	if c.Title != "" {
		opts.Title = c.Title
	}
	opts.Width = vg.Length(c.WidthIn) * vg.Inch
	opts.Height = vg.Length(c.HeightIn) * vg.Inch
	opts.DPI = c.DPI
	return opts
}

// NeedsAWS reports whether any configured feature talks to AWS.
func (c *Config) NeedsAWS() bool {
	return c.Register.SSMParameter != "" || c.Publish.S3Bucket != ""
}
