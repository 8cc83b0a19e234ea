// Package config loads the service configuration from a YAML file.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	CSV struct {
		Folder   string `mapstructure:"folder"`
		Filename string `mapstructure:"filename"`
	} `mapstructure:"csv"`

	Server struct {
		Port int `mapstructure:"port"`
	} `mapstructure:"server"`

	Source struct {
		Mode string `mapstructure:"mode"`
	} `mapstructure:"source"`

	S3 struct {
		Endpoint string `mapstructure:"endpoint"`
		Region   string `mapstructure:"region"`
		Bucket   string `mapstructure:"bucket"`
	} `mapstructure:"s3"`
}

// Load reads and unmarshals the configuration file at path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.port", 8000)
	v.SetDefault("source.mode", "local")
	v.SetDefault("s3.region", "us-east-1")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CSV.Filename == "" {
		return nil, fmt.Errorf("config %s: csv.filename is required", path)
	}

	return &cfg, nil
}
