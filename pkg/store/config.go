package store

import (
	"fmt"
	"log"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config tells the store where persisted settings live.
type Config interface {
	BasePath() string
}

// LoadConfig reads the optional .retain config file and RETAIN_* environment.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.retain.db")
	viper.SetConfigName(".retain") // .yaml is implicit
	viper.SetEnvPrefix("RETAIN")
	viper.AutomaticEnv()

	if override := os.Getenv("RETAIN_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// PathConfig is a Config pointing at a fixed directory.
type PathConfig string

// BasePath implements Config.
func (p PathConfig) BasePath() string {
	return string(p)
}
