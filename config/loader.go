package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration.
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml. A missing file leaves the defaults in place.
func LoadAppConfig() error {
	paths := []string{"config.yml", "/etc/viastatus/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	var cfg AppConfig
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return err
		}
		v := validator.New()
		if err := v.Struct(cfg); err != nil {
			return err
		}
	}
	Config = applyDefaults(cfg)
	return nil
}

func applyDefaults(cfg AppConfig) AppConfig {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16182
	}
	if cfg.Server.CacheTTLSec == 0 {
		cfg.Server.CacheTTLSec = 60
	}
	if cfg.Server.CacheCapacity == 0 {
		cfg.Server.CacheCapacity = 256
	}
	if cfg.Reservia.TimeoutMS == 0 {
		cfg.Reservia.TimeoutMS = 10000
	}
	if cfg.Reservia.MaxRetries == 0 {
		cfg.Reservia.MaxRetries = 3
	}
	if cfg.Barcode.JavaBin == "" {
		cfg.Barcode.JavaBin = "java"
	}
	return cfg
}
