package config

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port          int `yaml:"port" validate:"gte=0"`
	CacheTTLSec   int `yaml:"cacheTTLSec" validate:"gte=0"`
	CacheCapacity int `yaml:"cacheCapacity" validate:"gte=0"`
}

// ReserviaConfig contains upstream train status endpoint configuration.
type ReserviaConfig struct {
	BaseURL    string `yaml:"baseURL" validate:"omitempty,url"`
	TimeoutMS  int    `yaml:"timeoutMS" validate:"gte=0"`
	MaxRetries int    `yaml:"maxRetries" validate:"gte=0"`
}

// BarcodeConfig locates the external ZXing decoder.
type BarcodeConfig struct {
	JavaBin string   `yaml:"javaBin"`
	Jars    []string `yaml:"jars"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Reservia ReserviaConfig `yaml:"reservia"`
	Barcode  BarcodeConfig  `yaml:"barcode"`
}
