package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Assets    AssetsConfig
	Generate  GenerateConfig
	Export    ExportConfig
	Printer   PrinterConfig
	Prefs     PrefsConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// AssetsConfig drives the offline shell cache. Version names the cache to
// install at startup; Manifest lists the shell asset paths. Assets come
// from Dir when set, otherwise from the Origin server.
type AssetsConfig struct {
	Version  string
	Manifest []string
	Dir      string
	Origin   string
}

type GenerateConfig struct {
	Delay time.Duration
}

type ExportConfig struct {
	Scale float64
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
}

type PrefsConfig struct {
	Path string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "receiptforge-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("ASSETS_VERSION", "receipt-generator-v1")
	viper.SetDefault("ASSETS_MANIFEST", []string{"/", "/index.html", "/manifest.json"})
	viper.SetDefault("ASSETS_DIR", "./web/dist")
	viper.SetDefault("ASSETS_ORIGIN", "")
	viper.SetDefault("GENERATE_DELAY_MS", 2000)
	viper.SetDefault("EXPORT_SCALE", 2.0)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PREFS_PATH", "./storage/preferences.json")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Assets: AssetsConfig{
			Version:  viper.GetString("ASSETS_VERSION"),
			Manifest: viper.GetStringSlice("ASSETS_MANIFEST"),
			Dir:      viper.GetString("ASSETS_DIR"),
			Origin:   viper.GetString("ASSETS_ORIGIN"),
		},
		Generate: GenerateConfig{
			Delay: time.Duration(viper.GetInt("GENERATE_DELAY_MS")) * time.Millisecond,
		},
		Export: ExportConfig{
			Scale: viper.GetFloat64("EXPORT_SCALE"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
		Prefs: PrefsConfig{
			Path: viper.GetString("PREFS_PATH"),
		},
	}
}
