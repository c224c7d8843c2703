package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Primary   ProviderConfig
	Fallback  ProviderConfig
	Guardrail GuardrailConfig
	Weather   WeatherConfig
}

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	RequestTimeout time.Duration
	StaticDir      string
}

// ProviderConfig describes one OpenAI-compatible completion endpoint.
// A provider with an empty APIKey is treated as disabled.
type ProviderConfig struct {
	Name        string
	APIKey      string
	Endpoint    string
	Model       string
	MaxTokens   int64
	Temperature float64
	Timeout     time.Duration
}

type GuardrailConfig struct {
	// BlockedBrands is a comma-separated list of competitor brand names.
	BlockedBrands []string
}

type WeatherConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// Competitor brands refused by default. Extend via GUARDRAIL_BLOCKED_BRANDS.
const defaultBlockedBrands = "maruti,suzuki,hyundai,kia,mahindra,toyota,honda,skoda,volkswagen,renault,nissan,mg,citroen"

func LoadConfig() (*Config, error) {
	// .env is optional, real deployments use plain environment variables
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "90s")
	v.SetDefault("server.request_timeout", "90s")
	v.SetDefault("server.static_dir", "web/static")

	v.SetDefault("gemini.endpoint", "https://generativelanguage.googleapis.com/v1beta/openai/")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("groq.endpoint", "https://api.groq.com/openai/v1")
	v.SetDefault("groq.model", "llama-3.3-70b-versatile")

	v.SetDefault("provider.max_tokens", int64(4096))
	v.SetDefault("provider.temperature", 0.1)
	v.SetDefault("provider.timeout", "60s")

	v.SetDefault("guardrail.blocked_brands", defaultBlockedBrands)

	v.SetDefault("weather.endpoint", "https://wttr.in")
	v.SetDefault("weather.timeout", "6s")

	cfg := &Config{
		Server: ServerConfig{
			Host:           v.GetString("server.host"),
			Port:           v.GetString("server.port"),
			ReadTimeout:    v.GetDuration("server.read_timeout"),
			WriteTimeout:   v.GetDuration("server.write_timeout"),
			RequestTimeout: v.GetDuration("server.request_timeout"),
			StaticDir:      v.GetString("server.static_dir"),
		},
		Primary: ProviderConfig{
			Name:        "gemini",
			APIKey:      v.GetString("gemini.api_key"),
			Endpoint:    v.GetString("gemini.endpoint"),
			Model:       v.GetString("gemini.model"),
			MaxTokens:   v.GetInt64("provider.max_tokens"),
			Temperature: v.GetFloat64("provider.temperature"),
			Timeout:     v.GetDuration("provider.timeout"),
		},
		Fallback: ProviderConfig{
			Name:        "groq",
			APIKey:      v.GetString("groq.api_key"),
			Endpoint:    v.GetString("groq.endpoint"),
			Model:       v.GetString("groq.model"),
			MaxTokens:   v.GetInt64("provider.max_tokens"),
			Temperature: v.GetFloat64("provider.temperature"),
			Timeout:     v.GetDuration("provider.timeout"),
		},
		Guardrail: GuardrailConfig{
			BlockedBrands: splitBrands(v.GetString("guardrail.blocked_brands")),
		},
		Weather: WeatherConfig{
			Endpoint: v.GetString("weather.endpoint"),
			Timeout:  v.GetDuration("weather.timeout"),
		},
	}

	if cfg.Primary.APIKey == "" && cfg.Fallback.APIKey == "" {
		return nil, fmt.Errorf("no provider configured: set GEMINI_API_KEY or GROQ_API_KEY")
	}

	slog.Info("configuration loaded",
		"primary", cfg.Primary.APIKey != "",
		"fallback", cfg.Fallback.APIKey != "",
		"blockedBrands", len(cfg.Guardrail.BlockedBrands),
	)
	return cfg, nil
}

func splitBrands(s string) []string {
	var brands []string
	for _, b := range strings.Split(s, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brands = append(brands, b)
		}
	}
	return brands
}
