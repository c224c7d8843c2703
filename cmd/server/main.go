package main

import (
	"log"
	"log/slog"

	"github.com/adveng/tata-car-advisor/internal/advisor"
	"github.com/adveng/tata-car-advisor/internal/config"
	"github.com/adveng/tata-car-advisor/internal/guardrail"
	"github.com/adveng/tata-car-advisor/internal/llm"
	"github.com/adveng/tata-car-advisor/internal/server"
	"github.com/adveng/tata-car-advisor/internal/tools"
	"github.com/adveng/tata-car-advisor/internal/weather"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var providers []llm.Provider
	var providerNames []string
	for _, pc := range []config.ProviderConfig{cfg.Primary, cfg.Fallback} {
		if pc.APIKey == "" {
			slog.Warn("provider disabled, no API key", "provider", pc.Name)
			continue
		}
		client, err := llm.NewClient(pc)
		if err != nil {
			log.Fatalf("failed to create %s client: %v", pc.Name, err)
		}
		providers = append(providers, client)
		providerNames = append(providerNames, pc.Name)
	}

	weatherClient := weather.NewClient(cfg.Weather.Endpoint, cfg.Weather.Timeout)
	registry := tools.NewRegistry(weatherClient)
	guard := guardrail.New(cfg.Guardrail.BlockedBrands)

	adv := advisor.New(guard, registry, providers...)

	srv := server.New(cfg.Server, adv, providerNames)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port, "providers", providerNames)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
