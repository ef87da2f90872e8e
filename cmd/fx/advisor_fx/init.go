package advisor_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"wander/internal/services"
	"wander/pkg/memcache"
	"wander/pkg/utils"
)

var Module = fx.Provide(
	ProvideAdvisorClient,
	ProvideConsultationCache,
	ProvideAdvisorService)

// AdvisorConfig holds configuration for advisor chat clients
type AdvisorConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideAdvisorClient creates an advisor chat client based on environment variables
func ProvideAdvisorClient() (utils.AdvisorClientInterface, error) {
	config := getAdvisorConfig()

	log.Printf("Initializing %s advisor client with model: %s", config.Provider, config.Model)

	client, err := utils.NewAdvisorClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create advisor client: %w", err)
	}
	return client, nil
}

func ProvideConsultationCache() *memcache.ConsultationCache {
	return memcache.NewConsultationCache()
}

func ProvideAdvisorService(client utils.AdvisorClientInterface, cache *memcache.ConsultationCache) services.AdvisorServiceInterface {
	return services.NewAdvisorService(client, cache)
}

// getAdvisorConfig reads configuration from environment variables
func getAdvisorConfig() AdvisorConfig {
	provider := getEnvWithDefault("ADVISOR_PROVIDER", "gemini") // Default to free Gemini

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return AdvisorConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
