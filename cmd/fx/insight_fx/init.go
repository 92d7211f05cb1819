package insight_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"optiqa/internal/repositories"
	"optiqa/internal/services"
	"optiqa/pkg/memcache"
	"optiqa/pkg/utils"
)

var Module = fx.Provide(
	provideInsightClient, provideInsightService,
)

// provideInsightClient reads the provider config from the environment. A
// missing API key is not fatal: the service falls back to rule-based
// insights when the client is nil.
func provideInsightClient() utils.InsightClientInterface {
	provider := os.Getenv("INSIGHT_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	model := os.Getenv("GEMINI_MODEL")
	if provider == "openai" {
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
	}

	client, err := utils.NewInsightClient(provider, apiKey, model)
	if err != nil {
		log.Printf("Insight client disabled: %v", err)
		return nil
	}
	if client == nil {
		log.Printf("No %s API key configured, using rule-based insights only", provider)
		return nil
	}
	return client
}

func provideInsightService(
	repo repositories.SessionRepositoryInterface,
	runtimes *memcache.SessionRuntimes,
	client utils.InsightClientInterface,
) services.InsightServiceInterface {
	return services.NewInsightService(repo, runtimes, client)
}
