package prompts

import (
	"log"
	"math/rand"

	"journal/internal/config"
	"journal/internal/llm"
)

// FromConfig picks the prompt source named by PROMPT_SOURCE. A model
// provider that cannot be set up falls back to the built-in prompts.
func FromConfig(cfg *config.Config, rnd *rand.Rand) Source {
	gen := NewGenerator(rnd)
	switch cfg.PromptSource {
	case config.PromptSourceStatic, "":
		return gen
	case config.PromptSourceOpenAI, config.PromptSourceYandex:
		client, err := llm.NewFactory(cfg).CreateClient(string(cfg.PromptSource))
		if err != nil {
			log.Printf("⚠️ %s prompt source unavailable, using built-in prompts: %v", cfg.PromptSource, err)
			return gen
		}
		log.Printf("💡 Using %s for journal prompts", cfg.PromptSource)
		return NewLLMSource(client, gen)
	default:
		log.Printf("⚠️ unknown PROMPT_SOURCE %q, using built-in prompts", cfg.PromptSource)
		return gen
	}
}
