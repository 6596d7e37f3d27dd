package factory

import (
	"fmt"
	"time"

	"housing-empire-ai/pkg/llm"
	"housing-empire-ai/pkg/llm/ollama"
	"housing-empire-ai/pkg/llm/openai"
)

const huggingFaceRouterURL = "https://router.huggingface.co/v1"

// NewLLMProvider builds the chat backend named by providerType. The apiKey is
// the session credential; Ollama ignores it.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string, timeout time.Duration) (llm.LLMProvider, error) {
	switch providerType {
	case "openai", "":
		return openai.NewProvider(apiKey, baseURL, modelName, timeout), nil
	case "huggingface":
		if baseURL == "" {
			baseURL = huggingFaceRouterURL
		}
		return openai.NewProvider(apiKey, baseURL, modelName, timeout), nil
	case "ollama":
		return ollama.NewProvider(baseURL, modelName, timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
