package constant

const (
	DefaultModel = "gpt-4"

	SystemPromptAnalyze = "You are a real estate underwriting assistant."
	SystemPromptScript  = "You generate real estate negotiation scripts in a 5x5 format."
	SystemPromptLOI     = "You write formal real estate Letters of Intent."
)
