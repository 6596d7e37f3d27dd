package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LLM_MODEL", "")
	cfg := Load()

	assert.Equal(t, "openai", cfg.Ai.LLMProvider)
	assert.Equal(t, "", cfg.Ai.LLMModel, "explicitly empty env value wins over the default")
	assert.Equal(t, "KPI.json", cfg.Resources.KPIFile)
	assert.Equal(t, "empire_manual.md", cfg.Resources.ManualFile)
	assert.False(t, cfg.IsProduction())
}

func TestGetEnvAsDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{name: "duration string", value: "90s", want: 90 * time.Second},
		{name: "bare seconds", value: "45", want: 45 * time.Second},
		{name: "garbage falls back", value: "soon", want: time.Minute},
		{name: "empty falls back", value: "", want: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration("TEST_DURATION", time.Minute))
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("LLM_TIMEOUT", "30")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("GO_ENV", "production")

	cfg := Load()

	assert.Equal(t, "ollama", cfg.Ai.LLMProvider)
	assert.Equal(t, 30*time.Second, cfg.Ai.LLMTimeout)
	assert.True(t, cfg.Otel.Enabled)
	assert.True(t, cfg.IsProduction())
}
