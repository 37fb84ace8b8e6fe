package llm

import "testing"

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("QUIZDECK_LLM_PROVIDER", "openai")
	t.Setenv("QUIZDECK_OPENAI_API_KEY", "sk-test")
	t.Setenv("QUIZDECK_OPENAI_MODEL", "gpt-4o")
	t.Setenv("QUIZDECK_OPENAI_BASE_URL", "https://gateway.example.com/v1")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-test" || cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("OpenAI config = %+v", cfg.OpenAI)
	}
	if cfg.OpenAI.BaseURL != "https://gateway.example.com/v1" {
		t.Errorf("BaseURL = %q", cfg.OpenAI.BaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfigFromEnvStandardKeyFallback(t *testing.T) {
	t.Setenv("QUIZDECK_ANTHROPIC_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg := ConfigFromEnv()
	if cfg.Anthropic.APIKey != "sk-ant" {
		t.Errorf("APIKey = %q, want fallback to ANTHROPIC_API_KEY", cfg.Anthropic.APIKey)
	}

	t.Setenv("QUIZDECK_ANTHROPIC_API_KEY", "sk-override")
	cfg = ConfigFromEnv()
	if cfg.Anthropic.APIKey != "sk-override" {
		t.Errorf("APIKey = %q, QUIZDECK_ var should win", cfg.Anthropic.APIKey)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "anthropic"
	cfg.Anthropic.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Error("anthropic without a key should fail validation")
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider needs no key: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider should fail validation")
	}
}
