package llm

import (
	"os"
	"strconv"
	"strings"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskWorkoutPlan TaskType = "workout_plan"
	TaskDietPlan    TaskType = "diet_plan"
	TaskSession     TaskType = "session"
)

// Provider selects the model backend.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

const (
	defaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta"
	defaultGeminiModel    = "gemini-2.5-flash"
	defaultOllamaEndpoint = "http://localhost:11434"
	defaultOllamaModel    = "llama3.2"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled   bool
	LogCalls  bool
	Provider  Provider
	Endpoint  string
	Model     string
	APIKey    string
	TimeoutMs int
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults.
// LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:   false,
		LogCalls:  true,
		Provider:  ProviderGemini,
		Endpoint:  defaultGeminiEndpoint,
		Model:     defaultGeminiModel,
		TimeoutMs: 20000,
		Tasks: map[TaskType]TaskConfig{
			TaskWorkoutPlan: {Temperature: 0.4, MaxTokens: 2048},
			TaskDietPlan:    {Temperature: 0.5, MaxTokens: 2048},
			TaskSession:     {Temperature: 0.4, MaxTokens: 1024},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("FITPLAN_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(strings.ToLower(v))
		if cfg.Provider == ProviderOllama {
			cfg.Endpoint = defaultOllamaEndpoint
			cfg.Model = defaultOllamaModel
		}
	}
	if v := os.Getenv("FITPLAN_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FITPLAN_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("FITPLAN_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("FITPLAN_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("FITPLAN_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}

	applyTaskTimeoutEnv(&cfg, TaskWorkoutPlan, "FITPLAN_LLM_WORKOUT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskDietPlan, "FITPLAN_LLM_DIET_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskSession, "FITPLAN_LLM_SESSION_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
