package llm

import "time"

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskQuestGenerate TaskType = "quest_generate"
)

// LLMConfig holds all configuration for the LLM subsystem. Fields are read
// from the environment by the config package.
type LLMConfig struct {
	Enabled     bool          `env:"GESTA_LLM_ENABLED" envDefault:"false"`
	LogCalls    bool          `env:"GESTA_LLM_LOG_CALLS" envDefault:"false"`
	Endpoint    string        `env:"GESTA_LLM_ENDPOINT" envDefault:"http://localhost:11434"`
	Model       string        `env:"GESTA_LLM_MODEL" envDefault:"llama3.2"`
	Timeout     time.Duration `env:"GESTA_LLM_TIMEOUT" envDefault:"20s"`
	MaxRetries  int           `env:"GESTA_LLM_MAX_RETRIES" envDefault:"1"`
	Temperature float64       `env:"GESTA_LLM_TEMPERATURE" envDefault:"0.7"`
	MaxTokens   int           `env:"GESTA_LLM_MAX_TOKENS" envDefault:"512"`
}

// DefaultConfig returns an LLMConfig with the same values as the env
// defaults. LLM is disabled by default.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:     false,
		LogCalls:    false,
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		Timeout:     20 * time.Second,
		MaxRetries:  1,
		Temperature: 0.7,
		MaxTokens:   512,
	}
}

// Sanitize replaces out-of-range values with defaults.
func (c LLMConfig) Sanitize() LLMConfig {
	def := DefaultConfig()
	if c.Endpoint == "" {
		c.Endpoint = def.Endpoint
	}
	if c.Model == "" {
		c.Model = def.Model
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		c.Temperature = def.Temperature
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = def.MaxTokens
	}
	return c
}
