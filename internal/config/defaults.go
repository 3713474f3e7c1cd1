package config

import "time"

const (
	defaultLLMURL          = "https://api.anthropic.com"
	defaultLLMModel        = "claude-3-sonnet-20240229"
	defaultLLMMaxTokens    = 800
	defaultLLMTemperature  = 0.7
	defaultLLMTimeout      = 30 * time.Second
	defaultCosmicTimeout   = 5 * time.Second
	defaultRequestTimeout  = 30 * time.Second
	defaultRefreshInterval = time.Minute
	defaultSessionID       = "default"
	defaultLocalPath       = "brain-state.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Local: Local{Path: defaultLocalPath},
		},
		Server: Server{
			RequestTimeout: defaultRequestTimeout,
		},
		LLM: LLM{
			URL:         defaultLLMURL,
			Model:       defaultLLMModel,
			MaxTokens:   defaultLLMMaxTokens,
			Temperature: defaultLLMTemperature,
			Timeout:     defaultLLMTimeout,
		},
		Cosmic: Cosmic{
			Timeout: defaultCosmicTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultRequestTimeout,
			SessionID:      defaultSessionID,
		},
		Workers: Workers{
			RefreshInterval: defaultRefreshInterval,
		},
	}
}
