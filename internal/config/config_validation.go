// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the merged [StructuredConfig] can start at least one
// binary. Settings needed only by the server are checked by
// [StructuredConfig.ValidateServer], client ones by
// [StructuredConfig.ValidateClient].
func (cfg *StructuredConfig) validate() error {
	if cfg.LLM.MaxTokens < 0 || cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 1 {
		return ErrInvalidLLMConfigs
	}
	return nil
}

// ValidateServer reports whether the server part of the config is usable.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.Local.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.LLM.URL == "" || cfg.LLM.Model == "" {
		return ErrInvalidLLMConfigs
	}

	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// ValidateClient reports whether the client part of the config is usable.
func (cfg *StructuredConfig) ValidateClient() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
