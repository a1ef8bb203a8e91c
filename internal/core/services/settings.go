package services

import (
	"fmt"
	"strconv"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driven"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages validated application configuration on top
// of a ConfigStore.
type SettingsService struct {
	config driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(config driven.ConfigStore) *SettingsService {
	return &SettingsService{config: config}
}

// Keys lists every recognised settings key.
func (s *SettingsService) Keys() []string {
	return domain.KnownSettingKeys()
}

// Get returns the stored value for key as a string, or empty string.
func (s *SettingsService) Get(key string) string {
	val, ok := s.config.Get(key)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%v", val)
}

// Set validates and stores a value. Unknown keys and unparseable
// values are rejected.
func (s *SettingsService) Set(key, value string) error {
	if !isKnownKey(key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	typed, err := coerceValue(key, value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}
	return s.config.Set(key, typed)
}

// All returns the current settings with defaults applied for unset keys.
func (s *SettingsService) All() domain.AppSettings {
	settings := domain.DefaultAppSettings()

	if v := s.config.GetString(domain.KeyTargetSite); v != "" {
		settings.TargetSite = v
	}
	if v := s.config.GetString(domain.KeyEngineBaseURL); v != "" {
		settings.Engine.BaseURL = v
	}
	if v := s.config.GetInt(domain.KeyEngineTimeoutSecs); v > 0 {
		settings.Engine.TimeoutSeconds = v
	}
	if v := s.config.GetString(domain.KeyLLMBaseURL); v != "" {
		settings.LLM.BaseURL = v
	}
	if v := s.config.GetString(domain.KeyLLMModel); v != "" {
		settings.LLM.Model = v
	}
	if v := s.config.GetString(domain.KeyLLMAPIKey); v != "" {
		settings.LLM.APIKey = v
	}
	if v := s.config.GetFloat(domain.KeyFetcherRPS); v > 0 {
		settings.Fetcher.RequestsPerSecond = v
	}
	if v := s.config.GetInt(domain.KeyFetcherBurst); v > 0 {
		settings.Fetcher.Burst = v
	}
	if _, ok := s.config.Get(domain.KeyCacheEnabled); ok {
		settings.CacheEnabled = s.config.GetBool(domain.KeyCacheEnabled)
	}

	return settings
}

func isKnownKey(key string) bool {
	for _, k := range domain.KnownSettingKeys() {
		if k == key {
			return true
		}
	}
	return false
}

// coerceValue converts the string value to the type the key expects.
func coerceValue(key, value string) (any, error) {
	switch key {
	case domain.KeyEngineTimeoutSecs, domain.KeyFetcherBurst:
		return strconv.Atoi(value)
	case domain.KeyFetcherRPS:
		return strconv.ParseFloat(value, 64)
	case domain.KeyCacheEnabled:
		return strconv.ParseBool(value)
	default:
		return value, nil
	}
}
