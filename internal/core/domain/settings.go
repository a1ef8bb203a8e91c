package domain

// Configuration keys recognised by the settings service. Values live in
// the TOML config store; unknown keys are rejected on Set.
const (
	KeyTargetSite        = "target.site"
	KeyEngineBaseURL     = "engine.base_url"
	KeyEngineTimeoutSecs = "engine.timeout_seconds"
	KeyLLMBaseURL        = "llm.base_url"
	KeyLLMModel          = "llm.model"
	KeyLLMAPIKey         = "llm.api_key"
	KeyFetcherRPS        = "fetcher.requests_per_second"
	KeyFetcherBurst      = "fetcher.burst"
	KeyCacheEnabled      = "cache.enabled"
)

// EngineSettings holds answer-engine connection configuration.
type EngineSettings struct {
	// BaseURL is the answer-engine API endpoint.
	BaseURL string

	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int
}

// LLMSettings holds LLM provider configuration for summarisation and
// query suggestion.
type LLMSettings struct {
	// BaseURL is the API endpoint.
	BaseURL string

	// Model is the model name.
	Model string

	// APIKey is the API key, when the endpoint requires one.
	APIKey string
}

// IsConfigured returns true if the LLM endpoint is set up.
func (l LLMSettings) IsConfigured() bool {
	return l.BaseURL != "" && l.Model != ""
}

// FetcherSettings holds page-fetcher rate limiting configuration.
type FetcherSettings struct {
	// RequestsPerSecond is the sustained fetch rate.
	RequestsPerSecond float64

	// Burst is the maximum burst size.
	Burst int
}

// AppSettings holds all application settings.
type AppSettings struct {
	// TargetSite is the default site audits score against.
	TargetSite string

	// Engine holds answer-engine settings.
	Engine EngineSettings

	// LLM holds LLM provider settings.
	LLM LLMSettings

	// Fetcher holds page-fetcher settings.
	Fetcher FetcherSettings

	// CacheEnabled controls whether audit runs consult the score cache.
	CacheEnabled bool
}

// DefaultAppSettings returns settings with sensible defaults.
// The LLM is left unconfigured; audits degrade gracefully without it.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Engine: EngineSettings{
			TimeoutSeconds: 60,
		},
		Fetcher: FetcherSettings{
			RequestsPerSecond: 2.0,
			Burst:             5,
		},
		CacheEnabled: true,
	}
}

// KnownSettingKeys lists every key the settings service accepts.
func KnownSettingKeys() []string {
	return []string{
		KeyTargetSite,
		KeyEngineBaseURL,
		KeyEngineTimeoutSecs,
		KeyLLMBaseURL,
		KeyLLMModel,
		KeyLLMAPIKey,
		KeyFetcherRPS,
		KeyFetcherBurst,
		KeyCacheEnabled,
	}
}
