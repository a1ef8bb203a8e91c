// Command citelens analyses how visible a site is in answer-engine
// responses.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/citelens-labs/citelens-cli/internal/adapters/driven/answer/neuro"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driven/config/file"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driven/fetcher/web"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driven/llm/ollama"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driven/storage/memory"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driven/storage/sqlite"
	"github.com/citelens-labs/citelens-cli/internal/adapters/driving/cli"
	"github.com/citelens-labs/citelens-cli/internal/core/domain"
	"github.com/citelens-labs/citelens-cli/internal/core/ports/driven"
	"github.com/citelens-labs/citelens-cli/internal/core/services"
	"github.com/citelens-labs/citelens-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}

	settingsService := services.NewSettingsService(configStore)
	settings := settingsService.All()

	scoreStore, err := newScoreStore(settings)
	if err != nil {
		return fmt.Errorf("open score store: %w", err)
	}
	defer scoreStore.Close() //nolint:errcheck

	fetcher := web.New(web.Config{
		RequestsPerSecond: settings.Fetcher.RequestsPerSecond,
		Burst:             settings.Fetcher.Burst,
	})
	defer fetcher.Close() //nolint:errcheck

	engine := neuro.New(neuro.Config{
		BaseURL: settings.Engine.BaseURL,
		Timeout: time.Duration(settings.Engine.TimeoutSeconds) * time.Second,
	})
	defer engine.Close() //nolint:errcheck

	analyzer := services.NewAnalyzerService()
	comparator := services.NewComparatorService(domain.RussianStopwords())

	audit := services.NewAuditService(fetcher, engine, analyzer, comparator)
	audit.SetScoreStore(scoreStore)

	if settings.LLM.IsConfigured() {
		llm := ollama.New(ollama.Config{
			BaseURL: settings.LLM.BaseURL,
			Model:   settings.LLM.Model,
		})
		defer llm.Close() //nolint:errcheck
		audit.SetLLMService(llm)
		logger.Debug("LLM configured: %s", llm.ModelName())
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Analyzer:   analyzer,
		Comparator: comparator,
		Audit:      audit,
		Settings:   settingsService,
		Scores:     scoreStore,
	})

	return cli.Execute()
}

// newScoreStore opens the SQLite-backed cache, or an in-memory store
// when caching is disabled so audits and cache commands keep working.
func newScoreStore(settings domain.AppSettings) (driven.ScoreStore, error) {
	if !settings.CacheEnabled {
		return memory.NewScoreStore(), nil
	}
	return sqlite.NewStore("")
}
