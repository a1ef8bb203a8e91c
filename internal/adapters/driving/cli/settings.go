package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/citelens-labs/citelens-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the target site, answer engine, LLM provider,
fetcher rate limits and score cache.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value by key. Run 'citelens settings keys' for
the list of recognised keys.

When the value is omitted for a secret key it is prompted for without
echo.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List recognised configuration keys",
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings := settingsService.All()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Target]")
	if settings.TargetSite != "" {
		cmd.Printf("  Site: %s\n", settings.TargetSite)
	} else {
		cmd.Printf("  Site: (not set)\n")
	}
	cmd.Println()

	cmd.Println("[Answer Engine]")
	if settings.Engine.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", settings.Engine.BaseURL)
	} else {
		cmd.Printf("  Base URL: (default)\n")
	}
	cmd.Printf("  Timeout: %ds\n", settings.Engine.TimeoutSeconds)
	cmd.Println()

	cmd.Println("[LLM]")
	if settings.LLM.IsConfigured() {
		cmd.Printf("  Base URL: %s\n", settings.LLM.BaseURL)
		cmd.Printf("  Model: %s\n", settings.LLM.Model)
		if settings.LLM.APIKey != "" {
			cmd.Printf("  API Key: %s\n", maskAPIKey(settings.LLM.APIKey))
		}
		cmd.Printf("  Status: configured\n")
	} else {
		cmd.Printf("  Status: not configured (summarisation and query suggestion disabled)\n")
	}
	cmd.Println()

	cmd.Println("[Fetcher]")
	cmd.Printf("  Rate: %.1f req/s, burst %d\n",
		settings.Fetcher.RequestsPerSecond, settings.Fetcher.Burst)
	cmd.Println()

	cmd.Println("[Cache]")
	if settings.CacheEnabled {
		cmd.Printf("  Enabled: yes\n")
	} else {
		cmd.Printf("  Enabled: no\n")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key := args[0]
	var value string
	if len(args) == 2 {
		value = args[1]
	} else if isSecretKey(key) {
		cmd.Printf("Enter value for %s: ", key)
		value = readPassword()
		cmd.Println()
	} else {
		return fmt.Errorf("no value given for %s", key)
	}

	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	if isSecretKey(key) {
		cmd.Printf("%s = %s\n", key, maskAPIKey(value))
	} else {
		cmd.Printf("%s = %s\n", key, value)
	}
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func isSecretKey(key string) bool {
	return key == domain.KeyLLMAPIKey
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
