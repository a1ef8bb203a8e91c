package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetAuditFlags() {
	auditQuery = ""
	auditNoCache = false
	auditJSON = false
}

func TestAuditCmd_Use(t *testing.T) {
	assert.Equal(t, "audit [target-site]", auditCmd.Use)
}

func TestAuditCmd_HasQueryFlag(t *testing.T) {
	flag := auditCmd.Flags().Lookup("query")
	require.NotNil(t, flag)
	assert.Equal(t, "q", flag.Shorthand)
}

func TestAuditCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetAuditFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"audit", "--query", "уход за розами", "botanichka.ru"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Run:    run-1")
	assert.Contains(t, buf.String(), "Target: botanichka.ru")
	assert.Contains(t, buf.String(), "Query:  уход за розами")
	assert.Contains(t, buf.String(), "Best competitor: flowers.ru")
	assert.Contains(t, buf.String(), "unigram=0.4200")
}

func TestAuditCmd_PassesFlags(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetAuditFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"audit", "--no-cache", "-q", "вопрос", "botanichka.ru"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	mock := auditService.(*mockAudit)
	assert.Equal(t, "botanichka.ru", mock.lastReq.TargetSite)
	assert.Equal(t, "вопрос", mock.lastReq.Query)
	assert.True(t, mock.lastReq.SkipCache)
}

func TestAuditCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetAuditFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"audit", "--json", "-q", "вопрос", "botanichka.ru"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"ID\"")
	assert.Contains(t, buf.String(), "\"total_score\"")
}

func TestAuditCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetAuditFlags()

	auditService = &mockAudit{err: errors.New("engine down")}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"audit", "-q", "вопрос", "botanichka.ru"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "audit failed")
}

func TestAuditCmd_ServiceNotConfigured(t *testing.T) {
	oldService := auditService
	auditService = nil
	defer func() {
		auditService = oldService
	}()
	defer resetAuditFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"audit", "botanichka.ru"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "audit service not configured")
}

func TestAuditCmd_FromCacheNote(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer resetAuditFlags()

	result := testAuditResult()
	result.FromCache = true
	auditService = &mockAudit{result: result}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"audit", "-q", "вопрос", "botanichka.ru"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "served from cache")
}
