// Package testutil holds the harness shared by the integration tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/seqdoc/internal/app"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// Option adjusts the app configuration used by the harness.
type Option func(*app.Config)

// WithPrintGlobals makes the run print the global namespace.
func WithPrintGlobals() Option {
	return func(cfg *app.Config) { cfg.PrintGlobals = true }
}

// WithMaxSteps sets the step limit of the run.
func WithMaxSteps(n int) Option {
	return func(cfg *app.Config) { cfg.MaxSteps = n }
}

// RunIntegrationTest writes files into a temporary directory and runs the
// application on the file named document, using a background context.
func RunIntegrationTest(t *testing.T, files map[string]string, document string, opts ...Option) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, document, opts...)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller supplied
// context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, document string, opts ...Option) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	cfg := app.Config{
		DocumentPath: filepath.Join(tmpDir, document),
		LogLevel:     "debug",
		LogFormat:    "text",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	validated, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out, logs := &app.SafeBuffer{}, &app.SafeBuffer{}
	runErr := app.NewApp(out, logs, validated).Run(ctx)

	if os.Getenv("SEQDOC_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
	}
}
