package integrationtests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/seqdoc/internal/testutil"
)

// TestScoping_LocalVariablesStayLocal verifies that a local instance cannot
// see another instance's variables unless they are shared explicitly.
func TestScoping_LocalVariablesStayLocal(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	doc := `
instance "__trigger__" {
  display = "Start"

  instance "writer" {
    display    = "Writer"
    expression = "secret = 42"
    next_id    = "reader"
  }

  instance "reader" {
    display    = "Reader"
    expression = "seen = secret"
  }
}
`

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": doc}, "main.hcl")

	// --- Assert ---
	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), `id "reader"`)
	require.Contains(t, result.Err.Error(), `display "Reader"`)
	require.Contains(t, result.Err.Error(), "line 1")
}

// TestScoping_SharingBuiltins exercises every sharing built-in in one run.
func TestScoping_SharingBuiltins(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	doc := `
instance "__trigger__" {
  display           = "Start"
  is_global_context = true
  expression        = "base = 10"

  instance "producer" {
    display    = "Producer"
    expression = <<-EOT
      value     = base + 1
      label     = "p"
      snapshot  = copy_this_context("producer_copy")
      published = globalize_variable_from_this_context("value")
    EOT
    next_id    = "consumer"
  }

  instance "consumer" {
    display           = "Consumer"
    expression        = <<-EOT
      copied  = copy_variable_from_context("producer_copy", "label")
      total   = value + base
    EOT
  }
}
`

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"main.hcl": doc}, "main.hcl", testutil.WithPrintGlobals())

	// --- Assert ---
	require.NoError(t, result.Err)
	require.JSONEq(t, `{"base": 10, "value": 11}`, result.Output)
	require.Contains(t, result.LogOutput, "Run completed.")
}
