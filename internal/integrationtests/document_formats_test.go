package integrationtests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/seqdoc/internal/testutil"
)

// TestDocumentFormats_SameResult runs one document written in every
// supported format and expects identical globals.
func TestDocumentFormats_SameResult(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"doc.json": `{
  "id": "__trigger__",
  "display": "Start",
  "is_global_context": true,
  "expression": "items = [\"a\", \"b\"]\ncount = length(items)",
  "contains": []
}`,
		"doc.yaml": `
id: __trigger__
display: Start
is_global_context: true
expression: |
  items = ["a", "b"]
  count = length(items)
`,
		"doc.hcl": `
instance "__trigger__" {
  display           = "Start"
  is_global_context = true
  expression        = <<-EOT
    items = ["a", "b"]
    count = length(items)
  EOT
}
`,
	}

	for _, name := range []string{"doc.json", "doc.yaml", "doc.hcl"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			result := testutil.RunIntegrationTest(t, files, name, testutil.WithPrintGlobals())

			require.NoError(t, result.Err)
			require.JSONEq(t, `{"count": 2, "items": ["a", "b"]}`, result.Output)
		})
	}
}

// TestDocumentFormats_SchemaViolation verifies that malformed documents are
// rejected before anything runs.
func TestDocumentFormats_SchemaViolation(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"doc.json": `{"id": "__trigger__", "display": "Start", "expression": "x = 1"}`,
	}

	result := testutil.RunIntegrationTest(t, files, "doc.json", testutil.WithPrintGlobals())

	require.ErrorContains(t, result.Err, "invalid document")
	require.Empty(t, result.Output)
	require.NotContains(t, result.LogOutput, "Run started.")
}
