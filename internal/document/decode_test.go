package document

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/seqdoc/internal/ctxlog"
	"github.com/vk/seqdoc/internal/model"
)

// nestedTree is the tree described by every testdata/nested.* document.
func nestedTree() *model.Instance {
	return &model.Instance{
		ID:              model.TriggerID,
		Display:         "start",
		Expression:      "total = 0",
		IsGlobalContext: true,
		Contains: []*model.Instance{
			{ID: "body", Display: "Body", Expression: "x = 1", NextID: "tail"},
			{ID: "tail", Display: "Tail"},
		},
	}
}

func TestLoad_AllFormatsProduceTheSameTree(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"nested.json", "nested.yaml", "nested.hcl"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			root, err := Load(context.Background(), filepath.Join("testdata", name), FormatAuto)

			require.NoError(t, err)
			if diff := cmp.Diff(nestedTree(), root); diff != "" {
				t.Errorf("decoded tree mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_AutoIsJSON(t *testing.T) {
	t.Parallel()

	data := []byte(`{"id": "__trigger__", "display": "d", "is_global_context": false}`)

	root, err := Decode(context.Background(), data, FormatAuto)

	require.NoError(t, err)
	require.Equal(t, model.TriggerID, root.ID)
	require.False(t, root.HasContains())
}

func TestDecode_SchemaViolations(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		data string
	}{
		{name: "missing id", data: `{"display": "d", "is_global_context": false}`},
		{name: "empty id", data: `{"id": "", "display": "d", "is_global_context": false}`},
		{name: "missing is_global_context", data: `{"id": "a", "display": "d"}`},
		{name: "wrong type", data: `{"id": "a", "display": 3, "is_global_context": false}`},
		{name: "unknown field", data: `{"id": "a", "display": "d", "is_global_context": false, "nxt": "b"}`},
		{
			name: "invalid child",
			data: `{"id": "a", "display": "d", "is_global_context": false, "contains": [{"id": "b"}]}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(context.Background(), []byte(tc.data), FormatJSON)

			require.ErrorIs(t, err, ErrInvalidDocument)
		})
	}
}

func TestDecode_YAMLSchemaViolation(t *testing.T) {
	t.Parallel()

	_, err := Decode(context.Background(), []byte("id: a\ndisplay: d\n"), FormatYAML)

	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestDecode_MalformedInput(t *testing.T) {
	t.Parallel()

	_, err := Decode(context.Background(), []byte(`{"id": `), FormatJSON)
	require.Error(t, err)

	_, err = Decode(context.Background(), []byte("instance {"), FormatHCL)
	require.Error(t, err)
}

func TestDecode_HCLRequiresSingleRoot(t *testing.T) {
	t.Parallel()

	data := []byte(`
instance "a" {
  display = "A"
}
instance "b" {
  display = "B"
}
`)

	_, err := Decode(context.Background(), data, FormatHCL)

	require.ErrorIs(t, err, ErrInvalidDocument)
}

func TestDecode_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := Decode(context.Background(), []byte("{}"), Format("toml"))

	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_PathErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	unknown := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(unknown, []byte("{}"), 0o644))

	_, err := Load(context.Background(), filepath.Join(dir, "missing.json"), FormatAuto)
	require.ErrorContains(t, err, "document not found")

	_, err = Load(context.Background(), dir, FormatAuto)
	require.ErrorContains(t, err, "is a directory")

	_, err = Load(context.Background(), unknown, FormatAuto)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_ExplicitFormatOverridesExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("id: __trigger__\ndisplay: d\nis_global_context: false\n"), 0o644))

	root, err := Load(context.Background(), path, FormatYAML)

	require.NoError(t, err)
	require.Equal(t, model.TriggerID, root.ID)
}

func TestLoad_SharesDecodePathAcrossFormats(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"nested.json", "nested.hcl"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
			ctx := ctxlog.WithLogger(context.Background(), logger)

			_, err := Load(ctx, filepath.Join("testdata", name), FormatAuto)

			require.NoError(t, err)
			require.Equal(t, 1, strings.Count(logs.String(), "Decoding document."))
			require.Equal(t, 1, strings.Count(logs.String(), "Document decoded."))
		})
	}
}

func TestLoad_HCLDiagnosticsNameTheFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "broken.hcl")
	require.NoError(t, os.WriteFile(path, []byte("instance {"), 0o644))

	_, err := Load(context.Background(), path, FormatAuto)

	require.ErrorContains(t, err, "broken.hcl")
}
