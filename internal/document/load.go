package document

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/seqdoc/internal/ctxlog"
	"github.com/vk/seqdoc/internal/model"
)

// Load reads the document at path. With FormatAuto the format is inferred
// from the file extension.
func Load(ctx context.Context, path string, format Format) (*model.Instance, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading document.", "path", path, "format", format)

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("document not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("document path is a directory: %s", path)
	}

	if format == FormatAuto || format == "" {
		format, err = FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Document format inferred from extension.", "format", format)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	root, err := decode(ctx, data, format, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load document %s: %w", path, err)
	}
	return root, nil
}
