package document

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/vk/seqdoc/internal/ctxlog"
	"github.com/vk/seqdoc/internal/model"
	"gopkg.in/yaml.v3"
)

// Decode parses data in the given format into an instance tree. FormatAuto
// is treated as JSON.
func Decode(ctx context.Context, data []byte, format Format) (*model.Instance, error) {
	return decode(ctx, data, format, "document.hcl")
}

// decode is Decode with the filename reported in HCL diagnostics.
func decode(ctx context.Context, data []byte, format Format, filename string) (*model.Instance, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Decoding document.", "format", format, "bytes", len(data))

	var (
		root *model.Instance
		err  error
	)
	switch format {
	case FormatJSON, FormatAuto:
		root, err = decodeJSON(data)
	case FormatYAML:
		root, err = decodeYAML(data)
	case FormatHCL:
		root, err = decodeHCL(data, filename)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Document decoded.", "root", root.ID, "instance_count", root.Count())
	return root, nil
}

func decodeJSON(data []byte) (*model.Instance, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON document: %w", err)
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	var root model.Instance
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode JSON document: %w", err)
	}
	return &root, nil
}

func decodeYAML(data []byte) (*model.Instance, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML document: %w", err)
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	var root model.Instance
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to decode YAML document: %w", err)
	}
	return &root, nil
}
