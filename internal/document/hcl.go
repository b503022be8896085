package document

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/seqdoc/internal/model"
)

// hclDocument is the top level of an HCL document: exactly one root block.
type hclDocument struct {
	Instances []*hclInstance `hcl:"instance,block"`
}

// hclInstance mirrors model.Instance. Children are nested instance blocks.
// Expressions that contain HCL template sequences must escape them ($${ and
// %%{), since the document itself is decoded as HCL first.
type hclInstance struct {
	ID              string         `hcl:"id,label"`
	Display         string         `hcl:"display"`
	Expression      string         `hcl:"expression,optional"`
	IsGlobalContext bool           `hcl:"is_global_context,optional"`
	NextID          string         `hcl:"next_id,optional"`
	Contains        []*hclInstance `hcl:"instance,block"`
}

func decodeHCL(data []byte, filename string) (*model.Instance, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL document %s: %s", filename, diags.Error())
	}

	var doc hclDocument
	diags = gohcl.DecodeBody(file.Body, nil, &doc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode HCL document %s: %s", ErrInvalidDocument, filename, diags.Error())
	}
	if len(doc.Instances) != 1 {
		return nil, fmt.Errorf("%w: %s must contain exactly one top-level instance block, found %d", ErrInvalidDocument, filename, len(doc.Instances))
	}
	return doc.Instances[0].toModel(), nil
}

func (h *hclInstance) toModel() *model.Instance {
	inst := &model.Instance{
		ID:              h.ID,
		Display:         h.Display,
		Expression:      h.Expression,
		IsGlobalContext: h.IsGlobalContext,
		NextID:          h.NextID,
	}
	for _, child := range h.Contains {
		inst.Contains = append(inst.Contains, child.toModel())
	}
	return inst
}
