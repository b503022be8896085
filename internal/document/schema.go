package document

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// ErrInvalidDocument is returned when a document does not match the schema.
var ErrInvalidDocument = errors.New("invalid document")

// instanceSchema describes one instance of a JSON or YAML document.
// Definitions are closed, so unknown fields are rejected.
const instanceSchema = `
#Instance: {
	id:                string & !=""
	display:           string
	expression?:       string
	is_global_context: bool
	next_id?:          string
	contains?:         [...#Instance] | null
}
`

// validate checks a generic decoded document tree against instanceSchema.
func validate(raw any) error {
	cctx := cuecontext.New()
	schema := cctx.CompileString(instanceSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling document schema: %w", err)
	}

	doc := cctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	def := schema.LookupPath(cue.ParsePath("#Instance"))
	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}
