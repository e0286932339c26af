package resume

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

// ValidationError lists every problem found in a document or in user input.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	switch len(e.Problems) {
	case 0:
		return "invalid resume"
	case 1:
		return "invalid resume: " + e.Problems[0]
	default:
		return fmt.Sprintf("invalid resume: %d problems: %s", len(e.Problems), strings.Join(e.Problems, "; "))
	}
}

// Validate checks the document against the embedded schema. It returns a
// *ValidationError describing every violation, or nil.
func Validate(doc Document) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaJSON)
	docLoader := gojsonschema.NewGoLoader(doc)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if res.Valid() {
		return nil
	}
	verr := &ValidationError{}
	for _, e := range res.Errors() {
		verr.Problems = append(verr.Problems, e.String())
	}
	return verr
}
