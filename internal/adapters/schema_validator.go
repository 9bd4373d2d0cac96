package adapters

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/xeipuuv/gojsonschema"
)

// maxReportedViolations caps how many schema violations end up in one
// error message.
const maxReportedViolations = 5

// SchemaValidator checks documents against one compiled JSON Schema.
type SchemaValidator struct {
	name   string
	schema *gojsonschema.Schema
}

func NewSchemaValidator(name string, schemaBytes []byte) (SchemaValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaBytes))
	if err != nil {
		return SchemaValidator{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to compile %s schema", name)).
			WithCause(err)
	}
	return SchemaValidator{name: name, schema: schema}, nil
}

// ValidateJSON validates raw JSON. Malformed JSON is reported the same way
// as a schema violation.
func (v SchemaValidator) ValidateJSON(data []byte) error {
	return v.validate(gojsonschema.NewBytesLoader(data))
}

// ValidateValue validates an already decoded document, e.g. one read
// from YAML.
func (v SchemaValidator) ValidateValue(doc interface{}) error {
	return v.validate(gojsonschema.NewGoLoader(doc))
}

func (v SchemaValidator) validate(loader gojsonschema.JSONLoader) error {
	result, err := v.schema.Validate(loader)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s is not valid JSON", v.name)).
			WithCause(err)
	}
	if result.Valid() {
		return nil
	}
	var violations []string
	for i, verr := range result.Errors() {
		if i == maxReportedViolations {
			violations = append(violations, fmt.Sprintf("and %d more", len(result.Errors())-i))
			break
		}
		field := verr.Field()
		if field == "" {
			field = "(root)"
		}
		violations = append(violations, fmt.Sprintf("%s: %s", field, verr.Description()))
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s does not match schema: %s", v.name, strings.Join(violations, "; ")))
}
