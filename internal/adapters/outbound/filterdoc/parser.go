// Package filterdoc decodes Visual Studio solution filter (.slnf) documents.
package filterdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/drewnoakes/validate-slnf/internal/domain"
)

const schemaURL = "slnf.schema.json"

// schemaText describes the parts of a filter document the validator relies on.
// Unknown properties are allowed.
const schemaText = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["solution"],
  "properties": {
    "solution": {
      "type": "object",
      "required": ["path", "projects"],
      "properties": {
        "path": {"type": "string"},
        "projects": {"type": "array", "items": {"type": "string"}}
      }
    }
  }
}`

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parser implements domain.FilterParser.
type Parser struct {
	schema *jsonschema.Schema
}

// New creates a Parser with the filter document schema compiled.
func New() *Parser {
	return &Parser{schema: jsonschema.MustCompileString(schemaURL, schemaText)}
}

// Parse decodes data into a FilterDocument. Malformed JSON and documents that
// lack solution.path or solution.projects produce a *domain.ParseError.
func (p *Parser) Parse(data []byte) (*domain.FilterDocument, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &domain.ParseError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	if err := p.schema.Validate(raw); err != nil {
		return nil, &domain.ParseError{Err: schemaError(err)}
	}

	var doc domain.FilterDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &domain.ParseError{Err: err}
	}
	return &doc, nil
}

// schemaError reduces a schema validation failure to its first leaf cause.
func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	location := strings.TrimPrefix(ve.InstanceLocation, "/")
	if location == "" {
		return fmt.Errorf("document: %s", ve.Message)
	}
	return fmt.Errorf("%s: %s", strings.ReplaceAll(location, "/", "."), ve.Message)
}
