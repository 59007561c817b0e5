// Package jsonschema validates JSON input documents before they are turned
// into token streams.
package jsonschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// inputSchemaURL names the embedded schema inside the compiler.
const inputSchemaURL = "radixsort://input.schema.json"

// InputSchema describes {"radix": 16, "items": ["1a", "ff"]}.
const InputSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["radix"],
  "additionalProperties": false,
  "properties": {
    "radix": {"type": "integer", "minimum": 2, "maximum": 36},
    "items": {
      "type": "array",
      "items": {
        "oneOf": [
          {"type": "string", "pattern": "^[0-9A-Za-z]+$"},
          {"type": "integer", "minimum": 0}
        ]
      }
    }
  }
}`

// Decode unmarshals data keeping numbers as json.Number, so integers beyond
// float64 precision reach the schema and the caller unchanged.
func Decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON value")
	}
	return nil
}

type SchemaValidator struct {
	source string // schema file name, or the embedded schema URL
	schema *jsonschema.Schema
}

// NewSchemaValidator compiles the schema in jsonSchemaFilename. An empty
// filename yields a validator that accepts everything.
func NewSchemaValidator(jsonSchemaFilename string) (SchemaValidator, error) {
	if jsonSchemaFilename == "" {
		slog.Info("NewSchemaValidator: no json schema file specified")
		return SchemaValidator{}, nil
	}

	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(jsonSchemaFilename)
	if err != nil {
		slog.Error("NewSchemaValidator: schema compilation error", "filename", jsonSchemaFilename, "error", err)
		return SchemaValidator{source: jsonSchemaFilename}, err
	}

	slog.Info("NewSchemaValidator: successfully created from", "filename", jsonSchemaFilename)
	return SchemaValidator{source: jsonSchemaFilename, schema: schema}, nil
}

// NewInputValidator compiles the built-in InputSchema.
func NewInputValidator() (SchemaValidator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(inputSchemaURL, strings.NewReader(InputSchema)); err != nil {
		return SchemaValidator{source: inputSchemaURL}, err
	}
	schema, err := compiler.Compile(inputSchemaURL)
	if err != nil {
		slog.Error("NewInputValidator: schema compilation error", "error", err)
		return SchemaValidator{source: inputSchemaURL}, err
	}
	return SchemaValidator{source: inputSchemaURL, schema: schema}, nil
}

// ValidateData checks raw JSON against the compiled schema.
// A validator without a schema source accepts any well-formed data.
func (sv SchemaValidator) ValidateData(data []byte) error {
	if sv.source == "" {
		slog.Debug("ValidateData: no json schema specified, skipping")
		return nil
	}
	if sv.schema == nil {
		slog.Error("ValidateData: invalid json schema specified", "source", sv.source)
		return errors.New("schema source does not have valid schema")
	}

	var d interface{}
	if err := Decode(data, &d); err != nil {
		slog.Error("ValidateData: unable to unmarshal data", "error", err)
		return err
	}

	if err := sv.schema.Validate(d); err != nil {
		slog.Error("ValidateData: data does not conform to the schema", "error", fmt.Sprintf("%v", err))
		return err
	}

	slog.Debug("ValidateData: JSON data conforms to the schema", "source", sv.source)
	return nil
}
