package listing

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/listing.schema.json
var listingSchemaJSON []byte

const listingSchemaURL = "artview://listing.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func listingSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(listingSchemaURL, bytes.NewReader(listingSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add listing schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(listingSchemaURL)
	})
	return compiledSchema, schemaErr
}

// ValidatePayload checks a raw response body against the listing schema:
// an object with a data array of records carrying an integer id, and a
// pagination object with a non-negative integer total.
func ValidatePayload(body []byte) error {
	schema, err := listingSchema()
	if err != nil {
		return err
	}

	var instance any
	if err := json.Unmarshal(body, &instance); err != nil {
		return fmt.Errorf("decode JSON: %w", err)
	}

	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
