package classifier

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const artifactSchemaURL = "schema://video-game-hit-model.json"

var weightTable = map[string]any{
	"type":                 "object",
	"minProperties":        1,
	"additionalProperties": map[string]any{"type": "number"},
}

// artifactSchema describes the serialized one-hot logistic model.
var artifactSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name":           map[string]any{"type": "string", "minLength": 1},
		"version":        map[string]any{"type": "string", "minLength": 1},
		"kind":           map[string]any{"type": "string", "enum": []any{"logistic"}},
		"positive_class": map[string]any{"type": "string"},
		"intercept":      map[string]any{"type": "number"},
		"handle_unknown": map[string]any{"type": "string", "enum": []any{"error", "ignore"}},
		"features": map[string]any{
			"type": "object",
			"properties": map[string]any{
				ColumnPlatform:      weightTable,
				ColumnGenre:         weightTable,
				ColumnPublisherType: weightTable,
			},
			"required":             []any{ColumnPlatform, ColumnGenre, ColumnPublisherType},
			"additionalProperties": false,
		},
	},
	"required": []any{"name", "version", "kind", "intercept", "features"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go maps with typed slices.
		defBytes, err := json.Marshal(artifactSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(artifactSchemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(artifactSchemaURL)
	})
	return compiledSchema, compileErr
}

func validateArtifact(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile artifact schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}
