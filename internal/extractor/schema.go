package extractor

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ResultRecordSchema describes the serialized result record. Handlers use it
// to self-check responses in tests and it is served to API consumers.
func ResultRecordSchema() map[string]any {
	remarkEntry := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"code":         map[string]any{"type": "integer"},
			"message":      map[string]any{"type": "string"},
			"category":     map[string]any{"type": "string"},
			"path":         map[string]any{"type": "string"},
			"originalPath": map[string]any{"type": "string"},
		},
		"required": []string{"code", "message", "path"},
	}
	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type":    "object",
		"properties": map[string]any{
			"error": map[string]any{"type": "string"},
			"summary": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"primaryResult":    map[string]any{"type": "string"},
					"completionStatus": map[string]any{"type": "string"},
					"failureReason":    map[string]any{"type": "string"},
				},
			},
			"remarks": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"processing":     map[string]any{"type": "array", "items": remarkEntry},
					"riskManagement": map[string]any{"type": "array", "items": remarkEntry},
				},
				"required": []string{"processing", "riskManagement"},
			},
			"metadata": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"processedAt":         map[string]any{"type": "string", "format": "date-time"},
					"dataType":            map[string]any{"type": "string"},
					"isArray":             map[string]any{"type": "boolean"},
					"size":                map[string]any{"type": "integer"},
					"jsonType":            map[string]any{"enum": []any{"Workflow", "Secure me"}},
					"extractionRootPath":  map[string]any{"type": "string"},
					"workflowNumber":      map[string]any{"type": "string"},
					"documentData2Fields": map[string]any{"type": "object"},
					"documentData2Paths": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "string"},
					},
					"documentData2Source": map[string]any{"type": "string"},
					"documentData2Compare": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"enum": []any{"Same on both pages", "Front", "Back"}},
					},
					"documentData2DataSource": map[string]any{"type": "object"},
					"documentData2DataSourcePaths": map[string]any{
						"type":                 "object",
						"additionalProperties": map[string]any{"type": "string"},
					},
				},
				"required": []string{"processedAt", "dataType", "isArray", "size", "documentData2Fields", "documentData2Paths"},
			},
			"paths": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"primaryResult":    map[string]any{"type": "string"},
					"completionStatus": map[string]any{"type": "string"},
					"failureReason":    map[string]any{"type": "string"},
				},
			},
			"originalData": true,
		},
		"required": []string{"summary", "remarks", "metadata", "paths"},
	}
}

// ValidateRecordJSON checks a serialized result record against
// ResultRecordSchema.
func ValidateRecordJSON(data []byte) error {
	b, err := json.Marshal(ResultRecordSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("result-record.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("result-record.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
