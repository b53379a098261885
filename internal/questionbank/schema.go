package questionbank

// bankSchema is the JSON Schema every bank file must satisfy before
// decoding. It covers shape only; cross-record rules (duplicate IDs,
// prompt collisions) are checked in Go after decoding.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{
			"type":  "integer",
			"const": 1,
		},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"domain": map[string]any{
						"type": "string",
						"enum": []any{"science", "history", "geography", "literature"},
					},
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"answer": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
				},
				"required":             []any{"id", "domain", "prompt", "answer"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "questions"},
	"additionalProperties": false,
}
