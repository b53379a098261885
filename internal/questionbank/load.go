package questionbank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed bank.json
var defaultBankJSON []byte

var (
	defaultOnce sync.Once
	defaultBank []Question
)

// Bank is the decoded form of a bank file.
type Bank struct {
	Version   int        `json:"version"`
	Questions []Question `json:"questions"`
}

// Load reads a bank file from disk and validates it. The returned slice
// is in file order.
func Load(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return Parse(raw, path)
}

// Default returns the built-in question bank embedded in the binary.
// The embedded data goes through the same validation as external files;
// a failure here means the binary itself is broken, so it panics.
func Default() []Question {
	defaultOnce.Do(func() {
		qs, err := Parse(defaultBankJSON, "embedded")
		if err != nil {
			panic(fmt.Sprintf("embedded question bank: %v", err))
		}
		defaultBank = qs
	})
	return defaultBank
}

// Parse validates raw bank JSON against the schema and the cross-record
// rules, then returns the decoded questions. source names the origin
// (a file path or "embedded") for error messages.
func Parse(raw []byte, source string) ([]Question, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidBank{Source: source, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledBankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, &ErrInvalidBank{Source: source, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var bank Bank
	if err := json.Unmarshal(raw, &bank); err != nil {
		return nil, &ErrInvalidBank{Source: source, Err: fmt.Errorf("decode: %w", err)}
	}

	if err := validateQuestions(bank.Questions); err != nil {
		return nil, &ErrInvalidBank{Source: source, Err: err}
	}
	return bank.Questions, nil
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// compiledBankSchema compiles bankSchema once and caches the result.
func compiledBankSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// a Go map with typed values. Marshal then unmarshal to get a
		// clean any representation.
		defBytes, err := json.Marshal(bankSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(schemaURL)
	})
	return schemaCompiled, schemaErr
}

// validateQuestions applies the consistency rules the schema cannot
// express. Returns a combined error describing all problems found, or
// nil if the set is valid.
func validateQuestions(questions []Question) error {
	var errs []string

	idSet := make(map[string]bool, len(questions))
	for _, q := range questions {
		if idSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		idSet[q.ID] = true
	}

	// Two identical prompts in one domain would surface as duplicate
	// cards in a session and near-certain distractor collisions.
	promptSet := make(map[Domain]map[string]string, len(questions))
	for _, q := range questions {
		if promptSet[q.Domain] == nil {
			promptSet[q.Domain] = make(map[string]string)
		}
		if otherID, ok := promptSet[q.Domain][q.Prompt]; ok {
			errs = append(errs, fmt.Sprintf("questions %q and %q share a prompt in domain %q", otherID, q.ID, q.Domain))
			continue
		}
		promptSet[q.Domain][q.Prompt] = q.ID
	}

	if len(errs) > 0 {
		return fmt.Errorf("bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
