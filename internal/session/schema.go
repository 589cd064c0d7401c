package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// kvSchema validates one persisted slice before it is unmarshalled, so a
// corrupt stored value degrades to the default instead of poisoning state.
type kvSchema struct {
	name       string
	definition map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// validate checks raw against the schema. Any failure, including invalid
// JSON, is returned as an error; callers treat it the same as an absent key.
func (s *kvSchema) validate(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := s.compile()
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", s.name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compile builds the schema once and caches the result.
func (s *kvSchema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal for a clean representation.
		defBytes, err := json.Marshal(s.definition)
		if err != nil {
			s.err = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			s.err = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		url := fmt.Sprintf("schema://%s.json", s.name)
		if err := c.AddResource(url, defParsed); err != nil {
			s.err = fmt.Errorf("add resource: %w", err)
			return
		}
		s.compiled, s.err = c.Compile(url)
	})
	return s.compiled, s.err
}

var themeSchema = &kvSchema{
	name: "theme",
	definition: map[string]any{
		"type": "string",
		"enum": []any{"light", "dark"},
	},
}

var savedSchema = &kvSchema{
	name: "saved",
	definition: map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "integer"},
	},
}

var enrolledSchema = &kvSchema{
	name: "enrolled",
	definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":    map[string]any{"type": "integer"},
				"title": map[string]any{"type": "string"},
			},
			"required": []any{"id", "title"},
		},
	},
}

var chatSchema = &kvSchema{
	name: "chat",
	definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":     map[string]any{"type": "string"},
				"sender": map[string]any{"type": "string", "enum": []any{"me", "mentor"}},
				"text":   map[string]any{"type": "string"},
			},
			"required": []any{"id", "sender", "text"},
		},
	},
}
