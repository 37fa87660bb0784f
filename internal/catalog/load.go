package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// document is the on-disk catalog format.
type document struct {
	Version  int              `json:"version"`
	Language string           `json:"language"`
	Words    []Item           `json:"words"`
	Lessons  []lessonDocument `json:"lessons,omitempty"`
}

type lessonDocument struct {
	ID    string   `json:"id"`
	Title string   `json:"title,omitempty"`
	Words []string `json:"words"`
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// catalogSchema returns the compiled catalog JSON schema, compiling it
// on first use.
func catalogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal(schemaJSON, &parsed); err != nil {
			schemaErr = fmt.Errorf("parse embedded schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://catalog.json", parsed); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://catalog.json")
	})
	return compiledSchema, schemaErr
}

// Parse validates raw catalog JSON against the embedded schema and
// builds the indexed catalog.
func Parse(raw []byte) (*Catalog, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}

	schema, err := catalogSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("catalog schema validation failed: %w", err)
	}

	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	lessons := make([]Lesson, 0, len(doc.Lessons))
	for _, l := range doc.Lessons {
		lessons = append(lessons, Lesson{ID: l.ID, Title: l.Title, Keys: l.Words})
	}
	return New(doc.Words, lessons)
}

// LoadFile parses a catalog from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

// Load returns the catalog at path, or the embedded seed catalog when
// path is empty. A malformed user catalog falls back to the seed with a
// warning rather than failing the app.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Seed()
	}
	c, err := LoadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: falling back to built-in catalog:", err)
		return Seed()
	}
	return c, nil
}
