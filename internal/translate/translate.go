package translate

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed translations.yaml
var defaultTable []byte

// Table is a fixed Arabic to English lookup. It is read-only after load and
// safe for concurrent use.
type Table struct {
	entries map[string]string
}

func Default() *Table {
	t, err := Parse(defaultTable)
	if err != nil {
		panic(fmt.Sprintf("translate: embedded table: %v", err))
	}
	return t
}

// Load reads a YAML table from path, or returns the embedded one when path is empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Table, error) {
	entries := map[string]string{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse translations: %w", err)
	}
	return &Table{entries: entries}, nil
}

func (t *Table) Len() int { return len(t.entries) }

// Lookup returns the English text for s, or s itself when the table has no entry.
func (t *Table) Lookup(s string) string {
	if v, ok := t.entries[s]; ok {
		return v
	}
	return s
}

func (t *Table) TranslateAll(texts []string) []string {
	out := make([]string, len(texts))
	for i, s := range texts {
		out[i] = t.Lookup(s)
	}
	return out
}
