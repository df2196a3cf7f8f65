package document

import (
	"encoding/json"
	"fmt"
	"os"
)

// Save writes the document as pretty-printed JSON.
func Save(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", path, err)
	}
	return nil
}

// Load reads a document previously written by Save.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal document %s: %w", path, err)
	}
	return &doc, nil
}
