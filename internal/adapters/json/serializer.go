package json

import (
	encjson "encoding/json"
	"fmt"

	"github.com/hailam/pokedat/internal/adapters/factory"
	"github.com/hailam/pokedat/internal/ports"
)

// init registers the JSON serializer with the factory.
func init() {
	factory.RegisterSerializer(ports.FormatJSON, New())
}

type JsonSerializer struct{}

func New() ports.Serializer {
	return &JsonSerializer{}
}

func (s *JsonSerializer) Ext() string { return ".json" }

// Marshal renders the document as a 4-space indented JSON array of entry
// objects, one per line.
func (s *JsonSerializer) Marshal(doc *ports.Document) ([]byte, error) {
	entries := doc.Entries
	if entries == nil {
		entries = []ports.Entry{}
	}
	out, err := encjson.MarshalIndent(entries, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return append(out, '\n'), nil
}

// Unmarshal parses a JSON array back into a document. Every element must
// carry a text member; id and hash are optional.
func (s *JsonSerializer) Unmarshal(data []byte) (*ports.Document, error) {
	var raw []struct {
		ID   string  `json:"id"`
		Hash string  `json:"hash"`
		Text *string `json:"text"`
	}
	if err := encjson.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	doc := &ports.Document{Entries: make([]ports.Entry, len(raw))}
	for i, e := range raw {
		if e.Text == nil {
			return nil, fmt.Errorf("entry #%d missing 'text' field", i)
		}
		doc.Entries[i] = ports.Entry{ID: e.ID, Hash: e.Hash, Text: *e.Text}
	}
	return doc, nil
}
