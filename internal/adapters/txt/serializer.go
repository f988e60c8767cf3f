package txt

import (
	"strings"

	"github.com/hailam/pokedat/internal/adapters/factory"
	"github.com/hailam/pokedat/internal/ports"
)

func init() {
	factory.RegisterSerializer(ports.FormatTXT, New())
}

type TxtSerializer struct{}

func New() ports.Serializer {
	return &TxtSerializer{}
}

func (s *TxtSerializer) Ext() string { return ".txt" }

// Marshal writes one entry text per line, LF-terminated. Labels and hashes
// are not representable in this format.
func (s *TxtSerializer) Marshal(doc *ports.Document) ([]byte, error) {
	var sb strings.Builder
	for _, e := range doc.Entries {
		sb.WriteString(e.Text)
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

// Unmarshal reads one entry per non-blank line. Only the line terminator is
// stripped; inner whitespace is preserved as-is.
func (s *TxtSerializer) Unmarshal(data []byte) (*ports.Document, error) {
	doc := &ports.Document{}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		doc.Entries = append(doc.Entries, ports.Entry{Text: line})
	}
	return doc, nil
}
