package ports

// Format is the identifier for each document serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTXT  Format = "txt"
)

// Serializer is the port for anything that can externalize a document.
type Serializer interface {
	// Marshal renders the document in the serializer's on-disk form.
	Marshal(doc *Document) ([]byte, error)
	// Unmarshal parses the serializer's on-disk form back into a document.
	Unmarshal(data []byte) (*Document, error)
	// Ext returns the file extension for this format, dot included.
	Ext() string
}
