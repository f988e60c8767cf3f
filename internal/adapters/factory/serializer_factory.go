// internal/adapters/factory/serializer_factory.go
package factory

import (
	"fmt"
	"log"
	"sync"

	"github.com/hailam/pokedat/internal/ports"
)

// registry stores the registered serializers.
var (
	serializerRegistry = make(map[ports.Format]ports.Serializer)
	registryMutex      sync.RWMutex
)

// RegisterSerializer is called by serializer packages during their init() phase.
func RegisterSerializer(format ports.Format, serializer ports.Serializer) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	if _, exists := serializerRegistry[format]; exists {
		log.Printf("Warning: Duplicate serializer registration for %s. Overwriting existing one.", format)
	}
	serializerRegistry[format] = serializer
}

// DynamicSerializerFactory uses the registry populated by RegisterSerializer.
type DynamicSerializerFactory struct{}

// NewSerializerFactory creates a new factory that uses the global registry.
func NewSerializerFactory() ports.SerializerFactory {
	return &DynamicSerializerFactory{}
}

// For returns the appropriate Serializer for the given Format from the registry.
func (f *DynamicSerializerFactory) For(t ports.Format) (ports.Serializer, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	s, ok := serializerRegistry[t]
	if !ok {
		return nil, fmt.Errorf("unsupported format: '%s' (no serializer registered)", t)
	}
	return s, nil
}

func RegisteredFormats() []ports.Format {
	registryMutex.RLock()
	defer registryMutex.RUnlock()
	formats := make([]ports.Format, 0, len(serializerRegistry))
	for f := range serializerRegistry {
		formats = append(formats, f)
	}
	return formats
}
