package ports

// SerializerFactory is the port for looking up serializers by Format.
type SerializerFactory interface {
	// For returns a Serializer for the given Format, or an error if unsupported.
	For(f Format) (Serializer, error)
}
