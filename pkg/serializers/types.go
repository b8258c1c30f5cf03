package serializers

// Serializer is an interface for serializing menu data.
// Implementations of this interface can serialize data to various formats
// such as JSON, YAML, or plain text tables.
type Serializer interface {
	Serialize(data any) error
}
