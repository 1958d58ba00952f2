package rdf

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Serializer writes a graph to an output stream in one concrete RDF syntax.
type Serializer interface {
	// Name returns the format identifier (e.g. "ttl", "nt").
	Name() string

	// Description returns a human-readable format description.
	Description() string

	// Extension returns the conventional file extension for the format.
	Extension() string

	// Serialize writes the graph to w.
	Serialize(w io.Writer, g *Graph) error
}

// Registry holds registered serializers.
type Registry struct {
	serializers map[string]Serializer
}

// DefaultRegistry is the global serializer registry. The built-in formats
// are registered on package initialization.
var DefaultRegistry = NewRegistry()

// NewRegistry creates a new serializer registry.
func NewRegistry() *Registry {
	return &Registry{
		serializers: make(map[string]Serializer),
	}
}

// Register adds a serializer to the registry.
func (r *Registry) Register(s Serializer) {
	r.serializers[s.Name()] = s
}

// Get retrieves a serializer by format name.
func (r *Registry) Get(name string) (Serializer, error) {
	s, ok := r.serializers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
	return s, nil
}

// List returns all registered format names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.serializers))
	for name := range r.serializers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds a serializer to the default registry.
func Register(s Serializer) {
	DefaultRegistry.Register(s)
}

// GetSerializer retrieves a serializer from the default registry.
func GetSerializer(name string) (Serializer, error) {
	return DefaultRegistry.Get(name)
}

// Formats returns the format names known to the default registry.
func Formats() []string {
	return DefaultRegistry.List()
}

func init() {
	Register(&turtleSerializer{name: "ttl", description: "Turtle", extension: "ttl"})
	Register(&turtleSerializer{name: "n3", description: "Notation3", extension: "n3"})
	Register(&ntriplesSerializer{})
	Register(&rdfxmlSerializer{})
}
