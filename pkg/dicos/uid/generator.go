package uid

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator maps source UIDs to derived UIDs. The same source always yields
// the same derived UID for the lifetime of the Generator; associations are
// never evicted. It is safe for concurrent use.
type Generator struct {
	derived  sync.Map // string -> UID
	n        atomic.Int64
	source   func() uuid.UUID
	ns       *uuid.UUID
	registry *Registry
}

// GeneratorOption configures a Generator
type GeneratorOption func(*Generator)

// WithSource sets the random 128-bit source, uuid.New by default
func WithSource(fn func() uuid.UUID) GeneratorOption {
	return func(g *Generator) {
		g.source = fn
	}
}

// WithNamespace derives UIDs from name-based SHA-1 UUIDs of the source UID
// in ns, so separate generators sharing ns agree on every mapping
func WithNamespace(ns uuid.UUID) GeneratorOption {
	return func(g *Generator) {
		g.ns = &ns
	}
}

// NewGenerator creates a Generator
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{source: uuid.New}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns the UID derived from source, creating it on first use.
// Concurrent first calls for the same source all return the one committed
// value. An empty source is a programming error and panics.
func (g *Generator) Generate(source UID) UID {
	key := Normalize(source.Value)
	if key == "" {
		panic("uid: Generate called with an empty source uid")
	}
	if u, ok := g.derived.Load(key); ok {
		return u.(UID)
	}
	actual, loaded := g.derived.LoadOrStore(key, g.derive(key))
	if !loaded {
		g.n.Add(1)
	}
	return actual.(UID)
}

// GenerateValue is Generate over bare UID text
func (g *Generator) GenerateValue(source string) string {
	return g.Generate(New(source)).Value
}

// Lookup returns the UID previously derived from source
func (g *Generator) Lookup(source string) (UID, bool) {
	u, ok := g.derived.Load(Normalize(source))
	if !ok {
		return UID{}, false
	}
	return u.(UID), true
}

// Len returns the number of source UIDs seen
func (g *Generator) Len() int {
	return int(g.n.Load())
}

func (g *Generator) derive(source string) UID {
	if g.ns != nil {
		return FromUUID(uuid.NewSHA1(*g.ns, []byte(source)))
	}
	return FromUUID(g.source())
}
