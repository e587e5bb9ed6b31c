package uid

import (
	"log/slog"
	"strings"

	"github.com/jpfielding/dicomdict/pkg/dicos"
	"github.com/jpfielding/dicomdict/pkg/dicos/vr"
)

// WithRegistry sets the registry used to classify UIDs found by
// RegenerateAll, Default otherwise
func WithRegistry(r *Registry) GeneratorOption {
	return func(g *Generator) {
		g.registry = r
	}
}

// RegenerateAll replaces, in place, every UI value of ds and its nested
// sequence items that is a SOP instance UID or an unclassified UID with the
// UID generated from it. Transfer syntaxes, SOP classes and the other well
// known UIDs are kept. It returns the number of values replaced.
func (g *Generator) RegenerateAll(ds *dicos.Dataset) int {
	replaced := 0
	_ = dicos.Walk(ds, func(elem *dicos.Element, _ int) error {
		if elem.VR != vr.UI {
			return nil
		}
		switch v := elem.Value.(type) {
		case string:
			vals := strings.Split(v, `\`)
			if n := g.regenerate(vals); n > 0 {
				elem.Value = strings.Join(vals, `\`)
				replaced += n
			}
		case []string:
			replaced += g.regenerate(v)
		}
		return nil
	})
	slog.Debug("regenerated uids", "replaced", replaced, "generated", g.Len())
	return replaced
}

func (g *Generator) regenerate(vals []string) int {
	n := 0
	for i, raw := range vals {
		value := Normalize(raw)
		if value == "" {
			continue
		}
		if u := g.classify(value); u.IsInstance() {
			vals[i] = g.Generate(u).Value
			n++
		}
	}
	return n
}

func (g *Generator) classify(value string) UID {
	if g.registry != nil {
		return g.registry.Lookup(value)
	}
	return Lookup(value)
}
