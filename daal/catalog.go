// MODUL: catalog
// ZWECK: Thread-sicherer, einfuegegeordneter Namenskatalog fuer Familien und Kinds
// INPUT: Name und Wert bei der Registrierung (aus init)
// OUTPUT: Werte in Registrierungsreihenfolge, Lookup mit Vorschlag
// NEBENEFFEKTE: Panic bei doppelter Registrierung
// ABHAENGIGKEITEN: go-ordered-map, levenshtein
// HINWEISE: Doppelte Namen sind Programmierfehler und werden beim Laden erkannt

package daal

import (
	"sync"

	"github.com/agnivade/levenshtein"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type catalog[V any] struct {
	what string

	mu      sync.RWMutex
	entries *orderedmap.OrderedMap[string, V]
}

func newCatalog[V any](what string) *catalog[V] {
	return &catalog[V]{
		what:    what,
		entries: orderedmap.New[string, V](),
	}
}

func (c *catalog[V]) add(name string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries.Get(name); ok {
		panic("daal: " + c.what + " already registered: " + name)
	}
	c.entries.Set(name, v)
}

func (c *catalog[V]) get(name string) (V, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if v, ok := c.entries.Get(name); ok {
		return v, nil
	}

	var zero V
	return zero, &LookupError{What: c.what, Name: name, Suggestion: c.closest(name)}
}

func (c *catalog[V]) list() []V {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]V, 0, c.entries.Len())
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}

func (c *catalog[V]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.entries.Len()
}

// closest liefert den aehnlichsten Namen oder ""; c.mu muss gehalten werden.
func (c *catalog[V]) closest(name string) string {
	best, score := "", maxSuggestDistance(name)+1
	for pair := c.entries.Oldest(); pair != nil; pair = pair.Next() {
		if d := levenshtein.ComputeDistance(name, pair.Key); d < score {
			best, score = pair.Key, d
		}
	}
	return best
}

func maxSuggestDistance(name string) int {
	return max(2, len(name)/4)
}
