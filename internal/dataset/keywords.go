package dataset

import (
	"sort"

	"github.com/poku-e/MopacAssistant/internal/errors"
)

// Glossary maps MOPAC keywords to their descriptions.
type Glossary struct {
	entries map[string]string
	keys    []string
}

// LoadKeywords reads the keywords dataset (a JSON object of keyword to
// description).
func LoadKeywords(path string) (*Glossary, error) {
	var raw map[string]*string
	if err := ReadJSON(path, &raw); err != nil {
		return nil, err
	}
	entries := make(map[string]string, len(raw))
	for k, d := range raw {
		if d == nil {
			return nil, parseError(errors.Newf("load %s: keyword %q has a null description", path, k))
		}
		entries[k] = *d
	}
	return NewGlossary(entries), nil
}

// NewGlossary copies entries; descriptions are kept verbatim.
func NewGlossary(entries map[string]string) *Glossary {
	g := &Glossary{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		g.entries[k] = v
		g.keys = append(g.keys, k)
	}
	sort.Strings(g.keys)
	return g
}

func (g *Glossary) Len() int { return len(g.entries) }

// Keys returns the keywords sorted lexicographically.
func (g *Glossary) Keys() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

func (g *Glossary) Lookup(keyword string) (string, bool) {
	d, ok := g.entries[keyword]
	return d, ok
}
