// Package lookup answers the two questions the assistant exists for: which
// methods support an element, and what a keyword means.
//
// A Service is immutable once built and holds no other state, so the web and
// terminal shells share one instance.
package lookup

import (
	"fmt"
	"strings"

	"github.com/poku-e/MopacAssistant/internal/dataset"
)

// DescriptionNotFound is returned by Description for unknown keywords.
const DescriptionNotFound = "Description not found."

// Match is one method supporting a queried symbol, with that method's own
// detail entry for it.
type Match struct {
	Method  string                `json:"method"`
	Element dataset.ElementDetail `json:"element"`
}

// Service queries the loaded datasets. Any of them may be nil when it
// failed to load; queries against a missing dataset return empty results.
type Service struct {
	elements *dataset.Directory
	methods  *dataset.MethodIndex
	glossary *dataset.Glossary
}

func New(elements *dataset.Directory, methods *dataset.MethodIndex, glossary *dataset.Glossary) *Service {
	return &Service{elements: elements, methods: methods, glossary: glossary}
}

// FromBundle builds a Service over whatever the bundle managed to load.
func FromBundle(b *dataset.Bundle) *Service {
	return New(b.Elements, b.Methods, b.Keywords)
}

func (s *Service) HasElements() bool { return s.elements != nil }
func (s *Service) HasMethods() bool  { return s.methods != nil }
func (s *Service) HasKeywords() bool { return s.glossary != nil }

// MethodsForSymbol lists, in document order, every method whose element list
// contains symbol (exact, case-sensitive). Each method appears once, with
// its first matching entry. The result is empty, never nil, when no method
// supports the symbol.
func (s *Service) MethodsForSymbol(symbol string) []Match {
	out := []Match{}
	if s.methods == nil {
		return out
	}
	for _, m := range s.methods.Methods() {
		if d, ok := m.Find(symbol); ok {
			out = append(out, Match{Method: m.Name, Element: d})
		}
	}
	return out
}

// Description returns the stored text for keyword, line breaks intact, or
// DescriptionNotFound.
func (s *Service) Description(keyword string) string {
	if s.glossary == nil {
		return DescriptionNotFound
	}
	d, ok := s.glossary.Lookup(keyword)
	if !ok {
		return DescriptionNotFound
	}
	return d
}

// DescriptionLines splits the description on line breaks (\n or \r\n).
func (s *Service) DescriptionLines(keyword string) []string {
	d := strings.ReplaceAll(s.Description(keyword), "\r\n", "\n")
	return strings.Split(d, "\n")
}

// Keywords returns the glossary keys sorted lexicographically.
func (s *Service) Keywords() []string {
	if s.glossary == nil {
		return []string{}
	}
	return s.glossary.Keys()
}

func (s *Service) Element(symbol string) (dataset.Element, bool) {
	if s.elements == nil {
		return dataset.Element{}, false
	}
	return s.elements.Lookup(symbol)
}

// Elements returns the element directory in file order.
func (s *Service) Elements() []dataset.Element {
	if s.elements == nil {
		return []dataset.Element{}
	}
	return s.elements.All()
}

// Directory exposes the grid placement for renderers. Nil when the elements
// dataset is unavailable.
func (s *Service) Directory() *dataset.Directory { return s.elements }

// Methods returns the methods in document order.
func (s *Service) Methods() []dataset.Method {
	if s.methods == nil {
		return []dataset.Method{}
	}
	return s.methods.Methods()
}

// Report is the text shown after an element is selected.
type Report struct {
	Symbol    string  `json:"symbol"`
	Supported bool    `json:"supported"`
	Matches   []Match `json:"matches"`
}

// Lines renders the report one line per method, or a single
// not-supported line.
func (r Report) Lines() []string {
	if !r.Supported {
		return []string{fmt.Sprintf("%s is not supported by any listed method.", r.Symbol)}
	}
	lines := make([]string, len(r.Matches))
	for i, m := range r.Matches {
		lines[i] = fmt.Sprintf("%s: %s", m.Method, m.Element)
	}
	return lines
}

func (r Report) String() string { return strings.Join(r.Lines(), "\n") }

// Describe builds the Report for symbol.
func (s *Service) Describe(symbol string) Report {
	matches := s.MethodsForSymbol(symbol)
	return Report{Symbol: symbol, Supported: len(matches) > 0, Matches: matches}
}
