package dataset

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/poku-e/MopacAssistant/internal/errors"
)

// ElementDetail is the per-method copy of an element. It is authored
// separately from elements.json and may disagree with it.
type ElementDetail struct {
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	AtomicNumber int    `json:"atomic_number"`
}

func (d ElementDetail) String() string {
	return fmt.Sprintf("%s (%s, Atomic No: %d)", d.Symbol, d.Name, d.AtomicNumber)
}

type rawDetail struct {
	Symbol       string `json:"symbol" validate:"required"`
	Name         string `json:"name" validate:"required"`
	AtomicNumber *int   `json:"atomic_number" validate:"required,gt=0"`
}

// Method is a named computational method and the elements it parameterizes.
type Method struct {
	Name     string          `json:"name"`
	Elements []ElementDetail `json:"elements"`
}

// Find returns the first entry for symbol.
func (m Method) Find(symbol string) (ElementDetail, bool) {
	for _, e := range m.Elements {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return ElementDetail{}, false
}

// MethodIndex keeps methods in the order the JSON document lists them.
type MethodIndex struct {
	methods []Method
	byName  map[string]int
}

// LoadMethods reads the methods dataset (a JSON object of method name to
// element list).
func LoadMethods(path string) (*MethodIndex, error) {
	om := orderedmap.New[string, []rawDetail]()
	if err := ReadJSON(path, om); err != nil {
		return nil, err
	}

	methods := make([]Method, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		m := Method{Name: pair.Key, Elements: make([]ElementDetail, 0, len(pair.Value))}
		for i, r := range pair.Value {
			if err := checkRecord(fmt.Sprintf("%s[%d]", pair.Key, i), r); err != nil {
				return nil, errors.Wrapf(err, "load %s", path)
			}
			m.Elements = append(m.Elements, ElementDetail{
				Symbol:       r.Symbol,
				Name:         r.Name,
				AtomicNumber: *r.AtomicNumber,
			})
		}
		methods = append(methods, m)
	}
	return NewMethodIndex(methods), nil
}

// NewMethodIndex keeps methods in the given order. A repeated name keeps
// its first position.
func NewMethodIndex(methods []Method) *MethodIndex {
	idx := &MethodIndex{byName: make(map[string]int, len(methods))}
	for _, m := range methods {
		if _, dup := idx.byName[m.Name]; dup {
			continue
		}
		idx.byName[m.Name] = len(idx.methods)
		idx.methods = append(idx.methods, m)
	}
	return idx
}

func (x *MethodIndex) Len() int { return len(x.methods) }

// Methods returns every method in document order.
func (x *MethodIndex) Methods() []Method {
	out := make([]Method, len(x.methods))
	copy(out, x.methods)
	return out
}

func (x *MethodIndex) Names() []string {
	out := make([]string, len(x.methods))
	for i, m := range x.methods {
		out[i] = m.Name
	}
	return out
}

func (x *MethodIndex) Method(name string) (Method, bool) {
	i, ok := x.byName[name]
	if !ok {
		return Method{}, false
	}
	return x.methods[i], true
}
