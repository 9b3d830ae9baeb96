package lookup

import (
	"github.com/poku-e/MopacAssistant/internal/dataset"
)

// Matrix is the element-by-method support table. Rows follow the element
// directory, columns follow the methods document.
type Matrix struct {
	Methods  []string
	Elements []dataset.Element
	// Supported[i][j] is true when Methods[j] lists Elements[i].
	Supported [][]bool
}

// SupportMatrix cross-references every element against every method.
func (s *Service) SupportMatrix() Matrix {
	methods := s.Methods()
	m := Matrix{
		Methods:  make([]string, len(methods)),
		Elements: s.Elements(),
	}
	for j, meth := range methods {
		m.Methods[j] = meth.Name
	}
	m.Supported = make([][]bool, len(m.Elements))
	for i, e := range m.Elements {
		row := make([]bool, len(methods))
		for j, meth := range methods {
			_, row[j] = meth.Find(e.Symbol)
		}
		m.Supported[i] = row
	}
	return m
}

// Count returns how many methods support Elements[i].
func (m Matrix) Count(i int) int {
	n := 0
	for _, ok := range m.Supported[i] {
		if ok {
			n++
		}
	}
	return n
}
