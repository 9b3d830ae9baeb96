package dataset

import (
	"fmt"

	"github.com/poku-e/MopacAssistant/internal/errors"
	"github.com/poku-e/MopacAssistant/internal/logger"
)

// Element is one cell of the periodic-table grid.
type Element struct {
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	AtomicNumber int    `json:"atomic_number"`
	Group        Group  `json:"group"`
	Row          int    `json:"row"`
	Col          int    `json:"col"`
}

// Color is the display color of the element's group.
func (e Element) Color() string { return e.Group.Color() }

type rawElement struct {
	Symbol       string `json:"symbol" validate:"required"`
	Name         string `json:"name" validate:"required"`
	AtomicNumber *int   `json:"atomic_number" validate:"required,gt=0"`
	Group        string `json:"group"`
	Row          *int   `json:"row" validate:"required,gte=0,lte=63"`
	Col          *int   `json:"col" validate:"required,gte=0,lte=63"`
}

// MaxGridIndex is the largest row or column an element may be placed at.
// Keep in step with the lte tags on rawElement.
const MaxGridIndex = 63

// Directory is the element set, keyed by symbol, in file order.
type Directory struct {
	elements []Element
	bySymbol map[string]int
	rows     int
	cols     int
	grid     [][]int // -1 for empty cells
}

// LoadElements reads the elements dataset (a JSON array).
func LoadElements(path string) (*Directory, error) {
	var raws []rawElement
	if err := ReadJSON(path, &raws); err != nil {
		return nil, err
	}
	elements := make([]Element, 0, len(raws))
	for i, r := range raws {
		if err := checkRecord(fmt.Sprintf("elements[%d]", i), r); err != nil {
			return nil, errors.Wrapf(err, "load %s", path)
		}
		elements = append(elements, Element{
			Symbol:       r.Symbol,
			Name:         r.Name,
			AtomicNumber: *r.AtomicNumber,
			Group:        Group(r.Group).Normalize(),
			Row:          *r.Row,
			Col:          *r.Col,
		})
	}
	d, err := NewDirectory(elements)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return d, nil
}

// NewDirectory indexes elements. Symbols must be unique and placements
// within 0..MaxGridIndex. When two elements share a grid cell the first one
// keeps it.
func NewDirectory(elements []Element) (*Directory, error) {
	d := &Directory{
		elements: make([]Element, len(elements)),
		bySymbol: make(map[string]int, len(elements)),
	}
	copy(d.elements, elements)

	for i, e := range d.elements {
		if e.Row < 0 || e.Row > MaxGridIndex || e.Col < 0 || e.Col > MaxGridIndex {
			return nil, parseError(errors.Newf("element %q placed at (%d, %d), outside 0..%d", e.Symbol, e.Row, e.Col, MaxGridIndex))
		}
		if j, dup := d.bySymbol[e.Symbol]; dup {
			return nil, parseError(errors.Newf("duplicate symbol %q at elements[%d] and elements[%d]", e.Symbol, j, i))
		}
		d.bySymbol[e.Symbol] = i
		d.rows = max(d.rows, e.Row+1)
		d.cols = max(d.cols, e.Col+1)
	}

	d.grid = make([][]int, d.rows)
	for r := range d.grid {
		d.grid[r] = make([]int, d.cols)
		for c := range d.grid[r] {
			d.grid[r][c] = -1
		}
	}
	for i, e := range d.elements {
		if prev := d.grid[e.Row][e.Col]; prev >= 0 {
			logger.Named("dataset").Warnw("grid cell already taken",
				"row", e.Row, "col", e.Col,
				"kept", d.elements[prev].Symbol, "dropped", e.Symbol)
			continue
		}
		d.grid[e.Row][e.Col] = i
	}
	return d, nil
}

func (d *Directory) Len() int { return len(d.elements) }

// All returns the elements in file order.
func (d *Directory) All() []Element {
	out := make([]Element, len(d.elements))
	copy(out, d.elements)
	return out
}

func (d *Directory) Lookup(symbol string) (Element, bool) {
	i, ok := d.bySymbol[symbol]
	if !ok {
		return Element{}, false
	}
	return d.elements[i], true
}

// Bounds is the grid size: one past the largest row and column.
func (d *Directory) Bounds() (rows, cols int) { return d.rows, d.cols }

// At returns the element placed at row, col.
func (d *Directory) At(row, col int) (Element, bool) {
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return Element{}, false
	}
	i := d.grid[row][col]
	if i < 0 {
		return Element{}, false
	}
	return d.elements[i], true
}

// Grid returns the placement as rows of cells; empty cells are nil.
func (d *Directory) Grid() [][]*Element {
	out := make([][]*Element, d.rows)
	for r := range d.grid {
		out[r] = make([]*Element, d.cols)
		for c, i := range d.grid[r] {
			if i >= 0 {
				e := d.elements[i]
				out[r][c] = &e
			}
		}
	}
	return out
}
