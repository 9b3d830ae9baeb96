// Package export writes the element x method support matrix as CSV or XLSX.
package export

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/poku-e/MopacAssistant/internal/dataset"
	"github.com/poku-e/MopacAssistant/internal/errors"
	"github.com/poku-e/MopacAssistant/internal/lookup"
)

// SheetName is the worksheet holding the matrix in XLSX output.
const SheetName = "Support"

const mark = "✓"

// Format is an output file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	}
	return "", errors.WithHint(
		errors.Wrapf(errors.ErrInvalid, "unsupported output %q", path),
		"out must end with .csv or .xlsx")
}

// WriteFile writes m to path in the format its extension names.
func WriteFile(path string, m lookup.Matrix) (err error) {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()

	switch format {
	case FormatCSV:
		return WriteCSV(f, m)
	default:
		return WriteXLSX(f, m)
	}
}

func header(m lookup.Matrix) []string {
	h := []string{"symbol", "name", "atomic_number", "group"}
	h = append(h, m.Methods...)
	return append(h, "supported_by")
}

// WriteCSV writes one row per element with "yes" in each supporting
// method's column.
func WriteCSV(w io.Writer, m lookup.Matrix) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header(m)); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for i, e := range m.Elements {
		rec := []string{e.Symbol, e.Name, strconv.Itoa(e.AtomicNumber), string(e.Group)}
		for _, ok := range m.Supported[i] {
			if ok {
				rec = append(rec, "yes")
			} else {
				rec = append(rec, "")
			}
		}
		rec = append(rec, strconv.Itoa(m.Count(i)))
		if err := cw.Write(rec); err != nil {
			return errors.Wrapf(err, "write csv row %s", e.Symbol)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the matrix to a single worksheet with a frozen header,
// symbol cells filled with their group color.
func WriteXLSX(w io.Writer, m lookup.Matrix) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return errors.Wrap(err, "rename sheet")
	}

	styles, err := newStyleSet(f)
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return errors.Wrap(err, "stream writer")
	}
	if err := sw.SetColWidth(2, 2, 16); err != nil {
		return errors.Wrap(err, "column width")
	}
	if err := sw.SetPanes(&excelize.Panes{
		Freeze:      true,
		XSplit:      1,
		YSplit:      1,
		TopLeftCell: "B2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return errors.Wrap(err, "freeze panes")
	}

	h := header(m)
	row := make([]interface{}, len(h))
	for i, name := range h {
		row[i] = excelize.Cell{StyleID: styles.header, Value: name}
	}
	if err := sw.SetRow("A1", row); err != nil {
		return errors.Wrap(err, "write header")
	}

	for i, e := range m.Elements {
		symbolStyle, err := styles.group(e.Group)
		if err != nil {
			return err
		}
		row := []interface{}{
			excelize.Cell{StyleID: symbolStyle, Value: e.Symbol},
			e.Name,
			e.AtomicNumber,
			e.Group.Label(),
		}
		for _, ok := range m.Supported[i] {
			if ok {
				row = append(row, excelize.Cell{StyleID: styles.mark, Value: mark})
			} else {
				row = append(row, nil)
			}
		}
		row = append(row, m.Count(i))

		cellAddr, _ := excelize.CoordinatesToCellName(1, i+2) // A2, A3, ...
		if err := sw.SetRow(cellAddr, row); err != nil {
			return errors.Wrapf(err, "write row %s", e.Symbol)
		}
	}
	if err := sw.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}
	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "write xlsx")
	}
	return nil
}

type styleSet struct {
	f      *excelize.File
	header int
	mark   int
	groups map[dataset.Group]int
}

func newStyleSet(f *excelize.File) (*styleSet, error) {
	s := &styleSet{f: f, groups: make(map[dataset.Group]int)}
	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    []excelize.Border{{Type: "bottom", Color: "#a0a0a0", Style: 1}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "header style")
	}
	s.mark, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "mark style")
	}
	return s, nil
}

func (s *styleSet) group(g dataset.Group) (int, error) {
	g = g.Normalize()
	if id, ok := s.groups[g]; ok {
		return id, nil
	}
	id, err := s.f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{g.Color()}},
	})
	if err != nil {
		return 0, errors.Wrapf(err, "style for %s", g)
	}
	s.groups[g] = id
	return id, nil
}
