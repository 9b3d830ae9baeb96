package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poku-e/MopacAssistant/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const elementsJSON = `[
  {"symbol":"H","name":"Hydrogen","atomic_number":1,"group":"nao-metais","row":0,"col":0},
  {"symbol":"He","name":"Helium","atomic_number":2,"group":"gases-nobres","row":0,"col":17},
  {"symbol":"Li","name":"Lithium","atomic_number":3,"group":"metais-alcalinos","row":1,"col":0},
  {"symbol":"Uue","name":"Ununennium","atomic_number":119,"group":"hipoteticos","row":7,"col":0}
]`

func TestReadJSONMissingFile(t *testing.T) {
	var v any
	err := ReadJSON(filepath.Join(t.TempDir(), "missing.json"), &v)
	require.Error(t, err)
	assert.True(t, IsFileNotFound(err))
	assert.True(t, errors.IsNotFound(err))
	assert.False(t, IsParseError(err))
}

func TestReadJSONMalformed(t *testing.T) {
	var v any
	err := ReadJSON(writeFile(t, "bad.json", `{"PM7": [`), &v)
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.True(t, errors.IsInvalid(err))
	assert.False(t, IsFileNotFound(err))
}

func TestReadJSONDirectoryIsUnclassified(t *testing.T) {
	var v any
	err := ReadJSON(t.TempDir(), &v)
	require.Error(t, err)
	assert.False(t, IsFileNotFound(err))
	assert.False(t, IsParseError(err))
}

func TestLoadElements(t *testing.T) {
	d, err := LoadElements(writeFile(t, "elements.json", elementsJSON))
	require.NoError(t, err)
	require.Equal(t, 4, d.Len())

	h, ok := d.Lookup("H")
	require.True(t, ok)
	assert.Equal(t, Element{Symbol: "H", Name: "Hydrogen", AtomicNumber: 1, Group: GroupNonmetal, Row: 0, Col: 0}, h)

	uue, ok := d.Lookup("Uue")
	require.True(t, ok)
	assert.Equal(t, GroupUnknown, uue.Group)
	assert.Equal(t, "#e0e0e0", uue.Color())

	_, ok = d.Lookup("h")
	assert.False(t, ok, "symbols are case-sensitive")

	symbols := make([]string, 0, d.Len())
	for _, e := range d.All() {
		symbols = append(symbols, e.Symbol)
	}
	assert.Equal(t, []string{"H", "He", "Li", "Uue"}, symbols)
}

func TestElementsGrid(t *testing.T) {
	d, err := LoadElements(writeFile(t, "elements.json", elementsJSON))
	require.NoError(t, err)

	rows, cols := d.Bounds()
	assert.Equal(t, 8, rows)
	assert.Equal(t, 18, cols)

	he, ok := d.At(0, 17)
	require.True(t, ok)
	assert.Equal(t, "He", he.Symbol)

	_, ok = d.At(0, 1)
	assert.False(t, ok)
	_, ok = d.At(-1, 0)
	assert.False(t, ok)
	_, ok = d.At(0, 18)
	assert.False(t, ok)

	grid := d.Grid()
	require.Len(t, grid, 8)
	require.Len(t, grid[1], 18)
	require.NotNil(t, grid[1][0])
	assert.Equal(t, "Li", grid[1][0].Symbol)
	assert.Nil(t, grid[1][1])
}

func TestElementsSharedCellKeepsFirst(t *testing.T) {
	d, err := NewDirectory([]Element{
		{Symbol: "La", Name: "Lanthanum", AtomicNumber: 57, Row: 5, Col: 2},
		{Symbol: "Ac", Name: "Actinium", AtomicNumber: 89, Row: 5, Col: 2},
	})
	require.NoError(t, err)
	e, ok := d.At(5, 2)
	require.True(t, ok)
	assert.Equal(t, "La", e.Symbol)
	_, ok = d.Lookup("Ac")
	assert.True(t, ok, "the element stays in the directory")
}

func TestLoadElementsValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "missing symbol",
			content: `[{"name":"Hydrogen","atomic_number":1,"row":0,"col":0}]`,
			want:    `elements[0]: missing field "symbol"`,
		},
		{
			name:    "missing atomic number",
			content: `[{"symbol":"H","name":"Hydrogen","row":0,"col":0}]`,
			want:    `missing field "atomic_number"`,
		},
		{
			name:    "missing col",
			content: `[{"symbol":"H","name":"Hydrogen","atomic_number":1,"row":0}]`,
			want:    `missing field "col"`,
		},
		{
			name:    "zero atomic number",
			content: `[{"symbol":"H","name":"Hydrogen","atomic_number":0,"row":0,"col":0}]`,
			want:    `"atomic_number" fails gt=0`,
		},
		{
			name:    "negative row",
			content: `[{"symbol":"H","name":"Hydrogen","atomic_number":1,"row":-1,"col":0}]`,
			want:    `"row" fails gte=0`,
		},
		{
			name:    "row beyond grid",
			content: `[{"symbol":"H","name":"Hydrogen","atomic_number":1,"row":6000,"col":6000}]`,
			want:    `"row" fails lte=63`,
		},
		{
			name:    "col beyond grid",
			content: `[{"symbol":"H","name":"Hydrogen","atomic_number":1,"row":0,"col":64}]`,
			want:    `"col" fails lte=63`,
		},
		{
			name:    "null document",
			content: `null`,
			want:    "document is null",
		},
		{
			name: "duplicate symbol",
			content: `[{"symbol":"H","name":"Hydrogen","atomic_number":1,"row":0,"col":0},
			           {"symbol":"H","name":"Hydrogen","atomic_number":1,"row":0,"col":1}]`,
			want: `duplicate symbol "H"`,
		},
		{
			name:    "object instead of array",
			content: `{"H": {}}`,
			want:    "parse",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadElements(writeFile(t, "elements.json", tt.content))
			require.Error(t, err)
			assert.True(t, IsParseError(err), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadMethodsKeepsDocumentOrder(t *testing.T) {
	path := writeFile(t, "methods.json", `{
	  "PM7":  [{"symbol":"H","name":"Hydrogen","atomic_number":1}],
	  "AM1":  [{"symbol":"C","name":"Carbon","atomic_number":6}],
	  "MNDO": [{"symbol":"O","name":"Oxygen","atomic_number":8}],
	  "PM3":  []
	}`)
	idx, err := LoadMethods(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"PM7", "AM1", "MNDO", "PM3"}, idx.Names())
	assert.Equal(t, 4, idx.Len())

	pm3, ok := idx.Method("PM3")
	require.True(t, ok)
	assert.Empty(t, pm3.Elements)

	_, ok = idx.Method("RM1")
	assert.False(t, ok)
}

func TestMethodFindUsesFirstEntry(t *testing.T) {
	path := writeFile(t, "methods.json", `{
	  "PM6": [
	    {"symbol":"N","name":"Nitrogen","atomic_number":7},
	    {"symbol":"H","name":"Hydrogen","atomic_number":1},
	    {"symbol":"H","name":"Protium","atomic_number":1}
	  ]
	}`)
	idx, err := LoadMethods(path)
	require.NoError(t, err)
	pm6, ok := idx.Method("PM6")
	require.True(t, ok)

	d, ok := pm6.Find("H")
	require.True(t, ok)
	assert.Equal(t, "Hydrogen", d.Name)
	assert.Equal(t, "H (Hydrogen, Atomic No: 1)", d.String())

	_, ok = pm6.Find("He")
	assert.False(t, ok)
}

func TestLoadMethodsValidation(t *testing.T) {
	_, err := LoadMethods(writeFile(t, "methods.json", `{"PM7":[{"symbol":"H","name":"Hydrogen"}]}`))
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.Contains(t, err.Error(), `PM7[0]: missing field "atomic_number"`)

	_, err = LoadMethods(writeFile(t, "methods.json", `["PM7"]`))
	require.Error(t, err)
	assert.True(t, IsParseError(err))

	_, err = LoadMethods(filepath.Join(t.TempDir(), "methods.json"))
	require.Error(t, err)
	assert.True(t, IsFileNotFound(err))
}

func TestNewMethodIndexDuplicateNameKeepsFirst(t *testing.T) {
	idx := NewMethodIndex([]Method{
		{Name: "PM7", Elements: []ElementDetail{{Symbol: "H", Name: "Hydrogen", AtomicNumber: 1}}},
		{Name: "PM7"},
	})
	assert.Equal(t, 1, idx.Len())
	m, ok := idx.Method("PM7")
	require.True(t, ok)
	assert.Len(t, m.Elements, 1)
}

func TestLoadKeywords(t *testing.T) {
	path := writeFile(t, "keywords.json", `{
	  "XYZ": "Cartesian coordinates.",
	  "PRECISE": "Increases SCF precision.\nUse with caution.",
	  "1SCF": "Single SCF calculation."
	}`)
	g, err := LoadKeywords(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []string{"1SCF", "PRECISE", "XYZ"}, g.Keys())

	d, ok := g.Lookup("PRECISE")
	require.True(t, ok)
	assert.Equal(t, "Increases SCF precision.\nUse with caution.", d)

	_, ok = g.Lookup("precise")
	assert.False(t, ok)
}

func TestNewDirectoryRejectsOffGridPlacement(t *testing.T) {
	_, err := NewDirectory([]Element{{Symbol: "H", Name: "Hydrogen", AtomicNumber: 1, Row: 100000, Col: 0}})
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.Contains(t, err.Error(), "outside 0..63")

	d, err := NewDirectory([]Element{{Symbol: "Og", Name: "Oganesson", AtomicNumber: 118, Row: MaxGridIndex, Col: MaxGridIndex}})
	require.NoError(t, err)
	rows, cols := d.Bounds()
	assert.Equal(t, MaxGridIndex+1, rows)
	assert.Equal(t, MaxGridIndex+1, cols)
}

func TestLoadKeywordsNullDescription(t *testing.T) {
	_, err := LoadKeywords(writeFile(t, "keywords.json", `{"PRECISE": "Tighter SCF.", "A": null}`))
	require.Error(t, err)
	assert.True(t, IsParseError(err), "got %v", err)
	assert.Contains(t, err.Error(), `keyword "A" has a null description`)
}

func TestNullDocumentIsParseError(t *testing.T) {
	_, err := LoadKeywords(writeFile(t, "keywords.json", "null\n"))
	require.Error(t, err)
	assert.True(t, IsParseError(err))

	_, err = LoadMethods(writeFile(t, "methods.json", " null "))
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestLoadKeywordsWrongShape(t *testing.T) {
	_, err := LoadKeywords(writeFile(t, "keywords.json", `{"PRECISE": 1}`))
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestGroupColorIsTotal(t *testing.T) {
	for _, g := range Groups() {
		assert.NotEmpty(t, g.Color(), string(g))
		assert.NotEmpty(t, g.Label(), string(g))
	}
	assert.Equal(t, "#a0ffa0", GroupNonmetal.Color())
	assert.Equal(t, "#e0e0e0", Group("").Color())
	assert.Equal(t, "#e0e0e0", Group("superheavy").Color())
	assert.Equal(t, GroupUnknown, Group("superheavy").Normalize())
	assert.False(t, GroupUnknown.Known())
	assert.Equal(t, GroupUnknown, Groups()[len(Groups())-1])
}

func TestLoadBundleDegrades(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "elements.json"), []byte(elementsJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keywords.json"), []byte(`{"AUX": broken`), 0o644))

	b := LoadBundle(Paths{
		Elements: filepath.Join(dir, "elements.json"),
		Methods:  filepath.Join(dir, "methods_data.json"),
		Keywords: filepath.Join(dir, "keywords.json"),
	})

	require.NotNil(t, b.Elements)
	assert.Equal(t, 4, b.Elements.Len())
	assert.Nil(t, b.Methods)
	assert.Nil(t, b.Keywords)

	assert.True(t, b.Ready(KindElements))
	assert.False(t, b.Ready(KindMethods))
	assert.False(t, b.Ready(KindKeywords))
	assert.False(t, b.Ready(Kind("bogus")))

	require.Len(t, b.Problems, 2)
	p, ok := b.Problem(KindMethods)
	require.True(t, ok)
	assert.Equal(t, "file not found", p.Reason())
	p, ok = b.Problem(KindKeywords)
	require.True(t, ok)
	assert.Equal(t, "invalid data", p.Reason())
	_, ok = b.Problem(KindElements)
	assert.False(t, ok)
}

func TestLoadBundleAllMissing(t *testing.T) {
	dir := t.TempDir()
	b := LoadBundle(Paths{
		Elements: filepath.Join(dir, "a.json"),
		Methods:  filepath.Join(dir, "b.json"),
		Keywords: filepath.Join(dir, "c.json"),
	})
	require.NotNil(t, b)
	assert.Len(t, b.Problems, 3)
	assert.Nil(t, b.Elements)
	assert.Nil(t, b.Methods)
	assert.Nil(t, b.Keywords)
}

func TestBundledData(t *testing.T) {
	dir := filepath.Join("..", "..", "dados")
	b := LoadBundle(Paths{
		Elements: filepath.Join(dir, "elements.json"),
		Methods:  filepath.Join(dir, "methods_data.json"),
		Keywords: filepath.Join(dir, "keywords.json"),
	})
	require.Empty(t, b.Problems)

	assert.Equal(t, 118, b.Elements.Len())
	for _, e := range b.Elements.All() {
		assert.True(t, e.Group.Known(), "%s has group %q", e.Symbol, e.Group)
	}
	assert.Equal(t, []string{"PM7", "PM6", "RM1", "PM3", "AM1", "MNDO"}, b.Methods.Names())
	for _, m := range b.Methods.Methods() {
		for _, d := range m.Elements {
			e, ok := b.Elements.Lookup(d.Symbol)
			require.True(t, ok, "%s lists unknown element %s", m.Name, d.Symbol)
			assert.Equal(t, e.AtomicNumber, d.AtomicNumber, "%s: %s", m.Name, d.Symbol)
		}
	}
	_, ok := b.Keywords.Lookup("PRECISE")
	assert.True(t, ok)
}
