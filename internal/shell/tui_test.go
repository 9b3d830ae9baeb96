package shell

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poku-e/MopacAssistant/internal/dataset"
	"github.com/poku-e/MopacAssistant/internal/errors"
	"github.com/poku-e/MopacAssistant/internal/lookup"
)

func testService(t *testing.T) *lookup.Service {
	t.Helper()
	elements, err := dataset.NewDirectory([]dataset.Element{
		{Symbol: "H", Name: "Hydrogen", AtomicNumber: 1, Group: dataset.GroupNonmetal, Row: 0, Col: 0},
		{Symbol: "He", Name: "Helium", AtomicNumber: 2, Group: dataset.GroupNobleGas, Row: 0, Col: 17},
		{Symbol: "Li", Name: "Lithium", AtomicNumber: 3, Group: dataset.GroupAlkali, Row: 1, Col: 0},
		{Symbol: "C", Name: "Carbon", AtomicNumber: 6, Group: dataset.GroupNonmetal, Row: 1, Col: 13},
		{Symbol: "Ne", Name: "Neon", AtomicNumber: 10, Group: dataset.GroupNobleGas, Row: 1, Col: 17},
	})
	require.NoError(t, err)
	methods := dataset.NewMethodIndex([]dataset.Method{
		{Name: "PM7", Elements: []dataset.ElementDetail{
			{Symbol: "H", Name: "Hydrogen", AtomicNumber: 1},
			{Symbol: "C", Name: "Carbon", AtomicNumber: 6},
		}},
		{Name: "MNDO", Elements: []dataset.ElementDetail{{Symbol: "C", Name: "Carbon", AtomicNumber: 6}}},
	})
	glossary := dataset.NewGlossary(map[string]string{
		"PRECISE": "Increases SCF precision.\nUse with caution.",
		"1SCF":    "Single SCF.",
		"XYZ":     "Cartesian coordinates.",
	})
	return lookup.New(elements, methods, glossary)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestHomeNavigation(t *testing.T) {
	m := New(testService(t), nil)
	assert.Equal(t, ScreenHome, m.Screen())
	assert.Contains(t, m.View(), "MOPAC Assistant")

	m = send(t, m, "enter")
	assert.Equal(t, ScreenKeywords, m.Screen(), "first option opens keywords")

	m = send(t, m, "esc", "down", "enter")
	assert.Equal(t, ScreenElements, m.Screen())

	m = send(t, m, "b", "k")
	assert.Equal(t, ScreenKeywords, m.Screen())

	m = send(t, m, "b", "e")
	assert.Equal(t, ScreenElements, m.Screen())
}

func TestQuit(t *testing.T) {
	m := New(testService(t), nil)
	for _, k := range []string{"q", "ctrl+c"} {
		next, cmd := m.Update(key(k))
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Equal(t, "", next.View())
	}
}

func TestElementSelection(t *testing.T) {
	m := send(t, New(testService(t), nil), "e")

	cur, ok := m.Cursor()
	require.True(t, ok)
	assert.Equal(t, "H", cur.Symbol)
	assert.Contains(t, m.View(), elementPrompt)

	m = send(t, m, "enter")
	assert.Equal(t, "H", m.Highlighted())
	assert.Contains(t, m.View(), "PM7: H (Hydrogen, Atomic No: 1)")

	m = send(t, m, "right", "enter")
	assert.Equal(t, "He", m.Highlighted(), "selecting another element moves the highlight")
	assert.Contains(t, m.View(), "He is not supported by any listed method.")

	m = send(t, m, "b")
	assert.Equal(t, "", m.Highlighted(), "leaving the grid clears the highlight")
}

func TestGridCursorMovement(t *testing.T) {
	m := send(t, New(testService(t), nil), "e")

	m = send(t, m, "right")
	cur, _ := m.Cursor()
	assert.Equal(t, "He", cur.Symbol)

	m = send(t, m, "down")
	cur, _ = m.Cursor()
	assert.Equal(t, "Ne", cur.Symbol, "down keeps the closest column")

	m = send(t, m, "left")
	cur, _ = m.Cursor()
	assert.Equal(t, "C", cur.Symbol)

	m = send(t, m, "up")
	cur, _ = m.Cursor()
	assert.Equal(t, "He", cur.Symbol)

	m = send(t, m, "up")
	cur, _ = m.Cursor()
	assert.Equal(t, "He", cur.Symbol, "no row above")

	m = send(t, m, "left", "left", "left")
	cur, _ = m.Cursor()
	assert.Equal(t, "H", cur.Symbol, "stops at the first element")
}

func TestKeywordBrowsing(t *testing.T) {
	m := send(t, New(testService(t), nil), "k")

	kw, ok := m.CurrentKeyword()
	require.True(t, ok)
	assert.Equal(t, "1SCF", kw, "first sorted keyword is preselected")

	m = send(t, m, "down")
	kw, _ = m.CurrentKeyword()
	assert.Equal(t, "PRECISE", kw)
	view := m.View()
	assert.Contains(t, view, "Increases SCF precision.")
	assert.Contains(t, view, "Use with caution.")

	m = send(t, m, "down", "down", "down")
	kw, _ = m.CurrentKeyword()
	assert.Equal(t, "XYZ", kw, "cursor stops at the last keyword")

	m = send(t, m, "up")
	kw, _ = m.CurrentKeyword()
	assert.Equal(t, "PRECISE", kw)
}

func TestKeywordScrolling(t *testing.T) {
	m := send(t, New(testService(t), nil), "k")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 10})
	m = next.(Model)
	assert.Equal(t, 5, m.listHeight)

	m.listHeight = 2
	m = send(t, m, "down", "down")
	assert.Equal(t, 2, m.kwCursor)
	assert.Equal(t, 1, m.kwOffset)

	m = send(t, m, "home")
	assert.Equal(t, 0, m.kwOffset)
}

func TestDegradedViews(t *testing.T) {
	problems := []dataset.Problem{
		{Dataset: dataset.KindMethods, Path: "dados/methods_data.json", Err: errors.Mark(errors.New("gone"), dataset.ErrFileNotFound)},
	}
	m := New(lookup.New(nil, nil, nil), problems)
	assert.Contains(t, m.View(), "methods dataset unavailable (file not found): dados/methods_data.json")

	m = send(t, m, "e", "enter", "right")
	assert.Equal(t, ScreenElements, m.Screen())
	assert.Contains(t, m.View(), "Element or method data is not available.")
	_, ok := m.Cursor()
	assert.False(t, ok)

	m = send(t, m, "esc", "k", "down")
	assert.Contains(t, m.View(), "Keyword data is not available.")
	_, ok = m.CurrentKeyword()
	assert.False(t, ok)
}
