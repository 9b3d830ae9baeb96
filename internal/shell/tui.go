// Package shell implements the three-screen navigation (home, elements,
// keywords) and the terminal front end built on it.
//
// # Thread Safety
//
// Model is used only inside the bubbletea event loop. The lookup.Service it
// reads from is immutable.
package shell

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/poku-e/MopacAssistant/internal/dataset"
	"github.com/poku-e/MopacAssistant/internal/lookup"
)

const (
	title         = "MOPAC Assistant"
	subtitle      = "Your Guide to Computational Chemistry Keywords and Elements"
	elementsTitle = "Supported Elements by MOPAC Methods"
	keywordsTitle = "MOPAC Keywords Reference"
	elementPrompt = "Select an element to see its supported methods."

	defaultListHeight = 20
	descriptionWidth  = 64
)

var homeOptions = []struct {
	label string
	event Event
}{
	{"Explore Keywords", EventShowKeywords},
	{"View Supported Elements", EventShowElements},
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c2185b"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8d6e63"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#e91e63"))
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#e91e63")).Padding(0, 1)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#d84315"))
	cellStyle     = lipgloss.NewStyle().Width(4).Align(lipgloss.Center).Foreground(lipgloss.Color("#333333"))
)

// Model is the bubbletea model for the terminal shell.
type Model struct {
	svc      *lookup.Service
	problems []dataset.Problem
	screen   Screen

	homeCursor int

	// placed holds every element on the grid, ordered by row then column.
	placed    []dataset.Element
	elemAt    int
	highlight string
	report    *lookup.Report

	keywords   []string
	kwCursor   int
	kwOffset   int
	listHeight int

	width    int
	height   int
	quitting bool
}

// New builds the model. problems are shown on the home screen.
func New(svc *lookup.Service, problems []dataset.Problem) Model {
	m := Model{
		svc:        svc,
		problems:   problems,
		screen:     ScreenHome,
		keywords:   svc.Keywords(),
		listHeight: defaultListHeight,
	}
	if d := svc.Directory(); d != nil {
		rows, cols := d.Bounds()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if e, ok := d.At(r, c); ok {
					m.placed = append(m.placed, e)
				}
			}
		}
	}
	return m
}

// Run starts the terminal shell and blocks until the user quits.
func Run(svc *lookup.Service, problems []dataset.Problem) error {
	_, err := tea.NewProgram(New(svc, problems), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Screen() Screen { return m.screen }

// Highlighted is the symbol of the selected element, "" when none.
func (m Model) Highlighted() string { return m.highlight }

// Cursor is the element under the grid cursor.
func (m Model) Cursor() (dataset.Element, bool) {
	if len(m.placed) == 0 {
		return dataset.Element{}, false
	}
	return m.placed[m.elemAt], true
}

// CurrentKeyword is the keyword under the list cursor.
func (m Model) CurrentKeyword() (string, bool) {
	if len(m.keywords) == 0 {
		return "", false
	}
	return m.keywords[m.kwCursor], true
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.listHeight = max(5, msg.Height-8)
		m.scrollKeywords()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		}
		switch m.screen {
		case ScreenHome:
			return m.updateHome(msg)
		case ScreenElements:
			return m.updateElements(msg)
		case ScreenKeywords:
			return m.updateKeywords(msg)
		}
	}
	return m, nil
}

func (m Model) navigate(ev Event) Model {
	next := m.screen.Next(ev)
	if next == ScreenHome && m.screen == ScreenElements {
		m.highlight = ""
		m.report = nil
	}
	m.screen = next
	return m
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if m.homeCursor > 0 {
			m.homeCursor--
		}
	case "down", "tab":
		if m.homeCursor < len(homeOptions)-1 {
			m.homeCursor++
		}
	case "enter":
		return m.navigate(homeOptions[m.homeCursor].event), nil
	case "k":
		return m.navigate(EventShowKeywords), nil
	case "e":
		return m.navigate(EventShowElements), nil
	}
	return m, nil
}

func (m Model) updateElements(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		return m.navigate(EventBack), nil
	}
	if len(m.placed) == 0 {
		return m, nil
	}
	switch msg.String() {
	case "left":
		if m.elemAt > 0 {
			m.elemAt--
		}
	case "right":
		if m.elemAt < len(m.placed)-1 {
			m.elemAt++
		}
	case "up":
		m.elemAt = m.vertical(-1)
	case "down":
		m.elemAt = m.vertical(1)
	case "enter", " ":
		m = m.selectElement(m.placed[m.elemAt].Symbol)
	}
	return m, nil
}

// selectElement highlights symbol alone and computes its report.
func (m Model) selectElement(symbol string) Model {
	r := m.svc.Describe(symbol)
	m.highlight = symbol
	m.report = &r
	return m
}

// vertical finds the element in the nearest populated row in direction dir,
// closest by column to the cursor.
func (m Model) vertical(dir int) int {
	cur := m.placed[m.elemAt]
	rows := map[int][]int{}
	for i, e := range m.placed {
		rows[e.Row] = append(rows[e.Row], i)
	}
	var candidates []int
	for r := range rows {
		if (dir < 0 && r < cur.Row) || (dir > 0 && r > cur.Row) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return m.elemAt
	}
	sort.Ints(candidates)
	target := candidates[0]
	if dir < 0 {
		target = candidates[len(candidates)-1]
	}
	best := rows[target][0]
	for _, i := range rows[target] {
		if abs(m.placed[i].Col-cur.Col) < abs(m.placed[best].Col-cur.Col) {
			best = i
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (m Model) updateKeywords(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		return m.navigate(EventBack), nil
	case "up":
		if m.kwCursor > 0 {
			m.kwCursor--
		}
	case "down":
		if m.kwCursor < len(m.keywords)-1 {
			m.kwCursor++
		}
	case "pgup":
		m.kwCursor = max(0, m.kwCursor-m.listHeight)
	case "pgdown":
		m.kwCursor = max(0, min(len(m.keywords)-1, m.kwCursor+m.listHeight))
	case "home":
		m.kwCursor = 0
	case "end":
		m.kwCursor = max(0, len(m.keywords)-1)
	}
	m.scrollKeywords()
	return m, nil
}

func (m *Model) scrollKeywords() {
	if m.kwCursor < m.kwOffset {
		m.kwOffset = m.kwCursor
	}
	if m.kwCursor >= m.kwOffset+m.listHeight {
		m.kwOffset = m.kwCursor - m.listHeight + 1
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var body string
	switch m.screen {
	case ScreenElements:
		body = m.viewElements()
	case ScreenKeywords:
		body = m.viewKeywords()
	default:
		body = m.viewHome()
	}
	return body + "\n"
}

func (m Model) viewHome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(subtleStyle.Render(subtitle) + "\n\n")
	for i, opt := range homeOptions {
		line := "  " + opt.label + "  "
		if i == m.homeCursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	for _, p := range m.problems {
		b.WriteString("\n" + warnStyle.Render(fmt.Sprintf("%s dataset unavailable (%s): %s", p.Dataset, p.Reason(), p.Path)))
	}
	b.WriteString("\n\n" + subtleStyle.Render("↑/↓ move • enter open • k keywords • e elements • q quit"))
	return b.String()
}

func (m Model) viewElements() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(elementsTitle) + "\n\n")

	d := m.svc.Directory()
	if d == nil || len(m.placed) == 0 || !m.svc.HasMethods() {
		b.WriteString(warnStyle.Render("Element or method data is not available.") + "\n")
		b.WriteString("\n" + subtleStyle.Render("esc back • q quit"))
		return b.String()
	}

	cursor := m.placed[m.elemAt].Symbol
	rows, cols := d.Bounds()
	for r := 0; r < rows; r++ {
		var line strings.Builder
		for c := 0; c < cols; c++ {
			e, ok := d.At(r, c)
			if !ok {
				line.WriteString(cellStyle.Render(""))
				continue
			}
			st := cellStyle.Background(lipgloss.Color(e.Color()))
			if e.Symbol == m.highlight {
				st = st.Bold(true).Reverse(true)
			}
			if e.Symbol == cursor {
				st = st.Bold(true).Underline(true)
			}
			line.WriteString(st.Render(e.Symbol))
		}
		b.WriteString(line.String() + "\n")
	}

	b.WriteString("\n" + m.legend() + "\n")

	out := elementPrompt
	if m.report != nil {
		out = m.report.String()
	}
	b.WriteString(panelStyle.Render(out) + "\n")
	b.WriteString(subtleStyle.Render("←/→/↑/↓ move • enter select • esc back • q quit"))
	return b.String()
}

func (m Model) legend() string {
	parts := make([]string, 0, len(dataset.Groups()))
	for _, g := range dataset.Groups() {
		swatch := lipgloss.NewStyle().Background(lipgloss.Color(g.Color())).Render("  ")
		parts = append(parts, swatch+" "+g.Label())
	}
	return strings.Join(parts, "  ")
}

func (m Model) viewKeywords() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(keywordsTitle) + "\n\n")

	if len(m.keywords) == 0 {
		b.WriteString(warnStyle.Render("Keyword data is not available.") + "\n")
		b.WriteString("\n" + subtleStyle.Render("esc back • q quit"))
		return b.String()
	}

	end := min(len(m.keywords), m.kwOffset+m.listHeight)
	var list strings.Builder
	for i := m.kwOffset; i < end; i++ {
		k := m.keywords[i]
		if i == m.kwCursor {
			k = selectedStyle.Render(k)
		}
		list.WriteString(k + "\n")
	}

	kw := m.keywords[m.kwCursor]
	desc := strings.Join(m.svc.DescriptionLines(kw), "\n")
	right := panelStyle.Width(descriptionWidth).Render(titleStyle.Render(kw) + "\n\n" + desc)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panelStyle.Render(strings.TrimRight(list.String(), "\n")), "  ", right))
	b.WriteString("\n" + subtleStyle.Render(fmt.Sprintf("%d/%d • ↑/↓ move • esc back • q quit", m.kwCursor+1, len(m.keywords))))
	return b.String()
}
