package shell

// Screen is the view currently shown by a shell.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenElements
	ScreenKeywords
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenElements:
		return "elements"
	case ScreenKeywords:
		return "keywords"
	}
	return "unknown"
}

// Event is a navigation request.
type Event int

const (
	EventShowElements Event = iota
	EventShowKeywords
	EventBack
)

// Next applies ev. Home opens either view and either view goes back home;
// anything else leaves the screen unchanged.
func (s Screen) Next(ev Event) Screen {
	switch {
	case s == ScreenHome && ev == EventShowElements:
		return ScreenElements
	case s == ScreenHome && ev == EventShowKeywords:
		return ScreenKeywords
	case s != ScreenHome && ev == EventBack:
		return ScreenHome
	}
	return s
}
