package dataset

// Group is a periodic-table category. Values are the identifiers used in
// elements.json.
type Group string

const (
	GroupAlkali         Group = "metais-alcalinos"
	GroupAlkalineEarth  Group = "metais-alcalino-terrosos"
	GroupTransition     Group = "metais-de-transicao"
	GroupLanthanide     Group = "lantanideos"
	GroupActinide       Group = "actinideos"
	GroupPostTransition Group = "outros-metais"
	GroupMetalloid      Group = "semimetais"
	GroupNonmetal       Group = "nao-metais"
	GroupHalogen        Group = "halogenios"
	GroupNobleGas       Group = "gases-nobres"
	GroupUnknown        Group = "unknown"
)

type groupInfo struct {
	label string
	color string
}

var groupTable = map[Group]groupInfo{
	GroupAlkali:         {"Alkali metals", "#ff6666"},
	GroupAlkalineEarth:  {"Alkaline earth metals", "#ffdead"},
	GroupTransition:     {"Transition metals", "#ffc0c0"},
	GroupLanthanide:     {"Lanthanides", "#ffbfff"},
	GroupActinide:       {"Actinides", "#ff99cc"},
	GroupPostTransition: {"Post-transition metals", "#cccc99"},
	GroupMetalloid:      {"Metalloids", "#c0a060"},
	GroupNonmetal:       {"Nonmetals", "#a0ffa0"},
	GroupHalogen:        {"Halogens", "#c0ffc0"},
	GroupNobleGas:       {"Noble gases", "#c0ffff"},
	GroupUnknown:        {"Unknown", "#e0e0e0"},
}

var groupOrder = []Group{
	GroupAlkali, GroupAlkalineEarth, GroupTransition, GroupLanthanide,
	GroupActinide, GroupPostTransition, GroupMetalloid, GroupNonmetal,
	GroupHalogen, GroupNobleGas, GroupUnknown,
}

// Groups lists every group in legend order, GroupUnknown last.
func Groups() []Group {
	out := make([]Group, len(groupOrder))
	copy(out, groupOrder)
	return out
}

// Known reports whether g is one of the enumerated groups.
func (g Group) Known() bool {
	_, ok := groupTable[g]
	return ok && g != GroupUnknown
}

// Normalize maps anything outside the table to GroupUnknown.
func (g Group) Normalize() Group {
	if g.Known() {
		return g
	}
	return GroupUnknown
}

// Color is total: groups outside the table get the unknown color.
func (g Group) Color() string {
	return groupTable[g.Normalize()].color
}

func (g Group) Label() string {
	return groupTable[g.Normalize()].label
}
