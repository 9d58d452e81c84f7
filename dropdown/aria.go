package dropdown

// Attributes is the accessibility projection of a selection state, shaped
// after the ARIA listbox pattern. Screen reader integrations and tests read
// it instead of poking at State directly.
type Attributes struct {
	Role             string
	Expanded         bool
	ActiveDescendant string
}

// Describe derives the attributes for s. Pure; no side effects.
// ActiveDescendant tracks the highlight, so browsing with the arrow keys
// changes it before any commit (see the State doc for the conflation).
func Describe(s *State) Attributes {
	a := Attributes{Role: "listbox", Expanded: s.Open}
	if s.Index != NoSelection && s.Index < s.Len() {
		a.ActiveDescendant = s.Items()[s.Index].Label
	}
	return a
}
