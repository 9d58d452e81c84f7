package dropdown

// Item is one entry in the selectable collection. Label is what the user
// sees; Value is what a commit reports. An empty Value falls back to Label.
type Item struct {
	Label string
	Value string
}

// Val returns the item's value, falling back to the label.
func (it Item) Val() string {
	if it.Value == "" {
		return it.Label
	}
	return it.Value
}

// NoSelection is the Index value meaning nothing has been highlighted yet.
const NoSelection = -1

// State holds the mutable selection state of one dropdown instance.
//
// Index serves double duty: it is the highlight while browsing with the
// arrow keys AND the committed selection after Commit. Browsing therefore
// visibly changes what Describe reports as the active item before anything
// is committed. That conflation is deliberate and part of the contract.
type State struct {
	Open  bool
	Index int   // NoSelection or a valid index into the item collection
	Item  *Item // non-nil exactly when Index != NoSelection

	items []Item
}

// NewState returns a closed, unselected state over items. The collection is
// referenced, not copied, and must not change for the life of the state.
func NewState(items []Item) *State {
	return &State{Index: NoSelection, items: items}
}

// Len returns the number of items in the collection.
func (s *State) Len() int { return len(s.items) }

// Items returns the backing collection.
func (s *State) Items() []Item { return s.items }

// ToggleOpen flips the open flag. Selection is untouched.
func (s *State) ToggleOpen() { s.Open = !s.Open }

// Close forces the list closed without altering selection. Idempotent.
func (s *State) Close() { s.Open = false }

// MoveNext advances the highlight by one, wrapping at the end. The first
// move from NoSelection lands on index 0. Does not change Open or Item.
func (s *State) MoveNext() {
	if len(s.items) == 0 {
		return
	}
	if s.Index == NoSelection {
		s.Index = 0
		return
	}
	s.Index = NextIndex(len(s.items), s.Index)
}

// MovePrev moves the highlight back by one, wrapping at the start. From
// NoSelection it behaves as if starting at 0, so it wraps to the last item.
func (s *State) MovePrev() {
	if len(s.items) == 0 {
		return
	}
	if s.Index == NoSelection {
		s.Index = len(s.items) - 1
		return
	}
	s.Index = PrevIndex(len(s.items), s.Index)
}

// MoveFirst highlights the first item.
func (s *State) MoveFirst() {
	if len(s.items) == 0 {
		return
	}
	s.Index = 0
}

// MoveLast highlights the last item.
func (s *State) MoveLast() {
	if len(s.items) == 0 {
		return
	}
	s.Index = len(s.items) - 1
}

// Commit selects the item at i and closes the list. This is the only
// operation that closes as a side effect. An out-of-range index can only
// come from a caller bug; it is ignored rather than surfaced.
func (s *State) Commit(i int) {
	if i < 0 || i >= len(s.items) {
		return
	}
	s.Index = i
	s.Item = &s.items[i]
	s.Open = false
}

// SelectItem commits the first item whose label and value match it. Used
// for the pointer path where the caller has an item, not an index.
func (s *State) SelectItem(it Item) {
	for i := range s.items {
		if s.items[i] == it {
			s.Commit(i)
			return
		}
	}
}
