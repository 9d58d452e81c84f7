// Package dropdown implements the interaction state machine for a
// keyboard-navigable single-select list: open/close state, wrap-around
// highlight movement, commit semantics, and accessibility projection.
// Rendering stays with the caller; the controller only consumes key
// messages and exposes state.
package dropdown

import (
	"github.com/bernd/droplist/metrics"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Snapshot is the read-only view of a controller's state handed to the
// presentation layer.
type Snapshot struct {
	Open  bool
	Index int
	Item  *Item
}

// Controller wires a KeyMap to a State and reports interactions to a
// metrics sink. One controller owns one State; instances share nothing.
type Controller struct {
	state     *State
	keys      KeyMap
	sink      metrics.Sink
	dismissed bool
}

// NewController returns a controller over items with the default keymap.
// A nil sink disables measurement.
func NewController(items []Item, sink metrics.Sink) *Controller {
	if sink == nil {
		sink = metrics.Nop{}
	}
	return &Controller{
		state: NewState(items),
		keys:  DefaultKeyMap(),
		sink:  sink,
	}
}

// SetKeyMap replaces the keybindings.
func (c *Controller) SetKeyMap(k KeyMap) { c.keys = k }

// KeyMap returns the active keybindings.
func (c *Controller) KeyMap() KeyMap { return c.keys }

// Snapshot returns the current selection state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Open: c.state.Open, Index: c.state.Index, Item: c.state.Item}
}

// Items returns the backing collection.
func (c *Controller) Items() []Item { return c.state.Items() }

// Describe projects the accessibility attributes for the current state.
func (c *Controller) Describe() Attributes { return Describe(c.state) }

// Dismissed reports whether the last handled key was a dismiss. The
// presentation layer uses it to release focus; it resets on the next key.
func (c *Controller) Dismissed() bool { return c.dismissed }

// HandleKey applies one key message to the state machine. It returns true
// if the key was consumed. Keys outside the map are left for the caller.
func (c *Controller) HandleKey(msg tea.KeyMsg) bool {
	c.dismissed = false

	switch {
	case key.Matches(msg, c.keys.Next):
		c.state.MoveNext()
		c.sink.Record("key.next", 1)
	case key.Matches(msg, c.keys.Prev):
		c.state.MovePrev()
		c.sink.Record("key.prev", 1)
	case key.Matches(msg, c.keys.First):
		c.state.MoveFirst()
		c.sink.Record("key.first", 1)
	case key.Matches(msg, c.keys.Last):
		c.state.MoveLast()
		c.sink.Record("key.last", 1)
	case key.Matches(msg, c.keys.Commit):
		if c.state.Open && c.state.Index != NoSelection {
			c.state.Commit(c.state.Index)
			c.sink.Record("commit", 1)
		} else {
			c.state.ToggleOpen()
			c.sink.Record("toggle", 1)
		}
	case key.Matches(msg, c.keys.Dismiss):
		c.state.Close()
		c.dismissed = true
		c.sink.Record("dismiss", 1)
	default:
		return false
	}
	return true
}

// Click commits the given item directly, as a pointer selection would.
func (c *Controller) Click(it Item) {
	c.state.SelectItem(it)
	c.sink.Record("click", 1)
}
