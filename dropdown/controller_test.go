package dropdown

import (
	"testing"

	"github.com/bernd/droplist/metrics"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestController_EnterOpensWhenClosed(t *testing.T) {
	c := NewController(fruitItems(), nil)

	handled := c.HandleKey(keyMsg("enter"))
	assert.True(t, handled)
	assert.True(t, c.Snapshot().Open)
	assert.Equal(t, NoSelection, c.Snapshot().Index)
}

func TestController_EnterCommitsHighlight(t *testing.T) {
	c := NewController(fruitItems(), nil)

	c.HandleKey(keyMsg("enter"))
	c.HandleKey(keyMsg("down"))
	c.HandleKey(keyMsg("enter"))

	snap := c.Snapshot()
	assert.False(t, snap.Open)
	require.NotNil(t, snap.Item)
	assert.Equal(t, "Apple", snap.Item.Label)
	assert.Equal(t, 0, snap.Index)
}

func TestController_SpaceActsLikeEnter(t *testing.T) {
	c := NewController(fruitItems(), nil)

	c.HandleKey(keyMsg("space"))
	assert.True(t, c.Snapshot().Open)

	c.HandleKey(keyMsg("down"))
	c.HandleKey(keyMsg("space"))
	snap := c.Snapshot()
	assert.False(t, snap.Open)
	require.NotNil(t, snap.Item)
	assert.Equal(t, "Apple", snap.Item.Label)
}

func TestController_ArrowsDoNotOpen(t *testing.T) {
	c := NewController(fruitItems(), nil)

	c.HandleKey(keyMsg("down"))
	assert.False(t, c.Snapshot().Open, "arrow keys move the highlight but never open the list")
	assert.Equal(t, 0, c.Snapshot().Index)
}

func TestController_HomeEnd(t *testing.T) {
	c := NewController(fruitItems(), nil)

	c.HandleKey(keyMsg("end"))
	assert.Equal(t, 2, c.Snapshot().Index)

	c.HandleKey(keyMsg("home"))
	assert.Equal(t, 0, c.Snapshot().Index)
}

func TestController_EscDismisses(t *testing.T) {
	c := NewController(fruitItems(), nil)
	c.HandleKey(keyMsg("enter"))
	c.HandleKey(keyMsg("down"))

	handled := c.HandleKey(keyMsg("esc"))
	assert.True(t, handled)
	assert.False(t, c.Snapshot().Open)
	assert.True(t, c.Dismissed())
	assert.Equal(t, 0, c.Snapshot().Index, "dismiss keeps the highlight")

	c.HandleKey(keyMsg("down"))
	assert.False(t, c.Dismissed(), "dismiss flag resets on the next key")
}

func TestController_UnknownKeyUnhandled(t *testing.T) {
	c := NewController(fruitItems(), nil)

	handled := c.HandleKey(keyMsg("x"))
	assert.False(t, handled)

	snap := c.Snapshot()
	assert.False(t, snap.Open)
	assert.Equal(t, NoSelection, snap.Index)
}

func TestController_Click(t *testing.T) {
	items := fruitItems()
	c := NewController(items, nil)
	c.HandleKey(keyMsg("enter"))

	c.Click(items[2])
	snap := c.Snapshot()
	assert.False(t, snap.Open)
	require.NotNil(t, snap.Item)
	assert.Equal(t, "Banana", snap.Item.Label)
}

func TestController_EmptyCollection(t *testing.T) {
	c := NewController(nil, nil)

	c.HandleKey(keyMsg("down"))
	c.HandleKey(keyMsg("up"))
	c.HandleKey(keyMsg("enter"))

	snap := c.Snapshot()
	assert.Equal(t, NoSelection, snap.Index)
	assert.Nil(t, snap.Item)
	assert.True(t, snap.Open, "enter still toggles an empty list open")
}

func TestController_RecordsInteractions(t *testing.T) {
	buf := metrics.NewBuffer()
	c := NewController(fruitItems(), buf)

	c.HandleKey(keyMsg("enter")) // toggle
	c.HandleKey(keyMsg("down"))  // key.next
	c.HandleKey(keyMsg("down"))  // key.next
	c.HandleKey(keyMsg("enter")) // commit
	c.HandleKey(keyMsg("esc"))   // dismiss
	c.HandleKey(keyMsg("x"))     // unhandled, not recorded

	got := make(map[string]uint64)
	for _, s := range buf.Summaries() {
		got[s.Name] = s.Count
	}
	assert.Equal(t, map[string]uint64{
		"toggle":   1,
		"key.next": 2,
		"commit":   1,
		"dismiss":  1,
	}, got)
}

func TestController_CustomKeyMap(t *testing.T) {
	c := NewController(fruitItems(), nil)
	k := DefaultKeyMap()
	k.Next.SetKeys("j")
	c.SetKeyMap(k)

	assert.True(t, c.HandleKey(keyMsg("j")))
	assert.Equal(t, 0, c.Snapshot().Index)
	assert.False(t, c.HandleKey(keyMsg("down")), "replaced binding no longer matches")
}
