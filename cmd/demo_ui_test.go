package cmd

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bernd/droplist/dropdown"
	"github.com/bernd/droplist/metrics"
	"github.com/bernd/droplist/tui"
)

func makeDemoSetup(t *testing.T) (*demoScreen, *tui.Window, *metrics.Buffer) {
	t.Helper()
	buf := metrics.NewBuffer()
	ctrl := dropdown.NewController(testItems(), buf)
	s := newDemoScreen(ctrl, buf)
	header := &tui.HeaderInfo{Source: "demo", SessionID: "abc123"}
	w := tui.NewWindow(header, s)
	w.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return s, w, buf
}

func TestDemoScreen_CommitFlashesAndStays(t *testing.T) {
	s, w, _ := makeDemoSetup(t)

	s.Update(tea.KeyMsg{Type: tea.KeyEnter}, w)
	s.Update(tea.KeyMsg{Type: tea.KeyDown}, w)
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter}, w)

	assert.Nil(t, cmd, "demo commit should not quit")
	assert.Equal(t, "picked Apple", w.Flash())
	assert.False(t, s.ctrl.Snapshot().Open)
}

func TestDemoScreen_TallyAppearsInView(t *testing.T) {
	s, w, buf := makeDemoSetup(t)

	view := w.View()
	assert.NotContains(t, view, "interactions\n", "no tally before any interaction")

	s.Update(tea.KeyMsg{Type: tea.KeyEnter}, w)
	s.Update(tea.KeyMsg{Type: tea.KeyDown}, w)

	view = w.View()
	assert.Contains(t, view, "toggle")
	assert.Contains(t, view, "key.next")
	assert.Equal(t, uint64(2), buf.Total())
}

func TestDemoScreen_ShowsAttributes(t *testing.T) {
	s, w, _ := makeDemoSetup(t)

	view := w.View()
	assert.Contains(t, view, "role=")
	assert.Contains(t, view, "listbox")
	assert.Contains(t, view, "expanded=")
	assert.Contains(t, view, "false")

	s.Update(tea.KeyMsg{Type: tea.KeyEnter}, w)
	s.Update(tea.KeyMsg{Type: tea.KeyDown}, w)

	view = w.View()
	assert.Contains(t, view, "true")
	assert.Contains(t, view, "active=")
	assert.Contains(t, view, "Apple")
}

func TestDemoScreen_CommitRecordsLastPick(t *testing.T) {
	s, w, _ := makeDemoSetup(t)

	assert.Nil(t, s.lastPick)
	s.Update(tea.KeyMsg{Type: tea.KeyEnter}, w)
	s.Update(tea.KeyMsg{Type: tea.KeyDown}, w)
	s.Update(tea.KeyMsg{Type: tea.KeyEnter}, w)

	require.NotNil(t, s.lastPick)
	assert.Equal(t, "Apple", s.lastPick.Label)
}

func TestDemoScreen_ViewportShrinksWithTally(t *testing.T) {
	s, w, _ := makeDemoSetup(t)
	before := s.Height

	// Two interactions produce two tally series plus the tally header.
	s.Update(tea.KeyMsg{Type: tea.KeyEnter}, w)
	s.Update(tea.KeyMsg{Type: tea.KeyDown}, w)

	assert.Equal(t, before-3, s.Height,
		"option rows must yield to the growing tally without a resize")
	assert.Equal(t, max(w.VpHeight()-demoChrome-len(s.tallyLines()), 1), s.Height)
}

func TestDemoScreen_QuitKeys(t *testing.T) {
	s, w, _ := makeDemoSetup(t)

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, w)
	require.NotNil(t, cmd)

	s, w, _ = makeDemoSetup(t)
	_, cmd = s.Update(tea.KeyMsg{Type: tea.KeyCtrlC}, w)
	require.NotNil(t, cmd)
}

func TestDemoScreen_Footer(t *testing.T) {
	s, w, _ := makeDemoSetup(t)

	descs := footerKeyDescs(s.FooterKeys(w))
	assert.Contains(t, descs, "toggle/select")
	assert.Contains(t, descs, "dismiss")

	assert.Equal(t, "0 interactions", s.FooterStatus(w))
	s.Update(tea.KeyMsg{Type: tea.KeyEnter}, w)
	assert.Equal(t, "1 interactions", s.FooterStatus(w))
}

func TestRenderAttributes(t *testing.T) {
	att := dropdown.Attributes{Role: "listbox", Expanded: true, ActiveDescendant: "Orange"}
	out := renderAttributes(att)

	assert.Contains(t, out, "role=")
	assert.Contains(t, out, "listbox")
	assert.Contains(t, out, "expanded=")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "Orange")
}
