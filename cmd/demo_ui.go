package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bernd/droplist/dropdown"
	"github.com/bernd/droplist/metrics"
	"github.com/bernd/droplist/tui"
)

// demoChrome is the fixed lines around the option list: prompt, blank,
// field row, blank below the list, attribute line, blank, tally header.
const demoChrome = 7

// demoScreen shows the dropdown next to its accessibility projection and a
// live tally of recorded interactions. Commits flash instead of quitting.
type demoScreen struct {
	tui.Viewport
	ctrl     *dropdown.Controller
	tally    *metrics.Buffer
	lastPick *dropdown.Item
}

func newDemoScreen(ctrl *dropdown.Controller, tally *metrics.Buffer) *demoScreen {
	return &demoScreen{ctrl: ctrl, tally: tally}
}

func (s *demoScreen) Update(msg tea.Msg, w *tui.Window) (tui.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return s, tea.Quit
		}

		wasOpen := s.ctrl.Snapshot().Open
		if s.ctrl.HandleKey(msg) {
			snap := s.ctrl.Snapshot()
			// The tally below the list grows with each interaction, so the
			// option viewport must shrink without waiting for a resize.
			s.layout(w)
			if wasOpen && !snap.Open && !s.ctrl.Dismissed() && snap.Item != nil {
				s.lastPick = snap.Item
				w.SetFlash(fmt.Sprintf("picked %s", snap.Item.Label))
			}
		}

	case tea.WindowSizeMsg:
		s.layout(w)
	}

	return s, nil
}

// layout sizes the option viewport to the rows left over after the fixed
// chrome and the current tally, then keeps the highlight visible.
func (s *demoScreen) layout(w *tui.Window) {
	s.Height = max(w.VpHeight()-demoChrome-len(s.tallyLines()), 1)
	s.EnsureVisible(s.ctrl.Snapshot().Index)
}

func (s *demoScreen) View(w *tui.Window) string {
	snap := s.ctrl.Snapshot()

	var lines []string
	prompt := lipgloss.NewStyle().Foreground(tui.ColorField).
		Render("Browse the list. Watch the attributes move.")
	lines = append(lines, prompt, "", renderField(snap))

	if snap.Open {
		its := s.ctrl.Items()
		start, end := s.Clip(len(its))
		for i := start; i < end; i++ {
			lines = append(lines, renderItemLine(its[i], i == snap.Index))
		}
	}

	lines = append(lines, "", renderAttributes(s.ctrl.Describe()), "")
	lines = append(lines, s.tallyLines()...)

	for len(lines) < w.VpHeight() {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderAttributes shows the projected listbox attributes the way a screen
// reader would see them.
func renderAttributes(att dropdown.Attributes) string {
	keyStyle := lipgloss.NewStyle().Foreground(tui.ColorPurple)
	valStyle := lipgloss.NewStyle().Foreground(tui.ColorCyan)

	parts := []string{
		keyStyle.Render("role=") + valStyle.Render(att.Role),
		keyStyle.Render("expanded=") + valStyle.Render(fmt.Sprintf("%t", att.Expanded)),
	}
	if att.ActiveDescendant != "" {
		parts = append(parts, keyStyle.Render("active=")+valStyle.Render(att.ActiveDescendant))
	}
	return strings.Join(parts, " ")
}

func (s *demoScreen) tallyLines() []string {
	summaries := s.tally.Summaries()
	if len(summaries) == 0 {
		return nil
	}

	nameStyle := lipgloss.NewStyle().Foreground(tui.ColorField)
	countStyle := lipgloss.NewStyle().Foreground(tui.ColorOrange)

	lines := make([]string, 0, len(summaries)+1)
	lines = append(lines, lipgloss.NewStyle().Foreground(tui.ColorField).Render("interactions"))
	for _, sum := range summaries {
		lines = append(lines, fmt.Sprintf("  %s %s",
			nameStyle.Render(fmt.Sprintf("%-12s", sum.Name)),
			countStyle.Render(fmt.Sprintf("%d", sum.Count))))
	}
	return lines
}

func (s *demoScreen) FooterKeys(w *tui.Window) []tui.FooterKey {
	keys := []tui.FooterKey{
		{Key: "enter", Desc: "toggle/select"},
		{Key: "↑/↓", Desc: "navigate"},
		{Key: "esc", Desc: "dismiss"},
	}
	return keys
}

func (s *demoScreen) FooterStatus(w *tui.Window) string {
	return fmt.Sprintf("%d interactions", s.tally.Total())
}
