package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bernd/droplist/dropdown"
	"github.com/bernd/droplist/tui"
)

// fieldChrome is the number of lines above the option list: prompt, blank,
// field row, blank.
const fieldChrome = 4

// pickScreen implements tui.Screen for a one-shot selection. Committing a
// value stores it and quits; q or ctrl+c quits without one.
type pickScreen struct {
	tui.Viewport
	ctrl     *dropdown.Controller
	prompt   string
	selected *dropdown.Item
}

func newPickScreen(ctrl *dropdown.Controller, prompt string) *pickScreen {
	return &pickScreen{ctrl: ctrl, prompt: prompt}
}

func (s *pickScreen) Update(msg tea.Msg, w *tui.Window) (tui.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return s, tea.Quit
		}

		wasOpen := s.ctrl.Snapshot().Open
		if s.ctrl.HandleKey(msg) {
			snap := s.ctrl.Snapshot()
			s.EnsureVisible(snap.Index)
			if wasOpen && !snap.Open && !s.ctrl.Dismissed() && snap.Item != nil {
				s.selected = snap.Item
				return s, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		s.Height = max(w.VpHeight()-fieldChrome, 1)
		s.EnsureVisible(s.ctrl.Snapshot().Index)
	}

	return s, nil
}

func (s *pickScreen) View(w *tui.Window) string {
	snap := s.ctrl.Snapshot()

	var lines []string
	prompt := lipgloss.NewStyle().Foreground(tui.ColorField).Render(s.prompt)
	lines = append(lines, prompt, "", renderField(snap), "")

	if snap.Open {
		its := s.ctrl.Items()
		start, end := s.Clip(len(its))
		for i := start; i < end; i++ {
			lines = append(lines, renderItemLine(its[i], i == snap.Index))
		}
	}
	for len(lines) < w.VpHeight() {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// renderField draws the collapsed select box: the committed label (or a
// placeholder) plus an expansion indicator.
func renderField(snap dropdown.Snapshot) string {
	arrow := "▸"
	if snap.Open {
		arrow = "▾"
	}
	label := "…"
	style := lipgloss.NewStyle().Foreground(tui.ColorField)
	if snap.Item != nil {
		label = snap.Item.Label
		style = lipgloss.NewStyle().Foreground(tui.ColorCyan)
	}
	box := lipgloss.NewStyle().Foreground(tui.ColorOrange).Render("[ ") +
		style.Render(label) +
		lipgloss.NewStyle().Foreground(tui.ColorOrange).Render(" ]")
	return box + " " + lipgloss.NewStyle().Foreground(tui.ColorField).Render(arrow)
}

func renderItemLine(it dropdown.Item, highlighted bool) string {
	base, marker := tui.LineStyle(highlighted)

	label := base.Foreground(tui.ColorCyan).Render(fmt.Sprintf("%-24s", it.Label))
	value := base.Foreground(tui.ColorField).Render(it.Val())
	sp := base.Render(" ")

	return marker + label + sp + value
}

func (s *pickScreen) FooterKeys(w *tui.Window) []tui.FooterKey {
	snap := s.ctrl.Snapshot()
	if !snap.Open {
		return []tui.FooterKey{
			{Key: "enter", Desc: "open"},
		}
	}
	return []tui.FooterKey{
		{Key: "enter", Desc: "select"},
		{Key: "↑/↓", Desc: "navigate"},
		{Key: "esc", Desc: "close"},
	}
}

func (s *pickScreen) FooterStatus(w *tui.Window) string {
	return fmt.Sprintf("%d items", len(s.ctrl.Items()))
}
