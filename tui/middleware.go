package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bernd/droplist/metrics"
)

// Middleware wraps a Screen with extra behavior while keeping the Screen
// shape, so wrappers compose like any other screen.
type Middleware func(Screen) Screen

// Chain applies middlewares to s in order; the last one listed becomes the
// outermost wrapper and sees messages first.
func Chain(s Screen, mws ...Middleware) Screen {
	for _, mw := range mws {
		s = mw(s)
	}
	return s
}

// WithMetrics counts every key message reaching the wrapped screen under
// the "screen.key" series.
func WithMetrics(sink metrics.Sink) Middleware {
	return func(inner Screen) Screen {
		return &metricsScreen{inner: inner, sink: sink}
	}
}

type metricsScreen struct {
	inner Screen
	sink  metrics.Sink
}

func (m *metricsScreen) Update(msg tea.Msg, w *Window) (Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		m.sink.Record("screen.key", 1)
	}
	next, cmd := m.inner.Update(msg, w)
	m.inner = next
	return m, cmd
}

func (m *metricsScreen) View(w *Window) string            { return m.inner.View(w) }
func (m *metricsScreen) FooterKeys(w *Window) []FooterKey { return m.inner.FooterKeys(w) }
func (m *metricsScreen) FooterStatus(w *Window) string    { return m.inner.FooterStatus(w) }

// WithAutoDismiss forwards an escape key to the wrapped screen after
// idleTicks tick messages pass without any key input. Screens that close on
// escape get auto-close behavior without knowing about timers.
func WithAutoDismiss(idleTicks int) Middleware {
	return func(inner Screen) Screen {
		return &autoDismissScreen{inner: inner, idleTicks: idleTicks}
	}
}

type autoDismissScreen struct {
	inner     Screen
	idleTicks int
	idle      int
}

func (a *autoDismissScreen) Update(msg tea.Msg, w *Window) (Screen, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case tea.KeyMsg:
		a.idle = 0
	case TickMsg:
		a.idle++
		if a.idle == a.idleTicks {
			next, cmd := a.inner.Update(tea.KeyMsg{Type: tea.KeyEsc}, w)
			a.inner = next
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	next, cmd := a.inner.Update(msg, w)
	a.inner = next
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a *autoDismissScreen) View(w *Window) string            { return a.inner.View(w) }
func (a *autoDismissScreen) FooterKeys(w *Window) []FooterKey { return a.inner.FooterKeys(w) }
func (a *autoDismissScreen) FooterStatus(w *Window) string    { return a.inner.FooterStatus(w) }

// WithToggleKey hides and shows the wrapped screen with a single key. While
// hidden, the screen renders nothing and all keys except the quit keys are
// swallowed.
func WithToggleKey(k string) Middleware {
	return func(inner Screen) Screen {
		return &toggleScreen{inner: inner, key: k}
	}
}

type toggleScreen struct {
	inner  Screen
	key    string
	hidden bool
}

func (t *toggleScreen) Update(msg tea.Msg, w *Window) (Screen, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		if km.String() == t.key {
			t.hidden = !t.hidden
			return t, nil
		}
		if t.hidden {
			switch km.String() {
			case "q", "ctrl+c":
				// Quitting must stay possible while hidden.
			default:
				return t, nil
			}
		}
	}

	next, cmd := t.inner.Update(msg, w)
	t.inner = next
	return t, cmd
}

func (t *toggleScreen) View(w *Window) string {
	if t.hidden {
		return ""
	}
	return t.inner.View(w)
}

func (t *toggleScreen) FooterKeys(w *Window) []FooterKey {
	if t.hidden {
		return []FooterKey{{Key: t.key, Desc: "show"}}
	}
	return append(t.inner.FooterKeys(w), FooterKey{Key: t.key, Desc: "hide"})
}

func (t *toggleScreen) FooterStatus(w *Window) string {
	if t.hidden {
		return ""
	}
	return t.inner.FooterStatus(w)
}
