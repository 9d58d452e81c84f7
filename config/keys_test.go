package config

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"

	"github.com/bernd/droplist/dropdown"
)

func TestKeysConfig_Apply(t *testing.T) {
	k := KeysConfig{Next: []string{"j"}, Dismiss: []string{"ctrl+c"}}
	km := k.Apply(dropdown.DefaultKeyMap())

	jMsg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	assert.True(t, key.Matches(jMsg, km.Next))

	downMsg := tea.KeyMsg{Type: tea.KeyDown}
	assert.False(t, key.Matches(downMsg, km.Next), "override replaces the default keys")

	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlC}, km.Dismiss))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, km.Commit), "untouched bindings keep defaults")
}

func TestKeysConfig_ApplyEmptyIsIdentity(t *testing.T) {
	km := KeysConfig{}.Apply(dropdown.DefaultKeyMap())
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, km.Next))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, km.Dismiss))
}
