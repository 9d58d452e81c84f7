package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Commands(t *testing.T) {
	root := RootCommand()

	names := make(map[string]bool, len(root.Commands))
	for _, c := range root.Commands {
		names[c.Name] = true
	}

	assert.Contains(t, names, "pick")
	assert.Contains(t, names, "demo")
	assert.Equal(t, "pick", root.DefaultCommand)
}
