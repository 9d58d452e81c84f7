// Package items loads dropdown item collections from the supported sources:
// positional arguments, YAML files, and line-based stdin.
package items

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bernd/droplist/dropdown"
)

//go:embed demo.yaml
var demoYAML []byte

// entry accepts either a bare string or a {label, value} mapping, so item
// files stay terse for the common case.
type entry struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

func (e *entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		e.Label = node.Value
		return nil
	}

	type plain entry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = entry(p)
	return nil
}

// FromArgs turns positional arguments into items.
func FromArgs(args []string) []dropdown.Item {
	out := make([]dropdown.Item, 0, len(args))
	for _, a := range args {
		out = append(out, dropdown.Item{Label: a})
	}
	return out
}

// FromYAML parses a YAML list of items. Entries without a label are
// rejected; a value-only entry has nothing to display.
func FromYAML(data []byte) ([]dropdown.Item, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}

	out := make([]dropdown.Item, 0, len(entries))
	for i, e := range entries {
		if e.Label == "" {
			return nil, fmt.Errorf("parse items: entry %d has no label", i)
		}
		out = append(out, dropdown.Item{Label: e.Label, Value: e.Value})
	}
	return out, nil
}

// FromFile reads a YAML items file.
func FromFile(path string) ([]dropdown.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("items file: %w", err)
	}
	return FromYAML(data)
}

// FromReader reads one item per line, skipping blank lines. Used for piped
// stdin, where each line's text is both label and value.
func FromReader(r io.Reader) ([]dropdown.Item, error) {
	var out []dropdown.Item
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, dropdown.Item{Label: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return out, nil
}

// Demo returns the embedded showcase collection.
func Demo() []dropdown.Item {
	its, err := FromYAML(demoYAML)
	if err != nil {
		panic("demo.yaml: " + err.Error())
	}
	return its
}
