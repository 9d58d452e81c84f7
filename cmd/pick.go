package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/xid"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/bernd/droplist/config"
	"github.com/bernd/droplist/dropdown"
	"github.com/bernd/droplist/items"
	"github.com/bernd/droplist/metrics"
	"github.com/bernd/droplist/tui"
)

// ErrCanceled is returned when the user quits without committing a
// selection. main exits 1 without printing anything.
var ErrCanceled = errors.New("selection canceled")

const (
	fileFlag    = "file"
	promptFlag  = "prompt"
	initialFlag = "initial"
)

func PickCommand() *cli.Command {
	return &cli.Command{
		Name:  "pick",
		Usage: "Select one item and print its value",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    fileFlag,
				Aliases: []string{"f"},
				Usage:   "YAML items file",
			},
			&cli.StringFlag{
				Name:    promptFlag,
				Aliases: []string{"p"},
				Value:   "Select an item",
				Usage:   "Prompt shown above the list",
			},
			&cli.StringFlag{
				Name:    initialFlag,
				Aliases: []string{"i"},
				Usage:   "Item value to preselect",
			},
			configFlag,
			metricsURLFlag,
		},
		Action: PickAction,
	}
}

func PickAction(ctx context.Context, cmd *cli.Command) error {
	merged, err := loadMergedConfig(cmd)
	if err != nil {
		return err
	}

	its, source, err := resolveItems(cmd, merged)
	if err != nil {
		return err
	}
	if len(its) == 0 {
		return fmt.Errorf("no items to pick from")
	}

	// The UI renders on stderr so stdout stays clean for the result.
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return fmt.Errorf("pick needs a terminal (stderr is not a tty)")
	}

	buf := metrics.NewBuffer()
	ctrl := dropdown.NewController(its, buf)
	ctrl.SetKeyMap(merged.Keys.Apply(ctrl.KeyMap()))
	if initial := cmd.String(initialFlag); initial != "" {
		preselect(ctrl, initial)
	}

	s := newPickScreen(ctrl, cmd.String(promptFlag))
	header := &tui.HeaderInfo{Source: source, SessionID: xid.New().String()}
	w := tui.NewWindow(header, s)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(os.Stderr)}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		// Items came through the pipe; read keys from the terminal instead.
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return fmt.Errorf("pick needs a terminal: %w", err)
		}
		defer tty.Close()
		opts = append(opts, tea.WithInput(tty))
	}
	p := tea.NewProgram(w, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("pick UI: %w", err)
	}

	flushMetrics(ctx, cmd, merged, buf)

	if s.selected == nil {
		return ErrCanceled
	}
	fmt.Println(s.selected.Val())
	return nil
}

// loadMergedConfig loads and flattens the global and project config files
// and applies the configured theme.
func loadMergedConfig(cmd *cli.Command) (config.MergedConfig, error) {
	globalPath := cmd.String(configFlag.Name)
	if globalPath == "" {
		globalPath = config.DefaultGlobalPath()
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.MergedConfig{}, err
	}
	projectPath := config.DefaultProjectPath(wd)

	if cmd.Bool(debugFlag) {
		tui.Debug("global config %s", globalPath)
		tui.Debug("project config %s", projectPath)
	}

	cfg, err := config.Load(globalPath, projectPath)
	if err != nil {
		return config.MergedConfig{}, fmt.Errorf("config: %w", err)
	}
	merged := cfg.Merge()

	if merged.Theme != "" {
		theme, err := config.LoadTheme(merged.Theme)
		if err != nil {
			return config.MergedConfig{}, fmt.Errorf("theme: %w", err)
		}
		theme.Apply()
	}
	return merged, nil
}

// resolveItems picks the item source: positional args win, then the --file
// flag, then the project config's items file, then piped stdin.
func resolveItems(cmd *cli.Command, merged config.MergedConfig) ([]dropdown.Item, string, error) {
	if args := cmd.Args().Slice(); len(args) > 0 {
		return items.FromArgs(args), "args", nil
	}
	if path := cmd.String(fileFlag); path != "" {
		its, err := items.FromFile(path)
		return its, path, err
	}
	if merged.Items != "" {
		its, err := items.FromFile(merged.Items)
		return its, merged.Items, err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		its, err := items.FromReader(os.Stdin)
		return its, "stdin", err
	}
	return nil, "", fmt.Errorf("no items given (pass arguments, --file, or pipe lines on stdin)")
}

// preselect commits the item whose value (or label) matches the given value.
// Unknown values are ignored.
func preselect(ctrl *dropdown.Controller, value string) {
	for _, it := range ctrl.Items() {
		if it.Val() == value || it.Label == value {
			ctrl.Click(it)
			return
		}
	}
}

// flushMetrics pushes the buffered interaction counts to the configured OTLP
// endpoint. Export is best effort; failures only surface in debug mode.
func flushMetrics(ctx context.Context, cmd *cli.Command, merged config.MergedConfig, buf *metrics.Buffer) {
	endpoint := cmd.String(metricsURLFlag.Name)
	if endpoint == "" {
		endpoint = merged.Metrics.Endpoint
	}
	if endpoint == "" || buf.Total() == 0 {
		return
	}

	exporter := metrics.NewExporter(endpoint, merged.Metrics.Service)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := exporter.Flush(ctx, buf.Summaries()); err != nil && cmd.Bool(debugFlag) {
		tui.Debug("metrics export: %v", err)
	}
}
