package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/xid"
	"github.com/urfave/cli/v3"

	"github.com/bernd/droplist/dropdown"
	"github.com/bernd/droplist/items"
	"github.com/bernd/droplist/metrics"
	"github.com/bernd/droplist/tui"
)

const idleCloseFlag = "idle-close"

func DemoCommand() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Interactive showcase with a live interaction tally",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  idleCloseFlag,
				Value: 40, // ticks, 10s
				Usage: "Auto-close the dropdown after this many idle ticks (0 disables)",
			},
			configFlag,
			metricsURLFlag,
		},
		Action: DemoAction,
	}
}

func DemoAction(ctx context.Context, cmd *cli.Command) error {
	tui.PrintHeader()

	merged, err := loadMergedConfig(cmd)
	if err != nil {
		return err
	}

	buf := metrics.NewBuffer()
	ctrl := dropdown.NewController(items.Demo(), buf)
	ctrl.SetKeyMap(merged.Keys.Apply(ctrl.KeyMap()))

	ds := newDemoScreen(ctrl, buf)
	screen := tui.Chain(ds,
		tui.WithMetrics(buf),
		tui.WithToggleKey("tab"),
	)
	if idle := int(cmd.Int(idleCloseFlag)); idle > 0 {
		screen = tui.Chain(screen, tui.WithAutoDismiss(idle))
	}

	header := &tui.HeaderInfo{Source: "demo", SessionID: xid.New().String()}
	w := tui.NewWindow(header, screen)
	p := tea.NewProgram(w, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("demo UI: %w", err)
	}

	flushMetrics(ctx, cmd, merged, buf)

	if ds.lastPick != nil {
		tui.Picked("%s", ds.lastPick.Label)
	}
	tui.Status("Recorded", "%d interactions", buf.Total())
	return nil
}
