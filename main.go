package main

import (
	"context"
	"errors"
	"os"

	"github.com/bernd/droplist/cmd"
	"github.com/bernd/droplist/tui"
)

func main() {
	app := cmd.RootCommand()

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, cmd.ErrCanceled) {
			os.Exit(1)
		}
		tui.Error("%v", err)
		os.Exit(1)
	}
}
