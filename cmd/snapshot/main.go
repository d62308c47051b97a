// Command snapshot lays out a small reference tree and prints the painted
// buffer to stdout. Handy for eyeballing layout changes without a live
// terminal loop.
package main

import (
	"fmt"
	"os"

	"elemtui"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "snapshot"})

	width, height := 36, 18
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
	}

	tree := elemtui.Ui(elemtui.NewBlock("app")).
		With(elemtui.Gap(1)).
		Children(
			elemtui.Ui(elemtui.NewFill('·')).
				With(elemtui.Width(elemtui.Fixed(10)), elemtui.Height(elemtui.Grow())),
			elemtui.Ui(nil).
				With(elemtui.Width(elemtui.Grow()), elemtui.Height(elemtui.Grow()), elemtui.Vertical, elemtui.Gap(1)).
				Children(
					elemtui.Ui(elemtui.NewText("elemtui layout snapshot").Bold()).
						With(elemtui.Height(elemtui.Fixed(1))),
					elemtui.Ui(elemtui.NewGauge(0.6)).
						With(elemtui.Height(elemtui.Fixed(1))),
					elemtui.Ui(elemtui.NewFill(' ')).
						With(elemtui.Height(elemtui.Grow())),
					elemtui.Ui(elemtui.NewText("q to quit, but this is a snapshot")).
						With(elemtui.Height(elemtui.Fixed(1))),
				),
		)

	world := elemtui.NewWorld()
	root, err := world.Spawn(tree)
	if err != nil {
		logger.Fatal("spawn failed", "err", err)
	}
	if err := world.CalculateLayout(root, elemtui.NewRect(0, 0, width, height)); err != nil {
		logger.Fatal("layout failed", "err", err, "width", width, "height", height)
	}

	buf := elemtui.NewBuffer(width, height)
	world.Render(root, buf.Area(), buf)
	fmt.Print(buf.String())
}
