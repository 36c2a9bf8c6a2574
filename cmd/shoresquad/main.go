package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Makepad-fr/shoresquad/internal/cli"
	"github.com/Makepad-fr/shoresquad/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	theme := flag.String("theme", "classic", "color theme: classic, neon or mono")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Usage = func() { cli.PrintHelp(os.Stderr) }
	flag.Parse()

	ui.SetTheme(*theme)
	if *noColor {
		ui.SetColorForcing(false, true)
	}

	// Hand the remaining args to the CLI runner.
	code := cli.Run(flag.Args(), cli.Options{})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
