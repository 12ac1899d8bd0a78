// Gnusto is a data-driven game engine for text adventures.
// Usage: gnusto [--version] [--plain] <game_directory>
package main

import (
	"fmt"
	"os"

	"github.com/nathoo/gnusto/cli"
	"github.com/nathoo/gnusto/engine"
	"github.com/nathoo/gnusto/loader"
	"github.com/nathoo/gnusto/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	plain := false
	var gameDir string

	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version":
			fmt.Printf("gnusto %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			plain = true
		default:
			if gameDir == "" {
				gameDir = arg
			}
		}
	}

	if gameDir == "" {
		fmt.Fprintf(os.Stderr, "Usage: gnusto [--version] [--plain] <game_directory>\n")
		os.Exit(1)
	}

	defs, err := loader.Load(gameDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading game: %v\n", err)
		os.Exit(1)
	}

	eng := engine.New(defs)

	if plain || !isTerminal() {
		fmt.Printf("%s\n\n", defs.Game.Title)
		c := cli.New(eng)
		c.Run()
		return
	}

	if err := tui.Run(eng); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
