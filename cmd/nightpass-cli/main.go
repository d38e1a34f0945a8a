package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/game"
	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/log"
	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/script"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runCommands(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  nightpass-cli run [--in FILE] [--out FILE] [--decks FILE --deck NAME] [-v]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  run     Process a command file and write one output line per command")
}

func runCommands(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	inFile := fs.String("in", "", "input command file (default: stdin)")
	outFile := fs.String("out", "", "output file (default: stdout)")
	decksFile := fs.String("decks", "", "path to decks YAML file to preload from")
	deckName := fs.String("deck", "", "name of the starting deck to preload")
	verbose := fs.Bool("v", false, "echo the event log to stderr")
	fs.Parse(args)

	var in io.Reader = os.Stdin
	if *inFile != "" {
		f, err := os.Open(*inFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if *outFile != "" {
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	var logger log.EventLogger = log.NewMemoryLogger()
	if *verbose {
		logger = log.NewTextLogger(os.Stderr)
	}

	mgr := game.NewManager(logger)

	if *deckName != "" {
		cards, err := game.DeckByName(*decksFile, *deckName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: load deck: %v\n", err)
			os.Exit(1)
		}
		for _, c := range cards {
			mgr.DrawCard(c.Name, c.BaseAttack, c.BaseHealth)
		}
	}

	if err := script.NewRunner(mgr).Run(in, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
