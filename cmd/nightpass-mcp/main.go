package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	nightpassmcp "github.com/AlperenUlu/nightpass-a-survival-card-game/internal/mcp"
)

func main() {
	decks := flag.String("decks", "decks.yaml", "path to decks YAML file")
	flag.Parse()

	nightpassmcp.SetDecksFile(*decks)

	s := server.NewMCPServer("nightpass", "1.0.0")
	nightpassmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
