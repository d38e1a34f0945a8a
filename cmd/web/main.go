package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlperenUlu/nightpass-a-survival-card-game/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	decksFile := flag.String("decks", "decks.yaml", "path to decks YAML file")
	flag.Parse()

	srv := web.NewServer(*decksFile)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("nightpass web server listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
