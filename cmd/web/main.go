package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/peterkuimelis/brinefall/internal/game"
	"github.com/peterkuimelis/brinefall/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	crewFile := flag.String("crews", "crews.yaml", "path to crews YAML file")
	flag.Parse()

	catalog, err := game.BuildCatalog(game.CatalogOptions{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	srv := web.NewServer(catalog, *crewFile)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("brinefall web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
