package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	bfmcp "github.com/peterkuimelis/brinefall/internal/mcp"
)

func main() {
	crews := flag.String("crews", "crews.yaml", "path to crews YAML file")
	port := flag.String("port", "9999", "TCP port for human player connection")
	flag.Parse()

	bfmcp.SetCrewFile(*crews)
	bfmcp.SetPort(*port)

	s := server.NewMCPServer("brinefall", "1.0.0")
	bfmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
