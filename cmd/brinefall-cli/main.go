package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	bfnet "github.com/peterkuimelis/brinefall/internal/net"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "host":
		runHost(os.Args[2:])
	case "join":
		runJoin(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  brinefall host [--crew N] [--port P] [--crews FILE]")
	fmt.Println("  brinefall join [--crew N] [--addr ADDR]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  host    Start a game server and play the port side")
	fmt.Println("  join    Connect to a game server and play the starboard side")
}

func runHost(args []string) {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	crew := fs.Int("crew", 1, "crew number to use (from crews.yaml)")
	port := fs.String("port", "9000", "TCP port to listen on")
	crewFile := fs.String("crews", "crews.yaml", "path to crews file")
	fs.Parse(args)

	srv := &bfnet.Server{
		CrewFile: *crewFile,
		Port:     *port,
		HostCrew: *crew,
	}

	if err := srv.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runJoin(args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	crew := fs.Int("crew", 2, "crew number to use (from crews.yaml)")
	addr := fs.String("addr", "localhost:9000", "server address to connect to")
	fs.Parse(args)

	if err := bfnet.Connect(context.Background(), *addr, *crew); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
