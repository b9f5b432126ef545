package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"

	"github.com/peterkuimelis/brinefall/internal/board"
	"github.com/peterkuimelis/brinefall/internal/game"
	"github.com/peterkuimelis/brinefall/internal/log"
)

// Default battlefield dimensions.
const (
	BoardWidth  = 9
	BoardHeight = 7
)

// Server hosts a skirmish between two TCP clients.
type Server struct {
	CrewFile string
	Port     string
	HostCrew int // host's crew number (1-indexed)
}

// DeploymentCells returns a team's starting cells: the port crew deploys
// along the bottom row, the starboard crew along the top.
func DeploymentCells(width, height int, team game.Team) []game.Cell {
	y := 0
	if team == game.TeamStarboard {
		y = height - 1
	}
	cells := make([]game.Cell, 0, width)
	for x := 0; x < width; x++ {
		cells = append(cells, game.Cell{X: x, Y: y})
	}
	return cells
}

// Run starts the server, waits for a client to join, then runs the
// skirmish.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	fmt.Printf("Waiting for opponent on port %s...\n", s.Port)

	// Accept exactly one connection (the joiner)
	conn, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("accept: %w", err)
	}
	defer conn.Close()

	fmt.Printf("Opponent connected from %s\n", conn.RemoteAddr())

	// Read the joiner's crew choice
	dec := json.NewDecoder(conn)
	var joinMsg ClientMessage
	if err := dec.Decode(&joinMsg); err != nil {
		return fmt.Errorf("read join message: %w", err)
	}
	joinerCrew := joinMsg.CrewNumber
	if joinerCrew == 0 {
		joinerCrew = 2
	}

	fmt.Printf("Opponent chose crew %d\n", joinerCrew)

	hostCrew, err := game.CrewByNumber(s.CrewFile, s.HostCrew)
	if err != nil {
		return fmt.Errorf("load host crew: %w", err)
	}
	visitorCrew, err := game.CrewByNumber(s.CrewFile, joinerCrew)
	if err != nil {
		return fmt.Errorf("load joiner crew: %w", err)
	}

	fmt.Printf("Host: %s (%d units)\n", hostCrew.Name, len(hostCrew.Units))
	fmt.Printf("Joiner: %s (%d units)\n", visitorCrew.Name, len(visitorCrew.Units))

	catalog, err := game.BuildCatalog(game.CatalogOptions{})
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	// Create a pipe for the host's local connection
	hostConn, hostServerConn := net.Pipe()

	// Host plays port, joiner plays starboard.
	hostCtrl := NewNetworkController(hostServerConn, game.TeamPort)
	joinerCtrl := NewNetworkController(conn, game.TeamStarboard)

	skirmish := game.NewSkirmish(game.SkirmishConfig{
		Catalog: catalog,
		Board:   board.NewGrid(BoardWidth, BoardHeight),
		Logger:  log.NewTextLogger(os.Stdout),
	}, hostCtrl, joinerCtrl)
	defer skirmish.Dispose()

	if _, err := game.MusterCrew(skirmish, hostCrew, game.TeamPort,
		DeploymentCells(BoardWidth, BoardHeight, game.TeamPort)); err != nil {
		return fmt.Errorf("muster host crew: %w", err)
	}
	if _, err := game.MusterCrew(skirmish, visitorCrew, game.TeamStarboard,
		DeploymentCells(BoardWidth, BoardHeight, game.TeamStarboard)); err != nil {
		return fmt.Errorf("muster joiner crew: %w", err)
	}

	// Run the host's local REPL in a goroutine
	errCh := make(chan error, 2)
	go func() {
		client := &Client{conn: hostConn}
		errCh <- client.RunREPL(ctx)
	}()

	// Run the skirmish
	go func() {
		winner, err := skirmish.Run(ctx)
		if err != nil {
			errCh <- fmt.Errorf("skirmish error: %w", err)
			return
		}
		_ = joinerCtrl.SendGameOver(winner, skirmish.Result)
		_ = hostCtrl.SendGameOver(winner, skirmish.Result)
		errCh <- nil
	}()

	// Wait for either the skirmish or the REPL to finish
	err = <-errCh
	return err
}
