package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	bfnet "github.com/peterkuimelis/brinefall/internal/net"

	"github.com/peterkuimelis/brinefall/internal/board"
	"github.com/peterkuimelis/brinefall/internal/game"
	"github.com/peterkuimelis/brinefall/internal/log"

	stdnet "net"
)

// DecisionType identifies what kind of decision the game engine is waiting for.
type DecisionType string

const (
	DecisionChooseAction DecisionType = "choose_action"
	DecisionChooseTarget DecisionType = "choose_target"
	DecisionChooseYesNo  DecisionType = "choose_yes_no"
	DecisionGameOver     DecisionType = "game_over"
)

// PendingDecision represents a decision the game engine is waiting for.
type PendingDecision struct {
	Type      DecisionType       `json:"type"`
	Team      string             `json:"team"`
	State     *bfnet.StateView   `json:"state"`
	Actions   []bfnet.ActionView `json:"actions,omitempty"`
	Prompt    string             `json:"prompt,omitempty"`
	Card      *bfnet.CardView    `json:"card,omitempty"`
	Units     []bfnet.UnitView   `json:"units,omitempty"`
	WantsCell bool               `json:"wants_cell,omitempty"`
}

// Response types sent back from MCP tools to controllers.

type ActionResponse struct {
	Index int
}

type TargetResponse struct {
	Index int
	X     int
	Y     int
	Abort bool
}

type YesNoResponse struct {
	Answer bool
}

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Events   []bfnet.EventView `json:"events"`
	State    *bfnet.StateView  `json:"state,omitempty"`
	Pending  *PendingView      `json:"pending,omitempty"`
	GameOver bool              `json:"game_over"`
	Winner   string            `json:"winner,omitempty"`
	Result   string            `json:"result,omitempty"`
	Port     string            `json:"port,omitempty"`
}

// PendingView is the pending decision as presented in the tool response JSON.
type PendingView struct {
	Type      DecisionType       `json:"type"`
	ForPlayer string             `json:"for_player"`
	Actions   []bfnet.ActionView `json:"actions,omitempty"`
	Prompt    string             `json:"prompt,omitempty"`
	Card      *bfnet.CardView    `json:"card,omitempty"`
	Units     []bfnet.UnitView   `json:"units,omitempty"`
	WantsCell bool               `json:"wants_cell,omitempty"`
}

// GameSession holds the state of a single MCP game session.
type GameSession struct {
	skirmish   *game.Skirmish
	claudeCtrl *MCPController
	humanCtrl  *bfnet.NetworkController
	claudeTeam game.Team

	listener  stdnet.Listener
	humanConn stdnet.Conn

	pendingCh      chan *PendingDecision
	currentPending *PendingDecision

	mu       sync.Mutex
	events   []bfnet.EventView
	gameOver bool
	winner   game.Team
	result   string
}

// NewGameSession creates a new game session. It starts a TCP listener,
// waits for the human player to connect via `brinefall join`, then starts
// the skirmish.
func NewGameSession(crewFile string, claudeCrew int, claudeTeam game.Team, port string) (*GameSession, error) {
	claudeEntry, err := game.CrewByNumber(crewFile, claudeCrew)
	if err != nil {
		return nil, fmt.Errorf("load claude crew: %w", err)
	}

	// Start TCP listener for the human player
	ln, err := stdnet.Listen("tcp", ":"+port)
	if err != nil {
		return nil, fmt.Errorf("listen on port %s: %w", port, err)
	}

	// Accept one connection (blocks until human runs `brinefall join`)
	conn, err := ln.Accept()
	if err != nil {
		ln.Close()
		return nil, fmt.Errorf("accept: %w", err)
	}

	// Read join message to get the human's crew choice
	dec := json.NewDecoder(conn)
	var joinMsg bfnet.ClientMessage
	if err := dec.Decode(&joinMsg); err != nil {
		conn.Close()
		ln.Close()
		return nil, fmt.Errorf("read join message: %w", err)
	}
	humanCrew := joinMsg.CrewNumber
	if humanCrew == 0 {
		humanCrew = 2
	}

	humanEntry, err := game.CrewByNumber(crewFile, humanCrew)
	if err != nil {
		conn.Close()
		ln.Close()
		return nil, fmt.Errorf("load human crew: %w", err)
	}

	catalog, err := game.BuildCatalog(game.CatalogOptions{})
	if err != nil {
		conn.Close()
		ln.Close()
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	sess := &GameSession{
		claudeTeam: claudeTeam,
		pendingCh:  make(chan *PendingDecision, 1),
		winner:     game.TeamNone,
		listener:   ln,
		humanConn:  conn,
	}

	sess.claudeCtrl = NewMCPController(claudeTeam, sess)
	sess.humanCtrl = bfnet.NewNetworkController(conn, claudeTeam.Opponent())

	var portCtrl, starboardCtrl game.Controller
	portCrew, starboardCrew := claudeEntry, humanEntry
	if claudeTeam == game.TeamPort {
		portCtrl = sess.claudeCtrl
		starboardCtrl = sess.humanCtrl
	} else {
		portCtrl = sess.humanCtrl
		starboardCtrl = sess.claudeCtrl
		portCrew, starboardCrew = humanEntry, claudeEntry
	}

	sess.skirmish = game.NewSkirmish(game.SkirmishConfig{
		Catalog: catalog,
		Board:   board.NewGrid(bfnet.BoardWidth, bfnet.BoardHeight),
		Logger:  log.NewMemoryLogger(),
	}, portCtrl, starboardCtrl)

	if _, err := game.MusterCrew(sess.skirmish, portCrew, game.TeamPort,
		bfnet.DeploymentCells(bfnet.BoardWidth, bfnet.BoardHeight, game.TeamPort)); err != nil {
		sess.skirmish.Dispose()
		conn.Close()
		ln.Close()
		return nil, fmt.Errorf("muster port crew: %w", err)
	}
	if _, err := game.MusterCrew(sess.skirmish, starboardCrew, game.TeamStarboard,
		bfnet.DeploymentCells(bfnet.BoardWidth, bfnet.BoardHeight, game.TeamStarboard)); err != nil {
		sess.skirmish.Dispose()
		conn.Close()
		ln.Close()
		return nil, fmt.Errorf("muster starboard crew: %w", err)
	}

	// Start the skirmish in a goroutine
	go func() {
		winner, err := sess.skirmish.Run(context.Background())
		if err != nil {
			sess.mu.Lock()
			sess.gameOver = true
			sess.result = fmt.Sprintf("error: %v", err)
			sess.mu.Unlock()
		}

		result := sess.skirmish.Result
		if result == "" {
			result = fmt.Sprintf("Game over. Winner: %s", winner)
		}

		// Notify the human over TCP
		_ = sess.humanCtrl.SendGameOver(winner, result)

		sess.skirmish.Dispose()
		sess.humanConn.Close()
		sess.listener.Close()

		sess.mu.Lock()
		sess.gameOver = true
		sess.winner = winner
		sess.result = result
		sess.mu.Unlock()

		// Notify Claude via the pending channel
		sess.pendingCh <- &PendingDecision{
			Type:  DecisionGameOver,
			Team:  winner.String(),
			State: bfnet.BuildStateView(sess.skirmish, sess.claudeTeam, nil),
		}
	}()

	return sess, nil
}

// appendEvent adds an event to the session's event log. Thread-safe.
func (s *GameSession) appendEvent(ev bfnet.EventView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// drainEvents returns all accumulated events and clears the buffer.
func (s *GameSession) drainEvents() []bfnet.EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events
	s.events = nil
	return events
}

// waitForPending blocks until the next decision arrives from the game engine,
// then builds a ToolResponse with accumulated events + the pending decision.
func (s *GameSession) waitForPending() (*ToolResponse, error) {
	pending := <-s.pendingCh
	s.currentPending = pending

	events := s.drainEvents()

	resp := &ToolResponse{
		Events: events,
	}

	if pending.Type == DecisionGameOver {
		s.mu.Lock()
		resp.GameOver = true
		resp.Winner = s.winner.String()
		resp.Result = s.result
		s.mu.Unlock()
		resp.State = pending.State
		resp.Pending = nil
		return resp, nil
	}

	resp.State = pending.State
	resp.Pending = &PendingView{
		Type:      pending.Type,
		ForPlayer: s.teamLabel(pending.Team),
		Actions:   pending.Actions,
		Prompt:    pending.Prompt,
		Card:      pending.Card,
		Units:     pending.Units,
		WantsCell: pending.WantsCell,
	}

	return resp, nil
}

// teamLabel returns "claude" or "human" for the given team name.
func (s *GameSession) teamLabel(team string) string {
	if team == s.claudeTeam.String() {
		return "claude"
	}
	return "human"
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
