package net

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/peterkuimelis/brinefall/internal/game"
	"github.com/peterkuimelis/brinefall/internal/log"
)

// NetworkController implements game.Controller over a TCP connection.
type NetworkController struct {
	conn net.Conn
	enc  *json.Encoder
	dec  *json.Decoder
	team game.Team
	mu   sync.Mutex
}

// NewNetworkController creates a controller for the given connection,
// playing for the given team.
func NewNetworkController(conn net.Conn, team game.Team) *NetworkController {
	return &NetworkController{
		conn: conn,
		enc:  json.NewEncoder(conn),
		dec:  json.NewDecoder(conn),
		team: team,
	}
}

// BuildStateView snapshots the skirmish for one crew. Every unit is
// visible; only the acting unit's hand is listed, and only when it fights
// for the viewing team.
func BuildStateView(s *game.Skirmish, team game.Team, acting *game.Unit) *StateView {
	sv := &StateView{
		Round:  s.Clock.Round,
		Width:  s.Board.Width(),
		Height: s.Board.Height(),
	}
	for i, u := range s.Units() {
		uv := UnitView{
			Index:  i,
			Name:   u.Name,
			Team:   u.Team.String(),
			Role:   u.Role.String(),
			HP:     u.HP,
			MaxHP:  u.MaxHP,
			Morale: u.Morale,
			Grit:   u.Grit,
			Dead:   u.Dead,
			Struck: u.Surrendered,
		}
		if pos, ok := s.Board.PositionOf(u); ok {
			uv.X, uv.Y = pos.X, pos.Y
		}
		sv.Units = append(sv.Units, uv)
	}
	if acting != nil {
		sv.Acting = acting.Name
		sv.Energy = acting.Resources.Energy()
		sv.Grog = acting.Resources.GrogTokens()
		sv.DrawPile = acting.Deck.DrawPile()
		sv.Discard = acting.Deck.DiscardPile()
		if acting.Team == team {
			for _, c := range acting.Deck.Hand() {
				sv.Hand = append(sv.Hand, c.Name)
			}
		}
	}
	return sv
}

// cardView flattens a card for the wire.
func cardView(card *game.Card) *CardView {
	cv := &CardView{
		Name:     card.Name,
		Category: card.Category.String(),
	}
	if card.Relic != nil {
		cv.Cost = card.Relic.Def.Cost
		cv.Desc = card.Relic.DisplayDesc
	}
	return cv
}

// wantsCell reports whether the card resolves against a board cell rather
// than a unit.
func wantsCell(card *game.Card) bool {
	if card.Relic == nil {
		return false
	}
	def := card.Relic.Def
	switch def.Shape {
	case game.ShapeSummon:
		return true
	case game.ShapeMovement:
		return def.Move == game.MoveDash
	}
	return false
}

// send sends a server message to the client. Must be called with mu held.
func (nc *NetworkController) send(msg ServerMessage) error {
	return nc.enc.Encode(msg)
}

// recv reads a client message. Must be called with mu held.
func (nc *NetworkController) recv() (ClientMessage, error) {
	var msg ClientMessage
	err := nc.dec.Decode(&msg)
	return msg, err
}

// ChooseAction implements game.Controller.
func (nc *NetworkController) ChooseAction(ctx context.Context, s *game.Skirmish, actions []game.Action) (game.Action, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	var views []ActionView
	var acting *game.Unit
	for i, a := range actions {
		views = append(views, ActionView{Index: i, Desc: a.String()})
		if acting == nil {
			acting = a.Unit
		}
	}

	msg := ServerMessage{
		Type:    "choose_action",
		Actions: views,
		State:   BuildStateView(s, nc.team, acting),
	}
	if err := nc.send(msg); err != nil {
		return game.Action{}, fmt.Errorf("send choose_action: %w", err)
	}

	resp, err := nc.recv()
	if err != nil {
		return game.Action{}, fmt.Errorf("recv action: %w", err)
	}
	if resp.Index < 0 || resp.Index >= len(actions) {
		return actions[len(actions)-1], nil // fallback to End Turn
	}
	return actions[resp.Index], nil
}

// ChooseTarget implements game.Controller. A nil target means the player
// backed out of the play.
func (nc *NetworkController) ChooseTarget(ctx context.Context, s *game.Skirmish, card *game.Card) (*game.Target, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	units := s.Units()
	var views []UnitView
	for i, u := range units {
		if !u.Alive() {
			continue
		}
		uv := UnitView{Index: i, Name: u.Name, Team: u.Team.String(), HP: u.HP, MaxHP: u.MaxHP}
		if pos, ok := s.Board.PositionOf(u); ok {
			uv.X, uv.Y = pos.X, pos.Y
		}
		views = append(views, uv)
	}

	msg := ServerMessage{
		Type:      "choose_target",
		Prompt:    fmt.Sprintf("Choose a target for %s", card.Name),
		Card:      cardView(card),
		Units:     views,
		WantsCell: wantsCell(card),
	}
	if err := nc.send(msg); err != nil {
		return nil, fmt.Errorf("send choose_target: %w", err)
	}

	resp, err := nc.recv()
	if err != nil {
		return nil, fmt.Errorf("recv target: %w", err)
	}
	if resp.Abort {
		return nil, nil
	}
	if msg.WantsCell {
		return &game.Target{Cell: &game.Cell{X: resp.X, Y: resp.Y}}, nil
	}
	if resp.Index >= 0 && resp.Index < len(units) {
		return &game.Target{Unit: units[resp.Index]}, nil
	}
	return &game.Target{}, nil
}

// ChooseYesNo implements game.Controller.
func (nc *NetworkController) ChooseYesNo(ctx context.Context, s *game.Skirmish, prompt string) (bool, error) {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	msg := ServerMessage{Type: "choose_yes_no", Prompt: prompt}
	if err := nc.send(msg); err != nil {
		return false, fmt.Errorf("send choose_yes_no: %w", err)
	}
	resp, err := nc.recv()
	if err != nil {
		return false, fmt.Errorf("recv yes_no: %w", err)
	}
	return resp.Answer, nil
}

// SendGameOver sends a game_over message to the client.
func (nc *NetworkController) SendGameOver(winner game.Team, result string) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	return nc.send(ServerMessage{Type: "game_over", Winner: winner.String(), Result: result})
}

// Notify implements game.Controller.
func (nc *NetworkController) Notify(ctx context.Context, event log.GameEvent) error {
	nc.mu.Lock()
	defer nc.mu.Unlock()

	msg := ServerMessage{
		Type: "notify",
		Event: &EventView{
			Round:   event.Round,
			Type:    event.Type.String(),
			Unit:    event.Unit,
			Source:  event.Source,
			Card:    event.Card,
			Amount:  event.Amount,
			Details: log.FormatEvent(event),
		},
	}
	return nc.send(msg)
}
