package mcp

import (
	"context"

	"github.com/peterkuimelis/brinefall/internal/game"
	"github.com/peterkuimelis/brinefall/internal/log"
	"github.com/peterkuimelis/brinefall/internal/net"
)

// MCPController implements game.Controller by sending decisions to the MCP
// session's pending channel and blocking on a response channel.
type MCPController struct {
	team       game.Team
	session    *GameSession
	responseCh chan any

	// lastActing is the unit whose turn produced the most recent action
	// prompt. Target and yes/no decisions reuse it for the state view.
	lastActing *game.Unit
}

// NewMCPController creates a controller playing the given team.
func NewMCPController(team game.Team, session *GameSession) *MCPController {
	return &MCPController{
		team:       team,
		session:    session,
		responseCh: make(chan any),
	}
}

// ChooseAction implements game.Controller.
func (c *MCPController) ChooseAction(ctx context.Context, s *game.Skirmish, actions []game.Action) (game.Action, error) {
	var views []net.ActionView
	for i, a := range actions {
		views = append(views, net.ActionView{Index: i, Desc: a.String()})
	}

	var acting *game.Unit
	if len(actions) > 0 {
		acting = actions[0].Unit
	}
	c.lastActing = acting

	c.session.pendingCh <- &PendingDecision{
		Type:    DecisionChooseAction,
		Team:    c.team.String(),
		State:   net.BuildStateView(s, c.team, acting),
		Actions: views,
	}

	resp := <-c.responseCh
	ar := resp.(ActionResponse)

	if ar.Index < 0 || ar.Index >= len(actions) {
		// End Turn is always the last entry.
		return actions[len(actions)-1], nil
	}
	return actions[ar.Index], nil
}

// ChooseTarget implements game.Controller. A nil target aborts the play.
func (c *MCPController) ChooseTarget(ctx context.Context, s *game.Skirmish, card *game.Card) (*game.Target, error) {
	units := s.Units()
	var views []net.UnitView
	for i, u := range units {
		if !u.Alive() {
			continue
		}
		uv := net.UnitView{Index: i, Name: u.Name, Team: u.Team.String(), HP: u.HP, MaxHP: u.MaxHP}
		if pos, ok := s.Board.PositionOf(u); ok {
			uv.X, uv.Y = pos.X, pos.Y
		}
		views = append(views, uv)
	}

	cv := &net.CardView{Name: card.Name, Category: card.Category.String()}
	if card.Relic != nil {
		cv.Cost = card.Relic.Def.Cost
		cv.Desc = card.Relic.DisplayDesc
	}

	pending := &PendingDecision{
		Type:      DecisionChooseTarget,
		Team:      c.team.String(),
		State:     net.BuildStateView(s, c.team, c.lastActing),
		Prompt:    "Choose a target for " + card.Name,
		Card:      cv,
		Units:     views,
		WantsCell: cardWantsCell(card),
	}
	c.session.pendingCh <- pending

	resp := <-c.responseCh
	tr := resp.(TargetResponse)

	if tr.Abort {
		return nil, nil
	}
	if pending.WantsCell {
		return &game.Target{Cell: &game.Cell{X: tr.X, Y: tr.Y}}, nil
	}
	if tr.Index >= 0 && tr.Index < len(units) {
		return &game.Target{Unit: units[tr.Index]}, nil
	}
	return &game.Target{}, nil
}

// ChooseYesNo implements game.Controller.
func (c *MCPController) ChooseYesNo(ctx context.Context, s *game.Skirmish, prompt string) (bool, error) {
	c.session.pendingCh <- &PendingDecision{
		Type:   DecisionChooseYesNo,
		Team:   c.team.String(),
		State:  net.BuildStateView(s, c.team, c.lastActing),
		Prompt: prompt,
	}

	resp := <-c.responseCh
	yr := resp.(YesNoResponse)
	return yr.Answer, nil
}

// Notify implements game.Controller.
// Only the Claude controller appends events to avoid duplicates.
func (c *MCPController) Notify(ctx context.Context, event log.GameEvent) error {
	if c.team == c.session.claudeTeam {
		c.session.appendEvent(net.EventView{
			Round:   event.Round,
			Type:    event.Type.String(),
			Unit:    event.Unit,
			Source:  event.Source,
			Card:    event.Card,
			Amount:  event.Amount,
			Details: log.FormatEvent(event),
		})
	}
	return nil
}

// cardWantsCell reports whether the card resolves against a board cell
// rather than a unit.
func cardWantsCell(card *game.Card) bool {
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
