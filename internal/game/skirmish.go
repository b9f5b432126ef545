package game

import (
	"context"
	"fmt"

	"github.com/peterkuimelis/brinefall/internal/log"
)

// Controller is the interface both human (WebSocket) and AI (MCP) players
// implement.
type Controller interface {
	// ChooseAction presents available actions and waits for the player to
	// pick one.
	ChooseAction(ctx context.Context, s *Skirmish, actions []Action) (Action, error)

	// ChooseTarget asks the player to resolve a card's target. Returning a
	// nil target aborts the play; nothing is committed until the selection
	// is confirmed.
	ChooseTarget(ctx context.Context, s *Skirmish, card *Card) (*Target, error)

	// ChooseYesNo asks the player a yes/no question (e.g. confirming a
	// selected target).
	ChooseYesNo(ctx context.Context, s *Skirmish, prompt string) (bool, error)

	// Notify sends a game event notification (no response needed).
	Notify(ctx context.Context, event log.GameEvent) error
}

// --- Action types ---

type ActionType int

const (
	ActionPlayCard ActionType = iota
	ActionDrinkGrog
	ActionEndTurn
)

func (a ActionType) String() string {
	switch a {
	case ActionPlayCard:
		return "Play Card"
	case ActionDrinkGrog:
		return "Drink Grog"
	case ActionEndTurn:
		return "End Turn"
	default:
		return "Unknown"
	}
}

// Action represents one choice offered to a controller.
type Action struct {
	Type ActionType
	Unit *Unit
	Card *Card // set for ActionPlayCard
	Cost int   // actual cost for ActionPlayCard
	Desc string
}

func (a Action) String() string {
	if a.Desc != "" {
		return a.Desc
	}
	return a.Type.String()
}

// SkirmishConfig holds configuration for creating a new skirmish.
type SkirmishConfig struct {
	Catalog   *Catalog
	Board     Board
	Logger    log.EventLogger
	NoShuffle bool // skip deck shuffles (for deterministic tests)
	MaxRounds int  // stop after this many rounds (0 = default limit)
}

// Skirmish orchestrates a battle between two crews. Each unit owns exactly
// one deck, one equipment profile, and one passive registry; all cross-unit
// effects flow through the bus and the units' own mutators.
type Skirmish struct {
	Catalog  *Catalog
	Board    Board
	Bus      *log.Bus
	Logger   log.EventLogger
	Clock    *Clock
	Executor *Executor

	controllers map[Team]Controller
	units       []*Unit
	byID        map[string]*Unit

	noShuffle bool
	maxRounds int

	logSub *log.Subscription
	ctx    context.Context

	Over   bool
	Winner Team
	Result string
}

// NewSkirmish wires the shared collaborators. Units are recruited
// afterwards with RecruitUnit.
func NewSkirmish(cfg SkirmishConfig, port, starboard Controller) *Skirmish {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	maxRounds := cfg.MaxRounds
	if maxRounds == 0 {
		maxRounds = 50 // safety limit
	}
	s := &Skirmish{
		Catalog: cfg.Catalog,
		Board:   cfg.Board,
		Bus:     log.NewBus(),
		Logger:  logger,
		Clock:   &Clock{},
		controllers: map[Team]Controller{
			TeamPort:      port,
			TeamStarboard: starboard,
		},
		byID:      make(map[string]*Unit),
		noShuffle: cfg.NoShuffle,
		maxRounds: maxRounds,
		ctx:       context.Background(),
		Winner:    TeamNone,
	}
	s.Executor = NewExecutor(s.Board, s.Bus, s)
	s.logSub = s.Bus.Subscribe(func(e log.GameEvent) {
		s.Logger.Log(e)
		for _, c := range s.controllers {
			if c != nil {
				_ = c.Notify(s.ctx, e)
			}
		}
	})
	return s
}

// UnitByID implements Roster for the passive registries.
func (s *Skirmish) UnitByID(id string) *Unit { return s.byID[id] }

// Units returns every recruited unit in recruitment order.
func (s *Skirmish) Units() []*Unit { return s.units }

// RecruitUnit creates a unit, wires its equipment, resources, deck, and
// passive registry, and places it on the board.
func (s *Skirmish) RecruitUnit(name string, team Team, role Role, family WeaponFamily, at Cell) (*Unit, error) {
	u := NewUnit(name, team, role, s.Bus, s.Clock)
	u.Equipment = NewEquipmentProfile(s.Catalog, s.Bus)
	u.Equipment.Initialize(role, family)
	u.Resources = NewResourceManager(u, s.Bus)
	u.Deck = NewDeck(u, s.Executor, s.Bus)
	u.Deck.NoShuffle = s.noShuffle
	u.Passives = NewPassiveTriggerRegistry(u, s.Bus, s.Board, s)
	if err := s.Board.PlaceUnit(u, at); err != nil {
		u.Passives.Dispose()
		return nil, err
	}
	s.units = append(s.units, u)
	s.byID[u.ID] = u
	return u, nil
}

// Ready builds the unit's deck from its finished loadout and refreshes its
// passive set. Call after equipping relics, before Run.
func (s *Skirmish) Ready(u *Unit) {
	u.Deck.Build()
	u.Passives.Refresh()
}

// Dispose releases every bus subscription. The skirmish is unusable after.
func (s *Skirmish) Dispose() {
	for _, u := range s.units {
		if u.Passives != nil {
			u.Passives.Dispose()
		}
	}
	if s.logSub != nil {
		s.logSub.Close()
	}
}

// Run executes the skirmish to completion and returns the winning team
// (TeamNone for a draw).
func (s *Skirmish) Run(ctx context.Context) (Team, error) {
	s.ctx = ctx
	for !s.Over {
		if s.Clock.Round >= s.maxRounds {
			s.Over = true
			s.Winner = TeamNone
			s.Result = fmt.Sprintf("round limit reached (%d rounds)", s.maxRounds)
			break
		}
		if err := s.runRound(); err != nil {
			return s.Winner, err
		}
		if err := ctx.Err(); err != nil {
			return TeamNone, err
		}
	}
	s.Bus.Publish(log.NewWinEvent(s.Clock.Round, s.Winner.String(), s.Result))
	return s.Winner, nil
}

func (s *Skirmish) runRound() error {
	s.Clock.Round++
	s.Executor.ResetPerRound()
	for _, u := range s.units {
		u.Deck.ResetPerRound()
	}
	s.Board.TickRound()
	s.Bus.Publish(log.NewRoundStartEvent(s.Clock.Round))

	for _, u := range s.units {
		if s.Over {
			return nil
		}
		if !u.Alive() {
			continue
		}
		if err := s.runTurn(u); err != nil {
			return err
		}
		s.checkVictory()
	}
	return nil
}

func (s *Skirmish) runTurn(u *Unit) error {
	s.Bus.Publish(log.NewTurnStartEvent(s.Clock.Round, u.Name, u.ID))
	stunned := !u.CanAct()
	u.TickTurnStart()

	// Bleed stacks cut at turn start, before the unit acts.
	if bleed := u.Statuses.BleedTotal(); bleed > 0 {
		u.TakeDamage(bleed, nil)
	}
	if !u.Alive() {
		return nil
	}

	u.Resources.RefillEnergy()
	u.Deck.Draw(u.Deck.DrawPerTurn + u.Statuses.DrawBonus())

	if !stunned && u.CanAct() {
		if err := s.actionLoop(u); err != nil {
			return err
		}
	}

	s.Bus.Publish(log.NewTurnEndEvent(s.Clock.Round, u.Name, u.ID))
	return nil
}

func (s *Skirmish) actionLoop(u *Unit) error {
	ctrl := s.controllers[u.Team]
	if ctrl == nil {
		return nil
	}
	for !s.Over && u.CanAct() {
		actions := s.computeActions(u)
		if len(actions) == 1 {
			// Only End Turn remains.
			return nil
		}
		chosen, err := ctrl.ChooseAction(s.ctx, s, actions)
		if err != nil {
			return err
		}
		switch chosen.Type {
		case ActionPlayCard:
			if err := s.executePlay(u, ctrl, chosen.Card); err != nil {
				return err
			}
			s.checkVictory()
		case ActionDrinkGrog:
			u.Resources.DrinkGrog()
		case ActionEndTurn:
			return nil
		}
	}
	return nil
}

// executePlay runs the two-phase target protocol: selecting a target
// commits nothing, and an aborted or unconfirmed selection leaves deck,
// energy, and board state fully unchanged.
func (s *Skirmish) executePlay(u *Unit, ctrl Controller, card *Card) error {
	target, err := ctrl.ChooseTarget(s.ctx, s, card)
	if err != nil {
		return err
	}
	if target == nil {
		return nil // aborted
	}
	ok, err := ctrl.ChooseYesNo(s.ctx, s, fmt.Sprintf("Play %s?", card.Name))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := u.Deck.Play(card, target); err != nil {
		// Precondition failure: state is untouched, surface and move on.
		s.Bus.Publish(log.NewWarningEvent(s.Clock.Round, err.Error()))
	}
	return nil
}

func (s *Skirmish) computeActions(u *Unit) []Action {
	var actions []Action
	for _, card := range u.Deck.Hand() {
		cost := u.Deck.ComputeActualCost(card)
		if !u.Resources.HasEnergy(cost) {
			continue
		}
		if u.Statuses.IsCategoryDisabled(card.Category) {
			continue
		}
		actions = append(actions, Action{
			Type: ActionPlayCard,
			Unit: u,
			Card: card,
			Cost: cost,
			Desc: fmt.Sprintf("Play %s (cost %d)", card.Name, cost),
		})
	}
	if u.Resources.GrogTokens() > 0 {
		actions = append(actions, Action{Type: ActionDrinkGrog, Unit: u})
	}
	actions = append(actions, Action{Type: ActionEndTurn, Unit: u})
	return actions
}

func (s *Skirmish) checkVictory() {
	if s.Over {
		return
	}
	portAlive, starboardAlive := false, false
	for _, u := range s.units {
		if !u.Alive() {
			continue
		}
		switch u.Team {
		case TeamPort:
			portAlive = true
		case TeamStarboard:
			starboardAlive = true
		}
	}
	switch {
	case portAlive && starboardAlive:
		return
	case portAlive:
		s.Winner = TeamPort
		s.Result = "Starboard crew eliminated"
	case starboardAlive:
		s.Winner = TeamStarboard
		s.Result = "Port crew eliminated"
	default:
		s.Winner = TeamNone
		s.Result = "mutual destruction"
	}
	s.Over = true
}
