package game

import (
	"context"
	"errors"
	"testing"

	"github.com/peterkuimelis/brinefall/internal/log"
)

var errCellTaken = errors.New("cell unavailable")

// testCatalog builds the full catalog once per test.
func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := BuildCatalog(CatalogOptions{})
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}
	return c
}

// nopExecutor satisfies CardExecutor for deck tests that don't care about
// effects.
type nopExecutor struct{}

func (nopExecutor) Execute(*EquippedRelic, *Unit, *Target) error { return nil }

// testUnit wires a unit with equipment, resources, statuses, and a
// no-shuffle deck backed by a nop executor.
func testUnit(t *testing.T, catalog *Catalog, name string, team Team, role Role, family WeaponFamily) *Unit {
	t.Helper()
	bus := log.NewBus()
	clock := &Clock{Round: 1}
	u := NewUnit(name, team, role, bus, clock)
	u.Equipment = NewEquipmentProfile(catalog, bus)
	u.Equipment.Initialize(role, family)
	u.Resources = NewResourceManager(u, bus)
	u.Deck = NewDeck(u, nopExecutor{}, bus)
	u.Deck.NoShuffle = true
	return u
}

// equip pulls a relic from the catalog and equips it, failing the test on
// a miss.
func equip(t *testing.T, catalog *Catalog, u *Unit, cat Category, variant int) {
	t.Helper()
	def := catalog.Lookup(cat, u.Role, variant)
	if def == nil {
		t.Fatalf("no %s relic for %s v%d", cat, u.Role, variant)
	}
	if err := u.Equipment.EquipCategory(cat, MaterializeRelic(def)); err != nil {
		t.Fatalf("equip %s: %v", cat, err)
	}
}

// equipWeapon equips a named weapon, failing the test on a miss.
func equipWeapon(t *testing.T, catalog *Catalog, u *Unit, name string) {
	t.Helper()
	w := catalog.WeaponByName(name)
	if w == nil {
		t.Fatalf("no weapon %q", name)
	}
	if err := u.Equipment.EquipWeapon(MaterializeRelic(w)); err != nil {
		t.Fatalf("equip weapon %s: %v", name, err)
	}
}

// testBoard is a minimal Board for engine tests; the production grid lives
// in internal/board.
type testBoard struct {
	width, height int
	blocked       map[Cell]bool
	positions     map[string]Cell
	order         []*Unit
	summons       []*SummonedEntity
}

func newTestBoard(width, height int) *testBoard {
	return &testBoard{
		width:     width,
		height:    height,
		blocked:   make(map[Cell]bool),
		positions: make(map[string]Cell),
	}
}

func (b *testBoard) Width() int  { return b.width }
func (b *testBoard) Height() int { return b.height }
func (b *testBoard) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}
func (b *testBoard) IsBlocked(c Cell) bool {
	if b.blocked[c] {
		return true
	}
	if s := b.SummonAt(c); s != nil && s.Blocks() {
		return true
	}
	return false
}
func (b *testBoard) IsOccupied(c Cell) bool { return b.UnitAt(c) != nil }
func (b *testBoard) CanPlaceUnit(c Cell) bool {
	return b.InBounds(c) && !b.IsBlocked(c) && !b.IsOccupied(c)
}
func (b *testBoard) PlaceUnit(u *Unit, c Cell) error {
	if !b.CanPlaceUnit(c) {
		return errCellTaken
	}
	b.positions[u.ID] = c
	b.order = append(b.order, u)
	return nil
}
func (b *testBoard) MoveUnit(u *Unit, c Cell) error {
	if !b.InBounds(c) || b.IsBlocked(c) {
		return errCellTaken
	}
	if other := b.UnitAt(c); other != nil && other.ID != u.ID {
		return errCellTaken
	}
	b.positions[u.ID] = c
	return nil
}
func (b *testBoard) RemoveUnit(u *Unit) { delete(b.positions, u.ID) }
func (b *testBoard) SwapUnits(x, y *Unit) error {
	cx, okX := b.positions[x.ID]
	cy, okY := b.positions[y.ID]
	if !okX || !okY {
		return errCellTaken
	}
	b.positions[x.ID], b.positions[y.ID] = cy, cx
	return nil
}
func (b *testBoard) PositionOf(u *Unit) (Cell, bool) {
	c, ok := b.positions[u.ID]
	return c, ok
}
func (b *testBoard) UnitAt(c Cell) *Unit {
	for _, u := range b.order {
		if pos, ok := b.positions[u.ID]; ok && pos == c && u.Alive() {
			return u
		}
	}
	return nil
}
func (b *testBoard) Units() []*Unit { return b.order }
func (b *testBoard) TickRound()     {}
func (b *testBoard) PlaceSummon(e *SummonedEntity, c Cell) error {
	if !b.InBounds(c) || b.IsBlocked(c) {
		return errCellTaken
	}
	if e.Blocks() && b.IsOccupied(c) {
		return errCellTaken
	}
	e.Position = c
	b.summons = append(b.summons, e)
	return nil
}
func (b *testBoard) RemoveSummon(e *SummonedEntity) {
	for i, s := range b.summons {
		if s.ID == e.ID {
			b.summons = append(b.summons[:i], b.summons[i+1:]...)
			return
		}
	}
}
func (b *testBoard) SummonAt(c Cell) *SummonedEntity {
	for _, s := range b.summons {
		if s.Position == c {
			return s
		}
	}
	return nil
}
func (b *testBoard) Summons() []*SummonedEntity { return b.summons }

// ScriptedController is a Controller that follows a predefined script.
// Used in tests to deterministically drive a skirmish.
type ScriptedController struct {
	t    *testing.T
	name string

	actions []scriptedAction
	pos     int

	targets   []scriptedTarget
	targetPos int
}

type scriptedAction struct {
	Type     ActionType
	CardName string
}

type scriptedTarget struct {
	UnitName string
	Cell     *Cell
	Abort    bool
}

func NewScriptedController(t *testing.T, name string) *ScriptedController {
	return &ScriptedController{t: t, name: name}
}

func (sc *ScriptedController) AddPlay(cardName string) *ScriptedController {
	sc.actions = append(sc.actions, scriptedAction{Type: ActionPlayCard, CardName: cardName})
	return sc
}

func (sc *ScriptedController) AddDrink() *ScriptedController {
	sc.actions = append(sc.actions, scriptedAction{Type: ActionDrinkGrog})
	return sc
}

// AddUnitTarget scripts the next ChooseTarget response to point at a unit
// by name.
func (sc *ScriptedController) AddUnitTarget(name string) *ScriptedController {
	sc.targets = append(sc.targets, scriptedTarget{UnitName: name})
	return sc
}

// AddCellTarget scripts the next ChooseTarget response to point at a cell.
func (sc *ScriptedController) AddCellTarget(x, y int) *ScriptedController {
	sc.targets = append(sc.targets, scriptedTarget{Cell: &Cell{x, y}})
	return sc
}

// AddAbort scripts the next ChooseTarget response to cancel the play.
func (sc *ScriptedController) AddAbort() *ScriptedController {
	sc.targets = append(sc.targets, scriptedTarget{Abort: true})
	return sc
}

func (sc *ScriptedController) ChooseAction(ctx context.Context, s *Skirmish, actions []Action) (Action, error) {
	if sc.pos < len(sc.actions) {
		scripted := sc.actions[sc.pos]
		for _, a := range actions {
			if a.Type != scripted.Type {
				continue
			}
			if scripted.CardName != "" && (a.Card == nil || a.Card.Name != scripted.CardName) {
				continue
			}
			sc.pos++
			return a, nil
		}
	}
	// Default: end the turn.
	for _, a := range actions {
		if a.Type == ActionEndTurn {
			return a, nil
		}
	}
	return actions[len(actions)-1], nil
}

func (sc *ScriptedController) ChooseTarget(ctx context.Context, s *Skirmish, card *Card) (*Target, error) {
	if sc.targetPos < len(sc.targets) {
		scripted := sc.targets[sc.targetPos]
		sc.targetPos++
		if scripted.Abort {
			return nil, nil
		}
		if scripted.Cell != nil {
			return &Target{Cell: scripted.Cell}, nil
		}
		for _, u := range s.Units() {
			if u.Name == scripted.UnitName {
				return &Target{Unit: u}, nil
			}
		}
		sc.t.Fatalf("%s: scripted target %q not found", sc.name, scripted.UnitName)
	}
	return &Target{}, nil
}

func (sc *ScriptedController) ChooseYesNo(ctx context.Context, s *Skirmish, prompt string) (bool, error) {
	return true, nil
}

func (sc *ScriptedController) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}
