package board

import (
	"testing"

	"github.com/peterkuimelis/brinefall/internal/game"
	"github.com/peterkuimelis/brinefall/internal/log"
)

func gridUnit(name string, team game.Team) *game.Unit {
	u := game.NewUnit(name, team, game.RoleCaptain, log.NewBus(), &game.Clock{Round: 1})
	return u
}

func TestGridPlaceAndMove(t *testing.T) {
	g := NewGrid(5, 5)
	u := gridUnit("Flint", game.TeamPort)

	if err := g.PlaceUnit(u, game.Cell{X: 1, Y: 1}); err != nil {
		t.Fatalf("place: %v", err)
	}
	if err := g.PlaceUnit(u, game.Cell{X: 2, Y: 2}); err == nil {
		t.Error("double placement should fail")
	}
	if got := g.UnitAt(game.Cell{X: 1, Y: 1}); got != u {
		t.Error("UnitAt should find the placed unit")
	}
	if err := g.MoveUnit(u, game.Cell{X: 3, Y: 3}); err != nil {
		t.Fatalf("move: %v", err)
	}
	if pos, ok := g.PositionOf(u); !ok || pos != (game.Cell{X: 3, Y: 3}) {
		t.Errorf("position = %v, want (3,3)", pos)
	}
	if g.UnitAt(game.Cell{X: 1, Y: 1}) != nil {
		t.Error("old cell should be vacant after the move")
	}
}

func TestGridBoundsAndTerrain(t *testing.T) {
	g := NewGrid(3, 3)
	u := gridUnit("Flint", game.TeamPort)
	g.BlockCell(game.Cell{X: 1, Y: 1})

	if err := g.PlaceUnit(u, game.Cell{X: 5, Y: 5}); err == nil {
		t.Error("out-of-bounds placement should fail")
	}
	if err := g.PlaceUnit(u, game.Cell{X: 1, Y: 1}); err == nil {
		t.Error("placement on terrain should fail")
	}
	if g.CanPlaceUnit(game.Cell{X: 1, Y: 1}) {
		t.Error("terrain cell should not be placeable")
	}
	if err := g.PlaceUnit(u, game.Cell{X: 0, Y: 0}); err != nil {
		t.Fatalf("place: %v", err)
	}
	if err := g.MoveUnit(u, game.Cell{X: -1, Y: 0}); err == nil {
		t.Error("out-of-bounds move should fail")
	}
	if err := g.MoveUnit(u, game.Cell{X: 1, Y: 1}); err == nil {
		t.Error("move onto terrain should fail")
	}
}

func TestGridOccupancy(t *testing.T) {
	g := NewGrid(5, 5)
	a := gridUnit("Flint", game.TeamPort)
	b := gridUnit("Bones", game.TeamStarboard)
	if err := g.PlaceUnit(a, game.Cell{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if err := g.PlaceUnit(b, game.Cell{X: 0, Y: 0}); err == nil {
		t.Error("placement onto an occupied cell should fail")
	}
	if err := g.PlaceUnit(b, game.Cell{X: 1, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if err := g.MoveUnit(b, game.Cell{X: 0, Y: 0}); err == nil {
		t.Error("move onto an occupied cell should fail")
	}

	// Dead units no longer occupy their cell.
	a.Dead = true
	if err := g.MoveUnit(b, game.Cell{X: 0, Y: 0}); err != nil {
		t.Errorf("move onto a dead unit's cell should succeed: %v", err)
	}
}

func TestGridSwap(t *testing.T) {
	g := NewGrid(5, 5)
	a := gridUnit("Flint", game.TeamPort)
	b := gridUnit("Mate", game.TeamPort)
	if err := g.PlaceUnit(a, game.Cell{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if err := g.SwapUnits(a, b); err == nil {
		t.Error("swap with an unplaced unit should fail")
	}
	if err := g.PlaceUnit(b, game.Cell{X: 2, Y: 2}); err != nil {
		t.Fatal(err)
	}
	if err := g.SwapUnits(a, b); err != nil {
		t.Fatalf("swap: %v", err)
	}
	if pos, _ := g.PositionOf(a); pos != (game.Cell{X: 2, Y: 2}) {
		t.Errorf("a at %v, want (2,2)", pos)
	}
	if pos, _ := g.PositionOf(b); pos != (game.Cell{X: 0, Y: 0}) {
		t.Errorf("b at %v, want (0,0)", pos)
	}
}

// Units iterates in placement order; tie-breaks upstream rely on it.
func TestGridStableUnitOrder(t *testing.T) {
	g := NewGrid(5, 5)
	names := []string{"First", "Second", "Third"}
	for i, n := range names {
		if err := g.PlaceUnit(gridUnit(n, game.TeamPort), game.Cell{X: i, Y: 0}); err != nil {
			t.Fatal(err)
		}
	}
	for i, u := range g.Units() {
		if u.Name != names[i] {
			t.Errorf("units[%d] = %s, want %s", i, u.Name, names[i])
		}
	}
}

func TestGridSummonPlacement(t *testing.T) {
	g := NewGrid(5, 5)
	u := gridUnit("Flint", game.TeamPort)
	if err := g.PlaceUnit(u, game.Cell{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}

	totem := &game.SummonedEntity{ID: "t1", Kind: game.SummonTotem, Name: "War Drum", HP: 3, Turns: 2}
	if err := g.PlaceSummon(totem, game.Cell{X: 0, Y: 0}); err == nil {
		t.Error("blocking summon onto an occupied cell should fail")
	}
	if err := g.PlaceSummon(totem, game.Cell{X: 1, Y: 1}); err != nil {
		t.Fatalf("place summon: %v", err)
	}
	if err := g.PlaceSummon(&game.SummonedEntity{ID: "t2", Kind: game.SummonTotem}, game.Cell{X: 1, Y: 1}); err == nil {
		t.Error("second summon on the same cell should fail")
	}
	if !g.IsBlocked(game.Cell{X: 1, Y: 1}) {
		t.Error("a blocking summon should block its cell")
	}

	// Hazards do not block, and punish arrivals.
	hazard := &game.SummonedEntity{ID: "h1", Kind: game.SummonHazard, Name: "Powder Keg", HP: 2, Turns: 3, Owner: u}
	if err := g.PlaceSummon(hazard, game.Cell{X: 2, Y: 0}); err != nil {
		t.Fatalf("place hazard: %v", err)
	}
	if g.IsBlocked(game.Cell{X: 2, Y: 0}) {
		t.Error("hazards should not block movement")
	}
	victim := gridUnit("Bones", game.TeamStarboard)
	victim.HP, victim.MaxHP = 10, 10
	if err := g.PlaceUnit(victim, game.Cell{X: 3, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if err := g.MoveUnit(victim, game.Cell{X: 2, Y: 0}); err != nil {
		t.Fatalf("move onto hazard: %v", err)
	}
	if victim.HP != 8 {
		t.Errorf("victim HP = %d after the hazard, want 8", victim.HP)
	}
}

func TestGridTickRoundExpiry(t *testing.T) {
	g := NewGrid(5, 5)
	keep := &game.SummonedEntity{ID: "a", Kind: game.SummonTotem, HP: 3, Turns: 2}
	expire := &game.SummonedEntity{ID: "b", Kind: game.SummonTotem, HP: 3, Turns: 1}
	smashed := &game.SummonedEntity{ID: "c", Kind: game.SummonTotem, HP: 0, Turns: 5}
	for i, s := range []*game.SummonedEntity{keep, expire, smashed} {
		if err := g.PlaceSummon(s, game.Cell{X: i, Y: 0}); err != nil {
			t.Fatal(err)
		}
	}
	g.TickRound()
	if len(g.Summons()) != 1 || g.SummonAt(game.Cell{X: 0, Y: 0}) == nil {
		t.Errorf("after tick: %d summons, want only the durable one", len(g.Summons()))
	}
	if g.SummonAt(game.Cell{X: 1, Y: 0}) != nil {
		t.Error("expired summon should be gone")
	}
}

func TestGridRemoveUnit(t *testing.T) {
	g := NewGrid(5, 5)
	a := gridUnit("Flint", game.TeamPort)
	b := gridUnit("Bones", game.TeamStarboard)
	if err := g.PlaceUnit(a, game.Cell{X: 0, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if err := g.PlaceUnit(b, game.Cell{X: 1, Y: 0}); err != nil {
		t.Fatal(err)
	}
	g.RemoveUnit(a)
	if _, ok := g.PositionOf(a); ok {
		t.Error("removed unit should have no position")
	}
	if len(g.Units()) != 1 || g.Units()[0] != b {
		t.Error("removed unit should leave the iteration order")
	}
	if err := g.PlaceUnit(a, game.Cell{X: 0, Y: 0}); err != nil {
		t.Errorf("re-placing a removed unit should succeed: %v", err)
	}
}
