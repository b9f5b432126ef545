// Package board provides the grid the skirmish engine fights on.
package board

import (
	"fmt"

	"github.com/peterkuimelis/brinefall/internal/game"
)

// Grid is a rectangular battlefield with static terrain blocks, unit
// positions, and summoned entities. It implements game.Board.
type Grid struct {
	width, height int

	terrain   map[game.Cell]bool // statically blocked cells
	positions map[string]game.Cell
	order     []*game.Unit // placement order, for stable iteration
	summons   []*game.SummonedEntity
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		width:     width,
		height:    height,
		terrain:   make(map[game.Cell]bool),
		positions: make(map[string]game.Cell),
	}
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) InBounds(c game.Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// BlockCell marks a cell as impassable terrain.
func (g *Grid) BlockCell(c game.Cell) {
	g.terrain[c] = true
}

func (g *Grid) IsBlocked(c game.Cell) bool {
	if g.terrain[c] {
		return true
	}
	if s := g.SummonAt(c); s != nil && s.Blocks() {
		return true
	}
	return false
}

func (g *Grid) IsOccupied(c game.Cell) bool {
	return g.UnitAt(c) != nil
}

func (g *Grid) CanPlaceUnit(c game.Cell) bool {
	return g.InBounds(c) && !g.IsBlocked(c) && !g.IsOccupied(c)
}

func (g *Grid) PlaceUnit(u *game.Unit, c game.Cell) error {
	if _, placed := g.positions[u.ID]; placed {
		return fmt.Errorf("place %s: already on the board", u.Name)
	}
	if !g.CanPlaceUnit(c) {
		return fmt.Errorf("place %s: cell (%d,%d) unavailable", u.Name, c.X, c.Y)
	}
	g.positions[u.ID] = c
	g.order = append(g.order, u)
	return nil
}

// MoveUnit relocates u. A hazard on the destination punishes the arrival.
func (g *Grid) MoveUnit(u *game.Unit, c game.Cell) error {
	if _, placed := g.positions[u.ID]; !placed {
		return fmt.Errorf("move %s: not on the board", u.Name)
	}
	if !g.InBounds(c) || g.IsBlocked(c) {
		return fmt.Errorf("move %s: cell (%d,%d) blocked", u.Name, c.X, c.Y)
	}
	if other := g.UnitAt(c); other != nil && other.ID != u.ID {
		return fmt.Errorf("move %s: cell (%d,%d) occupied by %s", u.Name, c.X, c.Y, other.Name)
	}
	g.positions[u.ID] = c
	if s := g.SummonAt(c); s != nil && s.Kind == game.SummonHazard {
		u.TakeDamage(s.HP, s.Owner)
	}
	return nil
}

func (g *Grid) RemoveUnit(u *game.Unit) {
	delete(g.positions, u.ID)
	for i, placed := range g.order {
		if placed.ID == u.ID {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

func (g *Grid) SwapUnits(a, b *game.Unit) error {
	ca, okA := g.positions[a.ID]
	cb, okB := g.positions[b.ID]
	if !okA || !okB {
		return fmt.Errorf("swap: both units must be on the board")
	}
	g.positions[a.ID] = cb
	g.positions[b.ID] = ca
	return nil
}

func (g *Grid) PositionOf(u *game.Unit) (game.Cell, bool) {
	c, ok := g.positions[u.ID]
	return c, ok
}

func (g *Grid) UnitAt(c game.Cell) *game.Unit {
	for _, u := range g.order {
		if pos, ok := g.positions[u.ID]; ok && pos == c && u.Alive() {
			return u
		}
	}
	return nil
}

// Units returns all placed units in placement order. Range sweeps and
// tie-breaks depend on this order being stable.
func (g *Grid) Units() []*game.Unit {
	out := make([]*game.Unit, len(g.order))
	copy(out, g.order)
	return out
}

func (g *Grid) PlaceSummon(e *game.SummonedEntity, c game.Cell) error {
	if !g.InBounds(c) || g.IsBlocked(c) {
		return fmt.Errorf("summon %s: cell (%d,%d) blocked", e.Name, c.X, c.Y)
	}
	if e.Blocks() && g.IsOccupied(c) {
		return fmt.Errorf("summon %s: cell (%d,%d) occupied", e.Name, c.X, c.Y)
	}
	if g.SummonAt(c) != nil {
		return fmt.Errorf("summon %s: cell (%d,%d) taken", e.Name, c.X, c.Y)
	}
	e.Position = c
	g.summons = append(g.summons, e)
	return nil
}

func (g *Grid) RemoveSummon(e *game.SummonedEntity) {
	for i, s := range g.summons {
		if s.ID == e.ID {
			g.summons = append(g.summons[:i], g.summons[i+1:]...)
			return
		}
	}
}

func (g *Grid) SummonAt(c game.Cell) *game.SummonedEntity {
	for _, s := range g.summons {
		if s.Position == c {
			return s
		}
	}
	return nil
}

func (g *Grid) Summons() []*game.SummonedEntity {
	out := make([]*game.SummonedEntity, len(g.summons))
	copy(out, g.summons)
	return out
}

// TickRound ages summoned entities and removes the expired and destroyed.
func (g *Grid) TickRound() {
	kept := g.summons[:0]
	for _, s := range g.summons {
		s.Turns--
		if s.Turns > 0 && s.HP > 0 {
			kept = append(kept, s)
		}
	}
	g.summons = kept
}
