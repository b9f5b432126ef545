package game

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Manhattan is the grid distance used for every range query.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// SummonedEntity is a board object spawned by a totem or ultimate relic.
type SummonedEntity struct {
	ID       string
	Kind     SummonKind
	Name     string
	Owner    *Unit
	HP       int
	Radius   int
	Turns    int // rounds remaining; expired entities are removed
	Position Cell
}

// Blocks reports whether the entity occupies its cell for movement.
// Hazards are walked through (and punish it); everything else blocks.
func (e *SummonedEntity) Blocks() bool {
	return e.Kind != SummonHazard
}

// Board is the grid the executor moves units on. The concrete grid lives in
// internal/board; the engine only sees this contract.
type Board interface {
	Width() int
	Height() int
	InBounds(c Cell) bool

	// IsBlocked reports terrain or summoned obstacles at c.
	IsBlocked(c Cell) bool
	// IsOccupied reports a living unit standing at c.
	IsOccupied(c Cell) bool
	// CanPlaceUnit reports whether a unit may be placed or moved onto c.
	CanPlaceUnit(c Cell) bool

	PlaceUnit(u *Unit, c Cell) error
	// MoveUnit relocates u to c. Hazard cells entered en route apply their
	// damage. Moving onto a blocked or occupied cell is an error.
	MoveUnit(u *Unit, c Cell) error
	RemoveUnit(u *Unit)
	// SwapUnits exchanges the positions of two placed units.
	SwapUnits(a, b *Unit) error
	// PositionOf reports u's cell; ok is false if u is not on the board.
	PositionOf(u *Unit) (Cell, bool)
	UnitAt(c Cell) *Unit
	// Units returns all placed units in stable placement order.
	Units() []*Unit

	// TickRound ages summoned entities at round boundaries, removing the
	// expired and the destroyed.
	TickRound()

	PlaceSummon(e *SummonedEntity, c Cell) error
	RemoveSummon(e *SummonedEntity)
	SummonAt(c Cell) *SummonedEntity
	Summons() []*SummonedEntity
}
