package game

import (
	"strings"
	"testing"

	"github.com/peterkuimelis/brinefall/internal/log"
)

type mapRoster map[string]*Unit

func (m mapRoster) UnitByID(id string) *Unit { return m[id] }

// combatFixture wires two opposing units on a shared bus and board: caster
// at (0,0), victim at (1,0), both sturdy enough to survive a full catalog
// sweep.
type combatFixture struct {
	bus      *log.Bus
	logger   *log.MemoryLogger
	board    *testBoard
	executor *Executor
	roster   mapRoster
	clock    *Clock

	caster *Unit
	victim *Unit
}

func newCombatFixture(t *testing.T) *combatFixture {
	t.Helper()
	c := testCatalog(t)
	f := &combatFixture{
		bus:    log.NewBus(),
		logger: log.NewMemoryLogger(),
		board:  newTestBoard(10, 10),
		roster: make(mapRoster),
		clock:  &Clock{Round: 1},
	}
	f.bus.Subscribe(f.logger.Log)
	f.executor = NewExecutor(f.board, f.bus, f.roster)

	f.caster = f.addUnit(t, c, "Flint", TeamPort, RoleCaptain, Cell{0, 0})
	f.victim = f.addUnit(t, c, "Bones", TeamStarboard, RoleBosun, Cell{1, 0})
	return f
}

func (f *combatFixture) addUnit(t *testing.T, c *Catalog, name string, team Team, role Role, at Cell) *Unit {
	t.Helper()
	u := NewUnit(name, team, role, f.bus, f.clock)
	u.MaxHP, u.HP = 1000, 1000
	u.MaxMorale, u.Morale = 1000, 1000
	u.Equipment = NewEquipmentProfile(c, f.bus)
	u.Equipment.Initialize(role, WeaponCutlass)
	u.Resources = NewResourceManager(u, f.bus)
	u.Deck = NewDeck(u, f.executor, f.bus)
	u.Deck.NoShuffle = true
	u.Passives = NewPassiveTriggerRegistry(u, f.bus, f.board, f.roster)
	if err := f.board.PlaceUnit(u, at); err != nil {
		t.Fatalf("place %s: %v", name, err)
	}
	f.roster[u.ID] = u
	return u
}

func (f *combatFixture) warnings() []log.GameEvent {
	return f.logger.EventsOfType(log.EventWarning)
}

// Every definition in the catalog, weapons included, executes without
// hitting the unknown-effect path.
func TestExecutorCoversCatalog(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)

	all := append([]*RelicEffectDefinition{}, c.Definitions()...)
	all = append(all, c.Weapons()...)
	for _, def := range all {
		// Reset the battlefield so one definition's effect cannot starve
		// the next of a valid target.
		f.executor.ResetPerRound()
		f.board.RemoveUnit(f.caster)
		f.board.RemoveUnit(f.victim)
		f.board.summons = nil
		if err := f.board.PlaceUnit(f.caster, Cell{0, 0}); err != nil {
			t.Fatal(err)
		}
		if err := f.board.PlaceUnit(f.victim, Cell{1, 0}); err != nil {
			t.Fatal(err)
		}
		for _, u := range []*Unit{f.caster, f.victim} {
			u.HP, u.Morale = u.MaxHP, u.MaxMorale
			u.Dead, u.Surrendered = false, false
			u.StunTurns = 0
			u.Statuses.Clear()
		}

		dest := Cell{0, 1}
		_ = f.executor.Execute(MaterializeRelic(def), f.caster, &Target{Unit: f.victim, Cell: &dest})
	}

	for _, w := range f.warnings() {
		if strings.Contains(w.Details, "no handler") {
			t.Errorf("unhandled effect: %s", w.Details)
		}
	}
}

func TestExecutorUnknownShapeWarns(t *testing.T) {
	f := newCombatFixture(t)

	bogus := &RelicEffectDefinition{Tag: "mystery_box", Name: "Mystery Box", Shape: ShapeNone}
	if err := f.executor.Execute(MaterializeRelic(bogus), f.caster, nil); err != nil {
		t.Fatalf("unknown shape should be a no-op, got %v", err)
	}
	found := false
	for _, w := range f.warnings() {
		if strings.Contains(w.Details, "mystery_box") {
			found = true
		}
	}
	if !found {
		t.Error("unknown effect should log a warning")
	}
}

func TestExecutorPassiveTagIsNoop(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)

	passive := c.Lookup(CategoryPassiveUnique, RoleCaptain, 1)
	hpBefore := f.victim.HP
	if err := f.executor.Execute(MaterializeRelic(passive), f.caster, &Target{Unit: f.victim}); err != nil {
		t.Fatalf("passive execute should not error: %v", err)
	}
	if f.victim.HP != hpBefore {
		t.Error("passive play mutated state")
	}
	if len(f.logger.EventsOfType(log.EventPassiveTriggered)) == 0 {
		t.Error("passive play should be logged")
	}
}

func TestExecutorAttackDamage(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)

	sabre := c.WeaponByName("Captain's Sabre") // +3 damage
	hpBefore := f.victim.HP
	if err := f.executor.Execute(MaterializeRelic(sabre), f.caster, &Target{Unit: f.victim}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	want := f.caster.BaseDamage + sabre.Value1
	if got := hpBefore - f.victim.HP; got != want {
		t.Errorf("victim lost %d HP, want %d", got, want)
	}
	if len(f.logger.EventsOfType(log.EventUnitAttacked)) == 0 {
		t.Error("attack should publish an attacked event")
	}
}

func TestExecutorAttackOutOfRange(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)

	if err := f.board.MoveUnit(f.victim, Cell{9, 9}); err != nil {
		t.Fatal(err)
	}
	sabre := c.WeaponByName("Captain's Sabre") // reach 1
	hpBefore := f.victim.HP
	if err := f.executor.Execute(MaterializeRelic(sabre), f.caster, &Target{Unit: f.victim}); err == nil {
		t.Fatal("out-of-range attack should fail")
	}
	if f.victim.HP != hpBefore {
		t.Error("failed attack dealt damage")
	}
}

func TestExecutorAttackPassiveMultipliers(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)

	// Gunner v1 unique: +20% outgoing.
	f.caster.Equipment.InitializeVariant(RoleGunner, WeaponCutlass, 1)
	f.caster.Passives.Refresh()

	sabre := c.WeaponByName("Captain's Sabre")
	hpBefore := f.victim.HP
	if err := f.executor.Execute(MaterializeRelic(sabre), f.caster, &Target{Unit: f.victim}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	base := f.caster.BaseDamage + sabre.Value1
	want := int(float64(base)*1.2 + 0.5)
	if got := hpBefore - f.victim.HP; got != want {
		t.Errorf("victim lost %d HP, want %d with +20%% passive", got, want)
	}
}

// Repeat attacks in a round grind morale harder, unless the victim is
// immune to focus-fire.
func TestExecutorMoraleFocusFire(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)
	sabre := MaterializeRelic(c.WeaponByName("Captain's Sabre"))

	moraleBefore := f.victim.Morale
	_ = f.executor.Execute(sabre, f.caster, &Target{Unit: f.victim})
	firstHit := moraleBefore - f.victim.Morale
	if firstHit != 1 {
		t.Fatalf("first attack cost %d morale, want 1", firstHit)
	}
	moraleBefore = f.victim.Morale
	_ = f.executor.Execute(sabre, f.caster, &Target{Unit: f.victim})
	if got := moraleBefore - f.victim.Morale; got != 2 {
		t.Errorf("second attack cost %d morale, want 2", got)
	}

	// Captain v2 unique: focus-fire immunity.
	f.victim.Equipment.InitializeVariant(RoleCaptain, WeaponCutlass, 2)
	f.victim.Passives.Refresh()
	moraleBefore = f.victim.Morale
	_ = f.executor.Execute(sabre, f.caster, &Target{Unit: f.victim})
	if got := moraleBefore - f.victim.Morale; got != 1 {
		t.Errorf("attack on immune victim cost %d morale, want 1", got)
	}

	// The ledger resets at round boundaries.
	f.executor.ResetPerRound()
	f.victim.Equipment.InitializeVariant(RoleBosun, WeaponCutlass, 1)
	f.victim.Passives.Refresh()
	moraleBefore = f.victim.Morale
	_ = f.executor.Execute(sabre, f.caster, &Target{Unit: f.victim})
	if got := moraleBefore - f.victim.Morale; got != 1 {
		t.Errorf("attack after round reset cost %d morale, want 1", got)
	}
}

func TestExecutorDashAndSecondary(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)

	// Rallying Charge: dash up to 3, then +2 morale.
	dash := c.LookupTag("rally_charge")
	f.caster.Morale = 500
	dest := Cell{0, 2}
	if err := f.executor.Execute(MaterializeRelic(dash), f.caster, &Target{Cell: &dest}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if pos, _ := f.board.PositionOf(f.caster); pos != dest {
		t.Errorf("caster at %v, want %v", pos, dest)
	}
	if f.caster.Morale != 502 {
		t.Errorf("morale = %d, want 502 after the rider", f.caster.Morale)
	}
}

// Displacement onto an occupied or blocked cell fails silently with no
// partial move.
func TestExecutorDashBlockedFailsSilently(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)

	dash := c.LookupTag("rally_charge")
	victimPos, _ := f.board.PositionOf(f.victim)
	before, _ := f.board.PositionOf(f.caster)
	if err := f.executor.Execute(MaterializeRelic(dash), f.caster, &Target{Cell: &victimPos}); err != nil {
		t.Fatalf("blocked dash should be silent, got %v", err)
	}
	if pos, _ := f.board.PositionOf(f.caster); pos != before {
		t.Error("blocked dash moved the caster")
	}
}

func TestExecutorSwap(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)

	ally := f.addUnit(t, c, "Mate", TeamPort, RoleCook, Cell{0, 2})
	swap := c.LookupTag("rope_swing") // swap with an ally within 3
	casterPos, _ := f.board.PositionOf(f.caster)
	allyPos, _ := f.board.PositionOf(ally)
	if err := f.executor.Execute(MaterializeRelic(swap), f.caster, &Target{Unit: ally}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if pos, _ := f.board.PositionOf(f.caster); pos != allyPos {
		t.Error("caster did not take the ally's cell")
	}
	if pos, _ := f.board.PositionOf(ally); pos != casterPos {
		t.Error("ally did not take the caster's cell")
	}

	// Out of range: silent no-op.
	if err := f.board.MoveUnit(ally, Cell{9, 9}); err != nil {
		t.Fatal(err)
	}
	before, _ := f.board.PositionOf(f.caster)
	if err := f.executor.Execute(MaterializeRelic(swap), f.caster, &Target{Unit: ally}); err != nil {
		t.Fatalf("out-of-range swap should be silent, got %v", err)
	}
	if pos, _ := f.board.PositionOf(f.caster); pos != before {
		t.Error("out-of-range swap moved the caster")
	}
}

func TestExecutorPushStopsAtBlock(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)

	push := c.LookupTag("haul_the_line") // push 2
	f.board.blocked[Cell{3, 0}] = true
	if err := f.executor.Execute(MaterializeRelic(push), f.caster, &Target{Unit: f.victim}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if pos, _ := f.board.PositionOf(f.victim); pos != (Cell{2, 0}) {
		t.Errorf("victim at %v, want (2,0) short of the block", pos)
	}
}

func TestExecutorBuffAlliesInRange(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)
	ally := f.addUnit(t, c, "Mate", TeamPort, RoleCook, Cell{0, 1})
	far := f.addUnit(t, c, "Straggler", TeamPort, RoleCook, Cell{9, 9})

	banner := c.LookupTag("standard_of_the_fleet") // allies within 2: DamageUp 1
	if err := f.executor.Execute(MaterializeRelic(banner), f.caster, nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if f.caster.Statuses.DamageBonus() != 1 {
		t.Error("caster should be buffed by its own banner")
	}
	if ally.Statuses.DamageBonus() != 1 {
		t.Error("nearby ally should be buffed")
	}
	if far.Statuses.DamageBonus() != 0 {
		t.Error("out-of-range ally should not be buffed")
	}
	if f.victim.Statuses.DamageBonus() != 0 {
		t.Error("enemy should not be buffed")
	}
}

// Highest-HP ties pick exactly one unit: the first qualifying in board
// order.
func TestExecutorHighestHPTieBreak(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)
	second := f.addUnit(t, c, "Rival", TeamStarboard, RoleCook, Cell{2, 0})
	f.victim.HP, second.HP = 500, 500

	def := &RelicEffectDefinition{
		Tag: "test_mark", Name: "Mark", Shape: ShapeBuff,
		Status: StatusDamageDown, Value1: 1, Duration: 1,
		Target: TargetHighestHPEnemy,
	}
	if err := f.executor.Execute(MaterializeRelic(def), f.caster, nil); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	marked := 0
	if f.victim.Statuses.DamageBonus() < 0 {
		marked++
	}
	if second.Statuses.DamageBonus() < 0 {
		marked++
	}
	if marked != 1 {
		t.Fatalf("%d units marked, want exactly 1", marked)
	}
	if f.victim.Statuses.DamageBonus() >= 0 {
		t.Error("tie should resolve to the first unit in board order")
	}
}

func TestExecutorSummon(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)

	cannon := c.LookupTag("deck_cannon")
	dest := Cell{0, 1}
	if err := f.executor.Execute(MaterializeRelic(cannon), f.caster, &Target{Cell: &dest}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	s := f.board.SummonAt(dest)
	if s == nil {
		t.Fatal("no summon placed")
	}
	if s.Kind != SummonCannon || s.HP != cannon.Value1 || s.Turns != cannon.Duration {
		t.Errorf("summon = %+v, want kind/HP/turns from the definition", s)
	}

	// Placing onto the same cell again fails.
	if err := f.executor.Execute(MaterializeRelic(cannon), f.caster, &Target{Cell: &dest}); err == nil {
		t.Error("summon onto a taken cell should fail")
	}
}

func TestExecutorStunRider(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)

	lash := c.LookupTag("lash_of_order") // attack + stun 1
	if err := f.executor.Execute(MaterializeRelic(lash), f.caster, &Target{Unit: f.victim}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if f.victim.StunTurns == 0 {
		t.Error("victim should be stunned by the rider")
	}
}
