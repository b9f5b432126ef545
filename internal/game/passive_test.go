package game

import (
	"math"
	"testing"

	"github.com/peterkuimelis/brinefall/internal/log"
)

func (f *combatFixture) turnStart(u *Unit) {
	f.bus.Publish(log.NewTurnStartEvent(f.clock.Round, u.Name, u.ID))
}

func TestPassiveRefreshTracksEquipment(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)
	u := f.caster

	u.Passives.Refresh()
	if !u.Passives.IsActive("born_to_lead") {
		t.Error("locked unique should be active after refresh")
	}
	if u.Passives.IsActive("compass_of_command") {
		t.Error("unequipped trinket should not be active")
	}

	equip(t, c, u, CategoryTrinket, 1) // Compass of Command
	if u.Passives.IsActive("compass_of_command") {
		t.Error("equipment change should not take effect before refresh")
	}
	u.Passives.Refresh()
	if !u.Passives.IsActive("compass_of_command") {
		t.Error("equipped trinket should be active after refresh")
	}
}

func TestPassivesDisabledStatusSuppressesAll(t *testing.T) {
	f := newCombatFixture(t)
	u := f.caster
	u.Passives.Refresh()

	u.Statuses.ApplyEffect(StatusPassivesDisabled, 1, 0, "test")
	if u.Passives.IsActive("born_to_lead") {
		t.Error("disabled passives should report inactive")
	}
	if got := u.Passives.AllySurrenderThreshold(); got != DefaultSurrenderFraction {
		t.Errorf("threshold = %v while disabled, want the default %v", got, DefaultSurrenderFraction)
	}
	u.Statuses.Clear()
	if !u.Passives.IsActive("born_to_lead") {
		t.Error("clearing the status should restore the passive")
	}
}

// Turn-start hooks fire only on the owner's own turn-start event.
func TestPassiveTurnStartMoraleOwnerOnly(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)
	u := f.caster
	equip(t, c, u, CategoryTrinket, 1) // Compass of Command: +1 morale
	u.Passives.Refresh()
	u.Morale = 500

	f.turnStart(f.victim)
	if u.Morale != 500 {
		t.Error("hook fired on an enemy's turn start")
	}
	f.turnStart(u)
	if u.Morale != 501 {
		t.Errorf("morale = %d after own turn start, want 501", u.Morale)
	}
}

func TestPassiveTurnStartOneShotStatuses(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)
	nav := f.addUnit(t, c, "Reed", TeamPort, RoleNavigator, Cell{0, 5})
	equip(t, c, nav, CategoryTrinket, 1) // Polished Astrolabe: free move
	nav.Passives.Refresh()

	f.turnStart(nav)
	if !nav.Statuses.HasFreeMove() {
		t.Error("free move should be granted at turn start")
	}

	gun := f.addUnit(t, c, "Sparks", TeamPort, RoleGunner, Cell{0, 6})
	equip(t, c, gun, CategoryTrinket, 1) // Smoldering Matchcord: ranged discount
	gun.Passives.Refresh()

	f.turnStart(gun)
	if gun.Statuses.RangedCostReduction() == 0 {
		t.Error("ranged discount should be granted at turn start")
	}
}

func TestPassiveRetaliateOncePerTurn(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)
	bosun := f.addUnit(t, c, "Briggs", TeamStarboard, RoleBosun, Cell{2, 0})
	equip(t, c, bosun, CategoryTrinket, 1) // Marlinspike Charm: strike back for 2
	bosun.Passives.Refresh()

	attacker := f.caster
	if err := f.board.MoveUnit(attacker, Cell{2, 1}); err != nil { // adjacent
		t.Fatal(err)
	}
	attacked := func() {
		f.bus.Publish(log.NewUnitAttackedEvent(f.clock.Round, bosun.Name, bosun.ID, attacker.Name, attacker.ID))
	}

	hpBefore := attacker.HP
	attacked()
	if got := hpBefore - attacker.HP; got != 2 {
		t.Fatalf("retaliation dealt %d, want 2", got)
	}

	// Once per turn only.
	hpBefore = attacker.HP
	attacked()
	if attacker.HP != hpBefore {
		t.Error("second retaliation in the same turn should not fire")
	}

	// The flag resets at the owner's turn start, and only there.
	f.turnStart(attacker)
	attacked()
	if attacker.HP != hpBefore {
		t.Error("attacker's turn start should not reset the bosun's flag")
	}
	f.turnStart(bosun)
	attacked()
	if got := hpBefore - attacker.HP; got != 2 {
		t.Errorf("retaliation after reset dealt %d, want 2", got)
	}
}

func TestPassiveRetaliateRequiresAdjacency(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)
	bosun := f.addUnit(t, c, "Briggs", TeamStarboard, RoleBosun, Cell{2, 0})
	equip(t, c, bosun, CategoryTrinket, 1)
	bosun.Passives.Refresh()

	attacker := f.caster
	if err := f.board.MoveUnit(attacker, Cell{8, 8}); err != nil {
		t.Fatal(err)
	}
	hpBefore := attacker.HP
	f.bus.Publish(log.NewUnitAttackedEvent(f.clock.Round, bosun.Name, bosun.ID, attacker.Name, attacker.ID))
	if attacker.HP != hpBefore {
		t.Error("retaliation fired against a ranged attacker")
	}
}

func TestPassiveEnergyOnDamaged(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)
	nav := f.addUnit(t, c, "Reed", TeamPort, RoleNavigator, Cell{0, 5})
	nav.Passives.Refresh() // Wind Reader: +1 energy when damaged

	before := nav.Resources.Energy()
	nav.TakeDamage(2, f.victim)
	if got := nav.Resources.Energy(); got != before+1 {
		t.Errorf("energy = %d after damage, want %d", got, before+1)
	}
}

func TestPassiveDrawOnDamagedOncePerTurn(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)
	nav := f.addUnit(t, c, "Reed", TeamPort, RoleNavigator, Cell{0, 5})
	nav.Equipment.InitializeVariant(RoleNavigator, WeaponCutlass, 2) // Never Lost
	equip(t, c, nav, CategoryBoots, 1)
	equip(t, c, nav, CategoryGloves, 1)
	equip(t, c, nav, CategoryHat, 1)
	nav.Passives.Refresh()
	nav.Deck.Build()

	handBefore := len(nav.Deck.Hand())
	nav.TakeDamage(1, f.victim)
	if got := len(nav.Deck.Hand()); got != handBefore+1 {
		t.Errorf("hand = %d after first damage, want %d", got, handBefore+1)
	}
	handBefore = len(nav.Deck.Hand())
	nav.TakeDamage(1, f.victim)
	if got := len(nav.Deck.Hand()); got != handBefore {
		t.Error("draw-on-damaged should fire once per turn")
	}

	f.turnStart(nav)
	handBefore = len(nav.Deck.Hand())
	nav.TakeDamage(1, f.victim)
	if got := len(nav.Deck.Hand()); got != handBefore+1 {
		t.Error("draw-on-damaged should rearm at the owner's turn start")
	}
}

// Kill credit follows the damage trail: the hook fires only when the owner
// landed the killing blow.
func TestPassiveEnergyOnKillCredit(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)
	gun := f.addUnit(t, c, "Sparks", TeamPort, RoleGunner, Cell{0, 6})
	gun.Equipment.InitializeVariant(RoleGunner, WeaponCutlass, 2) // Powder in the Blood
	gun.Passives.Refresh()

	prey := f.addUnit(t, c, "Prey", TeamStarboard, RoleCook, Cell{1, 6})
	prey.HP = 1
	before := gun.Resources.Energy()
	prey.TakeDamage(5, gun)
	if !prey.Dead {
		t.Fatal("prey should be dead")
	}
	if got := gun.Resources.Energy(); got != before+1 {
		t.Errorf("energy = %d after kill, want %d", got, before+1)
	}

	// A kill by someone else earns nothing.
	other := f.addUnit(t, c, "Other", TeamStarboard, RoleCook, Cell{2, 6})
	other.HP = 1
	before = gun.Resources.Energy()
	other.TakeDamage(5, f.caster)
	if got := gun.Resources.Energy(); got != before {
		t.Error("kill credit should not leak to bystanders")
	}
}

func TestPassiveMoraleOnEnemySurrender(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)
	sw := f.addUnit(t, c, "Flash", TeamPort, RoleSwashbuckler, Cell{0, 7})
	sw.Passives.Refresh() // Flair for Drama: +2 morale per enemy surrender
	sw.Morale = 500
	f.victim.Morale = 1
	f.victim.ApplyMoraleDamage(1, DefaultSurrenderFraction)
	if !f.victim.Surrendered {
		t.Fatal("victim should have surrendered")
	}
	if sw.Morale != 502 {
		t.Errorf("morale = %d after enemy surrender, want 502", sw.Morale)
	}
}

func TestPassiveModifierQueries(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)

	gun := f.addUnit(t, c, "Sparks", TeamPort, RoleGunner, Cell{0, 6})
	gun.Passives.Refresh() // Eye for Distance: +20% outgoing
	if got := gun.Passives.OutgoingDamageModifier(); math.Abs(got-1.2) > 1e-9 {
		t.Errorf("outgoing = %v, want 1.2", got)
	}

	bosun := f.addUnit(t, c, "Briggs", TeamStarboard, RoleBosun, Cell{2, 0})
	bosun.Equipment.InitializeVariant(RoleBosun, WeaponCutlass, 2) // Old Salt's Hide: -20% incoming
	bosun.Passives.Refresh()
	if got := bosun.Passives.IncomingDamageModifier(); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("incoming = %v, want 0.8", got)
	}

	f.caster.Passives.Refresh() // Born to Lead: allies hold fast 10%
	if got := f.caster.Passives.AllySurrenderThreshold(); got != DefaultSurrenderFraction-0.10 {
		t.Errorf("ally threshold = %v, want %v", got, DefaultSurrenderFraction-0.10)
	}

	equip(t, c, f.caster, CategoryTrinket, 2) // Epaulettes of Terror: +10%
	f.caster.Passives.Refresh()
	if got := f.caster.Passives.EnemySurrenderThreshold(); got != DefaultSurrenderFraction+0.10 {
		t.Errorf("enemy threshold = %v, want %v", got, DefaultSurrenderFraction+0.10)
	}

	f.victim.Equipment.InitializeVariant(RoleCaptain, WeaponCutlass, 2) // Steel Resolve
	f.victim.Passives.Refresh()
	if !f.victim.Passives.IsImmuneToMoraleFocusFire() {
		t.Error("steel resolve should grant focus-fire immunity")
	}
}

func TestPassiveDisposeStopsHandlers(t *testing.T) {
	c := testCatalog(t)
	f := newCombatFixture(t)
	u := f.caster
	equip(t, c, u, CategoryTrinket, 1) // Compass of Command
	u.Passives.Refresh()
	u.Morale = 500

	subs := f.bus.SubscriberCount()
	u.Passives.Dispose()
	u.Passives.Dispose() // idempotent
	if got := f.bus.SubscriberCount(); got != subs-1 {
		t.Errorf("subscriber count = %d after dispose, want %d", got, subs-1)
	}
	f.turnStart(u)
	if u.Morale != 500 {
		t.Error("disposed registry should not react to events")
	}
}
