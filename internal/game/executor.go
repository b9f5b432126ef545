package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/peterkuimelis/brinefall/internal/log"
)

// Target carries a play's resolved target: a unit, a cell, or neither for
// self-targeted relics.
type Target struct {
	Unit *Unit
	Cell *Cell
}

// Executor applies relic effects to the board. It is stateless apart from
// the per-round focus-fire ledger and dispatches on the definition's shape,
// so a new relic of an existing shape needs no new code here.
type Executor struct {
	board  Board
	bus    *log.Bus
	roster Roster

	// Attacks landed on each unit this round; repeat attacks grind morale
	// harder unless the victim is immune to focus-fire.
	attacksThisRound map[string]int
}

func NewExecutor(board Board, bus *log.Bus, roster Roster) *Executor {
	return &Executor{
		board:            board,
		bus:              bus,
		roster:           roster,
		attacksThisRound: make(map[string]int),
	}
}

func (x *Executor) publish(e log.GameEvent) {
	if x.bus != nil {
		x.bus.Publish(e)
	}
}

// ResetPerRound clears the focus-fire ledger at round boundaries.
func (x *Executor) ResetPerRound() {
	x.attacksThisRound = make(map[string]int)
}

// Execute dispatches one relic play. Passive-tagged relics are a logged
// no-op here: they live in the trigger registry, never in direct play.
// A definition with no recognized shape is a warned no-op, never a crash.
func (x *Executor) Execute(relic *EquippedRelic, caster *Unit, target *Target) error {
	def := relic.Def
	if target == nil {
		target = &Target{}
	}
	switch def.Shape {
	case ShapeMovement:
		return x.executeMovement(def, caster, target)
	case ShapeAttack:
		return x.executeAttack(def, caster, target)
	case ShapeBuff:
		return x.executeBuff(def, caster, target)
	case ShapeResource:
		return x.executeResource(def, caster)
	case ShapeSummon:
		return x.executeSummon(def, caster, target)
	case ShapePassive:
		x.publish(log.NewPassiveTriggeredEvent(caster.round(), caster.Name, caster.ID,
			def.Name, "passive relic, no direct play effect"))
		return nil
	default:
		x.publish(log.NewWarningEvent(caster.round(),
			fmt.Sprintf("no handler for effect %q, skipping", def.Tag)))
		return nil
	}
}

// executeMovement relocates, swaps, or pushes, then chains the secondary
// effect. Displacement onto a blocked or occupied cell fails silently with
// no partial move.
func (x *Executor) executeMovement(def *RelicEffectDefinition, caster *Unit, target *Target) error {
	switch def.Move {
	case MoveDash:
		if target.Cell == nil {
			return fmt.Errorf("%s: needs a destination cell", def.Name)
		}
		from, ok := x.board.PositionOf(caster)
		if !ok {
			return fmt.Errorf("%s: %s is not on the board", def.Name, caster.Name)
		}
		dest := *target.Cell
		if Manhattan(from, dest) > def.TileRange {
			return fmt.Errorf("%s: destination out of range", def.Name)
		}
		if !x.board.CanPlaceUnit(dest) {
			return nil // silent: no partial move
		}
		if err := x.board.MoveUnit(caster, dest); err != nil {
			return nil
		}
		x.publish(log.NewUnitMovedEvent(caster.round(), caster.Name, caster.ID, dest.X, dest.Y))
	case MoveSwap:
		if target.Unit == nil {
			return fmt.Errorf("%s: needs a unit to swap with", def.Name)
		}
		from, ok1 := x.board.PositionOf(caster)
		to, ok2 := x.board.PositionOf(target.Unit)
		if !ok1 || !ok2 || Manhattan(from, to) > def.TileRange {
			return nil
		}
		if err := x.board.SwapUnits(caster, target.Unit); err != nil {
			return nil
		}
		x.publish(log.NewUnitMovedEvent(caster.round(), caster.Name, caster.ID, to.X, to.Y))
		x.publish(log.NewUnitMovedEvent(caster.round(), target.Unit.Name, target.Unit.ID, from.X, from.Y))
	case MovePush:
		if target.Unit == nil {
			return fmt.Errorf("%s: needs a unit to push", def.Name)
		}
		x.push(caster, target.Unit, def.Value2)
	}
	x.applySecondary(def, caster, caster)
	return nil
}

// push shoves victim directly away from caster one cell at a time, stopping
// at the first cell it cannot enter.
func (x *Executor) push(caster, victim *Unit, distance int) {
	from, ok1 := x.board.PositionOf(caster)
	at, ok2 := x.board.PositionOf(victim)
	if !ok1 || !ok2 {
		return
	}
	dx, dy := sign(at.X-from.X), sign(at.Y-from.Y)
	if dx != 0 && dy != 0 {
		dy = 0 // push along the dominant axis only
	}
	if dx == 0 && dy == 0 {
		return
	}
	moved := false
	for i := 0; i < distance; i++ {
		next := Cell{at.X + dx, at.Y + dy}
		if !x.board.CanPlaceUnit(next) {
			break
		}
		if err := x.board.MoveUnit(victim, next); err != nil {
			break
		}
		at = next
		moved = true
	}
	if moved {
		x.publish(log.NewUnitMovedEvent(victim.round(), victim.Name, victim.ID, at.X, at.Y))
	}
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// executeAttack runs the weapon-style strike: base damage plus the relic's
// bonus, scaled by the attacker's outgoing and the victim's incoming
// passive multipliers, then the secondary status or resource.
func (x *Executor) executeAttack(def *RelicEffectDefinition, caster *Unit, target *Target) error {
	victim := target.Unit
	if victim == nil {
		return fmt.Errorf("%s: needs a target", def.Name)
	}
	if !victim.Alive() {
		return fmt.Errorf("%s: %s is out of the fight", def.Name, victim.Name)
	}
	reach := def.TileRange
	if reach < 1 {
		reach = 1
	}
	from, ok1 := x.board.PositionOf(caster)
	at, ok2 := x.board.PositionOf(victim)
	if ok1 && ok2 && Manhattan(from, at) > reach {
		return fmt.Errorf("%s: %s is out of range", def.Name, victim.Name)
	}

	x.publish(log.NewUnitAttackedEvent(victim.round(), victim.Name, victim.ID, caster.Name, caster.ID))

	dmg := caster.BaseDamage + def.Value1 + caster.Statuses.DamageBonus()
	if dmg < 0 {
		dmg = 0
	}
	scaled := float64(dmg)
	if caster.Passives != nil {
		scaled *= caster.Passives.OutgoingDamageModifier()
	}
	if victim.Passives != nil {
		scaled *= victim.Passives.IncomingDamageModifier()
	}
	victim.TakeDamage(int(scaled+0.5), caster)

	if victim.Alive() {
		x.applyMoraleStrike(caster, victim)
		x.applySecondary(def, caster, victim)
	}
	x.attacksThisRound[victim.ID]++
	return nil
}

// applyMoraleStrike grinds the victim's morale. Repeat attacks in the same
// round hit morale harder unless the victim is immune to focus-fire.
func (x *Executor) applyMoraleStrike(caster, victim *Unit) {
	morale := 1
	repeats := x.attacksThisRound[victim.ID]
	if repeats > 0 && (victim.Passives == nil || !victim.Passives.IsImmuneToMoraleFocusFire()) {
		morale += repeats
	}
	victim.ApplyMoraleDamage(morale, x.surrenderThresholdFor(victim, caster))
}

// surrenderThresholdFor composes the victim's allies' hold-fast auras and
// the attacker's terror aura around the default fraction.
func (x *Executor) surrenderThresholdFor(victim, attacker *Unit) float64 {
	t := DefaultSurrenderFraction
	for _, u := range x.allUnits() {
		if u.Team != victim.Team || u.ID == victim.ID || !u.Alive() || u.Passives == nil {
			continue
		}
		if held := u.Passives.AllySurrenderThreshold(); held < t {
			t = held
		}
	}
	if attacker != nil && attacker.Passives != nil {
		t += attacker.Passives.EnemySurrenderThreshold() - DefaultSurrenderFraction
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t
}

// executeBuff lands a timed status on the selected units, plus the optional
// secondary resource for the caster.
func (x *Executor) executeBuff(def *RelicEffectDefinition, caster *Unit, target *Target) error {
	recipients := x.selectTargets(def, caster, target)
	if len(recipients) == 0 {
		return fmt.Errorf("%s: no valid target", def.Name)
	}
	for _, u := range recipients {
		u.Statuses.ApplyEffect(def.Status, def.Duration, def.Value1, def.Name)
		x.publish(log.NewStatusAppliedEvent(u.round(), u.Name, u.ID, def.Status.String(), def.Duration))
	}
	if def.Resource != ResourceNone && def.Value2 > 0 {
		x.grantResource(caster, def.Resource, def.Value2)
	}
	return nil
}

// executeResource grants the primary pool, plus a morale chaser when value2
// is set.
func (x *Executor) executeResource(def *RelicEffectDefinition, caster *Unit) error {
	x.grantResource(caster, def.Resource, def.Value1)
	if def.Value2 > 0 && def.Resource != ResourceMorale {
		caster.RestoreMorale(def.Value2)
	}
	return nil
}

func (x *Executor) grantResource(u *Unit, kind ResourceKind, amount int) {
	if amount <= 0 {
		return
	}
	switch kind {
	case ResourceEnergy:
		u.Resources.TrySpendEnergy(-amount)
	case ResourceGrog:
		u.Resources.AddGrog(amount)
	case ResourceDraw:
		if u.Deck != nil {
			u.Deck.Draw(amount)
		}
	case ResourceGrit:
		u.RestoreGrit(amount)
	case ResourceMorale:
		u.RestoreMorale(amount)
	}
}

// executeSummon places a board entity with its HP, radius, and lifetime.
func (x *Executor) executeSummon(def *RelicEffectDefinition, caster *Unit, target *Target) error {
	if target.Cell == nil {
		return fmt.Errorf("%s: needs a placement cell", def.Name)
	}
	from, ok := x.board.PositionOf(caster)
	if !ok {
		return fmt.Errorf("%s: %s is not on the board", def.Name, caster.Name)
	}
	dest := *target.Cell
	if Manhattan(from, dest) > def.TileRange {
		return fmt.Errorf("%s: placement out of range", def.Name)
	}
	entity := &SummonedEntity{
		ID:       uuid.NewString(),
		Kind:     def.Summon,
		Name:     def.Name,
		Owner:    caster,
		HP:       def.Value1,
		Radius:   def.Value2,
		Turns:    def.Duration,
		Position: dest,
	}
	if err := x.board.PlaceSummon(entity, dest); err != nil {
		return fmt.Errorf("%s: %w", def.Name, err)
	}
	x.publish(log.NewSummonEvent(caster.round(), caster.Name, caster.ID, def.Name, dest.X, dest.Y))
	return nil
}

// applySecondary lands an attack's or move's rider: a status on the victim
// or caster, or a resource for the caster.
func (x *Executor) applySecondary(def *RelicEffectDefinition, caster, victim *Unit) {
	if def.Status != StatusNone {
		mag := def.Value2
		if def.Shape == ShapeMovement {
			mag = def.Value1
		}
		recipient := victim
		if def.SelfStatus {
			recipient = caster
		}
		if def.Status == StatusStunned {
			recipient.ApplyStun(def.Duration)
		} else {
			recipient.Statuses.ApplyEffect(def.Status, def.Duration, mag, def.Name)
		}
		x.publish(log.NewStatusAppliedEvent(recipient.round(), recipient.Name, recipient.ID,
			def.Status.String(), def.Duration))
		return
	}
	if def.Resource != ResourceNone {
		amount := def.Value2
		if def.Shape == ShapeMovement {
			amount = def.Value1
		}
		x.grantResource(caster, def.Resource, amount)
	}
}

// selectTargets resolves a buff's recipients from its selector. Range
// queries use Manhattan distance; closest-enemy ties break on stable
// iteration order; highest-HP ties take the first qualifying unit.
func (x *Executor) selectTargets(def *RelicEffectDefinition, caster *Unit, target *Target) []*Unit {
	switch def.Target {
	case TargetSelf:
		return []*Unit{caster}
	case TargetAlly, TargetEnemy:
		if target.Unit == nil || !target.Unit.Alive() {
			return nil
		}
		return []*Unit{target.Unit}
	case TargetAlliesInRange:
		return x.unitsInRange(caster, def.TileRange, caster.Team, true)
	case TargetEnemiesInRange:
		return x.unitsInRange(caster, def.TileRange, caster.Team.Opponent(), false)
	case TargetClosestEnemy:
		if u := x.closestEnemy(caster); u != nil {
			return []*Unit{u}
		}
		return nil
	case TargetHighestHPEnemy:
		if u := x.highestHPEnemy(caster); u != nil {
			return []*Unit{u}
		}
		return nil
	}
	return []*Unit{caster}
}

// unitsInRange returns living units of team within rng of caster.
// includeSelf keeps the caster in ally sweeps.
func (x *Executor) unitsInRange(caster *Unit, rng int, team Team, includeSelf bool) []*Unit {
	from, ok := x.board.PositionOf(caster)
	if !ok {
		return nil
	}
	var result []*Unit
	for _, u := range x.allUnits() {
		if !u.Alive() || u.Team != team {
			continue
		}
		if u.ID == caster.ID && !includeSelf {
			continue
		}
		at, ok := x.board.PositionOf(u)
		if !ok || Manhattan(from, at) > rng {
			continue
		}
		result = append(result, u)
	}
	return result
}

func (x *Executor) closestEnemy(caster *Unit) *Unit {
	from, ok := x.board.PositionOf(caster)
	if !ok {
		return nil
	}
	var best *Unit
	bestDist := 0
	for _, u := range x.allUnits() {
		if !u.Alive() || u.Team != caster.Team.Opponent() {
			continue
		}
		at, ok := x.board.PositionOf(u)
		if !ok {
			continue
		}
		d := Manhattan(from, at)
		if best == nil || d < bestDist {
			best, bestDist = u, d
		}
	}
	return best
}

// highestHPEnemy picks one of the enemies tied for most HP; ties resolve
// to whichever comes first in board order.
func (x *Executor) highestHPEnemy(caster *Unit) *Unit {
	var best *Unit
	for _, u := range x.allUnits() {
		if !u.Alive() || u.Team != caster.Team.Opponent() {
			continue
		}
		if best == nil || u.HP > best.HP {
			best = u
		}
	}
	return best
}

func (x *Executor) allUnits() []*Unit {
	if x.board == nil {
		return nil
	}
	return x.board.Units()
}
