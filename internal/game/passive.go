package game

import (
	"fmt"

	"github.com/peterkuimelis/brinefall/internal/log"
)

// Roster resolves unit IDs from the events on the bus back to units.
// The skirmish orchestrator implements it.
type Roster interface {
	UnitByID(id string) *Unit
}

// PassiveTriggerRegistry keeps one unit's passive relics live: it recomputes
// the active set from the Trinket and PassiveUnique slots, reacts to combat
// events on the bus, and answers the pure modifier queries the damage and
// surrender pipelines ask. Subscribes on construction; Dispose releases the
// subscription so handlers never fire against a torn-down unit.
type PassiveTriggerRegistry struct {
	owner  *Unit
	bus    *log.Bus
	board  Board
	roster Roster
	sub    *log.Subscription

	active map[EffectType]*RelicEffectDefinition

	// Per-turn one-shot flags; reset only at the owner's turn-start.
	retaliated   bool
	drewOnDamage bool

	// Victim ID -> attacker ID from the most recent damage event, used to
	// credit kills.
	lastDamager map[string]string
}

func NewPassiveTriggerRegistry(owner *Unit, bus *log.Bus, board Board, roster Roster) *PassiveTriggerRegistry {
	p := &PassiveTriggerRegistry{
		owner:       owner,
		bus:         bus,
		board:       board,
		roster:      roster,
		active:      make(map[EffectType]*RelicEffectDefinition),
		lastDamager: make(map[string]string),
	}
	if bus != nil {
		p.sub = bus.Subscribe(p.handle)
	}
	return p
}

// Dispose releases the bus subscription. Safe to call more than once.
func (p *PassiveTriggerRegistry) Dispose() {
	if p.sub != nil {
		p.sub.Close()
	}
}

// Refresh recomputes the active set from the equipment's passive slots.
// Call after any equipment change.
func (p *PassiveTriggerRegistry) Refresh() {
	p.active = make(map[EffectType]*RelicEffectDefinition)
	if p.owner.Equipment == nil {
		return
	}
	for _, r := range p.owner.Equipment.PassiveRelics() {
		p.active[r.Def.Tag] = r.Def
	}
}

// IsActive reports whether the given passive tag is live. A passives-disabled
// status suppresses everything unconditionally.
func (p *PassiveTriggerRegistry) IsActive(tag EffectType) bool {
	if p.owner.Statuses.PassivesDisabled() {
		return false
	}
	_, ok := p.active[tag]
	return ok
}

// activeHooks yields the live definitions carrying the given hook.
func (p *PassiveTriggerRegistry) activeHooks(hook PassiveHook) []*RelicEffectDefinition {
	var defs []*RelicEffectDefinition
	for tag, def := range p.active {
		if def.Hook == hook && p.IsActive(tag) {
			defs = append(defs, def)
		}
	}
	return defs
}

func (p *PassiveTriggerRegistry) hookTotal(hook PassiveHook) int {
	total := 0
	for _, def := range p.activeHooks(hook) {
		total += def.Value1
	}
	return total
}

func (p *PassiveTriggerRegistry) hookActive(hook PassiveHook) bool {
	return len(p.activeHooks(hook)) > 0
}

func (p *PassiveTriggerRegistry) triggered(def *RelicEffectDefinition, detail string) {
	if p.bus != nil {
		p.bus.Publish(log.NewPassiveTriggeredEvent(
			p.owner.round(), p.owner.Name, p.owner.ID, def.Name, detail))
	}
}

// Modifier queries. Pure reads of the active set; no mutation.

// OutgoingDamageModifier is the multiplier applied to damage this unit
// deals.
func (p *PassiveTriggerRegistry) OutgoingDamageModifier() float64 {
	return 1 + float64(p.hookTotal(HookDamageBonus))/100
}

// IncomingDamageModifier is the multiplier applied to damage this unit
// takes. Never below zero.
func (p *PassiveTriggerRegistry) IncomingDamageModifier() float64 {
	m := 1 - float64(p.hookTotal(HookDamageResist))/100
	if m < 0 {
		m = 0
	}
	return m
}

// AllySurrenderThreshold is the morale fraction at which this unit's allies
// strike their colors, after hold-fast auras.
func (p *PassiveTriggerRegistry) AllySurrenderThreshold() float64 {
	t := DefaultSurrenderFraction - float64(p.hookTotal(HookAllyHoldFast))/100
	if t < 0 {
		t = 0
	}
	return t
}

// EnemySurrenderThreshold is the morale fraction at which enemies facing
// this unit strike their colors, after terror auras.
func (p *PassiveTriggerRegistry) EnemySurrenderThreshold() float64 {
	return DefaultSurrenderFraction + float64(p.hookTotal(HookEnemyTerror))/100
}

// IsImmuneToMoraleFocusFire reports whether concentrated morale attacks are
// shrugged off.
func (p *PassiveTriggerRegistry) IsImmuneToMoraleFocusFire() bool {
	return p.hookActive(HookMoraleFocusFireImmune)
}

// HasNoBuzzDownside reports whether grog drinking skips its buzz cost.
func (p *PassiveTriggerRegistry) HasNoBuzzDownside() bool {
	return p.hookActive(HookNoBuzzDownside)
}

// RelicsNotConsumed reports whether played cards return to hand.
func (p *PassiveTriggerRegistry) RelicsNotConsumed() bool {
	return p.hookActive(HookRelicsNotConsumed)
}

// handle is the bus callback. Dispatch is synchronous; the per-turn flags
// bound any re-entrant chains (a retaliation publishing another attack
// event cannot retaliate again this turn).
func (p *PassiveTriggerRegistry) handle(e log.GameEvent) {
	switch e.Type {
	case log.EventTurnStart:
		p.onTurnStart(e)
	case log.EventTurnEnd:
		p.onTurnEnd(e)
	case log.EventRoundStart:
		p.onRoundStart(e)
	case log.EventUnitDamaged:
		p.onUnitDamaged(e)
	case log.EventUnitDied:
		p.onUnitDied(e)
	case log.EventUnitSurrendered:
		p.onUnitSurrendered(e)
	case log.EventUnitAttacked:
		p.onUnitAttacked(e)
	}
}

func (p *PassiveTriggerRegistry) onTurnStart(e log.GameEvent) {
	if e.UnitID != p.owner.ID {
		return
	}
	// One-shot flags reset exactly here, never mid-turn.
	p.retaliated = false
	p.drewOnDamage = false
	if !p.owner.Alive() {
		return
	}
	for _, def := range p.activeHooks(HookTurnStartDraw) {
		if p.owner.Deck != nil {
			n := p.owner.Deck.Draw(def.Value1)
			p.triggered(def, fmt.Sprintf("drew %d", n))
		}
	}
	for _, def := range p.activeHooks(HookTurnStartEnergy) {
		p.owner.Resources.TrySpendEnergy(-def.Value1)
		p.triggered(def, fmt.Sprintf("+%d energy", def.Value1))
	}
	for _, def := range p.activeHooks(HookTurnStartHeal) {
		p.owner.Heal(def.Value1)
		p.triggered(def, fmt.Sprintf("healed %d", def.Value1))
	}
	for _, def := range p.activeHooks(HookTurnStartMorale) {
		p.owner.RestoreMorale(def.Value1)
		p.triggered(def, fmt.Sprintf("+%d morale", def.Value1))
	}
	for _, def := range p.activeHooks(HookFreeMoveEachTurn) {
		p.owner.Statuses.ApplyEffect(StatusFreeMove, 1, 0, def.Name)
		p.triggered(def, "free move")
	}
	for _, def := range p.activeHooks(HookRangedDiscountEachTurn) {
		p.owner.Statuses.ApplyEffect(StatusRangedCostDown, 1, def.Value1, def.Name)
		p.triggered(def, "ranged discount")
	}
}

func (p *PassiveTriggerRegistry) onTurnEnd(e log.GameEvent) {
	if e.UnitID != p.owner.ID || !p.owner.Alive() {
		return
	}
	for _, def := range p.activeHooks(HookTurnEndHeal) {
		p.owner.Heal(def.Value1)
		p.triggered(def, fmt.Sprintf("healed %d", def.Value1))
	}
}

func (p *PassiveTriggerRegistry) onRoundStart(log.GameEvent) {
	if !p.owner.Alive() {
		return
	}
	for _, def := range p.activeHooks(HookRoundStartGrog) {
		p.owner.Resources.AddGrog(def.Value1)
		p.triggered(def, fmt.Sprintf("+%d grog", def.Value1))
	}
}

func (p *PassiveTriggerRegistry) onUnitDamaged(e log.GameEvent) {
	// Remember who hurt whom for kill credit regardless of owner.
	if e.SourceID != "" {
		p.lastDamager[e.UnitID] = e.SourceID
	}
	if e.UnitID != p.owner.ID || !p.owner.Alive() {
		return
	}
	if !p.drewOnDamage {
		for _, def := range p.activeHooks(HookDrawOnDamaged) {
			if p.owner.Deck != nil {
				p.owner.Deck.Draw(def.Value1)
			}
			if def.Value2 > 0 {
				p.owner.Heal(def.Value2)
			}
			p.drewOnDamage = true
			p.triggered(def, "drew on damage")
		}
	}
	for _, def := range p.activeHooks(HookEnergyOnDamaged) {
		p.owner.Resources.TrySpendEnergy(-def.Value1)
		p.triggered(def, fmt.Sprintf("+%d energy", def.Value1))
	}
	for _, def := range p.activeHooks(HookGritOnDamaged) {
		p.owner.RestoreGrit(def.Value1)
		p.triggered(def, fmt.Sprintf("+%d grit", def.Value1))
	}
}

func (p *PassiveTriggerRegistry) onUnitDied(e log.GameEvent) {
	if !p.owner.Alive() {
		return
	}
	victim := p.lookup(e.UnitID)
	if victim == nil {
		return
	}
	if victim.Team == p.owner.Team && victim.ID != p.owner.ID {
		for _, def := range p.activeHooks(HookMoraleOnAllyDeath) {
			p.owner.RestoreMorale(def.Value1)
			p.triggered(def, fmt.Sprintf("+%d morale", def.Value1))
		}
		return
	}
	if victim.Team == p.owner.Team || p.lastDamager[e.UnitID] != p.owner.ID {
		return
	}
	// Owner felled an enemy.
	for _, def := range p.activeHooks(HookGrogOnKill) {
		p.owner.Resources.AddGrog(def.Value1)
		p.triggered(def, fmt.Sprintf("+%d grog", def.Value1))
	}
	for _, def := range p.activeHooks(HookEnergyOnKill) {
		p.owner.Resources.TrySpendEnergy(-def.Value1)
		p.triggered(def, fmt.Sprintf("+%d energy", def.Value1))
	}
	for _, def := range p.activeHooks(HookHealOnKill) {
		p.owner.Heal(def.Value1)
		p.triggered(def, fmt.Sprintf("healed %d", def.Value1))
	}
	for _, def := range p.activeHooks(HookDrawOnKill) {
		if p.owner.Deck != nil {
			p.owner.Deck.Draw(def.Value1)
		}
		p.triggered(def, "drew a card")
	}
}

func (p *PassiveTriggerRegistry) onUnitSurrendered(e log.GameEvent) {
	if !p.owner.Alive() {
		return
	}
	victim := p.lookup(e.UnitID)
	if victim == nil || victim.Team == p.owner.Team {
		return
	}
	for _, def := range p.activeHooks(HookMoraleOnEnemySurrender) {
		p.owner.RestoreMorale(def.Value1)
		p.triggered(def, fmt.Sprintf("+%d morale", def.Value1))
	}
}

func (p *PassiveTriggerRegistry) onUnitAttacked(e log.GameEvent) {
	if e.UnitID != p.owner.ID || !p.owner.Alive() || p.retaliated {
		return
	}
	attacker := p.lookup(e.SourceID)
	if attacker == nil || attacker.ID == p.owner.ID || !attacker.Alive() {
		return
	}
	defs := p.activeHooks(HookRetaliate)
	if len(defs) == 0 {
		return
	}
	if p.board != nil {
		from, ok1 := p.board.PositionOf(attacker)
		at, ok2 := p.board.PositionOf(p.owner)
		if !ok1 || !ok2 || Manhattan(from, at) > 1 {
			return
		}
	}
	p.retaliated = true
	for _, def := range defs {
		attacker.TakeDamage(def.Value1, p.owner)
		p.triggered(def, fmt.Sprintf("struck back for %d", def.Value1))
	}
}

func (p *PassiveTriggerRegistry) lookup(id string) *Unit {
	if id == "" || p.roster == nil {
		return nil
	}
	return p.roster.UnitByID(id)
}
