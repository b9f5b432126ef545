package game

// StatusEffect is one timed modifier on a unit. Duration is counted in the
// owner's turns; a duration of 0 at apply time means "this turn only".
type StatusEffect struct {
	Kind      StatusKind
	Magnitude int
	Turns     int
	Source    string
}

// StatusApplier is what the effect executor asks for when a relic lands a
// timed modifier. StatusSet is the engine implementation.
type StatusApplier interface {
	ApplyEffect(kind StatusKind, duration, magnitude int, source string)
}

// StatusSet stores one unit's active timed modifiers and answers the
// queries the deck, executor, and passive registry put to it.
type StatusSet struct {
	effects []StatusEffect
}

func NewStatusSet() *StatusSet {
	return &StatusSet{}
}

// ApplyEffect adds a timed modifier. Stacking is permitted; queries sum
// magnitudes across stacks.
func (s *StatusSet) ApplyEffect(kind StatusKind, duration, magnitude int, source string) {
	if kind == StatusNone {
		return
	}
	if duration < 1 {
		duration = 1
	}
	s.effects = append(s.effects, StatusEffect{
		Kind:      kind,
		Magnitude: magnitude,
		Turns:     duration,
		Source:    source,
	})
}

// TickTurn ages every effect by one owner-turn and drops the expired ones.
func (s *StatusSet) TickTurn() {
	kept := s.effects[:0]
	for _, e := range s.effects {
		e.Turns--
		if e.Turns > 0 {
			kept = append(kept, e)
		}
	}
	s.effects = kept
}

// Clear drops every active effect.
func (s *StatusSet) Clear() {
	s.effects = nil
}

// Active returns a snapshot of the current effects.
func (s *StatusSet) Active() []StatusEffect {
	out := make([]StatusEffect, len(s.effects))
	copy(out, s.effects)
	return out
}

func (s *StatusSet) sum(kind StatusKind) int {
	total := 0
	for _, e := range s.effects {
		if e.Kind == kind {
			total += e.Magnitude
		}
	}
	return total
}

func (s *StatusSet) has(kind StatusKind) bool {
	for _, e := range s.effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// consumeOne removes a single stack of a one-shot status, innermost first.
func (s *StatusSet) consumeOne(kind StatusKind) bool {
	for i, e := range s.effects {
		if e.Kind == kind {
			s.effects = append(s.effects[:i], s.effects[i+1:]...)
			return true
		}
	}
	return false
}

// Cost-pipeline queries.

// GeneralCostIncrease is the summed magnitude of every plain cost-up stack.
func (s *StatusSet) GeneralCostIncrease() int { return s.sum(StatusCostUp) }

// WeaponCostIncrease applies only to weapon cards.
func (s *StatusSet) WeaponCostIncrease() int { return s.sum(StatusWeaponCostUp) }

// RangedCostReduction is the one-shot discount available to non-melee cards.
func (s *StatusSet) RangedCostReduction() int { return s.sum(StatusRangedCostDown) }

// HasFreeMove reports whether the next movement card is free.
func (s *StatusSet) HasFreeMove() bool { return s.has(StatusFreeMove) }

// ConsumeFreeMove spends one free-move stack.
func (s *StatusSet) ConsumeFreeMove() bool { return s.consumeOne(StatusFreeMove) }

// ConsumeRangedReduction spends one ranged-discount stack.
func (s *StatusSet) ConsumeRangedReduction() bool { return s.consumeOne(StatusRangedCostDown) }

// Play-gating queries.

func (s *StatusSet) IsStunned() bool { return s.has(StatusStunned) }

// IsCategoryDisabled reports whether an external status has locked the
// given relic category.
func (s *StatusSet) IsCategoryDisabled(cat Category) bool {
	for _, e := range s.effects {
		if e.Kind == StatusCategoryDisabled && Category(e.Magnitude) == cat {
			return true
		}
	}
	return false
}

// RelicsNotConsumed reports whether played cards stay in hand.
func (s *StatusSet) RelicsNotConsumed() bool { return s.has(StatusRelicsNotConsumed) }

// PassivesDisabled reports whether passive relics are suppressed.
func (s *StatusSet) PassivesDisabled() bool { return s.has(StatusPassivesDisabled) }

// Combat queries.

// DamageBonus is the net flat damage delta from up/down stacks.
func (s *StatusSet) DamageBonus() int {
	return s.sum(StatusDamageUp) - s.sum(StatusDamageDown)
}

// ProtectionTotal is the flat incoming-damage reduction.
func (s *StatusSet) ProtectionTotal() int { return s.sum(StatusProtected) }

func (s *StatusSet) IsDamageImmune() bool { return s.has(StatusDamageImmune) }

// DrawBonus is the extra cards drawn at turn start.
func (s *StatusSet) DrawBonus() int { return s.sum(StatusDrawUp) }

// BleedTotal is the damage taken from bleed stacks at turn start.
func (s *StatusSet) BleedTotal() int { return s.sum(StatusBleeding) }

// AbsorbMoraleDamage routes morale damage through morale-shield stacks,
// consuming shield magnitude and returning what gets through.
func (s *StatusSet) AbsorbMoraleDamage(amount int) int {
	for i := range s.effects {
		if amount <= 0 {
			break
		}
		e := &s.effects[i]
		if e.Kind != StatusMoraleShield || e.Magnitude <= 0 {
			continue
		}
		absorbed := min(amount, e.Magnitude)
		e.Magnitude -= absorbed
		amount -= absorbed
	}
	return amount
}
