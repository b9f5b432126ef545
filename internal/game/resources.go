package game

import "github.com/peterkuimelis/brinefall/internal/log"

// StartingEnergy is each unit's energy at the top of its turn.
const StartingEnergy = 3

// ResourceManager tracks one unit's spendable pools: energy for card plays
// and grog tokens for drinking.
type ResourceManager struct {
	unit *Unit
	bus  *log.Bus

	energy int
	grog   int
}

func NewResourceManager(unit *Unit, bus *log.Bus) *ResourceManager {
	return &ResourceManager{unit: unit, bus: bus, energy: StartingEnergy}
}

func (r *ResourceManager) publish(e log.GameEvent) {
	if r.bus != nil {
		r.bus.Publish(e)
	}
}

func (r *ResourceManager) Energy() int { return r.energy }

// HasEnergy reports whether n energy is available.
func (r *ResourceManager) HasEnergy(n int) bool { return r.energy >= n }

// TrySpendEnergy deducts n energy, failing without change if short.
// A negative n grants energy.
func (r *ResourceManager) TrySpendEnergy(n int) bool {
	if n > 0 && r.energy < n {
		return false
	}
	r.energy -= n
	if n != 0 {
		r.publish(log.NewEnergyChangeEvent(r.unit.round(), r.unit.Name, r.unit.ID, -n))
	}
	return true
}

// RefillEnergy resets the pool at turn start.
func (r *ResourceManager) RefillEnergy() {
	r.energy = StartingEnergy
}

func (r *ResourceManager) GrogTokens() int { return r.grog }

// AddGrog grants grog tokens.
func (r *ResourceManager) AddGrog(n int) {
	if n <= 0 {
		return
	}
	r.grog += n
	r.publish(log.NewGrogChangeEvent(r.unit.round(), r.unit.Name, r.unit.ID, n))
}

// TrySpendGrog deducts n tokens, failing without change if short.
func (r *ResourceManager) TrySpendGrog(n int) bool {
	if n < 0 || r.grog < n {
		return false
	}
	if n == 0 {
		return true
	}
	r.grog -= n
	r.publish(log.NewGrogChangeEvent(r.unit.round(), r.unit.Name, r.unit.ID, -n))
	return true
}

// GrogHealAmount is the grit restored by drinking one grog token.
const GrogHealAmount = 2

// GrogBuzzAmount is the buzz incurred per drink, absent a passive waiver.
const GrogBuzzAmount = 1

// DrinkGrog spends one token to restore grit. The buzz downside lands unless
// the unit's passives waive it.
func (r *ResourceManager) DrinkGrog() bool {
	if !r.TrySpendGrog(1) {
		return false
	}
	r.unit.RestoreGrit(GrogHealAmount)
	if r.unit.Passives == nil || !r.unit.Passives.HasNoBuzzDownside() {
		r.unit.AddBuzz(GrogBuzzAmount)
	}
	return true
}
