package game

import (
	"github.com/google/uuid"

	"github.com/peterkuimelis/brinefall/internal/log"
)

// Team identifies which crew a unit fights for.
type Team int

const (
	TeamNone Team = iota
	TeamPort
	TeamStarboard
)

func (t Team) String() string {
	switch t {
	case TeamPort:
		return "Port"
	case TeamStarboard:
		return "Starboard"
	}
	return "None"
}

// Opponent returns the other crew.
func (t Team) Opponent() Team {
	switch t {
	case TeamPort:
		return TeamStarboard
	case TeamStarboard:
		return TeamPort
	}
	return TeamNone
}

// Clock carries the current round number so unit mutators can stamp the
// events they publish. One Clock is shared by everything in a skirmish.
type Clock struct {
	Round int
}

// DefaultSurrenderFraction is the morale fraction below which a unit strikes
// its colors, before passive adjustments.
const DefaultSurrenderFraction = 0.25

// Unit is one combatant. All state mutation goes through its methods; crews
// never reach into each other's fields.
type Unit struct {
	ID   string
	Name string
	Team Team
	Role Role

	HP        int
	MaxHP     int
	Morale    int
	MaxMorale int
	Grit      int
	MaxGrit   int
	Buzz      int
	Hull      int // shield pool, absorbs damage before HP

	StunTurns   int
	Dead        bool
	Surrendered bool

	BaseDamage int // weapon-less strike value; weapon cards add on top

	Equipment *EquipmentProfile
	Deck      *Deck
	Passives  *PassiveTriggerRegistry
	Resources *ResourceManager
	Statuses  *StatusSet

	bus   *log.Bus
	clock *Clock
}

func NewUnit(name string, team Team, role Role, bus *log.Bus, clock *Clock) *Unit {
	return &Unit{
		ID:         uuid.NewString(),
		Name:       name,
		Team:       team,
		Role:       role,
		HP:         10,
		MaxHP:      10,
		Morale:     10,
		MaxMorale:  10,
		Grit:       5,
		MaxGrit:    5,
		BaseDamage: 1,
		Statuses:   NewStatusSet(),
		bus:        bus,
		clock:      clock,
	}
}

func (u *Unit) round() int {
	if u.clock == nil {
		return 0
	}
	return u.clock.Round
}

func (u *Unit) publish(e log.GameEvent) {
	if u.bus != nil {
		u.bus.Publish(e)
	}
}

// Alive reports whether the unit still fights: not dead, not surrendered.
func (u *Unit) Alive() bool {
	return !u.Dead && !u.Surrendered
}

// CanAct reports whether the unit may play cards this turn.
func (u *Unit) CanAct() bool {
	return u.Alive() && u.StunTurns == 0 && !u.Statuses.IsStunned()
}

// TakeDamage applies damage from source, hull first, and returns the amount
// that actually landed. Protection and immunity statuses are respected here;
// percent passives are the damage pipeline's business, not the unit's.
func (u *Unit) TakeDamage(amount int, source *Unit) int {
	if amount <= 0 || !u.Alive() {
		return 0
	}
	if u.Statuses.IsDamageImmune() {
		return 0
	}
	amount -= u.Statuses.ProtectionTotal()
	if amount <= 0 {
		return 0
	}
	absorbed := min(amount, u.Hull)
	u.Hull -= absorbed
	dealt := amount - absorbed
	u.HP = max(0, u.HP-dealt)

	srcName, srcID := "", ""
	if source != nil {
		srcName, srcID = source.Name, source.ID
	}
	u.publish(log.NewUnitDamagedEvent(u.round(), u.Name, u.ID, srcName, srcID, amount))
	if u.HP == 0 {
		u.Dead = true
		u.publish(log.NewUnitDiedEvent(u.round(), u.Name, u.ID))
	}
	return amount
}

// Heal restores HP, clamped to max.
func (u *Unit) Heal(amount int) {
	if amount <= 0 || !u.Alive() {
		return
	}
	before := u.HP
	u.HP = min(u.MaxHP, u.HP+amount)
	if u.HP != before {
		u.publish(log.NewUnitHealedEvent(u.round(), u.Name, u.ID, u.HP-before))
	}
}

// RestoreMorale raises morale, clamped to max.
func (u *Unit) RestoreMorale(amount int) {
	if amount <= 0 || !u.Alive() {
		return
	}
	before := u.Morale
	u.Morale = min(u.MaxMorale, u.Morale+amount)
	if u.Morale != before {
		u.publish(log.NewMoraleChangeEvent(u.round(), u.Name, u.ID, u.Morale-before))
	}
}

// ApplyMoraleDamage lowers morale after the morale-shield statuses absorb
// their share, then checks the surrender threshold.
func (u *Unit) ApplyMoraleDamage(amount int, threshold float64) {
	if amount <= 0 || !u.Alive() {
		return
	}
	amount = u.Statuses.AbsorbMoraleDamage(amount)
	if amount <= 0 {
		return
	}
	u.Morale = max(0, u.Morale-amount)
	u.publish(log.NewMoraleChangeEvent(u.round(), u.Name, u.ID, -amount))
	if threshold <= 0 {
		threshold = DefaultSurrenderFraction
	}
	if float64(u.Morale) < threshold*float64(u.MaxMorale) {
		u.Surrendered = true
		u.publish(log.NewUnitSurrenderedEvent(u.round(), u.Name, u.ID))
	}
}

// RestoreGrit raises grit, clamped to max.
func (u *Unit) RestoreGrit(amount int) {
	if amount <= 0 || !u.Alive() {
		return
	}
	u.Grit = min(u.MaxGrit, u.Grit+amount)
}

// SpendGrit lowers grit, clamped at zero.
func (u *Unit) SpendGrit(amount int) {
	if amount <= 0 {
		return
	}
	u.Grit = max(0, u.Grit-amount)
}

// ApplyStun stuns the unit for the given turns, keeping the longer of the
// current and new stun.
func (u *Unit) ApplyStun(turns int) {
	if turns <= 0 || !u.Alive() {
		return
	}
	u.StunTurns = max(u.StunTurns, turns)
	u.publish(log.NewStunAppliedEvent(u.round(), u.Name, u.ID, turns))
}

// AddBuzz raises buzz, the grog-drinking side effect.
func (u *Unit) AddBuzz(amount int) {
	if amount <= 0 {
		return
	}
	u.Buzz += amount
}

// ReduceBuzz lowers buzz, clamped at zero.
func (u *Unit) ReduceBuzz(amount int) {
	if amount <= 0 {
		return
	}
	u.Buzz = max(0, u.Buzz-amount)
}

// TickTurnStart decays stun and expires statuses at the unit's own
// turn-start.
func (u *Unit) TickTurnStart() {
	if u.StunTurns > 0 {
		u.StunTurns--
	}
	u.Statuses.TickTurn()
}
