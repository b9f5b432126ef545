package log

// EventType enumerates all observable skirmish events.
type EventType int

const (
	EventRoundStart EventType = iota
	EventTurnStart
	EventTurnEnd
	EventUnitDamaged
	EventUnitHealed
	EventUnitDied
	EventUnitSurrendered
	EventUnitAttacked
	EventUnitMoved
	EventDraw
	EventReshuffle
	EventPlayCard
	EventDiscard
	EventCardRetained
	EventEnergyChange
	EventGrogChange
	EventMoraleChange
	EventStunApplied
	EventStatusApplied
	EventSummon
	EventPassiveTriggered
	EventWarning
	EventWin
)

func (e EventType) String() string {
	switch e {
	case EventRoundStart:
		return "RoundStart"
	case EventTurnStart:
		return "TurnStart"
	case EventTurnEnd:
		return "TurnEnd"
	case EventUnitDamaged:
		return "UnitDamaged"
	case EventUnitHealed:
		return "UnitHealed"
	case EventUnitDied:
		return "UnitDied"
	case EventUnitSurrendered:
		return "UnitSurrendered"
	case EventUnitAttacked:
		return "UnitAttacked"
	case EventUnitMoved:
		return "UnitMoved"
	case EventDraw:
		return "Draw"
	case EventReshuffle:
		return "Reshuffle"
	case EventPlayCard:
		return "PlayCard"
	case EventDiscard:
		return "Discard"
	case EventCardRetained:
		return "CardRetained"
	case EventEnergyChange:
		return "EnergyChange"
	case EventGrogChange:
		return "GrogChange"
	case EventMoraleChange:
		return "MoraleChange"
	case EventStunApplied:
		return "StunApplied"
	case EventStatusApplied:
		return "StatusApplied"
	case EventSummon:
		return "Summon"
	case EventPassiveTriggered:
		return "PassiveTriggered"
	case EventWarning:
		return "Warning"
	case EventWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a skirmish.
type GameEvent struct {
	Seq      int       // monotonic sequence number, assigned by the logger
	Round    int       // 1-based round counter
	Type     EventType // event type
	Unit     string    // display name of the acting/affected unit
	UnitID   string    // instance ID of the acting/affected unit
	Source   string    // display name of the source unit, if any
	SourceID string    // instance ID of the source unit, if any
	Card     string    // card or relic name, if applicable
	Amount   int       // numeric payload (damage dealt, cards drawn, ...)
	Details  string    // human-readable detail string
}
