package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging skirmish events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	kind := e.Type.String()
	for len(kind) < 16 {
		kind += " "
	}
	return fmt.Sprintf("R%-2d %s| %s", e.Round, kind, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewRoundStartEvent(round int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventRoundStart,
		Details: fmt.Sprintf("=== Round %d ===", round),
	}
}

func NewTurnStartEvent(round int, unit, unitID string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventTurnStart,
		Unit:    unit,
		UnitID:  unitID,
		Details: fmt.Sprintf("%s begins their turn", unit),
	}
}

func NewTurnEndEvent(round int, unit, unitID string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventTurnEnd,
		Unit:    unit,
		UnitID:  unitID,
		Details: fmt.Sprintf("%s ends their turn", unit),
	}
}

func NewUnitDamagedEvent(round int, unit, unitID, source, sourceID string, amount int) GameEvent {
	return GameEvent{
		Round:    round,
		Type:     EventUnitDamaged,
		Unit:     unit,
		UnitID:   unitID,
		Source:   source,
		SourceID: sourceID,
		Amount:   amount,
		Details:  fmt.Sprintf("%s takes %d damage", unit, amount),
	}
}

func NewUnitHealedEvent(round int, unit, unitID string, amount int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventUnitHealed,
		Unit:    unit,
		UnitID:  unitID,
		Amount:  amount,
		Details: fmt.Sprintf("%s is healed for %d", unit, amount),
	}
}

func NewUnitDiedEvent(round int, unit, unitID string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventUnitDied,
		Unit:    unit,
		UnitID:  unitID,
		Details: fmt.Sprintf("%s dies", unit),
	}
}

func NewUnitSurrenderedEvent(round int, unit, unitID string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventUnitSurrendered,
		Unit:    unit,
		UnitID:  unitID,
		Details: fmt.Sprintf("%s strikes their colors and quits the fight", unit),
	}
}

func NewUnitAttackedEvent(round int, unit, unitID, source, sourceID string) GameEvent {
	return GameEvent{
		Round:    round,
		Type:     EventUnitAttacked,
		Unit:     unit,
		UnitID:   unitID,
		Source:   source,
		SourceID: sourceID,
		Details:  fmt.Sprintf("%s is attacked by %s", unit, source),
	}
}

func NewUnitMovedEvent(round int, unit, unitID string, x, y int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventUnitMoved,
		Unit:    unit,
		UnitID:  unitID,
		Details: fmt.Sprintf("%s moves to (%d,%d)", unit, x, y),
	}
}

func NewDrawEvent(round int, unit, unitID string, n int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventDraw,
		Unit:    unit,
		UnitID:  unitID,
		Amount:  n,
		Details: fmt.Sprintf("%s draws %d card(s)", unit, n),
	}
}

func NewReshuffleEvent(round int, unit, unitID string, n int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventReshuffle,
		Unit:    unit,
		UnitID:  unitID,
		Amount:  n,
		Details: fmt.Sprintf("%s shuffles %d discarded card(s) back into the draw pile", unit, n),
	}
}

func NewPlayCardEvent(round int, unit, unitID, card string, cost int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventPlayCard,
		Unit:    unit,
		UnitID:  unitID,
		Card:    card,
		Amount:  cost,
		Details: fmt.Sprintf("%s plays %s (cost %d)", unit, card, cost),
	}
}

func NewDiscardEvent(round int, unit, unitID, card string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventDiscard,
		Unit:    unit,
		UnitID:  unitID,
		Card:    card,
		Details: fmt.Sprintf("%s discards %s", unit, card),
	}
}

func NewCardRetainedEvent(round int, unit, unitID, card string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventCardRetained,
		Unit:    unit,
		UnitID:  unitID,
		Card:    card,
		Details: fmt.Sprintf("%s keeps %s in hand", unit, card),
	}
}

func NewEnergyChangeEvent(round int, unit, unitID string, delta int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventEnergyChange,
		Unit:    unit,
		UnitID:  unitID,
		Amount:  delta,
		Details: fmt.Sprintf("%s energy %+d", unit, delta),
	}
}

func NewGrogChangeEvent(round int, unit, unitID string, delta int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventGrogChange,
		Unit:    unit,
		UnitID:  unitID,
		Amount:  delta,
		Details: fmt.Sprintf("%s grog %+d", unit, delta),
	}
}

func NewMoraleChangeEvent(round int, unit, unitID string, delta int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventMoraleChange,
		Unit:    unit,
		UnitID:  unitID,
		Amount:  delta,
		Details: fmt.Sprintf("%s morale %+d", unit, delta),
	}
}

func NewStunAppliedEvent(round int, unit, unitID string, turns int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventStunApplied,
		Unit:    unit,
		UnitID:  unitID,
		Amount:  turns,
		Details: fmt.Sprintf("%s is stunned for %d turn(s)", unit, turns),
	}
}

func NewStatusAppliedEvent(round int, unit, unitID, status string, duration int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventStatusApplied,
		Unit:    unit,
		UnitID:  unitID,
		Card:    status,
		Amount:  duration,
		Details: fmt.Sprintf("%s gains %s (%d turn(s))", unit, status, duration),
	}
}

func NewSummonEvent(round int, unit, unitID, entity string, x, y int) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventSummon,
		Unit:    unit,
		UnitID:  unitID,
		Card:    entity,
		Details: fmt.Sprintf("%s places a %s at (%d,%d)", unit, entity, x, y),
	}
}

func NewPassiveTriggeredEvent(round int, unit, unitID, passive, detail string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventPassiveTriggered,
		Unit:    unit,
		UnitID:  unitID,
		Card:    passive,
		Details: fmt.Sprintf("%s passive %s: %s", unit, passive, detail),
	}
}

func NewWarningEvent(round int, detail string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventWarning,
		Details: "warning: " + detail,
	}
}

func NewWinEvent(round int, team, reason string) GameEvent {
	return GameEvent{
		Round:   round,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins! (%s)", team, reason),
	}
}
