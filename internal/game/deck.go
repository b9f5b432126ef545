package game

import (
	"fmt"
	"math/rand"

	"github.com/peterkuimelis/brinefall/internal/log"
)

// Pile says where a card currently sits.
type Pile int

const (
	PileDraw Pile = iota
	PileHand
	PileDiscard
)

func (p Pile) String() string {
	switch p {
	case PileDraw:
		return "draw"
	case PileHand:
		return "hand"
	case PileDiscard:
		return "discard"
	}
	return "unknown"
}

// Card is one playable token minted from an equipped relic at deck build.
// Display fields are denormalized so UI lookups never touch the catalog.
type Card struct {
	ID       int
	Name     string
	Category Category
	Role     Role
	BaseCost int
	Tag      EffectType
	Shape    EffectShape
	Weapon   bool
	Melee    bool
	Pile     Pile
	Relic    *EquippedRelic
}

func (c *Card) String() string {
	return fmt.Sprintf("%s (%d)", c.Name, c.BaseCost)
}

// CardExecutor runs a played card's effect. Executor is the engine
// implementation; tests substitute scripted ones.
type CardExecutor interface {
	Execute(relic *EquippedRelic, caster *Unit, target *Target) error
}

const (
	DefaultDrawPerTurn = 3
	DefaultMaxHandSize = 7
)

// Deck manages one unit's draw/hand/discard economy and executes plays.
type Deck struct {
	unit     *Unit
	executor CardExecutor
	bus      *log.Bus

	draw    []*Card
	hand    []*Card
	discard []*Card

	DrawPerTurn int
	MaxHandSize int
	NoShuffle   bool // keep build order, for deterministic tests

	nextCardID int

	playedThisRound  int
	playedByCategory map[Category]int
}

func NewDeck(unit *Unit, executor CardExecutor, bus *log.Bus) *Deck {
	return &Deck{
		unit:             unit,
		executor:         executor,
		bus:              bus,
		DrawPerTurn:      DefaultDrawPerTurn,
		MaxHandSize:      DefaultMaxHandSize,
		playedByCategory: make(map[Category]int),
	}
}

func (d *Deck) publish(e log.GameEvent) {
	if d.bus != nil {
		d.bus.Publish(e)
	}
}

// Build clears all piles, mints copies for each card-yielding relic in the
// unit's equipment, shuffles, and draws an opening hand.
func (d *Deck) Build() {
	d.draw = nil
	d.hand = nil
	d.discard = nil
	for _, relic := range d.unit.Equipment.CardRelics() {
		for i := 0; i < relic.Def.Copies; i++ {
			d.nextCardID++
			d.draw = append(d.draw, &Card{
				ID:       d.nextCardID,
				Name:     relic.DisplayName,
				Category: relic.Def.Category,
				Role:     relic.Def.Role,
				BaseCost: relic.Def.Cost,
				Tag:      relic.Def.Tag,
				Shape:    relic.Def.Shape,
				Weapon:   relic.Def.Weapon,
				Melee:    relic.Def.Melee,
				Pile:     PileDraw,
				Relic:    relic,
			})
		}
	}
	if !d.NoShuffle {
		rand.Shuffle(len(d.draw), func(i, j int) {
			d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
		})
	}
	d.Draw(d.DrawPerTurn)
}

// Draw moves up to n cards from draw pile to hand, capped at max hand size.
// An empty draw pile with a non-empty discard triggers exactly one reshuffle
// per call; if both piles run dry the draw yields fewer cards without error.
func (d *Deck) Draw(n int) int {
	reshuffled := false
	drawn := 0
	for drawn < n && len(d.hand) < d.MaxHandSize {
		if len(d.draw) == 0 {
			if reshuffled || len(d.discard) == 0 {
				break
			}
			d.reshuffle()
			reshuffled = true
			continue
		}
		card := d.draw[0]
		d.draw = d.draw[1:]
		card.Pile = PileHand
		d.hand = append(d.hand, card)
		drawn++
	}
	if drawn > 0 {
		d.publish(log.NewDrawEvent(d.unit.round(), d.unit.Name, d.unit.ID, drawn))
	}
	return drawn
}

func (d *Deck) reshuffle() {
	d.draw = d.discard
	d.discard = nil
	for _, c := range d.draw {
		c.Pile = PileDraw
	}
	if !d.NoShuffle {
		rand.Shuffle(len(d.draw), func(i, j int) {
			d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
		})
	}
	d.publish(log.NewReshuffleEvent(d.unit.round(), d.unit.Name, d.unit.ID, len(d.draw)))
}

// costBreakdown records which one-shot modifiers a computed cost actually
// leaned on, so Play consumes only what was used.
type costBreakdown struct {
	cost       int
	usedRanged bool
	usedFree   bool
}

func (d *Deck) computeCost(card *Card) costBreakdown {
	st := d.unit.Statuses

	cost := card.BaseCost
	cost += st.GeneralCostIncrease()
	if card.Weapon {
		cost += st.WeaponCostIncrease()
	}

	var bd costBreakdown
	if !card.Melee {
		if red := st.RangedCostReduction(); red > 0 && cost > 0 {
			cost -= red
			bd.usedRanged = true
		}
	}
	if cost < 0 {
		cost = 0
	}
	if card.Shape == ShapeMovement && st.HasFreeMove() {
		cost = 0
		bd.usedFree = true
	}
	bd.cost = cost
	return bd
}

// ComputeActualCost runs the cost pipeline in its fixed order: base, plus
// general increases, plus the weapon surcharge, minus the ranged discount
// for non-melee cards, clamped at zero, with the free-move override winning
// last for movement cards.
func (d *Deck) ComputeActualCost(card *Card) int {
	return d.computeCost(card).cost
}

// Play spends the card's cost, executes its effect, and discards it. All
// preconditions are checked before anything is charged; a failure leaves
// deck, energy, and statuses untouched.
func (d *Deck) Play(card *Card, target *Target) error {
	idx := d.handIndex(card)
	if idx < 0 {
		return fmt.Errorf("play %s: not in hand", card.Name)
	}
	if !d.unit.CanAct() {
		return fmt.Errorf("play %s: %s cannot act", card.Name, d.unit.Name)
	}
	if d.unit.Statuses.IsCategoryDisabled(card.Category) {
		return fmt.Errorf("play %s: %s relics are disabled", card.Name, card.Category)
	}
	bd := d.computeCost(card)
	if !d.unit.Resources.HasEnergy(bd.cost) {
		return fmt.Errorf("play %s: costs %d, have %d energy",
			card.Name, bd.cost, d.unit.Resources.Energy())
	}

	// Preconditions hold; commit.
	d.unit.Resources.TrySpendEnergy(bd.cost)
	if bd.usedFree {
		d.unit.Statuses.ConsumeFreeMove()
	}
	if bd.usedRanged {
		d.unit.Statuses.ConsumeRangedReduction()
	}
	d.playedThisRound++
	d.playedByCategory[card.Category]++

	d.publish(log.NewPlayCardEvent(d.unit.round(), d.unit.Name, d.unit.ID, card.Name, bd.cost))
	if err := d.executor.Execute(card.Relic, d.unit, target); err != nil {
		// Effect-level failures are content problems, not play failures:
		// the card is still spent. Surface them as warnings.
		d.publish(log.NewWarningEvent(d.unit.round(),
			fmt.Sprintf("%s: %v", card.Name, err)))
	}

	if d.relicsNotConsumed() {
		d.publish(log.NewCardRetainedEvent(d.unit.round(), d.unit.Name, d.unit.ID, card.Name))
		return nil
	}
	d.hand = append(d.hand[:idx], d.hand[idx+1:]...)
	card.Pile = PileDiscard
	d.discard = append(d.discard, card)
	return nil
}

func (d *Deck) relicsNotConsumed() bool {
	if d.unit.Statuses.RelicsNotConsumed() {
		return true
	}
	return d.unit.Passives != nil && d.unit.Passives.RelicsNotConsumed()
}

func (d *Deck) handIndex(card *Card) int {
	for i, c := range d.hand {
		if c == card {
			return i
		}
	}
	return -1
}

// DiscardFromHand moves a card from hand to discard without playing it.
func (d *Deck) DiscardFromHand(card *Card) error {
	idx := d.handIndex(card)
	if idx < 0 {
		return fmt.Errorf("discard %s: not in hand", card.Name)
	}
	d.hand = append(d.hand[:idx], d.hand[idx+1:]...)
	card.Pile = PileDiscard
	d.discard = append(d.discard, card)
	d.publish(log.NewDiscardEvent(d.unit.round(), d.unit.Name, d.unit.ID, card.Name))
	return nil
}

// ResetPerRound zeroes the per-round play counters. Pile contents are not
// touched.
func (d *Deck) ResetPerRound() {
	d.playedThisRound = 0
	d.playedByCategory = make(map[Category]int)
}

func (d *Deck) Hand() []*Card    { return d.hand }
func (d *Deck) DrawPile() int    { return len(d.draw) }
func (d *Deck) DiscardPile() int { return len(d.discard) }

// Size is the total card count across all piles; it must always equal the
// equipment's card yield.
func (d *Deck) Size() int {
	return len(d.draw) + len(d.hand) + len(d.discard)
}

// PlayedThisRound reports cards played since the last round reset.
func (d *Deck) PlayedThisRound() int { return d.playedThisRound }

// PlayedByCategory reports per-category plays since the last round reset.
func (d *Deck) PlayedByCategory(cat Category) int { return d.playedByCategory[cat] }
