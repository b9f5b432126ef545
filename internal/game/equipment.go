package game

import (
	"fmt"

	"github.com/peterkuimelis/brinefall/internal/log"
)

// EquippedRelic materializes one catalog definition into a slot. Each
// instance is owned by exactly one profile slot and never shared.
type EquippedRelic struct {
	Def         *RelicEffectDefinition
	DisplayName string
	DisplayDesc string
}

// MaterializeRelic wraps a definition for equipping.
func MaterializeRelic(def *RelicEffectDefinition) *EquippedRelic {
	return &EquippedRelic{
		Def:         def,
		DisplayName: def.Name,
		DisplayDesc: def.Desc,
	}
}

// categorySlots are the player-assignable slots. Ultimate and PassiveUnique
// are role-locked and managed by Initialize alone.
var categorySlots = []Category{
	CategoryBoots, CategoryGloves, CategoryHat,
	CategoryCoat, CategoryTrinket, CategoryTotem,
}

// EquipmentProfile holds one unit's relic loadout: a weapon slot, six
// category slots, and the two role-locked slots.
type EquipmentProfile struct {
	catalog *Catalog
	bus     *log.Bus

	role        Role
	family      WeaponFamily
	initialized bool

	weapon *EquippedRelic
	slots  map[Category]*EquippedRelic
}

func NewEquipmentProfile(catalog *Catalog, bus *log.Bus) *EquipmentProfile {
	return &EquipmentProfile{
		catalog: catalog,
		bus:     bus,
		slots:   make(map[Category]*EquippedRelic),
	}
}

// Initialize sets the unit's role and weapon family and locks the Ultimate
// and PassiveUnique slots to that role's variant-1 relics. Re-initializing
// with a new role replaces the locked slots; nothing else is touched.
func (e *EquipmentProfile) Initialize(role Role, family WeaponFamily) {
	e.InitializeVariant(role, family, 1)
}

// InitializeVariant is Initialize with an explicit variant for the two
// locked slots.
func (e *EquipmentProfile) InitializeVariant(role Role, family WeaponFamily, variant int) {
	e.role = role
	e.family = family
	e.initialized = true
	e.slots[CategoryUltimate] = e.fetchLocked(CategoryUltimate, role, variant)
	e.slots[CategoryPassiveUnique] = e.fetchLocked(CategoryPassiveUnique, role, variant)
}

// fetchLocked resolves a locked-slot definition, substituting a placeholder
// on a catalog miss. The miss is a content bug, not a crash.
func (e *EquipmentProfile) fetchLocked(cat Category, role Role, variant int) *EquippedRelic {
	def := e.catalog.Lookup(cat, role, variant)
	if def == nil {
		def = Placeholder(cat, role, variant)
		if e.bus != nil {
			e.bus.Publish(log.NewWarningEvent(0,
				fmt.Sprintf("no %s relic for %s v%d, using placeholder", cat, role, variant)))
		}
	}
	return MaterializeRelic(def)
}

func (e *EquipmentProfile) Role() Role           { return e.role }
func (e *EquipmentProfile) Family() WeaponFamily { return e.family }

// EquipWeapon assigns the weapon slot. The relic must be a weapon of the
// unit's family.
func (e *EquipmentProfile) EquipWeapon(relic *EquippedRelic) error {
	if !relic.Def.Weapon {
		return fmt.Errorf("equip weapon: %q is not a weapon relic", relic.DisplayName)
	}
	if relic.Def.Family != e.family {
		return fmt.Errorf("equip weapon: %q is a %s weapon, unit wields %s",
			relic.DisplayName, relic.Def.Family, e.family)
	}
	e.weapon = relic
	return nil
}

// EquipCategory assigns a category slot, replacing whatever was there.
// The two locked slots are not assignable.
func (e *EquipmentProfile) EquipCategory(cat Category, relic *EquippedRelic) error {
	if cat.IsLocked() {
		return fmt.Errorf("equip: %s slot is role-locked", cat)
	}
	if relic.Def.Category != cat {
		return fmt.Errorf("equip: %q is a %s relic, not %s",
			relic.DisplayName, relic.Def.Category, cat)
	}
	e.slots[cat] = relic
	return nil
}

// Unequip clears a category slot. The two locked slots are not clearable.
func (e *EquipmentProfile) Unequip(cat Category) error {
	if cat.IsLocked() {
		return fmt.Errorf("unequip: %s slot is role-locked", cat)
	}
	delete(e.slots, cat)
	return nil
}

// Weapon returns the equipped weapon relic, or nil.
func (e *EquipmentProfile) Weapon() *EquippedRelic { return e.weapon }

// Slot returns the relic in the given category slot, or nil.
func (e *EquipmentProfile) Slot(cat Category) *EquippedRelic { return e.slots[cat] }

// CountRoleMatches counts equipped relics, weapon included, whose role tag
// matches the unit's role. Feeds the proficiency bonus.
func (e *EquipmentProfile) CountRoleMatches() int {
	n := 0
	if e.weapon != nil && e.weapon.Def.Role == e.role {
		n++
	}
	for _, r := range e.slots {
		if r != nil && r.Def.Role == e.role {
			n++
		}
	}
	return n
}

// TotalCardYield sums copies over all non-passive equipped relics plus the
// weapon. The deck presizes its draw pile from this.
func (e *EquipmentProfile) TotalCardYield() int {
	n := 0
	if e.weapon != nil {
		n += e.weapon.Def.Copies
	}
	for _, r := range e.slots {
		if r != nil && !r.Def.IsPassive() {
			n += r.Def.Copies
		}
	}
	return n
}

// CardRelics returns the relics that yield deck cards, weapon first, then
// category slots in fixed order.
func (e *EquipmentProfile) CardRelics() []*EquippedRelic {
	var relics []*EquippedRelic
	if e.weapon != nil {
		relics = append(relics, e.weapon)
	}
	for _, cat := range categorySlots {
		if r := e.slots[cat]; r != nil && !r.Def.IsPassive() {
			relics = append(relics, r)
		}
	}
	if r := e.slots[CategoryUltimate]; r != nil {
		relics = append(relics, r)
	}
	return relics
}

// PassiveRelics returns the Trinket and PassiveUnique relics currently
// equipped; the passive registry recomputes its active set from these.
func (e *EquipmentProfile) PassiveRelics() []*EquippedRelic {
	var relics []*EquippedRelic
	if r := e.slots[CategoryTrinket]; r != nil && r.Def.IsPassive() {
		relics = append(relics, r)
	}
	if r := e.slots[CategoryPassiveUnique]; r != nil && r.Def.IsPassive() {
		relics = append(relics, r)
	}
	return relics
}
