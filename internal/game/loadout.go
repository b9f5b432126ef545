package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadoutFile represents the top-level YAML structure.
type LoadoutFile struct {
	Crews []CrewEntry `yaml:"crews"`
}

// CrewEntry describes one crew: a named list of units with their loadouts.
type CrewEntry struct {
	Name  string      `yaml:"name"`
	Units []UnitEntry `yaml:"units"`
}

// UnitEntry describes one unit's role, weapon, and chosen category relics.
// Relic slots reference catalog entries by category name and variant; the
// Ultimate and PassiveUnique slots are role-derived and not listed.
type UnitEntry struct {
	Name   string       `yaml:"name"`
	Role   string       `yaml:"role"`
	Weapon string       `yaml:"weapon"` // weapon relic name
	Relics []RelicEntry `yaml:"relics"`
}

// RelicEntry selects the relic for one category slot.
type RelicEntry struct {
	Category string `yaml:"category"`
	Variant  int    `yaml:"variant"`
}

// ParseLoadoutFile parses a YAML crew file.
func ParseLoadoutFile(path string) (*LoadoutFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lf LoadoutFile
	if err := yaml.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("parse loadout YAML: %w", err)
	}
	return &lf, nil
}

// CrewByNumber returns the Nth crew (1-indexed) from the loadout file.
func CrewByNumber(path string, n int) (*CrewEntry, error) {
	lf, err := ParseLoadoutFile(path)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > len(lf.Crews) {
		return nil, fmt.Errorf("crew %d not found (have %d crews)", n, len(lf.Crews))
	}
	return &lf.Crews[n-1], nil
}

// roleByName resolves a role's display name, case-sensitively.
func roleByName(name string) (Role, error) {
	for _, r := range AllRoles {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", name)
}

// categoryByName resolves a category's display name.
func categoryByName(name string) (Category, error) {
	for _, c := range AllCategories {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown category %q", name)
}

// Apply equips one unit per its entry: weapon by name, then each listed
// category slot with that category's relic for the unit's role. A missing
// catalog entry falls back to a placeholder inside EquipCategory's lookup
// path rather than failing the whole loadout.
func (e *UnitEntry) Apply(catalog *Catalog, unit *Unit) error {
	if e.Weapon != "" {
		w := catalog.WeaponByName(e.Weapon)
		if w == nil {
			return fmt.Errorf("loadout %s: unknown weapon %q", e.Name, e.Weapon)
		}
		if err := unit.Equipment.EquipWeapon(MaterializeRelic(w)); err != nil {
			return fmt.Errorf("loadout %s: %w", e.Name, err)
		}
	}
	for _, slot := range e.Relics {
		cat, err := categoryByName(slot.Category)
		if err != nil {
			return fmt.Errorf("loadout %s: %w", e.Name, err)
		}
		variant := slot.Variant
		if variant == 0 {
			variant = 1
		}
		def := catalog.Lookup(cat, unit.Role, variant)
		if def == nil {
			def = Placeholder(cat, unit.Role, variant)
		}
		if err := unit.Equipment.EquipCategory(cat, MaterializeRelic(def)); err != nil {
			return fmt.Errorf("loadout %s: %w", e.Name, err)
		}
	}
	return nil
}

// MusterCrew recruits every unit of the crew onto one team, equips it per
// its entry, and readies it. Deployment cells are consumed in order.
func MusterCrew(s *Skirmish, crew *CrewEntry, team Team, cells []Cell) ([]*Unit, error) {
	if len(crew.Units) > len(cells) {
		return nil, fmt.Errorf("crew %s: %d units but only %d deployment cells",
			crew.Name, len(crew.Units), len(cells))
	}
	var units []*Unit
	for i := range crew.Units {
		entry := &crew.Units[i]
		role, family, err := entry.RoleAndFamily(s.Catalog)
		if err != nil {
			return nil, err
		}
		u, err := s.RecruitUnit(entry.Name, team, role, family, cells[i])
		if err != nil {
			return nil, fmt.Errorf("crew %s: %w", crew.Name, err)
		}
		if err := entry.Apply(s.Catalog, u); err != nil {
			return nil, err
		}
		s.Ready(u)
		units = append(units, u)
	}
	return units, nil
}

// RoleAndFamily resolves the entry's role and the weapon's family so a unit
// can be recruited before Apply runs. A missing weapon defaults to Cutlass.
func (e *UnitEntry) RoleAndFamily(catalog *Catalog) (Role, WeaponFamily, error) {
	role, err := roleByName(e.Role)
	if err != nil {
		return 0, 0, fmt.Errorf("loadout %s: %w", e.Name, err)
	}
	family := WeaponCutlass
	if e.Weapon != "" {
		w := catalog.WeaponByName(e.Weapon)
		if w == nil {
			return 0, 0, fmt.Errorf("loadout %s: unknown weapon %q", e.Name, e.Weapon)
		}
		family = w.Family
	}
	return role, family, nil
}
