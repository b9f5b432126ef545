package game

import (
	"fmt"
	"sort"
)

// RelicEffectDefinition is one immutable catalog entry: the full declarative
// parametrization of a relic's behavior. Weapon relics share the type (with
// Weapon set) so that every playable card resolves through one tag space.
type RelicEffectDefinition struct {
	Category Category
	Role     Role
	Variant  int // 1 or 2
	Tag      EffectType
	Name     string
	Desc     string
	Rarity   Rarity

	Copies    int // card copies added to the deck; 0 for passives
	Cost      int // base energy cost; 0 for passives
	Value1    int
	Value2    int
	Duration  int // turns
	TileRange int

	Shape      EffectShape
	Move       MoveKind
	Status     StatusKind
	SelfStatus bool // secondary status lands on the caster instead of the target
	Resource   ResourceKind
	Summon     SummonKind
	Target     TargetSelector
	Hook       PassiveHook

	// Weapon relic fields
	Weapon bool
	Family WeaponFamily
	Melee  bool
}

// IsPassive reports whether this definition never yields deck cards.
func (d *RelicEffectDefinition) IsPassive() bool {
	return !d.Weapon && d.Category.IsPassive()
}

func (d *RelicEffectDefinition) String() string {
	return d.Name
}

// CatalogKey identifies one slot in the (category, role, variant) space.
type CatalogKey struct {
	Category Category
	Role     Role
	Variant  int
}

// CatalogOptions tunes catalog construction.
type CatalogOptions struct {
	// SingleVariant drops every variant-2 entry, yielding the simplified
	// 96-entry catalog.
	SingleVariant bool
}

// Catalog is the immutable registry of every relic definition, built once.
type Catalog struct {
	byKey   map[CatalogKey]*RelicEffectDefinition
	byTag   map[EffectType]*RelicEffectDefinition
	defs    []*RelicEffectDefinition
	weapons []*RelicEffectDefinition
}

// BuildCatalog populates and validates the full catalog. Duplicate keys,
// duplicate tags, and passivity mismatches are content bugs and abort the
// build; gameplay never sees a partially built catalog.
func BuildCatalog(opts CatalogOptions) (*Catalog, error) {
	c := &Catalog{
		byKey: make(map[CatalogKey]*RelicEffectDefinition),
		byTag: make(map[EffectType]*RelicEffectDefinition),
	}

	for _, d := range allRelicDefinitions() {
		if opts.SingleVariant && d.Variant == 2 {
			continue
		}
		def := d
		if err := c.addRelic(&def); err != nil {
			return nil, err
		}
	}
	for _, w := range allWeaponDefinitions() {
		def := w
		if err := c.addWeapon(&def); err != nil {
			return nil, err
		}
	}

	variants := 2
	if opts.SingleVariant {
		variants = 1
	}
	want := len(AllCategories) * len(AllRoles) * variants
	if len(c.defs) != want {
		return nil, fmt.Errorf("catalog: have %d relic definitions, want %d", len(c.defs), want)
	}
	return c, nil
}

func (c *Catalog) addRelic(d *RelicEffectDefinition) error {
	if err := validateDefinition(d); err != nil {
		return err
	}
	key := CatalogKey{d.Category, d.Role, d.Variant}
	if prev, ok := c.byKey[key]; ok {
		return fmt.Errorf("catalog: duplicate key %s/%s/v%d (%q vs %q)",
			d.Category, d.Role, d.Variant, prev.Name, d.Name)
	}
	if prev, ok := c.byTag[d.Tag]; ok {
		return fmt.Errorf("catalog: tag %q reused by %q and %q", d.Tag, prev.Name, d.Name)
	}
	c.byKey[key] = d
	c.byTag[d.Tag] = d
	c.defs = append(c.defs, d)
	return nil
}

func (c *Catalog) addWeapon(d *RelicEffectDefinition) error {
	if !d.Weapon {
		return fmt.Errorf("catalog: %q registered as weapon but Weapon is unset", d.Name)
	}
	if d.Shape != ShapeAttack {
		return fmt.Errorf("catalog: weapon %q must be attack-shaped", d.Name)
	}
	if d.Copies <= 0 {
		return fmt.Errorf("catalog: weapon %q must yield at least one card", d.Name)
	}
	if prev, ok := c.byTag[d.Tag]; ok {
		return fmt.Errorf("catalog: tag %q reused by %q and %q", d.Tag, prev.Name, d.Name)
	}
	c.byTag[d.Tag] = d
	c.weapons = append(c.weapons, d)
	return nil
}

func validateDefinition(d *RelicEffectDefinition) error {
	if d.Variant != 1 && d.Variant != 2 {
		return fmt.Errorf("catalog: %q has variant %d, want 1 or 2", d.Name, d.Variant)
	}
	if d.Tag == "" || d.Name == "" {
		return fmt.Errorf("catalog: %s/%s/v%d missing tag or name", d.Category, d.Role, d.Variant)
	}
	if d.IsPassive() {
		if d.Shape != ShapePassive {
			return fmt.Errorf("catalog: passive %q has shape %s", d.Name, d.Shape)
		}
		if d.Hook == HookNone {
			return fmt.Errorf("catalog: passive %q has no hook", d.Name)
		}
		if d.Copies != 0 || d.Cost != 0 {
			return fmt.Errorf("catalog: passive %q has copies=%d cost=%d, want 0/0", d.Name, d.Copies, d.Cost)
		}
		return nil
	}
	if d.Shape == ShapeNone || d.Shape == ShapePassive {
		return fmt.Errorf("catalog: playable %q has shape %s", d.Name, d.Shape)
	}
	if d.Copies <= 0 {
		return fmt.Errorf("catalog: playable %q yields no cards", d.Name)
	}
	if d.Cost < 0 {
		return fmt.Errorf("catalog: %q has negative cost", d.Name)
	}
	return nil
}

// Lookup returns the definition for (category, role, variant), or nil if the
// key is absent. A miss is a content-authoring bug but is non-fatal: callers
// substitute Placeholder and log a warning.
func (c *Catalog) Lookup(cat Category, role Role, variant int) *RelicEffectDefinition {
	return c.byKey[CatalogKey{cat, role, variant}]
}

// LookupTag returns the definition carrying the given effect tag, weapons
// included, or nil.
func (c *Catalog) LookupTag(tag EffectType) *RelicEffectDefinition {
	return c.byTag[tag]
}

// ByCategory returns all relic definitions of one category, role-ordered.
func (c *Catalog) ByCategory(cat Category) []*RelicEffectDefinition {
	var result []*RelicEffectDefinition
	for _, d := range c.defs {
		if d.Category == cat {
			result = append(result, d)
		}
	}
	sortDefs(result)
	return result
}

// ByRole returns all relic definitions for one role, category-ordered.
func (c *Catalog) ByRole(role Role) []*RelicEffectDefinition {
	var result []*RelicEffectDefinition
	for _, d := range c.defs {
		if d.Role == role {
			result = append(result, d)
		}
	}
	sortDefs(result)
	return result
}

// Definitions returns every relic definition (weapons excluded).
func (c *Catalog) Definitions() []*RelicEffectDefinition {
	return c.defs
}

// Weapons returns every weapon relic definition.
func (c *Catalog) Weapons() []*RelicEffectDefinition {
	return c.weapons
}

// WeaponByName returns the named weapon definition, or nil.
func (c *Catalog) WeaponByName(name string) *RelicEffectDefinition {
	for _, w := range c.weapons {
		if w.Name == name {
			return w
		}
	}
	return nil
}

// WeaponsForFamily returns the weapon definitions of one family.
func (c *Catalog) WeaponsForFamily(f WeaponFamily) []*RelicEffectDefinition {
	var result []*RelicEffectDefinition
	for _, w := range c.weapons {
		if w.Family == f {
			result = append(result, w)
		}
	}
	return result
}

// Placeholder returns a synthetic definition for a missing key so the game
// stays playable with degraded content.
func Placeholder(cat Category, role Role, variant int) *RelicEffectDefinition {
	d := &RelicEffectDefinition{
		Category: cat,
		Role:     role,
		Variant:  variant,
		Tag:      EffectType(fmt.Sprintf("missing_%s_%s_v%d", cat, role, variant)),
		Name:     fmt.Sprintf("Lost %s Relic", cat),
		Desc:     fmt.Sprintf("A %s relic of the %s whose power has faded.", cat, role),
		Rarity:   RarityCommon,
	}
	if cat.IsPassive() {
		d.Shape = ShapePassive
		d.Hook = HookTurnStartMorale // harmless: restores 0 morale
	} else {
		d.Shape = ShapeResource
		d.Resource = ResourceMorale
		d.Copies = 1
	}
	return d
}

func sortDefs(defs []*RelicEffectDefinition) {
	sort.Slice(defs, func(i, j int) bool {
		if defs[i].Category != defs[j].Category {
			return defs[i].Category < defs[j].Category
		}
		if defs[i].Role != defs[j].Role {
			return defs[i].Role < defs[j].Role
		}
		return defs[i].Variant < defs[j].Variant
	})
}
