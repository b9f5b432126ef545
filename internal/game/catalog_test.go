package game

import (
	"strings"
	"testing"
)

func TestCatalogCompleteness(t *testing.T) {
	c := testCatalog(t)

	want := len(AllCategories) * len(AllRoles) * 2
	if got := len(c.Definitions()); got != want {
		t.Fatalf("catalog has %d definitions, want %d", got, want)
	}
	for _, cat := range AllCategories {
		for _, role := range AllRoles {
			for variant := 1; variant <= 2; variant++ {
				if c.Lookup(cat, role, variant) == nil {
					t.Errorf("missing definition for %s/%s/v%d", cat, role, variant)
				}
			}
		}
	}
}

func TestCatalogSingleVariant(t *testing.T) {
	c, err := BuildCatalog(CatalogOptions{SingleVariant: true})
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}
	want := len(AllCategories) * len(AllRoles)
	if got := len(c.Definitions()); got != want {
		t.Fatalf("single-variant catalog has %d definitions, want %d", got, want)
	}
	if c.Lookup(CategoryBoots, RoleCaptain, 2) != nil {
		t.Error("variant 2 should be absent in single-variant mode")
	}
}

func TestCatalogTagsUnique(t *testing.T) {
	c := testCatalog(t)

	seen := make(map[EffectType]string)
	all := append([]*RelicEffectDefinition{}, c.Definitions()...)
	all = append(all, c.Weapons()...)
	for _, d := range all {
		if prev, ok := seen[d.Tag]; ok {
			t.Errorf("tag %q used by both %q and %q", d.Tag, prev, d.Name)
		}
		seen[d.Tag] = d.Name
		if c.LookupTag(d.Tag) != d {
			t.Errorf("LookupTag(%q) does not round-trip", d.Tag)
		}
	}
}

func TestCatalogPassiveInvariants(t *testing.T) {
	c := testCatalog(t)

	for _, d := range c.Definitions() {
		if d.Category.IsPassive() {
			if !d.IsPassive() {
				t.Errorf("%s: %s relic not marked passive", d.Name, d.Category)
			}
			if d.Copies != 0 || d.Cost != 0 {
				t.Errorf("%s: passive has copies=%d cost=%d", d.Name, d.Copies, d.Cost)
			}
			if d.Hook == HookNone {
				t.Errorf("%s: passive has no hook", d.Name)
			}
		} else {
			if d.Copies <= 0 {
				t.Errorf("%s: playable yields no cards", d.Name)
			}
			if d.Shape == ShapeNone || d.Shape == ShapePassive {
				t.Errorf("%s: playable has shape %s", d.Name, d.Shape)
			}
		}
	}
}

func TestCatalogLookupMiss(t *testing.T) {
	c := testCatalog(t)

	if d := c.Lookup(CategoryBoots, RoleCaptain, 3); d != nil {
		t.Fatalf("lookup of absent variant returned %q", d.Name)
	}
	if d := c.LookupTag("no_such_tag"); d != nil {
		t.Fatalf("lookup of absent tag returned %q", d.Name)
	}
}

func TestPlaceholder(t *testing.T) {
	d := Placeholder(CategoryBoots, RoleCaptain, 1)
	if !strings.HasPrefix(string(d.Tag), "missing_") {
		t.Errorf("placeholder tag = %q", d.Tag)
	}
	if d.Copies != 1 || d.Shape != ShapeResource {
		t.Errorf("playable placeholder should yield one harmless card, got copies=%d shape=%s",
			d.Copies, d.Shape)
	}

	p := Placeholder(CategoryTrinket, RoleCaptain, 2)
	if p.Shape != ShapePassive || p.Copies != 0 {
		t.Errorf("passive placeholder should stay passive, got shape=%s copies=%d",
			p.Shape, p.Copies)
	}
}

func TestCatalogWeapons(t *testing.T) {
	c := testCatalog(t)

	if len(c.Weapons()) == 0 {
		t.Fatal("catalog has no weapons")
	}
	for _, f := range []WeaponFamily{WeaponCutlass, WeaponPistol, WeaponMusket, WeaponHarpoon, WeaponHook, WeaponBlunderbuss} {
		if len(c.WeaponsForFamily(f)) == 0 {
			t.Errorf("no weapons for family %s", f)
		}
	}
	if c.WeaponByName("Captain's Sabre") == nil {
		t.Error("WeaponByName miss for Captain's Sabre")
	}
	if c.WeaponByName("Rubber Chicken") != nil {
		t.Error("WeaponByName hit for a weapon that doesn't exist")
	}
}

func TestCatalogByRoleAndCategory(t *testing.T) {
	c := testCatalog(t)

	byRole := c.ByRole(RoleGunner)
	if len(byRole) != len(AllCategories)*2 {
		t.Fatalf("ByRole(Gunner) = %d definitions, want %d", len(byRole), len(AllCategories)*2)
	}
	byCat := c.ByCategory(CategoryUltimate)
	if len(byCat) != len(AllRoles)*2 {
		t.Fatalf("ByCategory(Ultimate) = %d definitions, want %d", len(byCat), len(AllRoles)*2)
	}
	for _, d := range byCat {
		if d.Category != CategoryUltimate {
			t.Errorf("ByCategory returned %s relic %q", d.Category, d.Name)
		}
	}
}
