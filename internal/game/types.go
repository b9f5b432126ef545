package game

// --- Enums ---

// Category is one of the 8 relic slots. Trinket and PassiveUnique relics are
// passive: always on, never deck cards.
type Category int

const (
	CategoryBoots Category = iota
	CategoryGloves
	CategoryHat
	CategoryCoat
	CategoryTrinket
	CategoryTotem
	CategoryUltimate
	CategoryPassiveUnique
)

// AllCategories lists every category in declaration order.
var AllCategories = []Category{
	CategoryBoots, CategoryGloves, CategoryHat, CategoryCoat,
	CategoryTrinket, CategoryTotem, CategoryUltimate, CategoryPassiveUnique,
}

func (c Category) String() string {
	switch c {
	case CategoryBoots:
		return "Boots"
	case CategoryGloves:
		return "Gloves"
	case CategoryHat:
		return "Hat"
	case CategoryCoat:
		return "Coat"
	case CategoryTrinket:
		return "Trinket"
	case CategoryTotem:
		return "Totem"
	case CategoryUltimate:
		return "Ultimate"
	case CategoryPassiveUnique:
		return "PassiveUnique"
	default:
		return "Unknown"
	}
}

// IsPassive reports whether relics of this category are always-on passives
// rather than deck cards.
func (c Category) IsPassive() bool {
	return c == CategoryTrinket || c == CategoryPassiveUnique
}

// IsLocked reports whether this category's slot is role-locked and immune to
// equip/unequip.
func (c Category) IsLocked() bool {
	return c == CategoryUltimate || c == CategoryPassiveUnique
}

// Role is one of the 12 crew archetypes.
type Role int

const (
	RoleCaptain Role = iota
	RoleQuartermaster
	RoleBosun
	RoleGunner
	RoleNavigator
	RoleSurgeon
	RoleCook
	RoleLookout
	RoleSwashbuckler
	RolePowderMonkey
	RoleShipwright
	RoleCastaway
)

// AllRoles lists every role in declaration order.
var AllRoles = []Role{
	RoleCaptain, RoleQuartermaster, RoleBosun, RoleGunner,
	RoleNavigator, RoleSurgeon, RoleCook, RoleLookout,
	RoleSwashbuckler, RolePowderMonkey, RoleShipwright, RoleCastaway,
}

func (r Role) String() string {
	switch r {
	case RoleCaptain:
		return "Captain"
	case RoleQuartermaster:
		return "Quartermaster"
	case RoleBosun:
		return "Bosun"
	case RoleGunner:
		return "Gunner"
	case RoleNavigator:
		return "Navigator"
	case RoleSurgeon:
		return "Surgeon"
	case RoleCook:
		return "Cook"
	case RoleLookout:
		return "Lookout"
	case RoleSwashbuckler:
		return "Swashbuckler"
	case RolePowderMonkey:
		return "Powder Monkey"
	case RoleShipwright:
		return "Shipwright"
	case RoleCastaway:
		return "Castaway"
	default:
		return "Unknown"
	}
}

// WeaponFamily groups weapon relics; a unit may only equip weapons of its
// own family.
type WeaponFamily int

const (
	WeaponCutlass WeaponFamily = iota
	WeaponPistol
	WeaponMusket
	WeaponHarpoon
	WeaponHook
	WeaponBlunderbuss
)

func (w WeaponFamily) String() string {
	switch w {
	case WeaponCutlass:
		return "Cutlass"
	case WeaponPistol:
		return "Pistol"
	case WeaponMusket:
		return "Musket"
	case WeaponHarpoon:
		return "Harpoon"
	case WeaponHook:
		return "Hook"
	case WeaponBlunderbuss:
		return "Blunderbuss"
	default:
		return "Unknown"
	}
}

type Rarity int

const (
	RarityCommon Rarity = iota
	RarityUncommon
	RarityRare
	RarityLegendary
)

func (r Rarity) String() string {
	switch r {
	case RarityCommon:
		return "Common"
	case RarityUncommon:
		return "Uncommon"
	case RarityRare:
		return "Rare"
	case RarityLegendary:
		return "Legendary"
	default:
		return "Unknown"
	}
}

// EffectType is the unique tag of one catalog entry's behavior. Tags are
// never reused across definitions.
type EffectType string

// EffectShape groups catalog entries by the interpreter that executes them.
type EffectShape int

const (
	ShapeNone EffectShape = iota
	ShapeMovement
	ShapeAttack
	ShapeBuff
	ShapeResource
	ShapeSummon
	ShapePassive
)

func (s EffectShape) String() string {
	switch s {
	case ShapeMovement:
		return "Movement"
	case ShapeAttack:
		return "Attack"
	case ShapeBuff:
		return "Buff"
	case ShapeResource:
		return "Resource"
	case ShapeSummon:
		return "Summon"
	case ShapePassive:
		return "Passive"
	default:
		return "None"
	}
}

// MoveKind refines movement-shaped effects.
type MoveKind int

const (
	MoveDash MoveKind = iota // relocate the caster
	MoveSwap                 // swap caster with the target unit
	MovePush                 // push the target away from the caster
)

// StatusKind identifies a timed modifier requested through the status layer.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusDamageUp
	StatusDamageDown
	StatusProtected
	StatusCostUp
	StatusWeaponCostUp
	StatusRangedCostDown // one-shot: consumed by the next qualifying play
	StatusFreeMove       // one-shot: next movement card costs 0
	StatusDrawUp
	StatusDamageImmune
	StatusStunned
	StatusCategoryDisabled // magnitude carries the disabled Category
	StatusRelicsNotConsumed
	StatusPassivesDisabled
	StatusBleeding
	StatusMoraleShield
)

func (s StatusKind) String() string {
	switch s {
	case StatusDamageUp:
		return "DamageUp"
	case StatusDamageDown:
		return "DamageDown"
	case StatusProtected:
		return "Protected"
	case StatusCostUp:
		return "CostUp"
	case StatusWeaponCostUp:
		return "WeaponCostUp"
	case StatusRangedCostDown:
		return "RangedCostDown"
	case StatusFreeMove:
		return "FreeMove"
	case StatusDrawUp:
		return "DrawUp"
	case StatusDamageImmune:
		return "DamageImmune"
	case StatusStunned:
		return "Stunned"
	case StatusCategoryDisabled:
		return "CategoryDisabled"
	case StatusRelicsNotConsumed:
		return "RelicsNotConsumed"
	case StatusPassivesDisabled:
		return "PassivesDisabled"
	case StatusBleeding:
		return "Bleeding"
	case StatusMoraleShield:
		return "MoraleShield"
	default:
		return "None"
	}
}

// ResourceKind identifies what a resource-shaped effect grants.
type ResourceKind int

const (
	ResourceNone ResourceKind = iota
	ResourceEnergy
	ResourceGrog
	ResourceDraw
	ResourceGrit
	ResourceMorale
)

func (r ResourceKind) String() string {
	switch r {
	case ResourceEnergy:
		return "Energy"
	case ResourceGrog:
		return "Grog"
	case ResourceDraw:
		return "Draw"
	case ResourceGrit:
		return "Grit"
	case ResourceMorale:
		return "Morale"
	default:
		return "None"
	}
}

// SummonKind identifies the board entity a summon-shaped effect spawns.
type SummonKind int

const (
	SummonNone SummonKind = iota
	SummonCannon
	SummonDummy
	SummonObstacle
	SummonHazard
	SummonTotem
)

func (s SummonKind) String() string {
	switch s {
	case SummonCannon:
		return "Cannon"
	case SummonDummy:
		return "Dummy"
	case SummonObstacle:
		return "Obstacle"
	case SummonHazard:
		return "Hazard"
	case SummonTotem:
		return "Totem"
	default:
		return "None"
	}
}

// TargetSelector describes how an effect picks its subject(s).
type TargetSelector int

const (
	TargetSelf TargetSelector = iota
	TargetAlly
	TargetEnemy
	TargetCell
	TargetAlliesInRange
	TargetEnemiesInRange
	TargetClosestEnemy
	TargetHighestHPEnemy
)

// PassiveHook discriminates the behavior of a passive catalog entry; the
// trigger registry interprets it against (value1, value2).
type PassiveHook int

const (
	HookNone PassiveHook = iota
	HookTurnStartDraw
	HookTurnStartEnergy
	HookTurnStartHeal
	HookTurnStartMorale
	HookTurnEndHeal
	HookRoundStartGrog
	HookDamageBonus   // outgoing damage +value1 percent
	HookDamageResist  // incoming damage -value1 percent
	HookAllyHoldFast  // ally surrender threshold lowered by value1 percent points
	HookEnemyTerror   // enemy surrender threshold raised by value1 percent points
	HookMoraleFocusFireImmune
	HookNoBuzzDownside
	HookRetaliate // when attacked in melee range, once per turn, strike back for value1
	HookFreeMoveEachTurn
	HookRangedDiscountEachTurn
	HookRelicsNotConsumed
	HookGrogOnKill
	HookEnergyOnKill
	HookHealOnKill
	HookDrawOnKill
	HookMoraleOnAllyDeath
	HookDrawOnDamaged // once per turn
	HookEnergyOnDamaged
	HookGritOnDamaged
	HookMoraleOnEnemySurrender
)

func (h PassiveHook) String() string {
	switch h {
	case HookTurnStartDraw:
		return "TurnStartDraw"
	case HookTurnStartEnergy:
		return "TurnStartEnergy"
	case HookTurnStartHeal:
		return "TurnStartHeal"
	case HookTurnStartMorale:
		return "TurnStartMorale"
	case HookTurnEndHeal:
		return "TurnEndHeal"
	case HookRoundStartGrog:
		return "RoundStartGrog"
	case HookDamageBonus:
		return "DamageBonus"
	case HookDamageResist:
		return "DamageResist"
	case HookAllyHoldFast:
		return "AllyHoldFast"
	case HookEnemyTerror:
		return "EnemyTerror"
	case HookMoraleFocusFireImmune:
		return "MoraleFocusFireImmune"
	case HookNoBuzzDownside:
		return "NoBuzzDownside"
	case HookRetaliate:
		return "Retaliate"
	case HookFreeMoveEachTurn:
		return "FreeMoveEachTurn"
	case HookRangedDiscountEachTurn:
		return "RangedDiscountEachTurn"
	case HookRelicsNotConsumed:
		return "RelicsNotConsumed"
	case HookGrogOnKill:
		return "GrogOnKill"
	case HookEnergyOnKill:
		return "EnergyOnKill"
	case HookHealOnKill:
		return "HealOnKill"
	case HookDrawOnKill:
		return "DrawOnKill"
	case HookMoraleOnAllyDeath:
		return "MoraleOnAllyDeath"
	case HookDrawOnDamaged:
		return "DrawOnDamaged"
	case HookEnergyOnDamaged:
		return "EnergyOnDamaged"
	case HookGritOnDamaged:
		return "GritOnDamaged"
	case HookMoraleOnEnemySurrender:
		return "MoraleOnEnemySurrender"
	default:
		return "None"
	}
}
