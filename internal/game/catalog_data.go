package game

// The relic catalog. One definition per (category, role, variant): 8
// categories x 12 roles x 2 variants = 192 entries, plus the weapon table.
// Tags are unique across the whole file; BuildCatalog enforces that.

// p bundles the numeric and refinement parameters of one entry so the role
// tables below stay readable.
type p struct {
	copies, cost           int
	v1, v2, dur, rng       int
	rar                    Rarity
	move                   MoveKind
	status                 StatusKind
	self                   bool
	res                    ResourceKind
	sum                    SummonKind
	tgt                    TargetSelector
	hook                   PassiveHook
}

func entry(shape EffectShape, cat Category, role Role, variant int, tag, name, desc string, x p) RelicEffectDefinition {
	return RelicEffectDefinition{
		Category:   cat,
		Role:       role,
		Variant:    variant,
		Tag:        EffectType(tag),
		Name:       name,
		Desc:       desc,
		Rarity:     x.rar,
		Copies:     x.copies,
		Cost:       x.cost,
		Value1:     x.v1,
		Value2:     x.v2,
		Duration:   x.dur,
		TileRange:  x.rng,
		Shape:      shape,
		Move:       x.move,
		Status:     x.status,
		SelfStatus: x.self,
		Resource:   x.res,
		Summon:     x.sum,
		Target:     x.tgt,
		Hook:       x.hook,
	}
}

func passive(cat Category, role Role, variant int, tag, name, desc string, hook PassiveHook, v1, v2 int, rar Rarity) RelicEffectDefinition {
	return entry(ShapePassive, cat, role, variant, tag, name, desc, p{hook: hook, v1: v1, v2: v2, rar: rar})
}

func allRelicDefinitions() []RelicEffectDefinition {
	var defs []RelicEffectDefinition
	defs = append(defs, captainDefs()...)
	defs = append(defs, quartermasterDefs()...)
	defs = append(defs, bosunDefs()...)
	defs = append(defs, gunnerDefs()...)
	defs = append(defs, navigatorDefs()...)
	defs = append(defs, surgeonDefs()...)
	defs = append(defs, cookDefs()...)
	defs = append(defs, lookoutDefs()...)
	defs = append(defs, swashbucklerDefs()...)
	defs = append(defs, powderMonkeyDefs()...)
	defs = append(defs, shipwrightDefs()...)
	defs = append(defs, castawayDefs()...)
	return defs
}

func captainDefs() []RelicEffectDefinition {
	r := RoleCaptain
	return []RelicEffectDefinition{
		entry(ShapeMovement, CategoryBoots, r, 1, "rally_charge", "Rallying Charge",
			"Move up to 3 tiles, then restore 2 morale to yourself.",
			p{copies: 2, cost: 1, rng: 3, v1: 2, res: ResourceMorale, tgt: TargetCell}),
		entry(ShapeMovement, CategoryBoots, r, 2, "admirals_stride", "Admiral's Stride",
			"Move up to 2 tiles and gain Damage Up 1 for 2 turns.",
			p{copies: 2, cost: 1, rng: 2, v1: 1, dur: 2, status: StatusDamageUp, self: true, tgt: TargetCell}),
		entry(ShapeAttack, CategoryGloves, r, 1, "officers_thrust", "Officer's Thrust",
			"Weapon attack with +2 damage.",
			p{copies: 2, cost: 2, v1: 2, rng: 1, tgt: TargetEnemy}),
		entry(ShapeAttack, CategoryGloves, r, 2, "dishonoring_blow", "Dishonoring Blow",
			"Weapon attack; the target's damage drops by 1 for 2 turns.",
			p{copies: 2, cost: 2, v2: 1, dur: 2, rng: 1, status: StatusDamageDown, tgt: TargetEnemy, rar: RarityUncommon}),
		entry(ShapeBuff, CategoryHat, r, 1, "standard_of_the_fleet", "Standard of the Fleet",
			"Allies within 2 tiles gain Damage Up 1 for 2 turns.",
			p{copies: 2, cost: 2, v1: 1, dur: 2, rng: 2, status: StatusDamageUp, tgt: TargetAlliesInRange}),
		entry(ShapeBuff, CategoryHat, r, 2, "iron_discipline", "Iron Discipline",
			"Allies within 2 tiles gain a morale shield of 2 for 2 turns.",
			p{copies: 2, cost: 2, v1: 2, dur: 2, rng: 2, status: StatusMoraleShield, tgt: TargetAlliesInRange, rar: RarityUncommon}),
		entry(ShapeBuff, CategoryCoat, r, 1, "captains_greatcoat", "Captain's Greatcoat",
			"Gain Protected 2 for 2 turns.",
			p{copies: 2, cost: 1, v1: 2, dur: 2, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 2, "colors_never_struck", "Colors Never Struck",
			"Brace an ally: Protected 2 for 2 turns.",
			p{copies: 2, cost: 1, v1: 2, dur: 2, rng: 3, status: StatusProtected, tgt: TargetAlly}),
		passive(CategoryTrinket, r, 1, "compass_of_command", "Compass of Command",
			"Restore 1 morale at the start of your turn.", HookTurnStartMorale, 1, 0, RarityCommon),
		passive(CategoryTrinket, r, 2, "epaulettes_of_terror", "Epaulettes of Terror",
			"Enemies surrender 10% more readily.", HookEnemyTerror, 10, 0, RarityRare),
		entry(ShapeSummon, CategoryTotem, r, 1, "jack_of_the_fleet", "Jack of the Fleet",
			"Plant the fleet's colors: a totem with 4 HP for 3 turns.",
			p{copies: 1, cost: 2, v1: 4, v2: 2, dur: 3, rng: 2, sum: SummonTotem, tgt: TargetCell}),
		entry(ShapeSummon, CategoryTotem, r, 2, "war_drum", "War Drum",
			"Place a war drum with 3 HP for 3 turns.",
			p{copies: 1, cost: 2, v1: 3, v2: 2, dur: 3, rng: 2, sum: SummonTotem, rar: RarityUncommon, tgt: TargetCell}),
		entry(ShapeAttack, CategoryUltimate, r, 1, "broadside_order", "Broadside Order",
			"Devastating strike: weapon attack with +5 damage at range 3.",
			p{copies: 1, cost: 4, v1: 5, rng: 3, rar: RarityLegendary, tgt: TargetEnemy}),
		entry(ShapeBuff, CategoryUltimate, r, 2, "all_hands_on_deck", "All Hands on Deck",
			"Every ally within 3 tiles gains Damage Up 2 for 2 turns.",
			p{copies: 1, cost: 4, v1: 2, dur: 2, rng: 3, status: StatusDamageUp, rar: RarityLegendary, tgt: TargetAlliesInRange}),
		passive(CategoryPassiveUnique, r, 1, "born_to_lead", "Born to Lead",
			"Allies hold fast: their surrender threshold is 10% lower.", HookAllyHoldFast, 10, 0, RarityRare),
		passive(CategoryPassiveUnique, r, 2, "steel_resolve", "Steel Resolve",
			"Immune to morale focus-fire.", HookMoraleFocusFireImmune, 0, 0, RarityRare),
	}
}

func quartermasterDefs() []RelicEffectDefinition {
	r := RoleQuartermaster
	return []RelicEffectDefinition{
		entry(ShapeMovement, CategoryBoots, r, 1, "supply_run", "Supply Run",
			"Move up to 3 tiles and gain 1 grog token.",
			p{copies: 2, cost: 1, rng: 3, v1: 1, res: ResourceGrog, tgt: TargetCell}),
		entry(ShapeMovement, CategoryBoots, r, 2, "ledger_sidestep", "Ledger Sidestep",
			"Move up to 2 tiles and draw a card.",
			p{copies: 2, cost: 1, rng: 2, v1: 1, res: ResourceDraw, tgt: TargetCell}),
		entry(ShapeAttack, CategoryGloves, r, 1, "debt_collection", "Debt Collection",
			"Weapon attack with +1 damage; gain 1 energy.",
			p{copies: 2, cost: 2, v1: 1, v2: 1, rng: 1, res: ResourceEnergy, tgt: TargetEnemy}),
		entry(ShapeAttack, CategoryGloves, r, 2, "embargo_strike", "Embargo Strike",
			"Weapon attack; the target's cards cost 1 more for 2 turns.",
			p{copies: 2, cost: 2, v2: 1, dur: 2, rng: 1, status: StatusCostUp, tgt: TargetEnemy, rar: RarityUncommon}),
		entry(ShapeBuff, CategoryHat, r, 1, "rationing_cap", "Rationing Cap",
			"Draw 1 extra card at turn start for 2 turns.",
			p{copies: 2, cost: 2, v1: 1, dur: 2, status: StatusDrawUp, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryHat, r, 2, "creditors_gaze", "Creditor's Gaze",
			"An enemy's cards cost 1 more for 2 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, rng: 3, status: StatusCostUp, tgt: TargetEnemy}),
		entry(ShapeBuff, CategoryCoat, r, 1, "stores_keeper_oilskin", "Storekeeper's Oilskin",
			"Gain Protected 1 for 3 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 3, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 2, "requisitioned_plating", "Requisitioned Plating",
			"An ally within 3 tiles gains Protected 2 for 1 turn.",
			p{copies: 2, cost: 1, v1: 2, dur: 1, rng: 3, status: StatusProtected, tgt: TargetAlly}),
		passive(CategoryTrinket, r, 1, "tally_beads", "Tally Beads",
			"Gain 1 energy at the start of your turn.", HookTurnStartEnergy, 1, 0, RarityUncommon),
		passive(CategoryTrinket, r, 2, "grog_ledger", "Grog Ledger",
			"Gain 1 grog token at the start of each round.", HookRoundStartGrog, 1, 0, RarityCommon),
		entry(ShapeSummon, CategoryTotem, r, 1, "supply_cache", "Supply Cache",
			"Drop a supply cache with 3 HP for 3 turns.",
			p{copies: 1, cost: 2, v1: 3, v2: 1, dur: 3, rng: 2, sum: SummonTotem, tgt: TargetCell}),
		entry(ShapeSummon, CategoryTotem, r, 2, "barricade_of_barrels", "Barricade of Barrels",
			"Stack barrels into an obstacle with 5 HP.",
			p{copies: 1, cost: 2, v1: 5, dur: 4, rng: 2, sum: SummonObstacle, tgt: TargetCell}),
		entry(ShapeResource, CategoryUltimate, r, 1, "open_the_reserves", "Open the Reserves",
			"Gain 3 energy immediately.",
			p{copies: 1, cost: 0, v1: 3, res: ResourceEnergy, rar: RarityLegendary, tgt: TargetSelf}),
		entry(ShapeResource, CategoryUltimate, r, 2, "full_inventory", "Full Inventory",
			"Draw 3 cards.",
			p{copies: 1, cost: 3, v1: 3, res: ResourceDraw, rar: RarityLegendary, tgt: TargetSelf}),
		passive(CategoryPassiveUnique, r, 1, "never_waste_a_drop", "Never Waste a Drop",
			"Drinking grog carries no buzz downside.", HookNoBuzzDownside, 0, 0, RarityRare),
		passive(CategoryPassiveUnique, r, 2, "creative_bookkeeping", "Creative Bookkeeping",
			"Played relics are returned to your hand instead of spent.", HookRelicsNotConsumed, 0, 0, RarityRare),
	}
}

func bosunDefs() []RelicEffectDefinition {
	r := RoleBosun
	return []RelicEffectDefinition{
		entry(ShapeMovement, CategoryBoots, r, 1, "deck_pounder", "Deck Pounder",
			"Move up to 2 tiles; enemies adjacent to your destination lose 1 morale.",
			p{copies: 2, cost: 1, rng: 2, v1: 1, res: ResourceMorale, tgt: TargetCell}),
		entry(ShapeMovement, CategoryBoots, r, 2, "rope_swing", "Rope Swing",
			"Swap places with an ally within 3 tiles.",
			p{copies: 2, cost: 1, rng: 3, move: MoveSwap, tgt: TargetAlly}),
		entry(ShapeAttack, CategoryGloves, r, 1, "knuckle_down", "Knuckle Down",
			"Weapon attack with +2 damage at melee reach.",
			p{copies: 3, cost: 2, v1: 2, rng: 1, tgt: TargetEnemy}),
		entry(ShapeAttack, CategoryGloves, r, 2, "lash_of_order", "Lash of Order",
			"Weapon attack; stun the target for 1 turn.",
			p{copies: 1, cost: 3, v2: 1, dur: 1, rng: 1, status: StatusStunned, tgt: TargetEnemy, rar: RarityRare}),
		entry(ShapeBuff, CategoryHat, r, 1, "boatswains_call", "Boatswain's Call",
			"Allies within 2 tiles gain Damage Up 1 for 1 turn.",
			p{copies: 2, cost: 1, v1: 1, dur: 1, rng: 2, status: StatusDamageUp, tgt: TargetAlliesInRange}),
		entry(ShapeBuff, CategoryHat, r, 2, "taskmasters_glare", "Taskmaster's Glare",
			"An enemy within 2 tiles suffers Damage Down 1 for 2 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, rng: 2, status: StatusDamageDown, tgt: TargetEnemy}),
		entry(ShapeBuff, CategoryCoat, r, 1, "tar_stained_jacket", "Tar-Stained Jacket",
			"Gain Protected 2 for 1 turn.",
			p{copies: 2, cost: 1, v1: 2, dur: 1, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 2, "hardened_hide", "Hardened Hide",
			"Gain Protected 1 for 3 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 3, status: StatusProtected, self: true, tgt: TargetSelf}),
		passive(CategoryTrinket, r, 1, "marlinspike_charm", "Marlinspike Charm",
			"Once per turn, strike back for 2 when attacked up close.", HookRetaliate, 2, 0, RarityUncommon),
		passive(CategoryTrinket, r, 2, "knotted_talisman", "Knotted Talisman",
			"Incoming damage reduced by 10%.", HookDamageResist, 10, 0, RarityUncommon),
		entry(ShapeSummon, CategoryTotem, r, 1, "mooring_post", "Mooring Post",
			"Plant a mooring post: an obstacle with 6 HP.",
			p{copies: 1, cost: 2, v1: 6, dur: 4, rng: 1, sum: SummonObstacle, tgt: TargetCell}),
		entry(ShapeSummon, CategoryTotem, r, 2, "discipline_bell", "Discipline Bell",
			"Hang the bell: a totem with 3 HP for 3 turns.",
			p{copies: 1, cost: 2, v1: 3, v2: 2, dur: 3, rng: 2, sum: SummonTotem, tgt: TargetCell}),
		entry(ShapeAttack, CategoryUltimate, r, 1, "keelhaul", "Keelhaul",
			"Weapon attack with +4 damage; stun the target for 1 turn.",
			p{copies: 1, cost: 4, v1: 4, v2: 1, dur: 1, rng: 1, status: StatusStunned, rar: RarityLegendary, tgt: TargetEnemy}),
		entry(ShapeMovement, CategoryUltimate, r, 2, "haul_the_line", "Haul the Line",
			"Push an enemy 2 tiles away.",
			p{copies: 1, cost: 3, rng: 2, v2: 2, move: MovePush, rar: RarityRare, tgt: TargetEnemy}),
		passive(CategoryPassiveUnique, r, 1, "iron_knuckles", "Iron Knuckles",
			"Outgoing damage increased by 15%.", HookDamageBonus, 15, 0, RarityRare),
		passive(CategoryPassiveUnique, r, 2, "old_salts_hide", "Old Salt's Hide",
			"Incoming damage reduced by 20%.", HookDamageResist, 20, 0, RarityRare),
	}
}

func gunnerDefs() []RelicEffectDefinition {
	r := RoleGunner
	return []RelicEffectDefinition{
		entry(ShapeMovement, CategoryBoots, r, 1, "recoil_step", "Recoil Step",
			"Move up to 2 tiles and gain Ranged Discount for this turn.",
			p{copies: 2, cost: 1, rng: 2, v1: 1, dur: 1, status: StatusRangedCostDown, self: true, tgt: TargetCell}),
		entry(ShapeMovement, CategoryBoots, r, 2, "wheel_the_carriage", "Wheel the Carriage",
			"Move up to 3 tiles.",
			p{copies: 2, cost: 1, rng: 3, tgt: TargetCell}),
		entry(ShapeAttack, CategoryGloves, r, 1, "double_shot", "Double-Shot",
			"Weapon attack with +3 damage at range 3.",
			p{copies: 2, cost: 2, v1: 3, rng: 3, tgt: TargetEnemy}),
		entry(ShapeAttack, CategoryGloves, r, 2, "chain_shot", "Chain Shot",
			"Weapon attack at range 3; the target bleeds 1 for 2 turns.",
			p{copies: 2, cost: 2, v2: 1, dur: 2, rng: 3, status: StatusBleeding, tgt: TargetEnemy, rar: RarityUncommon}),
		entry(ShapeBuff, CategoryHat, r, 1, "powder_scarf", "Powder Scarf",
			"Gain Damage Up 2 for 1 turn.",
			p{copies: 2, cost: 1, v1: 2, dur: 1, status: StatusDamageUp, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryHat, r, 2, "gunnery_sights", "Gunnery Sights",
			"Ranged cards cost 1 less this turn and next.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, status: StatusRangedCostDown, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 1, "blast_apron", "Blast Apron",
			"Gain Protected 2 for 2 turns.",
			p{copies: 2, cost: 2, v1: 2, dur: 2, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 2, "scorched_leathers", "Scorched Leathers",
			"Become immune to damage for 1 turn.",
			p{copies: 1, cost: 3, dur: 1, status: StatusDamageImmune, self: true, rar: RarityRare, tgt: TargetSelf}),
		passive(CategoryTrinket, r, 1, "smoldering_matchcord", "Smoldering Matchcord",
			"Ranged Discount granted at the start of each of your turns.", HookRangedDiscountEachTurn, 1, 0, RarityUncommon),
		passive(CategoryTrinket, r, 2, "cannoneers_earring", "Cannoneer's Earring",
			"Outgoing damage increased by 10%.", HookDamageBonus, 10, 0, RarityUncommon),
		entry(ShapeSummon, CategoryTotem, r, 1, "deck_cannon", "Deck Cannon",
			"Mount a cannon with 4 HP that menaces a radius of 2 for 3 turns.",
			p{copies: 1, cost: 3, v1: 4, v2: 2, dur: 3, rng: 1, sum: SummonCannon, tgt: TargetCell}),
		entry(ShapeSummon, CategoryTotem, r, 2, "powder_keg_trap", "Powder Keg Trap",
			"Roll out a hazard that deals 2 to anything entering it.",
			p{copies: 1, cost: 2, v1: 2, v2: 1, dur: 3, rng: 2, sum: SummonHazard, tgt: TargetCell}),
		entry(ShapeAttack, CategoryUltimate, r, 1, "full_broadside", "Full Broadside",
			"Weapon attack with +6 damage at range 4.",
			p{copies: 1, cost: 4, v1: 6, rng: 4, rar: RarityLegendary, tgt: TargetEnemy}),
		entry(ShapeSummon, CategoryUltimate, r, 2, "long_nine", "Long Nine",
			"Mount a long nine: a cannon with 6 HP, radius 3, for 3 turns.",
			p{copies: 1, cost: 4, v1: 6, v2: 3, dur: 3, rng: 1, sum: SummonCannon, rar: RarityLegendary, tgt: TargetCell}),
		passive(CategoryPassiveUnique, r, 1, "eye_for_distance", "Eye for Distance",
			"Outgoing damage increased by 20%.", HookDamageBonus, 20, 0, RarityRare),
		passive(CategoryPassiveUnique, r, 2, "powder_in_the_blood", "Powder in the Blood",
			"Gain 1 energy whenever you fell an enemy.", HookEnergyOnKill, 1, 0, RarityRare),
	}
}

func navigatorDefs() []RelicEffectDefinition {
	r := RoleNavigator
	return []RelicEffectDefinition{
		entry(ShapeMovement, CategoryBoots, r, 1, "dead_reckoning", "Dead Reckoning",
			"Move up to 4 tiles.",
			p{copies: 2, cost: 1, rng: 4, tgt: TargetCell}),
		entry(ShapeMovement, CategoryBoots, r, 2, "crosswind_tack", "Crosswind Tack",
			"Swap places with any ally within 4 tiles.",
			p{copies: 2, cost: 1, rng: 4, move: MoveSwap, tgt: TargetAlly}),
		entry(ShapeAttack, CategoryGloves, r, 1, "sextant_strike", "Sextant Strike",
			"Weapon attack with +1 damage; draw a card.",
			p{copies: 2, cost: 2, v1: 1, v2: 1, rng: 1, res: ResourceDraw, tgt: TargetEnemy}),
		entry(ShapeAttack, CategoryGloves, r, 2, "starboard_feint", "Starboard Feint",
			"Weapon attack; gain Free Move.",
			p{copies: 2, cost: 2, dur: 1, status: StatusFreeMove, self: true, rng: 1, tgt: TargetEnemy, rar: RarityUncommon}),
		entry(ShapeBuff, CategoryHat, r, 1, "stargazers_tricorn", "Stargazer's Tricorn",
			"Gain Free Move this turn.",
			p{copies: 2, cost: 1, dur: 1, status: StatusFreeMove, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryHat, r, 2, "chartmasters_focus", "Chartmaster's Focus",
			"Draw 1 extra card at turn start for 3 turns.",
			p{copies: 1, cost: 2, v1: 1, dur: 3, status: StatusDrawUp, self: true, tgt: TargetSelf, rar: RarityRare}),
		entry(ShapeBuff, CategoryCoat, r, 1, "stormcloak", "Stormcloak",
			"Gain Protected 1 for 2 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 2, "mistwalkers_shroud", "Mistwalker's Shroud",
			"Become immune to damage for 1 turn.",
			p{copies: 1, cost: 3, dur: 1, status: StatusDamageImmune, self: true, rar: RarityRare, tgt: TargetSelf}),
		passive(CategoryTrinket, r, 1, "polished_astrolabe", "Polished Astrolabe",
			"Free Move granted at the start of each of your turns.", HookFreeMoveEachTurn, 0, 0, RarityRare),
		passive(CategoryTrinket, r, 2, "northstar_pendant", "Northstar Pendant",
			"Draw 1 extra card at the start of your turn.", HookTurnStartDraw, 1, 0, RarityUncommon),
		entry(ShapeSummon, CategoryTotem, r, 1, "signal_beacon", "Signal Beacon",
			"Raise a beacon with 3 HP for 3 turns.",
			p{copies: 1, cost: 2, v1: 3, v2: 2, dur: 3, rng: 3, sum: SummonTotem, tgt: TargetCell}),
		entry(ShapeSummon, CategoryTotem, r, 2, "false_chart_decoy", "False Chart Decoy",
			"Place a decoy dummy with 4 HP.",
			p{copies: 1, cost: 2, v1: 4, dur: 3, rng: 2, sum: SummonDummy, tgt: TargetCell}),
		entry(ShapeMovement, CategoryUltimate, r, 1, "ride_the_maelstrom", "Ride the Maelstrom",
			"Move anywhere within 6 tiles, then gain Damage Up 2 for 1 turn.",
			p{copies: 1, cost: 3, rng: 6, v1: 2, dur: 1, status: StatusDamageUp, self: true, rar: RarityLegendary, tgt: TargetCell}),
		entry(ShapeBuff, CategoryUltimate, r, 2, "uncharted_waters", "Uncharted Waters",
			"All allies within 4 tiles gain Free Move this turn.",
			p{copies: 1, cost: 3, dur: 1, rng: 4, status: StatusFreeMove, rar: RarityLegendary, tgt: TargetAlliesInRange}),
		passive(CategoryPassiveUnique, r, 1, "wind_reader", "Wind Reader",
			"Gain 1 energy whenever you take damage.", HookEnergyOnDamaged, 1, 0, RarityRare),
		passive(CategoryPassiveUnique, r, 2, "never_lost", "Never Lost",
			"Once per turn, draw a card when damaged.", HookDrawOnDamaged, 1, 0, RarityRare),
	}
}

func surgeonDefs() []RelicEffectDefinition {
	r := RoleSurgeon
	return []RelicEffectDefinition{
		entry(ShapeMovement, CategoryBoots, r, 1, "triage_dash", "Triage Dash",
			"Move up to 3 tiles, then heal yourself for 1.",
			p{copies: 2, cost: 1, rng: 3, v1: 1, res: ResourceGrit, tgt: TargetCell}),
		entry(ShapeMovement, CategoryBoots, r, 2, "stretcher_bearer", "Stretcher Bearer",
			"Swap places with an ally within 2 tiles.",
			p{copies: 2, cost: 1, rng: 2, move: MoveSwap, tgt: TargetAlly}),
		entry(ShapeAttack, CategoryGloves, r, 1, "bonesaw_swipe", "Bonesaw Swipe",
			"Weapon attack; the target bleeds 1 for 2 turns.",
			p{copies: 2, cost: 2, v2: 1, dur: 2, rng: 1, status: StatusBleeding, tgt: TargetEnemy}),
		entry(ShapeAttack, CategoryGloves, r, 2, "anaesthetic_jab", "Anaesthetic Jab",
			"Weapon attack; the target's damage drops by 2 for 1 turn.",
			p{copies: 2, cost: 2, v2: 2, dur: 1, rng: 1, status: StatusDamageDown, tgt: TargetEnemy, rar: RarityUncommon}),
		entry(ShapeBuff, CategoryHat, r, 1, "plague_doctors_mask", "Plague Doctor's Mask",
			"Gain Protected 1 for 3 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 3, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryHat, r, 2, "clean_bandages", "Clean Bandages",
			"An ally within 2 tiles gains a morale shield of 3 for 2 turns.",
			p{copies: 2, cost: 1, v1: 3, dur: 2, rng: 2, status: StatusMoraleShield, tgt: TargetAlly}),
		entry(ShapeBuff, CategoryCoat, r, 1, "sterile_smock", "Sterile Smock",
			"Gain Protected 2 for 1 turn.",
			p{copies: 2, cost: 1, v1: 2, dur: 1, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 2, "grave_robbers_cloak", "Grave Robber's Cloak",
			"An ally within 3 tiles becomes immune to damage for 1 turn.",
			p{copies: 1, cost: 3, dur: 1, rng: 3, status: StatusDamageImmune, tgt: TargetAlly, rar: RarityRare}),
		passive(CategoryTrinket, r, 1, "leech_jar", "Leech Jar",
			"Heal 1 at the start of your turn.", HookTurnStartHeal, 1, 0, RarityCommon),
		passive(CategoryTrinket, r, 2, "suture_kit", "Suture Kit",
			"Heal 1 at the end of your turn.", HookTurnEndHeal, 1, 0, RarityCommon),
		entry(ShapeSummon, CategoryTotem, r, 1, "field_hospital", "Field Hospital",
			"Pitch a field hospital totem with 4 HP for 3 turns.",
			p{copies: 1, cost: 2, v1: 4, v2: 2, dur: 3, rng: 2, sum: SummonTotem, tgt: TargetCell}),
		entry(ShapeSummon, CategoryTotem, r, 2, "quarantine_line", "Quarantine Line",
			"Rope off an obstacle with 4 HP.",
			p{copies: 1, cost: 2, v1: 4, dur: 3, rng: 2, sum: SummonObstacle, tgt: TargetCell}),
		entry(ShapeResource, CategoryUltimate, r, 1, "miracle_surgery", "Miracle Surgery",
			"Restore 6 grit to yourself.",
			p{copies: 1, cost: 3, v1: 6, res: ResourceGrit, rar: RarityLegendary, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryUltimate, r, 2, "mass_inoculation", "Mass Inoculation",
			"Allies within 3 tiles gain Protected 2 for 2 turns.",
			p{copies: 1, cost: 4, v1: 2, dur: 2, rng: 3, status: StatusProtected, rar: RarityLegendary, tgt: TargetAlliesInRange}),
		passive(CategoryPassiveUnique, r, 1, "hippocratic_stubbornness", "Hippocratic Stubbornness",
			"Heal 2 whenever you fell an enemy.", HookHealOnKill, 2, 0, RarityRare),
		passive(CategoryPassiveUnique, r, 2, "steady_hands", "Steady Hands",
			"Restore 1 grit whenever you take damage.", HookGritOnDamaged, 1, 0, RarityRare),
	}
}

func cookDefs() []RelicEffectDefinition {
	r := RoleCook
	return []RelicEffectDefinition{
		entry(ShapeMovement, CategoryBoots, r, 1, "galley_shuffle", "Galley Shuffle",
			"Move up to 2 tiles and gain 1 grog token.",
			p{copies: 2, cost: 1, rng: 2, v1: 1, res: ResourceGrog, tgt: TargetCell}),
		entry(ShapeMovement, CategoryBoots, r, 2, "grease_slide", "Grease Slide",
			"Move up to 3 tiles.",
			p{copies: 2, cost: 1, rng: 3, tgt: TargetCell}),
		entry(ShapeAttack, CategoryGloves, r, 1, "cleaver_chop", "Cleaver Chop",
			"Weapon attack with +2 damage.",
			p{copies: 2, cost: 2, v1: 2, rng: 1, tgt: TargetEnemy}),
		entry(ShapeAttack, CategoryGloves, r, 2, "boiling_ladle", "Boiling Ladle",
			"Weapon attack; the target bleeds 1 for 2 turns.",
			p{copies: 2, cost: 2, v2: 1, dur: 2, rng: 1, status: StatusBleeding, tgt: TargetEnemy, rar: RarityUncommon}),
		entry(ShapeBuff, CategoryHat, r, 1, "chefs_toque", "Chef's Toque",
			"Allies within 2 tiles gain Damage Up 1 for 1 turn.",
			p{copies: 2, cost: 1, v1: 1, dur: 1, rng: 2, status: StatusDamageUp, tgt: TargetAlliesInRange}),
		entry(ShapeBuff, CategoryHat, r, 2, "spice_rack_bandolier", "Spice Rack Bandolier",
			"Gain Damage Up 2 for 1 turn.",
			p{copies: 2, cost: 1, v1: 2, dur: 1, status: StatusDamageUp, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 1, "gravy_stained_apron", "Gravy-Stained Apron",
			"Gain Protected 1 for 2 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 2, "oven_mitts_of_valor", "Oven Mitts of Valor",
			"An ally within 2 tiles gains Protected 1 for 2 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, rng: 2, status: StatusProtected, tgt: TargetAlly}),
		passive(CategoryTrinket, r, 1, "lucky_soup_bone", "Lucky Soup Bone",
			"Gain 1 grog token at the start of each round.", HookRoundStartGrog, 1, 0, RarityCommon),
		passive(CategoryTrinket, r, 2, "pickled_courage", "Pickled Courage",
			"Restore 1 morale at the start of your turn.", HookTurnStartMorale, 1, 0, RarityCommon),
		entry(ShapeSummon, CategoryTotem, r, 1, "stewpot_shrine", "Stewpot Shrine",
			"Set a stewpot totem with 3 HP for 3 turns.",
			p{copies: 1, cost: 2, v1: 3, v2: 2, dur: 3, rng: 2, sum: SummonTotem, tgt: TargetCell}),
		entry(ShapeSummon, CategoryTotem, r, 2, "flaming_grease_spill", "Flaming Grease Spill",
			"Spill a hazard dealing 2 to anything entering it.",
			p{copies: 1, cost: 2, v1: 2, v2: 1, dur: 2, rng: 2, sum: SummonHazard, tgt: TargetCell}),
		entry(ShapeResource, CategoryUltimate, r, 1, "feast_of_heroes", "Feast of Heroes",
			"Gain 2 grog tokens and restore 3 morale.",
			p{copies: 1, cost: 3, v1: 2, v2: 3, res: ResourceGrog, rar: RarityLegendary, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryUltimate, r, 2, "secret_recipe", "Secret Recipe",
			"Allies within 3 tiles gain Damage Up 2 for 2 turns.",
			p{copies: 1, cost: 4, v1: 2, dur: 2, rng: 3, status: StatusDamageUp, rar: RarityLegendary, tgt: TargetAlliesInRange}),
		passive(CategoryPassiveUnique, r, 1, "cast_iron_stomach", "Cast-Iron Stomach",
			"Drinking grog carries no buzz downside.", HookNoBuzzDownside, 0, 0, RarityRare),
		passive(CategoryPassiveUnique, r, 2, "comfort_food", "Comfort Food",
			"Restore 2 morale to yourself when an ally dies.", HookMoraleOnAllyDeath, 2, 0, RarityRare),
	}
}

func lookoutDefs() []RelicEffectDefinition {
	r := RoleLookout
	return []RelicEffectDefinition{
		entry(ShapeMovement, CategoryBoots, r, 1, "crows_nest_drop", "Crow's Nest Drop",
			"Move up to 4 tiles.",
			p{copies: 2, cost: 1, rng: 4, tgt: TargetCell}),
		entry(ShapeMovement, CategoryBoots, r, 2, "rigging_run", "Rigging Run",
			"Move up to 3 tiles and gain Ranged Discount this turn.",
			p{copies: 2, cost: 1, rng: 3, v1: 1, dur: 1, status: StatusRangedCostDown, self: true, tgt: TargetCell}),
		entry(ShapeAttack, CategoryGloves, r, 1, "spotters_shot", "Spotter's Shot",
			"Weapon attack with +2 damage at range 4.",
			p{copies: 2, cost: 2, v1: 2, rng: 4, tgt: TargetEnemy}),
		entry(ShapeAttack, CategoryGloves, r, 2, "warning_shot", "Warning Shot",
			"Weapon attack at range 3; the target's damage drops by 1 for 2 turns.",
			p{copies: 2, cost: 2, v2: 1, dur: 2, rng: 3, status: StatusDamageDown, tgt: TargetEnemy, rar: RarityUncommon}),
		entry(ShapeBuff, CategoryHat, r, 1, "spyglass_band", "Spyglass Band",
			"Ranged cards cost 1 less for 2 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, status: StatusRangedCostDown, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryHat, r, 2, "eagle_eye_hood", "Eagle-Eye Hood",
			"Gain Damage Up 1 for 3 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 3, status: StatusDamageUp, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 1, "windbreaker", "Windbreaker",
			"Gain Protected 1 for 2 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 2, "camouflage_net", "Camouflage Net",
			"Become immune to damage for 1 turn.",
			p{copies: 1, cost: 3, dur: 1, status: StatusDamageImmune, self: true, rar: RarityRare, tgt: TargetSelf}),
		passive(CategoryTrinket, r, 1, "hawk_feather", "Hawk Feather",
			"Draw 1 extra card at the start of your turn.", HookTurnStartDraw, 1, 0, RarityUncommon),
		passive(CategoryTrinket, r, 2, "weathered_spyglass", "Weathered Spyglass",
			"Ranged Discount granted at the start of each of your turns.", HookRangedDiscountEachTurn, 1, 0, RarityUncommon),
		entry(ShapeSummon, CategoryTotem, r, 1, "watch_post", "Watch Post",
			"Raise a watch post totem with 3 HP for 3 turns.",
			p{copies: 1, cost: 2, v1: 3, v2: 3, dur: 3, rng: 3, sum: SummonTotem, tgt: TargetCell}),
		entry(ShapeSummon, CategoryTotem, r, 2, "scarecrow_rig", "Scarecrow Rig",
			"Rig a dummy with 3 HP to draw enemy fire.",
			p{copies: 1, cost: 2, v1: 3, dur: 3, rng: 2, sum: SummonDummy, tgt: TargetCell}),
		entry(ShapeAttack, CategoryUltimate, r, 1, "called_volley", "Called Volley",
			"Weapon attack with +5 damage at range 5.",
			p{copies: 1, cost: 4, v1: 5, rng: 5, rar: RarityLegendary, tgt: TargetEnemy}),
		entry(ShapeBuff, CategoryUltimate, r, 2, "land_ho", "Land Ho!",
			"Allies within 4 tiles gain Damage Up 1 and you draw a card.",
			p{copies: 1, cost: 3, v1: 1, v2: 1, dur: 2, rng: 4, status: StatusDamageUp, res: ResourceDraw, rar: RarityLegendary, tgt: TargetAlliesInRange}),
		passive(CategoryPassiveUnique, r, 1, "first_to_sight", "First to Sight",
			"Draw a card whenever you fell an enemy.", HookDrawOnKill, 1, 0, RarityRare),
		passive(CategoryPassiveUnique, r, 2, "unblinking", "Unblinking",
			"Immune to morale focus-fire.", HookMoraleFocusFireImmune, 0, 0, RarityRare),
	}
}

func swashbucklerDefs() []RelicEffectDefinition {
	r := RoleSwashbuckler
	return []RelicEffectDefinition{
		entry(ShapeMovement, CategoryBoots, r, 1, "flourish_lunge", "Flourish Lunge",
			"Move up to 3 tiles and gain Damage Up 1 for 1 turn.",
			p{copies: 2, cost: 1, rng: 3, v1: 1, dur: 1, status: StatusDamageUp, self: true, tgt: TargetCell}),
		entry(ShapeMovement, CategoryBoots, r, 2, "chandelier_swing", "Chandelier Swing",
			"Swap places with any unit within 3 tiles.",
			p{copies: 2, cost: 1, rng: 3, move: MoveSwap, tgt: TargetEnemy, rar: RarityUncommon}),
		entry(ShapeAttack, CategoryGloves, r, 1, "riposte_slash", "Riposte Slash",
			"Weapon attack with +2 damage.",
			p{copies: 3, cost: 2, v1: 2, rng: 1, tgt: TargetEnemy}),
		entry(ShapeAttack, CategoryGloves, r, 2, "flashing_steel", "Flashing Steel",
			"Weapon attack with +1 damage; gain Free Move.",
			p{copies: 2, cost: 2, v1: 1, dur: 1, status: StatusFreeMove, self: true, rng: 1, tgt: TargetEnemy, rar: RarityUncommon}),
		entry(ShapeBuff, CategoryHat, r, 1, "plumed_panache", "Plumed Panache",
			"Gain Damage Up 1 and restore 1 morale.",
			p{copies: 2, cost: 1, v1: 1, v2: 1, dur: 2, status: StatusDamageUp, self: true, res: ResourceMorale, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryHat, r, 2, "duelists_grin", "Duelist's Grin",
			"An enemy within 2 tiles suffers Damage Down 1 for 2 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, rng: 2, status: StatusDamageDown, tgt: TargetEnemy}),
		entry(ShapeBuff, CategoryCoat, r, 1, "silk_shirt", "Silk Shirt",
			"Gain Protected 1 for 2 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 2, "showmans_cape", "Showman's Cape",
			"Gain a morale shield of 3 for 2 turns.",
			p{copies: 2, cost: 1, v1: 3, dur: 2, status: StatusMoraleShield, self: true, tgt: TargetSelf}),
		passive(CategoryTrinket, r, 1, "dread_locket", "Dread Locket",
			"Once per turn, strike back for 2 when attacked up close.", HookRetaliate, 2, 0, RarityUncommon),
		passive(CategoryTrinket, r, 2, "signet_of_the_duel", "Signet of the Duel",
			"Outgoing damage increased by 10%.", HookDamageBonus, 10, 0, RarityUncommon),
		entry(ShapeSummon, CategoryTotem, r, 1, "training_dummy", "Training Dummy",
			"Set a training dummy with 5 HP.",
			p{copies: 1, cost: 2, v1: 5, dur: 4, rng: 2, sum: SummonDummy, tgt: TargetCell}),
		entry(ShapeSummon, CategoryTotem, r, 2, "dueling_circle", "Dueling Circle",
			"Chalk a dueling circle totem with 3 HP for 3 turns.",
			p{copies: 1, cost: 2, v1: 3, v2: 1, dur: 3, rng: 1, sum: SummonTotem, tgt: TargetCell}),
		entry(ShapeAttack, CategoryUltimate, r, 1, "thousand_cut_flurry", "Thousand-Cut Flurry",
			"Weapon attack with +5 damage; the target bleeds 2 for 2 turns.",
			p{copies: 1, cost: 4, v1: 5, v2: 2, dur: 2, rng: 1, status: StatusBleeding, rar: RarityLegendary, tgt: TargetEnemy}),
		entry(ShapeMovement, CategoryUltimate, r, 2, "blade_dance", "Blade Dance",
			"Move up to 5 tiles and gain Damage Up 2 for 2 turns.",
			p{copies: 1, cost: 3, rng: 5, v1: 2, dur: 2, status: StatusDamageUp, self: true, rar: RarityLegendary, tgt: TargetCell}),
		passive(CategoryPassiveUnique, r, 1, "flair_for_drama", "Flair for Drama",
			"Restore 2 morale whenever an enemy surrenders.", HookMoraleOnEnemySurrender, 2, 0, RarityRare),
		passive(CategoryPassiveUnique, r, 2, "perfect_parry", "Perfect Parry",
			"Incoming damage reduced by 15%.", HookDamageResist, 15, 0, RarityRare),
	}
}

func powderMonkeyDefs() []RelicEffectDefinition {
	r := RolePowderMonkey
	return []RelicEffectDefinition{
		entry(ShapeMovement, CategoryBoots, r, 1, "scamper", "Scamper",
			"Move up to 3 tiles.",
			p{copies: 3, cost: 1, rng: 3, tgt: TargetCell}),
		entry(ShapeMovement, CategoryBoots, r, 2, "fuse_and_run", "Fuse and Run",
			"Move up to 2 tiles and gain 1 energy.",
			p{copies: 2, cost: 1, rng: 2, v1: 1, res: ResourceEnergy, tgt: TargetCell}),
		entry(ShapeAttack, CategoryGloves, r, 1, "satchel_toss", "Satchel Toss",
			"Weapon attack with +3 damage at range 2.",
			p{copies: 2, cost: 2, v1: 3, rng: 2, tgt: TargetEnemy}),
		entry(ShapeAttack, CategoryGloves, r, 2, "flashbang_powder", "Flashbang Powder",
			"Weapon attack at range 2; stun the target for 1 turn.",
			p{copies: 1, cost: 3, v2: 1, dur: 1, rng: 2, status: StatusStunned, tgt: TargetEnemy, rar: RarityRare}),
		entry(ShapeBuff, CategoryHat, r, 1, "sooty_bandana", "Sooty Bandana",
			"Gain Damage Up 1 for 2 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, status: StatusDamageUp, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryHat, r, 2, "match_between_teeth", "Match Between Teeth",
			"An enemy's cards cost 1 more for 1 turn.",
			p{copies: 2, cost: 1, v1: 1, dur: 1, rng: 3, status: StatusCostUp, tgt: TargetEnemy}),
		entry(ShapeBuff, CategoryCoat, r, 1, "singed_waistcoat", "Singed Waistcoat",
			"Gain Protected 1 for 2 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 2, "blast_resistant_wrap", "Blast-Resistant Wrap",
			"Gain Protected 2 for 1 turn.",
			p{copies: 2, cost: 1, v1: 2, dur: 1, status: StatusProtected, self: true, tgt: TargetSelf}),
		passive(CategoryTrinket, r, 1, "spark_charm", "Spark Charm",
			"Gain 1 energy at the start of your turn.", HookTurnStartEnergy, 1, 0, RarityUncommon),
		passive(CategoryTrinket, r, 2, "cracked_powder_horn", "Cracked Powder Horn",
			"Outgoing damage increased by 10%.", HookDamageBonus, 10, 0, RarityUncommon),
		entry(ShapeSummon, CategoryTotem, r, 1, "keg_stack", "Keg Stack",
			"Stack kegs into a hazard dealing 3 to anything entering it.",
			p{copies: 1, cost: 2, v1: 3, v2: 1, dur: 3, rng: 2, sum: SummonHazard, tgt: TargetCell}),
		entry(ShapeSummon, CategoryTotem, r, 2, "smoke_pot", "Smoke Pot",
			"Set a smoke pot totem with 2 HP for 2 turns.",
			p{copies: 1, cost: 1, v1: 2, v2: 2, dur: 2, rng: 2, sum: SummonTotem, tgt: TargetCell}),
		entry(ShapeAttack, CategoryUltimate, r, 1, "magazine_detonation", "Magazine Detonation",
			"Weapon attack with +7 damage at range 2.",
			p{copies: 1, cost: 4, v1: 7, rng: 2, rar: RarityLegendary, tgt: TargetEnemy}),
		entry(ShapeSummon, CategoryUltimate, r, 2, "minefield", "Minefield",
			"Lay a wide hazard dealing 3 to anything entering it, for 4 turns.",
			p{copies: 1, cost: 4, v1: 3, v2: 2, dur: 4, rng: 3, sum: SummonHazard, rar: RarityLegendary, tgt: TargetCell}),
		passive(CategoryPassiveUnique, r, 1, "fuse_sense", "Fuse Sense",
			"Gain 1 energy whenever you fell an enemy.", HookEnergyOnKill, 1, 0, RarityRare),
		passive(CategoryPassiveUnique, r, 2, "too_small_to_hit", "Too Small to Hit",
			"Incoming damage reduced by 15%.", HookDamageResist, 15, 0, RarityRare),
	}
}

func shipwrightDefs() []RelicEffectDefinition {
	r := RoleShipwright
	return []RelicEffectDefinition{
		entry(ShapeMovement, CategoryBoots, r, 1, "planksmans_pace", "Planksman's Pace",
			"Move up to 2 tiles, then restore 1 grit.",
			p{copies: 2, cost: 1, rng: 2, v1: 1, res: ResourceGrit, tgt: TargetCell}),
		entry(ShapeMovement, CategoryBoots, r, 2, "scaffold_hop", "Scaffold Hop",
			"Move up to 3 tiles.",
			p{copies: 2, cost: 1, rng: 3, tgt: TargetCell}),
		entry(ShapeAttack, CategoryGloves, r, 1, "mallet_blow", "Mallet Blow",
			"Weapon attack with +3 damage.",
			p{copies: 2, cost: 2, v1: 3, rng: 1, tgt: TargetEnemy}),
		entry(ShapeAttack, CategoryGloves, r, 2, "nail_spray", "Nail Spray",
			"Weapon attack at range 2; the target bleeds 1 for 2 turns.",
			p{copies: 2, cost: 2, v2: 1, dur: 2, rng: 2, status: StatusBleeding, tgt: TargetEnemy, rar: RarityUncommon}),
		entry(ShapeBuff, CategoryHat, r, 1, "carpenters_cap", "Carpenter's Cap",
			"Gain Protected 2 for 2 turns.",
			p{copies: 2, cost: 2, v1: 2, dur: 2, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryHat, r, 2, "surveyors_squint", "Surveyor's Squint",
			"Gain Damage Up 1 for 2 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, status: StatusDamageUp, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 1, "oak_ribbed_vest", "Oak-Ribbed Vest",
			"Gain Protected 2 for 2 turns.",
			p{copies: 2, cost: 1, v1: 2, dur: 2, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 2, "pitch_sealed_jerkin", "Pitch-Sealed Jerkin",
			"An ally within 2 tiles gains Protected 2 for 1 turn.",
			p{copies: 2, cost: 1, v1: 2, dur: 1, rng: 2, status: StatusProtected, tgt: TargetAlly}),
		passive(CategoryTrinket, r, 1, "brass_plumb_bob", "Brass Plumb Bob",
			"Heal 1 at the start of your turn.", HookTurnStartHeal, 1, 0, RarityCommon),
		passive(CategoryTrinket, r, 2, "shavings_pouch", "Shavings Pouch",
			"Restore 1 grit whenever you take damage.", HookGritOnDamaged, 1, 0, RarityUncommon),
		entry(ShapeSummon, CategoryTotem, r, 1, "bulwark_frame", "Bulwark Frame",
			"Raise an obstacle with 8 HP.",
			p{copies: 1, cost: 2, v1: 8, dur: 5, rng: 1, sum: SummonObstacle, tgt: TargetCell}),
		entry(ShapeSummon, CategoryTotem, r, 2, "repair_scaffold", "Repair Scaffold",
			"Build a repair scaffold totem with 4 HP for 3 turns.",
			p{copies: 1, cost: 2, v1: 4, v2: 2, dur: 3, rng: 1, sum: SummonTotem, tgt: TargetCell}),
		entry(ShapeSummon, CategoryUltimate, r, 1, "instant_rampart", "Instant Rampart",
			"Throw up a rampart obstacle with 12 HP.",
			p{copies: 1, cost: 4, v1: 12, dur: 6, rng: 2, sum: SummonObstacle, rar: RarityLegendary, tgt: TargetCell}),
		entry(ShapeResource, CategoryUltimate, r, 2, "master_refit", "Master Refit",
			"Restore 5 grit to yourself.",
			p{copies: 1, cost: 3, v1: 5, res: ResourceGrit, rar: RarityLegendary, tgt: TargetSelf}),
		passive(CategoryPassiveUnique, r, 1, "living_timber", "Living Timber",
			"Heal 2 at the start of your turn.", HookTurnStartHeal, 2, 0, RarityRare),
		passive(CategoryPassiveUnique, r, 2, "measured_twice", "Measured Twice",
			"Incoming damage reduced by 20%.", HookDamageResist, 20, 0, RarityRare),
	}
}

func castawayDefs() []RelicEffectDefinition {
	r := RoleCastaway
	return []RelicEffectDefinition{
		entry(ShapeMovement, CategoryBoots, r, 1, "driftwood_scramble", "Driftwood Scramble",
			"Move up to 3 tiles, then restore 1 morale.",
			p{copies: 2, cost: 1, rng: 3, v1: 1, res: ResourceMorale, tgt: TargetCell}),
		entry(ShapeMovement, CategoryBoots, r, 2, "tide_slip", "Tide Slip",
			"Move up to 2 tiles and draw a card.",
			p{copies: 2, cost: 1, rng: 2, v1: 1, res: ResourceDraw, tgt: TargetCell}),
		entry(ShapeAttack, CategoryGloves, r, 1, "jagged_shell_cut", "Jagged Shell Cut",
			"Weapon attack; the target bleeds 1 for 2 turns.",
			p{copies: 2, cost: 2, v2: 1, dur: 2, rng: 1, status: StatusBleeding, tgt: TargetEnemy}),
		entry(ShapeAttack, CategoryGloves, r, 2, "desperate_clawing", "Desperate Clawing",
			"Weapon attack with +2 damage.",
			p{copies: 2, cost: 2, v1: 2, rng: 1, tgt: TargetEnemy}),
		entry(ShapeBuff, CategoryHat, r, 1, "woven_palm_hat", "Woven Palm Hat",
			"Gain Protected 1 for 2 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 2, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryHat, r, 2, "message_in_a_bottle", "Message in a Bottle",
			"Draw 1 extra card at turn start for 2 turns.",
			p{copies: 2, cost: 2, v1: 1, dur: 2, status: StatusDrawUp, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 1, "salt_crusted_rags", "Salt-Crusted Rags",
			"Gain Protected 1 for 3 turns.",
			p{copies: 2, cost: 1, v1: 1, dur: 3, status: StatusProtected, self: true, tgt: TargetSelf}),
		entry(ShapeBuff, CategoryCoat, r, 2, "shipwreck_memento", "Shipwreck Memento",
			"Gain a morale shield of 2 for 3 turns.",
			p{copies: 2, cost: 1, v1: 2, dur: 3, status: StatusMoraleShield, self: true, tgt: TargetSelf}),
		passive(CategoryTrinket, r, 1, "barnacled_coin", "Barnacled Coin",
			"Gain 1 energy whenever you take damage.", HookEnergyOnDamaged, 1, 0, RarityUncommon),
		passive(CategoryTrinket, r, 2, "survivors_grit", "Survivor's Grit",
			"Restore 1 grit whenever you take damage.", HookGritOnDamaged, 1, 0, RarityUncommon),
		entry(ShapeSummon, CategoryTotem, r, 1, "driftwood_idol", "Driftwood Idol",
			"Lash together an idol totem with 3 HP for 3 turns.",
			p{copies: 1, cost: 2, v1: 3, v2: 2, dur: 3, rng: 2, sum: SummonTotem, tgt: TargetCell}),
		entry(ShapeSummon, CategoryTotem, r, 2, "wreckage_pile", "Wreckage Pile",
			"Heap wreckage into an obstacle with 5 HP.",
			p{copies: 1, cost: 2, v1: 5, dur: 4, rng: 2, sum: SummonObstacle, tgt: TargetCell}),
		entry(ShapeResource, CategoryUltimate, r, 1, "one_last_breath", "One Last Breath",
			"Restore 4 grit and 2 morale to yourself.",
			p{copies: 1, cost: 2, v1: 4, v2: 2, res: ResourceGrit, rar: RarityLegendary, tgt: TargetSelf}),
		entry(ShapeAttack, CategoryUltimate, r, 2, "nothing_left_to_lose", "Nothing Left to Lose",
			"Weapon attack with +6 damage.",
			p{copies: 1, cost: 4, v1: 6, rng: 1, rar: RarityLegendary, tgt: TargetEnemy}),
		passive(CategoryPassiveUnique, r, 1, "unsinkable", "Unsinkable",
			"Allies hold fast: their surrender threshold is 5% lower.", HookAllyHoldFast, 5, 0, RarityRare),
		passive(CategoryPassiveUnique, r, 2, "nine_lives_lost", "Nine Lives Lost",
			"Heal 1 and once per turn draw a card when damaged.", HookDrawOnDamaged, 1, 1, RarityRare),
	}
}

// allWeaponDefinitions is the weapon relic table: two weapons per family so
// most roles have an in-role option.
func allWeaponDefinitions() []RelicEffectDefinition {
	w := func(tag, name, desc string, fam WeaponFamily, role Role, copies, cost, dmg, rng int, melee bool) RelicEffectDefinition {
		return RelicEffectDefinition{
			Tag:       EffectType(tag),
			Name:      name,
			Desc:      desc,
			Weapon:    true,
			Family:    fam,
			Role:      role,
			Copies:    copies,
			Cost:      cost,
			Value1:    dmg,
			TileRange: rng,
			Melee:     melee,
			Shape:     ShapeAttack,
			Target:    TargetEnemy,
		}
	}
	return []RelicEffectDefinition{
		w("captains_sabre", "Captain's Sabre", "A weighty cutlass strike for 3.", WeaponCutlass, RoleCaptain, 2, 1, 3, 1, true),
		w("boarding_cutlass", "Boarding Cutlass", "A quick cutlass strike for 2.", WeaponCutlass, RoleSwashbuckler, 3, 1, 2, 1, true),
		w("duelling_pistol", "Duelling Pistol", "A pistol shot for 3 at range 3.", WeaponPistol, RoleQuartermaster, 2, 1, 3, 3, false),
		w("pocket_flintlock", "Pocket Flintlock", "A pistol shot for 2 at range 2.", WeaponPistol, RoleCook, 3, 1, 2, 2, false),
		w("long_musket", "Long Musket", "A musket shot for 4 at range 4.", WeaponMusket, RoleLookout, 2, 2, 4, 4, false),
		w("gunners_carbine", "Gunner's Carbine", "A carbine shot for 3 at range 3.", WeaponMusket, RoleGunner, 2, 1, 3, 3, false),
		w("whalers_harpoon", "Whaler's Harpoon", "A harpoon thrust for 4 at range 2.", WeaponHarpoon, RoleBosun, 2, 2, 4, 2, true),
		w("fishing_spear", "Fishing Spear", "A spear thrust for 2 at range 2.", WeaponHarpoon, RoleCastaway, 3, 1, 2, 2, true),
		w("rigging_hook", "Rigging Hook", "A hook slash for 2.", WeaponHook, RoleNavigator, 3, 1, 2, 1, true),
		w("surgeons_hook", "Surgeon's Hook", "A precise hook slash for 3.", WeaponHook, RoleSurgeon, 2, 1, 3, 1, true),
		w("deck_sweeper", "Deck Sweeper", "A blunderbuss blast for 4 at range 2.", WeaponBlunderbuss, RolePowderMonkey, 2, 2, 4, 2, false),
		w("wrights_thunderpipe", "Wright's Thunderpipe", "A blunderbuss blast for 3 at range 2.", WeaponBlunderbuss, RoleShipwright, 2, 1, 3, 2, false),
	}
}
