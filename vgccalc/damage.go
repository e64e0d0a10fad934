package vgccalc

import (
	"fmt"

	"github.com/go-logr/logr"
)

var damageLogger = func() logr.Logger {
	return internalLogger.WithName("damage")
}

// pokeRound rounds half DOWN: only a fractional part strictly above 0.5
// rounds up. The games use this instead of normal rounding everywhere a
// 4096 modifier lands.
func pokeRound(num float64) float64 {
	intPart := float64(int64(num))
	distance := num - intPart

	if distance > 0.5 {
		return intPart + 1
	}

	return intPart
}

// applyMod multiplies by a 4096-based modifier with pokeRound, done in
// integer math so the half-down cut is exact.
func applyMod(value, mod int) int {
	if mod == MOD_NEUTRAL {
		return value
	}

	product := value * mod
	result := product >> 12
	if product&4095 > 2048 {
		result++
	}

	return result
}

// chainMods folds several 4096 modifiers into one. Order matters: each
// step rounds to the nearest 4096th before the next multiplies in.
func chainMods(mods ...int) int {
	result := MOD_NEUTRAL
	for _, mod := range mods {
		if mod != MOD_NEUTRAL {
			result = (result*mod + 2048) >> 12
		}
	}

	return result
}

// Type boosting items and the plates, both ~1.2x to matching moves.
var typeBoostItems = map[string]string{
	"charcoal":       TYPENAME_FIRE,
	"mystic-water":   TYPENAME_WATER,
	"magnet":         TYPENAME_ELECTRIC,
	"miracle-seed":   TYPENAME_GRASS,
	"never-melt-ice": TYPENAME_ICE,
	"black-belt":     TYPENAME_FIGHTING,
	"poison-barb":    TYPENAME_POISON,
	"soft-sand":      TYPENAME_GROUND,
	"sharp-beak":     TYPENAME_FLYING,
	"twisted-spoon":  TYPENAME_PSYCHIC,
	"silver-powder":  TYPENAME_BUG,
	"hard-stone":     TYPENAME_ROCK,
	"spell-tag":      TYPENAME_GHOST,
	"dragon-fang":    TYPENAME_DRAGON,
	"black-glasses":  TYPENAME_DARK,
	"metal-coat":     TYPENAME_STEEL,
	"silk-scarf":     TYPENAME_NORMAL,
	"fairy-feather":  TYPENAME_FAIRY,

	"flame-plate":  TYPENAME_FIRE,
	"splash-plate": TYPENAME_WATER,
	"zap-plate":    TYPENAME_ELECTRIC,
	"meadow-plate": TYPENAME_GRASS,
	"icicle-plate": TYPENAME_ICE,
	"fist-plate":   TYPENAME_FIGHTING,
	"toxic-plate":  TYPENAME_POISON,
	"earth-plate":  TYPENAME_GROUND,
	"sky-plate":    TYPENAME_FLYING,
	"mind-plate":   TYPENAME_PSYCHIC,
	"insect-plate": TYPENAME_BUG,
	"stone-plate":  TYPENAME_ROCK,
	"spooky-plate": TYPENAME_GHOST,
	"draco-plate":  TYPENAME_DRAGON,
	"dread-plate":  TYPENAME_DARK,
	"iron-plate":   TYPENAME_STEEL,
	"pixie-plate":  TYPENAME_FAIRY,
}

// DamageResult is the full outcome of one attack calculation: the 16
// equally likely rolls in non-decreasing order plus everything needed to
// describe them.
type DamageResult struct {
	Rolls [DAMAGE_ROLL_COUNT]int

	MinDamage  int
	MaxDamage  int
	MinPercent float64
	MaxPercent float64

	DefenderHp        int
	TypeEffectiveness float64
	Crit              bool
	HitCount          int
	Immune            bool

	AppliedMods []string
	KoChance    string

	// KoProbability is nil when the defender is immune.
	KoProbability *KOProbability
}

// DamageRange formats the roll span the way calc sheets write it.
func (r DamageResult) DamageRange() string {
	return fmt.Sprintf("%d-%d (%.1f%%-%.1f%%)", r.MinDamage, r.MaxDamage, r.MinPercent, r.MaxPercent)
}

// rollOutcome is the raw pipeline output. The search engines evaluate
// hundreds of these per query, so verdict counting and formatting stay
// out of it.
type rollOutcome struct {
	rolls       [DAMAGE_ROLL_COUNT]int
	power       int
	attackStat  int
	defenseStat int
	baseDamage  int
	stab        int
	typeEff     float64
	finalMod    int
	hitCount    int
	crit        bool
	immune      bool
	immuneNote  string
	appliedMods []string
	defenderHp  int
}

// Damage runs the full modifier pipeline for one attack and returns the
// 16-roll distribution with its KO verdict. Both battlers must have been
// through ReCalcStats. A status move returns ErrNotApplicable; a type
// immunity returns the all-zero distribution with no error.
func Damage(attacker Battler, defender Battler, move Move, field Field) (DamageResult, error) {
	out, err := computeRolls(attacker, defender, move, field)
	if err != nil {
		return DamageResult{}, err
	}

	if out.immune {
		return DamageResult{
			DefenderHp:  out.defenderHp,
			Immune:      true,
			HitCount:    1,
			KoChance:    out.immuneNote,
			AppliedMods: []string{out.immuneNote},
		}, nil
	}

	minDamage := out.rolls[0]
	maxDamage := out.rolls[DAMAGE_ROLL_COUNT-1]

	// Percentages truncate at one decimal, they do not round.
	minPercent := float64(int(float64(minDamage)/float64(out.defenderHp)*1000)) / 10
	maxPercent := float64(int(float64(maxDamage)/float64(out.defenderHp)*1000)) / 10

	// Rolls show max hits for a variable multi-hit move, but the verdict
	// assumes the expected hit count unless the caller pinned one.
	verdictRolls := out.rolls
	if out.hitCount > 1 && field.MoveHits <= 0 && move.MinHits != move.MaxHits {
		expected := move.ExpectedHits()
		for i, roll := range out.rolls {
			perHit := roll / out.hitCount
			verdictRolls[i] = int(float64(perHit) * expected)
		}
	}

	koProbs := CalcKOProbability(verdictRolls[:], out.defenderHp)

	damageLogger().V(1).Info("damage computed",
		"attacker", attacker.Base.Name,
		"defender", defender.Base.Name,
		"move", move.Name,
		"power", out.power,
		"attackStat", out.attackStat,
		"defenseStat", out.defenseStat,
		"baseDamage", out.baseDamage,
		"stab", out.stab,
		"typeEffectiveness", out.typeEff,
		"finalMod", out.finalMod,
		"hitCount", out.hitCount,
		"minDamage", minDamage,
		"maxDamage", maxDamage,
		"verdict", koProbs.Verdict,
	)

	return DamageResult{
		Rolls:             out.rolls,
		MinDamage:         minDamage,
		MaxDamage:         maxDamage,
		MinPercent:        minPercent,
		MaxPercent:        maxPercent,
		DefenderHp:        out.defenderHp,
		TypeEffectiveness: out.typeEff,
		Crit:              out.crit,
		HitCount:          out.hitCount,
		AppliedMods:       out.appliedMods,
		KoChance:          koProbs.Verdict,
		KoProbability:     &koProbs,
	}, nil
}

func computeRolls(attacker Battler, defender Battler, move Move, field Field) (rollOutcome, error) {
	if !move.IsDamaging() {
		return rollOutcome{}, fmt.Errorf("move %q does no damage: %w", move.Name, ErrNotApplicable)
	}
	if move.Category != DAMAGETYPE_PHYSICAL && move.Category != DAMAGETYPE_SPECIAL {
		return rollOutcome{}, fmt.Errorf("unknown damage category %q: %w", move.Category, ErrInvalidInput)
	}
	if move.Type == nil {
		return rollOutcome{}, fmt.Errorf("move %q has no type: %w", move.Name, ErrInvalidInput)
	}
	if attacker.Level <= 0 || defender.MaxHp <= 0 {
		return rollOutcome{}, fmt.Errorf("battler stats have not been computed: %w", ErrInvalidInput)
	}

	isPhysical := move.Category == DAMAGETYPE_PHYSICAL
	crit := field.Crit || move.AlwaysCrit
	defenderHp := defender.MaxHp

	attackerAbility := NormalizeAbility(attacker.Ability)
	defenderAbility := NormalizeAbility(defender.Ability)
	attackerItem := NormalizeItem(attacker.Item)
	defenderItem := NormalizeItem(defender.Item)

	var attackStat, defenseStat int
	var attackStage, defenseStage int
	if isPhysical {
		attackStat = attacker.Attack.RawValue
		defenseStat = defender.Def.RawValue
		attackStage = field.AttackStage
		defenseStage = field.DefenseStage
	} else {
		attackStat = attacker.SpAttack.RawValue
		defenseStat = defender.SpDef.RawValue
		attackStage = field.SpAttackStage
		defenseStage = field.SpDefStage
	}

	if attackStat <= 0 || defenseStat <= 0 {
		return rollOutcome{}, fmt.Errorf("battler stats have not been computed: %w", ErrInvalidInput)
	}

	// Crits skip the attacker's drops and the defender's boosts.
	if !crit || attackStage >= 0 {
		attackStat = int(float64(attackStat) * StageMultipliers[attackStage])
	}
	if !crit || defenseStage < 0 {
		defenseStat = int(float64(defenseStat) * StageMultipliers[defenseStage])
	}

	// Choice items raise the stat itself, not the damage.
	if attackerItem == "choice-band" && isPhysical {
		attackStat = attackStat * 3 / 2
	} else if attackerItem == "choice-specs" && !isPhysical {
		attackStat = attackStat * 3 / 2
	}

	switch attackerAbility {
	case "huge-power", "pure-power":
		if isPhysical {
			attackStat *= 2
		}
	case "hustle":
		if isPhysical {
			attackStat = attackStat * 3 / 2
		}
	case "guts":
		if isPhysical && attacker.Status != STATUS_NONE {
			attackStat = attackStat * 3 / 2
		}
	}

	if defenderAbility == "marvel-scale" && isPhysical && defender.Status != STATUS_NONE {
		defenseStat = defenseStat * 3 / 2
	}
	if defenderItem == "assault-vest" && !isPhysical {
		defenseStat = defenseStat * 3 / 2
	}

	// Ruin auras shave a quarter off the opposing stat.
	if field.SwordOfRuin && isPhysical {
		defenseStat = defenseStat * 3 / 4
	}
	if field.BeadsOfRuin && !isPhysical {
		defenseStat = defenseStat * 3 / 4
	}
	if field.TabletsOfRuin && isPhysical {
		attackStat = attackStat * 3 / 4
	}
	if field.VesselOfRuin && !isPhysical {
		attackStat = attackStat * 3 / 4
	}

	power := move.Power

	// Tera raises weak same-type moves to 60 power, but never multi-hit
	// or priority moves.
	if attacker.TeraType != nil && move.Type.Name == attacker.TeraType.Name &&
		power < 60 && !move.IsMultiHit() && move.Priority <= 0 {
		power = 60
	}

	if boosted, ok := typeBoostItems[attackerItem]; ok && boosted == move.Type.Name {
		power = applyMod(power, MOD_TYPE_ITEM)
	}

	levelFactor := 2*attacker.Level/5 + 2
	baseDamage := levelFactor*power*attackStat/defenseStat/50 + 2

	appliedMods := make([]string, 0, 8)

	if move.Spread && field.Doubles && field.MultipleTargets {
		baseDamage = applyMod(baseDamage, MOD_SPREAD)
		appliedMods = append(appliedMods, "Spread (0.75x)")
	}

	weatherBonus, weatherFails := weatherMod(field.Weather, move.Type.Name)
	if weatherFails {
		return rollOutcome{defenderHp: defenderHp, immune: true, immuneNote: "Fails (weather)"}, nil
	}
	if weatherBonus != MOD_NEUTRAL {
		baseDamage = applyMod(baseDamage, weatherBonus)
		appliedMods = append(appliedMods, fmt.Sprintf("Weather (%.1fx)", float64(weatherBonus)/4096))
	}

	terrainBonus := terrainMod(field, move.Type.Name)
	if terrainBonus != MOD_NEUTRAL {
		baseDamage = applyMod(baseDamage, terrainBonus)
		appliedMods = append(appliedMods, fmt.Sprintf("Terrain (%.2fx)", float64(terrainBonus)/4096))
	}

	if crit {
		baseDamage = applyMod(baseDamage, MOD_CRIT)
		appliedMods = append(appliedMods, "Critical (1.5x)")
	}

	stab := stabMod(attacker, move.Type)
	typeEff := defender.DefenseEffectiveness(move.Type)

	if typeEff == 0 {
		return rollOutcome{defenderHp: defenderHp, immune: true, immuneNote: "Immune (0x)"}, nil
	}

	finalMods := make([]int, 0, 6)

	if attacker.Status == STATUS_BURN && isPhysical &&
		attackerAbility != "guts" && NormalizeName(move.Name) != "facade" {
		finalMods = append(finalMods, MOD_BURN)
		appliedMods = append(appliedMods, "Burn (0.5x)")
	}

	if screen := screenMod(field, isPhysical, crit); screen != MOD_NEUTRAL {
		finalMods = append(finalMods, screen)
		appliedMods = append(appliedMods, fmt.Sprintf("Screen (%.2fx)", float64(screen)/4096))
	}

	if attackerItem == "life-orb" {
		finalMods = append(finalMods, MOD_LIFE_ORB)
		appliedMods = append(appliedMods, "Life Orb (1.3x)")
	}
	if attackerItem == "expert-belt" && typeEff >= 2 {
		finalMods = append(finalMods, MOD_EXPERT_BELT)
		appliedMods = append(appliedMods, "Expert Belt (1.2x)")
	}

	if field.HelpingHand {
		finalMods = append(finalMods, MOD_HELPING_HAND)
		appliedMods = append(appliedMods, "Helping Hand (1.5x)")
	}
	if field.FriendGuard {
		finalMods = append(finalMods, MOD_FRIEND_GUARD)
		appliedMods = append(appliedMods, "Friend Guard (0.75x)")
	}

	switch defenderAbility {
	case "multiscale", "shadow-shield":
		if defender.IsFullHp() {
			finalMods = append(finalMods, MOD_MULTISCALE)
			appliedMods = append(appliedMods, "Multiscale (0.5x)")
		}
	case "solid-rock", "filter", "prism-armor":
		if typeEff >= 2 {
			finalMods = append(finalMods, MOD_SOLID_ROCK)
			appliedMods = append(appliedMods, "Solid Rock (0.75x)")
		}
	}

	finalMod := chainMods(finalMods...)
	hitCount := move.HitCount(field.MoveHits)

	var rolls [DAMAGE_ROLL_COUNT]int
	for i := 0; i < DAMAGE_ROLL_COUNT; i++ {
		// The random factor floors, it does not pokeRound.
		damage := baseDamage * (MIN_ROLL_FACTOR + i) / 100

		damage = applyMod(damage, stab)

		if typeEff != 1 {
			damage = int(float64(damage) * typeEff)
		}

		damage = applyMod(damage, finalMod)

		if damage < 1 {
			damage = 1
		}

		rolls[i] = damage * hitCount
	}

	switch stab {
	case MOD_STAB:
		appliedMods = append(appliedMods, "STAB (1.5x)")
	case MOD_STAB_TERA:
		appliedMods = append(appliedMods, "STAB (2.0x)")
	case MOD_STAB_TERA_ADAPT:
		appliedMods = append(appliedMods, "STAB (2.25x)")
	}

	switch typeEff {
	case 0.25:
		appliedMods = append(appliedMods, "4x Resist (0.25x)")
	case 0.5:
		appliedMods = append(appliedMods, "Resist (0.5x)")
	case 2:
		appliedMods = append(appliedMods, "Super Effective (2x)")
	case 4:
		appliedMods = append(appliedMods, "4x Super Effective (4x)")
	}

	if hitCount > 1 {
		appliedMods = append(appliedMods, fmt.Sprintf("Multi-hit (%d hits)", hitCount))
	}

	return rollOutcome{
		rolls:       rolls,
		power:       power,
		attackStat:  attackStat,
		defenseStat: defenseStat,
		baseDamage:  baseDamage,
		stab:        stab,
		typeEff:     typeEff,
		finalMod:    finalMod,
		hitCount:    hitCount,
		crit:        crit,
		appliedMods: appliedMods,
		defenderHp:  defenderHp,
	}, nil
}

func weatherMod(weather int, moveTypeName string) (int, bool) {
	switch weather {
	case WEATHER_SUN:
		if moveTypeName == TYPENAME_FIRE {
			return MOD_WEATHER_BOOST, false
		}
		if moveTypeName == TYPENAME_WATER {
			return MOD_WEATHER_NERF, false
		}
	case WEATHER_RAIN:
		if moveTypeName == TYPENAME_WATER {
			return MOD_WEATHER_BOOST, false
		}
		if moveTypeName == TYPENAME_FIRE {
			return MOD_WEATHER_NERF, false
		}
	case WEATHER_HARSH_SUN:
		if moveTypeName == TYPENAME_FIRE {
			return MOD_WEATHER_BOOST, false
		}
		if moveTypeName == TYPENAME_WATER {
			return MOD_NEUTRAL, true
		}
	case WEATHER_HEAVY_RAIN:
		if moveTypeName == TYPENAME_WATER {
			return MOD_WEATHER_BOOST, false
		}
		if moveTypeName == TYPENAME_FIRE {
			return MOD_NEUTRAL, true
		}
	}

	return MOD_NEUTRAL, false
}

func terrainMod(field Field, moveTypeName string) int {
	if !field.AttackerAirborne {
		switch {
		case field.Terrain == TERRAIN_ELECTRIC && moveTypeName == TYPENAME_ELECTRIC:
			return MOD_TERRAIN_BOOST
		case field.Terrain == TERRAIN_GRASSY && moveTypeName == TYPENAME_GRASS:
			return MOD_TERRAIN_BOOST
		case field.Terrain == TERRAIN_PSYCHIC && moveTypeName == TYPENAME_PSYCHIC:
			return MOD_TERRAIN_BOOST
		}
	}

	if field.Terrain == TERRAIN_MISTY && moveTypeName == TYPENAME_DRAGON && !field.DefenderAirborne {
		return MOD_TERRAIN_NERF
	}

	return MOD_NEUTRAL
}

func screenMod(field Field, isPhysical bool, crit bool) int {
	// Crits go through screens.
	if crit {
		return MOD_NEUTRAL
	}

	screened := field.AuroraVeil || (isPhysical && field.Reflect) || (!isPhysical && field.LightScreen)
	if !screened {
		return MOD_NEUTRAL
	}

	if field.Doubles {
		return MOD_SCREEN_DOUBLES
	}

	return MOD_SCREEN_SINGLES
}

// stabMod picks the same-type bonus, including the tera stacking rules:
// tera into an original type doubles STAB, tera into a new type keeps
// 1.5x for it while original types also keep their 1.5x, adaptability
// raises whichever tier applies.
func stabMod(attacker Battler, moveType *PokemonType) int {
	adaptability := NormalizeAbility(attacker.Ability) == "adaptability"

	if attacker.TeraType != nil {
		if moveType.Name == attacker.TeraType.Name {
			if attacker.HasOriginalType(moveType.Name) {
				if adaptability {
					return MOD_STAB_TERA_ADAPT
				}
				return MOD_STAB_TERA
			}
			if adaptability {
				return MOD_STAB_TERA
			}
			return MOD_STAB
		}
		if attacker.HasOriginalType(moveType.Name) {
			return MOD_STAB
		}

		return MOD_NEUTRAL
	}

	if attacker.HasOriginalType(moveType.Name) {
		if adaptability {
			return MOD_STAB_TERA
		}
		return MOD_STAB
	}

	return MOD_NEUTRAL
}
