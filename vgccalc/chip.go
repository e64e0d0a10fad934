package vgccalc

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

var chipLogger = func() logr.Logger {
	return internalLogger.WithName("chip")
}

// ChipResult is one turn of a single residual effect. Damage is signed,
// healing comes back negative.
type ChipResult struct {
	Source         string
	Damage         int
	DamagePercent  float64
	IsHealing      bool
	Immune         bool
	ImmunityReason string
	HpAfter        int
	Notes          []string
}

var sandstormImmuneTypes = []string{TYPENAME_ROCK, TYPENAME_GROUND, TYPENAME_STEEL}

// weatherImmuneAbilities lists which damaging weathers each ability
// blocks. Ice Body is deliberately absent for snow, it heals there
// instead of being merely immune.
var weatherImmuneAbilities = map[string][]int{
	"magic-guard": {WEATHER_SANDSTORM, WEATHER_SNOW},
	"overcoat":    {WEATHER_SANDSTORM, WEATHER_SNOW},
	"sand-veil":   {WEATHER_SANDSTORM},
	"sand-rush":   {WEATHER_SANDSTORM},
	"sand-force":  {WEATHER_SANDSTORM},
	"snow-cloak":  {WEATHER_SNOW},
}

func weatherName(weather int) string {
	switch weather {
	case WEATHER_SUN:
		return "Sun"
	case WEATHER_RAIN:
		return "Rain"
	case WEATHER_HARSH_SUN:
		return "Harsh Sun"
	case WEATHER_HEAVY_RAIN:
		return "Heavy Rain"
	case WEATHER_SANDSTORM:
		return "Sandstorm"
	case WEATHER_SNOW:
		return "Snow"
	}

	return "No Weather"
}

func terrainName(terrain int) string {
	switch terrain {
	case TERRAIN_ELECTRIC:
		return "Electric Terrain"
	case TERRAIN_GRASSY:
		return "Grassy Terrain"
	case TERRAIN_PSYCHIC:
		return "Psychic Terrain"
	case TERRAIN_MISTY:
		return "Misty Terrain"
	}

	return "No Terrain"
}

func statusName(status int) string {
	switch status {
	case STATUS_BURN:
		return "Burn"
	case STATUS_PARA:
		return "Paralysis"
	case STATUS_SLEEP:
		return "Sleep"
	case STATUS_FROZEN:
		return "Freeze"
	case STATUS_POISON:
		return "Poison"
	case STATUS_TOXIC:
		return "Toxic"
	}

	return "None"
}

// currentTypeNames is the target's defensive types right now, which is
// just the tera type once terastallized.
func currentTypeNames(b Battler) []string {
	if b.TeraType != nil {
		return []string{b.TeraType.Name}
	}

	names := make([]string, 0, 2)
	if b.Base != nil {
		if b.Base.Type1 != nil {
			names = append(names, b.Base.Type1.Name)
		}
		if b.Base.Type2 != nil {
			names = append(names, b.Base.Type2.Name)
		}
	}

	return names
}

// WeatherChip is the damage or healing one turn of weather deals to the
// target. Sun and rain variants never deal chip damage.
func WeatherChip(weather int, target Battler) ChipResult {
	source := weatherName(weather)
	currentHp := target.Hp.Value
	maxHp := target.MaxHp

	if weather != WEATHER_SANDSTORM && weather != WEATHER_SNOW {
		return ChipResult{
			Source:         source,
			Immune:         true,
			ImmunityReason: "This weather doesn't deal damage",
			HpAfter:        currentHp,
		}
	}

	ability := NormalizeAbility(target.Ability)
	typeNames := currentTypeNames(target)

	if weather == WEATHER_SANDSTORM {
		for _, typeName := range typeNames {
			if lo.Contains(sandstormImmuneTypes, typeName) {
				return ChipResult{
					Source:         source,
					Immune:         true,
					ImmunityReason: fmt.Sprintf("%s-type is immune to Sandstorm", typeName),
					HpAfter:        currentHp,
				}
			}
		}
	} else if lo.Contains(typeNames, TYPENAME_ICE) {
		return ChipResult{
			Source:         source,
			Immune:         true,
			ImmunityReason: "Ice-type is immune to Snow",
			HpAfter:        currentHp,
		}
	}

	if lo.Contains(weatherImmuneAbilities[ability], weather) {
		return ChipResult{
			Source:         source,
			Immune:         true,
			ImmunityReason: fmt.Sprintf("%s grants %s immunity", DisplayName(ability), source),
			HpAfter:        currentHp,
		}
	}

	if weather == WEATHER_SNOW && ability == "ice-body" {
		healing := maxHp / 16
		return ChipResult{
			Source:        source,
			Damage:        -healing,
			DamagePercent: -round2(float64(healing) / float64(maxHp) * 100),
			IsHealing:     true,
			HpAfter:       min(maxHp, currentHp+healing),
			Notes:         []string{"Ice Body heals 6.25% HP in Snow"},
		}
	}

	damage := maxHp / 16
	notes := []string{"6.25% damage per turn", "Rock/Ground/Steel types immune"}
	if weather == WEATHER_SNOW {
		notes = []string{"6.25% damage per turn", "Ice types immune"}
	}

	return ChipResult{
		Source:        source,
		Damage:        damage,
		DamagePercent: round2(float64(damage) / float64(maxHp) * 100),
		HpAfter:       max(0, currentHp-damage),
		Notes:         notes,
	}
}

// StatusChip is the damage one turn of the target's status condition
// deals. toxicCounter is which turn of bad poison this is, starting at
// 1 and capping at 15.
func StatusChip(target Battler, toxicCounter int) ChipResult {
	currentHp := target.Hp.Value
	maxHp := target.MaxHp
	ability := NormalizeAbility(target.Ability)

	if ability == "magic-guard" {
		return ChipResult{
			Source:         statusName(target.Status),
			Immune:         true,
			ImmunityReason: "Magic Guard blocks indirect damage",
			HpAfter:        currentHp,
		}
	}

	switch target.Status {
	case STATUS_BURN:
		damage := maxHp / 16
		notes := []string{"6.25% damage per turn", "Halves physical attack damage"}
		if ability == "guts" {
			notes = append(notes, "Guts: Attack is boosted by 50% instead of halved")
		}

		return ChipResult{
			Source:        "Burn",
			Damage:        damage,
			DamagePercent: round2(float64(damage) / float64(maxHp) * 100),
			HpAfter:       max(0, currentHp-damage),
			Notes:         notes,
		}

	case STATUS_POISON:
		if ability == "poison-heal" {
			healing := maxHp / 8
			return ChipResult{
				Source:        "Poison",
				Damage:        -healing,
				DamagePercent: -round2(float64(healing) / float64(maxHp) * 100),
				IsHealing:     true,
				HpAfter:       min(maxHp, currentHp+healing),
				Notes:         []string{"Poison Heal: Heals 12.5% HP instead of damage"},
			}
		}

		damage := maxHp / 8
		return ChipResult{
			Source:        "Poison",
			Damage:        damage,
			DamagePercent: round2(float64(damage) / float64(maxHp) * 100),
			HpAfter:       max(0, currentHp-damage),
			Notes:         []string{"12.5% damage per turn"},
		}

	case STATUS_TOXIC:
		if ability == "poison-heal" {
			healing := maxHp / 8
			return ChipResult{
				Source:        "Toxic",
				Damage:        -healing,
				DamagePercent: -round2(float64(healing) / float64(maxHp) * 100),
				IsHealing:     true,
				HpAfter:       min(maxHp, currentHp+healing),
				Notes:         []string{"Poison Heal: Heals 12.5% HP instead of Toxic damage"},
			}
		}

		counter := min(15, max(1, toxicCounter))
		damage := maxHp * counter / 16
		return ChipResult{
			Source:        fmt.Sprintf("Toxic (turn %d)", counter),
			Damage:        damage,
			DamagePercent: round2(float64(damage) / float64(maxHp) * 100),
			HpAfter:       max(0, currentHp-damage),
			Notes: []string{
				fmt.Sprintf("Turn %d: %d/16 = %.1f%% damage", counter, counter, float64(counter)/16*100),
				"Increases each turn, caps at 15/16 (93.75%)",
			},
		}
	}

	reason := "No damaging status"
	if target.Status < STATUS_NONE || target.Status > STATUS_TOXIC {
		reason = "Unknown status"
	}

	return ChipResult{
		Source:         statusName(target.Status),
		Immune:         true,
		ImmunityReason: reason,
		HpAfter:        currentHp,
	}
}

// TerrainHeal is the healing one turn of terrain grants the target.
// Only Grassy Terrain heals, and only grounded targets.
func TerrainHeal(terrain int, target Battler, grounded bool) ChipResult {
	currentHp := target.Hp.Value
	maxHp := target.MaxHp

	if terrain != TERRAIN_GRASSY {
		return ChipResult{
			Source:         terrainName(terrain),
			Immune:         true,
			ImmunityReason: "Only Grassy Terrain provides healing",
			HpAfter:        currentHp,
		}
	}

	if !grounded {
		return ChipResult{
			Source:         "Grassy Terrain",
			Immune:         true,
			ImmunityReason: "Not grounded (Flying-type or Levitate)",
			HpAfter:        currentHp,
			Notes:          []string{"Must be grounded to receive Grassy Terrain healing"},
		}
	}

	healing := maxHp / 16
	return ChipResult{
		Source:        "Grassy Terrain",
		Damage:        -healing,
		DamagePercent: -round2(float64(healing) / float64(maxHp) * 100),
		IsHealing:     true,
		HpAfter:       min(maxHp, currentHp+healing),
		Notes: []string{
			"Heals 6.25% HP per turn",
			"Also reduces Earthquake/Bulldoze damage by 50%",
		},
	}
}

// SaltCureChip is one turn of the Salt Cure condition, which doubles
// against Steel and Water types.
func SaltCureChip(target Battler) ChipResult {
	currentHp := target.Hp.Value
	maxHp := target.MaxHp

	if NormalizeAbility(target.Ability) == "magic-guard" {
		return ChipResult{
			Source:         "Salt Cure",
			Immune:         true,
			ImmunityReason: "Magic Guard blocks indirect damage",
			HpAfter:        currentHp,
		}
	}

	typeNames := currentTypeNames(target)
	if lo.Contains(typeNames, TYPENAME_STEEL) || lo.Contains(typeNames, TYPENAME_WATER) {
		vulnerableType := TYPENAME_WATER
		if lo.Contains(typeNames, TYPENAME_STEEL) {
			vulnerableType = TYPENAME_STEEL
		}

		damage := maxHp / 4
		return ChipResult{
			Source:        "Salt Cure",
			Damage:        damage,
			DamagePercent: round2(float64(damage) / float64(maxHp) * 100),
			HpAfter:       max(0, currentHp-damage),
			Notes: []string{
				fmt.Sprintf("25%% damage per turn (%s-type takes double damage)", vulnerableType),
				"Garganacl's signature residual effect",
			},
		}
	}

	damage := maxHp / 8
	return ChipResult{
		Source:        "Salt Cure",
		Damage:        damage,
		DamagePercent: round2(float64(damage) / float64(maxHp) * 100),
		HpAfter:       max(0, currentHp-damage),
		Notes: []string{
			"12.5% damage per turn",
			"Deals 25% to Steel/Water types",
		},
	}
}

// ItemRecovery is the end of turn recovery from the target's held item.
// Only Leftovers and Black Sludge qualify.
func ItemRecovery(target Battler) ChipResult {
	currentHp := target.Hp.Value
	maxHp := target.MaxHp
	item := NormalizeItem(target.Item)

	if item != "leftovers" && item != "black-sludge" {
		return ChipResult{
			Source:         item,
			Immune:         true,
			ImmunityReason: "Not a recovery item",
			HpAfter:        currentHp,
		}
	}

	notes := []string{"Recovers 6.25% HP per turn"}
	if item == "black-sludge" {
		notes = append(notes, "Note: Damages non-Poison types for 12.5%")
	}

	healing := maxHp / 16
	return ChipResult{
		Source:        DisplayName(item),
		Damage:        -healing,
		DamagePercent: -round2(float64(healing) / float64(maxHp) * 100),
		IsHealing:     true,
		HpAfter:       min(maxHp, currentHp+healing),
		Notes:         notes,
	}
}

// ChipEffect is one residual source inside a simulated turn.
type ChipEffect struct {
	Source  string
	Damage  int
	Healing bool
}

// ChipTurn is one simulated end of turn. HpDelta is the net HP change,
// positive when the target came out ahead.
type ChipTurn struct {
	Turn      int
	Effects   []ChipEffect
	HpDelta   int
	HpAfter   int
	HpPercent float64
}

// ChipSimulation is a multi-turn residual projection.
type ChipSimulation struct {
	StartingHp     int
	MaxHp          int
	TurnsSimulated int
	TotalDamage    int
	TotalHealing   int
	NetChange      int
	FinalHp        int
	FinalHpPercent float64
	Fainted        bool
	Turns          []ChipTurn
}

// SimulateResiduals projects weather, status, terrain and item
// residuals over several turns, stopping early if the target faints.
// The toxic counter tracks the turn number.
func SimulateResiduals(target Battler, field Field, turns int, grounded bool) ChipSimulation {
	hp := target.Hp.Value
	maxHp := target.MaxHp

	var totalDamage, totalHealing int
	breakdown := make([]ChipTurn, 0, turns)

	for turn := 1; turn <= turns; turn++ {
		working := target
		working.Hp.Value = hp

		effects := make([]ChipEffect, 0, 4)
		turnNet := 0

		record := func(result ChipResult) {
			if result.Immune {
				return
			}
			effects = append(effects, ChipEffect{
				Source:  result.Source,
				Damage:  result.Damage,
				Healing: result.IsHealing,
			})
			if result.IsHealing {
				totalHealing += -result.Damage
			} else {
				totalDamage += result.Damage
			}
			turnNet += result.Damage
		}

		if field.Weather != WEATHER_NONE {
			record(WeatherChip(field.Weather, working))
		}
		if target.Status != STATUS_NONE {
			counter := 1
			if target.Status == STATUS_TOXIC {
				counter = turn
			}
			record(StatusChip(working, counter))
		}
		if field.Terrain == TERRAIN_GRASSY {
			record(TerrainHeal(field.Terrain, working, grounded))
		}
		record(ItemRecovery(working))

		hp = max(0, min(maxHp, hp-turnNet))

		breakdown = append(breakdown, ChipTurn{
			Turn:      turn,
			Effects:   effects,
			HpDelta:   -turnNet,
			HpAfter:   hp,
			HpPercent: round1(float64(hp) / float64(maxHp) * 100),
		})

		if hp <= 0 {
			break
		}
	}

	chipLogger().V(1).Info("residuals simulated",
		"startingHp", target.Hp.Value,
		"maxHp", maxHp,
		"turns", len(breakdown),
		"totalDamage", totalDamage,
		"totalHealing", totalHealing,
		"finalHp", hp,
	)

	return ChipSimulation{
		StartingHp:     target.Hp.Value,
		MaxHp:          maxHp,
		TurnsSimulated: len(breakdown),
		TotalDamage:    totalDamage,
		TotalHealing:   totalHealing,
		NetChange:      totalHealing - totalDamage,
		FinalHp:        hp,
		FinalHpPercent: round1(float64(hp) / float64(maxHp) * 100),
		Fainted:        hp <= 0,
		Turns:          breakdown,
	}
}
