package vgccalc

import (
	"strings"
	"testing"
)

// flatBattler has 175 max HP, so the residual fractions land on 10
// (1/16), 21 (1/8) and 43 (1/4) after flooring.

func TestWeatherChipSandstorm(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)

	result := WeatherChip(WEATHER_SANDSTORM, target)
	if result.Immune {
		t.Fatalf("dragon should take sandstorm chip, got immunity: %s", result.ImmunityReason)
	}
	if result.Damage != 10 {
		t.Errorf("expected 10 sandstorm damage, got %d", result.Damage)
	}
	if result.DamagePercent != 5.71 {
		t.Errorf("expected 5.71%% damage, got %.2f", result.DamagePercent)
	}
	if result.HpAfter != 165 {
		t.Errorf("expected 165 hp after, got %d", result.HpAfter)
	}
}

func TestWeatherChipImmuneType(t *testing.T) {
	target := flatBattler(&TYPE_STEEL)

	result := WeatherChip(WEATHER_SANDSTORM, target)
	if !result.Immune {
		t.Fatal("steel should shrug off sandstorm")
	}
	if result.ImmunityReason != "Steel-type is immune to Sandstorm" {
		t.Errorf("unexpected immunity reason %q", result.ImmunityReason)
	}
	if result.HpAfter != 175 {
		t.Errorf("expected hp untouched at 175, got %d", result.HpAfter)
	}
}

func TestWeatherChipImmuneAbility(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)
	target.Ability = "Magic Guard"

	result := WeatherChip(WEATHER_SANDSTORM, target)
	if !result.Immune {
		t.Fatal("magic guard should block sandstorm")
	}
	if result.ImmunityReason != "Magic Guard grants Sandstorm immunity" {
		t.Errorf("unexpected immunity reason %q", result.ImmunityReason)
	}
}

func TestWeatherChipIceBody(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)
	target.Ability = "Ice Body"
	target.Hp.Value = 100

	result := WeatherChip(WEATHER_SNOW, target)
	if !result.IsHealing {
		t.Fatal("ice body should heal in snow")
	}
	if result.Damage != -10 {
		t.Errorf("expected -10 damage (healing), got %d", result.Damage)
	}
	if result.HpAfter != 110 {
		t.Errorf("expected 110 hp after healing, got %d", result.HpAfter)
	}

	// An actual Ice type never reaches the ability check.
	icy := flatBattler(&TYPE_ICE)
	frosty := WeatherChip(WEATHER_SNOW, icy)
	if !frosty.Immune || frosty.ImmunityReason != "Ice-type is immune to Snow" {
		t.Errorf("expected ice type snow immunity, got %+v", frosty)
	}
}

func TestWeatherChipNonDamaging(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)

	result := WeatherChip(WEATHER_SUN, target)
	if !result.Immune {
		t.Fatal("sun deals no chip damage")
	}
	if result.ImmunityReason != "This weather doesn't deal damage" {
		t.Errorf("unexpected immunity reason %q", result.ImmunityReason)
	}
}

func TestStatusChipBurn(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)
	target.Status = STATUS_BURN

	result := StatusChip(target, 1)
	if result.Source != "Burn" {
		t.Errorf("expected source Burn, got %q", result.Source)
	}
	if result.Damage != 10 {
		t.Errorf("expected 10 burn damage, got %d", result.Damage)
	}
	if result.HpAfter != 165 {
		t.Errorf("expected 165 hp after, got %d", result.HpAfter)
	}

	target.Ability = "Guts"
	gutsy := StatusChip(target, 1)
	if len(gutsy.Notes) != 3 || !strings.Contains(gutsy.Notes[2], "Guts") {
		t.Errorf("expected a guts note, got %v", gutsy.Notes)
	}
}

func TestStatusChipToxic(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)
	target.Status = STATUS_TOXIC

	// Turn 3 of bad poison is 3/16, which floors to 32 out of 175.
	result := StatusChip(target, 3)
	if result.Source != "Toxic (turn 3)" {
		t.Errorf("expected source for turn 3, got %q", result.Source)
	}
	if result.Damage != 32 {
		t.Errorf("expected 32 toxic damage on turn 3, got %d", result.Damage)
	}

	capped := StatusChip(target, 99)
	if capped.Source != "Toxic (turn 15)" {
		t.Errorf("expected the counter to cap at 15, got %q", capped.Source)
	}
	if capped.Damage != 164 {
		t.Errorf("expected 164 damage at the cap, got %d", capped.Damage)
	}
}

func TestStatusChipPoisonHeal(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)
	target.Status = STATUS_POISON
	target.Ability = "Poison Heal"
	target.Hp.Value = 100

	result := StatusChip(target, 1)
	if !result.IsHealing {
		t.Fatal("poison heal should flip poison into healing")
	}
	if result.Damage != -21 {
		t.Errorf("expected -21 damage (healing), got %d", result.Damage)
	}
	if result.HpAfter != 121 {
		t.Errorf("expected 121 hp after, got %d", result.HpAfter)
	}
}

func TestStatusChipMagicGuard(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)
	target.Status = STATUS_TOXIC
	target.Ability = "Magic Guard"

	result := StatusChip(target, 5)
	if !result.Immune {
		t.Fatal("magic guard should block toxic")
	}
	if result.ImmunityReason != "Magic Guard blocks indirect damage" {
		t.Errorf("unexpected immunity reason %q", result.ImmunityReason)
	}
}

func TestStatusChipNone(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)

	result := StatusChip(target, 1)
	if !result.Immune {
		t.Fatal("no status should mean no chip")
	}
	if result.ImmunityReason != "No damaging status" {
		t.Errorf("unexpected immunity reason %q", result.ImmunityReason)
	}
}

func TestTerrainHeal(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)
	target.Hp.Value = 100

	result := TerrainHeal(TERRAIN_GRASSY, target, true)
	if !result.IsHealing {
		t.Fatal("grassy terrain should heal grounded targets")
	}
	if result.Damage != -10 {
		t.Errorf("expected -10 damage (healing), got %d", result.Damage)
	}
	if result.HpAfter != 110 {
		t.Errorf("expected 110 hp after, got %d", result.HpAfter)
	}

	airborne := TerrainHeal(TERRAIN_GRASSY, target, false)
	if !airborne.Immune || airborne.ImmunityReason != "Not grounded (Flying-type or Levitate)" {
		t.Errorf("expected a grounding refusal, got %+v", airborne)
	}

	electric := TerrainHeal(TERRAIN_ELECTRIC, target, true)
	if !electric.Immune || electric.ImmunityReason != "Only Grassy Terrain provides healing" {
		t.Errorf("expected no healing on electric terrain, got %+v", electric)
	}
}

func TestSaltCureChip(t *testing.T) {
	soggy := flatBattler(&TYPE_WATER)
	result := SaltCureChip(soggy)
	if result.Damage != 43 {
		t.Errorf("expected 43 damage against water, got %d", result.Damage)
	}
	if !strings.Contains(result.Notes[0], "Water-type takes double damage") {
		t.Errorf("expected a double damage note, got %v", result.Notes)
	}

	neutral := SaltCureChip(flatBattler(&TYPE_DRAGON))
	if neutral.Damage != 21 {
		t.Errorf("expected 21 damage against dragon, got %d", neutral.Damage)
	}
}

func TestItemRecovery(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)
	target.Item = "Leftovers"
	target.Hp.Value = 100

	result := ItemRecovery(target)
	if !result.IsHealing {
		t.Fatal("leftovers should heal")
	}
	if result.Source != "Leftovers" {
		t.Errorf("expected source Leftovers, got %q", result.Source)
	}
	if result.Damage != -10 {
		t.Errorf("expected -10 damage (healing), got %d", result.Damage)
	}
	if result.HpAfter != 110 {
		t.Errorf("expected 110 hp after, got %d", result.HpAfter)
	}

	target.Item = "Choice Band"
	band := ItemRecovery(target)
	if !band.Immune || band.ImmunityReason != "Not a recovery item" {
		t.Errorf("expected choice band to heal nothing, got %+v", band)
	}
}

func TestSimulateResidualsBurnVsLeftovers(t *testing.T) {
	// Burn and Leftovers are both 1/16, so they cancel exactly and the
	// projection should report a wash.
	target := flatBattler(&TYPE_DRAGON)
	target.Status = STATUS_BURN
	target.Item = "Leftovers"

	sim := SimulateResiduals(target, Field{}, 4, true)

	if sim.TurnsSimulated != 4 {
		t.Fatalf("expected 4 simulated turns, got %d", sim.TurnsSimulated)
	}
	if sim.NetChange != 0 {
		t.Errorf("expected net zero, got %d", sim.NetChange)
	}
	if sim.TotalDamage != 40 || sim.TotalHealing != 40 {
		t.Errorf("expected 40 damage and 40 healing, got %d and %d", sim.TotalDamage, sim.TotalHealing)
	}
	if sim.FinalHp != 175 || sim.Fainted {
		t.Errorf("expected a full hp survivor, got %d hp fainted=%v", sim.FinalHp, sim.Fainted)
	}
	if len(sim.Turns[0].Effects) != 2 {
		t.Errorf("expected 2 effects per turn, got %d", len(sim.Turns[0].Effects))
	}
}

func TestSimulateResidualsToxicRamp(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)
	target.Status = STATUS_TOXIC

	sim := SimulateResiduals(target, Field{}, 3, true)

	// 10, 21 and 32 over the first three turns of 175 max HP.
	if sim.TotalDamage != 63 {
		t.Errorf("expected 63 total toxic damage, got %d", sim.TotalDamage)
	}
	if sim.NetChange != -63 {
		t.Errorf("expected net -63, got %d", sim.NetChange)
	}
	if sim.Turns[2].HpAfter != 112 {
		t.Errorf("expected 112 hp after turn 3, got %d", sim.Turns[2].HpAfter)
	}
	if sim.FinalHpPercent != 64 {
		t.Errorf("expected 64%% final hp, got %.1f", sim.FinalHpPercent)
	}
}

func TestSimulateResidualsFaint(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)
	target.Status = STATUS_POISON
	target.Hp.Value = 15

	sim := SimulateResiduals(target, Field{}, 5, true)

	if !sim.Fainted {
		t.Fatal("expected the target to faint")
	}
	if sim.TurnsSimulated != 1 {
		t.Errorf("expected the simulation to stop after 1 turn, got %d", sim.TurnsSimulated)
	}
	if sim.FinalHp != 0 {
		t.Errorf("expected 0 final hp, got %d", sim.FinalHp)
	}
}

func TestSimulateResidualsGrassyHealing(t *testing.T) {
	target := flatBattler(&TYPE_DRAGON)
	target.Hp.Value = 100

	sim := SimulateResiduals(target, Field{Terrain: TERRAIN_GRASSY}, 2, true)

	if sim.NetChange != 20 {
		t.Errorf("expected net +20 from grassy terrain, got %d", sim.NetChange)
	}
	if sim.FinalHp != 120 {
		t.Errorf("expected 120 final hp, got %d", sim.FinalHp)
	}
}
