package tests

import (
	"strings"
	"testing"

	"github.com/MSS23/vgc-mcp-sub002/report"
	"github.com/MSS23/vgc-mcp-sub002/vgccalc"
)

func TestSpreadSearchThroughBuilder(t *testing.T) {
	req := vgccalc.NewSpreadRequest(getSpecies("Garchomp"))
	req.Role = vgccalc.ROLE_PHYSICAL
	req.SpeedTarget = 169

	result, err := vgccalc.FindSpread(req)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !result.Reachable {
		t.Fatalf("expected 169 speed to be reachable: %+v", result)
	}

	// Building the suggested spread has to land on the stats the search
	// reported.
	built := vgccalc.NewBattlerBuilder(getSpecies("Garchomp"), testRng()).
		SetPerfectIvs().
		SetNature(result.Nature).
		SetEvs(result.Evs).
		Build()

	if built.RawSpeed.RawValue != 169 {
		t.Errorf("expected the built spread to hit 169 speed, got %d", built.RawSpeed.RawValue)
	}
	if built.MaxHp != result.Stats[0] || built.Attack.RawValue != result.Stats[1] {
		t.Errorf("built stats diverge from the search result: %d/%d vs %d/%d",
			built.MaxHp, built.Attack.RawValue, result.Stats[0], result.Stats[1])
	}

	out := report.RenderSpreadReport("Garchomp", result)
	for _, want := range []string{"Suggested spread for Garchomp", result.Nature.Name, "169 Spe"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected the report to contain %q:\n%s", want, out)
		}
	}
}

// An uninvested Garchomp gets OHKOed by Modest Dragapult Draco Meteor,
// so the search has to spend real EVs. Whatever pair it picks is then
// re-checked through the damage pipeline.
func TestSurvivalSpreadVerifiedByDamage(t *testing.T) {
	attacker := buildBattler("Dragapult", vgccalc.NATURE_MODEST, [6]int{0, 0, 0, 252, 4, 252})
	draco := vgccalc.Move{Name: "Draco Meteor", Type: &vgccalc.TYPE_DRAGON, Category: vgccalc.DAMAGETYPE_SPECIAL, Power: 130}

	req := vgccalc.NewSpreadRequest(getSpecies("Garchomp"))
	req.Role = vgccalc.ROLE_DEFENSIVE
	req.Survive = &vgccalc.SurvivalConstraint{Attacker: attacker, Move: draco}

	result, err := vgccalc.FindSpread(req)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !result.Reachable {
		t.Fatalf("expected the hit to be survivable: %+v", result)
	}
	if result.TotalEvs > 508 {
		t.Errorf("spread overspends the budget: %d", result.TotalEvs)
	}
	if result.Evs[0]+result.Evs[4] == 0 {
		t.Errorf("expected real hp or spdef investment, got %v", result.Evs)
	}

	built := vgccalc.NewBattlerBuilder(getSpecies("Garchomp"), testRng()).
		SetPerfectIvs().
		SetNature(result.Nature).
		SetEvs(result.Evs).
		Build()

	res, err := vgccalc.Damage(attacker, built, draco, vgccalc.Field{})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if res.MaxDamage >= built.MaxHp {
		t.Errorf("suggested spread still gets OHKOed: %d damage into %d hp", res.MaxDamage, built.MaxHp)
	}
}
