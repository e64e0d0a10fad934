package vgccalc

import "testing"

func TestDefenseEffectivenessDualTypes(t *testing.T) {
	// Ground hits Fire/Steel for 2x twice over.
	target := Battler{Base: &Species{Type1: &TYPE_FIRE, Type2: &TYPE_STEEL}}
	if eff := target.DefenseEffectiveness(&TYPE_GROUND); eff != 4 {
		t.Fatalf("expected 4x into fire/steel, got %g", eff)
	}

	// Type order never matters.
	flipped := Battler{Base: &Species{Type1: &TYPE_STEEL, Type2: &TYPE_FIRE}}
	if eff := flipped.DefenseEffectiveness(&TYPE_GROUND); eff != 4 {
		t.Fatalf("expected 4x with the types flipped, got %g", eff)
	}
}

func TestDefenseEffectivenessImmunity(t *testing.T) {
	// The Flying immunity zeroes the product no matter how weak the
	// partner type is.
	target := Battler{Base: &Species{Type1: &TYPE_FLYING, Type2: &TYPE_STEEL}}
	if eff := target.DefenseEffectiveness(&TYPE_GROUND); eff != 0 {
		t.Fatalf("expected immunity, got %g", eff)
	}
}

func TestDefenseEffectivenessTera(t *testing.T) {
	target := Battler{Base: &Species{Type1: &TYPE_FLYING, Type2: &TYPE_STEEL}}
	target.TeraType = &TYPE_WATER

	// Tera replaces both defensive types outright.
	if eff := target.DefenseEffectiveness(&TYPE_GROUND); eff != 1 {
		t.Fatalf("expected neutral into tera water, got %g", eff)
	}
	if eff := target.DefenseEffectiveness(&TYPE_ELECTRIC); eff != 2 {
		t.Fatalf("expected 2x electric into tera water, got %g", eff)
	}
}

func TestAttackEffectivenessUnknownType(t *testing.T) {
	if eff := TYPE_GROUND.AttackEffectiveness("???"); eff != 1 {
		t.Fatalf("unknown defending type must be neutral, got %g", eff)
	}
}
