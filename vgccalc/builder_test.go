package vgccalc

import (
	"math/rand/v2"
	"testing"
)

func TestBuilderBuild(t *testing.T) {
	jolly, err := GetNature("jolly")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	rng := rand.New(rand.NewPCG(1, 2))
	battler := NewBattlerBuilder(testGarchomp(), rng).
		SetPerfectIvs().
		SetEvs([6]int{4, 0, 0, 0, 0, 252}).
		SetNature(jolly).
		Build()

	if battler.Level != DEFAULT_LEVEL {
		t.Errorf("expected level %d, got %d", DEFAULT_LEVEL, battler.Level)
	}
	if battler.Nickname != "Garchomp" {
		t.Errorf("expected the species name as nickname, got %q", battler.Nickname)
	}

	// Published calc numbers for jolly 4 HP / 252 Spe Garchomp.
	if battler.MaxHp != 184 {
		t.Errorf("expected 184 max hp, got %d", battler.MaxHp)
	}
	if battler.Hp.Value != battler.MaxHp {
		t.Errorf("expected current hp to snap to max, got %d", battler.Hp.Value)
	}
	if battler.RawSpeed.RawValue != 169 {
		t.Errorf("expected 169 speed, got %d", battler.RawSpeed.RawValue)
	}
	if battler.Attack.RawValue != 150 {
		t.Errorf("expected 150 attack, got %d", battler.Attack.RawValue)
	}
	if battler.SpAttack.RawValue != 90 {
		t.Errorf("expected 90 special attack after the jolly cut, got %d", battler.SpAttack.RawValue)
	}
}

func TestBuilderChaining(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	battler := NewBattlerBuilder(testGarchomp(), rng).
		SetPerfectIvs().
		SetNickname("Chompers").
		SetAbility("Rough Skin").
		SetItem("Choice Scarf").
		SetStatus(STATUS_BURN).
		SetLevel(100).
		SetTeraType(&TYPE_STEEL).
		Build()

	if battler.Nickname != "Chompers" {
		t.Errorf("expected nickname Chompers, got %q", battler.Nickname)
	}
	if battler.Ability != "Rough Skin" {
		t.Errorf("expected ability Rough Skin, got %q", battler.Ability)
	}
	if battler.Item != "Choice Scarf" {
		t.Errorf("expected item Choice Scarf, got %q", battler.Item)
	}
	if battler.Status != STATUS_BURN {
		t.Errorf("expected burn status, got %d", battler.Status)
	}
	if battler.Level != 100 {
		t.Errorf("expected level 100, got %d", battler.Level)
	}
	if battler.TeraType != &TYPE_STEEL {
		t.Error("expected a steel tera type")
	}
}

func TestSetRandomEvs(t *testing.T) {
	// The dealt EVs must spend the entire budget without any single
	// stat passing the cap, whatever the rng does.
	for seed := uint64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewPCG(seed, seed+1))
		battler := NewBattlerBuilder(testGarchomp(), rng).
			SetPerfectIvs().
			SetRandomEvs().
			Build()

		evs := []int{
			battler.Hp.Ev, battler.Attack.Ev, battler.Def.Ev,
			battler.SpAttack.Ev, battler.SpDef.Ev, battler.RawSpeed.Ev,
		}

		total := 0
		for i, ev := range evs {
			if ev < 0 || ev > MAX_EV {
				t.Fatalf("seed %d: stat %d has illegal ev %d", seed, i, ev)
			}
			total += ev
		}

		if total != MAX_TOTAL_EV {
			t.Fatalf("seed %d: expected %d total evs, got %d", seed, MAX_TOTAL_EV, total)
		}
	}
}

func TestSetRandomIvs(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	battler := NewBattlerBuilder(testGarchomp(), rng).
		SetRandomIvs().
		Build()

	ivs := []int{
		battler.Hp.Iv, battler.Attack.Iv, battler.Def.Iv,
		battler.SpAttack.Iv, battler.SpDef.Iv, battler.RawSpeed.Iv,
	}

	for i, iv := range ivs {
		if iv < 0 || iv > MAX_IV {
			t.Errorf("stat %d has illegal iv %d", i, iv)
		}
	}
}

func TestSetRandomNature(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	battler := NewBattlerBuilder(testGarchomp(), rng).
		SetPerfectIvs().
		SetRandomNature().
		Build()

	if battler.Nature.Name == "" {
		t.Error("expected a named nature")
	}
}
