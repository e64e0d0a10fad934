package vgccalc

import (
	"math"
	"testing"
)

// Fixtures are built by hand so expected numbers can be checked against
// published calcs.

func testGarchomp() *Species {
	return &Species{
		PokedexNumber: 445,
		Name:          "Garchomp",
		Type1:         &TYPE_DRAGON,
		Type2:         &TYPE_GROUND,
		Hp:            108,
		Attack:        130,
		Def:           95,
		SpAttack:      80,
		SpDef:         85,
		Speed:         102,
	}
}

// flatBattler pins every relevant stat to round numbers so pipeline
// results can be worked out on paper.
func flatBattler(type1 *PokemonType) Battler {
	base := &Species{
		PokedexNumber: 1,
		Name:          "Dummy",
		Type1:         type1,
		Hp:            100,
		Attack:        100,
		Def:           100,
		SpAttack:      100,
		SpDef:         100,
		Speed:         100,
	}

	b := Battler{
		Base:     base,
		Nickname: "Dummy",
		Level:    50,
		Nature:   NATURE_HARDY,
	}
	b.MaxHp = 175
	b.Hp.Value = 175
	b.Attack.RawValue = 100
	b.Def.RawValue = 100
	b.SpAttack.RawValue = 100
	b.SpDef.RawValue = 100
	b.RawSpeed.RawValue = 100

	return b
}

func physicalMove(name string, moveType *PokemonType, power int) Move {
	return Move{Name: name, Type: moveType, Category: DAMAGETYPE_PHYSICAL, Power: power}
}

func checkRollRange(t *testing.T, res DamageResult, low, high int) {
	t.Helper()
	if res.MinDamage != low || res.MaxDamage != high {
		t.Fatalf("outside damage range: should be %d - %d, got %d - %d", low, high, res.MinDamage, res.MaxDamage)
	}
}

type lowSource struct{}

func (lowSource) Uint64() uint64 { return 0 }

type highSource struct{}

func (highSource) Uint64() uint64 { return math.MaxUint64 }
