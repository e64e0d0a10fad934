package vgccalc

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var builderLogger = func() *zerolog.Logger {
	logger := log.With().Str("location", "battler-builder").Logger()
	return &logger
}

// BattlerBuilder assembles a Battler step by step and computes its
// final stats once on Build.
type BattlerBuilder struct {
	battler Battler
	rng     rand.Rand
}

func NewBattlerBuilder(base *Species, rng *rand.Rand) *BattlerBuilder {
	battler := Battler{
		Base:     base,
		Nickname: base.Name,
		Level:    DEFAULT_LEVEL,
		Hp:       HpStat{Value: 0, Ev: 0, Iv: 0},
		Attack:   Stat{RawValue: 0, Ev: 0, Iv: 0, Stage: 0},
		Def:      Stat{RawValue: 0, Ev: 0, Iv: 0, Stage: 0},
		SpAttack: Stat{RawValue: 0, Ev: 0, Iv: 0, Stage: 0},
		SpDef:    Stat{RawValue: 0, Ev: 0, Iv: 0, Stage: 0},
		RawSpeed: Stat{RawValue: 0, Ev: 0, Iv: 0, Stage: 0},
		Nature:   NATURE_HARDY,
	}

	return &BattlerBuilder{battler, *rng}
}

func (bb *BattlerBuilder) SetEvs(evs [6]int) *BattlerBuilder {
	bb.battler.Hp.Ev = evs[0]
	bb.battler.Attack.Ev = evs[1]
	bb.battler.Def.Ev = evs[2]
	bb.battler.SpAttack.Ev = evs[3]
	bb.battler.SpDef.Ev = evs[4]
	bb.battler.RawSpeed.Ev = evs[5]

	builderLogger().Debug().
		Int("HP", evs[0]).
		Int("ATTACK", evs[1]).
		Int("DEF", evs[2]).
		Int("SPATTACK", evs[3]).
		Int("SPDEF", evs[4]).
		Int("SPEED", evs[5]).Msg("Setting EVs")

	return bb
}

func (bb *BattlerBuilder) SetIvs(ivs [6]int) *BattlerBuilder {
	bb.battler.Hp.Iv = ivs[0]
	bb.battler.Attack.Iv = ivs[1]
	bb.battler.Def.Iv = ivs[2]
	bb.battler.SpAttack.Iv = ivs[3]
	bb.battler.SpDef.Iv = ivs[4]
	bb.battler.RawSpeed.Iv = ivs[5]

	builderLogger().Debug().
		Int("HP", ivs[0]).
		Int("ATTACK", ivs[1]).
		Int("DEF", ivs[2]).
		Int("SPATTACK", ivs[3]).
		Int("SPDEF", ivs[4]).
		Int("SPEED", ivs[5]).Msg("Setting IVs")

	return bb
}

func (bb *BattlerBuilder) SetPerfectIvs() *BattlerBuilder {
	bb.battler.Hp.Iv = MAX_IV
	bb.battler.Attack.Iv = MAX_IV
	bb.battler.Def.Iv = MAX_IV
	bb.battler.SpAttack.Iv = MAX_IV
	bb.battler.SpDef.Iv = MAX_IV
	bb.battler.RawSpeed.Iv = MAX_IV

	builderLogger().Debug().Msg("Setting Perfect IVs")

	return bb
}

func (bb *BattlerBuilder) SetRandomIvs() *BattlerBuilder {
	var ivs [6]int

	for i := range ivs {
		ivs[i] = bb.rng.IntN(MAX_IV + 1)
	}

	builderLogger().Debug().Msg("Setting Random IVs")
	bb.SetIvs(ivs)

	return bb
}

// SetRandomEvs deals the whole EV budget out across random stats
// without ever passing the per stat cap.
func (bb *BattlerBuilder) SetRandomEvs() *BattlerBuilder {
	evPool := MAX_TOTAL_EV
	var evs [6]int

	for evPool > 0 {
		randomIndex := bb.rng.IntN(6)
		space := min(MAX_EV-evs[randomIndex], evPool)
		if space <= 0 {
			continue
		}

		amount := bb.rng.IntN(space) + 1
		evs[randomIndex] += amount
		evPool -= amount
	}

	builderLogger().Debug().Msg("Setting Random EVs")
	bb.SetEvs(evs)

	return bb
}

func (bb *BattlerBuilder) SetLevel(level int) *BattlerBuilder {
	bb.battler.Level = level
	return bb
}

func (bb *BattlerBuilder) SetNickname(nickname string) *BattlerBuilder {
	bb.battler.Nickname = nickname
	return bb
}

func (bb *BattlerBuilder) SetNature(nature Nature) *BattlerBuilder {
	bb.battler.Nature = nature
	return bb
}

func (bb *BattlerBuilder) SetRandomNature() *BattlerBuilder {
	bb.battler.Nature = NATURES[bb.rng.IntN(len(NATURES))]

	return bb
}

func (bb *BattlerBuilder) SetAbility(ability string) *BattlerBuilder {
	bb.battler.Ability = ability
	return bb
}

func (bb *BattlerBuilder) SetItem(item string) *BattlerBuilder {
	bb.battler.Item = item
	return bb
}

func (bb *BattlerBuilder) SetTeraType(teraType *PokemonType) *BattlerBuilder {
	bb.battler.TeraType = teraType
	return bb
}

func (bb *BattlerBuilder) SetStatus(status int) *BattlerBuilder {
	bb.battler.Status = status
	return bb
}

func (bb *BattlerBuilder) Build() Battler {
	bb.battler.ReCalcStats()
	builderLogger().Debug().Msg("Building battler")
	return bb.battler
}
