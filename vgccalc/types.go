package vgccalc

import (
	"fmt"
	"strings"
)

// Nature holds the five non-HP stat modifiers in the order
// Attack, Def, SpAttack, SpDef, Speed.
type Nature struct {
	Name          string
	StatModifiers [5]float64
}

func (n Nature) Modifier(statName string) float64 {
	switch statName {
	case STAT_ATTACK:
		return n.StatModifiers[0]
	case STAT_DEFENSE:
		return n.StatModifiers[1]
	case STAT_SPATTACK:
		return n.StatModifiers[2]
	case STAT_SPDEF:
		return n.StatModifiers[3]
	case STAT_SPEED:
		return n.StatModifiers[4]
	}

	return 1
}

// IsNeutral reports whether the nature modifies no stat.
func (n Nature) IsNeutral() bool {
	for _, mod := range n.StatModifiers {
		if mod != 1 {
			return false
		}
	}

	return true
}

func GetNature(name string) (Nature, error) {
	for _, nature := range NATURES {
		if strings.EqualFold(nature.Name, name) {
			return nature, nil
		}
	}

	return Nature{}, fmt.Errorf("unknown nature %q: %w", name, ErrInvalidInput)
}

type PokemonType struct {
	Name          string
	Effectiveness map[string]float64
}

// AttackEffectiveness returns the multiplier for this type attacking into
// defTypeName. Matchups missing from the map are neutral.
func (p PokemonType) AttackEffectiveness(defTypeName string) float64 {
	effectiveness, ok := p.Effectiveness[defTypeName]
	if !ok {
		return 1
	}

	return effectiveness
}

// Species is one base stat line out of the species table.
type Species struct {
	PokedexNumber int
	Name          string
	Type1         *PokemonType
	Type2         *PokemonType
	Hp            int
	Attack        int
	Def           int
	SpAttack      int
	SpDef         int
	Speed         int
}

// Stat is a single non-HP stat: the computed raw value plus the EV, IV
// and stage that produced it.
type Stat struct {
	RawValue int
	Ev       int
	Iv       int
	Stage    int
}

// CalcValue applies the stat's stage to its raw value.
func (s Stat) CalcValue() int {
	return int(float64(s.RawValue) * StageMultipliers[s.Stage])
}

type HpStat struct {
	Value int
	Ev    int
	Iv    int
}

// Battler is a fully specified combatant: species, level, spread, nature
// and battle state. Raw stats are only valid after ReCalcStats.
type Battler struct {
	Base     *Species
	Nickname string
	Level    int

	Hp       HpStat
	MaxHp    int
	Attack   Stat
	Def      Stat
	SpAttack Stat
	SpDef    Stat
	RawSpeed Stat

	Nature  Nature
	Ability string
	Item    string

	// TeraType is nil unless terastallized. When set it replaces both
	// original types defensively and stacks with them for STAB.
	TeraType *PokemonType

	Status int
}

// ReCalcStats computes every raw stat from bases, IVs, EVs, level and
// nature. Current HP snaps to the new max.
func (p *Battler) ReCalcStats() {
	p.MaxHp = CalcHP(p.Base.Hp, p.Hp.Iv, p.Hp.Ev, p.Level)
	p.Hp.Value = p.MaxHp

	p.Attack.RawValue = CalcStat(p.Base.Attack, p.Attack.Iv, p.Attack.Ev, p.Level, p.Nature.StatModifiers[0])
	p.Def.RawValue = CalcStat(p.Base.Def, p.Def.Iv, p.Def.Ev, p.Level, p.Nature.StatModifiers[1])
	p.SpAttack.RawValue = CalcStat(p.Base.SpAttack, p.SpAttack.Iv, p.SpAttack.Ev, p.Level, p.Nature.StatModifiers[2])
	p.SpDef.RawValue = CalcStat(p.Base.SpDef, p.SpDef.Iv, p.SpDef.Ev, p.Level, p.Nature.StatModifiers[3])
	p.RawSpeed.RawValue = CalcStat(p.Base.Speed, p.RawSpeed.Iv, p.RawSpeed.Ev, p.Level, p.Nature.StatModifiers[4])
}

// DefenseEffectiveness is the combined multiplier for attackType hitting
// this battler. A tera type replaces both original types.
func (p Battler) DefenseEffectiveness(attackType *PokemonType) float64 {
	if p.TeraType != nil {
		return attackType.AttackEffectiveness(p.TeraType.Name)
	}

	effectiveness := attackType.AttackEffectiveness(p.Base.Type1.Name)
	if p.Base.Type2 != nil {
		effectiveness *= attackType.AttackEffectiveness(p.Base.Type2.Name)
	}

	return effectiveness
}

// HasOriginalType checks the species typing, ignoring tera.
func (p Battler) HasOriginalType(typeName string) bool {
	if p.Base.Type1 != nil && p.Base.Type1.Name == typeName {
		return true
	}
	if p.Base.Type2 != nil && p.Base.Type2.Name == typeName {
		return true
	}

	return false
}

func (p Battler) GetCurrentEvTotal() int {
	return p.Hp.Ev + p.Attack.Ev + p.Def.Ev + p.SpAttack.Ev + p.SpDef.Ev + p.RawSpeed.Ev
}

func (p Battler) IsFullHp() bool {
	return p.Hp.Value >= p.MaxHp
}

// Move describes one attack for calculation purposes.
type Move struct {
	Name     string
	Type     *PokemonType
	Category string
	Power    int
	Priority int

	// MinHits and MaxHits bound a multi-hit move. Zero or one on both
	// means a single hit.
	MinHits int
	MaxHits int

	AlwaysCrit bool
	Spread     bool
}

func (m Move) IsDamaging() bool {
	return m.Category != DAMAGETYPE_STATUS && m.Power > 0
}

func (m Move) IsMultiHit() bool {
	return m.MaxHits > 1
}

// HitCount is the hit count a calculation should assume: the caller's
// override when given, otherwise the move's maximum.
func (m Move) HitCount(override int) int {
	if override > 0 {
		return override
	}
	if m.MaxHits > 1 {
		return m.MaxHits
	}

	return 1
}

// ExpectedHits is the probability-weighted mean hit count.
func (m Move) ExpectedHits() float64 {
	if m.MaxHits <= 1 || m.MinHits == m.MaxHits {
		return float64(m.HitCount(0))
	}
	if m.MinHits == 2 && m.MaxHits == 5 {
		// 2 and 3 hits land 35% of the time each, 4 and 5 hits 15%.
		return 3.167
	}
	if m.MinHits == 1 && m.MaxHits == 10 {
		return 5.5
	}

	return float64(m.MinHits+m.MaxHits) / 2
}

// Field carries every battle condition outside the two battlers
// themselves.
type Field struct {
	Doubles         bool
	MultipleTargets bool

	Weather int
	Terrain int

	// Airborne battlers miss out on terrain boosts and grounded-only
	// effects. Zero value means grounded, the common case.
	AttackerAirborne bool
	DefenderAirborne bool

	Crit bool

	AttackStage   int
	DefenseStage  int
	SpAttackStage int
	SpDefStage    int

	Reflect     bool
	LightScreen bool
	AuroraVeil  bool

	HelpingHand bool
	FriendGuard bool

	SwordOfRuin   bool
	BeadsOfRuin   bool
	TabletsOfRuin bool
	VesselOfRuin  bool

	TrickRoom bool
	Tailwind  bool

	// MoveHits overrides the assumed hit count for multi-hit moves.
	MoveHits int
}
