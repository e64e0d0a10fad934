package vgccalc

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

var searchLogger = func() logr.Logger {
	return internalLogger.WithName("search")
}

const (
	ROLE_PHYSICAL  = "physical"
	ROLE_SPECIAL   = "special"
	ROLE_DEFENSIVE = "defensive"
	ROLE_MIXED     = "mixed"
)

// statOrder maps EV/IV array slots to stat names.
var statOrder = [6]string{STAT_HP, STAT_ATTACK, STAT_DEFENSE, STAT_SPATTACK, STAT_SPDEF, STAT_SPEED}

// SurvivalConstraint asks the search for a spread that lives through a
// specific attack.
type SurvivalConstraint struct {
	Attacker Battler
	Move     Move
	Field    Field

	// MinHpRemaining is the percent of max HP that must be left after
	// taking the highest roll. Zero means living on 1 HP counts.
	MinHpRemaining float64
}

// OffenseConstraint asks the search for enough offensive EVs to KO a
// specific target.
type OffenseConstraint struct {
	Defender Battler
	Move     Move
	Field    Field

	// RequireGuaranteed demands the minimum roll KOs. Otherwise any
	// roll reaching the defender's HP satisfies the constraint.
	RequireGuaranteed bool
}

// SpreadRequest describes one allocation search. Constraints resolve in
// a fixed order, speed then survival then offense, each drawing from
// whatever budget the previous ones left. That is deliberately not a
// joint solve.
type SpreadRequest struct {
	Species *Species
	Level   int
	Ivs     [6]int

	// Nature pins the search to a single nature. Empty means try the
	// candidates relevant to Role and keep the best scoring one.
	Nature string
	Role   string

	// SpeedTarget of 0 means no speed benchmark.
	SpeedTarget int
	Survive     *SurvivalConstraint
	Offense     *OffenseConstraint

	Ability  string
	Item     string
	TeraType *PokemonType

	MaxTotalEvs int
}

// NewSpreadRequest starts a request with the usual defaults: level 50,
// perfect IVs, full 508 budget.
func NewSpreadRequest(species *Species) SpreadRequest {
	return SpreadRequest{
		Species:     species,
		Level:       DEFAULT_LEVEL,
		Ivs:         [6]int{MAX_IV, MAX_IV, MAX_IV, MAX_IV, MAX_IV, MAX_IV},
		Role:        ROLE_MIXED,
		MaxTotalEvs: MAX_TOTAL_EV,
	}
}

// SpreadResult is the outcome of a spread search. When Reachable is
// false the Best* fields carry how close the search got, so callers can
// tell "needs 12 more EVs" apart from "not even close".
type SpreadResult struct {
	Evs      [6]int
	Nature   Nature
	Stats    [6]int
	TotalEvs int

	// EvSavings is how many fewer EVs this nature spends on the same
	// benchmarks than a neutral nature would.
	EvSavings int

	Score     float64
	Reasoning string
	Reachable bool

	ClosestSpeed    int
	BestSurvivalPct float64
	BestDamagePct   float64
}

type spreadPartial struct {
	closestSpeed    int
	bestSurvivalPct float64
	bestDamagePct   float64
}

// FindSpread searches EV breakpoints (and natures, when not pinned) for
// the cheapest spread meeting every constraint in the request. Natures
// are ranked by useful stats gained minus an EV-spent penalty, so a
// +Attack nature that saves 40 EVs beats a +Speed nature that saves
// none.
func FindSpread(req SpreadRequest) (SpreadResult, error) {
	if req.Species == nil {
		return SpreadResult{}, fmt.Errorf("spread request has no species: %w", ErrInvalidInput)
	}
	if req.Level <= 0 {
		req.Level = DEFAULT_LEVEL
	}
	if req.MaxTotalEvs <= 0 || req.MaxTotalEvs > MAX_TOTAL_EV {
		req.MaxTotalEvs = MAX_TOTAL_EV
	}
	for _, iv := range req.Ivs {
		if iv < 0 || iv > MAX_IV {
			return SpreadResult{}, fmt.Errorf("iv %d out of range: %w", iv, ErrInvalidInput)
		}
	}

	var candidates []Nature
	if req.Nature != "" {
		nature, err := GetNature(req.Nature)
		if err != nil {
			return SpreadResult{}, err
		}
		candidates = []Nature{nature}
	} else {
		candidates = relevantNatures(req.Role)
	}

	// Neutral baseline for the EV savings comparison.
	neutralEvs, _, neutralOk, err := solveForNature(req, NATURE_SERIOUS)
	if err != nil {
		return SpreadResult{}, err
	}
	neutralTotal := math.MaxInt
	if neutralOk {
		neutralTotal = lo.Sum(neutralEvs[:])
	}

	best := SpreadResult{Score: math.Inf(-1)}
	partial := spreadPartial{bestSurvivalPct: math.Inf(-1), bestDamagePct: math.Inf(-1)}
	found := false

	for _, nature := range candidates {
		evs, natPartial, ok, err := solveForNature(req, nature)
		if err != nil {
			return SpreadResult{}, err
		}
		if !ok {
			partial = mergePartials(partial, natPartial)
			continue
		}

		constraintTotal := lo.Sum(evs[:])
		savings := 0
		if neutralTotal != math.MaxInt {
			savings = neutralTotal - constraintTotal
		}

		// Leftover budget goes to the role's primary stats.
		evs = distributeLeftover(evs, req.MaxTotalEvs-constraintTotal, req.Role)

		battler := assembleBattler(req.Species, req.Level, nature, evs, req.Ivs, req.Ability, req.Item, req.TeraType)
		stats := statBlock(battler)
		score := natureScore(req.Role, stats, constraintTotal)

		if score > best.Score {
			found = true
			best = SpreadResult{
				Evs:       evs,
				Nature:    nature,
				Stats:     stats,
				TotalEvs:  lo.Sum(evs[:]),
				EvSavings: savings,
				Score:     score,
				Reasoning: buildReasoning(req, nature, evs, stats, savings),
				Reachable: true,
			}
		}
	}

	if !found {
		result := SpreadResult{
			ClosestSpeed:    partial.closestSpeed,
			BestSurvivalPct: partial.bestSurvivalPct,
			BestDamagePct:   partial.bestDamagePct,
		}
		if math.IsInf(result.BestSurvivalPct, -1) {
			result.BestSurvivalPct = 0
		}
		if math.IsInf(result.BestDamagePct, -1) {
			result.BestDamagePct = 0
		}

		searchLogger().V(1).Info("spread search unreachable",
			"species", req.Species.Name,
			"speedTarget", req.SpeedTarget,
			"closestSpeed", result.ClosestSpeed,
			"bestSurvivalPct", result.BestSurvivalPct,
		)

		return result, nil
	}

	searchLogger().V(1).Info("spread found",
		"species", req.Species.Name,
		"nature", best.Nature.Name,
		"evs", best.Evs,
		"totalEvs", best.TotalEvs,
		"evSavings", best.EvSavings,
		"score", best.Score,
	)

	return best, nil
}

// relevantNatures narrows 25 natures to the handful worth testing for a
// role. Trick Room natures stay in the offensive lists since a slow
// attacker may still be what the constraints want.
func relevantNatures(role string) []Nature {
	switch role {
	case ROLE_DEFENSIVE:
		return []Nature{NATURE_BOLD, NATURE_IMPISH, NATURE_CALM, NATURE_CAREFUL, NATURE_SERIOUS}
	case ROLE_PHYSICAL:
		return []Nature{NATURE_ADAMANT, NATURE_JOLLY, NATURE_BRAVE, NATURE_LONELY, NATURE_NAUGHTY, NATURE_SERIOUS}
	case ROLE_SPECIAL:
		return []Nature{NATURE_MODEST, NATURE_TIMID, NATURE_QUIET, NATURE_MILD, NATURE_RASH, NATURE_SERIOUS}
	default:
		return []Nature{NATURE_ADAMANT, NATURE_MODEST, NATURE_JOLLY, NATURE_TIMID, NATURE_SERIOUS}
	}
}

func solveForNature(req SpreadRequest, nature Nature) ([6]int, spreadPartial, bool, error) {
	var evs [6]int
	partial := spreadPartial{bestSurvivalPct: math.Inf(-1), bestDamagePct: math.Inf(-1)}
	budget := req.MaxTotalEvs

	if req.SpeedTarget > 0 {
		res := FindSpeedEvs(req.Species.Speed, req.SpeedTarget, nature, req.Ivs[5], req.Level)
		if !res.Reachable {
			partial.closestSpeed = res.MaxAchievable
			return evs, partial, false, nil
		}
		evs[5] = res.Evs
		budget -= res.Evs
	}

	if req.Survive != nil {
		hpEvs, defEvs, bestPct, found, err := solveSurvival(req, nature, evs, budget)
		partial.bestSurvivalPct = bestPct
		if err != nil {
			return evs, partial, false, err
		}
		if !found {
			return evs, partial, false, nil
		}
		evs[0] = hpEvs
		evs[survivalDefenseSlot(req.Survive.Move)] = defEvs
		budget -= hpEvs + defEvs
	}

	if req.Offense != nil {
		slot := 1
		if req.Offense.Move.Category == DAMAGETYPE_SPECIAL {
			slot = 3
		}
		offEvs, bestPct, found, err := solveOffense(req, nature, evs, budget, slot)
		partial.bestDamagePct = bestPct
		if err != nil {
			return evs, partial, false, err
		}
		if !found {
			return evs, partial, false, nil
		}
		evs[slot] = offEvs
	}

	return evs, partial, true, nil
}

func survivalDefenseSlot(move Move) int {
	if move.Category == DAMAGETYPE_SPECIAL {
		return 4
	}
	return 2
}

// solveSurvival walks HP breakpoints outward, and for each, defensive
// breakpoints, taking the first pair that survives. Both axes help
// monotonically, so the first hit along this walk is a valid stopping
// point even though it is biased toward low HP investment.
func solveSurvival(req SpreadRequest, nature Nature, evs [6]int, budget int) (int, int, float64, bool, error) {
	c := req.Survive
	defSlot := survivalDefenseSlot(c.Move)
	bestPct := math.Inf(-1)

	for _, hpEvs := range EV_BREAKPOINTS {
		if hpEvs > budget {
			break
		}
		for _, defEvs := range EV_BREAKPOINTS {
			if defEvs > budget-hpEvs {
				break
			}

			candidate := evs
			candidate[0] = hpEvs
			candidate[defSlot] = defEvs

			defender := assembleBattler(req.Species, req.Level, nature, candidate, req.Ivs, req.Ability, req.Item, req.TeraType)
			out, err := computeRolls(c.Attacker, defender, c.Move, c.Field)
			if err != nil {
				return 0, 0, bestPct, false, err
			}

			remaining := defender.MaxHp - out.rolls[DAMAGE_ROLL_COUNT-1]
			pct := float64(remaining) / float64(defender.MaxHp) * 100
			if pct > bestPct {
				bestPct = pct
			}

			if remaining > 0 && pct >= c.MinHpRemaining {
				return hpEvs, defEvs, bestPct, true, nil
			}
		}
	}

	return 0, 0, bestPct, false, nil
}

// solveOffense binary searches offensive breakpoints for the cheapest
// KO, which is sound because damage never decreases as attack EVs rise.
func solveOffense(req SpreadRequest, nature Nature, evs [6]int, budget int, slot int) (int, float64, bool, error) {
	c := req.Offense
	budgetCap := min(budget, MAX_EV)
	if budgetCap < 0 {
		budgetCap = 0
	}

	// Breakpoints up to and including the affordable cap.
	n := sort.SearchInts(EV_BREAKPOINTS[:], budgetCap+1)
	if n == 0 {
		return 0, 0, false, nil
	}

	check := func(offEvs int) (bool, float64, error) {
		candidate := evs
		candidate[slot] = offEvs

		attacker := assembleBattler(req.Species, req.Level, nature, candidate, req.Ivs, req.Ability, req.Item, req.TeraType)
		out, err := computeRolls(attacker, c.Defender, c.Move, c.Field)
		if err != nil {
			return false, 0, err
		}
		if out.immune {
			return false, 0, nil
		}

		hp := c.Defender.MaxHp
		pct := float64(out.rolls[DAMAGE_ROLL_COUNT-1]) / float64(hp) * 100

		if c.RequireGuaranteed {
			return out.rolls[0] >= hp, pct, nil
		}
		return out.rolls[DAMAGE_ROLL_COUNT-1] >= hp, pct, nil
	}

	// Best partial comes from the ceiling of what the budget allows.
	_, bestPct, err := check(EV_BREAKPOINTS[n-1])
	if err != nil {
		return 0, bestPct, false, err
	}

	idx := sort.Search(n, func(i int) bool {
		ok, _, checkErr := check(EV_BREAKPOINTS[i])
		if checkErr != nil {
			err = checkErr
		}
		return ok
	})
	if err != nil {
		return 0, bestPct, false, err
	}
	if idx == n {
		return 0, bestPct, false, nil
	}

	return EV_BREAKPOINTS[idx], bestPct, true, nil
}

func distributeLeftover(evs [6]int, remaining int, role string) [6]int {
	if remaining <= 0 {
		return evs
	}

	current := make(map[string]int, len(statOrder))
	for i, name := range statOrder {
		current[name] = evs[i]
	}

	var priority []string
	switch role {
	case ROLE_PHYSICAL:
		priority = []string{STAT_ATTACK}
	case ROLE_SPECIAL:
		priority = []string{STAT_SPATTACK}
	case ROLE_DEFENSIVE:
		priority = []string{STAT_HP, STAT_DEFENSE, STAT_SPDEF}
	}

	distributed := DistributeRemainingEvs(current, remaining, priority)
	for i, name := range statOrder {
		evs[i] = distributed[name]
	}

	return evs
}

func assembleBattler(species *Species, level int, nature Nature, evs, ivs [6]int, ability, item string, teraType *PokemonType) Battler {
	b := Battler{
		Base:     species,
		Level:    level,
		Nature:   nature,
		Ability:  ability,
		Item:     item,
		TeraType: teraType,
		Hp:       HpStat{Ev: evs[0], Iv: ivs[0]},
		Attack:   Stat{Ev: evs[1], Iv: ivs[1]},
		Def:      Stat{Ev: evs[2], Iv: ivs[2]},
		SpAttack: Stat{Ev: evs[3], Iv: ivs[3]},
		SpDef:    Stat{Ev: evs[4], Iv: ivs[4]},
		RawSpeed: Stat{Ev: evs[5], Iv: ivs[5]},
	}
	b.ReCalcStats()

	return b
}

func statBlock(b Battler) [6]int {
	return [6]int{
		b.MaxHp,
		b.Attack.RawValue,
		b.Def.RawValue,
		b.SpAttack.RawValue,
		b.SpDef.RawValue,
		b.RawSpeed.RawValue,
	}
}

// natureScore values the stats a role actually uses, minus an EV-spent
// penalty so efficient natures win over ones that merely inflate the
// biggest base stat.
func natureScore(role string, stats [6]int, constraintEvs int) float64 {
	var score float64
	switch role {
	case ROLE_DEFENSIVE:
		score = float64(stats[0])/2 + float64(stats[2]) + float64(stats[4]) +
			float64(min(stats[1], stats[3]))
	case ROLE_PHYSICAL:
		score = float64(stats[1]) + float64(stats[5]) + float64(stats[0])/2
	case ROLE_SPECIAL:
		score = float64(stats[3]) + float64(stats[5]) + float64(stats[0])/2
	default:
		score = 0.5*float64(stats[1]) + 0.5*float64(stats[3]) +
			float64(stats[5]) + float64(stats[0])/2
	}

	return score - float64(constraintEvs)/100
}

func buildReasoning(req SpreadRequest, nature Nature, evs [6]int, stats [6]int, savings int) string {
	parts := make([]string, 0, 4)

	boosted := ""
	for i, mod := range nature.StatModifiers {
		if mod > 1 {
			boosted = DisplayName(statOrder[i+1])
			break
		}
	}
	if boosted != "" {
		parts = append(parts, fmt.Sprintf("%s's +%s boost", nature.Name, boosted))
	} else {
		parts = append(parts, fmt.Sprintf("%s nature", nature.Name))
	}

	if req.SpeedTarget > 0 {
		parts = append(parts, fmt.Sprintf("requires %d Speed EVs to hit %d Speed", evs[5], req.SpeedTarget))
	}

	if req.Survive != nil {
		defSlot := survivalDefenseSlot(req.Survive.Move)
		parts = append(parts, fmt.Sprintf("survives with %d HP / %d %s EVs", evs[0], evs[defSlot], DisplayName(statOrder[defSlot])))
	}

	if req.Offense != nil {
		slot := 1
		if req.Offense.Move.Category == DAMAGETYPE_SPECIAL {
			slot = 3
		}
		parts = append(parts, fmt.Sprintf("maximizes %s (%d)", DisplayName(statOrder[slot]), stats[slot]))
	}

	if savings > 0 {
		parts = append(parts, fmt.Sprintf("saves %d EVs vs neutral nature", savings))
	}

	return strings.Join(parts, ", ") + "."
}

func mergePartials(a, b spreadPartial) spreadPartial {
	if b.closestSpeed > a.closestSpeed {
		a.closestSpeed = b.closestSpeed
	}
	if b.bestSurvivalPct > a.bestSurvivalPct {
		a.bestSurvivalPct = b.bestSurvivalPct
	}
	if b.bestDamagePct > a.bestDamagePct {
		a.bestDamagePct = b.bestDamagePct
	}

	return a
}
