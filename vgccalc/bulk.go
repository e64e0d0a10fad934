package vgccalc

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-logr/logr"
)

var bulkLogger = func() logr.Logger {
	return internalLogger.WithName("bulk")
}

// Effective bulk is the HP x Defense product. Floors in the stat
// formulas make the true optimum a step function, so the optimizers
// here enumerate breakpoint pairs instead of solving a closed form.

// BulkRequest describes one bulk optimization. DefenseWeight slides
// between 0 (all special) and 1 (all physical).
type BulkRequest struct {
	BaseHp    int
	BaseDef   int
	BaseSpDef int
	Nature    Nature
	Level     int
	Iv        int

	TotalBulkEvs  int
	DefenseWeight float64

	// Existing EVs already committed elsewhere in the build. They count
	// toward the final stats but not against TotalBulkEvs.
	ExistingHpEvs    int
	ExistingDefEvs   int
	ExistingSpDefEvs int
}

// NewBulkRequest starts a request with the usual defaults: level 50,
// perfect IVs, 252 EVs to place, balanced weighting, neutral nature.
func NewBulkRequest(baseHp, baseDef, baseSpDef int) BulkRequest {
	return BulkRequest{
		BaseHp:        baseHp,
		BaseDef:       baseDef,
		BaseSpDef:     baseSpDef,
		Nature:        NATURE_SERIOUS,
		Level:         DEFAULT_LEVEL,
		Iv:            MAX_IV,
		TotalBulkEvs:  MAX_EV,
		DefenseWeight: 0.5,
	}
}

// BulkComparison shows the optimized split against naive single-stat
// dumps of the same budget.
type BulkComparison struct {
	AllHpBulk       int
	AllDefBulk      int
	OptimalBulk     int
	GainVsAllHpPct  float64
	GainVsAllDefPct float64
}

type BulkResult struct {
	HpEvs    int
	DefEvs   int
	SpDefEvs int

	FinalHp    int
	FinalDef   int
	FinalSpDef int

	PhysicalBulk int
	SpecialBulk  int
	TotalBulk    int

	// EfficiencyScore is optimal physical bulk over the best naive
	// dump, above 1.0 when splitting beats dumping.
	EfficiencyScore float64

	Explanation string
	Comparison  BulkComparison
}

// FindOptimalHpDefRatio splits a budget between HP and one defensive
// stat for the largest HP x Defense product, enumerating every legal
// breakpoint pair.
func FindOptimalHpDefRatio(baseHp, baseDef int, natureModDef float64, totalEvs int) (int, int) {
	bestBulk := 0
	bestHpEvs := 0
	bestDefEvs := 0

	for _, hpEvs := range EV_BREAKPOINTS {
		if hpEvs > min(MAX_EV, totalEvs) {
			break
		}
		defEvs := NormalizeEvs(totalEvs - hpEvs)

		hp := CalcHP(baseHp, MAX_IV, hpEvs, DEFAULT_LEVEL)
		defense := CalcStat(baseDef, MAX_IV, defEvs, DEFAULT_LEVEL, natureModDef)
		bulk := hp * defense

		if bulk > bestBulk {
			bestBulk = bulk
			bestHpEvs = hpEvs
			bestDefEvs = defEvs
		}
	}

	return bestHpEvs, bestDefEvs
}

// OptimizeBulk finds the best HP/Def/SpD split for the request. High
// base HP wants the EVs in defenses and vice versa; the enumeration
// discovers that without hardcoding the folklore.
func OptimizeBulk(req BulkRequest) (BulkResult, error) {
	if req.DefenseWeight < 0 || req.DefenseWeight > 1 {
		return BulkResult{}, fmt.Errorf("defense weight %.2f outside [0, 1]: %w", req.DefenseWeight, ErrInvalidInput)
	}
	if req.TotalBulkEvs < 0 || req.TotalBulkEvs > MAX_TOTAL_EV {
		return BulkResult{}, fmt.Errorf("bulk budget %d outside [0, %d]: %w", req.TotalBulkEvs, MAX_TOTAL_EV, ErrInvalidInput)
	}
	if req.ExistingHpEvs < 0 || req.ExistingDefEvs < 0 || req.ExistingSpDefEvs < 0 {
		return BulkResult{}, fmt.Errorf("negative existing EVs: %w", ErrInvalidInput)
	}
	if req.Level <= 0 {
		req.Level = DEFAULT_LEVEL
	}

	natureModDef := req.Nature.StatModifiers[1]
	natureModSpDef := req.Nature.StatModifiers[3]

	best := BulkResult{}
	bestTotal := -1

	for _, hpEvs := range EV_BREAKPOINTS {
		if hpEvs > min(MAX_EV, req.TotalBulkEvs) {
			break
		}
		remaining := req.TotalBulkEvs - hpEvs

		defEvs := NormalizeEvs(int(float64(remaining) * req.DefenseWeight))
		spDefEvs := NormalizeEvs(remaining - int(float64(remaining)*req.DefenseWeight))

		hp := CalcHP(req.BaseHp, req.Iv, hpEvs+req.ExistingHpEvs, req.Level)
		defense := CalcStat(req.BaseDef, req.Iv, defEvs+req.ExistingDefEvs, req.Level, natureModDef)
		spDefense := CalcStat(req.BaseSpDef, req.Iv, spDefEvs+req.ExistingSpDefEvs, req.Level, natureModSpDef)

		physBulk := hp * defense
		specBulk := hp * spDefense
		totalBulk := int(float64(physBulk)*req.DefenseWeight + float64(specBulk)*(1-req.DefenseWeight))

		if totalBulk > bestTotal {
			bestTotal = totalBulk
			best = BulkResult{
				HpEvs:        hpEvs,
				DefEvs:       defEvs,
				SpDefEvs:     spDefEvs,
				FinalHp:      hp,
				FinalDef:     defense,
				FinalSpDef:   spDefense,
				PhysicalBulk: physBulk,
				SpecialBulk:  specBulk,
				TotalBulk:    totalBulk,
			}
		}
	}

	// Naive dumps for the efficiency comparison. A budget past the
	// per-stat cap cannot be dumped into one stat anyway.
	dump := min(req.TotalBulkEvs, MAX_EV)

	naiveHp := CalcHP(req.BaseHp, req.Iv, dump, req.Level) *
		CalcStat(req.BaseDef, req.Iv, 0, req.Level, natureModDef)
	naiveDef := CalcHP(req.BaseHp, req.Iv, 0, req.Level) *
		CalcStat(req.BaseDef, req.Iv, dump, req.Level, natureModDef)

	naiveBest := max(naiveHp, naiveDef)
	efficiency := 1.0
	if naiveBest > 0 {
		efficiency = float64(best.PhysicalBulk) / float64(naiveBest)
	}
	best.EfficiencyScore = math.Round(efficiency*1000) / 1000

	best.Comparison = BulkComparison{
		AllHpBulk:   naiveHp,
		AllDefBulk:  naiveDef,
		OptimalBulk: best.PhysicalBulk,
	}
	if naiveHp > 0 {
		best.Comparison.GainVsAllHpPct = math.Round((float64(best.PhysicalBulk)/float64(naiveHp)-1)*1000) / 10
	}
	if naiveDef > 0 {
		best.Comparison.GainVsAllDefPct = math.Round((float64(best.PhysicalBulk)/float64(naiveDef)-1)*1000) / 10
	}

	best.Explanation = bulkExplanation(req, natureModDef, natureModSpDef, efficiency)

	bulkLogger().V(1).Info("bulk optimized",
		"hpEvs", best.HpEvs,
		"defEvs", best.DefEvs,
		"spDefEvs", best.SpDefEvs,
		"physicalBulk", best.PhysicalBulk,
		"specialBulk", best.SpecialBulk,
		"efficiency", best.EfficiencyScore,
	)

	return best, nil
}

func bulkExplanation(req BulkRequest, natureModDef, natureModSpDef, efficiency float64) string {
	parts := make([]string, 0, 3)

	switch {
	case req.BaseHp > req.BaseDef+20:
		parts = append(parts, fmt.Sprintf("High base HP (%d) means investing more in Defense is efficient", req.BaseHp))
	case req.BaseDef > req.BaseHp+20:
		parts = append(parts, fmt.Sprintf("High base Defense (%d) means investing more in HP is efficient", req.BaseDef))
	default:
		parts = append(parts, fmt.Sprintf("Balanced bases (%d HP, %d Def) benefit from split investment", req.BaseHp, req.BaseDef))
	}

	if natureModDef == 1.1 {
		parts = append(parts, "Defense-boosting nature reduces need for Defense EVs")
	} else if natureModSpDef == 1.1 {
		parts = append(parts, "SpD-boosting nature reduces need for SpD EVs")
	}

	if efficiency > 1.05 {
		parts = append(parts, fmt.Sprintf("Optimal distribution is %.1f%% more efficient than single-stat investment", (efficiency-1)*100))
	}

	return strings.Join(parts, " | ")
}

// OptimizeSurvivalBulk first buys the cheapest HP breakpoint that
// outright survives a flat damage number, then spends what is left on
// the matching defensive side.
func OptimizeSurvivalBulk(req BulkRequest, incomingDamage int, isPhysical bool) (BulkResult, error) {
	if req.Level <= 0 {
		req.Level = DEFAULT_LEVEL
	}
	if req.TotalBulkEvs <= 0 {
		req.TotalBulkEvs = MAX_TOTAL_EV
	}

	minHpEvs := 0
	for _, hpEvs := range EV_BREAKPOINTS {
		if hpEvs > min(MAX_EV, req.TotalBulkEvs) {
			break
		}
		if CalcHP(req.BaseHp, req.Iv, hpEvs, req.Level) > incomingDamage {
			minHpEvs = hpEvs
			break
		}
	}

	remaining := req.TotalBulkEvs - minHpEvs

	rest := req
	rest.TotalBulkEvs = remaining
	rest.ExistingHpEvs += minHpEvs
	if isPhysical {
		rest.DefenseWeight = 1.0
	} else {
		rest.DefenseWeight = 0.0
	}

	result, err := OptimizeBulk(rest)
	if err != nil {
		return BulkResult{}, err
	}
	result.HpEvs += minHpEvs

	return result, nil
}

// MarginalGain is the stat increase from four more EVs, the unit
// callers use to see diminishing returns.
func MarginalGain(baseStat, currentEvs int, statName string, natureMod float64) int {
	next := min(MAX_EV, currentEvs+4)

	if statName == STAT_HP {
		return CalcHP(baseStat, MAX_IV, next, DEFAULT_LEVEL) - CalcHP(baseStat, MAX_IV, currentEvs, DEFAULT_LEVEL)
	}

	return CalcStat(baseStat, MAX_IV, next, DEFAULT_LEVEL, natureMod) -
		CalcStat(baseStat, MAX_IV, currentEvs, DEFAULT_LEVEL, natureMod)
}

type MarginalGainPoint struct {
	Evs  int
	Gain int
}

type BulkReturnsAnalysis struct {
	HpGains    []MarginalGainPoint
	DefGains   []MarginalGainPoint
	SpDefGains []MarginalGainPoint

	Recommendations []string
}

// AnalyzeDiminishingReturns samples marginal gains at spaced EV levels
// for HP and both defenses.
func AnalyzeDiminishingReturns(baseHp, baseDef, baseSpDef int, nature Nature) BulkReturnsAnalysis {
	natureModDef := nature.StatModifiers[1]
	natureModSpDef := nature.StatModifiers[3]

	thresholds := []int{0, 52, 100, 148, 196, 244, 252}

	analysis := BulkReturnsAnalysis{
		HpGains:    make([]MarginalGainPoint, 0, len(thresholds)),
		DefGains:   make([]MarginalGainPoint, 0, len(thresholds)),
		SpDefGains: make([]MarginalGainPoint, 0, len(thresholds)),
	}

	for _, evs := range thresholds {
		analysis.HpGains = append(analysis.HpGains, MarginalGainPoint{Evs: evs, Gain: MarginalGain(baseHp, evs, STAT_HP, 1)})
		analysis.DefGains = append(analysis.DefGains, MarginalGainPoint{Evs: evs, Gain: MarginalGain(baseDef, evs, STAT_DEFENSE, natureModDef)})
		analysis.SpDefGains = append(analysis.SpDefGains, MarginalGainPoint{Evs: evs, Gain: MarginalGain(baseSpDef, evs, STAT_SPDEF, natureModSpDef)})
	}

	if baseHp > 100 {
		analysis.Recommendations = append(analysis.Recommendations,
			fmt.Sprintf("High base HP (%d): Consider investing more in defenses", baseHp))
	} else if baseHp < 70 {
		analysis.Recommendations = append(analysis.Recommendations,
			fmt.Sprintf("Low base HP (%d): HP investment is efficient early", baseHp))
	}

	if baseDef > 100 || natureModDef == 1.1 {
		analysis.Recommendations = append(analysis.Recommendations,
			"High Defense: HP investment has better marginal returns")
	}
	if baseSpDef > 100 || natureModSpDef == 1.1 {
		analysis.Recommendations = append(analysis.Recommendations,
			"High SpD: HP investment has better marginal returns")
	}

	return analysis
}
