package vgccalc

import (
	"fmt"
	"sort"
)

// CalcHP computes max HP: floor((2*base + iv + ev/4) * level/100) + level + 10.
// Species with 1 base HP stay at 1 no matter the investment.
func CalcHP(base, iv, ev, level int) int {
	if base == 1 {
		return 1
	}

	return (2*base+iv+ev/4)*level/100 + level + 10
}

// CalcStat computes a non-HP stat:
// floor((floor((2*base + iv + ev/4) * level/100) + 5) * natureMod).
// The inner floor runs before the +5 and the nature applies after it,
// which is what makes level 50 EV breakpoints land where they do.
func CalcStat(base, iv, ev, level int, natureMod float64) int {
	inner := (2*base + iv + ev/4) * level / 100

	return int(float64(inner+5) * natureMod)
}

// NormalizeEvs rounds an EV amount down to the closest legal stop at
// level 50 and caps it at 252. Amounts between stops buy nothing.
func NormalizeEvs(evs int) int {
	if evs <= 0 {
		return 0
	}
	if evs > MAX_EV {
		evs = MAX_EV
	}

	idx := sort.SearchInts(EV_BREAKPOINTS[:], evs)
	if idx < len(EV_BREAKPOINTS) && EV_BREAKPOINTS[idx] == evs {
		return evs
	}

	return EV_BREAKPOINTS[idx-1]
}

// CreateEvSpread validates a full EV allocation in the order
// HP, Attack, Def, SpAttack, SpDef, Speed.
func CreateEvSpread(hp, attack, def, spAttack, spDef, speed int) ([6]int, error) {
	evs := [6]int{hp, attack, def, spAttack, spDef, speed}

	total := 0
	for _, ev := range evs {
		if ev < 0 || ev > MAX_EV {
			return [6]int{}, fmt.Errorf("ev value %d is outside 0 to %d: %w", ev, MAX_EV, ErrInvalidInput)
		}

		total += ev
	}

	if total > MAX_TOTAL_EV {
		return [6]int{}, fmt.Errorf("ev total %d is over the %d budget: %w", total, MAX_TOTAL_EV, ErrInvalidInput)
	}

	return evs, nil
}

// CreateIvSpread validates a full IV spread, same stat order as
// CreateEvSpread.
func CreateIvSpread(hp, attack, def, spAttack, spDef, speed int) ([6]int, error) {
	ivs := [6]int{hp, attack, def, spAttack, spDef, speed}

	for _, iv := range ivs {
		if iv < 0 || iv > MAX_IV {
			return [6]int{}, fmt.Errorf("iv value %d is outside 0 to %d: %w", iv, MAX_IV, ErrInvalidInput)
		}
	}

	return ivs, nil
}

// EvSearchResult is the outcome of a minimal-EV search. When the target
// cannot be bought, Reachable is false, Evs holds the full 252 and Stat
// and MaxAchievable hold the best value that investment gives.
type EvSearchResult struct {
	Evs           int
	Stat          int
	Reachable     bool
	MaxAchievable int
}

// MinEvsForStat finds the smallest legal EV amount whose stat reaches
// target. The stat is monotone in EVs so this is a binary search over
// the breakpoint ladder.
func MinEvsForStat(base, iv, level int, natureMod float64, target int) EvSearchResult {
	idx := sort.Search(len(EV_BREAKPOINTS), func(i int) bool {
		return CalcStat(base, iv, EV_BREAKPOINTS[i], level, natureMod) >= target
	})

	maxStat := CalcStat(base, iv, MAX_EV, level, natureMod)
	if idx == len(EV_BREAKPOINTS) {
		internalLogger.V(2).Info("stat target unreachable", "base", base, "target", target, "maxAchievable", maxStat)

		return EvSearchResult{Evs: MAX_EV, Stat: maxStat, Reachable: false, MaxAchievable: maxStat}
	}

	evs := EV_BREAKPOINTS[idx]

	return EvSearchResult{
		Evs:           evs,
		Stat:          CalcStat(base, iv, evs, level, natureMod),
		Reachable:     true,
		MaxAchievable: maxStat,
	}
}

// MinEvsForHp is MinEvsForStat for the HP formula.
func MinEvsForHp(base, iv, level, target int) EvSearchResult {
	idx := sort.Search(len(EV_BREAKPOINTS), func(i int) bool {
		return CalcHP(base, iv, EV_BREAKPOINTS[i], level) >= target
	})

	maxHp := CalcHP(base, iv, MAX_EV, level)
	if idx == len(EV_BREAKPOINTS) {
		return EvSearchResult{Evs: MAX_EV, Stat: maxHp, Reachable: false, MaxAchievable: maxHp}
	}

	evs := EV_BREAKPOINTS[idx]

	return EvSearchResult{
		Evs:           evs,
		Stat:          CalcHP(base, iv, evs, level),
		Reachable:     true,
		MaxAchievable: maxHp,
	}
}

// WastedEvs reports how many EVs can be pulled from a non-HP stat
// without lowering it.
func WastedEvs(base, iv, ev, level int, natureMod float64) int {
	current := CalcStat(base, iv, ev, level, natureMod)

	wasted := 0
	for back := 1; back <= ev; back++ {
		if CalcStat(base, iv, ev-back, level, natureMod) < current {
			break
		}
		wasted = back
	}

	return wasted
}

// WastedHpEvs is WastedEvs for the HP formula.
func WastedHpEvs(base, iv, ev, level int) int {
	current := CalcHP(base, iv, ev, level)

	wasted := 0
	for back := 1; back <= ev; back++ {
		if CalcHP(base, iv, ev-back, level) < current {
			break
		}
		wasted = back
	}

	return wasted
}

// GetMaxSpeed is the ceiling a species can reach: +Speed nature, 31 IV,
// 252 EVs.
func GetMaxSpeed(baseSpeed, level int) int {
	return CalcStat(baseSpeed, MAX_IV, MAX_EV, level, NATURE_JOLLY.StatModifiers[4])
}

// GetMinSpeed is the floor: -Speed nature, 0 IV, 0 EVs.
func GetMinSpeed(baseSpeed, level int) int {
	return CalcStat(baseSpeed, 0, 0, level, NATURE_BRAVE.StatModifiers[4])
}

// FindSpeedEvs finds the cheapest EV amount that reaches targetSpeed
// with the given nature and IV.
func FindSpeedEvs(baseSpeed, targetSpeed int, nature Nature, iv, level int) EvSearchResult {
	return MinEvsForStat(baseSpeed, iv, level, nature.StatModifiers[4], targetSpeed)
}

// DistributeRemainingEvs spends a leftover budget across stats in
// priority order, only ever landing on legal stops. Stats already at the
// per-stat cap are skipped. The input map is not modified.
func DistributeRemainingEvs(currentEvs map[string]int, remaining int, priorityStats []string) map[string]int {
	result := make(map[string]int, len(currentEvs))
	for stat, ev := range currentEvs {
		result[stat] = ev
	}

	if remaining <= 0 {
		return result
	}

	allStats := []string{STAT_HP, STAT_ATTACK, STAT_DEFENSE, STAT_SPATTACK, STAT_SPDEF, STAT_SPEED}

	// Offense first, then bulk, unless the caller says otherwise.
	if priorityStats == nil {
		priorityStats = []string{STAT_ATTACK, STAT_SPATTACK, STAT_DEFENSE, STAT_SPDEF, STAT_HP}
	}

	order := make([]string, 0, len(allStats))
	seen := make(map[string]bool, len(allStats))
	for _, stat := range priorityStats {
		normalized := NormalizeStatName(stat)
		if !seen[normalized] && normalized != "" {
			order = append(order, normalized)
			seen[normalized] = true
		}
	}
	for _, stat := range allStats {
		if !seen[stat] {
			order = append(order, stat)
			seen[stat] = true
		}
	}

	evsLeft := remaining
	for _, stat := range order {
		if evsLeft <= 0 {
			break
		}

		current := result[stat]
		if current >= MAX_EV {
			continue
		}

		// Largest addition that keeps the stat total on the ladder.
		addable := min(evsLeft, MAX_EV-current)
		for i := len(EV_BREAKPOINTS) - 1; i >= 1; i-- {
			bp := EV_BREAKPOINTS[i]
			if bp > addable {
				continue
			}
			if NormalizeEvs(current+bp) == current+bp {
				result[stat] = current + bp
				evsLeft -= bp
				break
			}
		}
	}

	return result
}
