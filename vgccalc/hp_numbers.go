package vgccalc

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"
)

// Recovery and recoil floor against max HP, so one point of HP can
// change what an item gives or takes every turn. Leftovers wants HP
// divisible by 16, Life Orb wants 10n-1, Sitrus wants divisible by 4.
const (
	hpCategoryNone = iota
	hpCategoryRecovery16
	hpCategoryRecoil10
	hpCategoryHeal4
)

var recovery16Items = []string{"leftovers", "black-sludge", "grassy-terrain"}
var recoil10Items = []string{"life-orb"}
var heal4Items = []string{"sitrus-berry"}

func hpItemCategory(item string) int {
	normalized := NormalizeItem(item)
	switch {
	case lo.Contains(recovery16Items, normalized):
		return hpCategoryRecovery16
	case lo.Contains(recoil10Items, normalized):
		return hpCategoryRecoil10
	case lo.Contains(heal4Items, normalized):
		return hpCategoryHeal4
	}

	return hpCategoryNone
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// ScoreHpForItem rates an HP stat from 0 to 1 for how well it plays
// with the given item's floor division. Items with no HP interaction
// always score 1.
func ScoreHpForItem(hpStat int, item string) float64 {
	switch hpItemCategory(item) {
	case hpCategoryRecovery16:
		remainder := hpStat % 16
		if remainder == 0 {
			return 1
		}
		return 1 - float64(min(remainder, 16-remainder))/8

	case hpCategoryRecoil10:
		remainder := hpStat % 10
		if remainder == 9 {
			return 1
		}
		if remainder == 0 {
			return 0
		}
		return float64(remainder) / 9

	case hpCategoryHeal4:
		remainder := hpStat % 4
		if remainder == 0 {
			return 1
		}
		return 1 - float64(remainder)/3
	}

	return 1
}

// HpEvOption is one HP EV stop with its item score. RecoveryPerTurn is
// negative for recoil items.
type HpEvOption struct {
	Evs             int
	HpStat          int
	Score           float64
	RecoveryPerTurn int
	Notes           string
}

// FindOptimalHpEvs scores every HP EV breakpoint for the given item,
// best score first and cheaper EVs breaking ties.
func FindOptimalHpEvs(baseHp int, item string, iv, level int) []HpEvOption {
	category := hpItemCategory(item)
	options := make([]HpEvOption, 0, len(EV_BREAKPOINTS))

	for _, evs := range EV_BREAKPOINTS {
		hp := CalcHP(baseHp, iv, evs, level)
		score := ScoreHpForItem(hp, item)

		var recovery int
		var notes string

		switch category {
		case hpCategoryRecovery16:
			recovery = hp / 16
			if remainder := hp % 16; remainder == 0 {
				notes = fmt.Sprintf("%d %% 16 = 0 (optimal!)", hp)
			} else {
				notes = fmt.Sprintf("%d %% 16 = %d", hp, remainder)
			}

		case hpCategoryRecoil10:
			recovery = -(hp / 10)
			switch remainder := hp % 10; remainder {
			case 9:
				notes = fmt.Sprintf("%d %% 10 = 9 (optimal - min recoil!)", hp)
			case 0:
				notes = fmt.Sprintf("%d %% 10 = 0 (worst - max recoil)", hp)
			default:
				notes = fmt.Sprintf("%d %% 10 = %d", hp, remainder)
			}

		case hpCategoryHeal4:
			recovery = hp / 4
			if remainder := hp % 4; remainder == 0 {
				notes = fmt.Sprintf("%d %% 4 = 0 (optimal!)", hp)
			} else {
				notes = fmt.Sprintf("%d %% 4 = %d", hp, remainder)
			}
		}

		options = append(options, HpEvOption{
			Evs:             evs,
			HpStat:          hp,
			Score:           math.Round(score*1000) / 1000,
			RecoveryPerTurn: recovery,
			Notes:           notes,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Score != options[j].Score {
			return options[i].Score > options[j].Score
		}
		return options[i].Evs < options[j].Evs
	})

	return options
}

// HpAdjustment describes a small EV shift toward a better HP number.
type HpAdjustment struct {
	AdjustedEvs int
	OriginalHp  int
	AdjustedHp  int
	Improvement string
	EvCost      int
	ScoreBefore float64
	ScoreAfter  float64
}

// AdjustHpEvsForItem nudges an HP allocation within maxAdjustment EVs
// to land on a better number for the item, preferring the smallest
// move between equal scores.
func AdjustHpEvsForItem(baseHp, currentHpEvs int, item string, maxAdjustment, iv, level int) HpAdjustment {
	category := hpItemCategory(item)
	originalHp := CalcHP(baseHp, iv, currentHpEvs, level)
	originalScore := ScoreHpForItem(originalHp, item)

	if category == hpCategoryNone || originalScore == 1 {
		improvement := "No optimization for this item"
		if originalScore == 1 {
			improvement = "Already optimal"
		}

		return HpAdjustment{
			AdjustedEvs: currentHpEvs,
			OriginalHp:  originalHp,
			AdjustedHp:  originalHp,
			Improvement: improvement,
			ScoreBefore: math.Round(originalScore*1000) / 1000,
			ScoreAfter:  math.Round(originalScore*1000) / 1000,
		}
	}

	bestEvs := currentHpEvs
	bestScore := originalScore
	bestHp := originalHp

	for _, evs := range EV_BREAKPOINTS {
		if absInt(evs-currentHpEvs) > maxAdjustment {
			continue
		}

		hp := CalcHP(baseHp, iv, evs, level)
		score := ScoreHpForItem(hp, item)

		if score > bestScore {
			bestScore = score
			bestEvs = evs
			bestHp = hp
		} else if score == bestScore && absInt(evs-currentHpEvs) < absInt(bestEvs-currentHpEvs) {
			bestEvs = evs
			bestHp = hp
		}
	}

	var improvement string
	if bestEvs == currentHpEvs {
		improvement = "No better HP number within adjustment range"
	} else {
		switch category {
		case hpCategoryRecovery16:
			oldRecovery := originalHp / 16
			newRecovery := bestHp / 16
			if newRecovery > oldRecovery {
				improvement = fmt.Sprintf("+%d HP recovery/turn (%d -> %d)", newRecovery-oldRecovery, oldRecovery, newRecovery)
			} else {
				improvement = fmt.Sprintf("Better Leftovers number (%d %% 16 = %d)", bestHp, bestHp%16)
			}

		case hpCategoryRecoil10:
			oldRecoil := originalHp / 10
			newRecoil := bestHp / 10
			if newRecoil < oldRecoil {
				improvement = fmt.Sprintf("-%d recoil/attack (%d -> %d)", oldRecoil-newRecoil, oldRecoil, newRecoil)
			} else {
				improvement = fmt.Sprintf("Better Life Orb number (%d %% 10 = %d)", bestHp, bestHp%10)
			}

		case hpCategoryHeal4:
			oldHeal := originalHp / 4
			newHeal := bestHp / 4
			if newHeal > oldHeal {
				improvement = fmt.Sprintf("+%d Sitrus heal (%d -> %d)", newHeal-oldHeal, oldHeal, newHeal)
			} else {
				improvement = fmt.Sprintf("Better Sitrus number (%d %% 4 = %d)", bestHp, bestHp%4)
			}
		}
	}

	return HpAdjustment{
		AdjustedEvs: bestEvs,
		OriginalHp:  originalHp,
		AdjustedHp:  bestHp,
		Improvement: improvement,
		EvCost:      bestEvs - currentHpEvs,
		ScoreBefore: math.Round(originalScore*1000) / 1000,
		ScoreAfter:  math.Round(bestScore*1000) / 1000,
	}
}
