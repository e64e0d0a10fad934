package vgccalc

import (
	"fmt"
	"math"
	"strings"
)

// KOProbability holds exact KO chances computed from the full roll
// distribution rather than eyeballed from the min/max percents.
type KOProbability struct {
	Ohko     float64
	TwoHko   float64
	ThreeHko float64
	FourHko  float64

	// GuaranteedIn is the hit count that KOs on minimum rolls, 0 when
	// even four minimum rolls fall short.
	GuaranteedIn int

	RollsThatOhko     int
	Verdict           string
	TotalCombinations int
}

func round2(num float64) float64 {
	return math.Round(num*100) / 100
}

// CalcKOProbability counts, over every combination of up to four rolls,
// how many reach the defender's HP. 16 rolls means 16^n combinations
// per hit count, all equally likely.
func CalcKOProbability(rolls []int, defenderHp int) KOProbability {
	if len(rolls) == 0 {
		return KOProbability{Verdict: "No damage"}
	}

	nRolls := len(rolls)

	ohkoCount := 0
	for _, r := range rolls {
		if r >= defenderHp {
			ohkoCount++
		}
	}
	ohko := float64(ohkoCount) / float64(nRolls) * 100

	twoHkoCount := 0
	for _, r1 := range rolls {
		for _, r2 := range rolls {
			if r1+r2 >= defenderHp {
				twoHkoCount++
			}
		}
	}
	twoHko := float64(twoHkoCount) / float64(nRolls*nRolls) * 100

	threeHkoCount := 0
	for _, r1 := range rolls {
		for _, r2 := range rolls {
			for _, r3 := range rolls {
				if r1+r2+r3 >= defenderHp {
					threeHkoCount++
				}
			}
		}
	}
	threeHko := float64(threeHkoCount) / float64(nRolls*nRolls*nRolls) * 100

	fourHkoCount := 0
	for _, r1 := range rolls {
		for _, r2 := range rolls {
			for _, r3 := range rolls {
				for _, r4 := range rolls {
					if r1+r2+r3+r4 >= defenderHp {
						fourHkoCount++
					}
				}
			}
		}
	}
	fourHko := float64(fourHkoCount) / float64(nRolls*nRolls*nRolls*nRolls) * 100

	minDamage := rolls[0]
	for _, r := range rolls {
		if r < minDamage {
			minDamage = r
		}
	}

	guaranteedIn := 0
	switch {
	case minDamage >= defenderHp:
		guaranteedIn = 1
	case minDamage*2 >= defenderHp:
		guaranteedIn = 2
	case minDamage*3 >= defenderHp:
		guaranteedIn = 3
	case minDamage*4 >= defenderHp:
		guaranteedIn = 4
	}

	return KOProbability{
		Ohko:              round2(ohko),
		TwoHko:            round2(twoHko),
		ThreeHko:          round2(threeHko),
		FourHko:           round2(fourHko),
		GuaranteedIn:      guaranteedIn,
		RollsThatOhko:     ohkoCount,
		Verdict:           formatKoVerdict(ohko, twoHko, threeHko, fourHko, guaranteedIn),
		TotalCombinations: nRolls,
	}
}

// MultiHitKOProbability enumerates all 16^hitCount independent rolls of
// a multi-hit move. There is no 2HKO tier here, the move either KOs
// within its hits or it does not.
func MultiHitKOProbability(perHitRolls []int, hitCount int, defenderHp int) KOProbability {
	if len(perHitRolls) == 0 || hitCount <= 0 {
		return KOProbability{Verdict: "No damage"}
	}

	// Convolve the per-hit distribution. Sums past the KO point all
	// land in one bucket so the map stays small.
	counts := map[int]int{0: 1}
	for h := 0; h < hitCount; h++ {
		next := make(map[int]int, len(counts))
		for sum, ways := range counts {
			for _, roll := range perHitRolls {
				total := sum + roll
				if total > defenderHp {
					total = defenderHp
				}
				next[total] += ways
			}
		}
		counts = next
	}

	totalCombos := 1
	for h := 0; h < hitCount; h++ {
		totalCombos *= len(perHitRolls)
	}

	koCombos := counts[defenderHp]
	ohko := float64(koCombos) / float64(totalCombos) * 100

	guaranteedIn := 0
	if koCombos == totalCombos {
		guaranteedIn = 1
	}

	var verdict string
	switch {
	case guaranteedIn == 1:
		verdict = "Guaranteed OHKO"
	case ohko >= 99.9:
		verdict = "Guaranteed OHKO"
	case ohko > 0:
		verdict = fmt.Sprintf("%.2f%% chance to OHKO", ohko)
	default:
		verdict = "Does not KO"
	}

	return KOProbability{
		Ohko:              round2(ohko),
		GuaranteedIn:      guaranteedIn,
		RollsThatOhko:     koCombos,
		Verdict:           verdict,
		TotalCombinations: totalCombos,
	}
}

func formatKoVerdict(ohko, twoHko, threeHko, fourHko float64, guaranteedIn int) string {
	switch {
	case guaranteedIn == 1:
		return "Guaranteed OHKO"
	case ohko >= 99.9:
		return "Guaranteed OHKO"
	case ohko > 0:
		return fmt.Sprintf("%.2f%% chance to OHKO", ohko)
	case guaranteedIn == 2:
		return "Guaranteed 2HKO"
	case twoHko >= 99.9:
		return "Guaranteed 2HKO"
	case twoHko > 0:
		return fmt.Sprintf("%.2f%% chance to 2HKO", twoHko)
	case guaranteedIn == 3:
		return "Guaranteed 3HKO"
	case threeHko >= 99.9:
		return "Guaranteed 3HKO"
	case threeHko > 0:
		return fmt.Sprintf("%.2f%% chance to 3HKO", threeHko)
	case guaranteedIn == 4:
		return "Guaranteed 4HKO"
	case fourHko >= 99.9:
		return "Guaranteed 4HKO"
	case fourHko > 0:
		return fmt.Sprintf("%.2f%% chance to 4HKO", fourHko)
	default:
		return "5+ HKO"
	}
}

// DamageVerdict is the coarser two-point analysis used when only the
// min and max percents are known, as in bulk scans where running the
// full 16-roll count for every candidate spread would be wasted work.
type DamageVerdict struct {
	MinPercent  float64
	MaxPercent  float64
	Verdict     string
	Description string

	// ChipNeeded is the prior damage percent that turns a possible KO
	// into a guaranteed one, 0 when not applicable.
	ChipNeeded   float64
	IsGuaranteed bool
}

// VerdictFromPercents grades a min/max damage pair. Guarantee
// thresholds are 100/50/34/25 for OHKO through 4HKO: three min rolls
// of 34% make 102%, which covers rounding.
func VerdictFromPercents(minPercent, maxPercent float64) DamageVerdict {
	if minPercent >= 100 {
		return DamageVerdict{
			MinPercent:   minPercent,
			MaxPercent:   maxPercent,
			Verdict:      "Guaranteed OHKO",
			Description:  fmt.Sprintf("%.0f-%.0f%% - Guaranteed OHKO", minPercent, maxPercent),
			IsGuaranteed: true,
		}
	}

	if maxPercent >= 100 {
		ohkoChance := 100.0
		if maxPercent > minPercent {
			ohkoChance = (maxPercent - 100) / (maxPercent - minPercent) * 100
		}
		return DamageVerdict{
			MinPercent:  minPercent,
			MaxPercent:  maxPercent,
			Verdict:     "Possible OHKO",
			Description: fmt.Sprintf("%.0f-%.0f%% - %.0f%% chance to OHKO", minPercent, maxPercent, ohkoChance),
			ChipNeeded:  100 - minPercent,
		}
	}

	if minPercent >= 50 {
		return DamageVerdict{
			MinPercent:   minPercent,
			MaxPercent:   maxPercent,
			Verdict:      "Guaranteed 2HKO",
			Description:  fmt.Sprintf("%.0f-%.0f%% - Guaranteed 2HKO", minPercent, maxPercent),
			IsGuaranteed: true,
		}
	}

	if maxPercent >= 50 {
		chip := 100 - minPercent*2
		return DamageVerdict{
			MinPercent:  minPercent,
			MaxPercent:  maxPercent,
			Verdict:     "Possible 2HKO",
			Description: fmt.Sprintf("%.0f-%.0f%% - 2HKO with good rolls, needs ~%.0f%% chip to guarantee", minPercent, maxPercent, chip),
			ChipNeeded:  chip,
		}
	}

	if minPercent >= 34 {
		return DamageVerdict{
			MinPercent:   minPercent,
			MaxPercent:   maxPercent,
			Verdict:      "Guaranteed 3HKO",
			Description:  fmt.Sprintf("%.0f-%.0f%% - Guaranteed 3HKO", minPercent, maxPercent),
			IsGuaranteed: true,
		}
	}

	if maxPercent >= 34 {
		chip := 100 - minPercent*3
		if chip > 0 {
			return DamageVerdict{
				MinPercent:  minPercent,
				MaxPercent:  maxPercent,
				Verdict:     "Possible 3HKO",
				Description: fmt.Sprintf("%.0f-%.0f%% - 3HKO range, needs ~%.0f%% prior damage to guarantee", minPercent, maxPercent, chip),
				ChipNeeded:  chip,
			}
		}
		return DamageVerdict{
			MinPercent:  minPercent,
			MaxPercent:  maxPercent,
			Verdict:     "Possible 3HKO",
			Description: fmt.Sprintf("%.0f-%.0f%% - Possible 3HKO", minPercent, maxPercent),
		}
	}

	if maxPercent >= 25 {
		return DamageVerdict{
			MinPercent:  minPercent,
			MaxPercent:  maxPercent,
			Verdict:     "4HKO",
			Description: fmt.Sprintf("%.0f-%.0f%% - 4HKO range, chip damage", minPercent, maxPercent),
		}
	}

	return DamageVerdict{
		MinPercent:  minPercent,
		MaxPercent:  maxPercent,
		Verdict:     "Chip",
		Description: fmt.Sprintf("%.0f-%.0f%% - Minor chip damage only", minPercent, maxPercent),
	}
}

// FormatMatchupVerdict folds speed order and the return hit into one
// display line.
func FormatMatchupVerdict(minPercent, maxPercent float64, attackerFaster, defenderSurvivesCounter bool, moveName string) string {
	verdict := VerdictFromPercents(minPercent, maxPercent)

	parts := make([]string, 0, 4)
	if moveName != "" {
		parts = append(parts, moveName)
	}
	parts = append(parts, verdict.Description)

	ohkoRange := verdict.Verdict == "Guaranteed OHKO" || verdict.Verdict == "Possible OHKO"
	if ohkoRange {
		if attackerFaster {
			parts = append(parts, "(you move first)")
		} else {
			parts = append(parts, "(but they move first)")
		}
	}

	if !defenderSurvivesCounter && verdict.Verdict != "Guaranteed OHKO" {
		parts = append(parts, "- WARNING: You get KO'd back")
	}

	return strings.Join(parts, " ")
}
