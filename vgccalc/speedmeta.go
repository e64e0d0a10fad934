package vgccalc

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

var speedLogger = func() logr.Logger {
	return internalLogger.WithName("speed")
}

// SpeedSample is one population member: a nature, a speed investment
// and how much of the population runs it.
type SpeedSample struct {
	Nature   string
	SpeedEvs int
	Weight   float64
}

// SpeedPoint is a resolved sample: final speed stat plus the share of
// the population sitting on it. Pokemon is only set when the point
// came from a multi-species histogram.
type SpeedPoint struct {
	Speed    int
	UsagePct float64
	Nature   string
	SpeedEvs int
	Pokemon  string
}

// SpeedTierResult answers "how often do I move first" against one
// opponent's spread population. The three probabilities sum to 100, a
// tie is its own bucket since the games coin flip it.
type SpeedTierResult struct {
	YourSpeed       int
	TargetName      string
	TargetBaseSpeed int

	OutspeedPct   float64
	TiePct        float64
	UnderspeedPct float64

	Distribution []SpeedPoint
	Analysis     string
}

func round1(num float64) float64 {
	return math.Round(num*10) / 10
}

// speedNatureMod resolves a nature name to its speed modifier, treating
// anything unrecognized as neutral. Population data is scraped and
// occasionally carries junk nature strings.
func speedNatureMod(natureName string) float64 {
	nature, err := GetNature(natureName)
	if err != nil {
		return 1
	}

	return nature.StatModifiers[4]
}

// CalcSpeedStat computes the final speed stat for a population sample.
func CalcSpeedStat(baseSpeed int, natureName string, speedEvs, iv, level int) int {
	return CalcStat(baseSpeed, iv, speedEvs, level, speedNatureMod(natureName))
}

// OutspeedProbability splits a target's spread population into faster,
// tied and slower shares relative to yourSpeed, re-normalized to 100%
// since usage data rarely sums cleanly.
func OutspeedProbability(yourSpeed, targetBaseSpeed int, samples []SpeedSample, targetName string) SpeedTierResult {
	if len(samples) == 0 {
		return SpeedTierResult{
			YourSpeed:       yourSpeed,
			TargetName:      targetName,
			TargetBaseSpeed: targetBaseSpeed,
			UnderspeedPct:   100,
			Analysis:        fmt.Sprintf("No spread data available for %s", targetName),
		}
	}

	var outspeed, tie, underspeed float64
	distribution := make([]SpeedPoint, 0, len(samples))

	for _, sample := range samples {
		targetSpeed := CalcSpeedStat(targetBaseSpeed, sample.Nature, sample.SpeedEvs, MAX_IV, DEFAULT_LEVEL)

		distribution = append(distribution, SpeedPoint{
			Speed:    targetSpeed,
			UsagePct: sample.Weight,
			Nature:   sample.Nature,
			SpeedEvs: sample.SpeedEvs,
		})

		switch {
		case yourSpeed > targetSpeed:
			outspeed += sample.Weight
		case yourSpeed == targetSpeed:
			tie += sample.Weight
		default:
			underspeed += sample.Weight
		}
	}

	sort.Slice(distribution, func(i, j int) bool {
		return distribution[i].Speed > distribution[j].Speed
	})

	outspeedPct, tiePct, underspeedPct := normalizeShares(outspeed, tie, underspeed)

	return SpeedTierResult{
		YourSpeed:       yourSpeed,
		TargetName:      targetName,
		TargetBaseSpeed: targetBaseSpeed,
		OutspeedPct:     round1(outspeedPct),
		TiePct:          round1(tiePct),
		UnderspeedPct:   round1(underspeedPct),
		Distribution:    distribution,
		Analysis:        speedAnalysis(targetName, outspeedPct, tiePct, underspeedPct),
	}
}

func normalizeShares(outspeed, tie, underspeed float64) (float64, float64, float64) {
	total := outspeed + tie + underspeed
	if total <= 0 {
		return 0, 0, 100
	}

	return outspeed / total * 100, tie / total * 100, underspeed / total * 100
}

func speedAnalysis(targetName string, outspeedPct, tiePct, underspeedPct float64) string {
	var analysis string
	switch {
	case outspeedPct >= 95:
		analysis = fmt.Sprintf("You outspeed virtually all %s spreads (%.1f%%)", targetName, outspeedPct)
	case outspeedPct >= 75:
		analysis = fmt.Sprintf("You outspeed most %s spreads (%.1f%%)", targetName, outspeedPct)
	case outspeedPct >= 50:
		analysis = fmt.Sprintf("Speed is contested - you outspeed %.1f%% of %s", outspeedPct, targetName)
	case outspeedPct >= 25:
		analysis = fmt.Sprintf("Most %s outspeed you (%.1f%% faster)", targetName, underspeedPct)
	default:
		analysis = fmt.Sprintf("Nearly all %s outspeed you (%.1f%%)", targetName, underspeedPct)
	}

	if tiePct >= 5 {
		analysis += fmt.Sprintf(" - significant tie chance (%.1f%%)", tiePct)
	}

	return analysis
}

// MetaThreat is one opponent in a metagame population: its usage share
// and the spreads it runs.
type MetaThreat struct {
	Name      string
	BaseSpeed int
	UsagePct  float64
	Spreads   []SpeedSample
}

type MetaSpeedEntry struct {
	Name            string
	UsagePct        float64
	OutspeedPct     float64
	MostCommonSpeed int
	Analysis        string
}

// MetaSpeedResult places one speed stat against a whole metagame.
type MetaSpeedResult struct {
	YourSpeed    int
	YourName     string
	OutspeedRate float64
	PerPokemon   []MetaSpeedEntry
	Summary      string

	// Threats outspeed you, Outspeeds is the reverse, both capped at
	// the ten most used.
	Threats   []string
	Outspeeds []string
}

// MetaOutspeedRate aggregates OutspeedProbability across a threat list,
// weighting by each threat's usage when usageWeighted is set.
func MetaOutspeedRate(yourSpeed int, yourName string, meta []MetaThreat, usageWeighted bool) MetaSpeedResult {
	perPokemon := make([]MetaSpeedEntry, 0, len(meta))
	threats := make([]string, 0, len(meta))
	outspeeds := make([]string, 0, len(meta))

	var weightedOutspeed, totalWeight float64

	for _, threat := range meta {
		result := OutspeedProbability(yourSpeed, threat.BaseSpeed, threat.Spreads, threat.Name)

		weight := 1.0
		if usageWeighted {
			weight = threat.UsagePct
		}
		totalWeight += weight
		weightedOutspeed += result.OutspeedPct * weight / 100

		mostCommon := 0
		if len(result.Distribution) > 0 {
			mostCommon = result.Distribution[0].Speed
		}

		perPokemon = append(perPokemon, MetaSpeedEntry{
			Name:            threat.Name,
			UsagePct:        threat.UsagePct,
			OutspeedPct:     result.OutspeedPct,
			MostCommonSpeed: mostCommon,
			Analysis:        result.Analysis,
		})

		if result.OutspeedPct < 50 {
			threats = append(threats, fmt.Sprintf("%s (%.0f%% faster)", threat.Name, result.UnderspeedPct))
		} else {
			outspeeds = append(outspeeds, fmt.Sprintf("%s (%.0f%%)", threat.Name, result.OutspeedPct))
		}
	}

	rate := 0.0
	if totalWeight > 0 {
		rate = weightedOutspeed / totalWeight * 100
	}

	var summary string
	switch {
	case rate >= 80:
		summary = fmt.Sprintf("%s at %d Speed is extremely fast for the meta", yourName, yourSpeed)
	case rate >= 60:
		summary = fmt.Sprintf("%s at %d Speed outspeeds most of the meta", yourName, yourSpeed)
	case rate >= 40:
		summary = fmt.Sprintf("%s at %d Speed sits in the middle of the meta", yourName, yourSpeed)
	case rate >= 20:
		summary = fmt.Sprintf("%s at %d Speed is on the slower side", yourName, yourSpeed)
	default:
		summary = fmt.Sprintf("%s at %d Speed is quite slow for the meta", yourName, yourSpeed)
	}

	speedLogger().V(1).Info("meta outspeed rate",
		"pokemon", yourName,
		"speed", yourSpeed,
		"rate", rate,
		"threats", len(threats),
	)

	return MetaSpeedResult{
		YourSpeed:    yourSpeed,
		YourName:     yourName,
		OutspeedRate: round1(rate),
		PerPokemon:   perPokemon,
		Summary:      summary,
		Threats:      lo.Subset(threats, 0, 10),
		Outspeeds:    lo.Subset(outspeeds, 0, 10),
	}
}

// SpeedBucket is one distinct speed value in a population histogram.
// CumulativePct is the share of the population at or below this speed.
type SpeedBucket struct {
	Speed         int
	UsagePct      float64
	CumulativePct float64
	AtSpeed       []SpeedPoint
}

// BuildSpeedDistribution collapses a metagame population into a
// cumulative histogram keyed by distinct final speed. Weights are
// normalized so the last bucket always reaches 100%.
func BuildSpeedDistribution(meta []MetaThreat) []SpeedBucket {
	type entry struct {
		point  SpeedPoint
		name   string
		weight float64
	}

	entries := make([]entry, 0, len(meta)*3)
	var totalWeight float64

	for _, threat := range meta {
		for _, spread := range threat.Spreads {
			speed := CalcSpeedStat(threat.BaseSpeed, spread.Nature, spread.SpeedEvs, MAX_IV, DEFAULT_LEVEL)
			weight := threat.UsagePct / 100 * spread.Weight / 100
			totalWeight += weight

			entries = append(entries, entry{
				point: SpeedPoint{
					Speed:    speed,
					Nature:   spread.Nature,
					SpeedEvs: spread.SpeedEvs,
				},
				name:   threat.Name,
				weight: weight,
			})
		}
	}

	if len(entries) == 0 || totalWeight <= 0 {
		return nil
	}

	bySpeed := make(map[int]*SpeedBucket)
	for _, e := range entries {
		bucket, ok := bySpeed[e.point.Speed]
		if !ok {
			bucket = &SpeedBucket{Speed: e.point.Speed}
			bySpeed[e.point.Speed] = bucket
		}

		share := e.weight / totalWeight * 100
		point := e.point
		point.UsagePct = math.Round(share*100) / 100
		point.Pokemon = e.name
		bucket.AtSpeed = append(bucket.AtSpeed, point)
		bucket.UsagePct += share
	}

	speeds := lo.Keys(bySpeed)
	sort.Ints(speeds)

	buckets := make([]SpeedBucket, 0, len(speeds))
	cumulative := 0.0
	for _, speed := range speeds {
		bucket := bySpeed[speed]
		cumulative += bucket.UsagePct
		bucket.UsagePct = round1(bucket.UsagePct)
		bucket.CumulativePct = round1(cumulative)
		buckets = append(buckets, *bucket)
	}

	return buckets
}

// OutspeedFromDistribution answers an outspeed query against a
// histogram built by BuildSpeedDistribution, without touching the raw
// population again.
func OutspeedFromDistribution(yourSpeed int, dist []SpeedBucket, targetName string, targetBaseSpeed int) SpeedTierResult {
	if len(dist) == 0 {
		return SpeedTierResult{
			YourSpeed:       yourSpeed,
			TargetName:      targetName,
			TargetBaseSpeed: targetBaseSpeed,
			UnderspeedPct:   100,
			Analysis:        fmt.Sprintf("No spread data available for %s", targetName),
		}
	}

	var outspeed, tie, underspeed float64
	distribution := make([]SpeedPoint, 0, len(dist))

	for _, bucket := range dist {
		distribution = append(distribution, SpeedPoint{Speed: bucket.Speed, UsagePct: bucket.UsagePct})

		switch {
		case yourSpeed > bucket.Speed:
			outspeed += bucket.UsagePct
		case yourSpeed == bucket.Speed:
			tie += bucket.UsagePct
		default:
			underspeed += bucket.UsagePct
		}
	}

	sort.Slice(distribution, func(i, j int) bool {
		return distribution[i].Speed > distribution[j].Speed
	})

	outspeedPct, tiePct, underspeedPct := normalizeShares(outspeed, tie, underspeed)

	return SpeedTierResult{
		YourSpeed:       yourSpeed,
		TargetName:      targetName,
		TargetBaseSpeed: targetBaseSpeed,
		OutspeedPct:     round1(outspeedPct),
		TiePct:          round1(tiePct),
		UnderspeedPct:   round1(underspeedPct),
		Distribution:    distribution,
		Analysis:        speedAnalysis(targetName, outspeedPct, tiePct, underspeedPct),
	}
}

// CreepResult is the outcome of a speed creep query. Achieved false
// means even 252 EVs fall short, with the partial numbers filled in.
type CreepResult struct {
	EvsNeeded         int
	ResultingSpeed    int
	ThresholdSpeed    int
	ActualOutspeedPct float64
	Nature            string
	Achieved          bool
	Analysis          string
}

// SpeedCreepEvs finds the cheapest speed investment that outspeeds the
// desired share of a target's spread population.
func SpeedCreepEvs(yourBaseSpeed int, yourNature string, targetBaseSpeed int, samples []SpeedSample, desiredOutspeedPct float64) (CreepResult, error) {
	if len(samples) == 0 {
		return CreepResult{}, fmt.Errorf("no spread data for speed creep: %w", ErrInvalidInput)
	}

	type speedUsage struct {
		speed float64
		usage float64
	}

	targetSpeeds := make([]speedUsage, 0, len(samples))
	for _, sample := range samples {
		speed := CalcSpeedStat(targetBaseSpeed, sample.Nature, sample.SpeedEvs, MAX_IV, DEFAULT_LEVEL)
		targetSpeeds = append(targetSpeeds, speedUsage{speed: float64(speed), usage: sample.Weight})
	}

	sort.Slice(targetSpeeds, func(i, j int) bool {
		return targetSpeeds[i].speed < targetSpeeds[j].speed
	})

	// Walk up the target's speeds until enough usage sits at or below.
	thresholdSpeed := int(targetSpeeds[len(targetSpeeds)-1].speed) + 1
	cumulative := 0.0
	for _, entry := range targetSpeeds {
		cumulative += entry.usage
		if 100-cumulative <= 100-desiredOutspeedPct {
			thresholdSpeed = int(entry.speed) + 1
			break
		}
	}

	for _, evs := range EV_BREAKPOINTS {
		yourSpeed := CalcSpeedStat(yourBaseSpeed, yourNature, evs, MAX_IV, DEFAULT_LEVEL)
		if yourSpeed >= thresholdSpeed {
			return CreepResult{
				EvsNeeded:         evs,
				ResultingSpeed:    yourSpeed,
				ThresholdSpeed:    thresholdSpeed,
				ActualOutspeedPct: desiredOutspeedPct,
				Nature:            yourNature,
				Achieved:          true,
				Analysis: fmt.Sprintf("%d Speed EVs (%s) reaches %d speed, outspeeding %.0f%% of target spreads",
					evs, yourNature, yourSpeed, desiredOutspeedPct),
			}, nil
		}
	}

	maxSpeed := CalcSpeedStat(yourBaseSpeed, yourNature, MAX_EV, MAX_IV, DEFAULT_LEVEL)
	actualPct := 0.0
	for _, entry := range targetSpeeds {
		if float64(maxSpeed) > entry.speed {
			actualPct += entry.usage
		}
	}

	return CreepResult{
		EvsNeeded:         MAX_EV,
		ResultingSpeed:    maxSpeed,
		ThresholdSpeed:    thresholdSpeed,
		ActualOutspeedPct: round1(actualPct),
		Nature:            yourNature,
		Analysis: fmt.Sprintf("Max Speed (%d with 252 EVs) only outspeeds %.1f%% of target spreads. Consider a +Speed nature.",
			maxSpeed, actualPct),
	}, nil
}

// SpeedConditions are the board modifiers that bend turn order.
type SpeedConditions struct {
	TrickRoom      bool
	TailwindFirst  bool
	TailwindSecond bool
}

// SpeedComparison is the head to head result for two battlers.
type SpeedComparison struct {
	FirstName   string
	FirstSpeed  int
	SecondName  string
	SecondSpeed int
	Difference  int
	Result      string
	Notes       []string
}

// CompareSpeeds resolves who moves first, folding in tailwind,
// paralysis and Trick Room. Paralysis is read off each battler's
// status.
func CompareSpeeds(first, second Battler, cond SpeedConditions) SpeedComparison {
	speed1 := first.RawSpeed.CalcValue()
	speed2 := second.RawSpeed.CalcValue()

	name1 := battlerName(first)
	name2 := battlerName(second)

	notes := make([]string, 0, 3)

	effective1 := speed1
	effective2 := speed2

	if cond.TailwindFirst {
		effective1 *= 2
		notes = append(notes, fmt.Sprintf("%s has Tailwind (2x)", name1))
	}
	if cond.TailwindSecond {
		effective2 *= 2
		notes = append(notes, fmt.Sprintf("%s has Tailwind (2x)", name2))
	}

	if first.Status == STATUS_PARA {
		effective1 = effective1 / 2
		notes = append(notes, fmt.Sprintf("%s is paralyzed (0.5x)", name1))
	}
	if second.Status == STATUS_PARA {
		effective2 = effective2 / 2
		notes = append(notes, fmt.Sprintf("%s is paralyzed (0.5x)", name2))
	}

	var result string
	if cond.TrickRoom {
		notes = append(notes, "Trick Room is active")
		switch {
		case effective1 < effective2:
			result = fmt.Sprintf("%s moves first (slower in Trick Room)", name1)
		case effective2 < effective1:
			result = fmt.Sprintf("%s moves first (slower in Trick Room)", name2)
		default:
			result = "Speed tie (50/50 in Trick Room)"
		}
	} else {
		switch {
		case effective1 > effective2:
			result = fmt.Sprintf("%s outspeeds %s", name1, name2)
		case effective2 > effective1:
			result = fmt.Sprintf("%s outspeeds %s", name2, name1)
		default:
			result = "Speed tie (50/50 chance)"
		}
	}

	diff := effective1 - effective2
	if diff < 0 {
		diff = -diff
	}

	return SpeedComparison{
		FirstName:   name1,
		FirstSpeed:  speed1,
		SecondName:  name2,
		SecondSpeed: speed2,
		Difference:  diff,
		Result:      result,
		Notes:       notes,
	}
}

func battlerName(b Battler) string {
	if b.Nickname != "" {
		return b.Nickname
	}
	if b.Base != nil {
		return b.Base.Name
	}

	return "Unknown"
}

// UnderspeedResult is the outcome of a Trick Room speed query.
type UnderspeedResult struct {
	Evs            int
	RequiresZeroIv bool
	Possible       bool
}

// FindUnderspeedEvs finds the most speed EVs that still stay under a
// target stat, for Trick Room builds that want bulk elsewhere anyway.
// When even 0 EVs is too fast it checks whether a 0 IV gets there.
func FindUnderspeedEvs(baseSpeed, targetSpeed int, nature Nature, iv, level int) UnderspeedResult {
	for i := len(EV_BREAKPOINTS) - 1; i >= 0; i-- {
		evs := EV_BREAKPOINTS[i]
		speed := CalcStat(baseSpeed, iv, evs, level, nature.StatModifiers[4])
		if speed < targetSpeed {
			return UnderspeedResult{Evs: evs, Possible: true}
		}
	}

	if CalcStat(baseSpeed, 0, 0, level, nature.StatModifiers[4]) < targetSpeed {
		return UnderspeedResult{RequiresZeroIv: true, Possible: true}
	}

	return UnderspeedResult{}
}

// FindOutspeedEvs finds the cheapest speed EVs that beat a known stat
// by at least the given margin.
func FindOutspeedEvs(baseSpeed, targetSpeed, by int, nature Nature, iv, level int) EvSearchResult {
	return MinEvsForStat(baseSpeed, iv, level, nature.StatModifiers[4], targetSpeed+by)
}
