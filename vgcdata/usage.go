package vgcdata

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/MSS23/vgc-mcp-sub002/vgccalc"
)

// UsageEntry is one name with its share of a category, as a percent.
type UsageEntry struct {
	Name string
	Pct  float64
}

// UsageSpread is one EV spread from usage stats. Weight is its share of
// the spreads seen for that species, as a percent. Evs are ordered
// hp, attack, defense, special attack, special defense, speed.
type UsageSpread struct {
	Nature string
	Evs    [6]int
	Weight float64
	Raw    string
}

// UsagePokemon is everything one chaos export entry says about a
// species, shares normalized per category and rare entries dropped.
type UsagePokemon struct {
	Name      string
	UsagePct  float64
	RawCount  int
	Spreads   []UsageSpread
	Abilities []UsageEntry
	Items     []UsageEntry
	Moves     []UsageEntry
	TeraTypes []UsageEntry
	Teammates []UsageEntry
}

// ParseUsageStats parses a whole chaos format usage export. Entries
// come back sorted by usage, heaviest first.
func ParseUsageStats(jsonBytes []byte) ([]UsagePokemon, error) {
	data := gjson.GetBytes(jsonBytes, "data")
	if !data.Exists() {
		return nil, fmt.Errorf("usage stats json has no data section: %w", vgccalc.ErrInvalidInput)
	}

	mons := make([]UsagePokemon, 0, 64)
	data.ForEach(func(key, value gjson.Result) bool {
		mons = append(mons, UsagePokemon{
			Name:      key.String(),
			UsagePct:  math.Round(value.Get("usage").Float()*10000) / 100,
			RawCount:  int(value.Get("Raw count").Int()),
			Spreads:   parseSpreads(value.Get("Spreads")),
			Abilities: normalizedEntries(value.Get("Abilities"), 0),
			Items:     normalizedEntries(value.Get("Items"), 0),
			Moves:     normalizedEntries(value.Get("Moves"), 0),
			TeraTypes: normalizedEntries(value.Get("Tera Types"), 0),
			Teammates: normalizedEntries(value.Get("Teammates"), 15),
		})
		return true
	})

	sort.SliceStable(mons, func(i, j int) bool {
		return mons[i].UsagePct > mons[j].UsagePct
	})

	internalLogger.WithName("usage").Info("parsed usage stats", "pokemon", len(mons))

	return mons, nil
}

// normalizedEntries turns a raw weight map into percent shares, keeping
// anything above 1% sorted heaviest first. limit of 0 keeps all.
func normalizedEntries(result gjson.Result, limit int) []UsageEntry {
	total := 0.0
	result.ForEach(func(_, value gjson.Result) bool {
		total += value.Float()
		return true
	})
	if total <= 0 {
		return nil
	}

	entries := make([]UsageEntry, 0, 8)
	result.ForEach(func(key, value gjson.Result) bool {
		share := value.Float() / total
		if share > 0.01 {
			entries = append(entries, UsageEntry{
				Name: key.String(),
				Pct:  math.Round(share*1000) / 10,
			})
		}
		return true
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Pct > entries[j].Pct
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	return entries
}

// parseSpreads parses a Spreads map of "Nature:hp/atk/def/spa/spd/spe"
// keys. Spreads under 1% of the total are dropped, anything malformed
// is logged and skipped.
func parseSpreads(result gjson.Result) []UsageSpread {
	total := 0.0
	result.ForEach(func(_, value gjson.Result) bool {
		total += value.Float()
		return true
	})
	if total <= 0 {
		return nil
	}

	spreads := make([]UsageSpread, 0, 8)
	result.ForEach(func(key, value gjson.Result) bool {
		share := value.Float() / total
		if share < 0.01 {
			return true
		}

		spread, err := parseSpreadString(key.String())
		if err != nil {
			internalLogger.WithName("usage").V(1).Info("skipping malformed spread", "spread", key.String(), "reason", err.Error())
			return true
		}

		spread.Weight = math.Round(share*1000) / 10
		spreads = append(spreads, spread)
		return true
	})

	sort.SliceStable(spreads, func(i, j int) bool {
		return spreads[i].Weight > spreads[j].Weight
	})

	return spreads
}

func parseSpreadString(raw string) (UsageSpread, error) {
	nature, evPart, found := strings.Cut(raw, ":")
	if !found {
		return UsageSpread{}, fmt.Errorf("spread %q has no nature separator", raw)
	}

	evStrings := strings.Split(evPart, "/")
	if len(evStrings) != 6 {
		return UsageSpread{}, fmt.Errorf("spread %q has %d ev values, want 6", raw, len(evStrings))
	}

	spread := UsageSpread{Nature: nature, Raw: raw}
	for i, evString := range evStrings {
		ev, err := strconv.Atoi(evString)
		if err != nil {
			return UsageSpread{}, fmt.Errorf("spread %q has invalid ev %q", raw, evString)
		}
		spread.Evs[i] = ev
	}

	return spread, nil
}

// FindUsage resolves one species out of parsed stats, tolerating
// spacing, casing and form spellings. Returns nil when absent.
func FindUsage(stats []UsagePokemon, name string) *UsagePokemon {
	squeezed := strings.ReplaceAll(CanonicalName(name), "-", "")
	for i := range stats {
		if strings.ReplaceAll(CanonicalName(stats[i].Name), "-", "") == squeezed {
			return &stats[i]
		}
	}

	return nil
}

// SpeedSamples converts the spread list into the population form the
// speed engine consumes.
func (u UsagePokemon) SpeedSamples() []vgccalc.SpeedSample {
	samples := make([]vgccalc.SpeedSample, 0, len(u.Spreads))
	for _, spread := range u.Spreads {
		samples = append(samples, vgccalc.SpeedSample{
			Nature:   spread.Nature,
			SpeedEvs: spread.Evs[5],
			Weight:   spread.Weight,
		})
	}

	return samples
}

// BuildMetaThreats converts parsed usage stats into the threat list the
// speed engine consumes, resolving base speeds through the Registry.
// Species under minUsagePct or missing from the registry are skipped.
func BuildMetaThreats(stats []UsagePokemon, minUsagePct float64) []vgccalc.MetaThreat {
	threats := make([]vgccalc.MetaThreat, 0, len(stats))
	for _, mon := range stats {
		if mon.UsagePct < minUsagePct {
			continue
		}

		species := Registry.GetSpecies(mon.Name)
		if species == nil {
			internalLogger.WithName("usage").V(1).Info("no species record for usage entry", "name", mon.Name)
			continue
		}

		threats = append(threats, vgccalc.MetaThreat{
			Name:      mon.Name,
			BaseSpeed: species.Speed,
			UsagePct:  mon.UsagePct,
			Spreads:   mon.SpeedSamples(),
		})
	}

	return threats
}
