package vgcdata

import (
	"errors"
	"testing"

	"github.com/MSS23/vgc-mcp-sub002/vgccalc"
)

const chaosJson = `{
	"info": {"metagame": "gen9vgc2026regfbo3"},
	"data": {
		"Garchomp": {
			"usage": 0.33456,
			"Raw count": 1200,
			"Spreads": {
				"Jolly:0/252/0/0/4/252": 60,
				"Adamant:4/252/0/0/0/252": 30,
				"Modest:252/0/0/252/4/0": 0.5
			},
			"Abilities": {"roughskin": 90, "sandveil": 10},
			"Items": {"lifeorb": 50, "choicescarf": 30, "leftovers": 20},
			"Moves": {"earthquake": 95, "dragonclaw": 60, "protect": 45},
			"Tera Types": {"Steel": 70, "Fire": 30},
			"Teammates": {"Incineroar": 40, "Rillaboom": 35, "Amoonguss": 25}
		},
		"Dragapult": {
			"usage": 0.458,
			"Raw count": 1600,
			"Spreads": {"Timid:0/0/0/252/4/252": 100},
			"Abilities": {"clearbody": 100},
			"Items": {"choicespecs": 100},
			"Moves": {"shadowball": 100},
			"Tera Types": {"Ghost": 100},
			"Teammates": {"Garchomp": 100}
		}
	}
}`

func TestParseUsageStats(t *testing.T) {
	mons, err := ParseUsageStats([]byte(chaosJson))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(mons) != 2 {
		t.Fatalf("expected 2 pokemon, got %d", len(mons))
	}

	// Heaviest usage first.
	if mons[0].Name != "Dragapult" || mons[0].UsagePct != 45.8 {
		t.Errorf("expected Dragapult at 45.8%%, got %s at %.2f%%", mons[0].Name, mons[0].UsagePct)
	}

	garchomp := mons[1]
	if garchomp.UsagePct != 33.46 {
		t.Errorf("expected usage 33.46, got %.2f", garchomp.UsagePct)
	}
	if garchomp.RawCount != 1200 {
		t.Errorf("expected raw count 1200, got %d", garchomp.RawCount)
	}

	// The modest spread is half a percent of the total and gets dropped.
	if len(garchomp.Spreads) != 2 {
		t.Fatalf("expected 2 spreads, got %+v", garchomp.Spreads)
	}
	jolly := garchomp.Spreads[0]
	if jolly.Nature != "Jolly" || jolly.Weight != 66.3 {
		t.Errorf("expected Jolly at 66.3, got %s at %.1f", jolly.Nature, jolly.Weight)
	}
	if jolly.Evs != [6]int{0, 252, 0, 0, 4, 252} {
		t.Errorf("wrong evs: %v", jolly.Evs)
	}
	if garchomp.Spreads[1].Nature != "Adamant" || garchomp.Spreads[1].Weight != 33.1 {
		t.Errorf("expected Adamant at 33.1, got %+v", garchomp.Spreads[1])
	}

	if len(garchomp.Abilities) != 2 || garchomp.Abilities[0].Name != "roughskin" || garchomp.Abilities[0].Pct != 90 {
		t.Errorf("wrong abilities: %+v", garchomp.Abilities)
	}
	if len(garchomp.Items) != 3 || garchomp.Items[0].Name != "lifeorb" || garchomp.Items[0].Pct != 50 {
		t.Errorf("wrong items: %+v", garchomp.Items)
	}
	if garchomp.Moves[0].Name != "earthquake" || garchomp.Moves[0].Pct != 47.5 {
		t.Errorf("wrong top move: %+v", garchomp.Moves)
	}
	if garchomp.TeraTypes[0].Name != "Steel" || garchomp.TeraTypes[0].Pct != 70 {
		t.Errorf("wrong tera types: %+v", garchomp.TeraTypes)
	}
	if len(garchomp.Teammates) != 3 || garchomp.Teammates[0].Name != "Incineroar" {
		t.Errorf("wrong teammates: %+v", garchomp.Teammates)
	}
}

func TestParseUsageStatsNoData(t *testing.T) {
	if _, err := ParseUsageStats([]byte(`{"info": {}}`)); !errors.Is(err, vgccalc.ErrInvalidInput) {
		t.Errorf("expected invalid input for a json without data, got %v", err)
	}
}

func TestParseUsageStatsMalformedSpreads(t *testing.T) {
	// A spread key without the nature separator and one with too few ev
	// values are both skipped without failing the whole parse.
	raw := `{"data": {"Garchomp": {"usage": 0.25, "Spreads": {
		"Jolly:0/252/0/0/4/252": 50,
		"Sassy~0/4/0/0/252/252": 25,
		"Bold:252/0/128/0/128": 25
	}}}}`

	mons, err := ParseUsageStats([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(mons[0].Spreads) != 1 {
		t.Fatalf("expected only the valid spread to survive, got %+v", mons[0].Spreads)
	}
	if mons[0].Spreads[0].Nature != "Jolly" || mons[0].Spreads[0].Weight != 50 {
		t.Errorf("expected Jolly at 50, got %+v", mons[0].Spreads[0])
	}
}

func TestFindUsage(t *testing.T) {
	stats := []UsagePokemon{
		{Name: "Flutter Mane", UsagePct: 40},
		{Name: "Landorus", UsagePct: 30},
	}

	if found := FindUsage(stats, "fluttermane"); found == nil || found.UsagePct != 40 {
		t.Errorf("expected the squeezed name to resolve, got %+v", found)
	}
	if found := FindUsage(stats, "Landorus-Incarnate"); found == nil || found.UsagePct != 30 {
		t.Errorf("expected the incarnate alias to resolve, got %+v", found)
	}
	if found := FindUsage(stats, "Miraidon"); found != nil {
		t.Errorf("expected nil for an unknown name, got %+v", found)
	}
}

func TestSpeedSamples(t *testing.T) {
	mon := UsagePokemon{Spreads: []UsageSpread{
		{Nature: "Jolly", Evs: [6]int{0, 252, 0, 0, 4, 252}, Weight: 66.3},
		{Nature: "Adamant", Evs: [6]int{4, 252, 0, 0, 0, 0}, Weight: 33.1},
	}}

	samples := mon.SpeedSamples()
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0].Nature != "Jolly" || samples[0].SpeedEvs != 252 || samples[0].Weight != 66.3 {
		t.Errorf("wrong first sample: %+v", samples[0])
	}
	if samples[1].SpeedEvs != 0 {
		t.Errorf("expected the adamant spread to carry 0 speed evs, got %d", samples[1].SpeedEvs)
	}
}

func TestBuildMetaThreats(t *testing.T) {
	SetSpecies([]vgccalc.Species{
		{PokedexNumber: 445, Name: "Garchomp", Type1: &vgccalc.TYPE_DRAGON, Speed: 102},
		{PokedexNumber: 887, Name: "Dragapult", Type1: &vgccalc.TYPE_DRAGON, Speed: 142},
	})

	stats := []UsagePokemon{
		{Name: "Dragapult", UsagePct: 45.8, Spreads: []UsageSpread{
			{Nature: "Timid", Evs: [6]int{0, 0, 0, 252, 4, 252}, Weight: 100},
		}},
		{Name: "Garchomp", UsagePct: 33.46},
		{Name: "Miraidon", UsagePct: 20},
		{Name: "Amoonguss", UsagePct: 0.5},
	}

	// Miraidon is missing from the registry and Amoonguss is under the
	// usage floor.
	threats := BuildMetaThreats(stats, 1.0)
	if len(threats) != 2 {
		t.Fatalf("expected 2 threats, got %+v", threats)
	}
	if threats[0].Name != "Dragapult" || threats[0].BaseSpeed != 142 || threats[0].UsagePct != 45.8 {
		t.Errorf("wrong first threat: %+v", threats[0])
	}
	if len(threats[0].Spreads) != 1 || threats[0].Spreads[0].SpeedEvs != 252 {
		t.Errorf("expected the dragapult spread to carry over: %+v", threats[0].Spreads)
	}
	if threats[1].Name != "Garchomp" || threats[1].BaseSpeed != 102 {
		t.Errorf("wrong second threat: %+v", threats[1])
	}
}

func TestChaosURL(t *testing.T) {
	url := ChaosURL("https://www.smogon.com/stats", "2026-01", "gen9vgc2026regfbo3", 1760)
	if url != "https://www.smogon.com/stats/2026-01/chaos/gen9vgc2026regfbo3-1760.json" {
		t.Errorf("wrong url: %s", url)
	}

	url = ChaosURL("https://www.smogon.com/stats", "2025-12", "gen9vgc2026regfbo3", 0)
	if url != "https://www.smogon.com/stats/2025-12/chaos/gen9vgc2026regfbo3-0.json" {
		t.Errorf("wrong url for the unrated cutoff: %s", url)
	}
}
