package tests

import (
	"testing"

	"github.com/MSS23/vgc-mcp-sub002/vgccalc"
)

// Jolly 252 Garchomp sits at 169, under every Dragapult spread in the
// usage fixture but over all the Amoonguss ones. Weighted by usage that
// comes out to outspeeding 39.6% of the field.
func TestMetaRateFromUsage(t *testing.T) {
	threats := metaThreats()

	res := vgccalc.MetaOutspeedRate(169, "Garchomp", threats, true)
	if res.OutspeedRate != 39.6 {
		t.Errorf("expected a 39.6 weighted outspeed rate, got %.1f", res.OutspeedRate)
	}
	if len(res.PerPokemon) != 2 {
		t.Fatalf("expected 2 per-pokemon results, got %d", len(res.PerPokemon))
	}
	if len(res.Threats) != 1 || res.Threats[0] != "Dragapult (100% faster)" {
		t.Errorf("wrong threat list: %v", res.Threats)
	}
	if len(res.Outspeeds) != 1 || res.Outspeeds[0] != "Amoonguss (100%)" {
		t.Errorf("wrong outspeed list: %v", res.Outspeeds)
	}
}

func TestDistributionFromUsage(t *testing.T) {
	dist := vgccalc.BuildSpeedDistribution(metaThreats())
	if len(dist) != 3 {
		t.Fatalf("expected 3 speed buckets, got %+v", dist)
	}

	expected := []struct {
		speed      int
		usage      float64
		cumulative float64
	}{
		{45, 39.6, 39.6},
		{194, 12.1, 51.7},
		{213, 48.3, 100},
	}
	for i, want := range expected {
		got := dist[i]
		if got.Speed != want.speed || got.UsagePct != want.usage || got.CumulativePct != want.cumulative {
			t.Errorf("bucket %d: expected %d at %.1f/%.1f, got %d at %.1f/%.1f",
				i, want.speed, want.usage, want.cumulative, got.Speed, got.UsagePct, got.CumulativePct)
		}
	}

	if dist[2].AtSpeed[0].Pokemon != "Dragapult" {
		t.Errorf("expected dragapult in the 213 bucket, got %+v", dist[2].AtSpeed)
	}

	// The histogram answers the same question as the raw population.
	res := vgccalc.OutspeedFromDistribution(169, dist, "the field", 0)
	if res.OutspeedPct != 39.6 {
		t.Errorf("expected to outspeed 39.6%% of the field, got %.1f", res.OutspeedPct)
	}
}
