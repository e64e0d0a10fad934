package vgccalc

import "testing"

func TestCalcStatKnownValues(t *testing.T) {
	// Garchomp benchmarks every VGC player knows by heart.
	maxSpeed := CalcStat(102, 31, 252, 50, 1.1)
	if maxSpeed != 169 {
		t.Fatalf("jolly max speed garchomp: expected 169, got %d", maxSpeed)
	}

	maxAttack := CalcStat(130, 31, 252, 50, 1.1)
	if maxAttack != 200 {
		t.Fatalf("adamant max attack garchomp: expected 200, got %d", maxAttack)
	}

	neutralSpeed := CalcStat(102, 31, 0, 50, 1.0)
	if neutralSpeed != 122 {
		t.Fatalf("uninvested neutral speed: expected 122, got %d", neutralSpeed)
	}

	minusSpeed := CalcStat(102, 0, 0, 50, 0.9)
	if minusSpeed != 96 {
		t.Fatalf("0 iv minus nature speed: expected 96, got %d", minusSpeed)
	}
}

func TestCalcHPKnownValues(t *testing.T) {
	if hp := CalcHP(108, 31, 0, 50); hp != 183 {
		t.Fatalf("uninvested garchomp hp: expected 183, got %d", hp)
	}
	if hp := CalcHP(108, 31, 252, 50); hp != 215 {
		t.Fatalf("max hp garchomp: expected 215, got %d", hp)
	}

	// Shedinja stays at 1 no matter what.
	if hp := CalcHP(1, 31, 252, 50); hp != 1 {
		t.Fatalf("1 base hp species: expected 1, got %d", hp)
	}
}

func TestCalcStatReferenceValues(t *testing.T) {
	cases := []struct {
		base     int
		mod      float64
		expected int
	}{
		{135, 1.1, 205},
		{142, 1.1, 213},
		{97, 1.1, 163},
	}

	for _, c := range cases {
		if got := CalcStat(c.base, MAX_IV, MAX_EV, DEFAULT_LEVEL, c.mod); got != c.expected {
			t.Errorf("base %d speed at 252 evs: expected %d, got %d", c.base, c.expected, got)
		}
	}
}

func TestCalcStatMonotonicOverEvs(t *testing.T) {
	for _, mod := range []float64{0.9, 1.0, 1.1} {
		prev := -1
		for _, ev := range EV_BREAKPOINTS {
			stat := CalcStat(135, MAX_IV, ev, DEFAULT_LEVEL, mod)
			if stat < prev {
				t.Fatalf("stat dropped from %d to %d at %d evs (mod %.1f)", prev, stat, ev, mod)
			}
			prev = stat
		}
	}

	prev := -1
	for _, ev := range EV_BREAKPOINTS {
		hp := CalcHP(108, MAX_IV, ev, DEFAULT_LEVEL)
		if hp < prev {
			t.Fatalf("hp dropped from %d to %d at %d evs", prev, hp, ev)
		}
		prev = hp
	}
}

func TestNormalizeEvsIdempotent(t *testing.T) {
	for ev := -4; ev <= 260; ev += 2 {
		once := NormalizeEvs(ev)
		if twice := NormalizeEvs(once); twice != once {
			t.Fatalf("NormalizeEvs(%d) not idempotent: %d then %d", ev, once, twice)
		}
	}
}

func TestNormalizeEvs(t *testing.T) {
	cases := [][2]int{
		{0, 0},
		{4, 4},
		{8, 4},
		{12, 12},
		{16, 12},
		{100, 100},
		{252, 252},
		{300, 252},
		{-8, 0},
	}

	for _, c := range cases {
		if got := NormalizeEvs(c[0]); got != c[1] {
			t.Fatalf("NormalizeEvs(%d): expected %d, got %d", c[0], c[1], got)
		}
	}
}

func TestCreateEvSpread(t *testing.T) {
	if _, err := CreateEvSpread(252, 252, 4, 0, 0, 0); err != nil {
		t.Fatalf("legal spread rejected: %s", err)
	}

	if _, err := CreateEvSpread(252, 252, 8, 0, 0, 0); err == nil {
		t.Fatal("spread over the 508 budget was accepted")
	}

	if _, err := CreateEvSpread(260, 0, 0, 0, 0, 0); err == nil {
		t.Fatal("ev value over 252 was accepted")
	}
}

func TestMinEvsForStat(t *testing.T) {
	// Jolly garchomp needs every ev to hit 169.
	res := MinEvsForStat(102, 31, 50, 1.1, 169)
	if !res.Reachable || res.Evs != 252 {
		t.Fatalf("expected 252 evs for 169 speed, got %d (reachable %t)", res.Evs, res.Reachable)
	}

	// 122 comes free on a neutral nature.
	res = MinEvsForStat(102, 31, 50, 1.0, 122)
	if !res.Reachable || res.Evs != 0 {
		t.Fatalf("expected 0 evs for 122 speed, got %d", res.Evs)
	}

	res = MinEvsForStat(102, 31, 50, 1.1, 9999)
	if res.Reachable {
		t.Fatal("unreachable target reported reachable")
	}
	if res.MaxAchievable != 169 {
		t.Fatalf("expected max achievable 169, got %d", res.MaxAchievable)
	}
}

func TestWastedEvs(t *testing.T) {
	// 8 evs buy the same stat as 4 at level 50.
	if wasted := WastedEvs(102, 31, 8, 50, 1.0); wasted != 4 {
		t.Fatalf("expected 4 wasted evs, got %d", wasted)
	}
	if wasted := WastedEvs(102, 31, 4, 50, 1.0); wasted != 0 {
		t.Fatalf("expected 0 wasted evs, got %d", wasted)
	}
}

func TestDistributeRemainingEvs(t *testing.T) {
	current := map[string]int{STAT_HP: 84, STAT_SPDEF: 84, STAT_SPEED: 252}

	result := DistributeRemainingEvs(current, 88, []string{"atk"})

	// 88 cannot land on a breakpoint in one stat, so it splits 84 + 4.
	if result[STAT_ATTACK] != 84 {
		t.Fatalf("expected 84 attack evs, got %d", result[STAT_ATTACK])
	}

	total := 0
	for _, ev := range result {
		total += ev
	}
	if total > MAX_TOTAL_EV {
		t.Fatalf("distribution blew the ev budget: %d", total)
	}

	for stat, ev := range result {
		if NormalizeEvs(ev) != ev {
			t.Fatalf("stat %s left off a breakpoint: %d", stat, ev)
		}
	}

	// the input map must not change
	if current[STAT_ATTACK] != 0 {
		t.Fatal("input map was modified")
	}
}

func TestFindSpeedEvs(t *testing.T) {
	res := FindSpeedEvs(102, 169, NATURE_JOLLY, MAX_IV, 50)
	if !res.Reachable || res.Evs != 252 {
		t.Fatalf("expected 252 evs, got %d (reachable %t)", res.Evs, res.Reachable)
	}

	res = FindSpeedEvs(102, 170, NATURE_JOLLY, MAX_IV, 50)
	if res.Reachable {
		t.Fatal("garchomp cannot reach 170 speed")
	}
}

func TestGetMaxAndMinSpeed(t *testing.T) {
	if speed := GetMaxSpeed(102, 50); speed != 169 {
		t.Fatalf("expected max speed 169, got %d", speed)
	}
	if speed := GetMinSpeed(102, 50); speed != 96 {
		t.Fatalf("expected min speed 96, got %d", speed)
	}
}
