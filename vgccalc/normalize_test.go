package vgccalc

import (
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Fake Out", "fake-out"},
		{"Flutter Mane", "flutter-mane"},
		{"King's Shield", "kings-shield"},
		{"Mr. Mime", "mr-mime"},
		{"URSHIFU_RAPID_STRIKE", "urshifu-rapid-strike"},
		{"  Landorus-Therian  ", "landorus-therian"},
		{"", ""},
	}

	for _, test := range tests {
		if got := NormalizeName(test.in); got != test.expected {
			t.Errorf("NormalizeName(%q): expected %q, got %q", test.in, test.expected, got)
		}
	}
}

func TestNormalizeItem(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		// Usage exports concatenate item names.
		{"lifeorb", "life-orb"},
		{"boosterenergy", "booster-energy"},
		{"Life Orb", "life-orb"},
		{"Choice Band", "choice-band"},
		{"Leftovers", "leftovers"},
	}

	for _, test := range tests {
		if got := NormalizeItem(test.in); got != test.expected {
			t.Errorf("NormalizeItem(%q): expected %q, got %q", test.in, test.expected, got)
		}
	}
}

func TestNormalizeAbility(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"sheerforce", "sheer-force"},
		{"Magic Guard", "magic-guard"},
		{"Intimidate", "intimidate"},
		{"hugepower", "huge-power"},
	}

	for _, test := range tests {
		if got := NormalizeAbility(test.in); got != test.expected {
			t.Errorf("NormalizeAbility(%q): expected %q, got %q", test.in, test.expected, got)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"life-orb", "Life Orb"},
		{"magic-guard", "Magic Guard"},
		{"leftovers", "Leftovers"},
	}

	for _, test := range tests {
		if got := DisplayName(test.in); got != test.expected {
			t.Errorf("DisplayName(%q): expected %q, got %q", test.in, test.expected, got)
		}
	}
}

func TestNormalizeStatName(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"Atk", "attack"},
		{"defence", "defense"},
		{"sp-atk", "special-attack"},
		{"SpD", "special-defense"},
		{"Spe", "speed"},
		{"health", "hp"},
		{"evasion", ""},
	}

	for _, test := range tests {
		if got := NormalizeStatName(test.in); got != test.expected {
			t.Errorf("NormalizeStatName(%q): expected %q, got %q", test.in, test.expected, got)
		}
	}
}
