package vgcdata

import (
	"errors"
	"testing"

	"github.com/MSS23/vgc-mcp-sub002/vgccalc"
)

const speciesCsv = `PokedexNumber,Name,Type1,Type2,HP,Attack,Defense,SpecialAttack,SpecialDefense,Speed
445,Garchomp,Dragon,Ground,108,130,95,80,85,102
887,Dragapult,Dragon,Ghost,88,120,75,100,75,142
26,Raichu,Electric,,60,90,55,90,80,110
`

func TestLoadSpecies(t *testing.T) {
	species, err := LoadSpecies([]byte(speciesCsv))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(species) != 3 {
		t.Fatalf("expected 3 species, got %d", len(species))
	}

	garchomp := species[0]
	if garchomp.PokedexNumber != 445 || garchomp.Name != "Garchomp" {
		t.Errorf("expected 445 Garchomp, got %d %q", garchomp.PokedexNumber, garchomp.Name)
	}
	if garchomp.Type1 != &vgccalc.TYPE_DRAGON || garchomp.Type2 != &vgccalc.TYPE_GROUND {
		t.Error("expected garchomp to come back dragon/ground")
	}
	if garchomp.Hp != 108 || garchomp.Attack != 130 || garchomp.Def != 95 ||
		garchomp.SpAttack != 80 || garchomp.SpDef != 85 || garchomp.Speed != 102 {
		t.Errorf("wrong base stats: %+v", garchomp)
	}

	if species[2].Type2 != nil {
		t.Error("expected a blank second type to stay nil")
	}
}

func TestLoadSpeciesBadRows(t *testing.T) {
	// A consistently short table passes the csv reader and has to be
	// caught by the column check instead.
	short := "PokedexNumber,Name,Type1\n445,Garchomp,Dragon\n"
	if _, err := LoadSpecies([]byte(short)); !errors.Is(err, vgccalc.ErrInvalidInput) {
		t.Errorf("expected invalid input for a short row, got %v", err)
	}

	unknownType := "PokedexNumber,Name,Type1,Type2,HP,Attack,Defense,SpecialAttack,SpecialDefense,Speed\n" +
		"445,Garchomp,Dracon,Ground,108,130,95,80,85,102\n"
	if _, err := LoadSpecies([]byte(unknownType)); !errors.Is(err, vgccalc.ErrInvalidInput) {
		t.Errorf("expected invalid input for an unknown type, got %v", err)
	}

	badDex := "PokedexNumber,Name,Type1,Type2,HP,Attack,Defense,SpecialAttack,SpecialDefense,Speed\n" +
		"chomp,Garchomp,Dragon,Ground,108,130,95,80,85,102\n"
	if _, err := LoadSpecies([]byte(badDex)); err == nil {
		t.Error("expected an error for a non-numeric pokedex number")
	}

	badStat := "PokedexNumber,Name,Type1,Type2,HP,Attack,Defense,SpecialAttack,SpecialDefense,Speed\n" +
		"445,Garchomp,Dragon,Ground,108,bulky,95,80,85,102\n"
	if _, err := LoadSpecies([]byte(badStat)); err == nil {
		t.Error("expected an error for a non-numeric stat")
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Flutter Mane", "flutter-mane"},
		{"Landorus-Incarnate", "landorus"},
		{"Urshifu-Single-Strike", "urshifu"},
		{"Ogerpon-Teal-Mask", "ogerpon"},
		{"Indeedee-M", "indeedee"},
		{"  GARCHOMP ", "garchomp"},
	}

	for _, test := range tests {
		if got := CanonicalName(test.name); got != test.expected {
			t.Errorf("expected %q to canonicalize to %q, got %q", test.name, test.expected, got)
		}
	}
}

func TestRegistryLookups(t *testing.T) {
	SetSpecies([]vgccalc.Species{
		{PokedexNumber: 445, Name: "Garchomp", Type1: &vgccalc.TYPE_DRAGON, Type2: &vgccalc.TYPE_GROUND, Speed: 102},
		{PokedexNumber: 987, Name: "Flutter Mane", Type1: &vgccalc.TYPE_GHOST, Type2: &vgccalc.TYPE_FAIRY, Speed: 135},
		{PokedexNumber: 645, Name: "Landorus", Type1: &vgccalc.TYPE_GROUND, Type2: &vgccalc.TYPE_FLYING, Speed: 101},
	})

	if found := Registry.GetSpecies("Garchomp"); found == nil || found.PokedexNumber != 445 {
		t.Errorf("expected to find garchomp, got %+v", found)
	}
	if found := Registry.GetSpecies("  GARCHOMP "); found == nil {
		t.Error("expected lookups to tolerate spacing and casing")
	}

	// Usage exports write form suffixes and squeezed names.
	if found := Registry.GetSpecies("Landorus-Incarnate"); found == nil || found.PokedexNumber != 645 {
		t.Errorf("expected the incarnate alias to resolve, got %+v", found)
	}
	if found := Registry.GetSpecies("fluttermane"); found == nil || found.PokedexNumber != 987 {
		t.Errorf("expected the squeezed name to resolve, got %+v", found)
	}

	if found := Registry.GetSpecies("Miraidon"); found != nil {
		t.Errorf("expected nil for an unknown species, got %+v", found)
	}

	if found := Registry.GetSpeciesByPokedex(987); found == nil || found.Name != "Flutter Mane" {
		t.Errorf("expected dex 987 to find Flutter Mane, got %+v", found)
	}
	if found := Registry.GetSpeciesByPokedex(9999); found != nil {
		t.Errorf("expected nil for an unknown dex number, got %+v", found)
	}
}
