package vgcdata

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/MSS23/vgc-mcp-sub002/vgccalc"
)

// Registry holds the species table the rest of the data layer resolves
// names against. Load it once at startup, nothing mutates it afterwards.
var Registry = speciesRegistry{}

type speciesRegistry struct {
	Species []vgccalc.Species

	byName map[string]*vgccalc.Species
}

// formAliases maps alternate form spellings to the name usage exports
// file them under.
var formAliases = map[string]string{
	"landorus-incarnate":    "landorus",
	"tornadus-incarnate":    "tornadus",
	"thundurus-incarnate":   "thundurus",
	"enamorus-incarnate":    "enamorus",
	"urshifu-single-strike": "urshifu",
	"ogerpon-teal-mask":     "ogerpon",
	"ogerpon-teal":          "ogerpon",
	"indeedee-m":            "indeedee",
	"indeedee-male":         "indeedee",
	"basculegion-m":         "basculegion",
	"basculegion-male":      "basculegion",
	"ursaluna-normal":       "ursaluna",
}

// CanonicalName collapses a species name to its lookup form, folding
// alternate form spellings into the base form.
func CanonicalName(name string) string {
	normalized := vgccalc.NormalizeName(name)
	if alias, ok := formAliases[normalized]; ok {
		return alias
	}

	return normalized
}

// SetSpecies replaces the registry contents and rebuilds the name
// index.
func SetSpecies(species []vgccalc.Species) {
	Registry.Species = species
	Registry.byName = make(map[string]*vgccalc.Species, len(species))
	for i := range species {
		Registry.byName[CanonicalName(species[i].Name)] = &species[i]
	}
}

// GetSpecies resolves a species by name, tolerating spacing, casing and
// known form spellings. Returns nil when the name is unknown.
func (r speciesRegistry) GetSpecies(name string) *vgccalc.Species {
	if found, ok := r.byName[CanonicalName(name)]; ok {
		return found
	}

	// Usage exports sometimes run names together ("fluttermane").
	squeezed := strings.ReplaceAll(CanonicalName(name), "-", "")
	for key, species := range r.byName {
		if strings.ReplaceAll(key, "-", "") == squeezed {
			return species
		}
	}

	return nil
}

// GetSpeciesByPokedex resolves a species by its dex number. Returns nil
// when absent.
func (r speciesRegistry) GetSpeciesByPokedex(dexNumber int) *vgccalc.Species {
	for i := range r.Species {
		if r.Species[i].PokedexNumber == dexNumber {
			return &r.Species[i]
		}
	}

	return nil
}

// LoadSpecies parses a species csv with the columns
// PokedexNumber, Name, Type1, Type2, HP, Attack, Defense, SpecialAttack,
// SpecialDefense, Speed in that order, header row included.
func LoadSpecies(fileBytes []byte) ([]vgccalc.Species, error) {
	csvReader := csv.NewReader(bytes.NewBuffer(fileBytes))
	csvReader.Read()
	rows, err := csvReader.ReadAll()
	if err != nil {
		internalLogger.Error(err, "invalid species csv")
		return nil, fmt.Errorf("invalid species csv: %w", err)
	}

	internalLogger.Info("Loading species data")

	speciesList := make([]vgccalc.Species, 0, len(rows))

	for _, row := range rows {
		if len(row) < 10 {
			return nil, fmt.Errorf("species row for %q has %d columns, want 10: %w",
				strings.Join(row, ","), len(row), vgccalc.ErrInvalidInput)
		}

		dexNumber, err := strconv.Atoi(row[0])
		if err != nil {
			internalLogger.WithName("species_parsing").Error(err, "invalid pokedex number", "row", row[1])
			return nil, err
		}

		stats := make([]int, 6)
		for i := range stats {
			stats[i], err = strconv.Atoi(row[4+i])
			if err != nil {
				internalLogger.WithName("species_parsing").Error(err, "invalid stat", "row", row[1], "column", 4+i)
				return nil, err
			}
		}

		name := row[1]
		type1 := vgccalc.TYPE_MAP[row[2]]
		var type2 *vgccalc.PokemonType
		if row[3] != "" {
			type2 = vgccalc.TYPE_MAP[row[3]]
		}

		if type1 == nil {
			return nil, fmt.Errorf("species %q has unknown type %q: %w", name, row[2], vgccalc.ErrInvalidInput)
		}

		internalLogger.WithName("load_species").V(1).Info("loaded species",
			"pokedex", dexNumber, "name", name,
			"hp", stats[0], "attack", stats[1], "def", stats[2],
			"spattack", stats[3], "spdef", stats[4], "speed", stats[5])

		speciesList = append(speciesList, vgccalc.Species{
			PokedexNumber: dexNumber,
			Name:          name,
			Type1:         type1,
			Type2:         type2,
			Hp:            stats[0],
			Attack:        stats[1],
			Def:           stats[2],
			SpAttack:      stats[3],
			SpDef:         stats[4],
			Speed:         stats[5],
		})
	}

	internalLogger.Info("Loaded species", "count", len(speciesList))

	return speciesList, nil
}
