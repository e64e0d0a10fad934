package tests

import (
	"math/rand/v2"
	"sync"

	"github.com/MSS23/vgc-mcp-sub002/vgccalc"
	"github.com/MSS23/vgc-mcp-sub002/vgcdata"
)

// A small slice of the species table, enough to cover STAB, dual types,
// an immunity and a wide speed range.
const speciesCsv = `PokedexNumber,Name,Type1,Type2,HP,Attack,Defense,SpecialAttack,SpecialDefense,Speed
445,Garchomp,Dragon,Ground,108,130,95,80,85,102
591,Amoonguss,Grass,Poison,114,85,70,85,80,30
823,Corviknight,Flying,Steel,98,87,105,53,85,67
887,Dragapult,Dragon,Ghost,88,120,75,100,75,142
`

const usageJson = `{
	"data": {
		"Dragapult": {
			"usage": 0.458,
			"Raw count": 1600,
			"Spreads": {
				"Timid:0/0/0/252/4/252": 80,
				"Modest:0/0/0/252/4/252": 20
			}
		},
		"Amoonguss": {
			"usage": 0.30,
			"Raw count": 900,
			"Spreads": {"Sassy:236/0/196/0/76/0": 100}
		}
	}
}`

var registryOnce sync.Once

func loadRegistry() {
	registryOnce.Do(func() {
		species, err := vgcdata.LoadSpecies([]byte(speciesCsv))
		if err != nil {
			panic(err)
		}
		vgcdata.SetSpecies(species)
	})
}

func getSpecies(name string) *vgccalc.Species {
	loadRegistry()

	species := vgcdata.Registry.GetSpecies(name)
	if species == nil {
		panic("test registry is missing " + name)
	}

	return species
}

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(355, 113))
}

func buildBattler(name string, nature vgccalc.Nature, evs [6]int) vgccalc.Battler {
	return vgccalc.NewBattlerBuilder(getSpecies(name), testRng()).
		SetPerfectIvs().
		SetNature(nature).
		SetEvs(evs).
		Build()
}

func earthquake() vgccalc.Move {
	return vgccalc.Move{Name: "Earthquake", Type: &vgccalc.TYPE_GROUND, Category: vgccalc.DAMAGETYPE_PHYSICAL, Power: 100}
}

func metaThreats() []vgccalc.MetaThreat {
	loadRegistry()

	usage, err := vgcdata.ParseUsageStats([]byte(usageJson))
	if err != nil {
		panic(err)
	}

	return vgcdata.BuildMetaThreats(usage, 0)
}
