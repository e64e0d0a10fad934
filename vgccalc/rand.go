package vgccalc

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

var (
	internalSeed = CreateRandomStateSeed()
	internalRng  = CreateRNG(&internalSeed)
)

// CreateRandomStateSeed builds a PCG seeded from the OS entropy pool so
// two processes never share a roll sequence.
func CreateRandomStateSeed() rand.PCG {
	var seedBytes [16]byte
	if _, err := cryptoRand.Read(seedBytes[:]); err != nil {
		panic(err)
	}

	hi := binary.LittleEndian.Uint64(seedBytes[:8])
	lo := binary.LittleEndian.Uint64(seedBytes[8:])

	return *rand.NewPCG(hi, lo)
}

func CreateRNG(seed *rand.PCG) *rand.Rand {
	return rand.New(seed)
}

// SampleRoll draws one of the 16 damage rolls uniformly, the way the
// games pick one at execution time. A nil rng uses the package one.
func (d DamageResult) SampleRoll(rng *rand.Rand) int {
	if rng == nil {
		rng = internalRng
	}
	if d.Immune {
		return 0
	}

	return d.Rolls[rng.IntN(DAMAGE_ROLL_COUNT)]
}
