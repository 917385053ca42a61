package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashrelay/capsolver/internal/entity"
)

// fnvOffset is the 32-bit FNV-1a offset basis.
const fnvOffset = uint32(2166136261)

// Derive expands seed into a deterministic lowercase hex string of exactly
// length characters. The server runs the identical derivation to verify
// solutions, so the output must be byte-identical on every platform: a
// 32-bit FNV-1a fold over the seed's code points feeds a xorshift32 stream,
// and each stream value is emitted as 8 hex digits.
func Derive(seed string, length int) string {
	if length <= 0 {
		return ""
	}

	h := fnvOffset
	for _, r := range seed {
		h ^= uint32(r)
		// FNV prime multiply via shift-and-add; uint32 wraps mod 2^32.
		h += h<<1 + h<<4 + h<<7 + h<<8 + h<<24
	}

	x := h
	var b strings.Builder
	b.Grow(length + 8)
	for b.Len() < length {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		fmt.Fprintf(&b, "%08x", x)
	}
	return b.String()[:length]
}

// DeriveChallenges produces the salt/target pair for every index 1..Count.
// The target seed is the salt seed with a trailing "d".
func DeriveChallenges(spec entity.ChallengeSpec) []entity.Challenge {
	challenges := make([]entity.Challenge, 0, spec.Count)
	for i := 1; i <= spec.Count; i++ {
		seed := spec.Token + strconv.Itoa(i)
		challenges = append(challenges, entity.Challenge{
			Index:  i,
			Salt:   Derive(seed, spec.SaltLength),
			Target: Derive(seed+"d", spec.DifficultyLength),
		})
	}
	return challenges
}
