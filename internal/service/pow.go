package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/hashrelay/capsolver/internal/entity"
)

// cancelCheckInterval is how many nonces a search runs between context
// checks. Power of two so the modulo is cheap in the hot loop.
const cancelCheckInterval = 1 << 16

// SolveChallenge scans nonces 0, 1, 2, ... and returns the first one whose
// SHA-256 digest of salt||decimal(nonce) matches the target's bit prefix.
// The target is a hex string whose digit count encodes the prefix length at
// 4 bits per digit; it need not be byte-aligned. Ascending order makes the
// returned nonce the smallest solution.
//
// Exhausting [0, maxIterations) yields a SolveExhaustedError (Index left
// zero, the pool fills it in). Cancellation is observed between blocks of
// nonces and surfaces as ctx.Err().
func SolveChallenge(ctx context.Context, salt, target string, maxIterations int64) (int64, error) {
	bitLen := len(target) * 4
	if bitLen > sha256.Size*8 {
		return 0, &entity.ProtocolError{Reason: "target longer than a SHA-256 digest"}
	}

	padded := target
	if len(padded)%2 != 0 {
		// One filler digit so the string decodes to bytes; the comparison
		// still stops at bitLen.
		padded += "0"
	}
	targetBytes, err := hex.DecodeString(padded)
	if err != nil {
		return 0, &entity.ProtocolError{Reason: "target is not hex: " + target}
	}

	fullBytes := bitLen / 8
	remBits := bitLen % 8
	var mask byte
	if remBits > 0 {
		mask = 0xFF << (8 - remBits)
	}

	buf := make([]byte, len(salt), len(salt)+20)
	copy(buf, salt)

	for nonce := int64(0); nonce < maxIterations; nonce++ {
		if nonce%cancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			default:
			}
		}

		buf = strconv.AppendInt(buf[:len(salt)], nonce, 10)
		sum := sha256.Sum256(buf)

		if !bytes.Equal(sum[:fullBytes], targetBytes[:fullBytes]) {
			continue
		}
		if remBits == 0 || sum[fullBytes]&mask == targetBytes[fullBytes]&mask {
			return nonce, nil
		}
	}
	return 0, &entity.SolveExhaustedError{MaxIterations: maxIterations}
}
