package entity

import "fmt"

// ChallengeSpec is the parameter set issued by the challenge endpoint. It
// fully determines every derived Challenge and is never mutated after
// receipt.
type ChallengeSpec struct {
	Token            string
	Count            int
	SaltLength       int
	DifficultyLength int
	Expires          float64
}

// Validate reports a ProtocolError when the server response is missing or
// out-of-range fields.
func (s ChallengeSpec) Validate() error {
	switch {
	case s.Token == "":
		return &ProtocolError{Reason: "challenge response has no token"}
	case s.Count < 1:
		return &ProtocolError{Reason: fmt.Sprintf("challenge count %d, want >= 1", s.Count)}
	case s.SaltLength < 1:
		return &ProtocolError{Reason: fmt.Sprintf("salt length %d, want >= 1", s.SaltLength)}
	case s.DifficultyLength < 1:
		return &ProtocolError{Reason: fmt.Sprintf("difficulty length %d, want >= 1", s.DifficultyLength)}
	}
	return nil
}

// Challenge is one derived puzzle: find a nonce whose SHA-256 digest of
// salt||nonce starts with the target's bit prefix. Index runs 1..Count.
type Challenge struct {
	Index  int
	Salt   string
	Target string
}

// Solution pairs a challenge index with its accepted nonce.
type Solution struct {
	Index int
	Nonce int64
}

// RedemptionResult is the redeem endpoint's answer. Token is present iff
// Success.
type RedemptionResult struct {
	Success bool
	Token   string
}
