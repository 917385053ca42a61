package entity

import "fmt"

// NetworkError is a transport-level failure (connect, timeout) on either
// endpoint. The whole session may be retried by the caller.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("network: %s: %v", e.Op, e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError is a malformed or out-of-contract challenge response. Not
// retriable without server-side investigation.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string { return "protocol: " + e.Reason }

// SolveExhaustedError means a challenge had no nonce within the iteration
// bound. Fatal for the session; the caller may retry with a larger bound.
type SolveExhaustedError struct {
	Index         int
	MaxIterations int64
}

func (e *SolveExhaustedError) Error() string {
	return fmt.Sprintf("challenge %d: no nonce found in [0, %d)", e.Index, e.MaxIterations)
}

// RedemptionError means the redeem endpoint declined the solutions or
// answered outside the contract.
type RedemptionError struct {
	Reason string
}

func (e *RedemptionError) Error() string { return "redeem: " + e.Reason }
