package txn

import "fmt"

// SimulationError is a remote dry-run failure. Nothing was signed or
// submitted; the abort reason is carried verbatim.
type SimulationError struct {
	VMStatus string
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("simulation failed: %s", e.VMStatus)
}

// SubmissionError is a finalized-but-failed transaction. The abort reason is
// carried verbatim so callers can key off specific codes.
type SubmissionError struct {
	Hash     string
	VMStatus string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("transaction %s failed: %s", e.Hash, e.VMStatus)
}

// TimeoutError means the local wait budget ran out before finality was
// observed. The true outcome is unknown; the transaction may still finalize.
type TimeoutError struct {
	Hash string
	Err  error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("gave up waiting for transaction %s: %v", e.Hash, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}
