package txn

import (
	"context"
	"crypto/ed25519"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"hamsterpocket/internal/builder"
	"hamsterpocket/internal/chain"
)

// Submitter owns a signing account and a node client. Beyond those it keeps
// no state, so a single instance is safe for concurrent use; ordering of
// concurrent submissions from one signer is the ledger's concern, not ours.
type Submitter struct {
	client  *chain.Client
	account *chain.Account
	logger  *zap.Logger

	maxGasAmount  uint64
	gasUnitPrice  uint64
	txnExpirySecs uint64
	pollInterval  time.Duration
}

// NewSubmitter builds a Submitter with default gas settings.
func NewSubmitter(client *chain.Client, account *chain.Account, logger *zap.Logger) *Submitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Submitter{
		client:        client,
		account:       account,
		logger:        logger,
		maxGasAmount:  500_000,
		gasUnitPrice:  100,
		txnExpirySecs: 600,
		pollInterval:  500 * time.Millisecond,
	}
}

// Address returns the signer's account address.
func (s *Submitter) Address() chain.AccountAddress {
	return s.account.Address()
}

func (s *Submitter) prepare(ctx context.Context, payload builder.EntryFunctionPayload) (rawTransaction, error) {
	ledger, err := s.client.LedgerInfo(ctx)
	if err != nil {
		return rawTransaction{}, fmt.Errorf("ledger info: %w", err)
	}

	account, err := s.client.Account(ctx, s.account.Address())
	if err != nil {
		return rawTransaction{}, fmt.Errorf("account state: %w", err)
	}
	sequence, err := strconv.ParseUint(account.SequenceNumber, 10, 64)
	if err != nil {
		return rawTransaction{}, fmt.Errorf("parse sequence number %q: %w", account.SequenceNumber, err)
	}

	return rawTransaction{
		Sender:                  s.account.Address(),
		SequenceNumber:          sequence,
		Payload:                 payload,
		MaxGasAmount:            s.maxGasAmount,
		GasUnitPrice:            s.gasUnitPrice,
		ExpirationTimestampSecs: uint64(time.Now().Unix()) + s.txnExpirySecs,
		ChainID:                 ledger.ChainID,
	}, nil
}

// Simulate dry-runs the payload without signing it. A remote-reported abort
// surfaces as a SimulationError.
func (s *Submitter) Simulate(ctx context.Context, payload builder.EntryFunctionPayload) (chain.SimulationResult, error) {
	raw, err := s.prepare(ctx, payload)
	if err != nil {
		return chain.SimulationResult{}, err
	}

	// Simulation carries the real public key with a zeroed signature.
	unsigned := signedTransactionBytes(raw, s.account.PublicKey(), make([]byte, ed25519.SignatureSize))
	results, err := s.client.SimulateBCS(ctx, unsigned)
	if err != nil {
		return chain.SimulationResult{}, fmt.Errorf("simulate: %w", err)
	}
	if len(results) == 0 {
		return chain.SimulationResult{}, fmt.Errorf("simulate: empty result")
	}

	result := results[0]
	if !result.Success {
		return result, &SimulationError{VMStatus: result.VMStatus}
	}
	return result, nil
}

// Execute runs the full pipeline: simulate as a mandatory gate, then sign
// and submit, then optionally await finality. It returns the submission
// hash.
func (s *Submitter) Execute(ctx context.Context, payload builder.EntryFunctionPayload, wait bool) (string, error) {
	if _, err := s.Simulate(ctx, payload); err != nil {
		return "", err
	}

	raw, err := s.prepare(ctx, payload)
	if err != nil {
		return "", err
	}

	signature := s.account.Sign(raw.signingMessage())
	signed := signedTransactionBytes(raw, s.account.PublicKey(), signature)

	pending, err := s.client.SubmitBCS(ctx, signed)
	if err != nil {
		return "", fmt.Errorf("submit: %w", err)
	}

	s.logger.Debug("transaction submitted",
		zap.String("hash", pending.Hash),
		zap.String("function", payload.Function),
		zap.Uint64("sequence", raw.SequenceNumber),
	)

	if wait {
		if err := s.Wait(ctx, pending.Hash); err != nil {
			return pending.Hash, err
		}
	}
	return pending.Hash, nil
}

// Wait blocks until the transaction finalizes. A finalized-but-failed
// transaction is a SubmissionError; an exhausted context is a TimeoutError,
// kept distinct because the outcome is still unknown.
func (s *Submitter) Wait(ctx context.Context, hash string) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		info, err := s.client.TransactionByHash(ctx, hash)
		if err != nil {
			var apiErr *chain.APIError
			if !errors.As(err, &apiErr) || !apiErr.IsNotFound() {
				if ctx.Err() != nil {
					return &TimeoutError{Hash: hash, Err: ctx.Err()}
				}
				return fmt.Errorf("poll transaction %s: %w", hash, err)
			}
			// Not found yet: still propagating, keep polling.
		} else if !info.Pending() {
			if !info.Success {
				return &SubmissionError{Hash: hash, VMStatus: info.VMStatus}
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return &TimeoutError{Hash: hash, Err: ctx.Err()}
		case <-ticker.C:
		}
	}
}

// View evaluates a read-only payload. It never signs or mutates state.
func (s *Submitter) View(ctx context.Context, payload builder.ViewPayload) ([]json.RawMessage, error) {
	return s.client.View(ctx, chain.ViewRequest{
		Function:      payload.Function,
		TypeArguments: payload.TypeArgs,
		Arguments:     payload.Args,
	})
}

// Executor binds one entry-function payload to a submitter, giving callers
// the execute/simulate pair without re-plumbing either side.
type Executor struct {
	payload   builder.EntryFunctionPayload
	submitter *Submitter
}

// Bind wraps a payload in an Executor.
func (s *Submitter) Bind(payload builder.EntryFunctionPayload) *Executor {
	return &Executor{payload: payload, submitter: s}
}

// Execute submits the bound payload and awaits finality.
func (e *Executor) Execute(ctx context.Context) (string, error) {
	return e.submitter.Execute(ctx, e.payload, true)
}

// Simulate dry-runs the bound payload.
func (e *Executor) Simulate(ctx context.Context) (chain.SimulationResult, error) {
	return e.submitter.Simulate(ctx, e.payload)
}

// ViewExecutor binds one view payload to a submitter.
type ViewExecutor struct {
	payload   builder.ViewPayload
	submitter *Submitter
}

// BindView wraps a view payload in a ViewExecutor.
func (s *Submitter) BindView(payload builder.ViewPayload) *ViewExecutor {
	return &ViewExecutor{payload: payload, submitter: s}
}

// Fetch evaluates the bound view and returns the raw result values.
func (e *ViewExecutor) Fetch(ctx context.Context) ([]json.RawMessage, error) {
	return e.submitter.View(ctx, e.payload)
}
