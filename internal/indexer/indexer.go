// Package indexer reads the program's on-chain event streams in paginated
// windows and decodes them into typed domain events.
package indexer

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"hamsterpocket/internal/chain"
	"hamsterpocket/internal/model"
)

// Indexer fetches and decodes pocket events. It holds no cache: every call
// re-queries the node for the requested window.
type Indexer struct {
	client  *chain.Client
	program chain.AccountAddress
	logger  *zap.Logger
}

// New builds an Indexer for the given program (resource account) address.
func New(client *chain.Client, programAddress string, logger *zap.Logger) (*Indexer, error) {
	program, err := chain.ParseAddress(programAddress)
	if err != nil {
		return nil, fmt.Errorf("program address: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Indexer{client: client, program: program, logger: logger}, nil
}

// EventHandle is the fully qualified event manager resource holding every
// event stream field.
func (ix *Indexer) EventHandle() string {
	return ix.program.Hex() + "::event::EventManager"
}

// Fetch returns the decoded events of one stream, ascending by sequence
// number, windowed by [start, start+limit). A window past the end of the
// stream returns an empty slice.
func (ix *Indexer) Fetch(ctx context.Context, name model.EventName, start, limit uint64) ([]model.PocketEvent, error) {
	raw, err := ix.client.EventsByHandle(ctx, ix.program, ix.EventHandle(), string(name), start, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch %s events: %w", name, err)
	}

	events := make([]model.PocketEvent, 0, len(raw))
	for _, entry := range raw {
		event, err := decodeEvent(name, entry)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].SequenceNumber < events[j].SequenceNumber
	})

	ix.logger.Debug("fetched events",
		zap.String("event", string(name)),
		zap.Uint64("start", start),
		zap.Uint64("limit", limit),
		zap.Int("count", len(events)),
	)
	return events, nil
}
