package indexer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"hamsterpocket/internal/chain"
	"hamsterpocket/internal/model"
)

const testProgram = "0x7d"

func statusEventJSON(seq int, status string) string {
	return fmt.Sprintf(`{
		"version": "%d",
		"guid": {"creation_number": "4", "account_address": "0x7d"},
		"sequence_number": "%d",
		"type": "0x7d::event::UpdatePocketStatusEvent",
		"data": {
			"id": "p1",
			"actor": "0x2",
			"status": %q,
			"reason": "USER_PAUSED_POCKET",
			"timestamp": "1700000000"
		}
	}`, 100+seq, seq, status)
}

// eventServer serves a fixed stream of update_pocket_status events with
// [start, start+limit) windowing.
func eventServer(t *testing.T, total int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start, _ := strconv.Atoi(r.URL.Query().Get("start"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		entries := make([]json.RawMessage, 0, limit)
		for seq := start; seq < start+limit && seq < total; seq++ {
			entries = append(entries, json.RawMessage(statusEventJSON(seq, "1")))
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entries)
	}))
}

func newTestIndexer(t *testing.T, server *httptest.Server) *Indexer {
	t.Helper()
	ix, err := New(chain.NewClient(server.URL), testProgram, nil)
	if err != nil {
		t.Fatalf("new indexer: %v", err)
	}
	return ix
}

func TestFetchDecodesTypedEvents(t *testing.T) {
	server := eventServer(t, 3)
	defer server.Close()

	events, err := newTestIndexer(t, server).Fetch(context.Background(), model.EventUpdatePocketStatus, 0, 3)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("want 3 events, got %d", len(events))
	}

	first := events[0]
	if first.Name != model.EventUpdatePocketStatus || first.SequenceNumber != 0 || first.CreationNumber != 4 {
		t.Fatalf("event keys mismatch: %+v", first)
	}
	payload, ok := first.Data.(model.UpdatePocketStatusEvent)
	if !ok {
		t.Fatalf("payload must decode to UpdatePocketStatusEvent, got %T", first.Data)
	}
	if payload.ID != "p1" || payload.Status != model.StatusPaused || payload.Reason != model.ReasonUserPausedPocket {
		t.Fatalf("payload mismatch: %+v", payload)
	}
	if payload.Timestamp != 1700000000 {
		t.Fatalf("timestamp mismatch: %d", payload.Timestamp)
	}
}

func TestFetchPaginationIsCompleteAndOrdered(t *testing.T) {
	server := eventServer(t, 6)
	defer server.Close()
	ix := newTestIndexer(t, server)

	first, err := ix.Fetch(context.Background(), model.EventUpdatePocketStatus, 0, 3)
	if err != nil {
		t.Fatalf("first page failed: %v", err)
	}
	second, err := ix.Fetch(context.Background(), model.EventUpdatePocketStatus, 3, 3)
	if err != nil {
		t.Fatalf("second page failed: %v", err)
	}

	all := append(first, second...)
	if len(all) != 6 {
		t.Fatalf("pages must concatenate to the full stream, got %d", len(all))
	}
	for i, event := range all {
		if event.SequenceNumber != uint64(i) {
			t.Fatalf("sequence gap or overlap at %d: %d", i, event.SequenceNumber)
		}
	}
}

func TestFetchPastEndIsEmpty(t *testing.T) {
	server := eventServer(t, 2)
	defer server.Close()

	events, err := newTestIndexer(t, server).Fetch(context.Background(), model.EventUpdatePocketStatus, 50, 10)
	if err != nil {
		t.Fatalf("past-the-end fetch must not error: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("past-the-end fetch must be empty, got %d", len(events))
	}
}

func TestDecodeDepositStatsEvent(t *testing.T) {
	raw := chain.RawEvent{
		Version:        "12",
		SequenceNumber: "3",
	}
	raw.GUID.CreationNumber = "4"
	raw.GUID.AccountAddress = "0x7d"
	raw.Data = json.RawMessage(`{
		"id": "p1",
		"actor": "0x2",
		"amount": "10000",
		"coin_type": "0x1::aptos_coin::AptosCoin",
		"reason": "USER_DEPOSITED_ASSET",
		"timestamp": "1700000007"
	}`)

	event, err := decodeEvent(model.EventUpdateDepositStats, raw)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	payload, ok := event.Data.(model.UpdateDepositStatsEvent)
	if !ok {
		t.Fatalf("payload type mismatch: %T", event.Data)
	}
	if payload.Amount.Cmp(big.NewInt(10000)) != 0 || payload.CoinType != "0x1::aptos_coin::AptosCoin" {
		t.Fatalf("payload mismatch: %+v", payload)
	}
}

func TestDecodeRejectsBadPayload(t *testing.T) {
	raw := chain.RawEvent{SequenceNumber: "0"}
	raw.GUID.CreationNumber = "4"
	raw.Data = json.RawMessage(`{"id": "p1", "amount": "abc", "timestamp": "1"}`)

	var decodeErr *model.DecodeError
	if _, err := decodeEvent(model.EventUpdateDepositStats, raw); !errors.As(err, &decodeErr) {
		t.Fatalf("want DecodeError, got %v", err)
	}

	if _, err := decodeEvent(model.EventName("unknown_stream"), raw); !errors.As(err, &decodeErr) {
		t.Fatalf("unknown event name must be a DecodeError, got %v", err)
	}
}

type memoryStore struct {
	events []model.PocketEvent
	calls  int
}

func (m *memoryStore) PutEventBatch(_ context.Context, events []model.PocketEvent) error {
	m.events = append(m.events, events...)
	m.calls++
	return nil
}

func TestRunnerDrainsStream(t *testing.T) {
	server := eventServer(t, 5)
	defer server.Close()

	store := &memoryStore{}
	checkpointPath := filepath.Join(t.TempDir(), "checkpoint.json")

	runner := NewRunner(RunConfig{
		EventName:         model.EventUpdatePocketStatus,
		PageSize:          2,
		CheckpointPath:    checkpointPath,
		CheckpointEnabled: true,
	}, newTestIndexer(t, server), store, nil)

	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(store.events) != 5 {
		t.Fatalf("want 5 stored events, got %d", len(store.events))
	}
	for i, event := range store.events {
		if event.SequenceNumber != uint64(i) {
			t.Fatalf("stored events out of order at %d: %d", i, event.SequenceNumber)
		}
	}

	// A second run resumes from the checkpoint and finds nothing new.
	second := &memoryStore{}
	runner = NewRunner(RunConfig{
		EventName:         model.EventUpdatePocketStatus,
		PageSize:          2,
		CheckpointPath:    checkpointPath,
		CheckpointEnabled: true,
	}, newTestIndexer(t, server), second, nil)

	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("resumed run failed: %v", err)
	}
	if len(second.events) != 0 {
		t.Fatalf("resumed run must not re-store events, got %d", len(second.events))
	}
}
