package txn

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"hamsterpocket/internal/builder"
	"hamsterpocket/internal/chain"
)

type fakeNode struct {
	simulateSuccess  bool
	simulateVMStatus string

	txnStatuses []chain.TransactionInfo
	txnPolls    atomic.Int64
	submissions atomic.Int64
}

func (n *fakeNode) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, map[string]interface{}{"chain_id": 4, "ledger_version": "100"})
	})

	mux.HandleFunc("/accounts/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]interface{}{
			"sequence_number":    "7",
			"authentication_key": "0x00",
		})
	})

	mux.HandleFunc("/transactions/simulate", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]interface{}{{
			"success":   n.simulateSuccess,
			"vm_status": n.simulateVMStatus,
			"gas_used":  "55",
		}})
	})

	mux.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		n.submissions.Add(1)
		writeJSON(w, map[string]interface{}{"hash": "0xhash"})
	})

	mux.HandleFunc("/transactions/by_hash/", func(w http.ResponseWriter, r *http.Request) {
		i := int(n.txnPolls.Add(1)) - 1
		if i >= len(n.txnStatuses) {
			i = len(n.txnStatuses) - 1
		}
		writeJSON(w, n.txnStatuses[i])
	})

	return mux
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func newTestSubmitter(t *testing.T, node *fakeNode) (*Submitter, func()) {
	t.Helper()

	server := httptest.NewServer(node.handler())

	account, err := chain.NewAccountFromSeedHex(strings.Repeat("07", 32))
	if err != nil {
		t.Fatalf("account: %v", err)
	}

	s := NewSubmitter(chain.NewClient(server.URL), account, nil)
	s.pollInterval = time.Millisecond
	return s, server.Close
}

func testPayload(t *testing.T) builder.EntryFunctionPayload {
	t.Helper()
	b, err := builder.New("0x7d")
	if err != nil {
		t.Fatalf("builder: %v", err)
	}
	payload, err := b.PausePocket("p1")
	if err != nil {
		t.Fatalf("payload: %v", err)
	}
	return payload
}

func TestSimulateFailureBlocksSubmission(t *testing.T) {
	node := &fakeNode{simulateSuccess: false, simulateVMStatus: "Move abort 0x2329"}
	s, done := newTestSubmitter(t, node)
	defer done()

	_, err := s.Execute(context.Background(), testPayload(t), true)

	var simErr *SimulationError
	if !errors.As(err, &simErr) {
		t.Fatalf("want SimulationError, got %v", err)
	}
	if simErr.VMStatus != "Move abort 0x2329" {
		t.Fatalf("abort reason must be preserved verbatim: %q", simErr.VMStatus)
	}
	if node.submissions.Load() != 0 {
		t.Fatalf("a failed simulation must never reach submission")
	}
}

func TestExecuteWaitsForFinality(t *testing.T) {
	node := &fakeNode{
		simulateSuccess: true,
		txnStatuses: []chain.TransactionInfo{
			{Type: "pending_transaction", Hash: "0xhash"},
			{Type: "user_transaction", Hash: "0xhash", Success: true, VMStatus: "Executed successfully"},
		},
	}
	s, done := newTestSubmitter(t, node)
	defer done()

	hash, err := s.Execute(context.Background(), testPayload(t), true)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if hash != "0xhash" {
		t.Fatalf("unexpected hash: %s", hash)
	}
	if node.submissions.Load() != 1 {
		t.Fatalf("want exactly one submission, got %d", node.submissions.Load())
	}
	if node.txnPolls.Load() < 2 {
		t.Fatalf("wait must poll past the pending state")
	}
}

func TestFinalizedFailureIsSubmissionError(t *testing.T) {
	node := &fakeNode{
		simulateSuccess: true,
		txnStatuses: []chain.TransactionInfo{
			{Type: "user_transaction", Hash: "0xhash", Success: false, VMStatus: "Move abort 0x1f4: not admin"},
		},
	}
	s, done := newTestSubmitter(t, node)
	defer done()

	_, err := s.Execute(context.Background(), testPayload(t), true)

	var subErr *SubmissionError
	if !errors.As(err, &subErr) {
		t.Fatalf("want SubmissionError, got %v", err)
	}
	if subErr.VMStatus != "Move abort 0x1f4: not admin" {
		t.Fatalf("abort code must be preserved verbatim: %q", subErr.VMStatus)
	}
}

func TestFireAndForgetSkipsWait(t *testing.T) {
	node := &fakeNode{
		simulateSuccess: true,
		txnStatuses: []chain.TransactionInfo{
			{Type: "pending_transaction", Hash: "0xhash"},
		},
	}
	s, done := newTestSubmitter(t, node)
	defer done()

	hash, err := s.Execute(context.Background(), testPayload(t), false)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if hash != "0xhash" {
		t.Fatalf("unexpected hash: %s", hash)
	}
	if node.txnPolls.Load() != 0 {
		t.Fatalf("fire-and-forget must not poll for finality")
	}
}

func TestWaitBudgetExceededIsTimeout(t *testing.T) {
	node := &fakeNode{
		simulateSuccess: true,
		txnStatuses: []chain.TransactionInfo{
			{Type: "pending_transaction", Hash: "0xhash"},
		},
	}
	s, done := newTestSubmitter(t, node)
	defer done()

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	err := s.Wait(ctx, "0xhash")

	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("want TimeoutError, got %v", err)
	}
	var subErr *SubmissionError
	if errors.As(err, &subErr) {
		t.Fatalf("a timeout must stay distinct from a submission failure")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("timeout must wrap the context error")
	}
}
