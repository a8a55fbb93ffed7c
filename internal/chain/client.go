package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const bcsSignedTransactionMediaType = "application/x.aptos.signed_transaction+bcs"

// Client is a thin REST client for a fullnode. It keeps no state beyond the
// base URL and is safe for concurrent reuse.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a node client from the fullnode base URL (including the
// API version prefix).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-2xx response from the node.
type APIError struct {
	StatusCode int
	Message    string `json:"message"`
	ErrorCode  string `json:"error_code"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("node API %d (%s): %s", e.StatusCode, e.ErrorCode, e.Message)
}

// IsNotFound reports whether the node answered 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// LedgerInfo is the chain-level state returned by the API root.
type LedgerInfo struct {
	ChainID             uint8  `json:"chain_id"`
	LedgerVersion       string `json:"ledger_version"`
	LedgerTimestampUsec string `json:"ledger_timestamp"`
}

// AccountInfo is the on-chain account head state.
type AccountInfo struct {
	SequenceNumber    string `json:"sequence_number"`
	AuthenticationKey string `json:"authentication_key"`
}

// Resource is one account resource in its raw JSON form.
type Resource struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// RawEvent is one undecoded entry from an event stream.
type RawEvent struct {
	Version string `json:"version"`
	GUID    struct {
		CreationNumber string `json:"creation_number"`
		AccountAddress string `json:"account_address"`
	} `json:"guid"`
	SequenceNumber string          `json:"sequence_number"`
	Type           string          `json:"type"`
	Data           json.RawMessage `json:"data"`
}

// ViewRequest is a read-only function call. Arguments travel in their
// canonical string/hex JSON form, not as binary encodings.
type ViewRequest struct {
	Function      string        `json:"function"`
	TypeArguments []string      `json:"type_arguments"`
	Arguments     []interface{} `json:"arguments"`
}

// PendingTransaction is the submission handle returned by the node.
type PendingTransaction struct {
	Hash string `json:"hash"`
}

// TransactionInfo is the committed or pending transaction state.
type TransactionInfo struct {
	Type     string `json:"type"`
	Hash     string `json:"hash"`
	Success  bool   `json:"success"`
	VMStatus string `json:"vm_status"`
}

// Pending reports whether the transaction has not yet been committed.
func (t TransactionInfo) Pending() bool {
	return t.Type == "pending_transaction"
}

// SimulationResult is one dry-run outcome.
type SimulationResult struct {
	Success  bool   `json:"success"`
	VMStatus string `json:"vm_status"`
	GasUsed  string `json:"gas_used"`
}

// LedgerInfo fetches chain id and ledger head.
func (c *Client) LedgerInfo(ctx context.Context) (LedgerInfo, error) {
	var info LedgerInfo
	err := c.get(ctx, "", &info)
	return info, err
}

// Account fetches the account head state.
func (c *Client) Account(ctx context.Context, address AccountAddress) (AccountInfo, error) {
	var info AccountInfo
	err := c.get(ctx, "/accounts/"+address.Hex(), &info)
	return info, err
}

// AccountResources lists all resources under an account.
func (c *Client) AccountResources(ctx context.Context, address AccountAddress) ([]Resource, error) {
	var resources []Resource
	err := c.get(ctx, "/accounts/"+address.Hex()+"/resources", &resources)
	return resources, err
}

// AccountResource fetches a single resource by its fully qualified type.
func (c *Client) AccountResource(ctx context.Context, address AccountAddress, resourceType string) (Resource, error) {
	var resource Resource
	err := c.get(ctx, "/accounts/"+address.Hex()+"/resource/"+url.PathEscape(resourceType), &resource)
	return resource, err
}

// EventsByHandle fetches one page of an event stream field, windowed by
// [start, start+limit). A window past the end of the stream yields an empty
// list.
func (c *Client) EventsByHandle(ctx context.Context, account AccountAddress, handle, field string, start, limit uint64) ([]RawEvent, error) {
	path := fmt.Sprintf("/accounts/%s/events/%s/%s?start=%d&limit=%d",
		account.Hex(), url.PathEscape(handle), url.PathEscape(field), start, limit)

	var events []RawEvent
	err := c.get(ctx, path, &events)
	return events, err
}

// View evaluates a read-only function and returns its raw result values.
func (c *Client) View(ctx context.Context, req ViewRequest) ([]json.RawMessage, error) {
	var results []json.RawMessage
	err := c.post(ctx, "/view", "application/json", req, &results)
	return results, err
}

// SubmitBCS submits a BCS-encoded signed transaction.
func (c *Client) SubmitBCS(ctx context.Context, signedTxn []byte) (PendingTransaction, error) {
	var pending PendingTransaction
	err := c.postBytes(ctx, "/transactions", bcsSignedTransactionMediaType, signedTxn, &pending)
	return pending, err
}

// SimulateBCS dry-runs a BCS-encoded transaction carrying a zeroed
// signature.
func (c *Client) SimulateBCS(ctx context.Context, txn []byte) ([]SimulationResult, error) {
	var results []SimulationResult
	err := c.postBytes(ctx, "/transactions/simulate", bcsSignedTransactionMediaType, txn, &results)
	return results, err
}

// TransactionByHash fetches a submitted transaction by its hash.
func (c *Client) TransactionByHash(ctx context.Context, hash string) (TransactionInfo, error) {
	var info TransactionInfo
	err := c.get(ctx, "/transactions/by_hash/"+url.PathEscape(hash), &info)
	return info, err
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path, contentType string, body interface{}, out interface{}) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	return c.postBytes(ctx, path, contentType, encoded, out)
}

func (c *Client) postBytes(ctx context.Context, path, contentType string, body []byte, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
