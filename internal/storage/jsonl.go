package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"hamsterpocket/internal/model"
)

// JsonlStore appends decoded events to a JSONL file.
type JsonlStore struct {
	path string
	mu   sync.Mutex
}

func NewJsonlStore(path string) *JsonlStore {
	return &JsonlStore{path: path}
}

type jsonlRecord struct {
	Name           model.EventName `json:"event_name"`
	AccountAddress string          `json:"account_address"`
	CreationNumber uint64          `json:"creation_number"`
	SequenceNumber uint64          `json:"sequence_number"`
	Version        uint64          `json:"version"`
	Data           interface{}     `json:"data"`
}

// PutEventBatch appends a batch of events as JSON lines.
func (s *JsonlStore) PutEventBatch(_ context.Context, events []model.PocketEvent) error {
	if len(events) == 0 {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for _, event := range events {
		line, err := json.Marshal(jsonlRecord{
			Name:           event.Name,
			AccountAddress: event.AccountAddress,
			CreationNumber: event.CreationNumber,
			SequenceNumber: event.SequenceNumber,
			Version:        event.Version,
			Data:           event.Data,
		})
		if err != nil {
			return fmt.Errorf("marshal event: %w", err)
		}
		if _, err := writer.Write(line); err != nil {
			return fmt.Errorf("write event: %w", err)
		}
		if err := writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write newline: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}
