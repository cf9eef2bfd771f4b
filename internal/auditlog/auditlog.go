// ABOUTME: Append-only audit trail of queries and answers
// ABOUTME: Best-effort: write failures never abort a query
package auditlog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Record is one audited question/answer pair, one JSON line per record.
type Record struct {
	Timestamp time.Time `json:"timestamp"`
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
}

// Log appends records to a file. Safe for concurrent use.
type Log struct {
	mu sync.Mutex
	f  *os.File
}

// Open opens (or creates) the audit log at path for appending.
func Open(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening audit log %s: %w", path, err)
	}
	return &Log{f: f}, nil
}

// Record appends one query/answer pair with the current timestamp.
func (l *Log) Record(query, answer string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec := Record{
		Timestamp: time.Now().UTC(),
		Query:     query,
		Answer:    answer,
	}

	enc := json.NewEncoder(l.f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return fmt.Errorf("writing audit record: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (l *Log) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}

// ReadAll parses every record from an audit log file, oldest first.
func ReadAll(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading audit log %s: %w", path, err)
	}

	var records []Record
	dec := json.NewDecoder(bytes.NewReader(data))
	for dec.More() {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("decoding audit record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
