package audit

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Action kinds recorded in the log.
const (
	ActionCreateTicket = "CREATE_TICKET"
	ActionCheckStatus  = "CHECK_STATUS"
)

// Entry is an immutable audit record. Field names match the wire format the
// operator tooling already reads.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	IP        string    `json:"ip"`
	Action    string    `json:"action"`
	Email     string    `json:"email,omitempty"`
	TicketID  string    `json:"ticketId,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Category  string    `json:"category,omitempty"`
	Status    string    `json:"status,omitempty"`
	Owner     string    `json:"owner,omitempty"`
}

// Store appends entries to a newline-delimited JSON file. Appends from
// concurrent requests interleave freely; each one is a single write, and the
// log order is whatever order the writes landed in.
type Store struct {
	path   string
	mu     sync.Mutex
	file   *os.File
	logger *zap.Logger
}

// NewStore opens (or creates) the log file for appending.
func NewStore(path string, logger *zap.Logger) (*Store, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	return &Store{path: path, file: file, logger: logger}, nil
}

// Append writes one entry to the log.
func (s *Store) Append(entry Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode audit entry: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.file.Write(line); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

// List returns all entries, most recent first. Corrupt lines are skipped; a
// missing or empty file yields an empty list.
func (s *Store) List() ([]Entry, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer file.Close()

	entries := []Entry{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			s.logger.Warn("skipping corrupt audit line", zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Close releases the underlying file.
func (s *Store) Close() {
	if s == nil || s.file == nil {
		return
	}
	_ = s.file.Close()
}
