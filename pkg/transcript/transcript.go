// Package transcript holds the in-memory exchange log of a chat session and
// writes snapshots of it to disk.
package transcript

import "time"

// Exchange is one user prompt paired with the assistant reply.
type Exchange struct {
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Claude    string    `json:"claude"`
}

// Store is an append-only, chronologically ordered list of exchanges.
// It can only grow or be reset to empty. Not safe for concurrent use.
type Store struct {
	exchanges []Exchange
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds e at the end of the log.
func (s *Store) Append(e Exchange) {
	s.exchanges = append(s.exchanges, e)
}

// All returns a copy of the stored exchanges in insertion order.
func (s *Store) All() []Exchange {
	out := make([]Exchange, len(s.exchanges))
	copy(out, s.exchanges)
	return out
}

// Len returns the number of stored exchanges.
func (s *Store) Len() int {
	return len(s.exchanges)
}

// Clear discards every stored exchange.
func (s *Store) Clear() {
	s.exchanges = nil
}
