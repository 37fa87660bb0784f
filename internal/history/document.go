// Package history owns the per-scope record of item sets used in
// recent practice sessions. It feeds the selection engine's
// repeat-avoidance and the previous-sessions preview.
package history

import (
	"encoding/json"
	"fmt"
)

// MaxStoredSessions bounds how many completed sessions are retained per
// scope; the oldest is evicted first.
const MaxStoredSessions = 5

// DefaultLookback is how many recent sessions the selection engine
// considers when avoiding repeats across sessions.
const DefaultLookback = 3

// ScopeHistory holds the retained sessions for one scope, oldest first.
// Sessions are stored as key lists, never as live items, so stale
// content cannot corrupt history.
type ScopeHistory struct {
	Games [][]string `json:"games"`
}

// Document is the persisted history state, keyed by scope.
type Document map[string]*ScopeHistory

// DecodeDocument parses a stored history document. Scopes with no
// games and nil game lists are normalized away.
func DecodeDocument(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode history document: %w", err)
	}
	if doc == nil {
		doc = make(Document)
	}
	for scope, sh := range doc {
		if sh == nil {
			delete(doc, scope)
		}
	}
	return doc, nil
}

// Encode serializes the document for storage.
func (d Document) Encode() ([]byte, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode history document: %w", err)
	}
	return raw, nil
}
