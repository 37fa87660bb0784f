package history

import (
	"context"
	"fmt"
	"os"

	"github.com/jhakola/vocablo/internal/catalog"
	"github.com/jhakola/vocablo/internal/store"
)

// Service owns the history document. Only RecordGameCompletion mutates
// it; the selection engine and the preview feature read it.
type Service struct {
	doc  Document
	docs store.DocumentRepo
}

// NewService loads the history document from the store, resetting to an
// empty valid state with a warning when the stored blob is unreadable.
func NewService(ctx context.Context, docs store.DocumentRepo) *Service {
	s := &Service{docs: docs}

	raw, err := docs.Load(ctx, store.DocHistory)
	if err == nil && raw != nil {
		doc, derr := DecodeDocument(raw)
		if derr == nil {
			s.doc = doc
			return s
		}
		err = derr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: resetting session history:", err)
	}

	s.doc = make(Document)
	return s
}

// RecordGameCompletion appends a completed session's item keys for the
// scope, evicting the oldest retained session beyond the bound, and
// persists the whole document atomically.
func (s *Service) RecordGameCompletion(ctx context.Context, scope string, itemKeys []string) error {
	if scope == "" || len(itemKeys) == 0 {
		return nil
	}

	sh, ok := s.doc[scope]
	if !ok {
		sh = &ScopeHistory{}
		s.doc[scope] = sh
	}

	keys := make([]string, len(itemKeys))
	copy(keys, itemKeys)
	sh.Games = append(sh.Games, keys)
	if len(sh.Games) > MaxStoredSessions {
		sh.Games = sh.Games[len(sh.Games)-MaxStoredSessions:]
	}

	raw, err := s.doc.Encode()
	if err != nil {
		return err
	}
	if err := s.docs.Save(ctx, store.DocHistory, raw); err != nil {
		return fmt.Errorf("persist history document: %w", err)
	}
	return nil
}

// PreviousSessions returns up to limit past sessions for the scope,
// most recent first, resolved back to full items via the catalog. Keys
// the catalog no longer knows are silently dropped.
func (s *Service) PreviousSessions(scope string, limit int, cat *catalog.Catalog) [][]catalog.Item {
	sh, ok := s.doc[scope]
	if !ok || limit <= 0 {
		return nil
	}

	var out [][]catalog.Item
	for i := len(sh.Games) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, cat.Resolve(sh.Games[i]))
	}
	return out
}

// RecentlyUsedKeys returns the set of item keys used across the last
// lookback sessions for the scope. This is the primary signal for
// avoiding immediate repeats across sessions.
func (s *Service) RecentlyUsedKeys(scope string, lookback int) map[string]bool {
	used := make(map[string]bool)
	sh, ok := s.doc[scope]
	if !ok || lookback <= 0 {
		return used
	}

	start := len(sh.Games) - lookback
	if start < 0 {
		start = 0
	}
	for _, game := range sh.Games[start:] {
		for _, key := range game {
			used[key] = true
		}
	}
	return used
}

// Reset wipes all stored history.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.docs.Delete(ctx, store.DocHistory); err != nil {
		return fmt.Errorf("reset history: %w", err)
	}
	s.doc = make(Document)
	return nil
}
