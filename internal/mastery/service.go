package mastery

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jhakola/vocablo/internal/catalog"
	"github.com/jhakola/vocablo/internal/store"
)

// Service owns the mastery document. It is the only writer; the
// selection engine and the statistics aggregator read through it.
type Service struct {
	doc       Document
	docs      store.DocumentRepo
	attempts  store.AttemptRepo
	sessionID string
	now       func() time.Time
}

// NewService loads the mastery document from the store. A document that
// is unreadable or fails validation resets to an empty valid state with
// a warning; it is never merged into later writes.
func NewService(ctx context.Context, docs store.DocumentRepo, attempts store.AttemptRepo) *Service {
	s := &Service{
		docs:     docs,
		attempts: attempts,
		now:      time.Now,
	}

	raw, err := docs.Load(ctx, store.DocMastery)
	if err == nil && raw != nil {
		doc, derr := DecodeDocument(raw)
		if derr == nil {
			s.doc = doc
			return s
		}
		err = derr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: resetting mastery data:", err)
	}

	s.doc = NewDocument(s.now())
	return s
}

// SetSessionID tags subsequently recorded attempts with a session ID.
func (s *Service) SetSessionID(id string) {
	s.sessionID = id
}

// RecordAnswer records one real attempt for the (item, direction, tier)
// triple: it increments the matching outcome bucket, recomputes the
// score, and persists the whole document atomically. Not idempotent --
// callers must call exactly once per user action.
func (s *Service) RecordAnswer(ctx context.Context, itemKey string, dir catalog.Direction, tier string, outcome Outcome) error {
	if !outcome.Valid() {
		return fmt.Errorf("invalid outcome %q", outcome)
	}

	now := s.now()
	rec := s.doc.ensureRecord(itemKey, string(dir), tier)
	rec.apply(outcome, now)
	s.doc.Meta.UpdatedAt = now

	if err := s.save(ctx); err != nil {
		return err
	}

	// The attempt log is observability, not source of truth; a failed
	// append must not fail the answer.
	if s.attempts != nil {
		err := s.attempts.Append(ctx, store.AttemptData{
			SessionID: s.sessionID,
			ItemKey:   itemKey,
			Direction: string(dir),
			Tier:      tier,
			Outcome:   string(outcome),
			CreatedAt: now,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: failed to log attempt:", err)
		}
	}

	return nil
}

// GetRecord returns a copy of the record for the triple.
func (s *Service) GetRecord(itemKey string, dir catalog.Direction, tier string) (Record, bool) {
	rec := s.doc.record(itemKey, string(dir), tier)
	if rec == nil {
		return Record{}, false
	}
	return *rec, true
}

// Score returns the 0-100 score for the triple, or 0 for an
// unpracticed item.
func (s *Service) Score(itemKey string, dir catalog.Direction, tier string) float64 {
	rec := s.doc.record(itemKey, string(dir), tier)
	if rec == nil {
		return 0
	}
	return rec.Score
}

// Snapshot returns a deep copy of the current document for readers that
// must not observe later mutations (the statistics aggregator).
func (s *Service) Snapshot() Document {
	out := NewDocument(s.doc.Meta.CreatedAt)
	out.Meta = s.doc.Meta
	for key, byDir := range s.doc.Items {
		out.Items[key] = make(map[string]map[string]*Record, len(byDir))
		for dir, byTier := range byDir {
			out.Items[key][dir] = make(map[string]*Record, len(byTier))
			for tier, rec := range byTier {
				cp := *rec
				out.Items[key][dir][tier] = &cp
			}
		}
	}
	return out
}

// Reset wipes all mastery records and the attempt log. All-or-nothing:
// the in-memory document is only replaced once the stores have cleared.
func (s *Service) Reset(ctx context.Context) error {
	if err := s.docs.Delete(ctx, store.DocMastery); err != nil {
		return fmt.Errorf("reset mastery: %w", err)
	}
	if s.attempts != nil {
		if err := s.attempts.Reset(ctx); err != nil {
			return fmt.Errorf("reset attempts: %w", err)
		}
	}
	s.doc = NewDocument(s.now())
	return nil
}

func (s *Service) save(ctx context.Context) error {
	raw, err := s.doc.Encode()
	if err != nil {
		return err
	}
	if err := s.docs.Save(ctx, store.DocMastery, raw); err != nil {
		return fmt.Errorf("persist mastery document: %w", err)
	}
	return nil
}
