package mastery

import (
	"context"
	"testing"
	"time"

	"github.com/jhakola/vocablo/internal/catalog"
	"github.com/jhakola/vocablo/internal/store"
)

type fakeDocs struct {
	blobs map[string][]byte
}

func newFakeDocs() *fakeDocs {
	return &fakeDocs{blobs: make(map[string][]byte)}
}

func (f *fakeDocs) Load(ctx context.Context, key string) ([]byte, error) {
	return f.blobs[key], nil
}

func (f *fakeDocs) Save(ctx context.Context, key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	f.blobs[key] = cp
	return nil
}

func (f *fakeDocs) Delete(ctx context.Context, key string) error {
	delete(f.blobs, key)
	return nil
}

type fakeAttempts struct {
	appended []store.AttemptData
}

func (f *fakeAttempts) Append(ctx context.Context, data store.AttemptData) error {
	f.appended = append(f.appended, data)
	return nil
}

func (f *fakeAttempts) RecentActivity(ctx context.Context, since time.Time) (store.ActivitySummary, error) {
	return store.ActivitySummary{}, nil
}

func (f *fakeAttempts) Reset(ctx context.Context) error {
	f.appended = nil
	return nil
}

func TestServiceRecordAnswer(t *testing.T) {
	ctx := context.Background()
	docs := newFakeDocs()
	attempts := &fakeAttempts{}

	svc := NewService(ctx, docs, attempts)
	svc.SetSessionID("session-1")

	err := svc.RecordAnswer(ctx, "perro", catalog.PrimaryToTarget, "basic", OutcomeFirstTry)
	if err != nil {
		t.Fatalf("RecordAnswer() error: %v", err)
	}
	if err := svc.RecordAnswer(ctx, "perro", catalog.PrimaryToTarget, "basic", OutcomeFailed); err != nil {
		t.Fatalf("RecordAnswer() error: %v", err)
	}

	rec, ok := svc.GetRecord("perro", catalog.PrimaryToTarget, "basic")
	if !ok {
		t.Fatal("GetRecord() found no record after two answers")
	}
	if rec.PracticeCount != 2 || rec.FirstTry != 1 || rec.Failed != 1 {
		t.Errorf("record = %+v, want count 2, first try 1, failed 1", rec)
	}
	if got := svc.Score("perro", catalog.PrimaryToTarget, "basic"); got != 50 {
		t.Errorf("Score() = %v, want 50", got)
	}

	// Every answer persists the whole document.
	if docs.blobs[store.DocMastery] == nil {
		t.Error("mastery document was not persisted")
	}

	// Both attempts land in the log, tagged with the session.
	if len(attempts.appended) != 2 {
		t.Fatalf("attempt log has %d entries, want 2", len(attempts.appended))
	}
	if attempts.appended[0].SessionID != "session-1" {
		t.Errorf("attempt SessionID = %q, want %q", attempts.appended[0].SessionID, "session-1")
	}
	if attempts.appended[1].Outcome != string(OutcomeFailed) {
		t.Errorf("attempt Outcome = %q, want %q", attempts.appended[1].Outcome, OutcomeFailed)
	}
}

func TestServiceRecordAnswer_InvalidOutcome(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, newFakeDocs(), nil)

	if err := svc.RecordAnswer(ctx, "perro", catalog.PrimaryToTarget, "basic", "nope"); err == nil {
		t.Error("RecordAnswer() accepted an invalid outcome")
	}
}

func TestServiceTracksDirectionsIndependently(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, newFakeDocs(), nil)

	if err := svc.RecordAnswer(ctx, "perro", catalog.PrimaryToTarget, "basic", OutcomeFirstTry); err != nil {
		t.Fatalf("RecordAnswer() error: %v", err)
	}

	if got := svc.Score("perro", catalog.PrimaryToTarget, "basic"); got != 100 {
		t.Errorf("practiced direction score = %v, want 100", got)
	}
	if got := svc.Score("perro", catalog.TargetToPrimary, "basic"); got != 0 {
		t.Errorf("unpracticed direction score = %v, want 0", got)
	}
	if _, ok := svc.GetRecord("perro", catalog.TargetToPrimary, "basic"); ok {
		t.Error("GetRecord() invented a record for the unpracticed direction")
	}
}

func TestServiceReloadsPersistedState(t *testing.T) {
	ctx := context.Background()
	docs := newFakeDocs()

	first := NewService(ctx, docs, nil)
	if err := first.RecordAnswer(ctx, "gato", catalog.PrimaryToTarget, "basic", OutcomeSecondTry); err != nil {
		t.Fatalf("RecordAnswer() error: %v", err)
	}

	second := NewService(ctx, docs, nil)
	rec, ok := second.GetRecord("gato", catalog.PrimaryToTarget, "basic")
	if !ok {
		t.Fatal("reloaded service lost the record")
	}
	if rec.SecondTry != 1 || rec.Score != 50 {
		t.Errorf("reloaded record = %+v, want second try 1, score 50", rec)
	}
}

func TestServiceCorruptDocumentResets(t *testing.T) {
	ctx := context.Background()
	docs := newFakeDocs()
	docs.blobs[store.DocMastery] = []byte("{broken")

	svc := NewService(ctx, docs, nil)
	if got := svc.Score("perro", catalog.PrimaryToTarget, "basic"); got != 0 {
		t.Errorf("Score() after corrupt load = %v, want 0", got)
	}

	// The fresh document must be writable again.
	if err := svc.RecordAnswer(ctx, "perro", catalog.PrimaryToTarget, "basic", OutcomeFirstTry); err != nil {
		t.Fatalf("RecordAnswer() after reset: %v", err)
	}
}

func TestServiceSnapshotIsIsolated(t *testing.T) {
	ctx := context.Background()
	svc := NewService(ctx, newFakeDocs(), nil)

	if err := svc.RecordAnswer(ctx, "perro", catalog.PrimaryToTarget, "basic", OutcomeFirstTry); err != nil {
		t.Fatalf("RecordAnswer() error: %v", err)
	}

	snap := svc.Snapshot()
	if err := svc.RecordAnswer(ctx, "perro", catalog.PrimaryToTarget, "basic", OutcomeFailed); err != nil {
		t.Fatalf("RecordAnswer() error: %v", err)
	}

	rec := snap.record("perro", string(catalog.PrimaryToTarget), "basic")
	if rec == nil {
		t.Fatal("snapshot lost the record")
	}
	if rec.PracticeCount != 1 {
		t.Errorf("snapshot PracticeCount = %d, want 1 (must not see later writes)", rec.PracticeCount)
	}
}

func TestServiceReset(t *testing.T) {
	ctx := context.Background()
	docs := newFakeDocs()
	attempts := &fakeAttempts{}

	svc := NewService(ctx, docs, attempts)
	if err := svc.RecordAnswer(ctx, "perro", catalog.PrimaryToTarget, "basic", OutcomeFirstTry); err != nil {
		t.Fatalf("RecordAnswer() error: %v", err)
	}

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("Reset() error: %v", err)
	}
	if _, ok := svc.GetRecord("perro", catalog.PrimaryToTarget, "basic"); ok {
		t.Error("record survived Reset()")
	}
	if docs.blobs[store.DocMastery] != nil {
		t.Error("persisted document survived Reset()")
	}
	if len(attempts.appended) != 0 {
		t.Error("attempt log survived Reset()")
	}
}
