package mastery

import (
	"encoding/json"
	"fmt"
	"time"
)

// DocumentVersion is the current mastery document schema version.
const DocumentVersion = 1

// Records is the nested record map: item key, then direction, then tier.
type Records map[string]map[string]map[string]*Record

// Document is the persisted mastery state.
type Document struct {
	Version int     `json:"version"`
	Meta    Meta    `json:"meta"`
	Items   Records `json:"items"`
}

// Meta tracks document lifecycle timestamps.
type Meta struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDocument returns an empty, valid document.
func NewDocument(now time.Time) Document {
	return Document{
		Version: DocumentVersion,
		Meta:    Meta{CreatedAt: now, UpdatedAt: now},
		Items:   make(Records),
	}
}

// DecodeDocument parses and validates a stored mastery document.
// Unknown top-level fields are ignored; a structurally broken document
// is an error so the caller can reset to an empty valid state instead
// of merging garbage into later writes.
func DecodeDocument(raw []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("decode mastery document: %w", err)
	}
	if doc.Version <= 0 || doc.Version > DocumentVersion {
		return Document{}, fmt.Errorf("unsupported mastery document version %d", doc.Version)
	}
	if doc.Items == nil {
		doc.Items = make(Records)
	}
	for key, byDir := range doc.Items {
		for dir, byTier := range byDir {
			for tier, rec := range byTier {
				if rec == nil || !rec.consistent() {
					return Document{}, fmt.Errorf(
						"mastery record %s/%s/%s: outcome buckets do not sum to practice count",
						key, dir, tier)
				}
			}
		}
	}
	return doc, nil
}

// Encode serializes the document for storage.
func (d *Document) Encode() ([]byte, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode mastery document: %w", err)
	}
	return raw, nil
}

// record returns the record for the triple, or nil if absent.
func (d *Document) record(key, dir, tier string) *Record {
	byDir, ok := d.Items[key]
	if !ok {
		return nil
	}
	byTier, ok := byDir[dir]
	if !ok {
		return nil
	}
	return byTier[tier]
}

// ensureRecord returns the record for the triple, creating the nested
// maps and an empty record on first use.
func (d *Document) ensureRecord(key, dir, tier string) *Record {
	byDir, ok := d.Items[key]
	if !ok {
		byDir = make(map[string]map[string]*Record)
		d.Items[key] = byDir
	}
	byTier, ok := byDir[dir]
	if !ok {
		byTier = make(map[string]*Record)
		byDir[dir] = byTier
	}
	rec, ok := byTier[tier]
	if !ok {
		rec = &Record{}
		byTier[tier] = rec
	}
	return rec
}
