package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// frequencyDocument is the on-disk frequency metadata format: slugged
// item keys mapped to rank and CEFR band.
type frequencyDocument struct {
	Version  int                      `json:"version"`
	Language string                   `json:"language"`
	Words    map[string]frequencyWord `json:"words"`
}

type frequencyWord struct {
	Rank int    `json:"rank"`
	CEFR string `json:"cefr"`
}

// ResolveFrequency performs the one-shot frequency metadata read. It is
// the only asynchronous boundary around selection: callers resolve the
// table here and apply it to the catalog before any session is built,
// so the selection path itself never suspends. An empty path reads the
// embedded seed table.
func ResolveFrequency(ctx context.Context, path string) (map[string]FrequencyMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw := seedFrequencyJSON
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read frequency data %s: %w", path, err)
		}
		raw = b
	}

	var doc frequencyDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode frequency data: %w", err)
	}

	out := make(map[string]FrequencyMeta, len(doc.Words))
	for key, w := range doc.Words {
		if w.Rank <= 0 {
			continue
		}
		out[key] = FrequencyMeta{
			Rank:    w.Rank,
			CEFR:    w.CEFR,
			Top100:  w.Rank <= 100,
			Top500:  w.Rank <= 500,
			Top1000: w.Rank <= 1000,
			Top5000: w.Rank <= 5000,
		}
	}
	return out, nil
}
