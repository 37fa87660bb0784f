package catalog

import (
	_ "embed"
	"fmt"
)

// Embedded seed content: a starter Spanish catalog with English
// translations and Finnish glosses, plus frequency data extracted from
// the OpenSubtitles-derived frequency list.
var (
	//go:embed schema.json
	schemaJSON []byte

	//go:embed data/words.json
	seedWordsJSON []byte

	//go:embed data/frequency.json
	seedFrequencyJSON []byte
)

// Seed returns the embedded starter catalog.
func Seed() (*Catalog, error) {
	c, err := Parse(seedWordsJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return c, nil
}
