package stats

import (
	"testing"
	"time"

	"github.com/jhakola/vocablo/internal/catalog"
	"github.com/jhakola/vocablo/internal/mastery"
)

// docWithScores builds a mastery document where each item has a single
// practiced record engineered to hit the wanted score exactly.
func docWithScores(t *testing.T, scores map[string]float64) mastery.Document {
	t.Helper()
	doc := mastery.NewDocument(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	for key, score := range scores {
		rec := recordForScore(t, score)
		doc.Items[key] = map[string]map[string]*mastery.Record{
			"primary_to_target": {"basic": &rec},
		}
	}
	return doc
}

// recordForScore builds a consistent record out of first tries and
// failures whose score is the wanted multiple of 10.
func recordForScore(t *testing.T, score float64) mastery.Record {
	t.Helper()
	if score < 0 || score > 100 || score != float64(int(score)) || int(score)%10 != 0 {
		t.Fatalf("recordForScore wants a multiple of 10 in [0,100], got %v", score)
	}
	hits := int(score) / 10
	misses := 10 - hits
	return mastery.Record{
		PracticeCount: 10,
		FirstTry:      hits,
		Failed:        misses,
		Score:         score,
	}
}

func coverageCatalog(t *testing.T, ranks map[string]int) *catalog.Catalog {
	t.Helper()
	var items []catalog.Item
	for key := range ranks {
		it := catalog.Item{Key: key, Primary: key, Target: key, Category: "words"}
		items = append(items, it)
	}
	cat, err := catalog.New(items, nil)
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}
	freq := make(map[string]catalog.FrequencyMeta, len(ranks))
	for key, rank := range ranks {
		freq[key] = catalog.FrequencyMeta{Rank: rank}
	}
	cat.ApplyFrequency(freq)
	return cat
}

func TestAggregate_EmptyDocument(t *testing.T) {
	cat := coverageCatalog(t, map[string]int{"perro": 50})
	report := Aggregate(mastery.NewDocument(time.Now()), cat)

	if report.TotalPracticed != 0 || report.Known != 0 || report.Mastered != 0 {
		t.Errorf("empty document produced counts: %+v", report)
	}
	if report.AverageScore != 0 {
		t.Errorf("AverageScore = %v, want 0", report.AverageScore)
	}
	if report.Level != LevelNewcomer {
		t.Errorf("Level = %q, want newcomer", report.Level)
	}
	if report.NextMilestone.Description != "Practice your first word" {
		t.Errorf("NextMilestone = %q, want the first ladder entry", report.NextMilestone.Description)
	}
	if report.NextMilestone.Reached {
		t.Error("first milestone marked reached with no practice")
	}
}

func TestAggregate_Thresholds(t *testing.T) {
	cat := coverageCatalog(t, map[string]int{
		"a": 10, "b": 20, "c": 30, "d": 40,
	})
	doc := docWithScores(t, map[string]float64{
		"a": 90, // mastered, also known
		"b": 60, // known exactly at the threshold
		"c": 50, // practiced, neither known nor weak
		"d": 30, // needs reinforcement
	})

	report := Aggregate(doc, cat)

	if report.TotalPracticed != 4 {
		t.Errorf("TotalPracticed = %d, want 4", report.TotalPracticed)
	}
	if report.Mastered != 1 {
		t.Errorf("Mastered = %d, want 1", report.Mastered)
	}
	if report.Known != 2 {
		t.Errorf("Known = %d, want 2 (mastered counts as known)", report.Known)
	}
	if report.NeedsReinforcement != 1 {
		t.Errorf("NeedsReinforcement = %d, want 1", report.NeedsReinforcement)
	}
	if want := (90.0 + 60 + 50 + 30) / 4; report.AverageScore != want {
		t.Errorf("AverageScore = %v, want %v", report.AverageScore, want)
	}
}

func TestAggregate_ItemScoreAveragesDirections(t *testing.T) {
	cat := coverageCatalog(t, map[string]int{"perro": 10})
	doc := mastery.NewDocument(time.Now())

	strong := recordForScore(t, 100)
	weak := recordForScore(t, 20)
	doc.Items["perro"] = map[string]map[string]*mastery.Record{
		"primary_to_target": {"basic": &strong},
		"target_to_primary": {"basic": &weak},
	}

	report := Aggregate(doc, cat)
	// Mean of 100 and 20 is 60: exactly known, not mastered.
	if report.Known != 1 {
		t.Errorf("Known = %d, want 1", report.Known)
	}
	if report.Mastered != 0 {
		t.Errorf("Mastered = %d, want 0 (one-way mastery is not mastery)", report.Mastered)
	}
}

func TestAggregate_BandCoverage(t *testing.T) {
	cat := coverageCatalog(t, map[string]int{
		"muy-comun": 50,   // top 100
		"comun":     400,  // top 500
		"raro":      3000, // top 5000 only
	})
	doc := docWithScores(t, map[string]float64{
		"muy-comun": 100,
		"comun":     20, // practiced but not known
	})

	report := Aggregate(doc, cat)

	want := map[int][2]int{
		100:  {1, 1}, // catalog items, known
		500:  {2, 1},
		1000: {2, 1},
		5000: {3, 1},
	}
	for _, c := range report.Coverage {
		w, ok := want[c.Band]
		if !ok {
			t.Errorf("unexpected band %d", c.Band)
			continue
		}
		if c.CatalogItems != w[0] || c.Known != w[1] {
			t.Errorf("band %d = %d items / %d known, want %d / %d",
				c.Band, c.CatalogItems, c.Known, w[0], w[1])
		}
	}
}

func TestAggregate_IgnoresItemsWithoutFrequency(t *testing.T) {
	cat := coverageCatalog(t, map[string]int{"ranked": 50})
	// An item with no frequency metadata must not count toward any band.
	extra := catalog.Item{Key: "unranked", Primary: "unranked", Target: "x", Category: "words"}
	cat2, err := catalog.New(append(cat.All(), extra), nil)
	if err != nil {
		t.Fatalf("catalog.New() error: %v", err)
	}

	report := Aggregate(docWithScores(t, map[string]float64{"unranked": 100}), cat2)
	for _, c := range report.Coverage {
		if c.Known != 0 {
			t.Errorf("band %d counts an unranked item as known", c.Band)
		}
	}
}
