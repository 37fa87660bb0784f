package stats

import "testing"

func TestNextMilestone_Ladder(t *testing.T) {
	tests := []struct {
		name   string
		report Report
		want   string
	}{
		{
			"nothing practiced",
			Report{},
			"Practice your first word",
		},
		{
			"first word done",
			Report{TotalPracticed: 1},
			"Practice 10 different words",
		},
		{
			"breadth before depth",
			Report{TotalPracticed: 10, Known: 3},
			"Know 10 words",
		},
		{
			"coverage milestone",
			Report{
				TotalPracticed: 60,
				Known:          20,
				Coverage:       []BandCoverage{{Band: 100, CatalogItems: 80, Known: 12}},
			},
			"Know 25 of the 100 most common words",
		},
	}

	for _, tc := range tests {
		got := nextMilestone(tc.report)
		if got.Description != tc.want {
			t.Errorf("%s: nextMilestone() = %q, want %q", tc.name, got.Description, tc.want)
		}
		if got.Reached {
			t.Errorf("%s: unmet milestone marked reached", tc.name)
		}
	}
}

func TestNextMilestone_AllReached(t *testing.T) {
	report := Report{
		TotalPracticed: 500,
		Known:          300,
		Mastered:       150,
		Coverage: []BandCoverage{
			{Band: 100, CatalogItems: 100, Known: 90},
			{Band: 500, CatalogItems: 400, Known: 300},
		},
	}

	got := nextMilestone(report)
	if !got.Reached {
		t.Error("final milestone not marked reached when the whole ladder is met")
	}
	if got.Description != "Master 100 words" {
		t.Errorf("final milestone = %q, want the last ladder entry", got.Description)
	}
}
