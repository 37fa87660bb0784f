package stats

// Milestone is one coverage or count target on the progress ladder.
type Milestone struct {
	Description string
	Current     int
	Target      int
	Reached     bool
}

// nextMilestone walks the ladder in order and returns the nearest
// not-yet-reached target. When every milestone is met, the final one is
// returned marked reached so progress views still have something to
// show.
func nextMilestone(r Report) Milestone {
	known100 := 0
	known500 := 0
	for _, c := range r.Coverage {
		switch c.Band {
		case 100:
			known100 = c.Known
		case 500:
			known500 = c.Known
		}
	}

	ladder := []Milestone{
		{Description: "Practice your first word", Current: r.TotalPracticed, Target: 1},
		{Description: "Practice 10 different words", Current: r.TotalPracticed, Target: 10},
		{Description: "Know 10 words", Current: r.Known, Target: 10},
		{Description: "Practice 50 different words", Current: r.TotalPracticed, Target: 50},
		{Description: "Know 25 of the 100 most common words", Current: known100, Target: 25},
		{Description: "Know 50 words", Current: r.Known, Target: 50},
		{Description: "Master 25 words", Current: r.Mastered, Target: 25},
		{Description: "Know 100 of the 500 most common words", Current: known500, Target: 100},
		{Description: "Know 200 words", Current: r.Known, Target: 200},
		{Description: "Master 100 words", Current: r.Mastered, Target: 100},
	}

	for _, m := range ladder {
		if m.Current < m.Target {
			return m
		}
	}

	last := ladder[len(ladder)-1]
	last.Reached = true
	return last
}
