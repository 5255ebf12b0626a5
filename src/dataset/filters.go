package dataset

import "sort"

// YearIs returns the rows observed in exactly the given year.
func (rows Indicators) YearIs(year int) Indicators {
	out := Indicators{}
	for _, r := range rows {
		if r.Year == year {
			out = append(out, r)
		}
	}
	return out
}

// UpTo returns the rows observed in or before the cutoff year.
func (rows Indicators) UpTo(cutoff int) Indicators {
	out := Indicators{}
	for _, r := range rows {
		if r.Year <= cutoff {
			out = append(out, r)
		}
	}
	return out
}

// Years returns the distinct years present, ascending.
func (rows Indicators) Years() []int {
	seen := map[int]bool{}
	for _, r := range rows {
		seen[r.Year] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Span returns the smallest and largest year present. ok is false for an
// empty table.
func (rows Indicators) Span() (min, max int, ok bool) {
	if len(rows) == 0 {
		return 0, 0, false
	}
	min, max = rows[0].Year, rows[0].Year
	for _, r := range rows[1:] {
		if r.Year < min {
			min = r.Year
		}
		if r.Year > max {
			max = r.Year
		}
	}
	return min, max, true
}

// Regions returns the distinct region labels, sorted, so color assignment is
// stable across frames.
func (rows Indicators) Regions() []string {
	seen := map[string]bool{}
	for _, r := range rows {
		seen[r.Region] = true
	}
	out := make([]string, 0, len(seen))
	for reg := range seen {
		out = append(out, reg)
	}
	sort.Strings(out)
	return out
}

// UpTo returns the anomalies observed in or before the cutoff year.
func (rows Anomalies) UpTo(cutoff int) Anomalies {
	out := Anomalies{}
	for _, r := range rows {
		if r.Year <= cutoff {
			out = append(out, r)
		}
	}
	return out
}

// Span returns the smallest and largest year present. ok is false for an
// empty table.
func (rows Anomalies) Span() (min, max int, ok bool) {
	if len(rows) == 0 {
		return 0, 0, false
	}
	min, max = rows[0].Year, rows[0].Year
	for _, r := range rows[1:] {
		if r.Year < min {
			min = r.Year
		}
		if r.Year > max {
			max = r.Year
		}
	}
	return min, max, true
}

// ValueRange returns the smallest and largest anomaly value.
func (rows Anomalies) ValueRange() (min, max float64, ok bool) {
	if len(rows) == 0 {
		return 0, 0, false
	}
	min, max = rows[0].Value, rows[0].Value
	for _, r := range rows[1:] {
		if r.Value < min {
			min = r.Value
		}
		if r.Value > max {
			max = r.Value
		}
	}
	return min, max, true
}

// ByScenario groups simulated trajectories by their scenario label. Rows
// within each group keep their input order.
func (rows Simulations) ByScenario() map[string]Simulations {
	out := map[string]Simulations{}
	for _, r := range rows {
		out[r.Scenario] = append(out[r.Scenario], r)
	}
	return out
}

// Scenarios returns the distinct scenario labels, sorted.
func (rows Simulations) Scenarios() []string {
	seen := map[string]bool{}
	for _, r := range rows {
		seen[r.Scenario] = true
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// ValueRange returns the smallest and largest simulated value.
func (rows Simulations) ValueRange() (min, max float64, ok bool) {
	if len(rows) == 0 {
		return 0, 0, false
	}
	min, max = rows[0].Value, rows[0].Value
	for _, r := range rows[1:] {
		if r.Value < min {
			min = r.Value
		}
		if r.Value > max {
			max = r.Value
		}
	}
	return min, max, true
}
