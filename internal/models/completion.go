package models

// CompletionMap records per-habit, per-date completion counts:
// habit id → date (YYYY-MM-DD) → non-negative count. A missing date entry is
// equivalent to count zero.
type CompletionMap map[string]map[string]int

// Count returns the completion count for a habit on a date.
func (c CompletionMap) Count(habitID, date string) int {
	return c[habitID][date]
}

// Clone returns a deep copy. Engine accessors hand out copies so callers
// cannot mutate canonical state behind the engine's back.
func (c CompletionMap) Clone() CompletionMap {
	if c == nil {
		return CompletionMap{}
	}
	out := make(CompletionMap, len(c))
	for habitID, dates := range c {
		d := make(map[string]int, len(dates))
		for date, count := range dates {
			d[date] = count
		}
		out[habitID] = d
	}
	return out
}

// CloneDates returns a copy of one habit's date map, or an empty map if the
// habit has no recorded completions.
func (c CompletionMap) CloneDates(habitID string) map[string]int {
	dates := c[habitID]
	out := make(map[string]int, len(dates))
	for date, count := range dates {
		out[date] = count
	}
	return out
}
