package election

import "sort"

// Standing is a candidate's place in the result table.
type Standing struct {
	PersonID string
	Seq      int
	Votes    uint32
}

// RankStandings orders candidates by votes, highest first.
// Ties keep approval order (ascending Seq). The input is not modified.
func RankStandings(standings []Standing) []Standing {
	ranked := make([]Standing, len(standings))
	copy(ranked, standings)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Seq < ranked[j].Seq
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Votes > ranked[j].Votes
	})
	return ranked
}
