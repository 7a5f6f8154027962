package election

import (
	"math"

	"github.com/example/electa/internal/core/domainerr"
)

// IncrementTally adds exactly one vote to a candidate's tally.
func IncrementTally(votes uint32) (uint32, error) {
	if votes == math.MaxUint32 {
		return 0, domainerr.New(domainerr.ErrOverflow, "candidate tally cannot exceed %d votes", uint32(math.MaxUint32))
	}
	return votes + 1, nil
}

// CountVotesCast sums candidate tallies into a 64-bit total.
func CountVotesCast(tallies []uint32) (uint64, error) {
	var total uint64
	for _, v := range tallies {
		if total > math.MaxUint64-uint64(v) {
			return 0, domainerr.New(domainerr.ErrOverflow, "votes cast exceed %d", uint64(math.MaxUint64))
		}
		total += uint64(v)
	}
	return total, nil
}

// ParticipationPct returns votesCast / eligibleVoters as a percentage.
func ParticipationPct(votesCast uint64, eligibleVoters int) (float64, error) {
	if eligibleVoters <= 0 {
		return 0, domainerr.New(domainerr.ErrDivisionByZero, "election has no eligible voters")
	}
	return float64(votesCast) * 100 / float64(eligibleVoters), nil
}
