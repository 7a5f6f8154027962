package election

import "fmt"

// GenerateElectionID generates an election ID from the last issued sequence number.
// The format is ELEC-XXX where XXX is a zero-padded 3-digit number.
// Sequence numbers are never reused, so deleted elections leave gaps.
func GenerateElectionID(lastSeq int) string {
	return fmt.Sprintf("ELEC-%03d", lastSeq+1)
}

// ParseElectionNumber extracts the numeric portion from an election ID.
// Returns -1 if the ID format is invalid.
func ParseElectionNumber(id string) int {
	var num int
	_, err := fmt.Sscanf(id, "ELEC-%d", &num)
	if err != nil {
		return -1
	}
	return num
}
