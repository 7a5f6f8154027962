// Package person contains the pure business logic for the person registry.
// This is part of the Functional Core - no I/O, only pure functions.
package person

import "fmt"

// GeneratePersonID generates a person ID from the last issued sequence number.
// The format is PERSON-XXX where XXX is a zero-padded 3-digit number.
func GeneratePersonID(lastSeq int) string {
	return fmt.Sprintf("PERSON-%03d", lastSeq+1)
}

// ParsePersonNumber extracts the numeric portion from a person ID.
// Returns -1 if the ID format is invalid.
func ParsePersonNumber(id string) int {
	var num int
	_, err := fmt.Sscanf(id, "PERSON-%d", &num)
	if err != nil {
		return -1
	}
	return num
}
