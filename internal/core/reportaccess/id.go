package reportaccess

import "fmt"

// GenerateRequestID generates a report request ID from the last issued sequence number.
// The format is RREQ-XXX where XXX is a zero-padded 3-digit number.
func GenerateRequestID(lastSeq int) string {
	return fmt.Sprintf("RREQ-%03d", lastSeq+1)
}
