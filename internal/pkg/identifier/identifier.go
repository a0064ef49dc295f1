// Package identifier generates the human-facing reference codes attached to
// complaints and helpdesk tickets. Codes are a display and lookup convenience;
// the numeric primary key stays the authoritative identity, so the generator
// does not attempt global uniqueness.
package identifier

import (
	"fmt"
	"math/rand"
	"time"
)

// Prefixes for the supported entity types.
const (
	ComplaintPrefix = "CMP"
	TicketPrefix    = "TKT"
)

// New builds a reference code: prefix, the last six digits of the current
// epoch millisecond timestamp, and a zero-padded two-digit random suffix.
func New(prefix string) string {
	millis := time.Now().UnixMilli() % 1_000_000
	return fmt.Sprintf("%s%06d%02d", prefix, millis, rand.Intn(100))
}
