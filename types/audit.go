package types

import "time"

// AuditEntry is the channel payload handed to the async audit logger.
type AuditEntry struct {
	Actor     string
	Action    string
	Entity    string
	Detail    string
	CreatedAt time.Time
}
