package logger

import (
	"log"
	"time"

	"hotel-reservation/models/auditlog"
	"hotel-reservation/types"

	"gorm.io/gorm"
)

// AsyncLogger persists audit entries off the request path through a buffered
// channel. Admin and company controllers push one entry per mutation.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.AuditEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.AuditEntry, 100), // Buffered channel to hold audit entries
	}
}

// ProcessLog drains the channel and writes audit rows. Run it as a goroutine.
func (logger *AsyncLogger) ProcessLog() {
	for entry := range logger.channel {
		row := auditlog.AuditLog{
			Actor:     entry.Actor,
			Action:    entry.Action,
			Entity:    entry.Entity,
			Detail:    entry.Detail,
			CreatedAt: entry.CreatedAt,
		}

		if err := logger.db.Create(&row).Error; err != nil {
			log.Printf("Failed to insert audit entry: %v", err)
		}
	}
}

// Log pushes an audit entry into the channel.
func (logger *AsyncLogger) Log(actor, action, entity, detail string) {
	logger.channel <- types.AuditEntry{
		Actor:     actor,
		Action:    action,
		Entity:    entity,
		Detail:    detail,
		CreatedAt: time.Now(),
	}
}
