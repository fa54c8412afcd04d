package model

import (
	"kitchenctl/pkg/logging"

	"github.com/google/uuid"
)

// NotificationExpiredMsg is emitted when a notification's timer fires.
type NotificationExpiredMsg struct {
	ID uuid.UUID
}

// NewLogEntryMsg carries a log entry from the logging channel.
type NewLogEntryMsg struct {
	Entry logging.LogEntry
}
