package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/taskboard-sync/internal/board"
)

// NotificationLevel classifies a user-facing notification.
type NotificationLevel string

const (
	LevelSuccess NotificationLevel = "success"
	LevelError   NotificationLevel = "error"
)

// Notification is a short user-facing message about a move outcome.
type Notification struct {
	WorkspaceID   string
	TaskID        string
	TransactionID string
	Level         NotificationLevel
	Message       string
	Time          time.Time
}

// Notifier delivers notifications. Delivery is fire and forget: Notify must
// not block on slow consumers and has no error to report.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// BoardListener receives every change applied to a workspace board. It is
// called synchronously by the board store and must return quickly.
type BoardListener interface {
	BoardChanged(change board.Change)
}
