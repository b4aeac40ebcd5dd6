// Package notify provides [ports.Notifier] implementations that do not need
// a transport: a structured-log notifier and a fan-out combinator.
package notify

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskboard-sync/internal/ports"
)

var (
	_ ports.Notifier = (*LogNotifier)(nil)
	_ ports.Notifier = Multi(nil)
)

// LogNotifier writes every notification to a structured logger. Failures are
// logged at warn level, everything else at info.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier. A nil logger discards output.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LogNotifier{logger: logger}
}

// Notify implements [ports.Notifier].
func (n *LogNotifier) Notify(ctx context.Context, note ports.Notification) {
	level := slog.LevelInfo
	if note.Level == ports.LevelError {
		level = slog.LevelWarn
	}
	n.logger.Log(ctx, level, note.Message,
		slog.String("workspace_id", note.WorkspaceID),
		slog.String("task_id", note.TaskID),
		slog.String("transaction_id", note.TransactionID),
		slog.String("level", string(note.Level)),
	)
}

// Multi delivers each notification to every notifier in order. Nil entries
// are skipped.
type Multi []ports.Notifier

// Notify implements [ports.Notifier].
func (m Multi) Notify(ctx context.Context, note ports.Notification) {
	for _, n := range m {
		if n != nil {
			n.Notify(ctx, note)
		}
	}
}
