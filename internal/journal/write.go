package journal

import (
	"context"
	"fmt"
	"time"
)

// Append inserts an entry into the journal.
// Uses ON CONFLICT(seq) DO NOTHING for idempotency - re-appending an
// entry with a seq already in the log is silently ignored, so a retried
// mutation cannot double-record.
func (l *Log) Append(ctx context.Context, e Entry) error {
	if e.Kind == "" {
		return fmt.Errorf("append entry: kind is required")
	}
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO entries
		(seq, kind, user_id, entity_id, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(seq) DO NOTHING
	`,
		e.Seq,
		string(e.Kind),
		e.UserID,
		e.EntityID,
		string(e.Payload),
		e.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}
