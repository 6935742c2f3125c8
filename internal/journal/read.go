package journal

import (
	"context"
	"fmt"
	"time"
)

// Entries returns all journal entries in seq order.
func (l *Log) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT seq, kind, user_id, entity_id, payload, created_at
		FROM entries
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			kind      string
			payload   string
			createdAt string
		)
		if err := rows.Scan(&e.Seq, &kind, &e.UserID, &e.EntityID, &payload, &createdAt); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Kind = Kind(kind)
		e.Payload = []byte(payload)
		e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse entry %d created_at: %w", e.Seq, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read entries: %w", err)
	}
	return entries, nil
}

// LastSeq returns the highest sequence number in the journal, or 0 when
// the journal is empty. Used to resume the engine's clock.
func (l *Log) LastSeq(ctx context.Context) (int64, error) {
	var seq int64
	err := l.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq), 0) FROM entries
	`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("last seq: %w", err)
	}
	return seq, nil
}
