package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SessionRecord is one finished session's result row. A record is
// written exactly once, when a session reaches its summary; abandoned
// sessions leave no trace.
type SessionRecord struct {
	ID            string
	FinishedAt    time.Time
	DomainFilter  string
	DurationSecs  int
	Correct       int
	Wrong         int
	Requeued      int
	TotalAnswered int
	AccuracyPct   int
}

// HistoryRepo provides access to finished-session records.
type HistoryRepo interface {
	// Append stores a finished session's record.
	Append(ctx context.Context, rec *SessionRecord) error

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]SessionRecord, error)
}

// historyRepo implements HistoryRepo over the sessions table.
type historyRepo struct {
	db *sql.DB
}

func (r *historyRepo) Append(ctx context.Context, rec *SessionRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions
			(id, finished_at, domain_filter, duration_secs,
			 correct, wrong, requeued, total_answered, accuracy_pct)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.FinishedAt, rec.DomainFilter, rec.DurationSecs,
		rec.Correct, rec.Wrong, rec.Requeued, rec.TotalAnswered, rec.AccuracyPct,
	)
	if err != nil {
		return fmt.Errorf("append session record: %w", err)
	}
	return nil
}

func (r *historyRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, finished_at, domain_filter, duration_secs,
		       correct, wrong, requeued, total_answered, accuracy_pct
		FROM sessions
		ORDER BY finished_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	defer rows.Close()

	var recs []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		err := rows.Scan(
			&rec.ID, &rec.FinishedAt, &rec.DomainFilter, &rec.DurationSecs,
			&rec.Correct, &rec.Wrong, &rec.Requeued, &rec.TotalAnswered, &rec.AccuracyPct,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session records: %w", err)
	}
	return recs, nil
}
