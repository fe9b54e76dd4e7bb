package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KritiChandra11/Graph-Augmented-Mail-Summarization/internal/model"
)

// historyCap bounds the retained history; older records are pruned on save.
const historyCap = 50

// HistoryRepository stores completed analysis records. The full record is
// kept as JSON next to a few queryable columns.
type HistoryRepository struct {
	db *pgxpool.Pool
}

func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Save inserts a completed record and prunes history beyond the cap.
func (r *HistoryRepository) Save(ctx context.Context, rec *model.AnalysisRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis record: %w", err)
	}

	query := `
        INSERT INTO analysis_history (id, subject, sender_email, urgency, urgency_score, record, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO NOTHING
    `
	_, err = r.db.Exec(ctx, query,
		rec.ID,
		rec.Email.Subject,
		rec.Email.Sender.Email,
		rec.Analysis.Urgency,
		rec.KnowledgeGraph.UrgencyScore,
		payload,
		rec.Timestamp,
	)
	if err != nil {
		return err
	}

	prune := `
        DELETE FROM analysis_history
        WHERE id NOT IN (
            SELECT id FROM analysis_history
            ORDER BY created_at DESC
            LIMIT $1
        )
    `
	_, err = r.db.Exec(ctx, prune, historyCap)
	return err
}

// ListRecent returns up to limit records, newest first. A non-positive or
// over-cap limit falls back to the cap.
func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]model.AnalysisRecord, error) {
	if limit <= 0 || limit > historyCap {
		limit = historyCap
	}

	query := `
        SELECT record
        FROM analysis_history
        ORDER BY created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []model.AnalysisRecord{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var rec model.AnalysisRecord
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all history.
func (r *HistoryRepository) Clear(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM analysis_history`)
	return err
}
