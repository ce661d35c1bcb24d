package readstore

import (
	"context"
	"errors"
	"time"

	"tutorhub/internal/infra"
	"tutorhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SlotReadStore struct {
	pool *pgxpool.Pool
}

func NewSlotReadStore(pool *pgxpool.Pool) queries.SlotReadStore {
	return &SlotReadStore{pool: pool}
}

func (s *SlotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SlotView, error) {
	query := `
		SELECT id, tutor_id, start_at, end_at, status, created_at, updated_at
		FROM time_slots
		WHERE id = $1
	`

	view, err := scanSlotView(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "slot not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find slot", err)
	}

	return view, nil
}

// FindByTutorWindow pages with a keyset on (start_at, id). A zero afterStart
// means the first page.
func (s *SlotReadStore) FindByTutorWindow(ctx context.Context, tutorID uuid.UUID, from, to time.Time, afterStart time.Time, afterID uuid.UUID, limit int32) ([]*queries.SlotView, error) {
	query := `
		SELECT id, tutor_id, start_at, end_at, status, created_at, updated_at
		FROM time_slots
		WHERE tutor_id = $1
		  AND start_at >= $2
		  AND start_at < $3
		  AND ($4::timestamptz IS NULL OR (start_at, id) > ($4, $5))
		ORDER BY start_at ASC, id ASC
		LIMIT $6
	`

	var afterStartArg any
	if !afterStart.IsZero() {
		afterStartArg = afterStart
	}

	rows, err := s.pool.Query(ctx, query, tutorID, from, to, afterStartArg, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list slots", err)
	}
	defer rows.Close()

	var views []*queries.SlotView
	for rows.Next() {
		view, err := scanSlotView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan slot", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read slot rows", err)
	}

	return views, nil
}

func scanSlotView(row pgx.Row) (*queries.SlotView, error) {
	var v queries.SlotView
	if err := row.Scan(&v.ID, &v.TutorID, &v.StartAt, &v.EndAt, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, err
	}
	return &v, nil
}
