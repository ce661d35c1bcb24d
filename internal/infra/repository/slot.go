package repository

import (
	"context"
	"errors"
	"time"

	"tutorhub/internal/domain/slot"
	"tutorhub/internal/infra"
	"tutorhub/internal/infra/db"
	"tutorhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SlotRepository struct{}

func NewSlotRepository() shared.SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) Create(ctx context.Context, dbtx db.DBTX, s *slot.Slot) error {
	query := `
		INSERT INTO time_slots (id, tutor_id, start_at, end_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := dbtx.Exec(ctx, query,
		s.ID(),
		s.TutorID(),
		s.Period().Start(),
		s.Period().End(),
		s.Status().String(),
		s.CreatedAt(),
		s.UpdatedAt(),
	)
	if err != nil {
		if isExclusionViolation(err) {
			return infra.WrapRepoErr(infra.KindConflict, "slot overlaps an existing slot", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create slot", err)
	}

	return nil
}

func (r *SlotRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*slot.Slot, error) {
	query := `
		SELECT id, tutor_id, start_at, end_at, status, created_at, updated_at
		FROM time_slots
		WHERE id = $1
	`

	row := dbtx.QueryRow(ctx, query, id)
	s, err := scanSlot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "slot not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find slot", err)
	}

	return s, nil
}

func (r *SlotRepository) HasOverlap(ctx context.Context, dbtx db.DBTX, tutorID uuid.UUID, period slot.Period, excludeID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM time_slots
			WHERE tutor_id = $1
			  AND id <> $2
			  AND start_at < $4
			  AND end_at > $3
		)
	`

	var exists bool
	err := dbtx.QueryRow(ctx, query, tutorID, excludeID, period.Start(), period.End()).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr(infra.KindDBFailure, "failed to check slot overlap", err)
	}

	return exists, nil
}

func (r *SlotRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, expected, next slot.Status, now time.Time) error {
	query := `
		UPDATE time_slots
		SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
	`

	tag, err := dbtx.Exec(ctx, query, id, expected.String(), next.String(), now)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update slot status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "slot is no longer "+expected.String(), nil)
	}

	return nil
}

func (r *SlotRepository) UpdatePeriod(ctx context.Context, dbtx db.DBTX, id uuid.UUID, period slot.Period, now time.Time) error {
	query := `
		UPDATE time_slots
		SET start_at = $2, end_at = $3, updated_at = $4
		WHERE id = $1 AND status = 'open'
	`

	tag, err := dbtx.Exec(ctx, query, id, period.Start(), period.End(), now)
	if err != nil {
		if isExclusionViolation(err) {
			return infra.WrapRepoErr(infra.KindConflict, "slot overlaps an existing slot", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update slot period", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "slot is no longer open", nil)
	}

	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	query := `DELETE FROM time_slots WHERE id = $1 AND status = 'open'`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "slot is no longer open", nil)
	}

	return nil
}

func scanSlot(row pgx.Row) (*slot.Slot, error) {
	var (
		id        uuid.UUID
		tutorID   uuid.UUID
		startAt   time.Time
		endAt     time.Time
		status    string
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&id, &tutorID, &startAt, &endAt, &status, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	period, err := slot.NewPeriod(startAt, endAt)
	if err != nil {
		return nil, err
	}

	return slot.ReconstructSlot(id, tutorID, period, slot.Status(status), createdAt, updatedAt), nil
}
