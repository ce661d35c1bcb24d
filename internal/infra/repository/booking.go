package repository

import (
	"context"
	"errors"
	"time"

	"tutorhub/internal/domain/booking"
	"tutorhub/internal/infra"
	"tutorhub/internal/infra/db"
	"tutorhub/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct{}

func NewBookingRepository() shared.BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, req *booking.Request) error {
	query := `
		INSERT INTO booking_requests (id, slot_id, student_id, tutor_id, course_name, status, created_at, decided_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := dbtx.Exec(ctx, query,
		req.ID(),
		req.SlotID(),
		req.StudentID(),
		req.TutorID(),
		req.CourseName().String(),
		req.Status().String(),
		req.CreatedAt(),
		req.DecidedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindConflict, "slot already has an active booking", err)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, "slot does not exist", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create booking request", err)
	}

	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Request, error) {
	query := `
		SELECT id, slot_id, student_id, tutor_id, course_name, status, created_at, decided_at
		FROM booking_requests
		WHERE id = $1
	`

	var (
		bookingID  uuid.UUID
		slotID     uuid.UUID
		studentID  uuid.UUID
		tutorID    uuid.UUID
		courseName string
		status     string
		createdAt  time.Time
		decidedAt  *time.Time
	)

	err := dbtx.QueryRow(ctx, query, id).Scan(
		&bookingID, &slotID, &studentID, &tutorID, &courseName, &status, &createdAt, &decidedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}

	course, err := booking.NewCourseName(courseName)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored course name is invalid", err)
	}

	return booking.ReconstructRequest(
		bookingID, slotID, studentID, tutorID,
		course, booking.Status(status), createdAt, decidedAt,
	), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, expected, next booking.Status, decidedAt time.Time) error {
	query := `
		UPDATE booking_requests
		SET status = $3, decided_at = $4
		WHERE id = $1 AND status = $2
	`

	tag, err := dbtx.Exec(ctx, query, id, expected.String(), next.String(), decidedAt)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindConflict, "booking is no longer "+expected.String(), nil)
	}

	return nil
}

func (r *BookingRepository) ActiveStudentIDs(ctx context.Context, dbtx db.DBTX, tutorID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT student_id
		FROM booking_requests
		WHERE tutor_id = $1 AND status IN ('pending', 'confirmed')
	`

	rows, err := dbtx.Query(ctx, query, tutorID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list active students", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan student id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate active students", err)
	}

	return ids, nil
}
