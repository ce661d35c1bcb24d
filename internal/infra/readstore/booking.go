package readstore

import (
	"context"
	"errors"

	"tutorhub/internal/infra"
	"tutorhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingSelect = `
	SELECT b.id, b.slot_id, b.student_id, b.tutor_id, b.course_name, b.status,
	       s.start_at, s.end_at, b.created_at, b.decided_at
	FROM booking_requests b
	JOIN time_slots s ON s.id = b.slot_id
`

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) queries.BookingReadStore {
	return &BookingReadStore{pool: pool}
}

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := bookingSelect + ` WHERE b.id = $1`

	view, err := scanBookingView(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}

	return view, nil
}

func (s *BookingReadStore) FindByStudent(ctx context.Context, studentID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	query := bookingSelect + `
		WHERE b.student_id = $1
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2
	`

	return s.queryBookings(ctx, query, studentID, limit)
}

func (s *BookingReadStore) FindByTutor(ctx context.Context, tutorID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	query := bookingSelect + `
		WHERE b.tutor_id = $1
		ORDER BY b.created_at DESC, b.id DESC
		LIMIT $2
	`

	return s.queryBookings(ctx, query, tutorID, limit)
}

func (s *BookingReadStore) queryBookings(ctx context.Context, query string, args ...any) ([]*queries.BookingView, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking rows", err)
	}

	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID,
		&v.SlotID,
		&v.StudentID,
		&v.TutorID,
		&v.CourseName,
		&v.Status,
		&v.SlotStart,
		&v.SlotEnd,
		&v.CreatedAt,
		&v.DecidedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
