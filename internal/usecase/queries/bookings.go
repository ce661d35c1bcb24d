package queries

import (
	"context"

	"tutorhub/internal/pkg/errs"
	"tutorhub/internal/pkg/identity"

	"github.com/google/uuid"
)

type BookingQueries interface {
	// GetByID is restricted to the two participants of the booking.
	GetByID(ctx context.Context, actor identity.Principal, id uuid.UUID) (*BookingView, error)
	ListByActor(ctx context.Context, actor identity.Principal, limit int) ([]*BookingView, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByStudent(ctx context.Context, studentID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByTutor(ctx context.Context, tutorID uuid.UUID, limit int32) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor identity.Principal, id uuid.UUID) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if view.StudentID != actor.UserID && view.TutorID != actor.UserID {
		return nil, errs.ErrNotAuthorized
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListByActor(ctx context.Context, actor identity.Principal, limit int) ([]*BookingView, error) {
	validated := int32(ValidateLimit(limit))

	if actor.Role == identity.RoleTutor {
		return q.store.FindByTutor(ctx, actor.UserID, validated)
	}
	return q.store.FindByStudent(ctx, actor.UserID, validated)
}
