package shared

import (
	"context"
	"time"

	"tutorhub/internal/domain/booking"
	"tutorhub/internal/domain/notification"
	"tutorhub/internal/domain/slot"
	"tutorhub/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Slots() SlotRepository
	Bookings() BookingRepository
	Notifications() NotificationRepository
	DB() db.DBTX
}

type SlotRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, s *slot.Slot) error
	// FindByID returns KindNotFound when the slot does not exist.
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*slot.Slot, error)
	// HasOverlap reports whether any slot of the tutor intersects the period,
	// excluding excludeID (pass uuid.Nil to exclude nothing).
	HasOverlap(ctx context.Context, dbtx db.DBTX, tutorID uuid.UUID, period slot.Period, excludeID uuid.UUID) (bool, error)
	// UpdateStatus is a compare-and-set on the status column; it returns
	// KindConflict when the row is no longer in the expected status.
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, expected, next slot.Status, now time.Time) error
	// UpdatePeriod rewrites the interval of an open slot; KindConflict when
	// the slot left the open status in the meantime.
	UpdatePeriod(ctx context.Context, dbtx db.DBTX, id uuid.UUID, period slot.Period, now time.Time) error
	// Delete removes an open slot; KindConflict when it is held or booked.
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, req *booking.Request) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*booking.Request, error)
	// UpdateStatus is the per-booking compare-and-set; KindConflict when the
	// request already left the expected status.
	UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, expected, next booking.Status, decidedAt time.Time) error
	// ActiveStudentIDs returns the distinct students holding a pending or
	// confirmed request with the tutor, for schedule-change fan-out.
	ActiveStudentIDs(ctx context.Context, dbtx db.DBTX, tutorID uuid.UUID) ([]uuid.UUID, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, n *notification.Notification) error
	FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*notification.Notification, error)
	MarkRead(ctx context.Context, dbtx db.DBTX, id uuid.UUID, now time.Time) error
	MarkAllRead(ctx context.Context, dbtx db.DBTX, recipientID uuid.UUID, now time.Time) (int64, error)
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}
