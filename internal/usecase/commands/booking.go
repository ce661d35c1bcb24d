package commands

import (
	"context"
	"errors"
	"log/slog"

	"tutorhub/internal/domain/booking"
	"tutorhub/internal/domain/notification"
	"tutorhub/internal/domain/slot"
	"tutorhub/internal/infra"
	"tutorhub/internal/infra/cache"
	"tutorhub/internal/pkg/clock"
	"tutorhub/internal/pkg/errs"
	"tutorhub/internal/pkg/identity"
	"tutorhub/internal/pkg/metrics"
	"tutorhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type RequestBookingInput struct {
	SlotID     uuid.UUID
	TutorID    uuid.UUID
	CourseName string
}

type BookingCommands interface {
	// RequestBooking claims an open slot for the acting student. At most one
	// of any number of concurrent claims on the same slot succeeds.
	RequestBooking(ctx context.Context, actor identity.Principal, input RequestBookingInput) (uuid.UUID, error)
	// CancelBooking withdraws a pending or confirmed request and reopens the
	// slot. Either participant may cancel.
	CancelBooking(ctx context.Context, actor identity.Principal, bookingID uuid.UUID) error
}

type bookingImpl struct {
	uow    shared.UnitOfWork
	clk    clock.Clock
	unread *cache.UnreadCountCache
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock, unread *cache.UnreadCountCache) BookingCommands {
	return &bookingImpl{uow: uow, clk: clk, unread: unread}
}

func (c *bookingImpl) RequestBooking(ctx context.Context, actor identity.Principal, input RequestBookingInput) (uuid.UUID, error) {
	if actor.Role != identity.RoleStudent {
		return uuid.Nil, errs.ErrNotAuthorized
	}

	courseName, err := booking.NewCourseName(input.CourseName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	now := c.clk.Now()

	var (
		req     *booking.Request
		tutorID uuid.UUID
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Slots().FindByID(ctx, tx.DB(), input.SlotID)
		if err != nil {
			return mapSlotLookupErr(err)
		}
		// A slot under a different tutor is indistinguishable from a missing
		// one to the caller.
		if !s.IsOwnedBy(input.TutorID) {
			return errs.ErrSlotNotFound
		}
		if err := s.Hold(now); err != nil {
			return errs.Mark(err, errs.ErrSlotUnavailable)
		}
		tutorID = s.TutorID()

		// The conditional update is what decides the race; losers see zero
		// rows affected and fail with a conflict.
		if err := tx.Slots().UpdateStatus(ctx, tx.DB(), s.ID(), slot.StatusOpen, s.Status(), now); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrSlotUnavailable)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		req = booking.NewRequest(s.ID(), actor.UserID, s.TutorID(), courseName, now)
		if err := tx.Bookings().Create(ctx, tx.DB(), req); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrSlotUnavailable)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return emitNotification(ctx, tx, s.TutorID(),
			notification.EventCourseRequest,
			"New booking request",
			"A student requested "+courseName.String()+" for "+formatSlotWindow(s.Period().Start(), s.Period().End())+".",
			map[string]any{
				"booking_id":  req.ID().String(),
				"slot_id":     s.ID().String(),
				"student_id":  actor.UserID.String(),
				"course_name": courseName.String(),
			},
			now,
		)
	})
	if err != nil {
		if errors.Is(err, errs.ErrSlotUnavailable) {
			metrics.IncBookingRequested("conflict")
		}
		return uuid.Nil, err
	}

	metrics.IncBookingRequested("accepted")
	c.invalidateUnread(ctx, tutorID)
	return req.ID(), nil
}

func (c *bookingImpl) CancelBooking(ctx context.Context, actor identity.Principal, bookingID uuid.UUID) error {
	now := c.clk.Now()

	var counterpart uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Bookings().FindByID(ctx, tx.DB(), bookingID)
		if err != nil {
			return mapBookingLookupErr(err)
		}
		if !req.CancellableBy(actor.UserID) {
			return errs.ErrNotAuthorized
		}

		prev := req.Status()
		if err := req.Cancel(now); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, prev, booking.StatusCancelled, now); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrInvalidTransition)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		// A pending request holds the slot, a confirmed one has booked it;
		// either way cancelling reopens it.
		s, err := tx.Slots().FindByID(ctx, tx.DB(), req.SlotID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		slotPrev := s.Status()
		if err := s.Release(now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Slots().UpdateStatus(ctx, tx.DB(), s.ID(), slotPrev, s.Status(), now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		counterpart = req.CounterpartOf(actor.UserID)
		return emitNotification(ctx, tx, counterpart,
			notification.EventBookingCancelled,
			"Booking cancelled",
			"The booking for "+req.CourseName().String()+" was cancelled.",
			map[string]any{
				"booking_id":  bookingID.String(),
				"slot_id":     req.SlotID().String(),
				"course_name": req.CourseName().String(),
			},
			now,
		)
	})
	if err != nil {
		return err
	}

	metrics.IncBookingCancelled()
	c.invalidateUnread(ctx, counterpart)
	return nil
}

func (c *bookingImpl) invalidateUnread(ctx context.Context, recipientIDs ...uuid.UUID) {
	if err := c.unread.Invalidate(ctx, recipientIDs...); err != nil {
		slog.Warn("failed to invalidate unread count cache", "error", err)
	}
}
