package commands

import (
	"context"
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

type ApprovalCommands interface {
	// ApproveBooking confirms a pending request on the actor's own slot and
	// finalizes the slot as booked.
	ApproveBooking(ctx context.Context, actor identity.Principal, bookingID uuid.UUID) error
	// RejectBooking declines a pending request and reopens the slot.
	RejectBooking(ctx context.Context, actor identity.Principal, bookingID uuid.UUID) error
}

type approvalImpl struct {
	uow    shared.UnitOfWork
	clk    clock.Clock
	unread *cache.UnreadCountCache
}

func NewApprovalCommands(uow shared.UnitOfWork, clk clock.Clock, unread *cache.UnreadCountCache) ApprovalCommands {
	return &approvalImpl{uow: uow, clk: clk, unread: unread}
}

func (c *approvalImpl) ApproveBooking(ctx context.Context, actor identity.Principal, bookingID uuid.UUID) error {
	return c.decide(ctx, actor, bookingID, decisionApprove)
}

func (c *approvalImpl) RejectBooking(ctx context.Context, actor identity.Principal, bookingID uuid.UUID) error {
	return c.decide(ctx, actor, bookingID, decisionReject)
}

type decision string

const (
	decisionApprove decision = "approved"
	decisionReject  decision = "rejected"
)

// Approve and reject share the whole flow except for the resulting statuses
// and the notification wording.
func (c *approvalImpl) decide(ctx context.Context, actor identity.Principal, bookingID uuid.UUID, d decision) error {
	if actor.Role != identity.RoleTutor {
		return errs.ErrNotAuthorized
	}

	now := c.clk.Now()

	var studentID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		req, err := tx.Bookings().FindByID(ctx, tx.DB(), bookingID)
		if err != nil {
			return mapBookingLookupErr(err)
		}
		if req.TutorID() != actor.UserID {
			return errs.ErrNotAuthorized
		}

		var applyErr error
		if d == decisionApprove {
			applyErr = req.Approve(now)
		} else {
			applyErr = req.Reject(now)
		}
		if applyErr != nil {
			return errs.Mark(applyErr, errs.ErrBookingNotPending)
		}

		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, booking.StatusPending, req.Status(), now); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrBookingNotPending)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		s, err := tx.Slots().FindByID(ctx, tx.DB(), req.SlotID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		var slotErr error
		if d == decisionApprove {
			slotErr = s.Book(now)
		} else {
			slotErr = s.Release(now)
		}
		if slotErr != nil {
			return errs.Mark(slotErr, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Slots().UpdateStatus(ctx, tx.DB(), s.ID(), slot.StatusHeld, s.Status(), now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		eventType := notification.EventBookingApproved
		title := "Booking approved"
		message := "Your tutor approved the booking for " + req.CourseName().String() + "."
		if d == decisionReject {
			eventType = notification.EventBookingRejected
			title = "Booking rejected"
			message = "Your tutor rejected the booking for " + req.CourseName().String() + "."
		}

		studentID = req.StudentID()
		return emitNotification(ctx, tx, studentID, eventType, title, message,
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

	metrics.IncBookingDecision(string(d))
	if err := c.unread.Invalidate(ctx, studentID); err != nil {
		slog.Warn("failed to invalidate unread count cache", "error", err)
	}
	return nil
}
