package commands

import (
	"context"
	"log/slog"
	"time"

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

type PublishSlotInput struct {
	StartAt time.Time
	EndAt   time.Time
}

type EditSlotInput struct {
	StartAt time.Time
	EndAt   time.Time
}

type AvailabilityCommands interface {
	// PublishSlot opens a new bookable interval for the acting tutor.
	PublishSlot(ctx context.Context, actor identity.Principal, input PublishSlotInput) (uuid.UUID, error)
	// EditSlot rewrites the interval of an open slot owned by the actor.
	EditSlot(ctx context.Context, actor identity.Principal, slotID uuid.UUID, input EditSlotInput) error
	// DeleteSlot removes an open slot owned by the actor.
	DeleteSlot(ctx context.Context, actor identity.Principal, slotID uuid.UUID) error
}

type availabilityImpl struct {
	uow    shared.UnitOfWork
	clk    clock.Clock
	unread *cache.UnreadCountCache
}

func NewAvailabilityCommands(uow shared.UnitOfWork, clk clock.Clock, unread *cache.UnreadCountCache) AvailabilityCommands {
	return &availabilityImpl{uow: uow, clk: clk, unread: unread}
}

func (c *availabilityImpl) PublishSlot(ctx context.Context, actor identity.Principal, input PublishSlotInput) (uuid.UUID, error) {
	if actor.Role != identity.RoleTutor {
		return uuid.Nil, errs.ErrNotAuthorized
	}

	period, err := slot.NewPeriod(input.StartAt, input.EndAt)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidRange)
	}

	now := c.clk.Now()
	s := slot.NewSlot(actor.UserID, period, now)

	var notified []uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		overlaps, err := tx.Slots().HasOverlap(ctx, tx.DB(), actor.UserID, period, uuid.Nil)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if overlaps {
			return errs.ErrSlotConflict
		}

		if err := tx.Slots().Create(ctx, tx.DB(), s); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrSlotConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		notified, err = fanOutToActiveStudents(ctx, tx, actor.UserID,
			notification.EventScheduleCreate,
			"New slot available",
			"Your tutor opened a new slot from "+formatSlotWindow(period.Start(), period.End())+".",
			map[string]any{
				"slot_id":  s.ID().String(),
				"tutor_id": actor.UserID.String(),
				"start_at": period.Start(),
				"end_at":   period.End(),
			},
			now,
		)
		return err
	})
	if err != nil {
		return uuid.Nil, err
	}

	metrics.IncSlotPublished()
	c.invalidateUnread(ctx, notified)
	return s.ID(), nil
}

func (c *availabilityImpl) EditSlot(ctx context.Context, actor identity.Principal, slotID uuid.UUID, input EditSlotInput) error {
	if actor.Role != identity.RoleTutor {
		return errs.ErrNotAuthorized
	}

	period, err := slot.NewPeriod(input.StartAt, input.EndAt)
	if err != nil {
		return errs.Mark(err, errs.ErrInvalidRange)
	}

	now := c.clk.Now()

	var notified []uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Slots().FindByID(ctx, tx.DB(), slotID)
		if err != nil {
			return mapSlotLookupErr(err)
		}
		if !s.IsOwnedBy(actor.UserID) {
			return errs.ErrNotAuthorized
		}
		if err := s.Reschedule(period, now); err != nil {
			return errs.Mark(err, errs.ErrSlotNotEditable)
		}

		overlaps, err := tx.Slots().HasOverlap(ctx, tx.DB(), actor.UserID, period, slotID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if overlaps {
			return errs.ErrSlotConflict
		}

		if err := tx.Slots().UpdatePeriod(ctx, tx.DB(), slotID, period, now); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrSlotConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		notified, err = fanOutToActiveStudents(ctx, tx, actor.UserID,
			notification.EventScheduleUpdate,
			"Slot rescheduled",
			"Your tutor moved a slot to "+formatSlotWindow(period.Start(), period.End())+".",
			map[string]any{
				"slot_id":  slotID.String(),
				"tutor_id": actor.UserID.String(),
				"start_at": period.Start(),
				"end_at":   period.End(),
			},
			now,
		)
		return err
	})
	if err != nil {
		return err
	}

	c.invalidateUnread(ctx, notified)
	return nil
}

func (c *availabilityImpl) DeleteSlot(ctx context.Context, actor identity.Principal, slotID uuid.UUID) error {
	if actor.Role != identity.RoleTutor {
		return errs.ErrNotAuthorized
	}

	now := c.clk.Now()

	var notified []uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Slots().FindByID(ctx, tx.DB(), slotID)
		if err != nil {
			return mapSlotLookupErr(err)
		}
		if !s.IsOwnedBy(actor.UserID) {
			return errs.ErrNotAuthorized
		}
		if !s.IsOpen() {
			return errs.ErrSlotNotEditable
		}

		if err := tx.Slots().Delete(ctx, tx.DB(), slotID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.Mark(err, errs.ErrSlotNotEditable)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		notified, err = fanOutToActiveStudents(ctx, tx, actor.UserID,
			notification.EventScheduleDelete,
			"Slot removed",
			"Your tutor removed the slot from "+formatSlotWindow(s.Period().Start(), s.Period().End())+".",
			map[string]any{
				"slot_id":  slotID.String(),
				"tutor_id": actor.UserID.String(),
				"start_at": s.Period().Start(),
				"end_at":   s.Period().End(),
			},
			now,
		)
		return err
	})
	if err != nil {
		return err
	}

	c.invalidateUnread(ctx, notified)
	return nil
}

func (c *availabilityImpl) invalidateUnread(ctx context.Context, recipientIDs []uuid.UUID) {
	if err := c.unread.Invalidate(ctx, recipientIDs...); err != nil {
		slog.Warn("failed to invalidate unread count cache", "error", err)
	}
}
