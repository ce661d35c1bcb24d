package commands

import (
	"context"
	"log/slog"

	"tutorhub/internal/infra/cache"
	"tutorhub/internal/pkg/clock"
	"tutorhub/internal/pkg/errs"
	"tutorhub/internal/pkg/identity"
	"tutorhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	// MarkRead marks a single notification read. Only the recipient may do so.
	MarkRead(ctx context.Context, actor identity.Principal, notificationID uuid.UUID) error
	// MarkAllRead marks every unread notification of the actor read and
	// returns how many were affected.
	MarkAllRead(ctx context.Context, actor identity.Principal) (int64, error)
	// Delete removes a notification. Only the recipient may do so.
	Delete(ctx context.Context, actor identity.Principal, notificationID uuid.UUID) error
}

type notificationImpl struct {
	uow    shared.UnitOfWork
	clk    clock.Clock
	unread *cache.UnreadCountCache
}

func NewNotificationCommands(uow shared.UnitOfWork, clk clock.Clock, unread *cache.UnreadCountCache) NotificationCommands {
	return &notificationImpl{uow: uow, clk: clk, unread: unread}
}

func (c *notificationImpl) MarkRead(ctx context.Context, actor identity.Principal, notificationID uuid.UUID) error {
	now := c.clk.Now()

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().FindByID(ctx, tx.DB(), notificationID)
		if err != nil {
			return mapNotificationLookupErr(err)
		}
		if !n.BelongsTo(actor.UserID) {
			return errs.ErrNotAuthorized
		}

		if err := tx.Notifications().MarkRead(ctx, tx.DB(), notificationID, now); err != nil {
			return mapNotificationLookupErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.invalidateUnread(ctx, actor.UserID)
	return nil
}

func (c *notificationImpl) MarkAllRead(ctx context.Context, actor identity.Principal) (int64, error) {
	now := c.clk.Now()

	var affected int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		affected, err = tx.Notifications().MarkAllRead(ctx, tx.DB(), actor.UserID, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	c.invalidateUnread(ctx, actor.UserID)
	return affected, nil
}

func (c *notificationImpl) Delete(ctx context.Context, actor identity.Principal, notificationID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().FindByID(ctx, tx.DB(), notificationID)
		if err != nil {
			return mapNotificationLookupErr(err)
		}
		if !n.BelongsTo(actor.UserID) {
			return errs.ErrNotAuthorized
		}

		if err := tx.Notifications().Delete(ctx, tx.DB(), notificationID); err != nil {
			return mapNotificationLookupErr(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.invalidateUnread(ctx, actor.UserID)
	return nil
}

func (c *notificationImpl) invalidateUnread(ctx context.Context, recipientID uuid.UUID) {
	if err := c.unread.Invalidate(ctx, recipientID); err != nil {
		slog.Warn("failed to invalidate unread count cache", "error", err)
	}
}
