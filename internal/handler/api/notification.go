package api

import (
	"context"
	"errors"
	"net/http"

	resdto "tutorhub/internal/handler/dto/response"
	"tutorhub/internal/handler/httperr"
	"tutorhub/internal/handler/middleware"
	"tutorhub/internal/pkg/errs"
	"tutorhub/internal/pkg/identity"
	"tutorhub/internal/usecase/commands"
	"tutorhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	notifications       commands.NotificationCommands
	notificationQueries queries.NotificationQueries
}

func NewNotificationHandler(notifications commands.NotificationCommands, notificationQueries queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{
		notifications:       notifications,
		notificationQueries: notificationQueries,
	}
}

// @Summary List notifications
// @Description List the acting user's notifications newest first with cursor pagination
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread_only query bool false "Only unread notifications"
// @Param limit query int false "Page size"
// @Param cursor query string false "Opaque page cursor"
// @Success 200 {object} resdto.NotificationListResponse
// @Failure 400 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var after *queries.Cursor
	if cursor := c.Query("cursor"); cursor != "" {
		after = &queries.Cursor{After: cursor}
	}

	unreadOnly := c.Query("unread_only") == "true"

	result, err := h.notificationQueries.ListByRecipient(c.Request.Context(), principal.UserID, unreadOnly, after, intQuery(c, "limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cursor or query parameters",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationList(result))
}

// @Summary Unread count
// @Description Count the acting user's unread notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UnreadCountResponse
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	count, err := h.notificationQueries.UnreadCount(c.Request.Context(), principal.UserID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.UnreadCountResponse{Count: count})
}

// @Summary Mark notification read
// @Description Mark one of the acting user's notifications as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	h.mutateOne(c, h.notifications.MarkRead)
}

// @Summary Mark all notifications read
// @Description Mark every unread notification of the acting user as read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MarkAllReadResponse
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	updated, err := h.notifications.MarkAllRead(c.Request.Context(), principal)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.MarkAllReadResponse{Updated: updated})
}

// @Summary Delete notification
// @Description Delete one of the acting user's notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	h.mutateOne(c, h.notifications.Delete)
}

func (h *NotificationHandler) mutateOne(c *gin.Context, fn func(ctx context.Context, actor identity.Principal, id uuid.UUID) error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid notification ID format",
		})
		return
	}

	if err := fn(c.Request.Context(), principal, notificationID); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotificationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Notification not found",
			})
		case errors.Is(err, errs.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
