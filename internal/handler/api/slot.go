package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "tutorhub/internal/handler/dto/request"
	resdto "tutorhub/internal/handler/dto/response"
	"tutorhub/internal/handler/httperr"
	"tutorhub/internal/handler/middleware"
	"tutorhub/internal/infra"
	"tutorhub/internal/pkg/errs"
	"tutorhub/internal/usecase/commands"
	"tutorhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Window applied to slot listing when the caller gives no upper bound.
const defaultListHorizon = 90 * 24 * time.Hour

type SlotHandler struct {
	availability commands.AvailabilityCommands
	slotQueries  queries.SlotQueries
}

func NewSlotHandler(availability commands.AvailabilityCommands, slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		availability: availability,
		slotQueries:  slotQueries,
	}
}

// @Summary Publish slot
// @Description Publish a new open availability slot for the acting tutor
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PublishSlotRequest true "Slot interval"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots [post]
func (h *SlotHandler) PublishSlot(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PublishSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	slotID, err := h.availability.PublishSlot(c.Request.Context(), principal, commands.PublishSlotInput{
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": slotID.String()})
}

// @Summary Edit slot
// @Description Reschedule an open slot owned by the acting tutor
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Param request body reqdto.EditSlotRequest true "New interval"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots/{id} [put]
func (h *SlotHandler) EditSlot(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	var req reqdto.EditSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.availability.EditSlot(c.Request.Context(), principal, slotID, commands.EditSlotInput{
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	})
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete slot
// @Description Delete an open slot owned by the acting tutor
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots/{id} [delete]
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	if err := h.availability.DeleteSlot(c.Request.Context(), principal, slotID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get slot
// @Description Get a slot by ID
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 200 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /slots/{id} [get]
func (h *SlotHandler) GetSlot(c *gin.Context) {
	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	view, err := h.slotQueries.GetByID(c.Request.Context(), slotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotView(view))
}

// @Summary List tutor slots
// @Description List a tutor's slots inside a time window with cursor pagination
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param tutor_id path string true "Tutor ID"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Param limit query int false "Page size"
// @Param cursor query string false "Opaque page cursor"
// @Success 200 {object} resdto.SlotListResponse
// @Failure 400 {object} map[string]string
// @Router /tutors/{tutor_id}/slots [get]
func (h *SlotHandler) ListTutorSlots(c *gin.Context) {
	tutorID, err := uuid.Parse(c.Param("tutor_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid tutor ID format",
		})
		return
	}

	from, ok := parseTimeQuery(c, "from", time.Time{})
	if !ok {
		return
	}
	defaultTo := time.Now().UTC().Add(defaultListHorizon)
	if !from.IsZero() {
		defaultTo = from.Add(defaultListHorizon)
	}
	to, ok := parseTimeQuery(c, "to", defaultTo)
	if !ok {
		return
	}

	var after *queries.Cursor
	if cursor := c.Query("cursor"); cursor != "" {
		after = &queries.Cursor{After: cursor}
	}

	views, next, err := h.slotQueries.ListByTutor(c.Request.Context(), tutorID, from, to, after, intQuery(c, "limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid cursor or query parameters",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views, next))
}

func (h *SlotHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Not allowed",
		})
	case errors.Is(err, errs.ErrInvalidRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Start time must be before end time",
		})
	case errors.Is(err, errs.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Slot not found",
		})
	case errors.Is(err, errs.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slot overlaps an existing slot",
		})
	case errors.Is(err, errs.ErrSlotNotEditable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slot cannot be modified while held or booked",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func parseTimeQuery(c *gin.Context, name string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + name + " parameter, expected RFC3339",
		})
		return time.Time{}, false
	}
	return t, true
}

func intQuery(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return 0
	}
	return n
}
