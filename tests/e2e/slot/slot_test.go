//go:build e2e

package slot_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "tutorhub/internal/handler/dto/response"
	"tutorhub/internal/pkg/identity"
	"tutorhub/tests/common/builder"
	"tutorhub/tests/common/httptest"
	"tutorhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SlotSuite struct {
	e2e.SharedSuite
}

func TestSlotSuite(t *testing.T) {
	suite.Run(t, new(SlotSuite))
}

func (s *SlotSuite) tutor() identity.Principal {
	return identity.Principal{UserID: uuid.New(), Role: identity.RoleTutor}
}

func (s *SlotSuite) student() identity.Principal {
	return identity.Principal{UserID: uuid.New(), Role: identity.RoleStudent}
}

func (s *SlotSuite) TestPublishSlot() {
	s.Run("publishes an open slot", func() {
		tutor := s.tutor()
		req := builder.NewSlotBuilder().BuildPublishRequestDTO()

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/slots", req, tutor)

		var created map[string]string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.NotEmpty(created["id"])

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodGet, "/api/slots/"+created["id"], nil, tutor)
		var slot resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &slot)
		s.Equal("open", slot.Status)
		s.Equal(tutor.UserID, slot.TutorID)
	})

	s.Run("rejects an inverted interval", func() {
		req := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
			b.EndAt = b.StartAt.Add(-time.Hour)
		}).BuildPublishRequestDTO()

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/slots", req, s.tutor())

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Start time must be before end time")
	})

	s.Run("rejects an overlapping slot of the same tutor", func() {
		tutor := s.tutor()
		b := builder.NewSlotBuilder()

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/slots", b.BuildPublishRequestDTO(), tutor)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)

		overlapping := b.With(func(b *builder.SlotBuilder) {
			b.StartAt = b.StartAt.Add(30 * time.Minute)
			b.EndAt = b.EndAt.Add(30 * time.Minute)
		}).BuildPublishRequestDTO()

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/slots", overlapping, tutor)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "overlaps")
	})

	s.Run("allows the same interval for a different tutor", func() {
		b := builder.NewSlotBuilder()

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/slots", b.BuildPublishRequestDTO(), s.tutor())
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/slots", b.BuildPublishRequestDTO(), s.tutor())
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
	})

	s.Run("forbids students from publishing", func() {
		req := builder.NewSlotBuilder().BuildPublishRequestDTO()

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/slots", req, s.student())

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed")
	})
}

func (s *SlotSuite) TestEditSlot() {
	s.Run("reschedules an open slot", func() {
		tutor := s.tutor()
		b := builder.NewSlotBuilder()

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/slots", b.BuildPublishRequestDTO(), tutor)
		var created map[string]string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

		edit := b.With(func(b *builder.SlotBuilder) {
			b.StartAt = b.StartAt.Add(4 * time.Hour)
			b.EndAt = b.EndAt.Add(4 * time.Hour)
		}).BuildEditRequestDTO()

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodPut, "/api/slots/"+created["id"], edit, tutor)
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodGet, "/api/slots/"+created["id"], nil, tutor)
		var slot resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &slot)
		s.True(slot.StartAt.Equal(edit.StartAt))
	})

	s.Run("forbids editing another tutor's slot", func() {
		b := builder.NewSlotBuilder()

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/slots", b.BuildPublishRequestDTO(), s.tutor())
		var created map[string]string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodPut, "/api/slots/"+created["id"], b.BuildEditRequestDTO(), s.tutor())
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed")
	})

	s.Run("returns not found for an unknown slot", func() {
		b := builder.NewSlotBuilder()

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPut, "/api/slots/"+uuid.NewString(), b.BuildEditRequestDTO(), s.tutor())
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Slot not found")
	})
}

func (s *SlotSuite) TestDeleteSlot() {
	s.Run("deletes an open slot", func() {
		tutor := s.tutor()

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/slots", builder.NewSlotBuilder().BuildPublishRequestDTO(), tutor)
		var created map[string]string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodDelete, "/api/slots/"+created["id"], nil, tutor)
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodGet, "/api/slots/"+created["id"], nil, tutor)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Slot not found")
	})
}

func (s *SlotSuite) TestListTutorSlots() {
	s.Run("pages through slots with a cursor", func() {
		tutor := s.tutor()
		base := builder.NewSlotBuilder()

		for i := range 3 {
			req := builder.NewSlotBuilder().With(func(b *builder.SlotBuilder) {
				b.StartAt = base.StartAt.Add(time.Duration(i) * 2 * time.Hour)
				b.EndAt = b.StartAt.Add(time.Hour)
			}).BuildPublishRequestDTO()
			w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/slots", req, tutor)
			httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
		}

		path := fmt.Sprintf("/api/tutors/%s/slots?from=%s&limit=2",
			tutor.UserID, base.StartAt.Add(-time.Hour).Format(time.RFC3339))

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodGet, path, nil, tutor)
		var page1 resdto.SlotListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page1)
		s.Len(page1.Slots, 2)
		s.NotEmpty(page1.NextCursor)

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodGet, path+"&cursor="+page1.NextCursor, nil, tutor)
		var page2 resdto.SlotListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &page2)
		s.Len(page2.Slots, 1)
		s.Empty(page2.NextCursor)

		s.True(page1.Slots[0].StartAt.Before(page1.Slots[1].StartAt))
		s.True(page1.Slots[1].StartAt.Before(page2.Slots[0].StartAt))
	})
}
