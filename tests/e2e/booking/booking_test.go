//go:build e2e

package booking_test

import (
	"net/http"
	"sync"
	"testing"

	resdto "tutorhub/internal/handler/dto/response"
	"tutorhub/internal/pkg/identity"
	"tutorhub/tests/common/builder"
	"tutorhub/tests/common/httptest"
	"tutorhub/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(BookingSuite))
}

func tutor() identity.Principal {
	return identity.Principal{UserID: uuid.New(), Role: identity.RoleTutor}
}

func student() identity.Principal {
	return identity.Principal{UserID: uuid.New(), Role: identity.RoleStudent}
}

// publishSlot creates an open slot through the API and returns its ID.
func (s *BookingSuite) publishSlot(t identity.Principal) string {
	w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/slots", builder.NewSlotBuilder().BuildPublishRequestDTO(), t)
	var created map[string]string
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	s.NotEmpty(created["id"])
	return created["id"]
}

func (s *BookingSuite) requestBooking(st, tu identity.Principal, slotID string) *resdto.BookingCreatedResponse {
	body := map[string]string{"slot_id": slotID, "tutor_id": tu.UserID.String(), "course_name": "Linear Algebra"}
	w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings", body, st)
	var created resdto.BookingCreatedResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
	return &created
}

func (s *BookingSuite) slotStatus(actor identity.Principal, slotID string) string {
	w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodGet, "/api/slots/"+slotID, nil, actor)
	var slot resdto.SlotResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &slot)
	return slot.Status
}

func (s *BookingSuite) TestRequestBooking() {
	s.Run("books an open slot and holds it", func() {
		tu, st := tutor(), student()
		slotID := s.publishSlot(tu)

		created := s.requestBooking(st, tu, slotID)

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodGet, "/api/bookings/"+created.ID.String(), nil, st)
		var booking resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &booking)
		s.Equal("pending", booking.Status)
		s.Equal(tu.UserID, booking.TutorID)

		s.Equal("held", s.slotStatus(st, slotID))
	})

	s.Run("rejects a second request on the same slot", func() {
		tu := tutor()
		slotID := s.publishSlot(tu)
		s.requestBooking(student(), tu, slotID)

		body := map[string]string{"slot_id": slotID, "tutor_id": tu.UserID.String(), "course_name": "Calculus"}
		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings", body, student())
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
	})

	s.Run("rejects a request naming the wrong tutor", func() {
		slotID := s.publishSlot(tutor())

		body := map[string]string{"slot_id": slotID, "tutor_id": uuid.NewString(), "course_name": "Calculus"}
		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings", body, student())
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Slot not found")
	})

	s.Run("rejects an empty course name", func() {
		tu := tutor()
		slotID := s.publishSlot(tu)

		body := map[string]string{"slot_id": slotID, "tutor_id": tu.UserID.String(), "course_name": "   "}
		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings", body, student())
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "validation")
	})

	s.Run("forbids tutors from booking", func() {
		tu := tutor()
		slotID := s.publishSlot(tu)

		body := map[string]string{"slot_id": slotID, "tutor_id": tu.UserID.String(), "course_name": "Calculus"}
		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings", body, tutor())
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed")
	})

	s.Run("exactly one of many concurrent requests wins", func() {
		tu := tutor()
		slotID := s.publishSlot(tu)

		const attempts = 10
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				body := map[string]string{"slot_id": slotID, "tutor_id": tu.UserID.String(), "course_name": "Calculus"}
				w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings", body, student())
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		var won, lost int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				won++
			case http.StatusConflict:
				lost++
			default:
				s.Failf("unexpected status", "got %d", code)
			}
		}
		s.Equal(1, won)
		s.Equal(attempts-1, lost)
	})
}

func (s *BookingSuite) TestApproveAndReject() {
	s.Run("approval books the slot and notifies the student", func() {
		tu, st := tutor(), student()
		slotID := s.publishSlot(tu)
		created := s.requestBooking(st, tu, slotID)

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID.String()+"/approve", nil, tu)
		s.Equal(http.StatusNoContent, w.Code)

		s.Equal("booked", s.slotStatus(st, slotID))

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodGet, "/api/notifications", nil, st)
		var list resdto.NotificationListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
		s.Require().Len(list.Notifications, 1)
		s.Equal("booking_approved", list.Notifications[0].EventType)
	})

	s.Run("rejection reopens the slot", func() {
		tu, st := tutor(), student()
		slotID := s.publishSlot(tu)
		created := s.requestBooking(st, tu, slotID)

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID.String()+"/reject", nil, tu)
		s.Equal(http.StatusNoContent, w.Code)

		s.Equal("open", s.slotStatus(st, slotID))
	})

	s.Run("a decided booking cannot be decided again", func() {
		tu, st := tutor(), student()
		slotID := s.publishSlot(tu)
		created := s.requestBooking(st, tu, slotID)

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID.String()+"/approve", nil, tu)
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID.String()+"/reject", nil, tu)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "no longer pending")
	})

	s.Run("only the owning tutor may decide", func() {
		tu, st := tutor(), student()
		slotID := s.publishSlot(tu)
		created := s.requestBooking(st, tu, slotID)

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID.String()+"/approve", nil, tutor())
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed")
	})
}

func (s *BookingSuite) TestCancelBooking() {
	s.Run("student cancels a pending booking and reopens the slot", func() {
		tu, st := tutor(), student()
		slotID := s.publishSlot(tu)
		created := s.requestBooking(st, tu, slotID)

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID.String()+"/cancel", nil, st)
		s.Equal(http.StatusNoContent, w.Code)

		s.Equal("open", s.slotStatus(st, slotID))
	})

	s.Run("tutor cancels a confirmed booking", func() {
		tu, st := tutor(), student()
		slotID := s.publishSlot(tu)
		created := s.requestBooking(st, tu, slotID)

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID.String()+"/approve", nil, tu)
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID.String()+"/cancel", nil, tu)
		s.Equal(http.StatusNoContent, w.Code)

		s.Equal("open", s.slotStatus(st, slotID))
	})

	s.Run("a cancelled booking cannot be cancelled again", func() {
		tu, st := tutor(), student()
		slotID := s.publishSlot(tu)
		created := s.requestBooking(st, tu, slotID)

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID.String()+"/cancel", nil, st)
		s.Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID.String()+"/cancel", nil, st)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "cannot be cancelled")
	})

	s.Run("outsiders may not cancel", func() {
		tu, st := tutor(), student()
		slotID := s.publishSlot(tu)
		created := s.requestBooking(st, tu, slotID)

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodPost, "/api/bookings/"+created.ID.String()+"/cancel", nil, student())
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed")
	})
}

func (s *BookingSuite) TestListAndGetBookings() {
	s.Run("participants see the booking, others do not", func() {
		tu, st := tutor(), student()
		slotID := s.publishSlot(tu)
		created := s.requestBooking(st, tu, slotID)

		for _, p := range []identity.Principal{st, tu} {
			w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodGet, "/api/bookings/"+created.ID.String(), nil, p)
			var booking resdto.BookingResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &booking)
		}

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodGet, "/api/bookings/"+created.ID.String(), nil, student())
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed")
	})

	s.Run("listing is scoped to the actor", func() {
		tu, st := tutor(), student()
		slotID := s.publishSlot(tu)
		s.requestBooking(st, tu, slotID)

		w := httptest.PerformRequestAs(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, st)
		var mine resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &mine)
		s.Len(mine.Bookings, 1)

		w = httptest.PerformRequestAs(s.T(), s.Router, http.MethodGet, "/api/bookings", nil, student())
		var other resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &other)
		s.Empty(other.Bookings)
	})
}
