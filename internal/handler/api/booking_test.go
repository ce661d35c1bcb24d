//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"tutorhub/internal/handler/api"
	resdto "tutorhub/internal/handler/dto/response"
	"tutorhub/internal/infra"
	"tutorhub/internal/pkg/errs"
	"tutorhub/internal/pkg/identity"
	"tutorhub/internal/usecase/commands"
	"tutorhub/internal/usecase/queries"
	"tutorhub/tests/common/builder"
	"tutorhub/tests/common/httptest"
	commandsmock "tutorhub/tests/mock/commands"
	queriesmock "tutorhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockBookings  *commandsmock.MockBookingCommands
	mockApprovals *commandsmock.MockApprovalCommands
	mockQueries   *queriesmock.MockBookingQueries
	handler       *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockApprovals = commandsmock.NewMockApprovalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockBookings, s.mockApprovals, s.mockQueries)

	s.router.POST("/bookings", headerPrincipal, s.handler.CreateBooking)
	s.router.GET("/bookings", headerPrincipal, s.handler.ListBookings)
	s.router.GET("/bookings/:id", headerPrincipal, s.handler.GetBooking)
	s.router.POST("/bookings/:id/approve", headerPrincipal, s.handler.ApproveBooking)
	s.router.POST("/bookings/:id/reject", headerPrincipal, s.handler.RejectBooking)
	s.router.POST("/bookings/:id/cancel", headerPrincipal, s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestCreateBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("Success", func() {
		actor := studentPrincipal()
		bookingID := uuid.New()
		s.mockBookings.EXPECT().
			RequestBooking(gomock.Any(), actor, commands.RequestBookingInput{SlotID: reqBody.SlotID, TutorID: reqBody.TutorID, CourseName: reqBody.CourseName}).
			Return(bookingID, nil)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, url, reqBody, actor)

		var body resdto.BookingCreatedResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)
		s.Equal(bookingID, body.ID)
	})

	s.Run("SlotAlreadyHeld", func() {
		actor := studentPrincipal()
		s.mockBookings.EXPECT().
			RequestBooking(gomock.Any(), actor, gomock.Any()).
			Return(uuid.Nil, errs.ErrSlotUnavailable)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, url, reqBody, actor)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "not available")
	})

	s.Run("UnknownSlot", func() {
		actor := studentPrincipal()
		s.mockBookings.EXPECT().
			RequestBooking(gomock.Any(), actor, gomock.Any()).
			Return(uuid.Nil, errs.ErrSlotNotFound)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, url, reqBody, actor)

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Slot not found")
	})

	s.Run("TutorForbidden", func() {
		actor := tutorPrincipal()
		s.mockBookings.EXPECT().
			RequestBooking(gomock.Any(), actor, gomock.Any()).
			Return(uuid.Nil, errs.ErrNotAuthorized)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, url, reqBody, actor)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed")
	})

	s.Run("EmptyCourseName", func() {
		actor := studentPrincipal()
		s.mockBookings.EXPECT().
			RequestBooking(gomock.Any(), actor, gomock.Any()).
			Return(uuid.Nil, errs.ErrDomainValidation)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, url, reqBody, actor)

		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "validation")
	})

	s.Run("MissingTutorID", func() {
		actor := studentPrincipal()
		body := map[string]string{"slot_id": uuid.NewString(), "course_name": "Calculus"}

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, url, body, actor)

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := &queries.BookingView{
		ID:         uuid.New(),
		SlotID:     uuid.New(),
		StudentID:  uuid.New(),
		TutorID:    uuid.New(),
		CourseName: "Linear Algebra",
		Status:     "pending",
		SlotStart:  time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC),
		SlotEnd:    time.Date(2025, 7, 1, 11, 0, 0, 0, time.UTC),
	}
	url := "/bookings/" + view.ID.String()

	s.Run("Success", func() {
		actor := identity.Principal{UserID: view.StudentID, Role: identity.RoleStudent}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), actor, view.ID).Return(view, nil)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodGet, url, nil, actor)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("pending", body.Status)
	})

	s.Run("OutsiderForbidden", func() {
		actor := studentPrincipal()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), actor, view.ID).Return(nil, errs.ErrNotAuthorized)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodGet, url, nil, actor)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed")
	})

	s.Run("NotFound", func() {
		actor := studentPrincipal()
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), actor, view.ID).
			Return(nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil))

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodGet, url, nil, actor)

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not found")
	})
}

// ================================================================================
// TestListBookings
// ================================================================================

func (s *BookingHandlerTestSuite) TestListBookings() {
	url := "/bookings"

	s.Run("Success", func() {
		actor := studentPrincipal()
		views := []*queries.BookingView{
			{ID: uuid.New(), StudentID: actor.UserID, Status: "pending"},
			{ID: uuid.New(), StudentID: actor.UserID, Status: "confirmed"},
		}
		s.mockQueries.EXPECT().ListByActor(gomock.Any(), actor, 0).Return(views, nil)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodGet, url, nil, actor)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Len(body.Bookings, 2)
	})

	s.Run("Empty", func() {
		actor := tutorPrincipal()
		s.mockQueries.EXPECT().ListByActor(gomock.Any(), actor, 0).Return(nil, nil)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodGet, url, nil, actor)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Empty(body.Bookings)
	})
}

// ================================================================================
// TestDecide
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecide() {
	bookingID := uuid.New()

	s.Run("ApproveSuccess", func() {
		actor := tutorPrincipal()
		s.mockApprovals.EXPECT().ApproveBooking(gomock.Any(), actor, bookingID).Return(nil)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/approve", nil, actor)

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("RejectSuccess", func() {
		actor := tutorPrincipal()
		s.mockApprovals.EXPECT().RejectBooking(gomock.Any(), actor, bookingID).Return(nil)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/reject", nil, actor)

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("AlreadyDecided", func() {
		actor := tutorPrincipal()
		s.mockApprovals.EXPECT().ApproveBooking(gomock.Any(), actor, bookingID).Return(errs.ErrBookingNotPending)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/approve", nil, actor)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "no longer pending")
	})

	s.Run("NonOwnerForbidden", func() {
		actor := tutorPrincipal()
		s.mockApprovals.EXPECT().RejectBooking(gomock.Any(), actor, bookingID).Return(errs.ErrNotAuthorized)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/reject", nil, actor)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed")
	})

	s.Run("BadBookingID", func() {
		actor := tutorPrincipal()

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, "/bookings/nope/approve", nil, actor)

		s.Equal(http.StatusBadRequest, w.Code)
	})
}

// ================================================================================
// TestCancelBooking
// ================================================================================

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/cancel"

	s.Run("Success", func() {
		actor := studentPrincipal()
		s.mockBookings.EXPECT().CancelBooking(gomock.Any(), actor, bookingID).Return(nil)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, url, nil, actor)

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("AlreadyTerminal", func() {
		actor := studentPrincipal()
		s.mockBookings.EXPECT().CancelBooking(gomock.Any(), actor, bookingID).Return(errs.ErrInvalidTransition)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, url, nil, actor)

		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "cannot be cancelled")
	})

	s.Run("OutsiderForbidden", func() {
		actor := studentPrincipal()
		s.mockBookings.EXPECT().CancelBooking(gomock.Any(), actor, bookingID).Return(errs.ErrNotAuthorized)

		w := httptest.PerformRequestAs(s.T(), s.router, http.MethodPost, url, nil, actor)

		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Not allowed")
	})
}
