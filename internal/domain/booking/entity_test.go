//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"tutorhub/internal/domain/booking"
	"tutorhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRequest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.True(t, actual.IsPending())
		assert.Nil(t, actual.DecidedAt())
		assert.Equal(t, "Linear Algebra", actual.CourseName().String())
	})

	t.Run("course name validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.BookingBuilder)
			errIs  error
		}{
			{
				name:   "empty course name",
				mutate: func(b *builder.BookingBuilder) { b.CourseName = "" },
				errIs:  booking.ErrEmptyCourseName,
			},
			{
				name:   "whitespace only",
				mutate: func(b *builder.BookingBuilder) { b.CourseName = "   " },
				errIs:  booking.ErrEmptyCourseName,
			},
			{
				name:   "exceeds maximum length",
				mutate: func(b *builder.BookingBuilder) { b.CourseName = strings.Repeat("x", booking.MaxCourseNameLength+1) },
				errIs:  booking.ErrCourseNameTooLong,
			},
			{
				name:   "maximum length",
				mutate: func(b *builder.BookingBuilder) { b.CourseName = strings.Repeat("x", booking.MaxCourseNameLength) },
			},
			{
				name:   "surrounding whitespace trimmed",
				mutate: func(b *builder.BookingBuilder) { b.CourseName = "  Calculus  " },
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				actual, err := builder.NewBookingBuilder().With(tc.mutate).BuildDomain()
				if tc.errIs != nil {
					require.ErrorIs(t, err, tc.errIs)
					assert.Nil(t, actual)
					return
				}
				require.NoError(t, err)
				require.NotNil(t, actual)
			})
		}
	})
}

func TestBookingTransitions(t *testing.T) {
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	newPending := func(t *testing.T) *booking.Request {
		t.Helper()
		r, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		return r
	}

	t.Run("approve a pending request", func(t *testing.T) {
		r := newPending(t)

		require.NoError(t, r.Approve(now))
		assert.Equal(t, booking.StatusConfirmed, r.Status())
		require.NotNil(t, r.DecidedAt())
		assert.Equal(t, now, *r.DecidedAt())
	})

	t.Run("reject a pending request", func(t *testing.T) {
		r := newPending(t)

		require.NoError(t, r.Reject(now))
		assert.Equal(t, booking.StatusRejected, r.Status())
		assert.NotNil(t, r.DecidedAt())
	})

	t.Run("approve twice fails", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Approve(now))

		assert.ErrorIs(t, r.Approve(now), booking.ErrNotPending)
	})

	t.Run("reject after approve fails", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Approve(now))

		assert.ErrorIs(t, r.Reject(now), booking.ErrNotPending)
	})

	t.Run("cancel a pending request", func(t *testing.T) {
		r := newPending(t)

		require.NoError(t, r.Cancel(now))
		assert.Equal(t, booking.StatusCancelled, r.Status())
	})

	t.Run("cancel a confirmed request", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Approve(now))

		require.NoError(t, r.Cancel(now))
		assert.Equal(t, booking.StatusCancelled, r.Status())
	})

	t.Run("cancel a rejected request fails", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Reject(now))

		assert.ErrorIs(t, r.Cancel(now), booking.ErrInvalidTransition)
	})

	t.Run("cancel twice fails", func(t *testing.T) {
		r := newPending(t)
		require.NoError(t, r.Cancel(now))

		assert.ErrorIs(t, r.Cancel(now), booking.ErrInvalidTransition)
	})
}

func TestBookingParticipants(t *testing.T) {
	b := builder.NewBookingBuilder()
	r, err := b.BuildDomain()
	require.NoError(t, err)

	t.Run("cancellable by both participants", func(t *testing.T) {
		assert.True(t, r.CancellableBy(b.StudentID))
		assert.True(t, r.CancellableBy(b.TutorID))
		assert.False(t, r.CancellableBy(uuid.New()))
	})

	t.Run("counterpart resolution", func(t *testing.T) {
		assert.Equal(t, b.TutorID, r.CounterpartOf(b.StudentID))
		assert.Equal(t, b.StudentID, r.CounterpartOf(b.TutorID))
	})
}

func TestStatusTerminal(t *testing.T) {
	assert.False(t, booking.StatusPending.IsTerminal())
	assert.False(t, booking.StatusConfirmed.IsTerminal())
	assert.True(t, booking.StatusRejected.IsTerminal())
	assert.True(t, booking.StatusCancelled.IsTerminal())
}
