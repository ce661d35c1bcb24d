package slot

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotOpen     = errors.New("slot is not open")
	ErrNotHeld     = errors.New("slot is not held")
	ErrNotEditable = errors.New("slot cannot be modified while held or booked")
)

// Slot is a tutor-published bookable time interval. Only the Hold/Book/Release
// transitions may move it out of the open state; editing and deletion are legal
// while open only.
type Slot struct {
	id        uuid.UUID
	tutorID   uuid.UUID
	period    Period
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewSlot(tutorID uuid.UUID, period Period, now time.Time) *Slot {
	return &Slot{
		id:        uuid.New(),
		tutorID:   tutorID,
		period:    period,
		status:    StatusOpen,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructSlot(
	id, tutorID uuid.UUID,
	period Period,
	status Status,
	createdAt, updatedAt time.Time,
) *Slot {
	return &Slot{
		id:        id,
		tutorID:   tutorID,
		period:    period,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Hold marks the slot as claimed by a pending booking request.
func (s *Slot) Hold(now time.Time) error {
	if s.status != StatusOpen {
		return ErrNotOpen
	}
	s.status = StatusHeld
	s.updatedAt = now
	return nil
}

// Book finalizes a held slot after the owning tutor confirms the request.
func (s *Slot) Book(now time.Time) error {
	if s.status != StatusHeld {
		return ErrNotHeld
	}
	s.status = StatusBooked
	s.updatedAt = now
	return nil
}

// Release returns a held or booked slot to the open state, making it bookable
// again.
func (s *Slot) Release(now time.Time) error {
	if s.status == StatusOpen {
		return ErrNotHeld
	}
	s.status = StatusOpen
	s.updatedAt = now
	return nil
}

// Reschedule replaces the slot's interval. A held or booked slot must not
// silently change under an in-flight booking.
func (s *Slot) Reschedule(period Period, now time.Time) error {
	if s.status != StatusOpen {
		return ErrNotEditable
	}
	s.period = period
	s.updatedAt = now
	return nil
}

func (s *Slot) IsOpen() bool {
	return s.status == StatusOpen
}

func (s *Slot) IsOwnedBy(tutorID uuid.UUID) bool {
	return s.tutorID == tutorID
}

func (s *Slot) ID() uuid.UUID        { return s.id }
func (s *Slot) TutorID() uuid.UUID   { return s.tutorID }
func (s *Slot) Period() Period       { return s.period }
func (s *Slot) Status() Status       { return s.status }
func (s *Slot) CreatedAt() time.Time { return s.createdAt }
func (s *Slot) UpdatedAt() time.Time { return s.updatedAt }
