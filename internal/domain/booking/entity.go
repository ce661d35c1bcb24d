package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotPending        = errors.New("booking request is not pending")
	ErrInvalidTransition = errors.New("illegal booking state transition")
	ErrNotParticipant    = errors.New("actor is not a participant of this booking")
)

// Request is a student's claim against a tutor's slot, subject to tutor
// approval. State machine: pending -> confirmed | rejected,
// pending|confirmed -> cancelled. Rejected and cancelled are terminal.
type Request struct {
	id         uuid.UUID
	slotID     uuid.UUID
	studentID  uuid.UUID
	tutorID    uuid.UUID
	courseName CourseName
	status     Status
	createdAt  time.Time
	decidedAt  *time.Time
}

func NewRequest(slotID, studentID, tutorID uuid.UUID, courseName CourseName, now time.Time) *Request {
	return &Request{
		id:         uuid.New(),
		slotID:     slotID,
		studentID:  studentID,
		tutorID:    tutorID,
		courseName: courseName,
		status:     StatusPending,
		createdAt:  now,
	}
}

func ReconstructRequest(
	id, slotID, studentID, tutorID uuid.UUID,
	courseName CourseName,
	status Status,
	createdAt time.Time,
	decidedAt *time.Time,
) *Request {
	return &Request{
		id:         id,
		slotID:     slotID,
		studentID:  studentID,
		tutorID:    tutorID,
		courseName: courseName,
		status:     status,
		createdAt:  createdAt,
		decidedAt:  decidedAt,
	}
}

func (r *Request) Approve(now time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusConfirmed
	r.decidedAt = &now
	return nil
}

func (r *Request) Reject(now time.Time) error {
	if r.status != StatusPending {
		return ErrNotPending
	}
	r.status = StatusRejected
	r.decidedAt = &now
	return nil
}

func (r *Request) Cancel(now time.Time) error {
	if r.status != StatusPending && r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	r.status = StatusCancelled
	r.decidedAt = &now
	return nil
}

// CancellableBy permits the student who created the request or the tutor who
// owns the slot.
func (r *Request) CancellableBy(actorID uuid.UUID) bool {
	return actorID == r.studentID || actorID == r.tutorID
}

// CounterpartOf returns the other participant for notification fan-out.
func (r *Request) CounterpartOf(actorID uuid.UUID) uuid.UUID {
	if actorID == r.studentID {
		return r.tutorID
	}
	return r.studentID
}

func (r *Request) IsPending() bool {
	return r.status == StatusPending
}

func (r *Request) ID() uuid.UUID          { return r.id }
func (r *Request) SlotID() uuid.UUID      { return r.slotID }
func (r *Request) StudentID() uuid.UUID   { return r.studentID }
func (r *Request) TutorID() uuid.UUID     { return r.tutorID }
func (r *Request) CourseName() CourseName { return r.courseName }
func (r *Request) Status() Status         { return r.status }
func (r *Request) CreatedAt() time.Time   { return r.createdAt }
func (r *Request) DecidedAt() *time.Time  { return r.decidedAt }
