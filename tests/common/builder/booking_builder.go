//go:build unit || e2e

package builder

import (
	"time"

	dombooking "tutorhub/internal/domain/booking"
	reqdto "tutorhub/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	SlotID     uuid.UUID
	StudentID  uuid.UUID
	TutorID    uuid.UUID
	CourseName string
	Now        time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		SlotID:     uuid.New(),
		StudentID:  uuid.New(),
		TutorID:    uuid.New(),
		CourseName: "Linear Algebra",
		Now:        time.Date(2025, 6, 30, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Request, error) {
	courseName, err := dombooking.NewCourseName(b.CourseName)
	if err != nil {
		return nil, err
	}
	return dombooking.NewRequest(b.SlotID, b.StudentID, b.TutorID, courseName, b.Now), nil
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SlotID:     b.SlotID,
		TutorID:    b.TutorID,
		CourseName: b.CourseName,
	}
}
