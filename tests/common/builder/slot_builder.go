//go:build unit || e2e

package builder

import (
	"time"

	domslot "tutorhub/internal/domain/slot"
	reqdto "tutorhub/internal/handler/dto/request"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	TutorID uuid.UUID
	StartAt time.Time
	EndAt   time.Time
	Now     time.Time
}

func NewSlotBuilder() *SlotBuilder {
	start := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	return &SlotBuilder{
		TutorID: uuid.New(),
		StartAt: start,
		EndAt:   start.Add(time.Hour),
		Now:     start.Add(-24 * time.Hour),
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) BuildDomain() (*domslot.Slot, error) {
	period, err := domslot.NewPeriod(b.StartAt, b.EndAt)
	if err != nil {
		return nil, err
	}
	return domslot.NewSlot(b.TutorID, period, b.Now), nil
}

func (b *SlotBuilder) BuildPublishRequestDTO() reqdto.PublishSlotRequest {
	return reqdto.PublishSlotRequest{
		StartAt: b.StartAt,
		EndAt:   b.EndAt,
	}
}

func (b *SlotBuilder) BuildEditRequestDTO() reqdto.EditSlotRequest {
	return reqdto.EditSlotRequest{
		StartAt: b.StartAt,
		EndAt:   b.EndAt,
	}
}
