package notification

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEventType = errors.New("invalid notification event type")
	ErrEmptyTitle       = errors.New("notification title cannot be empty")
)

// Notification is owned by its single recipient; other users can neither read
// nor mutate it.
type Notification struct {
	id          uuid.UUID
	recipientID uuid.UUID
	eventType   EventType
	title       string
	message     string
	relatedData map[string]any
	isRead      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewNotification(
	recipientID uuid.UUID,
	eventType EventType,
	title, message string,
	relatedData map[string]any,
	now time.Time,
) (*Notification, error) {
	if !eventType.IsValid() {
		return nil, ErrInvalidEventType
	}
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if relatedData == nil {
		relatedData = map[string]any{}
	}

	return &Notification{
		id:          uuid.New(),
		recipientID: recipientID,
		eventType:   eventType,
		title:       title,
		message:     message,
		relatedData: relatedData,
		isRead:      false,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructNotification(
	id, recipientID uuid.UUID,
	eventType EventType,
	title, message string,
	relatedData map[string]any,
	isRead bool,
	createdAt, updatedAt time.Time,
) *Notification {
	return &Notification{
		id:          id,
		recipientID: recipientID,
		eventType:   eventType,
		title:       title,
		message:     message,
		relatedData: relatedData,
		isRead:      isRead,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (n *Notification) MarkRead(now time.Time) {
	n.isRead = true
	n.updatedAt = now
}

func (n *Notification) BelongsTo(recipientID uuid.UUID) bool {
	return n.recipientID == recipientID
}

func (n *Notification) ID() uuid.UUID               { return n.id }
func (n *Notification) RecipientID() uuid.UUID      { return n.recipientID }
func (n *Notification) EventType() EventType        { return n.eventType }
func (n *Notification) Title() string               { return n.title }
func (n *Notification) Message() string             { return n.message }
func (n *Notification) RelatedData() map[string]any { return n.relatedData }
func (n *Notification) IsRead() bool                { return n.isRead }
func (n *Notification) CreatedAt() time.Time        { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time        { return n.updatedAt }
