package notification

type EventType string

const (
	EventCourseRequest    EventType = "course_request"
	EventScheduleCreate   EventType = "schedule_create"
	EventScheduleUpdate   EventType = "schedule_update"
	EventScheduleDelete   EventType = "schedule_delete"
	EventBookingApproved  EventType = "booking_approved"
	EventBookingRejected  EventType = "booking_rejected"
	EventBookingCancelled EventType = "booking_cancelled"
)

func (e EventType) String() string {
	return string(e)
}

func (e EventType) IsValid() bool {
	switch e {
	case EventCourseRequest, EventScheduleCreate, EventScheduleUpdate,
		EventScheduleDelete, EventBookingApproved, EventBookingRejected,
		EventBookingCancelled:
		return true
	default:
		return false
	}
}
