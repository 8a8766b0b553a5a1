// Package notifications carries seat, group and report events from the
// core services to the customer-facing messaging worker over RabbitMQ.
// Publishing is fire-and-forget: failures are logged, never propagated.
package notifications

import "time"

const QueueName = "studio.notifications"

const (
	EventSeatConfirmed = "seat.confirmed"
	EventSeatCancelled = "seat.cancelled"
	EventGroupSettled  = "group.settled"
	EventMonthlyReport = "report.monthly"
)

// Event is the wire payload on the notification queue. It carries enough
// identifiers for the consumer to message the affected users without
// querying for the originating entity.
type Event struct {
	Kind       string    `json:"kind"`
	SeatID     string    `json:"seat_id,omitempty"`
	GroupID    string    `json:"group_id,omitempty"`
	ReportID   string    `json:"report_id,omitempty"`
	CoachID    string    `json:"coach_id,omitempty"`
	CustomerID string    `json:"customer_id,omitempty"`
	Day        int       `json:"day,omitempty"`
	StartMin   int       `json:"start_minute,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
