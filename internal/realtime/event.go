package realtime

import (
	"context"

	"github.com/google/uuid"
)

// Watched table channels.
const (
	TableEmployees   = "employees"
	TableProjects    = "projects"
	TableAssignments = "assignments"
)

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Row carries the fields of a changed row. Base-table rows use ID/Name; join
// rows use the two foreign keys. Unused fields stay zero.
type Row struct {
	ID         uuid.UUID `json:"id,omitempty"`
	Name       string    `json:"name,omitempty"`
	EmployeeID uuid.UUID `json:"employee_id,omitempty"`
	ProjectID  uuid.UUID `json:"project_id,omitempty"`
}

// Event is one row-level change notification. Row holds the new row for
// inserts and updates; OldRow holds the previous row for updates and deletes.
// Delivery is at-least-once and ordering is only per table channel, so every
// consumer must apply events idempotently.
type Event struct {
	Table  string    `json:"table"`
	Type   EventType `json:"type"`
	Row    Row       `json:"row,omitempty"`
	OldRow Row       `json:"old_row,omitempty"`
}

// Feed publishes and subscribes to row-change events.
type Feed interface {
	Publish(ctx context.Context, e Event) error
	Subscribe(ctx context.Context, table string) (*Subscription, error)
}
