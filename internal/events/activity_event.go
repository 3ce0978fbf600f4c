package events

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ActivityEvent records one task mutation for the analytics pipeline.
type ActivityEvent struct {
	EventID   string
	TaskID    string
	UserID    string
	Action    string
	Status    string
	Timestamp int64
	IP        string
	UserAgent string
}
