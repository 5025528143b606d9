package events

// Event types follow the format: domain.action
const (
	EventTypeMessageCreated = "message.created"
)
