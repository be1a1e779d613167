package planner

import "github.com/google/uuid"

// EventKind enumerates engine notifications.
type EventKind int

const (
	// EventStateChanged means a new snapshot is available.
	EventStateChanged EventKind = iota
	// EventSuggestionPending is sent as soon as a suggestion is requested.
	EventSuggestionPending
	// EventSuggestionReady is sent after the suggested task was appended.
	EventSuggestionReady
	// EventSuggestionCancelled is sent when a pending suggestion is dropped.
	EventSuggestionCancelled
)

func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state-changed"
	case EventSuggestionPending:
		return "suggestion-pending"
	case EventSuggestionReady:
		return "suggestion-ready"
	case EventSuggestionCancelled:
		return "suggestion-cancelled"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by the engine.
type Event struct {
	Kind EventKind

	// TaskID is set for EventSuggestionReady.
	TaskID ID

	// Ticket is set for the suggestion events.
	Ticket uuid.UUID
}
