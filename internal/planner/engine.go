package planner

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultSuggestionDelay is how long the assistant "thinks" before a
// suggestion is appended.
const DefaultSuggestionDelay = 2 * time.Second

const defaultEventBuffer = 64

// Engine owns the ordered task collection. All mutations go through its
// methods; readers get copies via Snapshot.
type Engine struct {
	mu     sync.RWMutex
	tasks  []Task
	lastID ID

	clock      Clock
	suggestion Suggestion
	delay      time.Duration

	// pending maps outstanding suggestion tickets to their timers
	pending map[uuid.UUID]*Ticket
	closed  bool

	events chan Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithSuggestion sets the task appended by RequestSuggestion.
func WithSuggestion(s Suggestion) Option {
	return func(e *Engine) {
		e.suggestion = s
	}
}

// WithSuggestionDelay sets the delay before a suggestion is appended.
// Non-positive values keep the default.
func WithSuggestionDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.delay = d
		}
	}
}

// WithEventBuffer sets the capacity of the Events channel.
func WithEventBuffer(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.events = make(chan Event, n)
		}
	}
}

// NewEngine creates an empty engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		clock:      SystemClock(),
		suggestion: DefaultSuggestion(LanguageEnglish),
		delay:      DefaultSuggestionDelay,
		pending:    make(map[uuid.UUID]*Ticket),
		events:     make(chan Event, defaultEventBuffer),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Events returns the notification channel. The engine never blocks on it:
// when the buffer is full the event is dropped, and consumers re-read the
// snapshot on the next one anyway.
func (e *Engine) Events() <-chan Event {
	return e.events
}

func (e *Engine) emit(ev Event) {
	select {
	case e.events <- ev:
	default:
	}
}

// nextID must be called with mu held.
func (e *Engine) nextID() ID {
	id := ID(e.clock.Now().UnixMilli())
	if id <= e.lastID {
		id = e.lastID + 1
	}
	e.lastID = id
	return id
}

// indexOf must be called with mu held.
func (e *Engine) indexOf(id ID) int {
	for i := range e.tasks {
		if e.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// AddTask appends a new task. A name that is empty after trimming is
// ignored and reported with ok == false.
func (e *Engine) AddTask(in NewTask) (ID, bool) {
	if strings.TrimSpace(in.Name) == "" {
		return 0, false
	}

	e.mu.Lock()
	id := e.appendLocked(in)
	e.mu.Unlock()

	e.emit(Event{Kind: EventStateChanged})
	return id, true
}

func (e *Engine) appendLocked(in NewTask) ID {
	id := e.nextID()
	e.tasks = append(e.tasks, Task{
		ID:       id,
		Name:     in.Name,
		Duration: in.Duration,
		Column:   in.Column,
		Details:  in.Details,
		Time:     in.Time,
	})
	return id
}

// Seed adds each task through AddTask and returns how many were accepted.
func (e *Engine) Seed(tasks []NewTask) int {
	added := 0
	for _, t := range tasks {
		if _, ok := e.AddTask(t); ok {
			added++
		}
	}
	return added
}

// RemoveTask deletes the task with the given id. Unknown ids are ignored.
func (e *Engine) RemoveTask(id ID) bool {
	e.mu.Lock()
	i := e.indexOf(id)
	if i < 0 {
		e.mu.Unlock()
		return false
	}
	e.tasks = append(e.tasks[:i:i], e.tasks[i+1:]...)
	e.mu.Unlock()

	e.emit(Event{Kind: EventStateChanged})
	return true
}

// ToggleEditMode flips the editing flag of a task.
func (e *Engine) ToggleEditMode(id ID) bool {
	e.mu.Lock()
	i := e.indexOf(id)
	if i < 0 {
		e.mu.Unlock()
		return false
	}
	e.tasks[i].Editing = !e.tasks[i].Editing
	e.mu.Unlock()

	e.emit(Event{Kind: EventStateChanged})
	return true
}

// RenameTask sets the name and leaves edit mode. The name is stored as
// given; unlike AddTask an empty name is accepted.
func (e *Engine) RenameTask(id ID, name string) bool {
	e.mu.Lock()
	i := e.indexOf(id)
	if i < 0 {
		e.mu.Unlock()
		return false
	}
	e.tasks[i].Name = name
	e.tasks[i].Editing = false
	e.mu.Unlock()

	e.emit(Event{Kind: EventStateChanged})
	return true
}

// Snapshot returns a copy of the collection in insertion order.
func (e *Engine) Snapshot() []Task {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Task, len(e.tasks))
	copy(out, e.tasks)
	return out
}

// Task looks up a single task by id.
func (e *Engine) Task(id ID) (Task, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if i := e.indexOf(id); i >= 0 {
		return e.tasks[i], true
	}
	return Task{}, false
}

// Len returns the number of tasks.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.tasks)
}

// Close cancels every pending suggestion. Requests made afterwards are
// cancelled immediately.
func (e *Engine) Close() {
	e.mu.Lock()
	e.closed = true
	e.mu.Unlock()

	e.CancelSuggestions()
}
