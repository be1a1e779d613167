package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Language selects the wording of the suggested task.
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageJapanese Language = "ja"
)

// Fixed suggestion names
const (
	SuggestionNameEN = "AI suggestion: take a short break"
	SuggestionNameJA = "AI提案: 短い休憩を取る"
)

// ParseLanguage validates a language code. Empty means English.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "en", "english":
		return LanguageEnglish, nil
	case "ja", "jp", "japanese":
		return LanguageJapanese, nil
	default:
		return "", fmt.Errorf("unsupported language %q", s)
	}
}

// Suggestion is the task the assistant appends. It does not look at the
// existing tasks; every request yields the same task.
type Suggestion struct {
	Name     string
	Duration int
	Column   Column
	Time     string
}

// DefaultSuggestion returns the short-break suggestion in the given language.
func DefaultSuggestion(lang Language) Suggestion {
	name := SuggestionNameEN
	if lang == LanguageJapanese {
		name = SuggestionNameJA
	}
	return Suggestion{
		Name:     name,
		Duration: 5,
		Column:   ColumnTodo,
		Time:     "15:00",
	}
}

func (s Suggestion) newTask() NewTask {
	return NewTask{
		Name:     s.Name,
		Duration: s.Duration,
		Column:   s.Column,
		Time:     s.Time,
	}
}

// Ticket is the handle for one pending suggestion.
type Ticket struct {
	ID          uuid.UUID
	RequestedAt time.Time
	DueAt       time.Time

	engine  *Engine
	timer   Timer
	stopCtx func() bool
}

// Remaining returns how long until the suggestion is due.
func (t *Ticket) Remaining(now time.Time) time.Duration {
	if d := t.DueAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

// Cancel drops the suggestion if it has not been appended yet. It reports
// whether anything was cancelled.
func (t *Ticket) Cancel() bool {
	e := t.engine
	e.mu.Lock()
	if _, ok := e.pending[t.ID]; !ok {
		e.mu.Unlock()
		return false
	}
	delete(e.pending, t.ID)
	timer, stop := t.timer, t.stopCtx
	e.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
	if stop != nil {
		stop()
	}
	e.emit(Event{Kind: EventSuggestionCancelled, Ticket: t.ID})
	return true
}

// RequestSuggestion signals that a suggestion is pending and appends the
// suggested task once the delay has elapsed. Every call schedules its own
// append. The suggestion is dropped when ctx is done first or the ticket is
// cancelled.
func (e *Engine) RequestSuggestion(ctx context.Context) *Ticket {
	t := &Ticket{ID: uuid.New(), engine: e}
	e.emit(Event{Kind: EventSuggestionPending, Ticket: t.ID})

	e.mu.Lock()
	now := e.clock.Now()
	t.RequestedAt = now
	t.DueAt = now.Add(e.delay)
	if e.closed {
		e.mu.Unlock()
		e.emit(Event{Kind: EventSuggestionCancelled, Ticket: t.ID})
		return t
	}
	e.pending[t.ID] = t
	t.timer = e.clock.AfterFunc(e.delay, func() { e.fire(t) })
	if ctx != nil {
		t.stopCtx = context.AfterFunc(ctx, func() { t.Cancel() })
	}
	e.mu.Unlock()

	return t
}

func (e *Engine) fire(t *Ticket) {
	e.mu.Lock()
	if _, ok := e.pending[t.ID]; !ok {
		e.mu.Unlock()
		return
	}
	delete(e.pending, t.ID)
	id := e.appendLocked(e.suggestion.newTask())
	stop := t.stopCtx
	e.mu.Unlock()

	if stop != nil {
		stop()
	}
	e.emit(Event{Kind: EventStateChanged})
	e.emit(Event{Kind: EventSuggestionReady, TaskID: id, Ticket: t.ID})
}

// Pending returns the number of outstanding suggestions.
func (e *Engine) Pending() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.pending)
}

// CancelSuggestions cancels every outstanding suggestion and returns how
// many were dropped.
func (e *Engine) CancelSuggestions() int {
	e.mu.RLock()
	tickets := make([]*Ticket, 0, len(e.pending))
	for _, t := range e.pending {
		tickets = append(tickets, t)
	}
	e.mu.RUnlock()

	n := 0
	for _, t := range tickets {
		if t.Cancel() {
			n++
		}
	}
	return n
}
