package game

import "fmt"

// EventKind classifies a log line so the terminal can style it
type EventKind int

const (
	EventInfo EventKind = iota
	EventCaught
	EventFish
	EventBook
	EventRejected
)

// Event is one line of the rolling turn log
type Event struct {
	Turn int
	Kind EventKind
	Text string
}

// EventLog is a bounded queue of recent events. Once full, the oldest event
// is dropped for each new one.
type EventLog struct {
	capacity int
	events   []Event
}

// DefaultLogLines is the number of events kept when no capacity is configured
const DefaultLogLines = 8

// NewEventLog creates a log keeping at most capacity events
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultLogLines
	}
	return &EventLog{capacity: capacity, events: make([]Event, 0, capacity+1)}
}

// Add appends an event, evicting the oldest when full
func (l *EventLog) Add(turn int, kind EventKind, format string, args ...any) {
	l.events = append(l.events, Event{Turn: turn, Kind: kind, Text: fmt.Sprintf(format, args...)})
	if len(l.events) > l.capacity {
		l.events = l.events[len(l.events)-l.capacity:]
	}
}

// Recent returns a copy of the events, oldest first
func (l *EventLog) Recent() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// DropBefore removes every event older than turn
func (l *EventLog) DropBefore(turn int) {
	kept := l.events[:0]
	for _, e := range l.events {
		if e.Turn >= turn {
			kept = append(kept, e)
		}
	}
	l.events = kept
}

// Len returns the number of events held
func (l *EventLog) Len() int {
	return len(l.events)
}

// Capacity returns the maximum number of events held
func (l *EventLog) Capacity() int {
	return l.capacity
}
