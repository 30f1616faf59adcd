package timeline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Hover is the optional index of the card under the pointer.
// The zero value is None.
type Hover struct {
	index int
	set   bool
}

// None is the idle state: no card hovered
var None = Hover{}

// At returns the state in which card i is hovered
func At(i int) Hover {
	return Hover{index: i, set: true}
}

// Index returns the hovered index and whether any card is hovered
func (h Hover) Index() (int, bool) {
	return h.index, h.set
}

// Is reports whether card i is the hovered card
func (h Hover) Is(i int) bool {
	return h.set && h.index == i
}

// IsNone reports whether no card is hovered
func (h Hover) IsNone() bool {
	return !h.set
}

func (h Hover) String() string {
	if !h.set {
		return "none"
	}
	return fmt.Sprintf("%d", h.index)
}

// Apply returns the state after ev. Entering a card replaces whatever was
// hovered before; leaving any card returns to None.
func (h Hover) Apply(ev Event) Hover {
	switch ev.Type {
	case EnterEvent:
		return At(ev.Index)
	case LeaveEvent:
		return None
	}
	return h
}

// MarshalJSON encodes None as null and a hovered card as its index
func (h Hover) MarshalJSON() ([]byte, error) {
	if !h.set {
		return []byte("null"), nil
	}
	return json.Marshal(h.index)
}

// UnmarshalJSON is the inverse of MarshalJSON
func (h *Hover) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*h = None
		return nil
	}
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return fmt.Errorf("hover: %w", err)
	}
	*h = At(i)
	return nil
}

// EventType is the kind of pointer event a card reports
type EventType int

const (
	EnterEvent EventType = iota + 1
	LeaveEvent
)

func (t EventType) String() string {
	switch t {
	case EnterEvent:
		return "enter"
	case LeaveEvent:
		return "leave"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *EventType) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "enter":
		*t = EnterEvent
	case "leave":
		*t = LeaveEvent
	default:
		return fmt.Errorf("unknown hover event type %q", text)
	}
	return nil
}

// Event is emitted by a card when the pointer enters or leaves it
type Event struct {
	Type  EventType `json:"type"`
	Index int       `json:"index"`
}

// Enter returns the event a card emits when the pointer enters it
func Enter(i int) Event {
	return Event{Type: EnterEvent, Index: i}
}

// Leave returns the event a card emits when the pointer leaves it
func Leave(i int) Event {
	return Event{Type: LeaveEvent, Index: i}
}
