package navigation

import (
	"github.com/pkg/errors"
)

type EventKind string

const (
	EventOpen         EventKind = "open"
	EventClose        EventKind = "close"
	EventBackdrop     EventKind = "backdrop"
	EventSelect       EventKind = "select"
	EventSelectChild  EventKind = "select-child"
	EventHoverEnter   EventKind = "hover-enter"
	EventHoverLeave   EventKind = "hover-leave"
	EventBrand        EventKind = "brand"
	EventBookCall     EventKind = "book-call"
	EventConsultation EventKind = "consultation"
)

var ErrUnknownEvent = errors.New("unknown event")

var eventKinds = []EventKind{
	EventOpen,
	EventClose,
	EventBackdrop,
	EventSelect,
	EventSelectChild,
	EventHoverEnter,
	EventHoverLeave,
	EventBrand,
	EventBookCall,
	EventConsultation,
}

func ParseEventKind(raw string) (EventKind, error) {
	for _, k := range eventKinds {
		if string(k) == raw {
			return k, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownEvent, "'%s'", raw)
}

// Event is a user interaction with the header. Entry names the top-level
// entry the event targets, Child the link inside its dropdown.
type Event struct {
	Kind  EventKind
	Entry string
	Child string
}

// Validate checks that the entries the event refers to exist in tree.
func (e Event) Validate(tree *Tree) error {
	switch e.Kind {
	case EventSelect, EventHoverEnter, EventHoverLeave, EventSelectChild:
		entry, exists := tree.Entry(e.Entry)
		if !exists {
			return errors.Wrapf(ErrUnknownEntry, "'%s'", e.Entry)
		}

		if e.Kind != EventSelectChild {
			return nil
		}

		if _, exists := entry.Child(e.Child); !exists {
			return errors.Wrapf(ErrUnknownChild, "'%s' in entry '%s'", e.Child, e.Entry)
		}

	case "":
		return errors.WithStack(ErrUnknownEvent)
	}

	return nil
}

func Open() Event     { return Event{Kind: EventOpen} }
func Close() Event    { return Event{Kind: EventClose} }
func Backdrop() Event { return Event{Kind: EventBackdrop} }

func Select(entry string) Event {
	return Event{Kind: EventSelect, Entry: entry}
}

func SelectChild(entry, child string) Event {
	return Event{Kind: EventSelectChild, Entry: entry, Child: child}
}

func HoverEnter(entry string) Event {
	return Event{Kind: EventHoverEnter, Entry: entry}
}

func HoverLeave(entry string) Event {
	return Event{Kind: EventHoverLeave, Entry: entry}
}
