package events

import "reflect"

// Event is the interface that all game events must implement.
type Event interface {
	EventName() string // Returns a unique name for the event type
}

// EventHandler is a callback invoked synchronously for each emitted event.
type EventHandler func(event Event)

// GetRoundID extracts the round ID from an event's RoundID field.
func GetRoundID(event Event) string {
	val := reflect.ValueOf(event)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	field := val.FieldByName("RoundID")
	if field.IsValid() && field.Kind() == reflect.String {
		return field.String()
	}
	return ""
}
