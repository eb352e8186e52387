package events

import (
	"fmt"
	"sync"
)

// EventStore is the interface for storing and retrieving events.
type EventStore interface {
	Append(event Event) error
	LoadEvents(roundID string) ([]Event, error)
}

// InMemoryEventStore is an in-memory implementation of the EventStore interface.
type InMemoryEventStore struct {
	events map[string][]Event
	mutex  sync.RWMutex
}

// NewInMemoryEventStore creates a new in-memory event store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		events: make(map[string][]Event),
	}
}

// Append adds a new event to the store.
func (s *InMemoryEventStore) Append(event Event) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	// Extract roundID from the event
	roundID := GetRoundID(event)
	if roundID == "" {
		return fmt.Errorf("event has no roundID")
	}

	s.events[roundID] = append(s.events[roundID], event)
	return nil
}

// LoadEvents retrieves all events for the given roundID.
func (s *InMemoryEventStore) LoadEvents(roundID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if events, exists := s.events[roundID]; exists {
		// Make a copy to avoid potential race conditions
		result := make([]Event, len(events))
		copy(result, events)
		return result, nil
	}

	// Return empty slice if no events found
	return []Event{}, nil
}

// GetEvents returns every stored event across all rounds.
func (s *InMemoryEventStore) GetEvents() []Event {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var events []Event
	for _, e := range s.events {
		events = append(events, e...)
	}
	return events
}
