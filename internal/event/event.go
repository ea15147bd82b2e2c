// Package event decouples the editor core from the surfaces that react to
// tree changes: renderers and loggers subscribe, mutations publish.
package event

import (
	"fmt"
	"sync"
)

type EventType int

const (
	ComponentAdded EventType = iota
	ComponentDeleted
	ComponentMoved
	ComponentUpdated
	SelectionChanged
	ProjectReplaced
)

type Event struct {
	Type EventType
	Data interface{}
}

type EventHandler func(Event)

// EventManager dispatches events synchronously, in subscription order.
// Synchronous delivery preserves the gesture ordering guarantee: a
// mutation fully completes, handlers run, and only then does the next
// gesture begin.
type EventManager struct {
	subscribers map[EventType][]EventHandler
	mu          sync.RWMutex
}

func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
	}
}

func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.mu.Lock()
	defer em.mu.Unlock()
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

func (em *EventManager) Publish(event Event) {
	em.mu.RLock()
	handlers := em.subscribers[event.Type]
	em.mu.RUnlock()
	for _, handler := range handlers {
		func(h EventHandler) {
			defer func() {
				if r := recover(); r != nil {
					fmt.Printf("Panic in event handler: %v\n", r)
				}
			}()
			h(event)
		}(handler)
	}
}
