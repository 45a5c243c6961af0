package api

import (
	"sync"
)

// EventType represents the type of event being broadcast.
type EventType string

const (
	// EventTypeDebug carries one rotate.DebugEntry as a job's rotation
	// pass produces it.
	EventTypeDebug EventType = "debug"
	// EventTypeStatus carries a job status transition.
	EventTypeStatus EventType = "status"
)

// BroadcastEvent represents a broadcast event sent to WebSocket clients.
type BroadcastEvent struct {
	Type  EventType              `json:"type"`
	JobID string                 `json:"jobId"`
	Data  map[string]interface{} `json:"data"`
}

// Subscription represents a client's subscription to events.
type Subscription struct {
	JobID      string
	EventTypes map[EventType]bool
	Channel    chan BroadcastEvent
}

// Broadcaster manages event distribution to multiple WebSocket clients
// using a fan-out pattern: events are published once and delivered to
// every subscription whose job ID and event-type filters match.
type Broadcaster struct {
	mu            sync.RWMutex
	subscriptions map[*Subscription]bool
	broadcast     chan BroadcastEvent
	register      chan *Subscription
	unregister    chan *Subscription
	done          chan struct{}
}

// NewBroadcaster creates and starts a new event broadcaster.
func NewBroadcaster() *Broadcaster {
	b := &Broadcaster{
		subscriptions: make(map[*Subscription]bool),
		broadcast:     make(chan BroadcastEvent, 256),
		register:      make(chan *Subscription),
		unregister:    make(chan *Subscription),
		done:          make(chan struct{}),
	}

	go b.run()
	return b
}

func (b *Broadcaster) run() {
	for {
		select {
		case sub := <-b.register:
			b.mu.Lock()
			b.subscriptions[sub] = true
			b.mu.Unlock()

		case sub := <-b.unregister:
			b.mu.Lock()
			if b.subscriptions[sub] {
				delete(b.subscriptions, sub)
				close(sub.Channel)
			}
			b.mu.Unlock()

		case event := <-b.broadcast:
			b.mu.RLock()
			for sub := range b.subscriptions {
				if sub.JobID != "" && sub.JobID != event.JobID {
					continue
				}
				if len(sub.EventTypes) > 0 && !sub.EventTypes[event.Type] {
					continue
				}

				select {
				case sub.Channel <- event:
				default:
					// Slow client: drop rather than block the broadcaster.
				}
			}
			b.mu.RUnlock()

		case <-b.done:
			b.mu.Lock()
			for sub := range b.subscriptions {
				close(sub.Channel)
			}
			b.subscriptions = make(map[*Subscription]bool)
			b.mu.Unlock()
			return
		}
	}
}

// Subscribe creates a new subscription for events. jobID filters
// events to a specific job (empty string = all jobs); eventTypes
// filters by type (empty = all types).
func (b *Broadcaster) Subscribe(jobID string, eventTypes []EventType) *Subscription {
	eventTypeMap := make(map[EventType]bool)
	for _, et := range eventTypes {
		eventTypeMap[et] = true
	}

	sub := &Subscription{
		JobID:      jobID,
		EventTypes: eventTypeMap,
		Channel:    make(chan BroadcastEvent, 64),
	}

	b.register <- sub
	return sub
}

// Unsubscribe removes a subscription and closes its channel.
func (b *Broadcaster) Unsubscribe(sub *Subscription) {
	b.unregister <- sub
}

// Broadcast sends an event to all matching subscriptions.
func (b *Broadcaster) Broadcast(event BroadcastEvent) {
	select {
	case b.broadcast <- event:
	default:
		// Broadcast channel full: drop rather than block the caller.
	}
}

// BroadcastDebugEntry publishes one rotation debug-log entry.
func (b *Broadcaster) BroadcastDebugEntry(jobID string, data map[string]interface{}) {
	b.Broadcast(BroadcastEvent{Type: EventTypeDebug, JobID: jobID, Data: data})
}

// BroadcastStatus publishes a job status transition.
func (b *Broadcaster) BroadcastStatus(jobID string, status string) {
	b.Broadcast(BroadcastEvent{
		Type:  EventTypeStatus,
		JobID: jobID,
		Data:  map[string]interface{}{"status": status},
	})
}

// Close shuts down the broadcaster and closes all subscriptions.
func (b *Broadcaster) Close() {
	close(b.done)
}

// SubscriptionCount returns the number of active subscriptions.
func (b *Broadcaster) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscriptions)
}
