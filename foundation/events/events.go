// Package events allows goroutines to register for and receive the
// narration the ledger produces while it processes accounts and blocks.
package events

import (
	"fmt"
	"sync"
	"time"
)

// Event is a single item of ledger narration.
type Event struct {
	Time    time.Time
	Message string
}

// Events maintains a mapping of unique id and channels so goroutines
// can register and receive ledger events.
type Events struct {
	m  map[string]chan Event
	mu sync.RWMutex
}

// New constructs an events value for registering and receiving events.
func New() *Events {
	return &Events{
		m: make(map[string]chan Event),
	}
}

// Shutdown closes and removes all channels that were provided by
// the call to Acquire.
func (evt *Events) Shutdown() {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	for id, ch := range evt.m {
		delete(evt.m, id)
		close(ch)
	}
}

// Acquire takes a unique id and returns a channel that can be used
// to receive events.
func (evt *Events) Acquire(id string) chan Event {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	ch, exists := evt.m[id]
	if exists {
		return ch
	}

	// A mining search produces narration faster than a subscriber may
	// drain it. The buffer gives slow subscribers room before events
	// start being dropped.
	const messageBuffer = 100

	evt.m[id] = make(chan Event, messageBuffer)
	return evt.m[id]
}

// Release closes and removes the channel that was provided by
// the call to Acquire.
func (evt *Events) Release(id string) error {
	evt.mu.Lock()
	defer evt.mu.Unlock()

	ch, exists := evt.m[id]
	if !exists {
		return fmt.Errorf("id %q does not exist", id)
	}

	delete(evt.m, id)
	close(ch)
	return nil
}

// Send delivers a message to every registered channel. Send will not
// block waiting for a receiver on any given channel.
func (evt *Events) Send(v string, args ...any) {
	evt.mu.RLock()
	defer evt.mu.RUnlock()

	event := Event{
		Time:    time.Now().UTC(),
		Message: fmt.Sprintf(v, args...),
	}

	for _, ch := range evt.m {
		select {
		case ch <- event:
		default:
		}
	}
}
