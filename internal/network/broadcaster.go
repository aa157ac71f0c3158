package network

import (
	"sync"

	"github.com/JSchwerberg/the-substrate-sub001/pkg/api"
)

// Broadcaster fans server responses out to connected sessions. It only
// moves messages; who is allowed to see what is decided by the view layer
// before a response reaches it.
type Broadcaster struct {
	mu sync.RWMutex
	// session id -> private channel
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register creates a private channel for a session, replacing (and closing)
// any previous registration under the same id.
func (b *Broadcaster) Register(sessionID string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[sessionID]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, 100)
	b.subscribers[sessionID] = ch
	return ch
}

// Unregister removes a session and closes its channel.
func (b *Broadcaster) Unregister(sessionID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		close(ch)
		delete(b.subscribers, sessionID)
	}
}

// SendTo delivers a response to one session. Full channels drop the frame
// rather than blocking the simulation.
func (b *Broadcaster) SendTo(sessionID string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[sessionID]; ok {
		select {
		case ch <- msg:
		default:
		}
	}
}

// Broadcast delivers a response to every session (controller and
// spectators alike; clients filter by expedition id).
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// SubscriberCount returns the number of active sessions.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
