package utils

import (
	"sync"
	"time"
)

const DefaultNotificationTTL = 3 * time.Second

type Notification struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type notification struct {
	Notification
	expiresAt time.Time
}

// Notifier holds short-lived confirmation messages per cart. Each message
// lives for a fixed TTL and is dropped on the next read; there is no
// dismissal and no ordering guarantee between overlapping messages.
type Notifier struct {
	mu    sync.Mutex
	ttl   time.Duration
	carts map[string][]notification
}

func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{ttl: ttl, carts: map[string][]notification{}}
}

func (n *Notifier) Push(cartID, message string) {
	now := time.Now()

	n.mu.Lock()
	defer n.mu.Unlock()

	n.prune(cartID, now)
	n.carts[cartID] = append(n.carts[cartID], notification{
		Notification: Notification{Message: message, CreatedAt: now},
		expiresAt:    now.Add(n.ttl),
	})
}

func (n *Notifier) Active(cartID string) []Notification {
	now := time.Now()

	n.mu.Lock()
	defer n.mu.Unlock()

	n.prune(cartID, now)
	items := n.carts[cartID]
	active := make([]Notification, 0, len(items))
	for i := range items {
		active = append(active, items[i].Notification)
	}
	return active
}

func (n *Notifier) prune(cartID string, now time.Time) {
	items := n.carts[cartID]
	live := items[:0]
	for i := range items {
		if items[i].expiresAt.After(now) {
			live = append(live, items[i])
		}
	}
	if len(live) == 0 {
		delete(n.carts, cartID)
		return
	}
	n.carts[cartID] = live
}
