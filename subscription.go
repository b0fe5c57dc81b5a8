package gqlfetch

import "sync"

// registry holds mutation observers. Broadcasts snapshot the callback set
// before invoking anything, so Subscribe/Unsubscribe during a broadcast
// never disturb deliveries already underway.
type registry struct {
	mu   sync.RWMutex
	subs map[SubscriptionID]MutationCallback
}

func newRegistry() *registry {
	return &registry{subs: make(map[SubscriptionID]MutationCallback)}
}

func (r *registry) add(id SubscriptionID, cb MutationCallback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[id] = cb
}

func (r *registry) remove(id SubscriptionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.subs, id)
}

func (r *registry) snapshot() []MutationCallback {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]MutationCallback, 0, len(r.subs))
	for _, cb := range r.subs {
		out = append(out, cb)
	}
	return out
}
