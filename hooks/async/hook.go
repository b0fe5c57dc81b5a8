// usage:
//
// import (
//
//	"log/slog"
//
//	"github.com/unkn0wn-root/gqlfetch"
//	"github.com/unkn0wn-root/gqlfetch/hooks/async"
//	"github.com/unkn0wn-root/gqlfetch/sloghooks"
//
// )
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    HitEvery:  100, // sample logs: ~every 100th hit
//	    MissEvery: 1,   // log every miss
//	})
//
// hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
// defer hooks.Close()
//
//	client, _ := gqlfetch.New(gqlfetch.Options{
//	    Endpoint: "https://api.example.com/graphql",
//	    Hooks:    hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/gqlfetch"
)

type Hooks struct {
	inner gqlfetch.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ gqlfetch.Hooks = (*Hooks)(nil)

func New(inner gqlfetch.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) CacheHit(k string)          { h.try(func() { h.inner.CacheHit(k) }) }
func (h *Hooks) CacheMiss(k string)         { h.try(func() { h.inner.CacheMiss(k) }) }
func (h *Hooks) CacheStore(k string, n int) { h.try(func() { h.inner.CacheStore(k, n) }) }
func (h *Hooks) StoreRejected(k string)     { h.try(func() { h.inner.StoreRejected(k) }) }
func (h *Hooks) SelfHeal(k, r string)       { h.try(func() { h.inner.SelfHeal(k, r) }) }
func (h *Hooks) NoData(op string)           { h.try(func() { h.inner.NoData(op) }) }
func (h *Hooks) StoreDegraded(k string, err error) {
	h.try(func() { h.inner.StoreDegraded(k, err) })
}
func (h *Hooks) TransportFailure(op string, err error) {
	h.try(func() { h.inner.TransportFailure(op, err) })
}
func (h *Hooks) Broadcast(names []string, n int) {
	h.try(func() { h.inner.Broadcast(names, n) })
}
