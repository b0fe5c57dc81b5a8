package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/gqlfetch"
)

type Options struct {
	// Sampling to avoid floods on the hot path; 0/1 = log all.
	HitEvery  uint64
	MissEvery uint64
}

// Hooks logs client events through slog. Keys are content digests, so they
// are safe to emit as-is.
type Hooks struct {
	l    *slog.Logger
	opts Options

	hitCtr  atomic.Uint64
	missCtr atomic.Uint64
}

var _ gqlfetch.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) CacheHit(storageKey string) {
	if h.l == nil || !sample(h.opts.HitEvery, &h.hitCtr) {
		return
	}
	h.l.Debug("gqlfetch.cache_hit", "key", storageKey)
}

func (h *Hooks) CacheMiss(storageKey string) {
	if h.l == nil || !sample(h.opts.MissEvery, &h.missCtr) {
		return
	}
	h.l.Debug("gqlfetch.cache_miss", "key", storageKey)
}

func (h *Hooks) CacheStore(storageKey string, size int) {
	if h.l == nil {
		return
	}
	h.l.Debug("gqlfetch.cache_store",
		"key", storageKey,
		"size", size)
}

func (h *Hooks) StoreRejected(storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("gqlfetch.store_rejected", "key", storageKey)
}

func (h *Hooks) StoreDegraded(storageKey string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("gqlfetch.store_degraded",
		"key", storageKey,
		"err", err)
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil {
		return
	}
	h.l.Debug("gqlfetch.self_heal",
		"key", storageKey,
		"reason", reason)
}

func (h *Hooks) NoData(op string) {
	if h.l == nil {
		return
	}
	h.l.Info("gqlfetch.no_data", "op", op)
}

func (h *Hooks) TransportFailure(op string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("gqlfetch.transport_failure",
		"op", op,
		"err", err)
}

func (h *Hooks) Broadcast(typeNames []string, subscribers int) {
	if h.l == nil {
		return
	}
	h.l.Debug("gqlfetch.broadcast",
		"type_names", typeNames,
		"subscribers", subscribers)
}
