package gqlfetch

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
// The client calls them on hot paths.
type Hooks interface {
	// A query was served from the store without touching the transport.
	CacheHit(storageKey string)

	// A query had no usable entry and goes to the transport.
	CacheMiss(storageKey string)

	// A response document was written to the store. size is the framed length.
	CacheStore(storageKey string, size int)

	// Store returned ok=false on Set (backpressure/eviction).
	StoreRejected(storageKey string)

	// Store Get or Set failed: the read degraded to a miss, or the write
	// left no entry. The request still succeeds either way.
	StoreDegraded(storageKey string, err error)

	// An entry was deleted by the client on read.
	// reason ∈ {"corrupt", "extract"}
	SelfHeal(storageKey, reason string)

	// A well-formed envelope arrived without a data document.
	// op ∈ {"query", "mutation"}
	NoData(op string)

	// The transport returned an error. op ∈ {"query", "mutation"}
	TransportFailure(op string, err error)

	// A successful mutation fanned out to the subscribers registered at
	// snapshot time (possibly zero).
	Broadcast(typeNames []string, subscribers int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) CacheHit(string)                {}
func (NopHooks) CacheMiss(string)               {}
func (NopHooks) CacheStore(string, int)         {}
func (NopHooks) StoreRejected(string)           {}
func (NopHooks) StoreDegraded(string, error)    {}
func (NopHooks) SelfHeal(string, string)        {}
func (NopHooks) NoData(string)                  {}
func (NopHooks) TransportFailure(string, error) {}
func (NopHooks) Broadcast([]string, int)        {}
