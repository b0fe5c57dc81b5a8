package gqlfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	c "github.com/unkn0wn-root/gqlfetch/codec"
	"github.com/unkn0wn-root/gqlfetch/internal/wire"
	st "github.com/unkn0wn-root/gqlfetch/store"
	"github.com/unkn0wn-root/gqlfetch/store/memory"
	tr "github.com/unkn0wn-root/gqlfetch/transport"
	"github.com/unkn0wn-root/gqlfetch/typenames"
)

type client struct {
	endpoint    string
	transport   tr.Transport
	store       st.Store
	codec       c.Codec
	hasher      Hasher
	ids         IDGenerator
	log         Logger
	hooks       Hooks
	ns          string
	headers     http.Header
	headersFunc func() http.Header
	subs        *registry
}

var _ Client = (*client)(nil)

func newClient(opts Options) (*client, error) {
	if opts.Endpoint == "" {
		return nil, fmt.Errorf("gqlfetch: endpoint is required")
	}

	cl := &client{
		endpoint:    opts.Endpoint,
		ns:          opts.Namespace,
		headers:     opts.Headers,
		headersFunc: opts.HeadersFunc,
		subs:        newRegistry(),
	}

	// defaults
	cl.log = coalesce[Logger](opts.Logger, NopLogger{})
	cl.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	cl.codec = coalesce[c.Codec](opts.Codec, c.JSON{})
	cl.hasher = coalesce[Hasher](opts.Hasher, XXHash{})
	cl.ids = coalesce[IDGenerator](opts.IDs, ULIDGenerator{})

	if opts.Transport != nil {
		cl.transport = opts.Transport
	} else {
		cl.transport = tr.NewHTTP(nil)
	}
	if opts.Store != nil {
		cl.store = opts.Store
	} else {
		cl.store = memory.New()
	}

	return cl, nil
}

func (cl *client) Close(ctx context.Context) error {
	return cl.store.Close(ctx)
}

func (cl *client) Query(ctx context.Context, req Request, skipCache bool) (*QueryResult, error) {
	canonical, err := cl.codec.Encode(req.Query, req.Variables)
	if err != nil {
		return nil, fmt.Errorf("gqlfetch: encode request: %w", err)
	}
	key := cl.storageKey(cl.hasher.Hash(canonical))

	if !skipCache {
		if res, ok := cl.lookup(ctx, key); ok {
			return res, nil
		}
	}

	resp, err := cl.exchange(ctx, req)
	if err != nil {
		cl.hooks.TransportFailure("query", err)
		return nil, err
	}
	if !resp.HasData() {
		cl.hooks.NoData("query")
		return nil, noDataErr("query")
	}

	names, err := typenames.FromJSON(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("gqlfetch: scan response: %w", err)
	}

	cl.storeEntry(ctx, key, resp.Data)

	return &QueryResult{Data: resp.Data, TypeNames: names}, nil
}

func (cl *client) Mutate(ctx context.Context, req Request) (json.RawMessage, error) {
	resp, err := cl.exchange(ctx, req)
	if err != nil {
		cl.hooks.TransportFailure("mutation", err)
		return nil, err
	}
	if !resp.HasData() {
		cl.hooks.NoData("mutation")
		return nil, noDataErr("mutation")
	}

	names, err := typenames.FromJSON(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("gqlfetch: scan response: %w", err)
	}

	cl.broadcast(names, resp)
	return resp.Data, nil
}

func (cl *client) Subscribe(cb MutationCallback) SubscriptionID {
	id := SubscriptionID(cl.ids.NewID())
	cl.subs.add(id, cb)
	return id
}

func (cl *client) Unsubscribe(id SubscriptionID) {
	cl.subs.remove(id)
}

// lookup serves a query from the store. Corrupt or unscannable entries are
// deleted and missed; a store read error degrades to a miss so the network
// path still serves the caller.
func (cl *client) lookup(ctx context.Context, key string) (*QueryResult, bool) {
	raw, ok, err := cl.store.Get(ctx, key)
	if err != nil {
		cl.log.Warn("store get failed; treating as miss", Fields{"key": key, "err": err})
		cl.hooks.StoreDegraded(key, err)
		return nil, false
	}
	if !ok {
		cl.hooks.CacheMiss(key)
		return nil, false
	}

	payload, err := wire.DecodeEntry(raw)
	if err != nil {
		_ = cl.store.Del(ctx, key) // self-heal corrupt
		cl.hooks.SelfHeal(key, "corrupt")
		return nil, false
	}
	names, err := typenames.FromJSON(payload)
	if err != nil {
		_ = cl.store.Del(ctx, key) // self-heal
		cl.hooks.SelfHeal(key, "extract")
		return nil, false
	}

	cl.hooks.CacheHit(key)
	return &QueryResult{Data: payload, TypeNames: names}, true
}

// storeEntry writes the framed document best-effort; a failed or rejected
// write never fails the query.
func (cl *client) storeEntry(ctx context.Context, key string, data []byte) {
	framed := wire.EncodeEntry(data)
	ok, err := cl.store.Set(ctx, key, framed)
	if err != nil {
		cl.log.Warn("store set failed", Fields{"key": key, "err": err})
		cl.hooks.StoreDegraded(key, err)
		return
	}
	if !ok {
		cl.log.Debug("store rejected set (pressure)", Fields{"key": key})
		cl.hooks.StoreRejected(key)
		return
	}
	cl.hooks.CacheStore(key, len(framed))
}

func (cl *client) exchange(ctx context.Context, req Request) (*tr.Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gqlfetch: marshal request: %w", err)
	}
	return cl.transport.Exchange(ctx, cl.endpoint, body, cl.requestHeaders())
}

func (cl *client) requestHeaders() http.Header {
	if cl.headersFunc != nil {
		return cl.headersFunc()
	}
	return cl.headers
}

// broadcast delivers (names, resp) to every callback registered at snapshot
// time. Ordering is unspecified. A panicking callback propagates to the
// Mutate caller and aborts the remaining deliveries.
func (cl *client) broadcast(names []string, resp *tr.Response) {
	cbs := cl.subs.snapshot()
	cl.log.Debug("broadcasting mutation", Fields{"typeNames": names, "subscribers": len(cbs)})
	for _, cb := range cbs {
		cb(names, resp)
	}
	cl.hooks.Broadcast(names, len(cbs))
}

func (cl *client) storageKey(digest string) string {
	// isolate by namespace
	if cl.ns == "" {
		return digest
	}
	return cl.ns + ":" + digest
}
