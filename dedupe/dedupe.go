// Package dedupe collapses concurrent identical queries into one exchange.
//
// The core client lets identical in-flight queries race (the last to
// complete owns the cache entry). Wrap it with New when call sites fan out
// the same query and one exchange should serve them all. Mutations are
// never collapsed. Callers sharing a flight share its outcome, including a
// cancellation of the flight-initiating context.
package dedupe

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/singleflight"

	"github.com/unkn0wn-root/gqlfetch"
	"github.com/unkn0wn-root/gqlfetch/codec"
)

// Client decorates a gqlfetch.Client with single-flight queries.
type Client struct {
	inner gqlfetch.Client
	codec codec.Codec
	group singleflight.Group
}

var _ gqlfetch.Client = (*Client)(nil)

// New wraps inner. A nil enc falls back to codec.JSON{}; pass the codec the
// inner client uses so flight keys align with its cache keys.
func New(inner gqlfetch.Client, enc codec.Codec) *Client {
	if enc == nil {
		enc = codec.JSON{}
	}
	return &Client{inner: inner, codec: enc}
}

func (c *Client) Query(ctx context.Context, req gqlfetch.Request, skipCache bool) (*gqlfetch.QueryResult, error) {
	canonical, err := c.codec.Encode(req.Query, req.Variables)
	if err != nil {
		// let the inner client produce its own encode error
		return c.inner.Query(ctx, req, skipCache)
	}

	v, err, _ := c.group.Do(flightKey(skipCache, canonical), func() (any, error) {
		return c.inner.Query(ctx, req, skipCache)
	})
	if err != nil {
		return nil, err
	}
	return v.(*gqlfetch.QueryResult), nil
}

// flightKey separates the skip variants: a cache-busting call must not be
// served by a cached-path flight already underway.
func flightKey(skipCache bool, canonical []byte) string {
	if skipCache {
		return "skip:" + string(canonical)
	}
	return "use:" + string(canonical)
}

func (c *Client) Mutate(ctx context.Context, req gqlfetch.Request) (json.RawMessage, error) {
	return c.inner.Mutate(ctx, req)
}

func (c *Client) Subscribe(cb gqlfetch.MutationCallback) gqlfetch.SubscriptionID {
	return c.inner.Subscribe(cb)
}

func (c *Client) Unsubscribe(id gqlfetch.SubscriptionID) {
	c.inner.Unsubscribe(id)
}

func (c *Client) Close(ctx context.Context) error {
	return c.inner.Close(ctx)
}
