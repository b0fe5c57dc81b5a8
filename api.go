package gqlfetch

import (
	"context"
	"encoding/json"
	"net/http"

	c "github.com/unkn0wn-root/gqlfetch/codec"
	st "github.com/unkn0wn-root/gqlfetch/store"
	tr "github.com/unkn0wn-root/gqlfetch/transport"
)

// Request is one GraphQL operation. Query is the exact operation text and
// Variables bind its inputs. The pair is hashed as-is: whitespace or key
// reordering inside Query changes the cache identity.
type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// QueryResult couples a response data document with the distinct __typename
// labels found in it. TypeNames is a sorted set; its order carries no
// meaning. Data aliases the cached entry and must be treated as read-only.
type QueryResult struct {
	Data      json.RawMessage
	TypeNames []string
}

// SubscriptionID identifies one registered mutation observer.
type SubscriptionID string

// MutationCallback receives the typename set and the full envelope of every
// successful mutation. Callbacks run synchronously on the goroutine that
// called Mutate; a panic inside a callback propagates to that caller.
type MutationCallback func(typeNames []string, resp *tr.Response)

// Client is the high-level fetching API: cached queries, uncached mutations,
// and mutation change notifications.
type Client interface {
	// Query resolves one query. Unless skipCache is set, an entry stored
	// under the request's content hash is served without touching the
	// transport. A fresh response overwrites the entry wholesale. Identical
	// in-flight queries are not collapsed; the last to complete wins.
	Query(ctx context.Context, req Request, skipCache bool) (*QueryResult, error)

	// Mutate sends one mutation. The cache is never consulted or written.
	// On success the typenames of the response are broadcast to every
	// subscriber before Mutate returns.
	Mutate(ctx context.Context, req Request) (json.RawMessage, error)

	// Subscribe registers cb for mutation broadcasts and returns its id.
	Subscribe(cb MutationCallback) SubscriptionID

	// Unsubscribe removes a subscription. Unknown or repeated ids are a no-op.
	Unsubscribe(id SubscriptionID)

	// Close releases the store.
	Close(ctx context.Context) error
}

// Options tune the client.
// Only Endpoint is required; others have sensible defaults.
type Options struct {
	// Required
	Endpoint string // operations are POSTed here. e.g. "https://api.example.com/graphql"

	Transport tr.Transport // nil => transport.NewHTTP(nil)
	Store     st.Store     // nil => memory.New() (flat, unbounded, never expires)
	Codec     c.Codec      // nil => codec.JSON{}
	Hasher    Hasher       // nil => XXHash{}
	IDs       IDGenerator  // nil => ULIDGenerator{}
	Logger    Logger       // if nil, NopLogger is used
	Hooks     Hooks        // if nil, NopHooks is used

	// Namespace prefixes storage keys ("<ns>:<digest>") so several clients
	// can share one store without colliding. Empty means raw digest keys.
	Namespace string

	// Headers are sent on every exchange. HeadersFunc, when set, is
	// evaluated fresh per exchange and wins over Headers.
	Headers     http.Header
	HeadersFunc func() http.Header
}

func New(opts Options) (Client, error) {
	return newClient(opts)
}
