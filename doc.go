// Package gqlfetch implements a caching client for GraphQL-shaped APIs.
// Queries and mutations are POSTed to a single endpoint; query responses are
// cached under a content hash of the serialized request; every successful
// mutation broadcasts the __typename labels found in its response to
// registered observers, which decide what to invalidate or refetch.
//
// Components:
//   - transport.Transport: one request/response exchange (HTTP by default).
//   - store.Store: byte store holding framed response documents. Flat
//     in-process map by default; BigCache, Ristretto and Redis adapters.
//   - codec.Codec: deterministic request serialization feeding the Hasher.
//   - Hasher / IDGenerator: injected capabilities for cache digests and
//     subscription ids.
//
// Keys:
//
//	<digest>       - response documents (default)
//	<ns>:<digest>  - with Options.Namespace, for clients sharing a store
//
// Fetch pattern:
//
//	cl, _ := gqlfetch.New(gqlfetch.Options{Endpoint: "https://api.example.com/graphql"})
//	id := cl.Subscribe(func(names []string, _ *transport.Response) { refetch(names) })
//	defer cl.Unsubscribe(id)
//	res, _ := cl.Query(ctx, gqlfetch.Request{Query: "{ me { __typename name } }"}, false)
//	_ = res.TypeNames // e.g. ["User"]
//
// The default cache never expires or evicts entries, and identical in-flight
// queries are not collapsed: both reach the server and the last to complete
// owns the entry. The dedupe package offers opt-in single-flight collapsing.
package gqlfetch
