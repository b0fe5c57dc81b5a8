package dedupe

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/unkn0wn-root/gqlfetch"
)

// countingClient blocks every Query on release so callers pile into one flight.
type countingClient struct {
	queries   atomic.Int64
	mutations atomic.Int64
	release   chan struct{}
}

var _ gqlfetch.Client = (*countingClient)(nil)

func (f *countingClient) Query(_ context.Context, _ gqlfetch.Request, _ bool) (*gqlfetch.QueryResult, error) {
	f.queries.Add(1)
	if f.release != nil {
		<-f.release
	}
	return &gqlfetch.QueryResult{Data: json.RawMessage(`{"ok":true}`)}, nil
}

func (f *countingClient) Mutate(_ context.Context, _ gqlfetch.Request) (json.RawMessage, error) {
	f.mutations.Add(1)
	return json.RawMessage(`{}`), nil
}

func (f *countingClient) Subscribe(gqlfetch.MutationCallback) gqlfetch.SubscriptionID { return "sub" }
func (f *countingClient) Unsubscribe(gqlfetch.SubscriptionID)                         {}
func (f *countingClient) Close(context.Context) error                                 { return nil }

func TestConcurrentIdenticalQueriesCollapse(t *testing.T) {
	inner := &countingClient{release: make(chan struct{})}
	c := New(inner, nil)

	req := gqlfetch.Request{Query: "query { me }", Variables: map[string]any{"id": "1"}}

	const n = 8
	var wg sync.WaitGroup
	results := make([]*gqlfetch.QueryResult, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := c.Query(context.Background(), req, false)
			if err != nil {
				t.Errorf("Query: %v", err)
				return
			}
			results[i] = res
		}(i)
	}

	// let the callers park in the shared flight, then release it
	time.Sleep(100 * time.Millisecond)
	close(inner.release)
	wg.Wait()

	if got := inner.queries.Load(); got != 1 {
		t.Fatalf("inner queries = %d, want 1", got)
	}
	for i := 1; i < n; i++ {
		if results[i] != results[0] {
			t.Fatalf("caller %d got a different result", i)
		}
	}
}

func TestSkipVariantsDoNotShareFlights(t *testing.T) {
	inner := &countingClient{release: make(chan struct{})}
	c := New(inner, nil)

	req := gqlfetch.Request{Query: "query { me }"}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = c.Query(context.Background(), req, false)
	}()
	go func() {
		defer wg.Done()
		_, _ = c.Query(context.Background(), req, true)
	}()

	time.Sleep(100 * time.Millisecond)
	close(inner.release)
	wg.Wait()

	if got := inner.queries.Load(); got != 2 {
		t.Fatalf("inner queries = %d, want 2 (one per skip variant)", got)
	}
}

func TestDifferentVariablesDoNotShareFlights(t *testing.T) {
	inner := &countingClient{release: make(chan struct{})}
	c := New(inner, nil)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, _ = c.Query(context.Background(), gqlfetch.Request{Query: "query { u }", Variables: map[string]any{"id": "1"}}, false)
	}()
	go func() {
		defer wg.Done()
		_, _ = c.Query(context.Background(), gqlfetch.Request{Query: "query { u }", Variables: map[string]any{"id": "2"}}, false)
	}()

	time.Sleep(100 * time.Millisecond)
	close(inner.release)
	wg.Wait()

	if got := inner.queries.Load(); got != 2 {
		t.Fatalf("inner queries = %d, want 2", got)
	}
}

func TestMutationsNeverCollapse(t *testing.T) {
	inner := &countingClient{}
	c := New(inner, nil)

	req := gqlfetch.Request{Query: `mutation { bump }`}

	const n = 5
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Mutate(context.Background(), req); err != nil {
				t.Errorf("Mutate: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := inner.mutations.Load(); got != n {
		t.Fatalf("inner mutations = %d, want %d", got, n)
	}
}
