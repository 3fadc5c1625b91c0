package resilience

import (
	"context"
	"fmt"
	"sync"
)

// Group collapses concurrent loads of the same key into one call. The zero value is ready to use.
type Group[T any] struct {
	mu    sync.Mutex
	calls map[string]*flight[T]
}

type flight[T any] struct {
	done chan struct{}
	val  T
	err  error
	dups int
}

// Do runs fn once per key among overlapping callers. shared reports whether the
// result came from another caller's run.
func (g *Group[T]) Do(key string, fn func() (T, error)) (val T, shared bool, err error) {
	f, leader := g.join(key)
	if leader {
		g.run(key, f, fn)
	} else {
		<-f.done
	}
	return f.val, !leader || f.dups > 0, f.err
}

// DoContext is Do for callers that can give up waiting. The leading call keeps
// running for the remaining waiters when ctx ends.
func (g *Group[T]) DoContext(ctx context.Context, key string, fn func() (T, error)) (T, bool, error) {
	f, leader := g.join(key)
	if leader {
		go g.run(key, f, fn)
	}

	select {
	case <-f.done:
		return f.val, !leader || f.dups > 0, f.err
	case <-ctx.Done():
		var zero T
		return zero, !leader, ctx.Err()
	}
}

func (g *Group[T]) join(key string) (*flight[T], bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.calls == nil {
		g.calls = make(map[string]*flight[T])
	}
	if f, ok := g.calls[key]; ok {
		f.dups++
		return f, false
	}

	f := &flight[T]{done: make(chan struct{})}
	g.calls[key] = f
	return f, true
}

func (g *Group[T]) run(key string, f *flight[T], fn func() (T, error)) {
	defer func() {
		if r := recover(); r != nil {
			f.err = fmt.Errorf("singleflight %q panicked: %v", key, r)
		}
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		close(f.done)
	}()

	f.val, f.err = fn()
}
