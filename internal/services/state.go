package services

import "sync"

// stateCell holds one store's state. Writers are serialized by writeMu, which
// is held across the transition and its notification, so subscribers observe
// commits in commit order. mu only guards state itself and is never held while
// subscribers run. Subscribers may read snapshots but must not issue intents
// on the same store synchronously.
type stateCell[T any] struct {
	writeMu sync.Mutex
	mu      sync.RWMutex
	state   T
	clone   func(T) T

	subsMu sync.Mutex
	nextID int
	subs   []subscription[T]
}

type subscription[T any] struct {
	id int
	fn func(T)
}

func newStateCell[T any](initial T, clone func(T) T) *stateCell[T] {
	return &stateCell[T]{state: initial, clone: clone}
}

func (c *stateCell[T]) snapshot() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clone(c.state)
}

// commit applies fn as one transition and publishes the result
func (c *stateCell[T]) commit(fn func(*T)) T {
	snap, _ := c.commitIf(func(s *T) bool {
		fn(s)
		return true
	})
	return snap
}

// commitIf applies fn; the transition is published only when fn reports a change
func (c *stateCell[T]) commitIf(fn func(*T) bool) (T, bool) {
	return c.apply(fn, nil)
}

// commitThen applies fn and runs after with the new state before any other
// writer can commit. after runs before subscribers are notified.
func (c *stateCell[T]) commitThen(fn func(*T), after func(T)) T {
	snap, _ := c.apply(func(s *T) bool {
		fn(s)
		return true
	}, after)
	return snap
}

func (c *stateCell[T]) apply(fn func(*T) bool, after func(T)) (T, bool) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	changed := fn(&c.state)
	snap := c.clone(c.state)
	c.mu.Unlock()
	if !changed {
		return snap, false
	}

	if after != nil {
		after(c.clone(snap))
	}

	for _, fn := range c.subscribers() {
		fn(c.clone(snap))
	}
	return snap, true
}

func (c *stateCell[T]) subscribe(fn func(T)) func() {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	c.nextID++
	id := c.nextID
	c.subs = append(c.subs, subscription[T]{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subsMu.Lock()
			defer c.subsMu.Unlock()
			for i, s := range c.subs {
				if s.id == id {
					c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (c *stateCell[T]) subscribers() []func(T) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	out := make([]func(T), len(c.subs))
	for i, s := range c.subs {
		out[i] = s.fn
	}
	return out
}
