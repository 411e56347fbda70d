package redblack

import (
	"context"

	"github.com/guiguan/caster"
)

// Op is a step of the insertion engine.
type Op uint8

// Steps reported to watchers.
const (
	Inserted     Op = iota // a new red leaf has been attached
	Recolored              // parent and uncle turned black, grandparent red
	RotatedLeft            // left rotation around a node
	RotatedRight           // right rotation around a node
)

func (op Op) String() string {
	switch op {
	case Inserted:
		return "inserted"
	case Recolored:
		return "recolored"
	case RotatedLeft:
		return "rotated-left"
	case RotatedRight:
		return "rotated-right"
	}
	return "unknown"
}

// Event is published to watchers for every step of an insertion.
// Key is the key of the new node for Inserted, of the grandparent for
// Recolored, and of the rotation pivot for rotations.
type Event[K any] struct {
	Op  Op
	Key K
}

// subscription remembers the context a watcher subscribed with. Once the
// context is done, the broadcaster has already closed the channel itself.
type subscription struct {
	ch  chan interface{}
	ctx context.Context
}

// Watch subscribes to the fixup events of t. Every value received from the
// returned channel is an Event[K]. The subscription ends when ctx is done,
// when Unwatch is called, or when the event stream is closed.
//
// Insert never waits for watchers: an event is dropped for a watcher whose
// buffer of size capacity is full. The first call to Watch starts a
// broadcasting goroutine which runs until CloseEvents is called.
func (t *Tree[K]) Watch(ctx context.Context, capacity uint) (<-chan interface{}, error) {
	if t.closed {
		return nil, ErrEventsClosed
	}
	if t.cast == nil {
		t.cast = caster.New(context.Background())
		tracer().Debugf("%s: starting event stream", t.cfg.Name)
	}
	for ch, sub := range t.subs { // forget watchers which are gone
		if sub.ctx.Err() != nil {
			delete(t.subs, ch)
		}
	}
	ch, ok := t.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrEventsClosed
	}
	if t.subs == nil {
		t.subs = make(map[<-chan interface{}]subscription)
	}
	t.subs[ch] = subscription{ch: ch, ctx: ctx}
	return ch, nil
}

// Unwatch cancels a subscription returned by Watch. It is a no-op for
// subscriptions which already ended.
func (t *Tree[K]) Unwatch(ch <-chan interface{}) {
	sub, ok := t.subs[ch]
	if !ok {
		return
	}
	delete(t.subs, ch)
	if sub.ctx.Err() == nil {
		t.cast.Unsub(sub.ch)
	}
}

// CloseEvents shuts down the event stream of t, closing all subscriptions.
// Subsequent calls to Watch fail with ErrEventsClosed.
func (t *Tree[K]) CloseEvents() {
	if t.cast != nil && !t.closed {
		t.cast.Close()
		t.subs = nil
	}
	t.closed = true
}

func (t *Tree[K]) publish(op Op, n *Node[K]) {
	if t.cast == nil || t.closed {
		return
	}
	t.cast.TryPub(Event[K]{Op: op, Key: n.key})
}
