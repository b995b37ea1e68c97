package events

import (
	"sync"

	model "mazad-engine/internal/models"
)

// Emitter publishes engine outcomes. Publish never blocks: events are queued
// and delivered asynchronously, so it is safe to call while holding an
// auction's critical section.
type Emitter interface {
	Publish(event model.AuctionEvent)
}

const subscriberBuffer = 64

// Hub is an in-process emitter with per-auction ordered fan-out. Events for
// one auction are delivered to every subscriber in publish order (which the
// engine keeps consistent with the bid ledger); delivery is at-least-once for
// subscribers that keep reading.
type Hub struct {
	mu      sync.Mutex
	streams map[string]*stream
	done    chan struct{}
	closed  bool
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{
		streams: make(map[string]*stream),
		done:    make(chan struct{}),
	}
}

// Publish enqueues an event on its auction's stream and returns immediately
func (h *Hub) Publish(event model.AuctionEvent) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	st := h.stream(event.AuctionID)
	h.mu.Unlock()

	st.enqueue(event)
}

// Subscribe registers a listener for one auction's event stream. The returned
// channel is never closed; callers stop listening by invoking the cancel
// function and dropping the channel. A subscriber that stops reading without
// cancelling eventually stalls delivery for its auction, so cancel must be
// called when done.
func (h *Hub) Subscribe(auctionID string) (<-chan model.AuctionEvent, func()) {
	h.mu.Lock()
	st := h.stream(auctionID)
	h.mu.Unlock()

	return st.subscribe()
}

// Close stops all dispatchers. Pending undelivered events are dropped.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	close(h.done)
}

// stream returns the per-auction stream, creating it and starting its
// dispatcher on first use. Caller holds h.mu.
func (h *Hub) stream(auctionID string) *stream {
	st, ok := h.streams[auctionID]
	if !ok {
		st = &stream{
			wake: make(chan struct{}, 1),
			done: h.done,
			subs: make(map[int]*subscriber),
		}
		h.streams[auctionID] = st
		go st.run()
	}
	return st
}

type subscriber struct {
	ch     chan model.AuctionEvent
	cancel chan struct{}
}

type stream struct {
	mu     sync.Mutex
	queue  []model.AuctionEvent
	subs   map[int]*subscriber
	nextID int
	wake   chan struct{}
	done   chan struct{}
}

func (st *stream) enqueue(event model.AuctionEvent) {
	st.mu.Lock()
	st.queue = append(st.queue, event)
	st.mu.Unlock()

	select {
	case st.wake <- struct{}{}:
	default:
	}
}

func (st *stream) subscribe() (<-chan model.AuctionEvent, func()) {
	sub := &subscriber{
		ch:     make(chan model.AuctionEvent, subscriberBuffer),
		cancel: make(chan struct{}),
	}

	st.mu.Lock()
	id := st.nextID
	st.nextID++
	st.subs[id] = sub
	st.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			st.mu.Lock()
			delete(st.subs, id)
			st.mu.Unlock()
			close(sub.cancel)
		})
	}
	return sub.ch, cancel
}

// run drains the stream queue in order, fanning each event out to all
// subscribers. Sends block until the subscriber reads, cancels, or the hub
// shuts down, preserving order without dropping events.
func (st *stream) run() {
	for {
		select {
		case <-st.done:
			return
		case <-st.wake:
		}

		for {
			st.mu.Lock()
			if len(st.queue) == 0 {
				st.mu.Unlock()
				break
			}
			event := st.queue[0]
			st.queue = st.queue[1:]
			subs := make([]*subscriber, 0, len(st.subs))
			for _, sub := range st.subs {
				subs = append(subs, sub)
			}
			st.mu.Unlock()

			for _, sub := range subs {
				select {
				case sub.ch <- event:
				case <-sub.cancel:
				case <-st.done:
					return
				}
			}
		}
	}
}
