// Package feed turns one-off order queries into live ones. A Broker keeps a set of
// subscriptions, each with a filter, and re-runs their queries whenever the
// storage reports that some order changed.
package feed

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
)

// Broker implements ports.OrderFeed.
//
// Change notifications are coalesced: any number of Notify calls between two
// refresh rounds cause one round. Each subscriber channel has room for a single
// snapshot and a newer snapshot replaces an unread one. Query rounds are
// serialized, so a snapshot never overtakes one read after it.
//
// Example:
//
//	broker := feed.NewBroker(reader, logger)
//	go broker.Run(ctx)
//	store.OnChange(broker.Notify)
//
//	updates, _ := broker.Subscribe(ctx, queries.NewListAvailableOrdersQuery().Filter())
//	for snapshot := range updates {
//	    render(snapshot)
//	}
type Broker struct {
	reader ports.OrderReader
	logger *slog.Logger

	wake chan struct{}

	// refreshMu guards every query-and-push round.
	refreshMu sync.Mutex

	mu     sync.Mutex
	nextID int
	subs   map[int]*subscription
}

type subscription struct {
	filter ports.Filter

	mu          sync.Mutex
	ch          chan []*order.Order
	closed      bool
	fingerprint string
}

func NewBroker(reader ports.OrderReader, logger *slog.Logger) *Broker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broker{
		reader: reader,
		logger: logger.With("component", "order_feed"),
		wake:   make(chan struct{}, 1),
		subs:   make(map[int]*subscription),
	}
}

// Subscribe registers a live query. The current snapshot is available on the
// channel before Subscribe returns. The subscription is registered before its
// first query, so a change committed meanwhile is picked up by the next round.
func (b *Broker) Subscribe(ctx context.Context, filter ports.Filter) (<-chan []*order.Order, error) {
	sub := &subscription{
		filter: filter,
		ch:     make(chan []*order.Order, 1),
	}

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = sub
	b.mu.Unlock()

	b.refreshMu.Lock()
	snapshot, err := b.reader.Find(ctx, filter)
	if err == nil {
		sub.push(snapshot)
	}
	b.refreshMu.Unlock()

	if err != nil {
		b.unsubscribe(id, sub)
		return nil, err
	}

	go func() {
		<-ctx.Done()
		b.unsubscribe(id, sub)
	}()

	return sub.ch, nil
}

func (b *Broker) unsubscribe(id int, sub *subscription) {
	b.mu.Lock()
	delete(b.subs, id)
	b.mu.Unlock()
	sub.close()
}

// Notify reports that an order may have changed. It never blocks.
func (b *Broker) Notify(_ kernel.ID) {
	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Run processes notifications until ctx is done.
func (b *Broker) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-b.wake:
			b.Refresh(ctx)
		}
	}
}

// Refresh re-runs every subscription query and pushes snapshots that differ
// from the last one delivered.
func (b *Broker) Refresh(ctx context.Context) {
	b.refreshMu.Lock()
	defer b.refreshMu.Unlock()

	b.mu.Lock()
	subs := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		subs = append(subs, sub)
	}
	b.mu.Unlock()

	for _, sub := range subs {
		snapshot, err := b.reader.Find(ctx, sub.filter)
		if err != nil {
			b.logger.ErrorContext(ctx, "Failed to refresh order subscription", "error", err)
			continue
		}
		sub.push(snapshot)
	}
}

// Subscribers returns the number of live subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (s *subscription) push(snapshot []*order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	fp := fingerprint(snapshot)
	if fp == s.fingerprint && s.fingerprint != "" {
		return
	}
	s.fingerprint = fp

	select {
	case <-s.ch:
	default:
	}
	s.ch <- snapshot
}

func (s *subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// fingerprint identifies the observable content of a snapshot: membership,
// ordering, status and deliverer of each order.
func fingerprint(snapshot []*order.Order) string {
	var sb strings.Builder
	sb.WriteString("#")
	for _, o := range snapshot {
		sb.WriteString(o.ID().String())
		sb.WriteByte('|')
		sb.WriteString(o.Status().String())
		sb.WriteByte('|')
		if d := o.DelivererID(); d != nil {
			sb.WriteString(d.String())
		}
		sb.WriteByte(';')
	}
	return sb.String()
}
