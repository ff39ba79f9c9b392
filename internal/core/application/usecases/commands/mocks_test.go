package commands_test

import (
	"context"
	"sync"
	"time"

	"grocery/internal/adapters/out/memory"
	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, pre ports.Precondition) error {
	args := m.Called(ctx, o, pre)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Find(ctx context.Context, filter ports.Filter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// memoryUoWFactory runs handlers against the in-process store.
type memoryUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f memoryUoWFactory) Create() commands.OrderUoW {
	return f.factory.Create()
}

func newMemoryUoWFactory(store *memory.OrderStore) memoryUoWFactory {
	return memoryUoWFactory{factory: memory.NewUnitOfWorkFactory(store)}
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []order.StatusChanged
}

func (p *recordingPublisher) Publish(_ context.Context, events ...order.StatusChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) transitions() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.From.String()+"->"+e.To.String())
	}
	return out
}

// contextPublisher remembers the context each batch was published with.
type contextPublisher struct {
	mu       sync.Mutex
	err      error
	deadline bool
}

func (p *contextPublisher) Publish(ctx context.Context, _ ...order.StatusChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.err = ctx.Err()
	_, p.deadline = ctx.Deadline()
	return nil
}

func newItem(productID, name, price string, quantity int) order.Item {
	item, err := order.NewItem(kernel.MustIDFromString(productID), name, kernel.MustMoneyFromString(price), quantity)
	if err != nil {
		panic(err)
	}
	return item
}

func newPendingOrder(id string) *order.Order {
	o, err := order.NewOrder(
		kernel.MustIDFromString(id),
		kernel.MustIDFromString("s1"),
		[]order.Item{newItem("1", "Organic Apples", "4.99", 2)},
		"1 A St",
		time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	)
	if err != nil {
		panic(err)
	}
	o.ClearDomainEvents()
	return o
}

func newReadyOrder(id string) *order.Order {
	o := newPendingOrder(id)
	for _, to := range []order.Status{order.Confirmed, order.Preparing, order.ReadyForPickup} {
		if err := o.Transition(to); err != nil {
			panic(err)
		}
	}
	o.ClearDomainEvents()
	return o
}
