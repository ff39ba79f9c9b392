package memory

import (
	"context"
	"errors"

	"grocery/internal/core/ports"
)

var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory hands out units of work over a shared OrderStore.
type UnitOfWorkFactory struct {
	store *OrderStore
}

func NewUnitOfWorkFactory(store *OrderStore) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork has no transaction of its own. Every command writes at most one
// order, and that write is atomic in the store, so Commit and Rollback only
// track the lifecycle.
type UnitOfWork struct {
	store  *OrderStore
	active bool
}

func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.active = true
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.active = false
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}
	uow.active = false
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return uow.store
}
