package commands

import (
	"context"
	"log/slog"

	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"
)

// CreateOrderCommandHandler persists a new Pending order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, logger)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectAlreadyExists) {
//	    // the order id is taken
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	events     eventDispatcher
}

// NewCreateOrderCommandHandler creates a handler for order creation. The publisher
// may be nil, in which case no events leave the process.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		events:     newEventDispatcher(publisher, logger),
	}
}

// Handle builds the order aggregate and stores it with status Pending and no deliverer.
// Returns the persisted order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.ShopperID(),
		cmd.Items(),
		cmd.DeliveryAddress(),
		cmd.PlacedAt(),
	)
	if err != nil {
		return nil, errs.NewValidationErrorWithCause("order", err)
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.events.dispatch(ctx, aggregate)
	return aggregate, nil
}
