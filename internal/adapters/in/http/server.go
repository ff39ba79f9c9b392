package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/generated/servers"
	"grocery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

const defaultKeepAlive = 15 * time.Second

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	assignDelivererHandler commands.AssignDelivererCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler

	feed      ports.OrderFeed
	keepAlive time.Duration
	logger    *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	assignDelivererHandler commands.AssignDelivererCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	feed ports.OrderFeed,
	logger *slog.Logger,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		createOrderHandler:     createOrderHandler,
		transitionOrderHandler: transitionOrderHandler,
		assignDelivererHandler: assignDelivererHandler,
		cancelOrderHandler:     cancelOrderHandler,
		getOrderHandler:        getOrderHandler,
		listOrdersHandler:      listOrdersHandler,
		feed:                   feed,
		keepAlive:              defaultKeepAlive,
		logger:                 logger.With("component", "http_server"),
	}
}

// WithKeepAlive sets the interval of comment frames written to idle streams.
func (s *Server) WithKeepAlive(interval time.Duration) *Server {
	s.keepAlive = interval
	return s
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context, params servers.CreateOrderParams) error {
	actor, err := actorFromHeader(params.XActorRole)
	if err != nil {
		return s.fail(ctx, err)
	}
	if actor != order.UnknownActor && actor != order.Shopper {
		return s.fail(ctx, errs.NewActorNotPermittedError(actor, order.Unknown, order.Pending))
	}

	var body servers.NewOrder
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := newCreateOrderCommand(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrder(queries.NewOrderResponse(created)))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	id, err := pathID("orderId", orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(resp))
}

// ListOrders handles GET /api/v1/orders - every order, newest first.
func (s *Server) ListOrders(ctx echo.Context) error {
	return s.list(ctx, queries.NewListAllOrdersQuery())
}

// ListAvailableOrders handles GET /api/v1/orders/available.
func (s *Server) ListAvailableOrders(ctx echo.Context) error {
	return s.list(ctx, queries.NewListAvailableOrdersQuery())
}

// ListPendingPreparation handles GET /api/v1/orders/pending.
func (s *Server) ListPendingPreparation(ctx echo.Context) error {
	return s.list(ctx, queries.NewListPendingPreparationQuery())
}

// ListShopperOrders handles GET /api/v1/shoppers/{shopperId}/orders.
func (s *Server) ListShopperOrders(ctx echo.Context, shopperID servers.ShopperId) error {
	query, err := shopperQuery(shopperID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.list(ctx, query)
}

// ListDelivererOrders handles GET /api/v1/deliverers/{delivererId}/orders.
func (s *Server) ListDelivererOrders(ctx echo.Context, delivererID string) error {
	id, err := pathID("delivererId", delivererID)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListDelivererOrdersQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.list(ctx, query)
}

// StreamAvailableOrders handles GET /api/v1/orders/available/stream.
func (s *Server) StreamAvailableOrders(ctx echo.Context) error {
	return s.stream(ctx, queries.NewListAvailableOrdersQuery())
}

// StreamShopperOrders handles GET /api/v1/shoppers/{shopperId}/orders/stream.
func (s *Server) StreamShopperOrders(ctx echo.Context, shopperID servers.ShopperId) error {
	query, err := shopperQuery(shopperID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.stream(ctx, query)
}

// TransitionOrder handles POST /api/v1/orders/{orderId}/transitions.
func (s *Server) TransitionOrder(
	ctx echo.Context,
	orderID servers.OrderId,
	params servers.TransitionOrderParams,
) error {
	id, err := pathID("orderId", orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	actor, err := actorFromHeader(params.XActorRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.Transition
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	target, err := order.StatusFromString(string(body.Status))
	if err != nil {
		return s.fail(ctx, errs.NewValidationErrorWithCause("transition", err))
	}

	cmd, err := commands.NewTransitionOrderCommand(id, target)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd = cmd.WithActor(actor)
	if body.DelivererId != nil {
		deliverer, idErr := kernel.IDFromString(*body.DelivererId)
		if idErr != nil {
			return s.fail(ctx, errs.NewValidationErrorWithCause(
				"transition",
				errs.NewValueIsInvalidErrorWithCause("delivererId", idErr),
			))
		}
		cmd = cmd.WithDeliverer(deliverer)
	}

	updated, err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(updated)))
}

// AssignDeliverer handles POST /api/v1/orders/{orderId}/assignment.
func (s *Server) AssignDeliverer(
	ctx echo.Context,
	orderID servers.OrderId,
	params servers.AssignDelivererParams,
) error {
	id, err := pathID("orderId", orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	actor, err := actorFromHeader(params.XActorRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.Assignment
	if bindErr := ctx.Bind(&body); bindErr != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	deliverer, err := kernel.IDFromString(body.DelivererId)
	if err != nil {
		return s.fail(ctx, errs.NewValidationErrorWithCause(
			"assignment",
			errs.NewValueIsRequiredErrorWithCause("delivererId", err),
		))
	}

	cmd, err := commands.NewAssignDelivererCommand(id, deliverer)
	if err != nil {
		return s.fail(ctx, err)
	}

	claimed, err := s.assignDelivererHandler.Handle(ctx.Request().Context(), cmd.WithActor(actor))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(claimed)))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancellation.
func (s *Server) CancelOrder(ctx echo.Context, orderID servers.OrderId, params servers.CancelOrderParams) error {
	id, err := pathID("orderId", orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	actor, err := actorFromHeader(params.XActorRole)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd.WithActor(actor))
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrder(queries.NewOrderResponse(cancelled)))
}

func (s *Server) list(ctx echo.Context, query queries.ListQuery) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrders(orders))
}

func shopperQuery(shopperID string) (queries.ListShopperOrdersQuery, error) {
	id, err := pathID("shopperId", shopperID)
	if err != nil {
		return queries.ListShopperOrdersQuery{}, err
	}
	return queries.NewListShopperOrdersQuery(id)
}

func pathID(name, raw string) (kernel.ID, error) {
	id, err := kernel.IDFromString(raw)
	if err != nil {
		return kernel.ID{}, errs.NewValidationErrorWithCause("path", errs.NewValueIsRequiredErrorWithCause(name, err))
	}
	return id, nil
}

func actorFromHeader(role *servers.ActorRole) (order.Actor, error) {
	if role == nil {
		return order.UnknownActor, nil
	}
	actor, err := order.ActorFromString(string(*role))
	if err != nil {
		return order.UnknownActor, errs.NewValidationErrorWithCause("X-Actor-Role", err)
	}
	return actor, nil
}

func newCreateOrderCommand(body servers.NewOrder) (commands.CreateOrderCommand, error) {
	orderID := kernel.NewID()
	var idErr error
	if body.OrderId != nil {
		orderID, idErr = kernel.IDFromString(*body.OrderId)
		if idErr != nil {
			idErr = errs.NewValueIsRequiredErrorWithCause("orderId", idErr)
		}
	}

	shopperID, shopperErr := kernel.IDFromString(body.ShopperId)
	if shopperErr != nil {
		shopperErr = errs.NewValueIsRequiredErrorWithCause("shopperId", shopperErr)
	}

	items, itemsErr := toItems(body.Items)

	if err := errors.Join(idErr, shopperErr, itemsErr); err != nil {
		return commands.CreateOrderCommand{}, errs.NewValidationErrorWithCause("order", err)
	}

	return commands.NewCreateOrderCommand(orderID, shopperID, items, body.DeliveryAddress, time.Now())
}
