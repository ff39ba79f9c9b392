package cmd

import (
	"context"
	"errors"
	"log/slog"

	httpadapter "grocery/internal/adapters/in/http"
	"grocery/internal/adapters/out/events"
	"grocery/internal/adapters/out/feed"
	"grocery/internal/adapters/out/kafka"
	"grocery/internal/adapters/out/memory"
	"grocery/internal/adapters/out/postgres"
	"grocery/internal/adapters/out/prometheus"
	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/application/usecases/queries"
	"grocery/internal/core/ports"
	"grocery/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger

	gormDB      *gorm.DB
	memoryStore *memory.OrderStore
	reader      ports.OrderReader
	uowFactory  ports.UnitOfWorkFactory

	broker    *feed.Broker
	recorder  *prometheus.Recorder
	kafka     *kafka.Publisher
	publisher ports.EventPublisher

	listener *postgres.ChangeListener
}

// NewCompositionRoot wires the application. A nil gormDB selects the in-memory store.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		config: config,
		logger: logger,
		gormDB: gormDB,
	}

	if gormDB != nil {
		c.reader = postgres.NewOrderReader(gormDB)
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	} else {
		c.memoryStore = memory.NewOrderStore()
		c.reader = c.memoryStore
		c.uowFactory = memory.NewUnitOfWorkFactory(c.memoryStore)
	}

	c.broker = feed.NewBroker(c.reader, logger)
	if c.memoryStore != nil {
		c.memoryStore.OnChange(c.broker.Notify)
	}

	c.recorder = prometheus.NewRecorder()
	var external ports.EventPublisher = events.Noop{}
	if brokers := config.KafkaBrokers(); len(brokers) > 0 {
		c.kafka = kafka.NewPublisher(brokers, config.KafkaOrderChangedTopic)
		external = c.kafka
	}
	c.publisher = events.NewFanout(c.recorder, external)

	return c
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateAssignDelivererCommandHandler() commands.AssignDelivererCommandHandler {
	return commands.NewAssignDelivererCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateTransitionOrderCommandHandler(),
		c.CreateAssignDelivererCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateListOrdersQueryHandler(),
		c.broker,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpadapter.NewRouter(c.CreateServer(), c.recorder.Handler(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.broker,
		c.config.FeedRefreshSchedule,
		c.CreateListOrdersQueryHandler(),
		c.recorder,
		c.logger,
	)
}

// StartFeed runs the subscription broker and, on Postgres, the LISTEN/NOTIFY
// listener that drives it. Both stop when ctx is done.
func (c *CompositionRoot) StartFeed(ctx context.Context) error {
	go c.broker.Run(ctx)

	if c.gormDB == nil {
		return nil
	}

	listener, err := postgres.NewChangeListener(c.config.DSN(), c.logger)
	if err != nil {
		return err
	}
	c.listener = listener
	go listener.Run(ctx, c.broker.Notify, c.broker.Refresh)
	return nil
}

// Close releases connections held by the adapters.
func (c *CompositionRoot) Close() error {
	var errList []error
	if c.listener != nil {
		errList = append(errList, c.listener.Close())
	}
	if c.kafka != nil {
		errList = append(errList, c.kafka.Close())
	}
	if c.gormDB != nil {
		if sqlDB, err := c.gormDB.DB(); err == nil {
			errList = append(errList, sqlDB.Close())
		}
	}
	return errors.Join(errList...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
