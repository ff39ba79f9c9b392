package postgres

import (
	"grocery/internal/adapters/out/postgres/orderrepo"
	"grocery/internal/core/ports"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NotifyChannel is the LISTEN/NOTIFY channel carrying ids of changed orders.
const NotifyChannel = "order_changed"

// Open connects to PostgreSQL. Errors are translated into gorm sentinels such as
// gorm.ErrDuplicatedKey, which the repositories rely on.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}

// Migrate creates or updates the order tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
}

// NewOrderReader reads orders outside any unit of work. Queries and live feeds use it.
func NewOrderReader(db *gorm.DB) ports.OrderReader {
	return orderrepo.NewGormOrderRepository(db, nil)
}
