package orderrepo

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker is told about every order written through the repository.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository binds a repository to db, usually a transaction. The
// tracker may be nil for read-only use.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and its items. The database must be opened with
// TranslateError so duplicate keys surface as gorm.ErrDuplicatedKey.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("order", dto.ID)
		}
		return errs.NewStorageError("add order", err)
	}

	r.track(aggregate)
	return nil
}

// Update writes status and deliverer in one conditional statement:
//
//	UPDATE orders SET status = ?, deliverer_id = ?
//	WHERE id = ? AND status = ? [AND deliverer_id IS NULL]
//
// Zero affected rows mean either a missing order or a lost race.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order, precondition ports.Precondition) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	query := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, precondition.Status.String())
	if precondition.DelivererUnset {
		query = query.Where("deliverer_id IS NULL")
	}

	result := query.Updates(map[string]any{
		"status":       dto.Status,
		"deliverer_id": dto.DelivererID,
	})
	if result.Error != nil {
		return errs.NewStorageError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return errs.NewStorageError("update order", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", dto.ID)
		}
		return errs.ErrStaleObject
	}

	r.track(aggregate)
	return nil
}

// Get loads one order with its items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withItems(ctx).First(&dto, "id = ?", id.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStorageError("get order", err)
	}

	return toDomain(dto)
}

// Find pushes every filter predicate down to SQL.
func (r *GormOrderRepository) Find(ctx context.Context, filter ports.Filter) ([]*order.Order, error) {
	query := r.withItems(ctx)

	if filter.ShopperID != nil {
		query = query.Where("shopper_id = ?", filter.ShopperID.String())
	}
	if filter.DelivererID != nil {
		query = query.Where("deliverer_id = ?", filter.DelivererID.String())
	}
	if filter.DelivererUnset {
		query = query.Where("deliverer_id IS NULL")
	}
	if len(filter.Statuses) > 0 {
		names := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			names = append(names, status.String())
		}
		query = query.Where("status IN ?", names)
	}
	if filter.Sort == ports.NewestFirst {
		query = query.Order("created_at DESC").Order("id DESC")
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("find orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func (r *GormOrderRepository) track(aggregate *order.Order) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
