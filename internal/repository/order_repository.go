package repository

import (
	"pizzeria/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository interface {
	LoadOrders() ([]models.Order, error)
	SaveOrder(order models.Order) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) LoadOrders() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Order("id").Find(&orders).Error
	return orders, err
}

// SaveOrder upserts by order id. The same order row is rewritten whenever its
// status or thread changes.
func (r *orderRepository) SaveOrder(order models.Order) error {
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&order).Error
}
