package repository

import (
	"time"

	"github.com/arminsheibak/Online-Food-API/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) Get(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

type OrderSummary struct {
	ID             uint            `json:"id"`
	UserID         uint            `json:"userId"`
	DeliveryCrewID *uint           `json:"deliveryCrewId"`
	Delivered      bool            `json:"delivered"`
	TotalPrice     decimal.Decimal `json:"totalPrice"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func (r *OrderRepository) listSummaries(q *gorm.DB, limit int) ([]OrderSummary, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []OrderSummary
	err := q.Model(&entity.Order{}).
		Select("id, user_id, delivery_crew_id, delivered, total_price, created_at").
		Order("id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

// ListForUser: the customer's own orders.
func (r *OrderRepository) ListForUser(userID uint, limit int) ([]OrderSummary, error) {
	return r.listSummaries(r.DB.Where("user_id = ?", userID), limit)
}

// ListForCrew: orders assigned to a delivery crew member.
func (r *OrderRepository) ListForCrew(crewID uint, limit int) ([]OrderSummary, error) {
	return r.listSummaries(r.DB.Where("delivery_crew_id = ?", crewID), limit)
}

func (r *OrderRepository) ListAll(limit int) ([]OrderSummary, error) {
	return r.listSummaries(r.DB, limit)
}

// MarkDelivered flips placed → delivered, guarded so the transition only
// fires once. Returns false when the order was already delivered or missing.
func (r *OrderRepository) MarkDelivered(tx *gorm.DB, orderID uint) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND delivered = ?", orderID, false).
		Update("delivered", true)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *OrderRepository) AssignCrew(tx *gorm.DB, orderID, crewID uint) error {
	return tx.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("delivery_crew_id", crewID).Error
}

func (r *OrderRepository) Delete(tx *gorm.DB, orderID uint) error {
	if err := tx.Where("order_id = ?", orderID).Delete(&entity.OrderItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&entity.Order{}, orderID).Error
}
