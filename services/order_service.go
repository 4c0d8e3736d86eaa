package services

import (
	"errors"

	"github.com/arminsheibak/Online-Food-API/entity"
	"github.com/arminsheibak/Online-Food-API/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	UserRepo *repository.UserRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	userRepo *repository.UserRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, UserRepo: userRepo}
}

// CreateFromCart turns a cart into an order in one transaction:
// read lines with current prices, freeze the total, write the order and
// per-line price snapshots, delete the cart. Any failure rolls everything
// back and leaves the cart as it was. A concurrent second conversion of the
// same cart loses the race on the cart row and fails with ErrNoCart.
func (s *OrderService) CreateFromCart(userID uint, cartID uuid.UUID) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cart entity.Cart
		if err := tx.Preload("Items").Preload("Items.MenuItem").
			First(&cart, "id = ?", cartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoCart
			}
			return err
		}
		if len(cart.Items) == 0 {
			return ErrCartEmpty
		}

		total := decimal.Zero
		for _, it := range cart.Items {
			total = total.Add(it.MenuItem.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}

		order := entity.Order{UserID: userID, Delivered: false, TotalPrice: total}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				Price:      it.MenuItem.Price, // snapshot, frozen from here on
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}

		if err := s.CartRepo.DeleteCart(tx, cart.ID); err != nil {
			return err
		}

		out = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List scopes the result set by the caller's role: customers see their own
// orders, delivery crew the ones assigned to them, admins everything.
func (s *OrderService) List(userID uint, role string, limit int) ([]repository.OrderSummary, error) {
	switch role {
	case entity.RoleAdmin:
		return s.Repo.ListAll(limit)
	case entity.RoleDeliveryCrew:
		return s.Repo.ListForCrew(userID, limit)
	default:
		return s.Repo.ListForUser(userID, limit)
	}
}

// Detail applies the same visibility rule as List to a single order.
func (s *OrderService) Detail(userID uint, role string, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	switch role {
	case entity.RoleAdmin:
	case entity.RoleDeliveryCrew:
		if o.DeliveryCrewID == nil || *o.DeliveryCrewID != userID {
			return nil, ErrOrderNotFound
		}
	default:
		if o.UserID != userID {
			return nil, ErrOrderNotFound
		}
	}
	return o, nil
}

// MarkDelivered is the only legal state transition and it is one-way.
// Delivery crew may only deliver orders assigned to them; admin any order.
func (s *OrderService) MarkDelivered(userID uint, role string, orderID uint) error {
	o, err := s.Repo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if role == entity.RoleDeliveryCrew {
		if o.DeliveryCrewID == nil || *o.DeliveryCrewID != userID {
			return ErrForbidden
		}
	} else if role != entity.RoleAdmin {
		return ErrForbidden
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		// Already-delivered orders pass through silently; the flag never
		// goes back to false.
		_, err := s.Repo.MarkDelivered(tx, orderID)
		return err
	})
}

// AssignCrew (admin) attaches a delivery crew member to an order.
func (s *OrderService) AssignCrew(orderID, crewID uint) error {
	if _, err := s.Repo.Get(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	role, err := s.UserRepo.RoleOf(crewID)
	if err != nil {
		return err
	}
	if role != entity.RoleDeliveryCrew {
		return ErrNotDeliveryCrew
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.AssignCrew(tx, orderID, crewID)
	})
}

// Delete (admin only, enforced at the route).
func (s *OrderService) Delete(orderID uint) error {
	if _, err := s.Repo.Get(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Delete(tx, orderID)
	})
}
