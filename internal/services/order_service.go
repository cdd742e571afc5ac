package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when an order id does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderService handles order placement and lifecycle.
type OrderService interface {
	// CreateOrder places a new order: creates the customer, the order in
	// status NEW and the aggregated items as one transaction.
	CreateOrder(req models.CreateOrderRequest) (models.Order, error)
	// GetOrders lists orders, newest first, optionally filtered by exact
	// status and by a customer name/email search term.
	GetOrders(status, search string) ([]models.Order, error)
	// GetOrderByID retrieves one order with its customer and items.
	GetOrderByID(id uint) (models.Order, error)
	// UpdateOrderStatus advances the order status, subject to the status
	// gate.
	UpdateOrderStatus(id uint, status models.DeliveryStatus) (models.Order, error)
}

type orderService struct {
	db   *gorm.DB
	gate *StatusGate
}

// preloadItemsInCreationOrder pins preloaded items to insertion order; the
// store would otherwise be free to return them in index scan order.
func preloadItemsInCreationOrder(db *gorm.DB) *gorm.DB {
	return db.Order("order_items.id ASC")
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB, gate *StatusGate) OrderService {
	return &orderService{db: db, gate: gate}
}

// itemKey identifies one aggregated line: requests sharing a key merge into a
// single OrderItem row.
type itemKey struct {
	pizza uint
	size  models.PizzaSize
}

// aggregateItems merges the requested items by (pizza, size) equality across
// the whole input, summing counts. Output rows keep the first-seen order of
// each key.
func aggregateItems(requests []models.OrderItemRequest) []models.OrderItem {
	counts := make(map[itemKey]uint, len(requests))
	keys := make([]itemKey, 0, len(requests))

	for _, req := range requests {
		key := itemKey{pizza: req.Pizza, size: req.Size}
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
		}
		counts[key] += req.Count
	}

	items := make([]models.OrderItem, 0, len(keys))
	for _, key := range keys {
		items = append(items, models.OrderItem{
			PizzaID: key.pizza,
			Size:    key.size,
			Count:   counts[key],
		})
	}
	return items
}

func (s *orderService) CreateOrder(req models.CreateOrderRequest) (models.Order, error) {
	items := aggregateItems(req.Items)

	var orderID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Every referenced pizza must exist before anything is written.
		for _, item := range items {
			var count int64
			if err := tx.Model(&models.Pizza{}).Where("id = ?", item.PizzaID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("%w: id %d", ErrPizzaNotFound, item.PizzaID)
			}
		}

		customer := models.Customer{
			FullName: req.Customer.FullName,
			Email:    req.Customer.Email,
		}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}

		order := models.Order{
			CustomerID: customer.ID,
			Status:     models.StatusNew,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	return s.GetOrderByID(orderID)
}

func (s *orderService) GetOrders(status, search string) ([]models.Order, error) {
	query := s.db.
		Preload("Customer").
		Preload("Items", preloadItemsInCreationOrder).
		Preload("Items.Pizza").
		Order("orders.created_at DESC")

	if status != "" {
		query = query.Where("orders.status = ?", status)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.
			Joins("JOIN customers ON customers.id = orders.customer_id").
			Where("LOWER(customers.full_name) LIKE ? OR LOWER(customers.email) LIKE ?", pattern, pattern)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(id uint) (models.Order, error) {
	var order models.Order
	err := s.db.
		Preload("Customer").
		Preload("Items", preloadItemsInCreationOrder).
		Preload("Items.Pizza").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) UpdateOrderStatus(id uint, status models.DeliveryStatus) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}

	if err := s.gate.Check(order.Status); err != nil {
		return models.Order{}, err
	}

	if err := s.db.Model(&order).Update("status", status).Error; err != nil {
		return models.Order{}, err
	}
	return s.GetOrderByID(id)
}
