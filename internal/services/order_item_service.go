package services

import (
	"errors"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"gorm.io/gorm"
)

// ErrOrderItemNotFound is returned when an item id does not exist within the
// given order.
var ErrOrderItemNotFound = errors.New("order item not found")

// OrderItemService handles the items nested under an order. Every mutation
// is checked against the parent order's status first.
type OrderItemService interface {
	// GetItems lists all items of an order.
	GetItems(orderID uint) ([]models.OrderItem, error)
	// GetItemByID retrieves one item of an order.
	GetItemByID(orderID, itemID uint) (models.OrderItem, error)
	// UpdateItem changes size and/or count of an item, subject to the
	// status gate.
	UpdateItem(orderID, itemID uint, req models.UpdateOrderItemRequest) (models.OrderItem, error)
	// DeleteItem removes an item from an order, subject to the status gate.
	DeleteItem(orderID, itemID uint) error
}

type orderItemService struct {
	db   *gorm.DB
	gate *StatusGate
}

// NewOrderItemService creates a new instance of OrderItemService
func NewOrderItemService(db *gorm.DB, gate *StatusGate) OrderItemService {
	return &orderItemService{db: db, gate: gate}
}

// parentOrder loads the order an item request is nested under.
func (s *orderItemService) parentOrder(orderID uint) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, ErrOrderNotFound
		}
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderItemService) GetItems(orderID uint) ([]models.OrderItem, error) {
	if _, err := s.parentOrder(orderID); err != nil {
		return nil, err
	}

	var items []models.OrderItem
	err := s.db.
		Preload("Pizza").
		Where("order_id = ?", orderID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *orderItemService) GetItemByID(orderID, itemID uint) (models.OrderItem, error) {
	if _, err := s.parentOrder(orderID); err != nil {
		return models.OrderItem{}, err
	}

	var item models.OrderItem
	err := s.db.
		Preload("Pizza").
		Where("order_id = ?", orderID).
		First(&item, itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.OrderItem{}, ErrOrderItemNotFound
		}
		return models.OrderItem{}, err
	}
	return item, nil
}

func (s *orderItemService) UpdateItem(orderID, itemID uint, req models.UpdateOrderItemRequest) (models.OrderItem, error) {
	order, err := s.parentOrder(orderID)
	if err != nil {
		return models.OrderItem{}, err
	}
	if err := s.gate.Check(order.Status); err != nil {
		return models.OrderItem{}, err
	}

	var item models.OrderItem
	if err := s.db.Where("order_id = ?", orderID).First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.OrderItem{}, ErrOrderItemNotFound
		}
		return models.OrderItem{}, err
	}

	size := item.Size
	if req.Size != nil {
		size = *req.Size
	}
	count := item.Count
	if req.Count != nil {
		count = *req.Count
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// A size change may land on a sibling row of the same pizza. The
		// rows merge into the targeted one, keeping a single row per
		// (order, pizza, size) pair with the summed count.
		var sibling models.OrderItem
		err := tx.
			Where("order_id = ? AND pizza_id = ? AND size = ? AND id <> ?", orderID, item.PizzaID, size, item.ID).
			First(&sibling).Error
		switch {
		case err == nil:
			count += sibling.Count
			if err := tx.Delete(&models.OrderItem{}, sibling.ID).Error; err != nil {
				return err
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		return tx.Model(&item).Updates(map[string]interface{}{
			"size":  size,
			"count": count,
		}).Error
	})
	if err != nil {
		return models.OrderItem{}, err
	}

	return s.GetItemByID(orderID, itemID)
}

func (s *orderItemService) DeleteItem(orderID, itemID uint) error {
	order, err := s.parentOrder(orderID)
	if err != nil {
		return err
	}
	if err := s.gate.Check(order.Status); err != nil {
		return err
	}

	result := s.db.Where("order_id = ?", orderID).Delete(&models.OrderItem{}, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderItemNotFound
	}
	return nil
}
