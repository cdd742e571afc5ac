package services

import (
	"testing"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.Pizza{}, &models.Customer{}, &models.Order{}, &models.OrderItem{})
	require.NoError(t, err)

	return db
}

func seedPizzas(t *testing.T, db *gorm.DB) []models.Pizza {
	pizzas := []models.Pizza{
		{Name: "margarita"},
		{Name: "marinara"},
		{Name: "salami"},
	}
	for i := range pizzas {
		require.NoError(t, db.Create(&pizzas[i]).Error)
	}
	return pizzas
}

func newOrderService(db *gorm.DB) OrderService {
	return NewOrderService(db, NewStatusGate(nil))
}

func TestAggregateItemsMergesByKeyAcrossInput(t *testing.T) {
	// Non-adjacent duplicates must still merge into one row.
	items := aggregateItems([]models.OrderItemRequest{
		{Pizza: 1, Size: models.SizeMedium, Count: 2},
		{Pizza: 2, Size: models.SizeLarge, Count: 1},
		{Pizza: 1, Size: models.SizeMedium, Count: 3},
		{Pizza: 1, Size: models.SizeLarge, Count: 4},
	})

	require.Len(t, items, 3)
	assert.Equal(t, uint(1), items[0].PizzaID)
	assert.Equal(t, models.SizeMedium, items[0].Size)
	assert.Equal(t, uint(5), items[0].Count)
	assert.Equal(t, uint(2), items[1].PizzaID)
	assert.Equal(t, uint(1), items[1].Count)
	assert.Equal(t, uint(1), items[2].PizzaID)
	assert.Equal(t, models.SizeLarge, items[2].Size)
	assert.Equal(t, uint(4), items[2].Count)
}

func TestAggregateItemsKeepsDistinctEntries(t *testing.T) {
	items := aggregateItems([]models.OrderItemRequest{
		{Pizza: 1, Size: models.SizeSmall, Count: 1},
		{Pizza: 1, Size: models.SizeMedium, Count: 1},
		{Pizza: 2, Size: models.SizeSmall, Count: 1},
	})

	assert.Len(t, items, 3)
}

func TestCreateOrderMergesDuplicateItems(t *testing.T) {
	db := setupTestDB(t)
	pizzas := seedPizzas(t, db)
	service := newOrderService(db)

	order, err := service.CreateOrder(models.CreateOrderRequest{
		Customer: models.CustomerRequest{FullName: "John Doe", Email: "john@example.com"},
		Items: []models.OrderItemRequest{
			{Pizza: pizzas[0].ID, Size: models.SizeMedium, Count: 2},
			{Pizza: pizzas[0].ID, Size: models.SizeMedium, Count: 3},
			{Pizza: pizzas[1].ID, Size: models.SizeLarge, Count: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusNew, order.Status)
	assert.Equal(t, "John Doe", order.Customer.FullName)
	assert.Equal(t, "john@example.com", order.Customer.Email)

	require.Len(t, order.Items, 2)
	assert.Equal(t, pizzas[0].ID, order.Items[0].PizzaID)
	assert.Equal(t, models.SizeMedium, order.Items[0].Size)
	assert.Equal(t, uint(5), order.Items[0].Count)
	assert.Equal(t, pizzas[1].ID, order.Items[1].PizzaID)
	assert.Equal(t, models.SizeLarge, order.Items[1].Size)
	assert.Equal(t, uint(1), order.Items[1].Count)

	// Exactly one row per (pizza, size) pair in the store.
	var rows int64
	db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&rows)
	assert.EqualValues(t, 2, rows)
}

func TestCreateOrderUnknownPizzaLeavesNoPartialState(t *testing.T) {
	db := setupTestDB(t)
	pizzas := seedPizzas(t, db)
	service := newOrderService(db)

	_, err := service.CreateOrder(models.CreateOrderRequest{
		Customer: models.CustomerRequest{FullName: "Jane Doe", Email: "jane@example.com"},
		Items: []models.OrderItemRequest{
			{Pizza: pizzas[0].ID, Size: models.SizeSmall, Count: 1},
			{Pizza: 9999, Size: models.SizeLarge, Count: 1},
		},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPizzaNotFound)

	var customers, orders, items int64
	db.Model(&models.Customer{}).Count(&customers)
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&items)
	assert.Zero(t, customers)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestGetOrdersFiltersByExactStatus(t *testing.T) {
	db := setupTestDB(t)
	pizzas := seedPizzas(t, db)
	service := newOrderService(db)

	first, err := service.CreateOrder(models.CreateOrderRequest{
		Customer: models.CustomerRequest{FullName: "John #1", Email: "john_1@example.com"},
		Items:    []models.OrderItemRequest{{Pizza: pizzas[0].ID, Size: models.SizeSmall, Count: 1}},
	})
	require.NoError(t, err)
	_, err = service.CreateOrder(models.CreateOrderRequest{
		Customer: models.CustomerRequest{FullName: "John #2", Email: "john_2@example.com"},
		Items:    []models.OrderItemRequest{{Pizza: pizzas[1].ID, Size: models.SizeMedium, Count: 2}},
	})
	require.NoError(t, err)

	_, err = service.UpdateOrderStatus(first.ID, models.StatusAccepted)
	require.NoError(t, err)

	accepted, err := service.GetOrders("ACCEPTED", "")
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, first.ID, accepted[0].ID)
	assert.Equal(t, models.StatusAccepted, accepted[0].Status)

	all, err := service.GetOrders("", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestGetOrdersSearchesCustomerNameAndEmail(t *testing.T) {
	db := setupTestDB(t)
	pizzas := seedPizzas(t, db)
	service := newOrderService(db)

	_, err := service.CreateOrder(models.CreateOrderRequest{
		Customer: models.CustomerRequest{FullName: "Alice Smith", Email: "alice@example.com"},
		Items:    []models.OrderItemRequest{{Pizza: pizzas[0].ID, Size: models.SizeSmall, Count: 1}},
	})
	require.NoError(t, err)
	_, err = service.CreateOrder(models.CreateOrderRequest{
		Customer: models.CustomerRequest{FullName: "Bob Jones", Email: "bob@example.com"},
		Items:    []models.OrderItemRequest{{Pizza: pizzas[0].ID, Size: models.SizeSmall, Count: 1}},
	})
	require.NoError(t, err)

	byName, err := service.GetOrders("", "alice")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Alice Smith", byName[0].Customer.FullName)

	byEmail, err := service.GetOrders("", "BOB@EXAMPLE")
	require.NoError(t, err)
	require.Len(t, byEmail, 1)
	assert.Equal(t, "Bob Jones", byEmail[0].Customer.FullName)
}

func TestUpdateOrderStatusAdvancesNonTerminalOrder(t *testing.T) {
	db := setupTestDB(t)
	pizzas := seedPizzas(t, db)
	service := newOrderService(db)

	order, err := service.CreateOrder(models.CreateOrderRequest{
		Customer: models.CustomerRequest{FullName: "John Doe", Email: "john@example.com"},
		Items:    []models.OrderItemRequest{{Pizza: pizzas[0].ID, Size: models.SizeMedium, Count: 1}},
	})
	require.NoError(t, err)

	updated, err := service.UpdateOrderStatus(order.ID, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)
}

func TestUpdateOrderStatusRejectsDeliveredOrder(t *testing.T) {
	db := setupTestDB(t)
	pizzas := seedPizzas(t, db)
	service := newOrderService(db)

	order, err := service.CreateOrder(models.CreateOrderRequest{
		Customer: models.CustomerRequest{FullName: "John Doe", Email: "john@example.com"},
		Items:    []models.OrderItemRequest{{Pizza: pizzas[0].ID, Size: models.SizeMedium, Count: 1}},
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", models.StatusDelivered).Error)

	_, err = service.UpdateOrderStatus(order.ID, models.StatusNew)
	require.Error(t, err)

	var notEditable *OrderNotEditableError
	require.ErrorAs(t, err, &notEditable)
	assert.Equal(t, models.StatusDelivered, notEditable.Status)

	// Nothing changed.
	reloaded, err := service.GetOrderByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusDelivered, reloaded.Status)
}

func TestOrderItemsReturnInCreationOrder(t *testing.T) {
	db := setupTestDB(t)
	pizzas := seedPizzas(t, db)
	service := newOrderService(db)

	// Same pizza, M before L: the composite index would yield L first, so
	// this only passes with an explicit preload ordering.
	order, err := service.CreateOrder(models.CreateOrderRequest{
		Customer: models.CustomerRequest{FullName: "John Doe", Email: "john@example.com"},
		Items: []models.OrderItemRequest{
			{Pizza: pizzas[0].ID, Size: models.SizeMedium, Count: 2},
			{Pizza: pizzas[0].ID, Size: models.SizeLarge, Count: 1},
		},
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, models.SizeMedium, order.Items[0].Size)
	assert.Equal(t, models.SizeLarge, order.Items[1].Size)

	reloaded, err := service.GetOrderByID(order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 2)
	assert.Equal(t, models.SizeMedium, reloaded.Items[0].Size)
	assert.Equal(t, models.SizeLarge, reloaded.Items[1].Size)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := newOrderService(db)

	_, err := service.GetOrderByID(42)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
