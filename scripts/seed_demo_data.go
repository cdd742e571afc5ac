package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Seeds a local SQLite database with the pizza menu and one demo order so
// the API has data to play with during development.
func main() {
	dbPath := flag.String("db", "pizza_orders.sqlite", "Path to the SQLite database")
	flag.Parse()

	db, err := gorm.Open(sqlite.Open(*dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.Pizza{}, &models.Customer{}, &models.Order{}, &models.OrderItem{}); err != nil {
		log.Fatal("Failed to migrate schema:", err)
	}

	var count int64
	db.Model(&models.Pizza{}).Count(&count)
	if count > 0 {
		fmt.Println("Database already seeded, nothing to do.")
		return
	}

	pizzas := []models.Pizza{
		{Name: "margarita"},
		{Name: "marinara"},
		{Name: "salami"},
	}
	for i := range pizzas {
		if err := db.Create(&pizzas[i]).Error; err != nil {
			log.Fatal("Failed to create pizza:", err)
		}
	}

	customer := models.Customer{FullName: "John Doe", Email: "john@example.com"}
	if err := db.Create(&customer).Error; err != nil {
		log.Fatal("Failed to create customer:", err)
	}

	order := models.Order{CustomerID: customer.ID, Status: models.StatusNew}
	if err := db.Create(&order).Error; err != nil {
		log.Fatal("Failed to create order:", err)
	}

	items := []models.OrderItem{
		{OrderID: order.ID, PizzaID: pizzas[0].ID, Size: models.SizeMedium, Count: 2},
		{OrderID: order.ID, PizzaID: pizzas[2].ID, Size: models.SizeLarge, Count: 1},
	}
	if err := db.Create(&items).Error; err != nil {
		log.Fatal("Failed to create order items:", err)
	}

	fmt.Printf("✓ Seeded %d pizzas and demo order #%d\n", len(pizzas), order.ID)
	fmt.Println("\nTry it:")
	fmt.Printf("curl http://localhost:8080/api/v1/orders/%d\n", order.ID)
}
