package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/franciscosanchezn/pizza-orders-api/internal/config"
	"github.com/franciscosanchezn/pizza-orders-api/internal/controllers"
	"github.com/franciscosanchezn/pizza-orders-api/internal/database"
	"github.com/franciscosanchezn/pizza-orders-api/internal/middleware"
	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	db                  *gorm.DB
	pizzaController     controllers.PizzaController
	orderController     controllers.OrderController
	orderItemController controllers.OrderItemController
	configuration       *config.Config
)

func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	gate := services.NewStatusGate(configuration.TerminalStatuses)
	pizzaController = controllers.NewPizzaController(services.NewPizzaService(db))
	orderController = controllers.NewOrderController(services.NewOrderService(db, gate))
	orderItemController = controllers.NewOrderItemController(services.NewOrderItemService(db, gate))

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema and
// seeds the pizza menu when the table is empty
func setupDatabase(conf *config.Config) *gorm.DB {
	var err error
	db, err = database.InitDatabase(database.DatabaseConfig{
		Driver:       conf.DBDriver,
		Host:         conf.DBHost,
		Port:         conf.DBPort,
		User:         conf.DBUser,
		Password:     conf.DBPassword,
		Name:         conf.DBName,
		SSLMode:      conf.DBSSLMode,
		Path:         conf.DBPath,
		MaxOpenConns: conf.DBMaxOpenConns,
		MaxIdleConns: conf.DBMaxIdleConns,
	})
	checkPanicErr(err)

	// Migrate the schema
	err = db.AutoMigrate(&models.Pizza{}, &models.Customer{}, &models.Order{}, &models.OrderItem{})
	checkPanicErr(err)

	// Create only if is empty
	var count int64
	db.Model(&models.Pizza{}).Count(&count)
	if count == 0 {
		log.Info("Database is empty, seeding initial data")
		seedDatabase()
	} else {
		log.Info("Database already seeded with initial data")
	}
	return db
}

// seedDatabase seeds the pizza menu with initial data
func seedDatabase() {
	log.Info("Seeding database with initial data")
	pizzas := []models.Pizza{
		{Name: "margarita"},
		{Name: "marinara"},
		{Name: "salami"},
	}
	for _, pizza := range pizzas {
		db.Create(&pizza)
	}
	log.Info("Database seeded successfully")
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.RequestID(), middleware.RequestLogger())

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	v1 := router.Group("/api/v1")
	{
		pizzas := v1.Group("/pizzas")
		{
			pizzas.GET("", pizzaController.GetAllPizzas)
			pizzas.GET("/:id", pizzaController.GetPizzaByID)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("", orderController.GetOrders)
			orders.POST("", orderController.CreateOrder)
			orders.GET("/:id", orderController.GetOrderByID)
			orders.PATCH("/:id", orderController.UpdateOrder)
		}

		// Items nested under their order. The order segment reuses :id to
		// share the routing tree with the order detail routes.
		items := v1.Group("/orders/:id/items")
		{
			items.GET("", orderItemController.GetItems)
			items.GET("/:item_id", orderItemController.GetItemByID)
			items.PATCH("/:item_id", orderItemController.UpdateItem)
			items.DELETE("/:item_id", orderItemController.DeleteItem)
		}
	}
}

// healthCheckHandler handles the health check endpoint
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizza-orders-api",
	})
}
