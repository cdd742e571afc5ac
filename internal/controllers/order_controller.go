package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// GetOrders lists orders with optional status filter and customer search
	GetOrders(c *gin.Context)
	// CreateOrder places a new order
	CreateOrder(c *gin.Context)
	// GetOrderByID retrieves an order by its ID
	GetOrderByID(c *gin.Context)
	// UpdateOrder updates the status of an order
	UpdateOrder(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

func (c *orderController) GetOrders(ctx *gin.Context) {
	status := ctx.Query("status")
	search := ctx.Query("search")

	if status != "" && !models.DeliveryStatus(status).IsValid() {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(
			models.ErrBadRequest,
			"unknown status filter: "+status,
		))
		return
	}

	orders, err := c.service.GetOrders(status, search)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "failed to retrieve orders"))
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

func (c *orderController) CreateOrder(ctx *gin.Context) {
	var req models.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	order, err := c.service.CreateOrder(req)
	if err != nil {
		respondOrderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, order)
}

func (c *orderController) GetOrderByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	order, err := c.service.GetOrderByID(id)
	if err != nil {
		respondOrderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

func (c *orderController) UpdateOrder(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req models.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	order, err := c.service.UpdateOrderStatus(id, req.Status)
	if err != nil {
		respondOrderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}
