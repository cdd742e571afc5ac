package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderItemController handles HTTP requests for the items nested under an
// order.
type OrderItemController interface {
	// GetItems lists all items of an order
	GetItems(c *gin.Context)
	// GetItemByID retrieves one item of an order
	GetItemByID(c *gin.Context)
	// UpdateItem updates size/count of an item
	UpdateItem(c *gin.Context)
	// DeleteItem removes an item from an order
	DeleteItem(c *gin.Context)
}

type orderItemController struct {
	service services.OrderItemService
}

// NewOrderItemController creates a new instance of OrderItemController
func NewOrderItemController(service services.OrderItemService) OrderItemController {
	return &orderItemController{service: service}
}

func (c *orderItemController) GetItems(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	items, err := c.service.GetItems(orderID)
	if err != nil {
		respondOrderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func (c *orderItemController) GetItemByID(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(ctx, "item_id")
	if !ok {
		return
	}

	item, err := c.service.GetItemByID(orderID, itemID)
	if err != nil {
		respondOrderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (c *orderItemController) UpdateItem(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(ctx, "item_id")
	if !ok {
		return
	}

	var req models.UpdateOrderItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	item, err := c.service.UpdateItem(orderID, itemID, req)
	if err != nil {
		respondOrderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (c *orderItemController) DeleteItem(ctx *gin.Context) {
	orderID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	itemID, ok := parseIDParam(ctx, "item_id")
	if !ok {
		return
	}

	if err := c.service.DeleteItem(orderID, itemID); err != nil {
		respondOrderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
