package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves all pizzas
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
}

type pizzaController struct {
	service services.PizzaService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.PizzaService) PizzaController {
	return &pizzaController{service: service}
}

func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.GetAllPizzas()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "failed to retrieve pizzas"))
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	pizza, err := c.service.GetPizzaByID(id)
	if err != nil {
		if errors.Is(err, services.ErrPizzaNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "pizza not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "failed to retrieve pizza"))
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}
