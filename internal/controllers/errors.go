package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// parseIDParam reads a numeric path parameter. On failure it writes the 400
// response and returns false.
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(
			models.ErrBadRequest,
			"invalid "+name+" parameter: "+raw,
		))
		return 0, false
	}
	return uint(id), true
}

// bindingErrorDetails extracts field-level messages from a gin binding error
// so validation responses name the offending fields.
func bindingErrorDetails(err error) map[string]interface{} {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]interface{}{"body": err.Error()}
	}
	details := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = "failed validation: " + fe.Tag()
	}
	return details
}

// respondValidationError writes the standard 400 body for a binding failure.
func respondValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(
		models.ErrValidationFailed,
		"request body failed validation",
		bindingErrorDetails(err),
	))
}

// respondOrderError maps order/item service errors to HTTP responses.
func respondOrderError(ctx *gin.Context, err error) {
	var notEditable *services.OrderNotEditableError
	switch {
	case errors.As(err, &notEditable):
		ctx.JSON(http.StatusNotAcceptable, models.NewAPIError(
			models.ErrOrderNotEditable,
			notEditable.Error(),
			map[string]interface{}{"status": string(notEditable.Status)},
		))
	case errors.Is(err, services.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderNotFound, "order not found"))
	case errors.Is(err, services.ErrOrderItemNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderItemNotFound, "order item not found"))
	case errors.Is(err, services.ErrPizzaNotFound):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(
			models.ErrOrderInvalidData,
			err.Error(),
		))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "internal server error"))
	}
}
