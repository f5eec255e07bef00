package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pizzamaker/pizzamaker-api/internal/models"
)

// respondWithDomainError maps a service error onto the API error
// envelope. Validation failures become 400, missing entities 404,
// anything else a 500. models.ErrInvalidCode is deliberately not
// handled here: the confirm handler turns it into a plain message.
func respondWithDomainError(ctx *gin.Context, err error) {
	if ve, ok := models.IsValidationError(err); ok {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, ve.Error()))
		return
	}

	switch {
	case errors.Is(err, models.ErrGroupNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrGroupNotFoundCode, "Ingredient group not found"))
	case errors.Is(err, models.ErrIngredientNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrIngredientNotFoundCode, "Ingredient not found"))
	case errors.Is(err, models.ErrPizzaNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFoundCode, "Pizza not found"))
	case errors.Is(err, models.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderNotFoundCode, "Order not found"))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}
