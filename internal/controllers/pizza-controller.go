package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pizzamaker/pizzamaker-api/internal/models"
	"github.com/pizzamaker/pizzamaker-api/internal/services"
)

// PizzaController handles the composition form and pizza creation
type PizzaController interface {
	// GetCatalog serves the data behind the pizza-composition form
	GetCatalog(c *gin.Context)
	// CreatePizza composes a pizza and wraps it in a draft order
	CreatePizza(c *gin.Context)
}

// CatalogEntry is one selectable ingredient on the composition form
type CatalogEntry struct {
	ID   uint    `json:"id"`
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// ComposePizzaRequest is the payload for POST /create/
type ComposePizzaRequest struct {
	Dough       string       `json:"dough" binding:"required"`
	Ingredients map[uint]int `json:"ingredients"`
}

type pizzaController struct {
	pizzaService   services.PizzaService
	orderService   services.OrderService
	catalogService services.CatalogService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(pizzaService services.PizzaService, orderService services.OrderService, catalogService services.CatalogService) PizzaController {
	return &pizzaController{
		pizzaService:   pizzaService,
		orderService:   orderService,
		catalogService: catalogService,
	}
}

// GetCatalog godoc
// @Summary Composition form data
// @Description Get all ingredients grouped by ingredient group, for building a pizza
// @Tags pizzas
// @Produce json
// @Success 200 {object} map[string][]controllers.CatalogEntry
// @Failure 500 {object} models.APIError
// @Router / [get]
func (c *pizzaController) GetCatalog(ctx *gin.Context) {
	catalog, err := c.catalogService.CatalogByGroup()
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}

	payload := make(map[string][]CatalogEntry, len(catalog))
	for group, ingredients := range catalog {
		entries := make([]CatalogEntry, 0, len(ingredients))
		for _, i := range ingredients {
			entries = append(entries, CatalogEntry{ID: i.ID, Name: i.Name, Cost: i.Cost})
		}
		payload[group] = entries
	}
	ctx.JSON(http.StatusOK, payload)
}

// CreatePizza godoc
// @Summary Compose a pizza
// @Description Compose a pizza from a dough choice and ingredient amounts, create a draft order for it and return the order URL as a JSON-encoded string
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body controllers.ComposePizzaRequest true "Dough and ingredient selections"
// @Success 201 {string} string "/order/{orderId}"
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /create/ [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var req ComposePizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	pizza, err := c.pizzaService.ComposePizza(models.Dough(req.Dough), req.Ingredients)
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}

	order, err := c.orderService.CreateOrder(pizza.ID)
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}

	// The client is expected to follow this URL to the contact form
	ctx.JSON(http.StatusCreated, fmt.Sprintf("/order/%s", order.ID))
}
