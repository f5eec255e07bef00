package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pizzamaker/pizzamaker-api/internal/models"
	"github.com/pizzamaker/pizzamaker-api/internal/services"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	// GetOrder retrieves a single order by its UUID
	GetOrder(c *gin.Context)
	// SubmitContact saves contact info and triggers the confirmation email
	SubmitContact(c *gin.Context)
	// Confirm validates a confirmation code from the emailed link
	Confirm(c *gin.Context)
	// ListOrders retrieves all submitted orders, newest first
	ListOrders(c *gin.Context)
}

// SubmitContactRequest is the payload for POST /order/{id}
type SubmitContactRequest struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"max=14"`
	Name  string `json:"name" binding:"max=64"`
}

// OrderResponse is an order together with its derived total price
type OrderResponse struct {
	models.Order
	TotalPrice float64 `json:"total_price"`
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) OrderController {
	return &orderController{service: service}
}

func newOrderResponse(order models.Order) OrderResponse {
	return OrderResponse{Order: order, TotalPrice: order.Price()}
}

// orderID returns the already middleware-validated UUID path parameter
func orderID(ctx *gin.Context) uuid.UUID {
	return uuid.MustParse(ctx.Param("id"))
}

// GetOrder godoc
// @Summary Get order by ID
// @Description Get a single order with its pizza and derived total price
// @Tags orders
// @Produce json
// @Param id path string true "Order UUID"
// @Success 200 {object} controllers.OrderResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /order/{id} [get]
func (c *orderController) GetOrder(ctx *gin.Context) {
	order, err := c.service.GetOrderByID(orderID(ctx))
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// SubmitContact godoc
// @Summary Submit contact info
// @Description Save the customer's contact info on the order and send the confirmation email. Re-submission overwrites the fields and resends the email.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order UUID"
// @Param contact body controllers.SubmitContactRequest true "Contact info"
// @Success 200 {object} controllers.OrderResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /order/{id} [post]
func (c *orderController) SubmitContact(ctx *gin.Context) {
	var req SubmitContactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "Invalid contact data"))
		return
	}

	order, err := c.service.SubmitContact(orderID(ctx), req.Email, req.Phone, req.Name)
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// Confirm godoc
// @Summary Confirm an order
// @Description Confirm an order with the code from the emailed link. A wrong code yields a plain "Invalid token!" message, not an error status.
// @Tags orders
// @Produce json
// @Param id path string true "Order UUID"
// @Param code path string true "Confirmation code"
// @Success 200 {object} controllers.OrderResponse
// @Failure 404 {object} models.APIError
// @Router /order/{id}/confirm/{code} [get]
func (c *orderController) Confirm(ctx *gin.Context) {
	order, err := c.service.Confirm(orderID(ctx), ctx.Param("code"))
	if err != nil {
		// A mismatching code is a user-visible message, not an HTTP error
		if errors.Is(err, models.ErrInvalidCode) {
			ctx.String(http.StatusOK, "Invalid token!")
			return
		}
		respondWithDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// ListOrders godoc
// @Summary List submitted orders
// @Description Get all orders with submitted contact info, newest first
// @Tags orders
// @Produce json
// @Success 200 {array} controllers.OrderResponse
// @Failure 500 {object} models.APIError
// @Router /order [get]
func (c *orderController) ListOrders(ctx *gin.Context) {
	orders, err := c.service.ListSubmitted()
	if err != nil {
		respondWithDomainError(ctx, err)
		return
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, newOrderResponse(order))
	}
	ctx.JSON(http.StatusOK, responses)
}
