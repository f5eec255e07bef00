package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pizzamaker/pizzamaker-api/internal/mailer"
	"github.com/pizzamaker/pizzamaker-api/internal/models"
	"github.com/pizzamaker/pizzamaker-api/internal/token"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// OrderService drives the order lifecycle: draft on creation, submitted
// once contact info arrives, confirmed when the emailed link is visited
type OrderService interface {
	// CreateOrder creates a draft order wrapping an existing pizza
	CreateOrder(pizzaID uint) (models.Order, error)
	// GetOrderByID retrieves an order with its pizza and line items
	GetOrderByID(id uuid.UUID) (models.Order, error)
	// SubmitContact saves contact info, marks the order submitted and
	// dispatches the confirmation email. Re-submission overwrites the
	// contact fields and resends the email.
	SubmitContact(id uuid.UUID, email, phone, name string) (models.Order, error)
	// Confirm validates the supplied confirmation code. An already
	// confirmed order is returned unchanged without re-checking the
	// code; a mismatching code yields models.ErrInvalidCode and leaves
	// the order untouched.
	Confirm(id uuid.UUID, code string) (models.Order, error)
	// ListSubmitted returns submitted orders, newest first
	ListSubmitted() ([]models.Order, error)
}

type orderService struct {
	db      *gorm.DB
	codes   *token.Generator
	mail    mailer.Mailer
	baseURL string
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB, codes *token.Generator, mail mailer.Mailer, baseURL string) OrderService {
	return &orderService{db: db, codes: codes, mail: mail, baseURL: baseURL}
}

func (s *orderService) CreateOrder(pizzaID uint) (models.Order, error) {
	var count int64
	if err := s.db.Model(&models.Pizza{}).Where("id = ?", pizzaID).Count(&count).Error; err != nil {
		return models.Order{}, err
	}
	if count == 0 {
		return models.Order{}, models.ErrPizzaNotFound
	}

	order := models.Order{PizzaID: pizzaID}
	if err := s.db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}
	return s.GetOrderByID(order.ID)
}

func (s *orderService) GetOrderByID(id uuid.UUID) (models.Order, error) {
	var order models.Order
	err := s.db.Preload("Pizza.LineItems.Ingredient").First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, models.ErrOrderNotFound
		}
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) SubmitContact(id uuid.UUID, email, phone, name string) (models.Order, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return models.Order{}, err
	}

	order.Email = &email
	order.Phone = &phone
	order.Name = &name
	order.Submitted = true
	if err := s.db.Save(&order).Error; err != nil {
		return models.Order{}, err
	}

	s.sendConfirmationEmail(&order)
	return order, nil
}

// sendConfirmationEmail is a synchronous, best-effort side effect of
// submission. A failed send is logged but does not roll back the
// already persisted submitted state.
func (s *orderService) sendConfirmationEmail(order *models.Order) {
	code := s.codes.Code(order)
	body, err := mailer.RenderConfirmBody(s.baseURL, order, code)
	if err != nil {
		log.WithError(err).WithField("order_id", order.ID).Error("Failed to render confirmation email")
		return
	}
	if err := s.mail.Send(order.EmailAddress(), mailer.ConfirmSubject, body); err != nil {
		log.WithError(err).WithField("order_id", order.ID).Error("Failed to send confirmation email")
	}
}

func (s *orderService) Confirm(id uuid.UUID, code string) (models.Order, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return models.Order{}, err
	}

	// Idempotent no-op: a confirmed order stays confirmed and the code
	// is not re-checked.
	if order.Confirmed {
		return order, nil
	}

	if s.codes.Code(&order) != code {
		return models.Order{}, models.ErrInvalidCode
	}

	now := time.Now()
	order.Confirmed = true
	order.ConfirmedAt = &now
	if err := s.db.Save(&order).Error; err != nil {
		return models.Order{}, err
	}

	log.WithField("order_id", order.ID).Info("Order confirmed")
	return order, nil
}

func (s *orderService) ListSubmitted() ([]models.Order, error) {
	var orders []models.Order
	err := s.db.Preload("Pizza.LineItems.Ingredient").
		Where("submitted = ?", true).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
