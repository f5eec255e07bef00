package services

import (
	"errors"

	"github.com/pizzamaker/pizzamaker-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService assembles pizzas from a dough choice and ingredient
// selections and prices them
type PizzaService interface {
	// ComposePizza persists a pizza and its line items as one unit.
	// Selections map ingredient IDs to amounts; entries with amount 0
	// are skipped, negative amounts are rejected.
	ComposePizza(dough models.Dough, selections map[uint]int) (models.Pizza, error)
	// GetPizzaByID retrieves a pizza with its line items and ingredients
	GetPizzaByID(id uint) (models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) ComposePizza(dough models.Dough, selections map[uint]int) (models.Pizza, error) {
	if !dough.Valid() {
		return models.Pizza{}, models.NewValidationError("dough", "must be one of: thin, deep")
	}
	for _, amount := range selections {
		if amount < 0 {
			return models.Pizza{}, models.NewValidationError("ingredients", "amounts must not be negative")
		}
	}

	// All-or-nothing: a composition failure must not leave an orphaned
	// pizza behind, so the pizza and its line items commit together.
	var pizza models.Pizza
	err := s.db.Transaction(func(tx *gorm.DB) error {
		pizza = models.Pizza{Dough: dough}
		if err := tx.Create(&pizza).Error; err != nil {
			return err
		}

		for ingredientID, amount := range selections {
			if amount == 0 {
				continue
			}
			var ingredient models.Ingredient
			if err := tx.First(&ingredient, ingredientID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.ErrIngredientNotFound
				}
				return err
			}
			item := models.PizzaLineItem{
				PizzaID:      pizza.ID,
				IngredientID: ingredient.ID,
				Amount:       amount,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Pizza{}, err
	}

	return s.GetPizzaByID(pizza.ID)
}

func (s *pizzaService) GetPizzaByID(id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.Preload("LineItems.Ingredient").First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, models.ErrPizzaNotFound
		}
		return models.Pizza{}, err
	}
	return pizza, nil
}
