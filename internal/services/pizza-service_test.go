package services

import (
	"testing"

	"github.com/pizzamaker/pizzamaker-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposePizza(t *testing.T) {
	db := setupTestDB(t)
	_, cheese, olive := seedCatalog(t, db)
	service := NewPizzaService(db)

	pizza, err := service.ComposePizza(models.DoughThin, map[uint]int{
		cheese.ID: 2,
		olive.ID:  3,
	})
	require.NoError(t, err)

	assert.Equal(t, models.DoughThin, pizza.Dough)
	assert.Len(t, pizza.LineItems, 2)
	// total_price example: 1.5*2 + 0.5*3 = 4.5
	assert.InDelta(t, 4.5, pizza.Price(), 1e-9)
}

func TestComposePizzaSkipsZeroAmounts(t *testing.T) {
	db := setupTestDB(t)
	_, cheese, olive := seedCatalog(t, db)
	service := NewPizzaService(db)

	pizza, err := service.ComposePizza(models.DoughDeep, map[uint]int{
		cheese.ID: 2,
		olive.ID:  0,
	})
	require.NoError(t, err)

	require.Len(t, pizza.LineItems, 1)
	assert.Equal(t, cheese.ID, pizza.LineItems[0].IngredientID)
	assert.InDelta(t, 3.0, pizza.Price(), 1e-9)
}

func TestComposePizzaEmptySelection(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	service := NewPizzaService(db)

	pizza, err := service.ComposePizza(models.DoughThin, nil)
	require.NoError(t, err)

	assert.Empty(t, pizza.LineItems)
	assert.Zero(t, pizza.Price())
}

func TestComposePizzaInvalidDough(t *testing.T) {
	db := setupTestDB(t)
	_, cheese, _ := seedCatalog(t, db)
	service := NewPizzaService(db)

	_, err := service.ComposePizza(models.Dough("stuffed"), map[uint]int{cheese.ID: 1})

	_, ok := models.IsValidationError(err)
	assert.True(t, ok, "expected a validation error, got %v", err)

	// Nothing may be persisted after a rejected composition
	var count int64
	db.Model(&models.Pizza{}).Count(&count)
	assert.Zero(t, count)
}

func TestComposePizzaNegativeAmount(t *testing.T) {
	db := setupTestDB(t)
	_, cheese, _ := seedCatalog(t, db)
	service := NewPizzaService(db)

	_, err := service.ComposePizza(models.DoughThin, map[uint]int{cheese.ID: -1})

	_, ok := models.IsValidationError(err)
	assert.True(t, ok, "expected a validation error, got %v", err)
}

func TestComposePizzaUnknownIngredient(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	service := NewPizzaService(db)

	_, err := service.ComposePizza(models.DoughThin, map[uint]int{9999: 1})
	assert.ErrorIs(t, err, models.ErrIngredientNotFound)

	// The transaction must have rolled back the pizza row too
	var count int64
	db.Model(&models.Pizza{}).Count(&count)
	assert.Zero(t, count)
}

func TestGetPizzaByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewPizzaService(db)

	_, err := service.GetPizzaByID(42)
	assert.ErrorIs(t, err, models.ErrPizzaNotFound)
}
