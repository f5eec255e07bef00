package services

import (
	"testing"

	"github.com/pizzamaker/pizzamaker-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogGroupCRUD(t *testing.T) {
	db := setupTestDB(t)
	service := NewCatalogService(db)

	group, err := service.CreateGroup("Cheeses")
	require.NoError(t, err)
	assert.NotZero(t, group.ID)

	group, err = service.UpdateGroup(group.ID, "Fine Cheeses")
	require.NoError(t, err)
	assert.Equal(t, "Fine Cheeses", group.Name)

	groups, err := service.ListGroups()
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	require.NoError(t, service.DeleteGroup(group.ID))

	groups, err = service.ListGroups()
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestCatalogGroupValidation(t *testing.T) {
	db := setupTestDB(t)
	service := NewCatalogService(db)

	_, err := service.CreateGroup("")
	_, ok := models.IsValidationError(err)
	assert.True(t, ok)

	_, err = service.UpdateGroup(99, "anything")
	assert.ErrorIs(t, err, models.ErrGroupNotFound)

	assert.ErrorIs(t, service.DeleteGroup(99), models.ErrGroupNotFound)
}

func TestCatalogIngredientCRUD(t *testing.T) {
	db := setupTestDB(t)
	service := NewCatalogService(db)

	group, err := service.CreateGroup("Meats")
	require.NoError(t, err)

	ingredient, err := service.CreateIngredient(models.Ingredient{Name: "Ham", GroupID: group.ID, Cost: 2.25})
	require.NoError(t, err)
	assert.NotZero(t, ingredient.ID)

	ingredient.Cost = 2.5
	ingredient, err = service.UpdateIngredient(ingredient)
	require.NoError(t, err)
	assert.Equal(t, 2.5, ingredient.Cost)

	// Names are not unique: a second Ham is fine
	_, err = service.CreateIngredient(models.Ingredient{Name: "Ham", GroupID: group.ID, Cost: 3})
	require.NoError(t, err)

	ingredients, err := service.ListIngredients(&group.ID)
	require.NoError(t, err)
	assert.Len(t, ingredients, 2)

	require.NoError(t, service.DeleteIngredient(ingredient.ID))

	ingredients, err = service.ListIngredients(nil)
	require.NoError(t, err)
	assert.Len(t, ingredients, 1)
}

func TestCatalogIngredientValidation(t *testing.T) {
	db := setupTestDB(t)
	service := NewCatalogService(db)

	group, err := service.CreateGroup("Vegetables")
	require.NoError(t, err)

	_, err = service.CreateIngredient(models.Ingredient{Name: "Olive", GroupID: group.ID, Cost: -0.5})
	_, ok := models.IsValidationError(err)
	assert.True(t, ok, "negative cost must be rejected")

	_, err = service.CreateIngredient(models.Ingredient{Name: "", GroupID: group.ID})
	_, ok = models.IsValidationError(err)
	assert.True(t, ok)

	_, err = service.CreateIngredient(models.Ingredient{Name: "Olive", GroupID: 999, Cost: 0.5})
	assert.ErrorIs(t, err, models.ErrGroupNotFound)

	assert.ErrorIs(t, service.DeleteIngredient(999), models.ErrIngredientNotFound)
}

func TestDeleteGroupCascades(t *testing.T) {
	db := setupTestDB(t)
	group, cheese, olive := seedCatalog(t, db)
	service := NewCatalogService(db)

	// Build a pizza referencing the ingredients about to disappear
	pizza, err := NewPizzaService(db).ComposePizza(models.DoughThin, map[uint]int{
		cheese.ID: 2,
		olive.ID:  1,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteGroup(group.ID))

	var ingredientCount int64
	db.Model(&models.Ingredient{}).Count(&ingredientCount)
	assert.Zero(t, ingredientCount, "group deletion must cascade to its ingredients")

	var itemCount int64
	db.Model(&models.PizzaLineItem{}).Where("pizza_id = ?", pizza.ID).Count(&itemCount)
	assert.Zero(t, itemCount, "group deletion must cascade to line items referencing its ingredients")
}

func TestDeleteIngredientCascadesToLineItems(t *testing.T) {
	db := setupTestDB(t)
	_, cheese, olive := seedCatalog(t, db)
	service := NewCatalogService(db)

	pizza, err := NewPizzaService(db).ComposePizza(models.DoughDeep, map[uint]int{
		cheese.ID: 1,
		olive.ID:  2,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteIngredient(cheese.ID))

	var items []models.PizzaLineItem
	require.NoError(t, db.Where("pizza_id = ?", pizza.ID).Find(&items).Error)
	require.Len(t, items, 1)
	assert.Equal(t, olive.ID, items[0].IngredientID)
}

func TestCatalogByGroup(t *testing.T) {
	db := setupTestDB(t)
	group, _, _ := seedCatalog(t, db)
	service := NewCatalogService(db)

	empty, err := service.CreateGroup("Sauces")
	require.NoError(t, err)

	catalog, err := service.CatalogByGroup()
	require.NoError(t, err)

	assert.Len(t, catalog, 2)
	assert.Len(t, catalog[group.Name], 2)
	assert.Empty(t, catalog[empty.Name])
}
