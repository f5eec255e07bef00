package services

import (
	"testing"

	"github.com/pizzamaker/pizzamaker-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(
		&models.IngredientGroup{},
		&models.Ingredient{},
		&models.Pizza{},
		&models.PizzaLineItem{},
		&models.Order{},
		&models.User{},
	)
	require.NoError(t, err, "Failed to migrate test database")

	return db
}

// seedCatalog creates one group with a cheese and an olive ingredient
// and returns them, matching the worked pricing example used across the
// order and pizza tests
func seedCatalog(t *testing.T, db *gorm.DB) (models.IngredientGroup, models.Ingredient, models.Ingredient) {
	t.Helper()

	group := models.IngredientGroup{Name: "Toppings"}
	require.NoError(t, db.Create(&group).Error)

	cheese := models.Ingredient{Name: "Cheese", GroupID: group.ID, Cost: 1.5}
	require.NoError(t, db.Create(&cheese).Error)

	olive := models.Ingredient{Name: "Olive", GroupID: group.ID, Cost: 0.5}
	require.NoError(t, db.Create(&olive).Error)

	return group, cheese, olive
}
