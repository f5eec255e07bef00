package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pizzamaker/pizzamaker-api/internal/middleware"
	"github.com/pizzamaker/pizzamaker-api/internal/models"
	"github.com/pizzamaker/pizzamaker-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testJWTSecret = "catalog-test-jwt-secret"

func setupAdminRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.IngredientGroup{},
		&models.Ingredient{},
		&models.Pizza{},
		&models.PizzaLineItem{},
	))

	controller := NewCatalogController(services.NewCatalogService(db))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	admin := router.Group("/")
	admin.Use(middleware.JWTAuth([]byte(testJWTSecret)))
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.GET("/group", controller.ListGroups)
		admin.POST("/group", controller.CreateGroup)
		admin.PUT("/group/:id", controller.UpdateGroup)
		admin.DELETE("/group/:id", controller.DeleteGroup)
		admin.GET("/ingredient", controller.ListIngredients)
		admin.POST("/ingredient", controller.CreateIngredient)
		admin.PUT("/ingredient/:id", controller.UpdateIngredient)
		admin.DELETE("/ingredient/:id", controller.DeleteIngredient)
	}
	return router, db
}

func signTestToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": 1,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return signed
}

func adminRequest(router *gin.Engine, token, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCatalogRoutesRequireToken(t *testing.T) {
	router, _ := setupAdminRouter(t)

	w := adminRequest(router, "", http.MethodGet, "/group", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCatalogRoutesRequireAdminRole(t *testing.T) {
	router, _ := setupAdminRouter(t)

	w := adminRequest(router, signTestToken(t, "user"), http.MethodPost, "/group", gin.H{"name": "Cheeses"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGroupCRUDOverHTTP(t *testing.T) {
	router, _ := setupAdminRouter(t)
	token := signTestToken(t, "admin")

	w := adminRequest(router, token, http.MethodPost, "/group", gin.H{"name": "Cheeses"})
	require.Equal(t, http.StatusCreated, w.Code)

	var group models.IngredientGroup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &group))
	require.NotZero(t, group.ID)

	w = adminRequest(router, token, http.MethodPut, "/group/1", gin.H{"name": "Fine Cheeses"})
	require.Equal(t, http.StatusOK, w.Code)

	w = adminRequest(router, token, http.MethodGet, "/group", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var groups []models.IngredientGroup
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &groups))
	require.Len(t, groups, 1)
	assert.Equal(t, "Fine Cheeses", groups[0].Name)

	w = adminRequest(router, token, http.MethodDelete, "/group/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = adminRequest(router, token, http.MethodDelete, "/group/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIngredientCRUDOverHTTP(t *testing.T) {
	router, db := setupAdminRouter(t)
	token := signTestToken(t, "admin")

	group := models.IngredientGroup{Name: "Meats"}
	require.NoError(t, db.Create(&group).Error)

	w := adminRequest(router, token, http.MethodPost, "/ingredient", gin.H{
		"name":     "Ham",
		"group_id": group.ID,
		"cost":     2.25,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var ingredient models.Ingredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ingredient))
	assert.Equal(t, "Ham", ingredient.Name)

	// Bad group reference
	w = adminRequest(router, token, http.MethodPost, "/ingredient", gin.H{
		"name":     "Ham",
		"group_id": 999,
		"cost":     2.25,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Negative cost fails binding validation
	w = adminRequest(router, token, http.MethodPost, "/ingredient", gin.H{
		"name":     "Ham",
		"group_id": group.ID,
		"cost":     -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = adminRequest(router, token, http.MethodDelete, "/ingredient/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
