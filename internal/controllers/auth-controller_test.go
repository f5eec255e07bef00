package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pizzamaker/pizzamaker-api/internal/models"
	"github.com/pizzamaker/pizzamaker-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	controller := NewAuthController(services.NewUserService(db), "auth-test-jwt-secret")

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/auth/register", controller.Register)
	router.POST("/auth/login", controller.Login)
	return router
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	json.NewEncoder(&buf).Encode(body)
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	router := setupAuthRouter(t)

	w := postJSON(router, "/auth/register", gin.H{
		"email":    "admin@example.com",
		"password": "hunter22",
		"name":     "Admin",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate registration conflicts
	w = postJSON(router, "/auth/register", gin.H{
		"email":    "admin@example.com",
		"password": "hunter22",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = postJSON(router, "/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp["token_type"])
	assert.NotEmpty(t, resp["access_token"])
}

func TestLoginWrongPassword(t *testing.T) {
	router := setupAuthRouter(t)

	w := postJSON(router, "/auth/register", gin.H{
		"email":    "admin@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(router, "/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
