package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestValidateUUIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	reached := false
	router.GET("/order/:id", ValidateUUIDParam("id"), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	testCases := []struct {
		name     string
		path     string
		expected int
	}{
		{name: "valid uuid passes through", path: "/order/a9f9cd68-0c04-4d7a-8c33-03de8b3f6a5a", expected: http.StatusOK},
		{name: "plain text rejected", path: "/order/not-a-uuid", expected: http.StatusBadRequest},
		{name: "numeric id rejected", path: "/order/12345", expected: http.StatusBadRequest},
		{name: "truncated uuid rejected", path: "/order/a9f9cd68-0c04-4d7a-8c33", expected: http.StatusBadRequest},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			reached = false
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
			assert.Equal(t, tt.expected == http.StatusOK, reached, "handler reachability")
		})
	}
}
