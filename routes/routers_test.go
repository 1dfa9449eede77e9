package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSetupRoutesRegistersAPI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router)

	registered := make(map[string]bool)
	for _, route := range router.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	want := []string{
		"POST /api/v1/auth/login",
		"POST /api/v1/users",
		"GET /api/v1/hotels",
		"GET /api/v1/hotels/:id/available-rooms",
		"POST /api/v1/bookings",
		"PUT /api/v1/bookingStatus",
		"POST /api/v1/bookings/:id/services",
		"POST /api/v1/payments",
		"GET /api/v1/guests/search",
		"GET /api/v1/dashboard",
	}
	for _, w := range want {
		if !registered[w] {
			t.Errorf("route %s not registered", w)
		}
	}
}
