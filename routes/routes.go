package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/controllers"
	"backend/services"
)

// SetupRouter wires the HTTP surface. The notification controller and the
// nutrition lookup are built by the caller and injected here.
func SetupRouter(notifications *controllers.NotificationController, lookup services.NutritionLookup) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/schedule", controllers.GenerateSchedule)
		api.POST("/schedule/suggestions", controllers.ScheduleSuggestions(lookup))

		api.POST("/calories/recommendation", controllers.CalorieRecommendation)
		api.POST("/calories/options", controllers.CalorieOptions)

		api.POST("/notifications/start", notifications.Start)
		api.POST("/notifications/stop", notifications.Stop)
		api.POST("/notifications/test", notifications.Test)
	}

	return r
}
