package routes

import (
	"frontdesk/controllers"
	middlewares "frontdesk/middleware"
	"frontdesk/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func SetupRoutes(router *gin.Engine, store *services.SnapshotStore, redisCli *redis.Client) {

	timelineController := controllers.NewTimelineController(store, redisCli)
	bookingController := controllers.NewBookingController(store)

	v1 := router.Group("/api/v1")
	v1.Use(middlewares.SessionMiddleware())

	v1.GET("/timeline", timelineController.GetTimeline)
	v1.POST("/timeline/refresh", timelineController.RefreshTimeline)
	v1.GET("/timeline/navigate", timelineController.NavigateTimeline)
	v1.GET("/timeline/options", timelineController.GetTimelineOptions)
	v1.DELETE("/timeline/filters", timelineController.ClearTimelineFilters)

	v1.GET("/bookings/:id", bookingController.GetBookingDetail)
	v1.GET("/bookings/:id/actions", bookingController.GetBookingActions)
}
