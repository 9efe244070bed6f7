package routes

import (
	"github.com/gin-gonic/gin"

	"trucki/internal/controllers"
	"trucki/internal/middleware"
)

func DriverRoutes(r *gin.Engine, driver *controllers.DriverController) {
	group := r.Group("/driver")
	group.Use(middleware.RequireAuthWithRole("driver"))
	{
		group.GET("/profile", driver.GetDriverProfile)
	}
}
