package routes

import (
	"github.com/gin-gonic/gin"

	"trucki/internal/middleware"
)

func AdminRoutes(r *gin.Engine, ct Controllers) {
	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuthWithRole("admin"))
	{
		admin.POST("/drivers", ct.Driver.AddDriver)
		admin.GET("/drivers", ct.Driver.GetAllDrivers)
		admin.GET("/drivers/:id", ct.Driver.GetDriverByID)
		admin.POST("/drivers/:id/edit", ct.Driver.EditDriver)
		admin.POST("/drivers/:id/deactivate", ct.Driver.DeactivateDriver)

		admin.POST("/managers", ct.Manager.AddManager)
		admin.GET("/managers", ct.Manager.GetAllManagers)
		admin.GET("/managers/:id", ct.Manager.GetManagerByID)
		admin.POST("/managers/:id/edit", ct.Manager.EditManager)
		admin.POST("/managers/:id/deactivate", ct.Manager.DeactivateManager)

		admin.POST("/truckowners", ct.TruckOwner.CreateTruckOwner)
		admin.GET("/truckowners", ct.TruckOwner.GetAllTruckOwners)
		admin.GET("/truckowners/:id", ct.TruckOwner.GetTruckOwnerByID)
		admin.POST("/truckowners/:id/edit", ct.TruckOwner.EditTruckOwner)
		admin.DELETE("/truckowners/:id", ct.TruckOwner.DeleteTruckOwner)

		// Search lives under its own prefix so the :id routes above stay
		// unambiguous.
		admin.GET("/search/drivers", ct.Driver.SearchDrivers)
		admin.GET("/search/managers", ct.Manager.SearchManagers)
		admin.GET("/search/truckowners", ct.TruckOwner.SearchTruckOwners)

		admin.POST("/companies", ct.Catalog.CreateCompany)
		admin.GET("/companies", ct.Catalog.ListCompanies)
		admin.POST("/trucks", ct.Catalog.CreateTruck)
		admin.GET("/trucks", ct.Catalog.ListTrucks)
	}
}
