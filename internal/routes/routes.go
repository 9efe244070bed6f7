package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"trucki/internal/controllers"
)

// Controllers bundles everything SetupRouter needs to wire the route
// groups.
type Controllers struct {
	Auth       *controllers.AuthController
	Driver     *controllers.DriverController
	Manager    *controllers.ManagerController
	TruckOwner *controllers.TruckOwnerController
	Catalog    *controllers.CatalogController
}

func SetupRouter(ct Controllers) *gin.Engine {
	r := gin.New()
	r.Use(ginlogger.SetLogger())
	r.Use(gin.Recovery())

	AuthRoutes(r, ct.Auth)
	AdminRoutes(r, ct)
	DriverRoutes(r, ct.Driver)

	return r
}
