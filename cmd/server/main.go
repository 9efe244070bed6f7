package main

import (
	"log"
	"net/http"

	"trucki/internal/config"
	"trucki/internal/controllers"
	"trucki/internal/logger"
	"trucki/internal/middleware"
	"trucki/internal/repository"
	"trucki/internal/routes"
	"trucki/internal/services"
)

func main() {
	// Structured logging to a rotating file
	logger.Setup()

	// Connect to the database and migrate the schema
	config.InitDB()
	db := config.GetDB()

	users := repository.NewGormUserStore(db)
	drivers := repository.NewGormDriverStore(db)
	managers := repository.NewGormManagerStore(db)
	owners := repository.NewGormTruckOwnerStore(db)
	companies := repository.NewGormCompanyStore(db)
	trucks := repository.NewGormTruckStore(db)

	uploadDir := config.GetEnv("UPLOAD_DIR", "./uploads")
	assets := services.NewDiskAssetStore(uploadDir)
	accounts := services.NewAccountProvisioner(users)
	validator := services.NewDriverUniquenessValidator(drivers)

	driverService := services.NewDriverService(drivers, validator, assets, accounts)
	managerService := services.NewManagerService(managers, companies, accounts)
	ownerService := services.NewTruckOwnerService(owners, assets)

	r := routes.SetupRouter(routes.Controllers{
		Auth:       controllers.NewAuthController(users),
		Driver:     controllers.NewDriverController(driverService),
		Manager:    controllers.NewManagerController(managerService),
		TruckOwner: controllers.NewTruckOwnerController(ownerService),
		Catalog:    controllers.NewCatalogController(companies, trucks),
	})

	// Stored assets are served back by the reference URLs the services hand out
	r.Static("/uploads", uploadDir)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := "0.0.0.0:" + config.GetEnv("PORT", "8080")
	log.Printf("Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
