package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"trucki/internal/models"
	"trucki/internal/repository"
)

// CatalogController serves the supporting company and truck lookups that
// the association fields on managers, drivers, and owners point at.
type CatalogController struct {
	companies repository.CompanyStore
	trucks    repository.TruckStore
}

func NewCatalogController(companies repository.CompanyStore, trucks repository.TruckStore) *CatalogController {
	return &CatalogController{companies: companies, trucks: trucks}
}

func (ct *CatalogController) CreateCompany(c *gin.Context) {
	var company models.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, models.Failure[models.CompanyResponse](http.StatusBadRequest, "Invalid request body: "+err.Error()))
		return
	}
	if err := ct.companies.Create(c.Request.Context(), &company); err != nil {
		logrus.WithError(err).Error("company persist failed")
		c.JSON(http.StatusInternalServerError, models.Failure[models.CompanyResponse](http.StatusInternalServerError, "An error occurred while creating the company"))
		return
	}
	resp := models.Success(http.StatusCreated, "Company created successfully",
		models.CompanyResponse{ID: company.ID, Name: company.Name, Location: company.Location})
	c.JSON(resp.StatusCode, resp)
}

func (ct *CatalogController) ListCompanies(c *gin.Context) {
	companies, err := ct.companies.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("company list failed")
		c.JSON(http.StatusInternalServerError, models.Failure[[]models.CompanyResponse](http.StatusInternalServerError, "An error occurred while retrieving companies"))
		return
	}
	resp := models.Success(http.StatusOK, "Companies retrieved successfully", models.ToCompanyResponses(companies))
	c.JSON(resp.StatusCode, resp)
}

func (ct *CatalogController) CreateTruck(c *gin.Context) {
	var req models.AddTruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Failure[models.TruckResponse](http.StatusBadRequest, "Invalid request body: "+err.Error()))
		return
	}
	truck := models.Truck{
		TruckName:    req.TruckName,
		PlateNumber:  req.PlateNumber,
		TruckOwnerID: req.TruckOwnerID,
	}
	if err := ct.trucks.Create(c.Request.Context(), &truck); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, models.Failure[models.TruckResponse](http.StatusBadRequest, "Plate number already exists"))
			return
		}
		logrus.WithError(err).Error("truck persist failed")
		c.JSON(http.StatusInternalServerError, models.Failure[models.TruckResponse](http.StatusInternalServerError, "An error occurred while creating the truck"))
		return
	}
	resp := models.Success(http.StatusCreated, "Truck created successfully", models.ToTruckResponse(truck))
	c.JSON(resp.StatusCode, resp)
}

func (ct *CatalogController) ListTrucks(c *gin.Context) {
	trucks, err := ct.trucks.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("truck list failed")
		c.JSON(http.StatusInternalServerError, models.Failure[[]models.TruckResponse](http.StatusInternalServerError, "An error occurred while retrieving trucks"))
		return
	}
	resp := models.Success(http.StatusOK, "Trucks retrieved successfully", models.ToTruckResponses(trucks))
	c.JSON(resp.StatusCode, resp)
}
