package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trucki/internal/models"
	"trucki/internal/services"
)

type TruckOwnerController struct {
	service *services.TruckOwnerService
}

func NewTruckOwnerController(service *services.TruckOwnerService) *TruckOwnerController {
	return &TruckOwnerController{service: service}
}

func (ct *TruckOwnerController) CreateTruckOwner(c *gin.Context) {
	var req models.AddTruckOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Failure[bool](http.StatusBadRequest, "Invalid request body: "+err.Error()))
		return
	}
	resp := ct.service.CreateTruckOwner(c.Request.Context(), req)
	c.JSON(resp.StatusCode, resp)
}

func (ct *TruckOwnerController) EditTruckOwner(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req models.EditTruckOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Failure[bool](http.StatusBadRequest, "Invalid request body: "+err.Error()))
		return
	}
	resp := ct.service.EditTruckOwner(c.Request.Context(), id, req)
	c.JSON(resp.StatusCode, resp)
}

// DeleteTruckOwner is a hard delete, unlike driver/manager deactivation.
func (ct *TruckOwnerController) DeleteTruckOwner(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp := ct.service.DeleteTruckOwner(c.Request.Context(), id)
	c.JSON(resp.StatusCode, resp)
}

func (ct *TruckOwnerController) GetTruckOwnerByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp := ct.service.GetTruckOwnerByID(c.Request.Context(), id)
	c.JSON(resp.StatusCode, resp)
}

func (ct *TruckOwnerController) GetAllTruckOwners(c *gin.Context) {
	resp := ct.service.GetAllTruckOwners(c.Request.Context())
	c.JSON(resp.StatusCode, resp)
}

func (ct *TruckOwnerController) SearchTruckOwners(c *gin.Context) {
	resp := ct.service.SearchTruckOwners(c.Request.Context(), c.Query("q"))
	c.JSON(resp.StatusCode, resp)
}
