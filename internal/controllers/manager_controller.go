package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"trucki/internal/models"
	"trucki/internal/services"
)

type ManagerController struct {
	service *services.ManagerService
}

func NewManagerController(service *services.ManagerService) *ManagerController {
	return &ManagerController{service: service}
}

func (ct *ManagerController) AddManager(c *gin.Context) {
	var req models.AddManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Failure[string](http.StatusBadRequest, "Invalid request body: "+err.Error()))
		return
	}
	resp := ct.service.AddManager(c.Request.Context(), req)
	c.JSON(resp.StatusCode, resp)
}

func (ct *ManagerController) EditManager(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req models.EditManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Failure[bool](http.StatusBadRequest, "Invalid request body: "+err.Error()))
		return
	}
	resp := ct.service.EditManager(c.Request.Context(), id, req)
	c.JSON(resp.StatusCode, resp)
}

func (ct *ManagerController) GetAllManagers(c *gin.Context) {
	resp := ct.service.GetAllManagers(c.Request.Context())
	c.JSON(resp.StatusCode, resp)
}

func (ct *ManagerController) GetManagerByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp := ct.service.GetManagerByID(c.Request.Context(), id)
	c.JSON(resp.StatusCode, resp)
}

func (ct *ManagerController) SearchManagers(c *gin.Context) {
	resp := ct.service.SearchManagers(c.Request.Context(), c.Query("q"))
	c.JSON(resp.StatusCode, resp)
}

// DeactivateManager soft-deactivates; managers have no hard delete.
func (ct *ManagerController) DeactivateManager(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp := ct.service.DeactivateManager(c.Request.Context(), id)
	c.JSON(resp.StatusCode, resp)
}
