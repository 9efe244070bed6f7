package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trucki/internal/models"
	"trucki/internal/services"
)

type DriverController struct {
	service *services.DriverService
}

func NewDriverController(service *services.DriverService) *DriverController {
	return &DriverController{service: service}
}

// parseIDParam reads a :id path parameter as an entity id.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Failure[any](http.StatusBadRequest, "Invalid id format"))
		return 0, false
	}
	return uint(id), true
}

// claimedUserID extracts the authenticated user id set by the JWT
// middleware. A missing claim is a distinct unauthorized outcome, not a
// validation failure.
func claimedUserID(c *gin.Context) (uint, bool) {
	claim, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, models.Failure[any](http.StatusUnauthorized, "Missing identity claim"))
		return 0, false
	}
	idFloat, ok := claim.(float64)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.Failure[any](http.StatusUnauthorized, "Missing identity claim"))
		return 0, false
	}
	return uint(idFloat), true
}

func (ct *DriverController) AddDriver(c *gin.Context) {
	var req models.AddDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Failure[string](http.StatusBadRequest, "Invalid request body: "+err.Error()))
		return
	}
	resp := ct.service.AddDriver(c.Request.Context(), req)
	c.JSON(resp.StatusCode, resp)
}

func (ct *DriverController) EditDriver(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req models.EditDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Failure[bool](http.StatusBadRequest, "Invalid request body: "+err.Error()))
		return
	}
	resp := ct.service.EditDriver(c.Request.Context(), id, req)
	c.JSON(resp.StatusCode, resp)
}

func (ct *DriverController) GetAllDrivers(c *gin.Context) {
	resp := ct.service.GetAllDrivers(c.Request.Context())
	c.JSON(resp.StatusCode, resp)
}

func (ct *DriverController) GetDriverByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp := ct.service.GetDriverByID(c.Request.Context(), id)
	c.JSON(resp.StatusCode, resp)
}

func (ct *DriverController) SearchDrivers(c *gin.Context) {
	resp := ct.service.SearchDrivers(c.Request.Context(), c.Query("q"))
	c.JSON(resp.StatusCode, resp)
}

func (ct *DriverController) DeactivateDriver(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp := ct.service.DeactivateDriver(c.Request.Context(), id)
	c.JSON(resp.StatusCode, resp)
}

// GetDriverProfile serves the authenticated driver's own profile; the id
// comes from the token, never from the request.
func (ct *DriverController) GetDriverProfile(c *gin.Context) {
	userID, ok := claimedUserID(c)
	if !ok {
		return
	}
	resp := ct.service.GetDriverProfile(c.Request.Context(), userID)
	c.JSON(resp.StatusCode, resp)
}
