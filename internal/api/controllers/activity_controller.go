package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campscan/internal/models/request_models"
	"campscan/internal/services"
	"campscan/pkg/utils"
)

type ActivityController struct {
	activityService services.ActivityServiceInterface
}

func NewActivityController(activityService services.ActivityServiceInterface) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

func (a *ActivityController) CreateActivity(c *gin.Context) {
	var req request_models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := a.activityService.CreateActivity(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity created successfully")
}

func (a *ActivityController) ListActivities(c *gin.Context) {
	eventID := c.Query("eventId")
	if eventID == "" {
		utils.RespondError(c, http.StatusBadRequest, "eventId is required")
		return
	}

	activities, err := a.activityService.ListActivities(c.Request.Context(), eventID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Fetched activities successfully")
}

func (a *ActivityController) UpdateActivity(c *gin.Context) {
	var req request_models.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	activity, err := a.activityService.UpdateActivity(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activity, "Activity updated successfully")
}

func (a *ActivityController) DeleteActivity(c *gin.Context) {
	if err := a.activityService.DeleteActivity(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity deleted successfully")
}
