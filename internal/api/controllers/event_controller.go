package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campscan/internal/models/request_models"
	"campscan/internal/services"
	"campscan/pkg/utils"
)

type EventController struct {
	eventService    services.EventServiceInterface
	locationService services.LocationServiceInterface
}

func NewEventController(
	eventService services.EventServiceInterface,
	locationService services.LocationServiceInterface,
) *EventController {
	return &EventController{
		eventService:    eventService,
		locationService: locationService,
	}
}

func (e *EventController) CreateEvent(c *gin.Context) {
	var req request_models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	event, err := e.eventService.CreateEvent(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event created successfully")
}

func (e *EventController) ListEvents(c *gin.Context) {
	events, err := e.eventService.ListEvents(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Fetched events successfully")
}

func (e *EventController) GetEvent(c *gin.Context) {
	event, err := e.eventService.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Fetched event successfully")
}

func (e *EventController) SetActiveEvent(c *gin.Context) {
	if err := e.eventService.SetActiveEvent(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event activated successfully")
}

func (e *EventController) DeleteEvent(c *gin.Context) {
	if err := e.eventService.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted successfully")
}

func (e *EventController) ResetEventData(c *gin.Context) {
	if err := e.eventService.ResetEventData(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event data reset successfully")
}

// BackfillLocations recomputes every cached participant location of the
// event from its activity log. Meant for repairing drift after manual
// data fixes.
func (e *EventController) BackfillLocations(c *gin.Context) {
	if err := e.locationService.BackfillLocations(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Locations backfilled successfully")
}
