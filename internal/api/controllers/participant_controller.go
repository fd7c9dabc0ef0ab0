package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campscan/internal/models/request_models"
	"campscan/internal/services"
	"campscan/pkg/utils"
)

type ParticipantController struct {
	participantService services.ParticipantServiceInterface
}

func NewParticipantController(participantService services.ParticipantServiceInterface) *ParticipantController {
	return &ParticipantController{
		participantService: participantService,
	}
}

func (p *ParticipantController) CreateParticipant(c *gin.Context) {
	var req request_models.CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	participant, err := p.participantService.CreateParticipant(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, participant, "Participant created successfully")
}

func (p *ParticipantController) ListParticipants(c *gin.Context) {
	eventID := c.Query("eventId")
	if eventID == "" {
		utils.RespondError(c, http.StatusBadRequest, "eventId is required")
		return
	}

	var err error
	var participants interface{}
	switch {
	case c.Query("church") != "":
		participants, err = p.participantService.ListParticipantsByChurch(c.Request.Context(), eventID, c.Query("church"))
	case c.Query("location") != "":
		participants, err = p.participantService.ListParticipantsByLocation(c.Request.Context(), eventID, c.Query("location"))
	default:
		participants, err = p.participantService.ListParticipants(c.Request.Context(), eventID)
	}
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, participants, "Fetched participants successfully")
}

func (p *ParticipantController) GetParticipantDetail(c *gin.Context) {
	detail, err := p.participantService.GetParticipantDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Fetched participant successfully")
}

func (p *ParticipantController) UpdateParticipant(c *gin.Context) {
	var req request_models.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	participant, err := p.participantService.UpdateParticipant(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, participant, "Participant updated successfully")
}

func (p *ParticipantController) DeleteParticipant(c *gin.Context) {
	if err := p.participantService.DeleteParticipant(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Participant deleted successfully")
}

// ImportCsv godoc
// @Summary Import participants from CSV
// @Description Bulk import participants for an event from an uploaded CSV file
// @Tags Participants
// @Accept multipart/form-data
// @Produce json
// @Param eventId query string true "Event id"
// @Param file formData file true "CSV file with name,church,type,assignedleaders columns"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /participants/import [post]
func (p *ParticipantController) ImportCsv(c *gin.Context) {
	eventID := c.Query("eventId")
	if eventID == "" {
		utils.RespondError(c, http.StatusBadRequest, "eventId is required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A csv file upload is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Could not read the uploaded file")
		return
	}
	defer file.Close()

	result, err := p.participantService.ImportCsv(c.Request.Context(), eventID, file)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Import finished")
}
