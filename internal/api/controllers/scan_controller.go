package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"campscan/internal/models/request_models"
	"campscan/internal/services"
	"campscan/pkg/utils"
)

type ScanController struct {
	scanService services.ScanServiceInterface
}

func NewScanController(scanService services.ScanServiceInterface) *ScanController {
	return &ScanController{
		scanService: scanService,
	}
}

// RecordScan godoc
// @Summary Record a scan
// @Description Apply one decoded QR code as a departure or return for the scanning leader
// @Tags Scans
// @Accept json
// @Produce json
// @Param request body request_models.ScanRequest true "Scan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /scans [post]
func (s *ScanController) RecordScan(c *gin.Context) {
	var req request_models.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := s.scanService.RecordScan(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Scan recorded successfully")
}

// LookupParticipant godoc
// @Summary Look up a participant by QR code
// @Description Resolve a decoded QR code to a participant before committing the scan
// @Tags Scans
// @Produce json
// @Param eventId query string true "Event id"
// @Param code query string true "Decoded QR code"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /scans/lookup [get]
func (s *ScanController) LookupParticipant(c *gin.Context) {
	eventID := c.Query("eventId")
	code := strings.TrimSpace(c.Query("code"))
	if eventID == "" || code == "" {
		utils.RespondError(c, http.StatusBadRequest, "eventId and code are required")
		return
	}

	participant, err := s.scanService.LookupParticipant(c.Request.Context(), eventID, code)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, participant, "Participant found")
}

func (s *ScanController) CurrentActivity(c *gin.Context) {
	current, err := s.scanService.CurrentActivity(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, current, "Fetched current activity successfully")
}
