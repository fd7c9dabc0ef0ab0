package controllers

import (
	"github.com/gin-gonic/gin"

	"campscan/internal/services"
	"campscan/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
}

func NewReportController(reportService services.ReportServiceInterface) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

func (r *ReportController) GetEventReport(c *gin.Context) {
	report, err := r.reportService.BuildEventReport(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Fetched report successfully")
}
