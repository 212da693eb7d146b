// handlers/report_handlers.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/ashwinpura/hoteldesk-backend/models"
	"github.com/ashwinpura/hoteldesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// RunNightAudit computes the night-audit rollup for a business date
func RunNightAudit(c *gin.Context) {
	var request models.NightAuditRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	report, err := handlerServices.AuditService.RunNightAudit(request.BusinessDate)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, report)
}

// ExportNightAuditToExcel exports the night audit as an Excel download
func ExportNightAuditToExcel(c *gin.Context) {
	var request models.NightAuditRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	excelFile, filename, err := handlerServices.ExcelService.ExportNightAudit(request.BusinessDate)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
