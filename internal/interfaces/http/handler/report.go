package handler

import (
	"bytes"
	"net/http"

	"github.com/estoque/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles weekly aggregation report HTTP requests
type ReportHandler struct {
	BaseHandler
	reportService *report.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *report.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Weekly returns the per-material aggregation for a date range
func (h *ReportHandler) Weekly(c *gin.Context) {
	summaries, err := h.reportService.WeeklyReport(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summaries)
}

// Export streams the weekly report as a csv or xlsx download
func (h *ReportHandler) Export(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		h.BadRequest(c, "Format must be one of: csv, xlsx")
		return
	}

	start, end := c.Query("start"), c.Query("end")
	summaries, err := h.reportService.WeeklyReport(c.Request.Context(), start, end)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filename := "weekly-report-" + start + "-" + end + "." + format
	var buf bytes.Buffer
	var contentType string

	switch format {
	case "csv":
		contentType = "text/csv"
		err = report.WriteCSV(&buf, summaries)
	case "xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = report.WriteXLSX(&buf, summaries)
	}
	if err != nil {
		h.InternalError(c, "Failed to render report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// RegisterRoutes registers the report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/weekly", h.Weekly)
		reports.GET("/weekly/export", h.Export)
	}
}
