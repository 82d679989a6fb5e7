package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"expensetracker/internal/services"
)

// ReportHandler handles report requests
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ReportResponse documents the report body.
type ReportResponse struct {
	TotalAmount          string            `json:"totalAmount" example:"119.75"`
	TotalExpenses        int64             `json:"totalExpenses" example:"3"`
	CategoryWiseExpenses map[string]string `json:"categoryWiseExpenses"`
	Period               string            `json:"period" example:"Monthly Report - 2024-02"`
}

// GetMonthlyReport handles the monthly report
// @Summary     Monthly report
// @Description Summarise the expenses of a calendar month
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       year  query int true "Year (e.g. 2024)"
// @Param       month query int true "Month (1-12)"
// @Success     200 {object} ReportResponse "Report"
// @Failure     400 {object} ErrorResponse "Invalid year or month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/monthly [get]
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := queryInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}
	month, err := queryInt(c, "month")
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.MonthlyReport(c.Request.Context(), username, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetWeeklyReport handles the weekly report
// @Summary     Weekly report
// @Description Summarise the seven days starting at startDate
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       startDate query string true "First day of the week (YYYY-MM-DD)"
// @Success     200 {object} ReportResponse "Report"
// @Failure     400 {object} ErrorResponse "Invalid start date"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/weekly [get]
func (h *ReportHandler) GetWeeklyReport(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	start, err := queryDate(c, "startDate")
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.WeeklyReport(c.Request.Context(), username, start)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetCategoryWiseReport handles the category-wise report
// @Summary     Category-wise report
// @Description Summarise the expenses from startDate through endDate by category
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       startDate query string true "Start date (YYYY-MM-DD)"
// @Param       endDate   query string true "End date (YYYY-MM-DD)"
// @Success     200 {object} ReportResponse "Report"
// @Failure     400 {object} ErrorResponse "Invalid dates"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/category-wise [get]
func (h *ReportHandler) GetCategoryWiseReport(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	start, err := queryDate(c, "startDate")
	if err != nil {
		respondWithError(c, err)
		return
	}
	end, err := queryDate(c, "endDate")
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.CategoryWiseReport(c.Request.Context(), username, start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetYearlyReport handles the yearly report
// @Summary     Yearly report
// @Description Summarise the expenses of a calendar year
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Param       year query int true "Year (e.g. 2024)"
// @Success     200 {object} ReportResponse "Report"
// @Failure     400 {object} ErrorResponse "Invalid year"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/yearly [get]
func (h *ReportHandler) GetYearlyReport(c *gin.Context) {
	username, err := getUsername(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	year, err := queryInt(c, "year")
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.reportService.YearlyReport(c.Request.Context(), username, year)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
