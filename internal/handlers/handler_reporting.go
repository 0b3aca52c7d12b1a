package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	portssvc "github.com/SscSPs/household_finance/internal/core/ports/services"
	"github.com/SscSPs/household_finance/internal/dto"
	"github.com/SscSPs/household_finance/internal/middleware"
	"github.com/SscSPs/household_finance/internal/utils"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the dashboard and report endpoints.
type reportingHandler struct {
	reportingService  portssvc.ReportingService
	formatter         *utils.Formatter
	defaultWindowDays int
}

// newReportingHandler creates a new reportingHandler.
func newReportingHandler(rs portssvc.ReportingService, f *utils.Formatter, defaultWindowDays int) *reportingHandler {
	return &reportingHandler{
		reportingService:  rs,
		formatter:         f,
		defaultWindowDays: defaultWindowDays,
	}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, f *utils.Formatter, defaultWindowDays int) {
	h := newReportingHandler(reportingService, f, defaultWindowDays)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/members", h.getMemberSummaries)
		reports.GET("/repayments", h.getMonthlyRepayments)
		reports.GET("/forecast", h.getBalanceForecast)
		reports.GET("/reminders", h.getUpcomingInstallments)
	}
}

func (h *reportingHandler) getSummary(c *gin.Context) {
	summary, err := h.reportingService.Summary(c.Request.Context())
	if err != nil {
		respondError(c, middleware.GetLogger(c), err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(*summary, h.formatter))
}

func (h *reportingHandler) getMemberSummaries(c *gin.Context) {
	summaries, err := h.reportingService.MemberSummaries(c.Request.Context())
	if err != nil {
		respondError(c, middleware.GetLogger(c), err, "Failed to compute member summaries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMemberSummaryResponse(summaries, h.formatter))
}

func (h *reportingHandler) getMonthlyRepayments(c *gin.Context) {
	months, err := h.reportingService.MonthlyRepayments(c.Request.Context())
	if err != nil {
		respondError(c, middleware.GetLogger(c), err, "Failed to compute repayment breakdown")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMonthlyRepaymentResponse(months, h.formatter))
}

func (h *reportingHandler) getBalanceForecast(c *gin.Context) {
	months, err := h.reportingService.BalanceForecast(c.Request.Context())
	if err != nil {
		respondError(c, middleware.GetLogger(c), err, "Failed to compute forecast")
		return
	}
	c.JSON(http.StatusOK, dto.ToListForecastMonthResponse(months, h.formatter))
}

// getUpcomingInstallments lists unpaid installments due within ?days=N (overdue included).
func (h *reportingHandler) getUpcomingInstallments(c *gin.Context) {
	logger := middleware.GetLogger(c)
	days := h.defaultWindowDays
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			logger.Warn("Invalid days query parameter", slog.String("days", raw))
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a non-negative integer"})
			return
		}
		days = parsed
	}

	due, err := h.reportingService.UpcomingInstallments(c.Request.Context(), days)
	if err != nil {
		respondError(c, logger, err, "Failed to list upcoming installments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDueInstallmentResponse(due, h.formatter))
}
