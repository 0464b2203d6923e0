package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/services"
)

// ReportHandler handles reporting requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func parseReportRange(c *gin.Context) (*time.Time, *time.Time, error) {
	var start, end *time.Time
	if v := c.Query("startDate"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid startDate")
		}
		start = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid endDate")
		}
		end = &t
	}
	return start, end, nil
}

// GetCashflow handles the monthly cashflow report
// @Summary     Cashflow report
// @Description Monthly income, expense, and net totals over the requested range
// @Tags        reports
// @Produce     json
// @Param       startDate query string false "Start date (inclusive, RFC3339 or YYYY-MM-DD)"
// @Param       endDate   query string false "End date (inclusive, RFC3339 or YYYY-MM-DD)"
// @Success     200 {array} services.CashflowEntry "Monthly buckets in chronological order"
// @Failure     400 {object} ErrorResponse "Invalid date parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/cashflow [get]
func (h *ReportHandler) GetCashflow(c *gin.Context) {
	start, end, err := parseReportRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entries, err := h.reportService.GetCashflow(start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetPnl handles the profit-and-loss report
// @Summary     Profit and loss report
// @Description Totals grouped by category over the requested range
// @Tags        reports
// @Produce     json
// @Param       startDate query string false "Start date (inclusive, RFC3339 or YYYY-MM-DD)"
// @Param       endDate   query string false "End date (inclusive, RFC3339 or YYYY-MM-DD)"
// @Success     200 {array} services.PnlEntry "Category totals, income first"
// @Failure     400 {object} ErrorResponse "Invalid date parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/pnl [get]
func (h *ReportHandler) GetPnl(c *gin.Context) {
	start, end, err := parseReportRange(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	entries, err := h.reportService.GetPnl(start, end)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
