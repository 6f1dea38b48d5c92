package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"masjid/internal/csvexport"
	"masjid/internal/service"
)

const (
	exportBaseName  = "laporan_keuangan"
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// FinanceHandler serves the cash-book report and its exports.
type FinanceHandler struct {
	financeService service.FinanceService
	now            func() time.Time
}

// NewFinanceHandler creates a new FinanceHandler.
func NewFinanceHandler(financeService service.FinanceService) *FinanceHandler {
	return &FinanceHandler{financeService: financeService, now: time.Now}
}

// Report handles GET /api/v1/finance
// @Summary Finance report
// @Description Totals, monthly income/expense and the transaction list
// @Tags finance
// @Produce json
// @Success 200 {object} Response{data=domain.FinanceReport}
// @Router /finance [get]
func (h *FinanceHandler) Report(c *gin.Context) {
	report, err := h.financeService.Report(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, report)
}

// ExportCSV handles GET /api/v1/finance/export.csv
// @Summary Export transactions as CSV
// @Tags finance
// @Produce text/csv
// @Success 200 {file} file
// @Router /finance/export.csv [get]
func (h *FinanceHandler) ExportCSV(c *gin.Context) {
	h.export(c, "csv", contentTypeCSV, h.financeService.ExportCSV)
}

// ExportXLSX handles GET /api/v1/finance/export.xlsx
// @Summary Export the finance report as an Excel workbook
// @Tags finance
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /finance/export.xlsx [get]
func (h *FinanceHandler) ExportXLSX(c *gin.Context) {
	h.export(c, "xlsx", contentTypeXLSX, h.financeService.ExportXLSX)
}

// export renders into a buffer first so a failed fetch still gets a JSON error.
func (h *FinanceHandler) export(c *gin.Context, ext, contentType string, write func(context.Context, io.Writer) error) {
	var buf bytes.Buffer
	if err := write(c.Request.Context(), &buf); err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename(exportBaseName, ext, h.now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
