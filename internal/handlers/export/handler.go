package export

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/models"
	"github.com/soportesistemas80-alt/historial-clima-tiendas/internal/services/export"
)

// request is the export payload: the previously queried (and possibly
// filtered) day records plus the labels going into the report preamble.
type request struct {
	Location string             `json:"location" binding:"required"`
	Year     int                `json:"year" binding:"required"`
	Days     []models.DayRecord `json:"days"`
}

type Handler struct {
	now func() time.Time
}

func NewHandler() *Handler {
	return &Handler{now: time.Now}
}

// ExportPDF
// @Summary Download the report as PDF
// @Tags export
// @Accept json
// @Produce application/pdf
// @Param request body request true "Location, year and day records"
// @Success 200 {file} binary
// @Failure 400
// @Router /export/pdf [post]
func (h *Handler) ExportPDF(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WritePDF(&buf, req.Days, req.Location, req.Year, h.now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.attach(c, export.Filename(req.Location, "pdf", h.now()), "application/pdf", buf.Bytes())
}

// ExportCSV
// @Summary Download the report as CSV
// @Description Default is comma-separated UTF-8; sep=semicolon switches to the semicolon/BOM variant for locale-sensitive spreadsheet imports
// @Tags export
// @Accept json
// @Produce text/csv
// @Param request body request true "Location, year and day records"
// @Param sep query string false "Delimiter variant: comma (default) or semicolon"
// @Success 200 {file} binary
// @Failure 400
// @Router /export/csv [post]
func (h *Handler) ExportCSV(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	variant := export.CSVComma
	if c.Query("sep") == "semicolon" {
		variant = export.CSVSemicolonBOM
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, req.Days, variant); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.attach(c, export.Filename(req.Location, "csv", h.now()), "text/csv", buf.Bytes())
}

// ExportXLSX
// @Summary Download the report as a spreadsheet
// @Tags export
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body request true "Location, year and day records"
// @Success 200 {file} binary
// @Failure 400
// @Router /export/xlsx [post]
func (h *Handler) ExportXLSX(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, req.Days, req.Location, req.Year); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.attach(c, export.Filename(req.Location, "xlsx", h.now()),
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *Handler) bind(c *gin.Context) (request, bool) {
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": models.ErrDecode.Error() + ": " + err.Error()})
		return request{}, false
	}
	return req, true
}

func (h *Handler) attach(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}
