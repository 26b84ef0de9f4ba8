package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mehedihb/kagojghor-backend/internal/app/service"
	apperrors "github.com/mehedihb/kagojghor-backend/internal/errors"
	"github.com/mehedihb/kagojghor-backend/internal/middleware"
	"github.com/mehedihb/kagojghor-backend/pkg/util"
)

type ReportController struct {
	reportService service.ReportService
}

func NewReportController(reportService service.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// DocumentsXLSX streams the document register as a spreadsheet
// GET /api/v1/reports/documents.xlsx
func (ctrl *ReportController) DocumentsXLSX(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := buildDocumentFilter(c)

	buf, err := ctrl.reportService.DocumentsXLSX(filter)
	if err != nil {
		log.Error("Failed to generate document report", err, nil)
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.ReportGenerationFailed, "রিপোর্ট তৈরি করা যায়নি")
		return
	}

	filename := fmt.Sprintf("documents-%s.xlsx", time.Now().In(util.Dhaka()).Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
