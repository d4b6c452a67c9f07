package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/variablekhai/uum-timetable-planner/internal/service"
	"github.com/variablekhai/uum-timetable-planner/pkg/response"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeICS  = "text/calendar; charset=utf-8"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportXLSX 导出当前选课为周网格 Excel
// GET /api/v1/planner/export/xlsx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	sid, ok := MustGetPlannerSID(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportSelectionXLSX(c.Request.Context(), sid)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	setDownloadHeaders(c, filename)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

// ExportICS 导出当前选课为 iCalendar
// GET /api/v1/planner/export/ics
func (h *ExportHandler) ExportICS(c *gin.Context) {
	sid, ok := MustGetPlannerSID(c)
	if !ok {
		return
	}

	data, filename, err := h.exportSvc.ExportSelectionICS(c.Request.Context(), sid)
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	setDownloadHeaders(c, filename)
	c.Data(http.StatusOK, contentTypeICS, data)
}

func setDownloadHeaders(c *gin.Context, filename string) {
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
}

func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrExportEmptySelection):
		response.BadRequest(c, 14001, "当前选课为空，无可导出内容")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
