package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/variablekhai/uum-timetable-planner/internal/dto"
	"github.com/variablekhai/uum-timetable-planner/internal/service"
	"github.com/variablekhai/uum-timetable-planner/pkg/response"
)

// CatalogHandler 课程目录模块 HTTP 处理器
type CatalogHandler struct {
	catalogSvc service.CatalogService
}

// NewCatalogHandler 创建 CatalogHandler
func NewCatalogHandler(catalogSvc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogSvc: catalogSvc}
}

// ListCourses 学院课程目录（规范化后）
// GET /api/v1/departments/:id/courses?search=xxx
func (h *CatalogHandler) ListCourses(c *gin.Context) {
	var req dto.ListCoursesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.catalogSvc.ListCourses(c.Request.Context(), c.Param("id"), req.Search)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, result)
}

// ImportCatalog 导入学院目录 XLSX（全量替换）
// POST /api/v1/departments/:id/catalog  (multipart/form-data, 字段名 file)
func (h *CatalogHandler) ImportCatalog(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "缺少上传文件 file")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, 12001, "上传文件无法读取")
		return
	}
	defer f.Close()

	result, err := h.catalogSvc.ImportCatalog(c.Request.Context(), c.Param("id"), f)
	if err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, result)
}

// ClearCatalog 清空学院目录
// DELETE /api/v1/departments/:id/catalog
func (h *CatalogHandler) ClearCatalog(c *gin.Context) {
	if err := h.catalogSvc.ClearCatalog(c.Request.Context(), c.Param("id")); err != nil {
		h.handleCatalogError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *CatalogHandler) handleCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCatalogDepartmentNotFound):
		response.NotFound(c, 11001, "学院不存在")
	case errors.Is(err, service.ErrCatalogXLSXParseFailed):
		response.BadRequest(c, 12002, "目录文件解析失败")
	case errors.Is(err, service.ErrCatalogXLSXEmpty):
		response.BadRequest(c, 12003, "目录文件中没有有效记录")
	default:
		response.InternalError(c)
	}
}
