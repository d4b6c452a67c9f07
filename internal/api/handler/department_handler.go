package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/variablekhai/uum-timetable-planner/internal/dto"
	"github.com/variablekhai/uum-timetable-planner/internal/service"
	"github.com/variablekhai/uum-timetable-planner/pkg/response"
)

// DepartmentHandler 学院模块 HTTP 处理器
type DepartmentHandler struct {
	deptSvc service.DepartmentService
}

// NewDepartmentHandler 创建 DepartmentHandler
func NewDepartmentHandler(deptSvc service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{deptSvc: deptSvc}
}

// ListDepartments 学院列表
// GET /api/v1/departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	result, err := h.deptSvc.List(c.Request.Context())
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.OK(c, result)
}

// GetDepartment 学院详情
// GET /api/v1/departments/:id
func (h *DepartmentHandler) GetDepartment(c *gin.Context) {
	result, err := h.deptSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.OK(c, result)
}

// CreateDepartment 创建学院
// POST /api/v1/departments
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.deptSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateDepartment 更新学院
// PUT /api/v1/departments/:id
func (h *DepartmentHandler) UpdateDepartment(c *gin.Context) {
	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.deptSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.OK(c, result)
}

// DeleteDepartment 删除学院
// DELETE /api/v1/departments/:id
func (h *DepartmentHandler) DeleteDepartment(c *gin.Context) {
	if err := h.deptSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleDepartmentError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *DepartmentHandler) handleDepartmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrDepartmentNotFound):
		response.NotFound(c, 11001, "学院不存在")
	case errors.Is(err, service.ErrDepartmentExists):
		response.Conflict(c, 11002, "学院代号已存在")
	case errors.Is(err, service.ErrDepartmentHasCatalog):
		response.Conflict(c, 11003, "学院尚有课程目录数据，请先清空目录")
	default:
		response.InternalError(c)
	}
}
