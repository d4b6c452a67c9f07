package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/variablekhai/uum-timetable-planner/internal/dto"
	"github.com/variablekhai/uum-timetable-planner/internal/service"
	"github.com/variablekhai/uum-timetable-planner/pkg/response"
)

// PlannerHandler 选课规划模块 HTTP 处理器
type PlannerHandler struct {
	plannerSvc service.PlannerService
}

// NewPlannerHandler 创建 PlannerHandler
func NewPlannerHandler(plannerSvc service.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerSvc: plannerSvc}
}

// GetSelection 当前选课列表
// GET /api/v1/planner/selection
func (h *PlannerHandler) GetSelection(c *gin.Context) {
	sid, ok := MustGetPlannerSID(c)
	if !ok {
		return
	}

	result, err := h.plannerSvc.GetSelection(c.Request.Context(), sid)
	if err != nil {
		h.handlePlannerError(c, err)
		return
	}
	response.OK(c, result)
}

// SelectCourse 选择课程分组
// POST /api/v1/planner/selection
func (h *PlannerHandler) SelectCourse(c *gin.Context) {
	sid, ok := MustGetPlannerSID(c)
	if !ok {
		return
	}

	var req dto.SelectCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.plannerSvc.Select(c.Request.Context(), sid, &req)
	if err != nil {
		h.handlePlannerError(c, err)
		return
	}
	response.OK(c, result)
}

// DeselectCourse 移除课程
// DELETE /api/v1/planner/selection/:courseCode
func (h *PlannerHandler) DeselectCourse(c *gin.Context) {
	sid, ok := MustGetPlannerSID(c)
	if !ok {
		return
	}

	result, err := h.plannerSvc.Deselect(c.Request.Context(), sid, c.Param("courseCode"))
	if err != nil {
		h.handlePlannerError(c, err)
		return
	}
	response.OK(c, result)
}

// GetGrid 周网格视图
// GET /api/v1/planner/grid
func (h *PlannerHandler) GetGrid(c *gin.Context) {
	sid, ok := MustGetPlannerSID(c)
	if !ok {
		return
	}

	result, err := h.plannerSvc.GetGrid(c.Request.Context(), sid)
	if err != nil {
		h.handlePlannerError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *PlannerHandler) handlePlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCatalogDepartmentNotFound):
		response.NotFound(c, 11001, "学院不存在")
	case errors.Is(err, service.ErrPlannerCourseNotFound):
		response.NotFound(c, 13001, "课程不存在")
	case errors.Is(err, service.ErrPlannerGroupNotFound):
		response.NotFound(c, 13002, "课程分组不存在")
	case errors.Is(err, service.ErrPlannerAlreadySelected):
		response.Conflict(c, 13003, "该课程已选，请先移除再换分组")
	case errors.Is(err, service.ErrPlannerSessionClash):
		response.Conflict(c, 13004, "该分组与已选课程时间冲突")
	case errors.Is(err, service.ErrPlannerNotSelected):
		response.NotFound(c, 13005, "该课程不在当前选课中")
	default:
		response.InternalError(c)
	}
}
