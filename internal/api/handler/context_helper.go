package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/variablekhai/uum-timetable-planner/internal/api/middleware"
	"github.com/variablekhai/uum-timetable-planner/pkg/response"
)

// MustGetPlannerSID 从 Gin 上下文中安全提取规划会话 ID。
// 若 PlannerSession 中间件未正确注入，返回 false 并写入 500 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetPlannerSID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.PlannerSessionKey)
	if !exists {
		response.InternalError(c)
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.InternalError(c)
		return "", false
	}
	return s, true
}
