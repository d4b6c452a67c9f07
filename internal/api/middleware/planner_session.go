package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PlannerSessionKey 规划会话 ID 在 gin.Context 中的键
const PlannerSessionKey = "planner_session"

// plannerSessionHeader 前端携带规划会话 ID 的请求头
const plannerSessionHeader = "X-Planner-Session"

// PlannerSession 规划会话中间件
// 选课状态以会话 ID 为键暂存，无需登录：
//   - 请求头携带合法 UUID 时沿用该会话
//   - 否则签发新 UUID
//
// 会话 ID 始终通过响应头返回，前端首次请求后保存并持续携带
func PlannerSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(plannerSessionHeader)
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.New().String()
		}

		c.Set(PlannerSessionKey, sid)
		c.Header(plannerSessionHeader, sid)

		c.Next()
	}
}
