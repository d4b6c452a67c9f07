package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/variablekhai/uum-timetable-planner/internal/dto"
	"github.com/variablekhai/uum-timetable-planner/internal/service"
	"github.com/variablekhai/uum-timetable-planner/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 管理员登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, 10101, "用户名或密码错误")
		case errors.Is(err, service.ErrAuthNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, 10102, "管理员账号未配置")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
