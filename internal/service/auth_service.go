package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/variablekhai/uum-timetable-planner/config"
	"github.com/variablekhai/uum-timetable-planner/internal/dto"
	"github.com/variablekhai/uum-timetable-planner/pkg/jwt"
)

// ── 认证模块业务错误 ──

var (
	ErrAuthInvalidCredentials = errors.New("用户名或密码错误")
	ErrAuthNotConfigured      = errors.New("管理员账号未配置")
)

// AuthService 管理员认证业务接口
//
// 设计说明：管理端为单账号模型，凭据（用户名 + bcrypt 哈希）来自配置，
// 无用户表；登录成功签发短期 Access Token，目录管理接口据此鉴权。
type AuthService interface {
	// Login 管理员登录
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authService struct {
	cfg    *config.AuthConfig
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(cfg *config.Config, jwtMgr *jwt.Manager, logger *zap.Logger) AuthService {
	return &authService{cfg: &cfg.Auth, jwtMgr: jwtMgr, logger: logger}
}

func (s *authService) Login(_ context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if s.cfg.AdminUsername == "" || s.cfg.AdminPasswordHash == "" {
		return nil, ErrAuthNotConfigured
	}

	if req.Username != s.cfg.AdminUsername {
		return nil, ErrAuthInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrAuthInvalidCredentials
	}

	token, err := s.jwtMgr.GenerateAccessToken(req.Username)
	if err != nil {
		s.logger.Error("签发 Access Token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.jwtMgr.AccessTokenTTL().Seconds()),
	}, nil
}
