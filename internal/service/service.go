package service

import (
	"go.uber.org/zap"

	"github.com/variablekhai/uum-timetable-planner/config"
	"github.com/variablekhai/uum-timetable-planner/internal/repository"
	"github.com/variablekhai/uum-timetable-planner/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	Department DepartmentService
	Catalog    CatalogService
	Planner    PlannerService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(cfg, jwtMgr, logger),
		Department: NewDepartmentService(repo, logger),
		Catalog:    NewCatalogService(cfg, repo, logger),
		Planner:    NewPlannerService(repo, logger),
		Export:     NewExportService(repo, logger),
	}
}
