package handler

import "github.com/variablekhai/uum-timetable-planner/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Department *DepartmentHandler
	Catalog    *CatalogHandler
	Planner    *PlannerHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Department: NewDepartmentHandler(svc.Department),
		Catalog:    NewCatalogHandler(svc.Catalog),
		Planner:    NewPlannerHandler(svc.Planner),
		Export:     NewExportHandler(svc.Export),
	}
}
