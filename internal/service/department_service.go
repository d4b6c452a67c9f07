package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/variablekhai/uum-timetable-planner/internal/dto"
	"github.com/variablekhai/uum-timetable-planner/internal/model"
	"github.com/variablekhai/uum-timetable-planner/internal/repository"
)

// ── 学院模块业务错误 ──

var (
	ErrDepartmentNotFound   = errors.New("学院不存在")
	ErrDepartmentExists     = errors.New("学院代号已存在")
	ErrDepartmentHasCatalog = errors.New("学院尚有课程目录数据，请先清空目录")
)

// DepartmentService 学院模块业务接口
type DepartmentService interface {
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	Get(ctx context.Context, id string) (*dto.DepartmentResponse, error)
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type departmentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDepartmentService 创建 DepartmentService 实例
func NewDepartmentService(repo *repository.Repository, logger *zap.Logger) DepartmentService {
	return &departmentService{repo: repo, logger: logger}
}

func (s *departmentService) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.repo.Department.List(ctx)
	if err != nil {
		s.logger.Error("查询学院列表失败", zap.Error(err))
		return nil, err
	}
	result := make([]dto.DepartmentResponse, 0, len(depts))
	for _, d := range depts {
		result = append(result, toDepartmentResponse(d))
	}
	return result, nil
}

func (s *departmentService) Get(ctx context.Context, id string) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	resp := toDepartmentResponse(*dept)
	return &resp, nil
}

func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*dto.DepartmentResponse, error) {
	if _, err := s.repo.Department.GetByID(ctx, req.ID); err == nil {
		return nil, ErrDepartmentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	dept := model.Department{
		DepartmentID: req.ID,
		Name:         req.Name,
	}
	if err := s.repo.Department.Create(ctx, &dept); err != nil {
		s.logger.Error("创建学院失败", zap.Error(err))
		return nil, err
	}

	resp := toDepartmentResponse(dept)
	return &resp, nil
}

func (s *departmentService) Update(ctx context.Context, id string, req *dto.UpdateDepartmentRequest) (*dto.DepartmentResponse, error) {
	dept, err := s.repo.Department.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		dept.Name = *req.Name
	}

	if err := s.repo.Department.Update(ctx, dept); err != nil {
		s.logger.Error("更新学院失败", zap.Error(err))
		return nil, err
	}

	resp := toDepartmentResponse(*dept)
	return &resp, nil
}

func (s *departmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Department.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDepartmentNotFound
		}
		return err
	}

	count, err := s.repo.CatalogRecord.CountByDepartment(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDepartmentHasCatalog
	}

	if err := s.repo.Department.Delete(ctx, id); err != nil {
		s.logger.Error("删除学院失败", zap.Error(err))
		return err
	}
	return nil
}

// ── 响应转换器 ──

func toDepartmentResponse(d model.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		DepartmentID: d.DepartmentID,
		Name:         d.Name,
	}
}
