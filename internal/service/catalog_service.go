package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/variablekhai/uum-timetable-planner/config"
	"github.com/variablekhai/uum-timetable-planner/internal/dto"
	"github.com/variablekhai/uum-timetable-planner/internal/model"
	"github.com/variablekhai/uum-timetable-planner/internal/repository"
)

// ── 目录模块业务错误 ──

var (
	ErrCatalogDepartmentNotFound = errors.New("学院不存在")
	ErrCatalogXLSXParseFailed    = errors.New("目录文件解析失败")
	ErrCatalogXLSXEmpty          = errors.New("目录文件中没有有效记录")
)

// CatalogService 课程目录业务接口
//
// 设计说明：
//   - 目录以原始行入库，查询时经 Normalizer 规范化后返回；
//     规范化是确定性纯函数，同一批原始行总是得到同样的课程列表
//   - 导入采用全量替换策略（事务内先删后插），与目录源的
//     "整表发布"节奏一致
//   - 畸形行在导入时即做一次试规范化并反馈诊断，帮助管理员
//     尽早发现数据问题；查询路径上同样的行会被再次静默跳过
type CatalogService interface {
	// ListCourses 返回学院的规范化课程目录，可按课程代码/名称过滤
	ListCourses(ctx context.Context, departmentID, search string) ([]dto.CourseResponse, error)
	// ImportCatalog 导入学院目录 XLSX（全量替换）
	ImportCatalog(ctx context.Context, departmentID string, reader io.Reader) (*dto.ImportCatalogResponse, error)
	// ClearCatalog 清空学院目录
	ClearCatalog(ctx context.Context, departmentID string) error
}

type catalogService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCatalogService 创建 CatalogService 实例
func NewCatalogService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) CatalogService {
	return &catalogService{cfg: cfg, repo: repo, logger: logger}
}

func (s *catalogService) ListCourses(ctx context.Context, departmentID, search string) ([]dto.CourseResponse, error) {
	courses, err := loadNormalizedCourses(ctx, s.repo, departmentID, s.logger)
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(strings.TrimSpace(search))
	result := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Code), query) &&
			!strings.Contains(strings.ToLower(c.Name), query) {
			continue
		}
		result = append(result, toCourseResponse(c))
	}
	return result, nil
}

func (s *catalogService) ImportCatalog(ctx context.Context, departmentID string, reader io.Reader) (*dto.ImportCatalogResponse, error) {
	if _, err := s.repo.Department.GetByID(ctx, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogDepartmentNotFound
		}
		return nil, err
	}

	limited := io.LimitReader(reader, s.cfg.Planner.ImportMaxBytes)
	records, err := ParseCatalogXLSX(limited, departmentID)
	if err != nil {
		s.logger.Error("目录 XLSX 解析失败", zap.String("department", departmentID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrCatalogXLSXParseFailed, err)
	}
	if len(records) == 0 {
		return nil, ErrCatalogXLSXEmpty
	}

	// 试规范化：仅为生成诊断，入库仍保留原始行
	_, skipped := NormalizeCatalog(records)
	for _, sk := range skipped {
		s.logger.Warn("目录行规范化失败，查询时将被跳过",
			zap.String("department", departmentID),
			zap.String("course_code", sk.CourseCode),
			zap.String("group", sk.GroupName),
			zap.String("reason", sk.Reason),
		)
	}

	if err := s.repo.CatalogRecord.ReplaceByDepartment(ctx, departmentID, records); err != nil {
		s.logger.Error("目录导入事务失败", zap.String("department", departmentID), zap.Error(err))
		return nil, fmt.Errorf("目录导入失败: %w", err)
	}

	skippedInfos := make([]dto.SkippedRecordInfo, 0, len(skipped))
	for _, sk := range skipped {
		skippedInfos = append(skippedInfos, dto.SkippedRecordInfo{
			CourseCode: sk.CourseCode,
			Group:      sk.GroupName,
			Reason:     sk.Reason,
		})
	}

	return &dto.ImportCatalogResponse{
		ImportedCount: len(records),
		SkippedCount:  len(skipped),
		Skipped:       skippedInfos,
	}, nil
}

func (s *catalogService) ClearCatalog(ctx context.Context, departmentID string) error {
	if _, err := s.repo.Department.GetByID(ctx, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCatalogDepartmentNotFound
		}
		return err
	}
	if err := s.repo.CatalogRecord.DeleteByDepartment(ctx, departmentID); err != nil {
		s.logger.Error("清空目录失败", zap.String("department", departmentID), zap.Error(err))
		return err
	}
	return nil
}

// ── 共享辅助 ──

// loadNormalizedCourses 读取学院原始目录并规范化
// 目录与选课两个模块共用；畸形行仅记日志，不影响返回
func loadNormalizedCourses(ctx context.Context, repo *repository.Repository, departmentID string, logger *zap.Logger) ([]model.Course, error) {
	if _, err := repo.Department.GetByID(ctx, departmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogDepartmentNotFound
		}
		return nil, err
	}

	records, err := repo.CatalogRecord.ListByDepartment(ctx, departmentID)
	if err != nil {
		logger.Error("查询目录行失败", zap.String("department", departmentID), zap.Error(err))
		return nil, err
	}

	courses, skipped := NormalizeCatalog(records)
	if len(skipped) > 0 {
		logger.Warn("目录中存在畸形行，已跳过",
			zap.String("department", departmentID),
			zap.Int("skipped", len(skipped)),
		)
	}
	return courses, nil
}

// ── 响应转换器 ──

func toCourseResponse(c model.Course) dto.CourseResponse {
	sessions := make([]dto.SessionResponse, 0, len(c.Sessions))
	for _, s := range c.Sessions {
		sessions = append(sessions, dto.SessionResponse{
			Group:     s.GroupName,
			Days:      dayNamesOf(s.Days),
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	return dto.CourseResponse{
		ID:       c.ID,
		Code:     c.Code,
		Name:     c.Name,
		Venue:    c.Venue,
		Mooc:     c.Mooc,
		Sessions: sessions,
	}
}

func dayNamesOf(days []model.Day) []string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String())
	}
	return names
}
