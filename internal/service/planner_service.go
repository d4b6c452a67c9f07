package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/variablekhai/uum-timetable-planner/internal/dto"
	"github.com/variablekhai/uum-timetable-planner/internal/model"
	"github.com/variablekhai/uum-timetable-planner/internal/repository"
)

// ── 选课模块业务错误 ──

var (
	ErrPlannerCourseNotFound  = errors.New("课程不存在")
	ErrPlannerGroupNotFound   = errors.New("课程分组不存在")
	ErrPlannerAlreadySelected = errors.New("该课程已选，请先移除再换分组")
	ErrPlannerSessionClash    = errors.New("该分组与已选课程时间冲突")
	ErrPlannerNotSelected     = errors.New("该课程不在当前选课中")
)

// ── PlannerService 接口 ──────────────────────────────────
//
// 设计说明：
//   - 选课状态以规划会话 ID 为键暂存（带 TTL），不跨会话持久化
//   - 冲突判定基于读取时的一致快照：先 Get 快照，全部校验通过后
//     才整体 Save 写回；校验失败时选课列表保持原样
//   - 一门课程只能选一个分组；分组的每个时段块展开为一条已选记录
//   - 周网格派生自当前选课，槽位几何见 grid.go
// ─────────────────────────────────────────────────────────────

// PlannerService 选课规划业务接口
type PlannerService interface {
	// Select 选择课程分组；与已选时段冲突时拒绝且不修改选课
	Select(ctx context.Context, plannerSID string, req *dto.SelectCourseRequest) (*dto.SelectionResponse, error)
	// Deselect 移除某课程的全部已选时段
	Deselect(ctx context.Context, plannerSID, courseCode string) (*dto.SelectionResponse, error)
	// IsSelected 查询课程是否已在选课中
	IsSelected(ctx context.Context, plannerSID, courseCode string) (bool, error)
	// GetSelection 获取当前选课列表
	GetSelection(ctx context.Context, plannerSID string) (*dto.SelectionResponse, error)
	// GetGrid 获取当前选课的周网格视图
	GetGrid(ctx context.Context, plannerSID string) (*dto.WeekGridResponse, error)
}

type plannerService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPlannerService 创建 PlannerService 实例
func NewPlannerService(repo *repository.Repository, logger *zap.Logger) PlannerService {
	return &plannerService{repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// Select — 选择课程分组
// ════════════════════════════════════════════════════════════
//
// 流程：
//   1. 读取选课快照
//   2. 同一课程重复选择 → 拒绝
//   3. 定位课程与分组的全部时段块
//   4. 逐块做冲突检测（共同星期 + 半开区间时间重叠）
//   5. 全部通过后才追加并写回

func (s *plannerService) Select(ctx context.Context, plannerSID string, req *dto.SelectCourseRequest) (*dto.SelectionResponse, error) {
	snapshot, err := s.repo.Selection.Get(ctx, plannerSID)
	if err != nil {
		s.logger.Error("读取选课快照失败", zap.Error(err))
		return nil, err
	}

	for _, sel := range snapshot {
		if sel.CourseCode == req.CourseCode {
			return nil, ErrPlannerAlreadySelected
		}
	}

	courses, err := loadNormalizedCourses(ctx, s.repo, req.DepartmentID, s.logger)
	if err != nil {
		return nil, err
	}

	var course *model.Course
	for i := range courses {
		if courses[i].Code == req.CourseCode {
			course = &courses[i]
			break
		}
	}
	if course == nil {
		return nil, ErrPlannerCourseNotFound
	}

	sessions := course.SessionsOfGroup(req.Group)
	if len(sessions) == 0 {
		return nil, ErrPlannerGroupNotFound
	}

	for _, session := range sessions {
		if hasSessionClash(snapshot, session) {
			return nil, ErrPlannerSessionClash
		}
	}

	for _, session := range sessions {
		snapshot = append(snapshot, model.SelectedSession{
			CourseCode:    course.Code,
			CourseName:    course.Name,
			Venue:         course.Venue,
			Mooc:          course.Mooc,
			SelectedGroup: session.GroupName,
			Days:          session.Days,
			StartTime:     session.StartTime,
			EndTime:       session.EndTime,
		})
	}

	if err := s.repo.Selection.Save(ctx, plannerSID, snapshot); err != nil {
		s.logger.Error("写回选课失败", zap.Error(err))
		return nil, err
	}

	return toSelectionResponse(snapshot), nil
}

// ════════════════════════════════════════════════════════════
// Deselect — 移除课程
// ════════════════════════════════════════════════════════════

func (s *plannerService) Deselect(ctx context.Context, plannerSID, courseCode string) (*dto.SelectionResponse, error) {
	snapshot, err := s.repo.Selection.Get(ctx, plannerSID)
	if err != nil {
		s.logger.Error("读取选课快照失败", zap.Error(err))
		return nil, err
	}

	remaining := make([]model.SelectedSession, 0, len(snapshot))
	for _, sel := range snapshot {
		if sel.CourseCode != courseCode {
			remaining = append(remaining, sel)
		}
	}
	if len(remaining) == len(snapshot) {
		return nil, ErrPlannerNotSelected
	}

	if err := s.repo.Selection.Save(ctx, plannerSID, remaining); err != nil {
		s.logger.Error("写回选课失败", zap.Error(err))
		return nil, err
	}

	return toSelectionResponse(remaining), nil
}

func (s *plannerService) IsSelected(ctx context.Context, plannerSID, courseCode string) (bool, error) {
	snapshot, err := s.repo.Selection.Get(ctx, plannerSID)
	if err != nil {
		return false, err
	}
	for _, sel := range snapshot {
		if sel.CourseCode == courseCode {
			return true, nil
		}
	}
	return false, nil
}

func (s *plannerService) GetSelection(ctx context.Context, plannerSID string) (*dto.SelectionResponse, error) {
	snapshot, err := s.repo.Selection.Get(ctx, plannerSID)
	if err != nil {
		s.logger.Error("读取选课快照失败", zap.Error(err))
		return nil, err
	}
	return toSelectionResponse(snapshot), nil
}

// ════════════════════════════════════════════════════════════
// GetGrid — 周网格视图
// ════════════════════════════════════════════════════════════
//
// Cells[slot][day]：22 行半小时槽位 × 7 列星期。
// 规范化后的时间理应总在网格内并对齐半小时；SlotSpan 报错说明
// 上游规范化有缺陷，按内部错误上抛而不是截断渲染。

func (s *plannerService) GetGrid(ctx context.Context, plannerSID string) (*dto.WeekGridResponse, error) {
	snapshot, err := s.repo.Selection.Get(ctx, plannerSID)
	if err != nil {
		s.logger.Error("读取选课快照失败", zap.Error(err))
		return nil, err
	}

	slots := GridTimeSlots()
	cells := make([][]*dto.GridCellResponse, len(slots))
	for i, slot := range slots {
		row := make([]*dto.GridCellResponse, len(model.WeekDays))
		for j, day := range model.WeekDays {
			session := SessionAt(snapshot, day, slot)
			if session == nil {
				continue
			}
			span, err := SlotSpan(session.StartTime, session.EndTime)
			if err != nil {
				s.logger.Error("已选时段超出网格几何约束，疑似规范化缺陷",
					zap.String("course_code", session.CourseCode),
					zap.String("start", session.StartTime),
					zap.String("end", session.EndTime),
					zap.Error(err),
				)
				return nil, fmt.Errorf("网格几何计算失败: %w", err)
			}
			row[j] = &dto.GridCellResponse{
				CourseCode: session.CourseCode,
				CourseName: session.CourseName,
				Group:      session.SelectedGroup,
				Venue:      session.Venue,
				Span:       span,
				IsStart:    session.StartTime == slot,
			}
		}
		cells[i] = row
	}

	return &dto.WeekGridResponse{
		Days:      dayNamesOf(model.WeekDays),
		TimeSlots: slots,
		Cells:     cells,
	}, nil
}

// ── 响应转换器 ──

func toSelectionResponse(sessions []model.SelectedSession) *dto.SelectionResponse {
	result := make([]dto.SelectedSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, dto.SelectedSessionResponse{
			CourseCode:    s.CourseCode,
			CourseName:    s.CourseName,
			Venue:         s.Venue,
			Mooc:          s.Mooc,
			SelectedGroup: s.SelectedGroup,
			Days:          dayNamesOf(s.Days),
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
		})
	}
	return &dto.SelectionResponse{Sessions: result}
}
