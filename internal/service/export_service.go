package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/variablekhai/uum-timetable-planner/internal/model"
	"github.com/variablekhai/uum-timetable-planner/internal/repository"
)

// ── 导出模块业务错误 ──

var (
	ErrExportEmptySelection = errors.New("当前选课为空，无可导出内容")
	ErrExportGenerateFail   = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - XLSX 导出复用周网格几何：行 = 半小时槽位，列 = 星期，
//     时段块按槽位跨度做纵向单元格合并
//   - ICS 导出把每个已选时段的每个星期展开为一条周重复 VEVENT，
//     DTSTART 取自今日起最近的对应星期
//   - 均以内存缓冲返回，由 Handler 设置响应头后写出
type ExportService interface {
	// ExportSelectionXLSX 导出当前选课为周网格 Excel
	ExportSelectionXLSX(ctx context.Context, plannerSID string) (*bytes.Buffer, string, error)
	// ExportSelectionICS 导出当前选课为 iCalendar 订阅内容
	ExportSelectionICS(ctx context.Context, plannerSID string) ([]byte, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportSelectionXLSX — 周网格 Excel
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportSelectionXLSX(ctx context.Context, plannerSID string) (*bytes.Buffer, string, error) {
	selection, err := s.repo.Selection.Get(ctx, plannerSID)
	if err != nil {
		return nil, "", err
	}
	if len(selection) == 0 {
		return nil, "", ErrExportEmptySelection
	}

	const sheet = "Timetable"
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheet)

	// 表头：时间列 + 星期列
	if err := f.SetCellValue(sheet, "A1", "Time"); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
	}
	for j, day := range model.WeekDays {
		cellName, _ := excelize.CoordinatesToCellName(j+2, 1)
		if err := f.SetCellValue(sheet, cellName, day.String()); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
		}
	}

	slots := GridTimeSlots()
	for i, slot := range slots {
		cellName, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetCellValue(sheet, cellName, slot); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
		}
	}

	// 时段块：在起始槽位写入并按跨度纵向合并
	for j, day := range model.WeekDays {
		for i, slot := range slots {
			session := SessionAt(selection, day, slot)
			if session == nil || session.StartTime != slot {
				continue
			}
			span, err := SlotSpan(session.StartTime, session.EndTime)
			if err != nil {
				s.logger.Error("导出时网格几何计算失败，疑似规范化缺陷",
					zap.String("course_code", session.CourseCode), zap.Error(err))
				return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
			}

			startCell, _ := excelize.CoordinatesToCellName(j+2, i+2)
			if span > 1 {
				endCell, _ := excelize.CoordinatesToCellName(j+2, i+1+span)
				if err := f.MergeCell(sheet, startCell, endCell); err != nil {
					return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
				}
			}

			text := fmt.Sprintf("%s (%s)\n%s", session.CourseCode, session.SelectedGroup, session.Venue)
			if err := f.SetCellValue(sheet, startCell, text); err != nil {
				return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
			}
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 10)
	lastCol, _ := excelize.ColumnNumberToName(len(model.WeekDays) + 1)
	_ = f.SetColWidth(sheet, "B", lastCol, 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("timetable_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportSelectionICS — iCalendar 订阅
// ═══════════════════════════════════════════════════════════

// icsByDay Day → RRULE BYDAY 编码
var icsByDay = map[model.Day]string{
	model.Monday:    "MO",
	model.Tuesday:   "TU",
	model.Wednesday: "WE",
	model.Thursday:  "TH",
	model.Friday:    "FR",
	model.Saturday:  "SA",
	model.Sunday:    "SU",
}

func (s *exportService) ExportSelectionICS(ctx context.Context, plannerSID string) ([]byte, string, error) {
	selection, err := s.repo.Selection.Get(ctx, plannerSID)
	if err != nil {
		return nil, "", err
	}
	if len(selection) == 0 {
		return nil, "", ErrExportEmptySelection
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//UUM Timetable Planner//EN")

	now := time.Now()
	for _, session := range selection {
		for _, day := range session.Days {
			start, end, err := nextOccurrence(now, day, session.StartTime, session.EndTime)
			if err != nil {
				s.logger.Error("ICS 时间计算失败，疑似规范化缺陷",
					zap.String("course_code", session.CourseCode), zap.Error(err))
				return nil, "", fmt.Errorf("%w: %v", ErrExportGenerateFail, err)
			}

			event := cal.AddEvent(uuid.New().String() + "@uum-timetable-planner")
			event.SetDtStampTime(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(fmt.Sprintf("%s %s (Group %s)", session.CourseCode, session.CourseName, session.SelectedGroup))
			if session.Venue != "" {
				event.SetLocation(session.Venue)
			}
			event.AddRrule("FREQ=WEEKLY;BYDAY=" + icsByDay[day])
		}
	}

	filename := fmt.Sprintf("timetable_%s.ics", now.Format("20060102"))
	return []byte(cal.Serialize()), filename, nil
}

// nextOccurrence 计算从 from 起最近一个指定星期的起止时刻
func nextOccurrence(from time.Time, day model.Day, startTime, endTime string) (time.Time, time.Time, error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("起始时间 %q 无效: %w", startTime, err)
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("结束时间 %q 无效: %w", endTime, err)
	}

	// Go 的 Weekday 以周日为 0；目标 Day 以周一为 1
	offset := (int(day) - goWeekdayToISO(from.Weekday()) + 7) % 7
	date := from.AddDate(0, 0, offset)

	startAt := time.Date(date.Year(), date.Month(), date.Day(), start.Hour(), start.Minute(), 0, 0, from.Location())
	endAt := time.Date(date.Year(), date.Month(), date.Day(), end.Hour(), end.Minute(), 0, 0, from.Location())
	return startAt, endAt, nil
}

// goWeekdayToISO 将 Go 的 time.Weekday (0=Sunday) 转为 ISO 8601 (1=Monday … 7=Sunday)
func goWeekdayToISO(wd time.Weekday) int {
	if wd == time.Sunday {
		return 7
	}
	return int(wd)
}
