package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/variablekhai/uum-timetable-planner/internal/model"
)

// ── 目录 XLSX 解析器 ──────────────────────────────────────
//
// 职责：将管理员上传的学院课程目录表格解析为原始目录行。
//
// 格式约定：
//   - 取第一个工作表
//   - 首行为表头，列名与目录源字段一致：
//     course_code, course_name, group, day, time, venue, mooc
//   - 表头匹配不区分大小写，列顺序任意；venue/mooc 可缺省
//   - 空行跳过；此处不做内容校验（规范化阶段负责）
// ─────────────────────────────────────────────────────────────

// catalogColumns 必填表头列
var catalogRequiredColumns = []string{"course_code", "course_name", "group", "day", "time"}

// ParseCatalogXLSX 解析目录 XLSX 为原始目录行
func ParseCatalogXLSX(reader io.Reader, departmentID string) ([]model.CatalogRecord, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("XLSX 打开失败: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("XLSX 中没有工作表")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("读取工作表 %q 失败: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("工作表 %q 没有数据行", sheets[0])
	}

	// 表头 → 列索引
	colIndex := make(map[string]int)
	for i, header := range rows[0] {
		name := strings.ToLower(strings.TrimSpace(header))
		if name != "" {
			colIndex[name] = i
		}
	}
	for _, required := range catalogRequiredColumns {
		if _, ok := colIndex[required]; !ok {
			return nil, fmt.Errorf("表头缺少必填列 %q", required)
		}
	}

	cell := func(row []string, column string) string {
		idx, ok := colIndex[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	records := make([]model.CatalogRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		code := cell(row, "course_code")
		name := cell(row, "course_name")
		if code == "" && name == "" {
			continue // 空行
		}

		records = append(records, model.CatalogRecord{
			DepartmentID: departmentID,
			RowIndex:     i,
			CourseCode:   code,
			CourseName:   name,
			GroupName:    cell(row, "group"),
			DayCode:      cell(row, "day"),
			TimeText:     cell(row, "time"),
			Venue:        cell(row, "venue"),
			Mooc:         cell(row, "mooc"),
		})
	}

	return records, nil
}
