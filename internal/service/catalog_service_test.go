package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/variablekhai/uum-timetable-planner/config"
)

func setupTestCatalogService() (CatalogService, *testRepos) {
	repos := newTestRepos()
	seedCatalogRows(repos)
	cfg := &config.Config{
		Planner: config.PlannerConfig{ImportMaxBytes: 5 << 20},
	}
	svc := NewCatalogService(cfg, repos.toRepository(), zap.NewNop())
	return svc, repos
}

// buildCatalogXLSX 在内存中构造一份目录表格
func buildCatalogXLSX(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"course_code", "course_name", "group", "day", "time", "venue", "mooc"}
	if err := f.SetSheetRow("Sheet1", "A1", &header); err != nil {
		t.Fatalf("构造表头失败: %v", err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("构造数据行失败: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("序列化 XLSX 失败: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

// ════════════════════════════════════════════════════════════
// ListCourses 测试
// ════════════════════════════════════════════════════════════

func TestCatalogService_ListCourses(t *testing.T) {
	svc, _ := setupTestCatalogService()

	courses, err := svc.ListCourses(context.Background(), "cas", "")
	if err != nil {
		t.Fatalf("查询目录失败: %v", err)
	}
	if len(courses) != 3 {
		t.Fatalf("期望 3 门课程, 实际 %d", len(courses))
	}

	// 保持源文件行序
	if courses[0].Code != "MPB1013" || courses[1].Code != "SQQS1013" || courses[2].Code != "SBLE1063" {
		t.Errorf("课程顺序应保持源文件行序: %s, %s, %s",
			courses[0].Code, courses[1].Code, courses[2].Code)
	}
	if len(courses[0].Sessions) != 2 {
		t.Errorf("MPB1013 应有 2 个时段块, 实际 %d", len(courses[0].Sessions))
	}
}

func TestCatalogService_ListCourses_Search(t *testing.T) {
	svc, _ := setupTestCatalogService()
	ctx := context.Background()

	// 按课程代码（大小写不敏感）
	courses, err := svc.ListCourses(ctx, "cas", "mpb")
	if err != nil {
		t.Fatalf("查询目录失败: %v", err)
	}
	if len(courses) != 1 || courses[0].Code != "MPB1013" {
		t.Errorf("按代码搜索应命中 MPB1013, 实际 %+v", courses)
	}

	// 按课程名称
	courses, err = svc.ListCourses(ctx, "cas", "statistics")
	if err != nil {
		t.Fatalf("查询目录失败: %v", err)
	}
	if len(courses) != 1 || courses[0].Code != "SQQS1013" {
		t.Errorf("按名称搜索应命中 SQQS1013, 实际 %+v", courses)
	}

	// 无命中
	courses, err = svc.ListCourses(ctx, "cas", "不存在的关键词")
	if err != nil {
		t.Fatalf("查询目录失败: %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("无命中时应返回空列表, 实际 %d 条", len(courses))
	}
}

func TestCatalogService_ListCourses_DepartmentNotFound(t *testing.T) {
	svc, _ := setupTestCatalogService()

	_, err := svc.ListCourses(context.Background(), "nope", "")
	if !errors.Is(err, ErrCatalogDepartmentNotFound) {
		t.Errorf("期望 ErrCatalogDepartmentNotFound, 实际 %v", err)
	}
}

// ════════════════════════════════════════════════════════════
// ImportCatalog 测试
// ════════════════════════════════════════════════════════════

func TestCatalogService_ImportCatalog_ReplacesExisting(t *testing.T) {
	svc, repos := setupTestCatalogService()
	ctx := context.Background()

	reader := buildCatalogXLSX(t, [][]interface{}{
		{"NEW1013", "New Course", "A", "(I)", "9:00 - 11:00AM", "DKG 9/9", "No"},
	})

	result, err := svc.ImportCatalog(ctx, "cas", reader)
	if err != nil {
		t.Fatalf("导入失败: %v", err)
	}
	if result.ImportedCount != 1 || result.SkippedCount != 0 {
		t.Errorf("导入统计错误: %+v", result)
	}

	// 全量替换：旧目录被清空
	rows := repos.catalog.records["cas"]
	if len(rows) != 1 || rows[0].CourseCode != "NEW1013" {
		t.Errorf("导入应全量替换旧目录, 实际 %+v", rows)
	}
}

func TestCatalogService_ImportCatalog_ReportsSkipped(t *testing.T) {
	svc, _ := setupTestCatalogService()

	reader := buildCatalogXLSX(t, [][]interface{}{
		{"GOOD1013", "正常课程", "A", "(I)", "9:00 - 11:00AM", "", ""},
		{"BAD1013", "畸形课程", "A", "(XYZ)", "9:00 - 11:00AM", "", ""},
	})

	result, err := svc.ImportCatalog(context.Background(), "cas", reader)
	if err != nil {
		t.Fatalf("畸形行不应中断导入: %v", err)
	}
	if result.ImportedCount != 2 {
		t.Errorf("原始行全部入库, 期望 2, 实际 %d", result.ImportedCount)
	}
	if result.SkippedCount != 1 || len(result.Skipped) != 1 {
		t.Fatalf("期望 1 条跳过诊断, 实际 %+v", result)
	}
	if result.Skipped[0].CourseCode != "BAD1013" || result.Skipped[0].Reason == "" {
		t.Errorf("跳过诊断内容错误: %+v", result.Skipped[0])
	}
}

func TestCatalogService_ImportCatalog_Errors(t *testing.T) {
	svc, _ := setupTestCatalogService()
	ctx := context.Background()

	// 学院不存在
	reader := buildCatalogXLSX(t, [][]interface{}{
		{"X1013", "X", "A", "(I)", "9:00 - 11:00AM", "", ""},
	})
	if _, err := svc.ImportCatalog(ctx, "nope", reader); !errors.Is(err, ErrCatalogDepartmentNotFound) {
		t.Errorf("期望 ErrCatalogDepartmentNotFound, 实际 %v", err)
	}

	// 非 XLSX 内容
	if _, err := svc.ImportCatalog(ctx, "cas", bytes.NewReader([]byte("这不是表格"))); !errors.Is(err, ErrCatalogXLSXParseFailed) {
		t.Errorf("期望 ErrCatalogXLSXParseFailed, 实际 %v", err)
	}

	// 只有表头没有数据行
	if _, err := svc.ImportCatalog(ctx, "cas", buildCatalogXLSX(t, nil)); !errors.Is(err, ErrCatalogXLSXParseFailed) {
		t.Errorf("空表应解析失败, 实际 %v", err)
	}
}

// ════════════════════════════════════════════════════════════
// ClearCatalog 测试
// ════════════════════════════════════════════════════════════

func TestCatalogService_ClearCatalog(t *testing.T) {
	svc, repos := setupTestCatalogService()
	ctx := context.Background()

	if err := svc.ClearCatalog(ctx, "cas"); err != nil {
		t.Fatalf("清空目录失败: %v", err)
	}
	if len(repos.catalog.records["cas"]) != 0 {
		t.Error("清空后目录应为空")
	}

	if err := svc.ClearCatalog(ctx, "nope"); !errors.Is(err, ErrCatalogDepartmentNotFound) {
		t.Errorf("期望 ErrCatalogDepartmentNotFound, 实际 %v", err)
	}
}
