package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/variablekhai/uum-timetable-planner/internal/model"
	"github.com/variablekhai/uum-timetable-planner/internal/repository"
)

// ── Mock DepartmentRepository ──

type mockDeptRepo struct {
	depts map[string]*model.Department
}

func newMockDeptRepo() *mockDeptRepo {
	return &mockDeptRepo{depts: make(map[string]*model.Department)}
}

func (m *mockDeptRepo) List(_ context.Context) ([]model.Department, error) {
	ids := make([]string, 0, len(m.depts))
	for id := range m.depts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	result := make([]model.Department, 0, len(ids))
	for _, id := range ids {
		result = append(result, *m.depts[id])
	}
	return result, nil
}

func (m *mockDeptRepo) GetByID(_ context.Context, id string) (*model.Department, error) {
	if d, ok := m.depts[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDeptRepo) Create(_ context.Context, dept *model.Department) error {
	m.depts[dept.DepartmentID] = dept
	return nil
}

func (m *mockDeptRepo) Update(_ context.Context, dept *model.Department) error {
	m.depts[dept.DepartmentID] = dept
	return nil
}

func (m *mockDeptRepo) Delete(_ context.Context, id string) error {
	delete(m.depts, id)
	return nil
}

// ── Mock CatalogRecordRepository ──

type mockCatalogRecordRepo struct {
	records map[string][]model.CatalogRecord // departmentID → rows
}

func newMockCatalogRecordRepo() *mockCatalogRecordRepo {
	return &mockCatalogRecordRepo{records: make(map[string][]model.CatalogRecord)}
}

func (m *mockCatalogRecordRepo) ListByDepartment(_ context.Context, departmentID string) ([]model.CatalogRecord, error) {
	rows := m.records[departmentID]
	result := make([]model.CatalogRecord, len(rows))
	copy(result, rows)
	sort.SliceStable(result, func(i, j int) bool { return result[i].RowIndex < result[j].RowIndex })
	return result, nil
}

func (m *mockCatalogRecordRepo) ReplaceByDepartment(_ context.Context, departmentID string, records []model.CatalogRecord) error {
	stored := make([]model.CatalogRecord, len(records))
	copy(stored, records)
	m.records[departmentID] = stored
	return nil
}

func (m *mockCatalogRecordRepo) DeleteByDepartment(_ context.Context, departmentID string) error {
	delete(m.records, departmentID)
	return nil
}

func (m *mockCatalogRecordRepo) CountByDepartment(_ context.Context, departmentID string) (int64, error) {
	return int64(len(m.records[departmentID])), nil
}

// ── 测试辅助 ──

// testRepos 聚合所有 mock repo 便于 seed 数据
type testRepos struct {
	dept    *mockDeptRepo
	catalog *mockCatalogRecordRepo
}

func newTestRepos() *testRepos {
	return &testRepos{
		dept:    newMockDeptRepo(),
		catalog: newMockCatalogRecordRepo(),
	}
}

func (r *testRepos) toRepository() *repository.Repository {
	return &repository.Repository{
		Department:    r.dept,
		CatalogRecord: r.catalog,
		Selection:     repository.NewMemorySelectionStore(time.Hour),
	}
}

// seedCatalogRows 种子数据：cas 学院 + 三门课五行目录
//
// MPB1013 两个分组（A 组周一周三上午，B 组周二下午），
// SQQS1013 单分组周五长课（上午跨入下午），
// SBLE1063 单分组周日下午。
func seedCatalogRows(repos *testRepos) {
	repos.dept.depts["cas"] = &model.Department{DepartmentID: "cas", Name: "College of Arts and Sciences"}
	repos.catalog.records["cas"] = []model.CatalogRecord{
		{DepartmentID: "cas", RowIndex: 0, CourseCode: "MPB1013", CourseName: "Management Principles", GroupName: "A", DayCode: "(IR)", TimeText: "9:00 - 11:00AM", Venue: "DKG 1/1", Mooc: "Yes"},
		{DepartmentID: "cas", RowIndex: 1, CourseCode: "MPB1013", CourseName: "Management Principles", GroupName: "B", DayCode: "(S)", TimeText: "2:00 - 4:00PM", Venue: "DKG 1/2", Mooc: "Yes"},
		{DepartmentID: "cas", RowIndex: 2, CourseCode: "SQQS1013", CourseName: "Elementary Statistics", GroupName: "A", DayCode: "(J)", TimeText: "9:00 - 1:00PM", Venue: "DKG 2/1", Mooc: "No"},
		{DepartmentID: "cas", RowIndex: 3, CourseCode: "SBLE1063", CourseName: "English Proficiency I", GroupName: "C", DayCode: "(A)", TimeText: "3:00 - 5:00PM", Venue: "DKG 3/3", Mooc: "No"},
	}
}
