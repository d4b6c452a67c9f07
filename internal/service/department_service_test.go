package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/variablekhai/uum-timetable-planner/internal/dto"
	"github.com/variablekhai/uum-timetable-planner/internal/model"
)

func setupTestDepartmentService() (DepartmentService, *testRepos) {
	repos := newTestRepos()
	svc := NewDepartmentService(repos.toRepository(), zap.NewNop())
	return svc, repos
}

func TestDepartmentService_CreateAndGet(t *testing.T) {
	svc, _ := setupTestDepartmentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateDepartmentRequest{ID: "cas", Name: "College of Arts and Sciences"})
	if err != nil {
		t.Fatalf("创建学院失败: %v", err)
	}
	if created.DepartmentID != "cas" {
		t.Errorf("创建响应 ID 错误: %q", created.DepartmentID)
	}

	got, err := svc.Get(ctx, "cas")
	if err != nil {
		t.Fatalf("查询学院失败: %v", err)
	}
	if got.Name != "College of Arts and Sciences" {
		t.Errorf("学院名称错误: %q", got.Name)
	}

	// 代号冲突
	_, err = svc.Create(ctx, &dto.CreateDepartmentRequest{ID: "cas", Name: "重复"})
	if !errors.Is(err, ErrDepartmentExists) {
		t.Errorf("期望 ErrDepartmentExists, 实际 %v", err)
	}
}

func TestDepartmentService_List(t *testing.T) {
	svc, repos := setupTestDepartmentService()
	repos.dept.depts["cob"] = &model.Department{DepartmentID: "cob", Name: "College of Business"}
	repos.dept.depts["cas"] = &model.Department{DepartmentID: "cas", Name: "College of Arts and Sciences"}

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("查询列表失败: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("期望 2 个学院, 实际 %d", len(list))
	}
	if list[0].DepartmentID != "cas" || list[1].DepartmentID != "cob" {
		t.Errorf("列表应按代号排序: %s, %s", list[0].DepartmentID, list[1].DepartmentID)
	}
}

func TestDepartmentService_Update(t *testing.T) {
	svc, repos := setupTestDepartmentService()
	repos.dept.depts["cas"] = &model.Department{DepartmentID: "cas", Name: "旧名称"}

	newName := "College of Arts and Sciences"
	updated, err := svc.Update(context.Background(), "cas", &dto.UpdateDepartmentRequest{Name: &newName})
	if err != nil {
		t.Fatalf("更新学院失败: %v", err)
	}
	if updated.Name != newName {
		t.Errorf("更新后名称错误: %q", updated.Name)
	}

	if _, err := svc.Update(context.Background(), "nope", &dto.UpdateDepartmentRequest{Name: &newName}); !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("期望 ErrDepartmentNotFound, 实际 %v", err)
	}
}

func TestDepartmentService_Delete(t *testing.T) {
	svc, repos := setupTestDepartmentService()
	ctx := context.Background()
	seedCatalogRows(repos)

	// 尚有目录数据时拒绝删除
	if err := svc.Delete(ctx, "cas"); !errors.Is(err, ErrDepartmentHasCatalog) {
		t.Errorf("期望 ErrDepartmentHasCatalog, 实际 %v", err)
	}

	// 清空目录后可删除
	repos.catalog.records["cas"] = nil
	if err := svc.Delete(ctx, "cas"); err != nil {
		t.Fatalf("删除学院失败: %v", err)
	}
	if _, err := svc.Get(ctx, "cas"); !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("删除后查询应返回 ErrDepartmentNotFound, 实际 %v", err)
	}

	if err := svc.Delete(ctx, "nope"); !errors.Is(err, ErrDepartmentNotFound) {
		t.Errorf("期望 ErrDepartmentNotFound, 实际 %v", err)
	}
}
