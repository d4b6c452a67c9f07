package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/variablekhai/uum-timetable-planner/internal/model"
)

// CatalogRecordRepository 原始目录行数据访问接口
type CatalogRecordRepository interface {
	// ListByDepartment 按源文件行序返回某学院的全部目录行
	// （规范化的课程聚合依赖首见顺序，排序必须稳定）
	ListByDepartment(ctx context.Context, departmentID string) ([]model.CatalogRecord, error)
	// ReplaceByDepartment 在事务中全量替换学院目录：先删除旧行，再批量插入新行
	ReplaceByDepartment(ctx context.Context, departmentID string, records []model.CatalogRecord) error
	DeleteByDepartment(ctx context.Context, departmentID string) error
	CountByDepartment(ctx context.Context, departmentID string) (int64, error)
}

type catalogRecordRepo struct {
	db *gorm.DB
}

// NewCatalogRecordRepo 创建 CatalogRecordRepository 实例
func NewCatalogRecordRepo(db *gorm.DB) CatalogRecordRepository {
	return &catalogRecordRepo{db: db}
}

func (r *catalogRecordRepo) ListByDepartment(ctx context.Context, departmentID string) ([]model.CatalogRecord, error) {
	var records []model.CatalogRecord
	err := r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Order("row_index ASC").
		Find(&records).Error
	return records, err
}

func (r *catalogRecordRepo) ReplaceByDepartment(ctx context.Context, departmentID string, records []model.CatalogRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("department_id = ?", departmentID).
			Delete(&model.CatalogRecord{}).Error; err != nil {
			return err
		}
		if len(records) > 0 {
			if err := tx.CreateInBatches(&records, 200).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *catalogRecordRepo) DeleteByDepartment(ctx context.Context, departmentID string) error {
	return r.db.WithContext(ctx).
		Where("department_id = ?", departmentID).
		Delete(&model.CatalogRecord{}).Error
}

func (r *catalogRecordRepo) CountByDepartment(ctx context.Context, departmentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CatalogRecord{}).
		Where("department_id = ?", departmentID).
		Count(&count).Error
	return count, err
}
