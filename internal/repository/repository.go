package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Department    DepartmentRepository
	CatalogRecord CatalogRecordRepository
	Selection     SelectionStore
}

// NewRepository 创建 Repository 聚合
// selections 由调用方按运行环境注入（Redis 可用时为 Redis 实现，否则内存实现）
func NewRepository(db *gorm.DB, selections SelectionStore) *Repository {
	return &Repository{
		Department:    NewDepartmentRepo(db),
		CatalogRecord: NewCatalogRecordRepo(db),
		Selection:     selections,
	}
}
