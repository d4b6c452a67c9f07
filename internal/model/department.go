package model

// Department 学院/部门表 — 对应 departments
// ID 为短代号（如 "cas" = College of Arts and Sciences），由管理员创建时指定
type Department struct {
	DepartmentID string `gorm:"type:varchar(32);primaryKey" json:"department_id"`
	Name         string `gorm:"type:varchar(100);not null"  json:"name"`
	SoftDeleteModel
}

// TableName 指定表名
func (Department) TableName() string { return "departments" }
