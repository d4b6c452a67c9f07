package dto

// CreateDepartmentRequest 创建学院请求
// ID 为短代号（如 "cas"），作为目录表的外键与前端路由标识
type CreateDepartmentRequest struct {
	ID   string `json:"id" binding:"required,min=2,max=32,alphanum"`
	Name string `json:"name" binding:"required,max=100"`
}

// UpdateDepartmentRequest 更新学院请求
type UpdateDepartmentRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

// DepartmentResponse 学院响应
type DepartmentResponse struct {
	DepartmentID string `json:"department_id"`
	Name         string `json:"name"`
}
