package dto

// ── 课程目录查询 ──

// ListCoursesRequest 课程目录查询参数
type ListCoursesRequest struct {
	Search string `form:"search" binding:"omitempty,max=100"`
}

// SessionResponse 课程分组时段块响应
type SessionResponse struct {
	Group     string   `json:"group"`
	Days      []string `json:"days"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
}

// CourseResponse 规范化课程响应
type CourseResponse struct {
	ID       string            `json:"id"`
	Code     string            `json:"code"`
	Name     string            `json:"course_name"`
	Venue    string            `json:"venue"`
	Mooc     string            `json:"mooc"`
	Sessions []SessionResponse `json:"sessions"`
}

// ── 目录导入 ──

// SkippedRecordInfo 导入/规范化中被跳过的畸形行
type SkippedRecordInfo struct {
	CourseCode string `json:"course_code"`
	Group      string `json:"group"`
	Reason     string `json:"reason"`
}

// ImportCatalogResponse 目录导入响应
type ImportCatalogResponse struct {
	ImportedCount int                 `json:"imported_count"`
	SkippedCount  int                 `json:"skipped_count"`
	Skipped       []SkippedRecordInfo `json:"skipped,omitempty"`
}
