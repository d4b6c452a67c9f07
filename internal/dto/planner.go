package dto

// ── 选课 ──

// SelectCourseRequest 选课请求：指定课程与分组
type SelectCourseRequest struct {
	DepartmentID string `json:"department_id" binding:"required,max=32"`
	CourseCode   string `json:"course_code" binding:"required,max=20"`
	Group        string `json:"group" binding:"required,max=10"`
}

// SelectedSessionResponse 已选时段响应
type SelectedSessionResponse struct {
	CourseCode    string   `json:"course_code"`
	CourseName    string   `json:"course_name"`
	Venue         string   `json:"venue"`
	Mooc          string   `json:"mooc"`
	SelectedGroup string   `json:"selected_group"`
	Days          []string `json:"days"`
	StartTime     string   `json:"start_time"`
	EndTime       string   `json:"end_time"`
}

// SelectionResponse 当前选课列表响应
type SelectionResponse struct {
	Sessions []SelectedSessionResponse `json:"sessions"`
}

// ── 周网格 ──

// GridCellResponse 网格单元：该 (星期, 槽位) 处活动的已选时段
// IsStart 为 true 表示该槽位是时段起点（渲染时在此绘制跨行块）
type GridCellResponse struct {
	CourseCode string `json:"course_code"`
	CourseName string `json:"course_name"`
	Group      string `json:"group"`
	Venue      string `json:"venue"`
	Span       int    `json:"span"`
	IsStart    bool   `json:"is_start"`
}

// WeekGridResponse 周网格响应
// Cells[slot][day]：22 行（半小时槽位）× 7 列（周一至周日），空槽为 null
type WeekGridResponse struct {
	Days      []string              `json:"days"`
	TimeSlots []string              `json:"time_slots"`
	Cells     [][]*GridCellResponse `json:"cells"`
}
