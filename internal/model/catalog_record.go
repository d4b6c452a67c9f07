package model

// CatalogRecord 原始课程目录行 — 对应 catalog_records
//
// 每行是"课程 × 分组 × 时段"的一条原始记录，字段保持目录源格式：
//   - DayCode: 单字母星期编码，可能带括号，如 "(IK)"
//   - TimeText: 自由格式 "H:MM - H:MMXX"，仅结束时间带 AM/PM 标记
//
// 规范化（解码、推断、分组）在读取时由 Normalizer 完成，入库不做清洗。
type CatalogRecord struct {
	CatalogRecordID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"catalog_record_id"`
	DepartmentID    string `gorm:"type:varchar(32);not null;index"                json:"department_id"`
	RowIndex        int    `gorm:"not null;default:0"                             json:"row_index"` // 源文件行序，规范化分组依赖首见顺序
	CourseCode      string `gorm:"type:varchar(20);not null"                      json:"course_code"`
	CourseName      string `gorm:"type:varchar(200);not null"                     json:"course_name"`
	GroupName       string `gorm:"type:varchar(10);not null;column:group_name"    json:"group"`
	DayCode         string `gorm:"type:varchar(20)"                               json:"day"`
	TimeText        string `gorm:"type:varchar(40);column:time_text"              json:"time"`
	Venue           string `gorm:"type:varchar(100)"                              json:"venue"`
	Mooc            string `gorm:"type:varchar(100)"                              json:"mooc"`
	BaseModel

	// 关联
	Department *Department `gorm:"foreignKey:DepartmentID;references:DepartmentID" json:"department,omitempty"`
}

// TableName 指定表名
func (CatalogRecord) TableName() string { return "catalog_records" }
