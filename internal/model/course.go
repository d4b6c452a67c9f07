package model

// ── 规范化后的课程目录（内存结构，规范化后只读） ──

// CourseSession 课程分组的一个时段块
//
// 不变量：
//   - Days 为有序去重集合，保持目录行中首次出现的顺序
//   - StartTime/EndTime 为补零的 24 小时制 "HH:MM"，构造时统一格式化，
//     因此可直接按字典序比较（见 clash 检测）
//   - 同日内 StartTime < EndTime（目录不存在跨夜课）
type CourseSession struct {
	GroupName string `json:"group"`
	Days      []Day  `json:"days"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// ContainsDay 判断时段是否覆盖指定星期
func (s CourseSession) ContainsDay(d Day) bool {
	for _, day := range s.Days {
		if day == d {
			return true
		}
	}
	return false
}

// Course 规范化后的课程（按 course_code 聚合）
//
// 同一 code 的所有目录行归入一门课程；课程元数据（名称/地点/MOOC）
// 取首次出现的行，后续行仅追加时段。
type Course struct {
	ID       string          `json:"id"` // lowercase(code)
	Code     string          `json:"code"`
	Name     string          `json:"course_name"`
	Venue    string          `json:"venue"`
	Mooc     string          `json:"mooc"`
	Sessions []CourseSession `json:"sessions"`
}

// SessionsOfGroup 返回指定分组的全部时段块（一个分组可能有多个不相邻的时段）
func (c Course) SessionsOfGroup(group string) []CourseSession {
	var result []CourseSession
	for _, s := range c.Sessions {
		if s.GroupName == group {
			result = append(result, s)
		}
	}
	return result
}

// ── 学生选课（规划会话内的临时状态） ──

// SelectedSession 已选时段：课程元数据 + 选中分组的单个时段块展开
//
// 不变量：同一 CourseCode 在一次选课中只能选一个分组；
// 该分组有多个时段块时会产生多条 SelectedSession 记录。
type SelectedSession struct {
	CourseCode    string `json:"course_code"`
	CourseName    string `json:"course_name"`
	Venue         string `json:"venue"`
	Mooc          string `json:"mooc"`
	SelectedGroup string `json:"selected_group"`
	Days          []Day  `json:"days"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
}

// ContainsDay 判断已选时段是否覆盖指定星期
func (s SelectedSession) ContainsDay(d Day) bool {
	for _, day := range s.Days {
		if day == d {
			return true
		}
	}
	return false
}
