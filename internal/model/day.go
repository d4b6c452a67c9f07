package model

import "encoding/json"

// Day 星期枚举（ISO 8601: 1=Monday … 7=Sunday）
type Day int

const (
	Monday Day = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// String 返回英文星期名（课表前端直接展示）
func (d Day) String() string {
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return dayNames[d]
}

// Valid 判断是否为合法星期值
func (d Day) Valid() bool {
	return d >= Monday && d <= Sunday
}

// MarshalJSON 以英文星期名输出（与原课表数据约定一致）
func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON 从英文星期名解析；无法识别的名称解析为 0
func (d *Day) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i := Monday; i <= Sunday; i++ {
		if dayNames[i] == s {
			*d = i
			return nil
		}
	}
	*d = 0
	return nil
}

// WeekDays 周网格渲染顺序（周一开始，含周六——目录字母表虽未映射周六，
// 但网格仍按完整一周渲染）
var WeekDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
