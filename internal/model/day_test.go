package model

import (
	"encoding/json"
	"testing"
)

func TestDay_String(t *testing.T) {
	tests := []struct {
		day  Day
		want string
	}{
		{Monday, "Monday"},
		{Sunday, "Sunday"},
		{Day(0), "Unknown"},
		{Day(8), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.day.String(); got != tt.want {
			t.Errorf("Day(%d).String() = %q, 期望 %q", tt.day, got, tt.want)
		}
	}
}

func TestDay_JSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(Wednesday)
	if err != nil {
		t.Fatalf("序列化失败: %v", err)
	}
	if string(data) != `"Wednesday"` {
		t.Errorf("序列化应为英文星期名, 实际 %s", data)
	}

	var d Day
	if err := json.Unmarshal(data, &d); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	if d != Wednesday {
		t.Errorf("反序列化结果 %v, 期望 Wednesday", d)
	}

	// 无法识别的名称解析为 0
	if err := json.Unmarshal([]byte(`"Someday"`), &d); err != nil {
		t.Fatalf("反序列化失败: %v", err)
	}
	if d.Valid() {
		t.Errorf("未知星期名不应解析为合法值, 实际 %v", d)
	}
}

func TestWeekDays_FullWeek(t *testing.T) {
	if len(WeekDays) != 7 {
		t.Fatalf("网格渲染顺序应覆盖完整一周, 实际 %d 天", len(WeekDays))
	}
	if WeekDays[0] != Monday || WeekDays[6] != Sunday {
		t.Errorf("渲染顺序应从周一到周日: %v", WeekDays)
	}
	for _, d := range WeekDays {
		if !d.Valid() {
			t.Errorf("WeekDays 含非法值 %v", d)
		}
	}
}

func TestCourse_SessionsOfGroup(t *testing.T) {
	course := Course{
		Code: "MPB1013",
		Sessions: []CourseSession{
			{GroupName: "A", Days: []Day{Monday}, StartTime: "09:00", EndTime: "11:00"},
			{GroupName: "B", Days: []Day{Tuesday}, StartTime: "14:00", EndTime: "16:00"},
			{GroupName: "A", Days: []Day{Thursday}, StartTime: "10:00", EndTime: "12:00"},
		},
	}

	groupA := course.SessionsOfGroup("A")
	if len(groupA) != 2 {
		t.Fatalf("A 组应有 2 个时段块, 实际 %d", len(groupA))
	}
	if groupA[0].Days[0] != Monday || groupA[1].Days[0] != Thursday {
		t.Errorf("A 组时段块顺序错误: %+v", groupA)
	}

	if got := course.SessionsOfGroup("Z"); len(got) != 0 {
		t.Errorf("不存在的分组应返回空, 实际 %+v", got)
	}
}
