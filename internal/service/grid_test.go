package service

import (
	"testing"

	"github.com/variablekhai/uum-timetable-planner/internal/model"
)

func TestGridTimeSlots(t *testing.T) {
	slots := GridTimeSlots()

	if len(slots) != 22 {
		t.Fatalf("网格应有 22 个半小时槽位, 实际 %d", len(slots))
	}
	if slots[0] != "08:00" {
		t.Errorf("首槽位应为 08:00, 实际 %s", slots[0])
	}
	if slots[1] != "08:30" {
		t.Errorf("第二槽位应为 08:30, 实际 %s", slots[1])
	}
	if slots[21] != "18:30" {
		t.Errorf("末槽位应为 18:30, 实际 %s", slots[21])
	}
}

func TestSlotSpan(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"08:00", "09:30", 3},
		{"09:00", "11:00", 4},
		{"08:00", "08:00", 0},
		{"08:00", "19:00", 22}, // 整网格
		{"18:30", "19:00", 1},
	}

	for _, tt := range tests {
		got, err := SlotSpan(tt.start, tt.end)
		if err != nil {
			t.Errorf("SlotSpan(%s, %s) 意外失败: %v", tt.start, tt.end, err)
			continue
		}
		if got != tt.want {
			t.Errorf("SlotSpan(%s, %s) = %d, 期望 %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestSlotSpan_Errors(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
	}{
		{"起始早于网格", "07:30", "09:00"},
		{"结束晚于网格", "18:00", "19:30"},
		{"未对齐半小时", "09:15", "10:00"},
		{"格式无效", "瞎填", "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SlotSpan(tt.start, tt.end); err == nil {
				t.Errorf("SlotSpan(%s, %s) 应当返回错误", tt.start, tt.end)
			}
		})
	}
}

func TestSessionAt(t *testing.T) {
	selection := []model.SelectedSession{
		{
			CourseCode: "MPB1013",
			Days:       []model.Day{model.Monday},
			StartTime:  "09:00",
			EndTime:    "11:00",
		},
	}

	// 起始槽位命中
	if s := SessionAt(selection, model.Monday, "09:00"); s == nil || s.CourseCode != "MPB1013" {
		t.Error("起始槽位应命中已选时段")
	}
	// 中间槽位命中
	if s := SessionAt(selection, model.Monday, "10:30"); s == nil {
		t.Error("区间内槽位应命中已选时段")
	}
	// 半开区间：结束槽位不命中
	if s := SessionAt(selection, model.Monday, "11:00"); s != nil {
		t.Error("结束槽位不应命中（半开区间）")
	}
	// 星期不符不命中
	if s := SessionAt(selection, model.Tuesday, "09:00"); s != nil {
		t.Error("其他星期不应命中")
	}
	// 起始前不命中
	if s := SessionAt(selection, model.Monday, "08:30"); s != nil {
		t.Error("起始前槽位不应命中")
	}
}
