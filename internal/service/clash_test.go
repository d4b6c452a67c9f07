package service

import (
	"testing"

	"github.com/variablekhai/uum-timetable-planner/internal/model"
)

func TestHasTimeOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       bool
	}{
		{"完全重叠", "09:00", "11:00", "09:00", "11:00", true},
		{"部分重叠", "09:00", "10:30", "10:00", "11:00", true},
		{"包含关系", "09:00", "13:00", "10:00", "11:00", true},
		{"边界相接不算重叠", "09:00", "10:00", "10:00", "11:00", false},
		{"完全分离", "08:00", "09:00", "14:00", "16:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hasTimeOverlap(tt.start1, tt.end1, tt.start2, tt.end2)
			if got != tt.want {
				t.Errorf("hasTimeOverlap(%s-%s, %s-%s) = %v, 期望 %v",
					tt.start1, tt.end1, tt.start2, tt.end2, got, tt.want)
			}
			// 判定对称
			reversed := hasTimeOverlap(tt.start2, tt.end2, tt.start1, tt.end1)
			if got != reversed {
				t.Errorf("重叠判定应对称: 正向 %v, 反向 %v", got, reversed)
			}
		})
	}
}

func TestSharedDays(t *testing.T) {
	a := []model.Day{model.Monday, model.Wednesday}
	b := []model.Day{model.Wednesday, model.Friday}

	shared := sharedDays(a, b)
	if len(shared) != 1 || shared[0] != model.Wednesday {
		t.Errorf("sharedDays = %v, 期望 [Wednesday]", shared)
	}

	if got := sharedDays(a, []model.Day{model.Friday}); len(got) != 0 {
		t.Errorf("无交集时应为空, 实际 %v", got)
	}
}

func TestHasSessionClash(t *testing.T) {
	selection := []model.SelectedSession{
		{
			CourseCode: "MPB1013",
			Days:       []model.Day{model.Monday, model.Wednesday},
			StartTime:  "09:00",
			EndTime:    "11:00",
		},
	}

	tests := []struct {
		name      string
		candidate model.CourseSession
		want      bool
	}{
		{
			"同星期时间重叠",
			model.CourseSession{Days: []model.Day{model.Monday}, StartTime: "10:00", EndTime: "12:00"},
			true,
		},
		{
			"同星期边界相接",
			model.CourseSession{Days: []model.Day{model.Monday}, StartTime: "11:00", EndTime: "13:00"},
			false,
		},
		{
			"时间重叠但星期不交",
			model.CourseSession{Days: []model.Day{model.Friday}, StartTime: "09:00", EndTime: "11:00"},
			false,
		},
		{
			"多星期中仅一天相交即冲突",
			model.CourseSession{Days: []model.Day{model.Friday, model.Wednesday}, StartTime: "10:30", EndTime: "12:30"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasSessionClash(selection, tt.candidate); got != tt.want {
				t.Errorf("hasSessionClash = %v, 期望 %v", got, tt.want)
			}
		})
	}
}

func TestHasSessionClash_EmptySelection(t *testing.T) {
	candidate := model.CourseSession{Days: []model.Day{model.Monday}, StartTime: "09:00", EndTime: "11:00"}
	if hasSessionClash(nil, candidate) {
		t.Error("空选课不应有冲突")
	}
}
