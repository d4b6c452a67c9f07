package service

import "github.com/variablekhai/uum-timetable-planner/internal/model"

// ── 冲突检测 ──
//
// 时间均为补零 24 小时制 "HH:MM"，定宽格式下字典序比较与数值比较等价，
// 格式由 Normalizer 构造时保证，调用方不做二次校验。

// hasTimeOverlap 半开区间重叠判定：[s1,e1) 与 [s2,e2) 重叠
// 当且仅当 s1 < e2 且 e1 > s2。边界相接（e1 == s2）不算重叠。
func hasTimeOverlap(start1, end1, start2, end2 string) bool {
	return start1 < end2 && end1 > start2
}

// sharedDays 返回两个星期集合的交集（按 a 的顺序）
func sharedDays(a, b []model.Day) []model.Day {
	var shared []model.Day
	for _, d := range a {
		for _, e := range b {
			if d == e {
				shared = append(shared, d)
				break
			}
		}
	}
	return shared
}

// hasSessionClash 检查候选时段是否与已选时段集冲突
//
// 对每个已选时段：星期集合有交集且时间区间重叠即为冲突，短路返回。
// 判定对称：clash(A,B) == clash(B,A)。
func hasSessionClash(selection []model.SelectedSession, candidate model.CourseSession) bool {
	for _, sel := range selection {
		if len(sharedDays(sel.Days, candidate.Days)) == 0 {
			continue
		}
		if hasTimeOverlap(sel.StartTime, sel.EndTime, candidate.StartTime, candidate.EndTime) {
			return true
		}
	}
	return false
}
