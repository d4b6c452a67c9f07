package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/variablekhai/uum-timetable-planner/internal/model"
)

// ── 周网格几何 ──
//
// 渲染网格为固定的半小时槽位：08:00–19:00 共 22 槽。
// 规范化后的目录时间应当总是落在网格内且对齐半小时；
// 不满足时说明上游规范化有缺陷，这里立即报错而不是悄悄截断。

const (
	gridStartHour = 8
	gridEndHour   = 19
	gridSlotCount = (gridEndHour - gridStartHour) * 2 // 22
)

// GridTimeSlots 生成网格槽位起始时间标签（"08:00", "08:30", … "18:30"）
func GridTimeSlots() []string {
	slots := make([]string, 0, gridSlotCount)
	for i := 0; i < gridSlotCount; i++ {
		hour := gridStartHour + i/2
		minute := "00"
		if i%2 == 1 {
			minute = "30"
		}
		slots = append(slots, fmt.Sprintf("%02d:%s", hour, minute))
	}
	return slots
}

// slotOffset 将 "HH:MM" 转为网格槽位偏移
// 时间超出 08:00–19:00 或未对齐半小时视为上游缺陷，返回 error
func slotOffset(t string) (int, error) {
	kv := strings.SplitN(t, ":", 2)
	if len(kv) != 2 {
		return 0, fmt.Errorf("时间 %q 格式无效", t)
	}
	hour, err := strconv.Atoi(kv[0])
	if err != nil {
		return 0, fmt.Errorf("时间 %q 格式无效", t)
	}

	var half int
	switch kv[1] {
	case "00":
		half = 0
	case "30":
		half = 1
	default:
		return 0, fmt.Errorf("时间 %q 未对齐半小时槽位", t)
	}

	offset := (hour-gridStartHour)*2 + half
	if offset < 0 || offset > gridSlotCount {
		return 0, fmt.Errorf("时间 %q 超出网格范围 %02d:00–%02d:00", t, gridStartHour, gridEndHour)
	}
	return offset, nil
}

// SlotSpan 计算时间区间覆盖的半小时槽位数（用于行合并渲染）
func SlotSpan(startTime, endTime string) (int, error) {
	start, err := slotOffset(startTime)
	if err != nil {
		return 0, err
	}
	end, err := slotOffset(endTime)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// SessionAt 返回在 (星期, 槽位) 处活动的已选时段，不存在时返回 nil
// 槽位归属按半开区间判定：slot ∈ [start, end)
func SessionAt(selection []model.SelectedSession, day model.Day, slot string) *model.SelectedSession {
	for i := range selection {
		s := &selection[i]
		if !s.ContainsDay(day) {
			continue
		}
		if s.StartTime <= slot && slot < s.EndTime {
			return s
		}
	}
	return nil
}
