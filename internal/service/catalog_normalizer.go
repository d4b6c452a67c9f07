package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/variablekhai/uum-timetable-planner/internal/model"
)

// ── 课程目录规范化器 ────────────────────────────────────────
//
// 职责：将原始目录行（单字母星期编码 + 起始时间无 AM/PM 标记的
// 12 小时制时间段）规范化为按 course_code 聚合的课程列表。
//
// 设计决策：
//   - 纯函数，无共享状态：聚合器为局部有序映射，调用结束即返回
//   - 起始时间 AM/PM 由启发式推断（见 inferStartModifier），该规则
//     来自目录数据的既有约定，必须原样保留以保证同输入同输出
//   - 畸形行跳过并产出诊断记录，绝不中断整批处理
//   - 一行的多个星期字母折叠进同一个时段块的 Days 集合
// ─────────────────────────────────────────────────────────────

// dayCodeTable 星期字母编码表。
// 注意：目录源数据中没有映射到周六的字母，这是上游编码的已知空缺，
// 此处按原样保留，不做猜测性补全。
var dayCodeTable = map[rune]model.Day{
	'I': model.Monday,
	'S': model.Tuesday,
	'R': model.Wednesday,
	'K': model.Thursday,
	'J': model.Friday,
	'A': model.Sunday,
}

// SkippedRecord 规范化中被跳过的畸形行诊断
type SkippedRecord struct {
	CourseCode string
	GroupName  string
	Reason     string
}

// NormalizeCatalog 将原始目录行规范化为课程列表
//
// 返回值：
//   - courses: 按 course_code 聚合的课程，保持首次出现顺序；
//     课程元数据取该 code 首行，后续行仅追加时段
//   - skipped: 被跳过的畸形行（缺失字段、无法解码星期、时间不可解析）
func NormalizeCatalog(records []model.CatalogRecord) ([]model.Course, []SkippedRecord) {
	courseIndex := make(map[string]int)
	courses := make([]model.Course, 0, len(records))
	var skipped []SkippedRecord

	for _, rec := range records {
		session, err := normalizeSession(rec)
		if err != nil {
			skipped = append(skipped, SkippedRecord{
				CourseCode: rec.CourseCode,
				GroupName:  rec.GroupName,
				Reason:     err.Error(),
			})
			continue
		}

		idx, ok := courseIndex[rec.CourseCode]
		if !ok {
			courses = append(courses, model.Course{
				ID:    strings.ToLower(rec.CourseCode),
				Code:  rec.CourseCode,
				Name:  rec.CourseName,
				Venue: rec.Venue,
				Mooc:  rec.Mooc,
			})
			idx = len(courses) - 1
			courseIndex[rec.CourseCode] = idx
		}
		courses[idx].Sessions = append(courses[idx].Sessions, session)
	}

	return courses, skipped
}

// normalizeSession 将单行目录记录转为规范化时段块
func normalizeSession(rec model.CatalogRecord) (model.CourseSession, error) {
	days := decodeDayCodes(rec.DayCode)
	if len(days) == 0 {
		return model.CourseSession{}, fmt.Errorf("星期编码 %q 无法解码出任何星期", rec.DayCode)
	}

	startTime, endTime, err := normalizeTimeRange(rec.TimeText)
	if err != nil {
		return model.CourseSession{}, err
	}

	return model.CourseSession{
		GroupName: rec.GroupName,
		Days:      days,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// decodeDayCodes 解码星期字母串
// 去除括号后逐字母查表；未知字母静默丢弃；去重并保持首见顺序
func decodeDayCodes(dayCode string) []model.Day {
	cleaned := strings.NewReplacer("(", "", ")", "").Replace(dayCode)

	var days []model.Day
	seen := make(map[model.Day]bool)
	for _, r := range strings.ToUpper(cleaned) {
		day, ok := dayCodeTable[r]
		if !ok || seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days
}

// normalizeTimeRange 解析 "H:MM - H:MMXX" 为补零 24 小时制区间
func normalizeTimeRange(timeText string) (string, string, error) {
	parts := strings.SplitN(timeText, " - ", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("时间段 %q 缺少 \" - \" 分隔的起止片段", timeText)
	}
	startFrag := strings.TrimSpace(parts[0])
	endFrag := strings.TrimSpace(parts[1])
	if startFrag == "" || endFrag == "" {
		return "", "", fmt.Errorf("时间段 %q 起止片段不完整", timeText)
	}

	// 结束片段显式携带 AM/PM；缺失标记时按目录约定视为 AM
	endModifier := "AM"
	if strings.Contains(endFrag, "PM") {
		endModifier = "PM"
	}
	cleanEnd := strings.TrimSpace(strings.NewReplacer("AM", "", "PM", "").Replace(endFrag))

	startHour, startMinute, err := parseClock(startFrag)
	if err != nil {
		return "", "", fmt.Errorf("起始时间 %q 不可解析: %w", startFrag, err)
	}
	endHour, endMinute, err := parseClock(cleanEnd)
	if err != nil {
		return "", "", fmt.Errorf("结束时间 %q 不可解析: %w", endFrag, err)
	}

	startModifier := inferStartModifier(endModifier, startHour)

	startTime := to24Hour(startHour, startMinute, startModifier)
	endTime := to24Hour(endHour, endMinute, endModifier)

	// 同日不变量：规范化后起始必须早于结束（目录无跨夜课）
	if startTime >= endTime {
		return "", "", fmt.Errorf("时间段 %q 规范化后起始不早于结束 (%s - %s)", timeText, startTime, endTime)
	}

	return startTime, endTime, nil
}

// inferStartModifier 推断起始时间的 AM/PM
//
// 目录源只在结束时间标注 AM/PM，起始时间按以下既有约定推断：
//   - 结束为 AM：起始必为 AM（该目录不存在 PM 起 AM 止的课）
//   - 结束为 PM：
//     1–6 点起  → PM（下午/傍晚短课，如 1:00–3:00 PM）
//     7–11 点起 → AM（上午起跨入下午的长课，如 9:00–1:00 PM）
//     12 点起   → PM（正午开始）
//
// 这是假设课程时长不超过约半天的启发式，不是精确解析；
// 历史数据依赖此分类结果，不要"修正"其不对称性。
func inferStartModifier(endModifier string, startHour int) string {
	if endModifier == "AM" {
		return "AM"
	}
	switch {
	case startHour >= 1 && startHour <= 6:
		return "PM"
	case startHour >= 7 && startHour <= 11:
		return "AM"
	default: // startHour == 12
		return "PM"
	}
}

// parseClock 解析 12 小时制 "H:MM" 片段
func parseClock(frag string) (hour, minute int, err error) {
	kv := strings.SplitN(strings.TrimSpace(frag), ":", 2)
	if len(kv) != 2 {
		return 0, 0, fmt.Errorf("缺少 \":\" 分隔")
	}
	hour, err = strconv.Atoi(strings.TrimSpace(kv[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("小时无效: %w", err)
	}
	minute, err = strconv.Atoi(strings.TrimSpace(kv[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("分钟无效: %w", err)
	}
	if hour < 1 || hour > 12 {
		return 0, 0, fmt.Errorf("小时 %d 超出 1-12", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("分钟 %d 超出 0-59", minute)
	}
	return hour, minute, nil
}

// to24Hour 12 小时制转补零 24 小时制 "HH:MM"
// 标准规则：12 AM → 00，12 PM → 12，其余 PM 加 12
func to24Hour(hour, minute int, modifier string) string {
	if modifier == "PM" && hour != 12 {
		hour += 12
	} else if modifier == "AM" && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
