package service

import (
	"math"
	"strconv"
	"time"

	"github.com/jadwalku/internal/db"
	"github.com/jadwalku/internal/locale"
)

// WeekStats 汇总整份日程集合的概览统计
// 全部为展示用数值，不参与任何控制决策
type WeekStats struct {
	TotalDays           int
	TotalActivities     int
	CompletedActivities int
	// Productivity 为完成率百分比，四舍五入取整，无活动时为 0
	Productivity int
	// AveragePerDay 保留一位小数，无日程时为 "0.0"
	AveragePerDay string
	// MostActiveDay 指向活动数最多的日程，相同取最先出现的一条
	MostActiveDay *db.DaySchedule
}

// ComputeWeekStats 对当前快照做一次完整的统计归约
func ComputeWeekStats(days []db.DaySchedule) WeekStats {
	stats := WeekStats{
		TotalDays:     len(days),
		AveragePerDay: "0.0",
	}

	for i := range days {
		stats.TotalActivities += len(days[i].Schedules)
		for _, item := range days[i].Schedules {
			if item.Completed {
				stats.CompletedActivities++
			}
		}
	}

	if stats.TotalActivities > 0 {
		stats.Productivity = roundPercent(stats.CompletedActivities, stats.TotalActivities)
	}

	if stats.TotalDays > 0 {
		average := float64(stats.TotalActivities) / float64(stats.TotalDays)
		stats.AveragePerDay = strconv.FormatFloat(average, 'f', 1, 64)
	}

	for i := range days {
		if stats.MostActiveDay == nil || len(days[i].Schedules) > len(stats.MostActiveDay.Schedules) {
			stats.MostActiveDay = &days[i]
		}
	}

	return stats
}

// DayCompletionPercent 计算单日完成率百分比，当日无活动时为 0
func DayCompletionPercent(day db.DaySchedule) int {
	if len(day.Schedules) == 0 {
		return 0
	}

	completed := 0
	for _, item := range day.Schedules {
		if item.Completed {
			completed++
		}
	}

	return roundPercent(completed, len(day.Schedules))
}

// TodayActivityCount 返回今天这一条日程的活动数
// 用创建端同款格式化串做精确匹配，没有命中时静默返回 0
func TodayActivityCount(days []db.DaySchedule, now time.Time) int {
	today := locale.FormatDate(now)
	for i := range days {
		if days[i].Date == today {
			return len(days[i].Schedules)
		}
	}
	return 0
}

func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
