package service

import (
	"testing"
	"time"

	"github.com/jadwalku/internal/db"
	"github.com/jadwalku/internal/locale"
)

func TestComputeWeekStats(t *testing.T) {
	days := []db.DaySchedule{
		{
			ID:  "1",
			Day: "Senin", Date: "5 Januari 2026",
			Schedules: []db.Schedule{
				{Activity: "Standup", Completed: true},
				{Activity: "Review", Completed: true},
				{Activity: "Belajar Go", Completed: false},
			},
		},
		{
			ID:  "2",
			Day: "Selasa", Date: "6 Januari 2026",
			Schedules: []db.Schedule{
				{Activity: "Olahraga pagi", Completed: false},
			},
		},
	}

	stats := ComputeWeekStats(days)

	if stats.TotalDays != 2 {
		t.Fatalf("expected 2 days, got %d", stats.TotalDays)
	}
	if stats.TotalActivities != 4 {
		t.Fatalf("expected 4 activities, got %d", stats.TotalActivities)
	}
	if stats.CompletedActivities != 2 {
		t.Fatalf("expected 2 completed, got %d", stats.CompletedActivities)
	}
	if stats.Productivity != 50 {
		t.Fatalf("expected productivity 50, got %d", stats.Productivity)
	}
	if stats.AveragePerDay != "2.0" {
		t.Fatalf("expected average %q, got %q", "2.0", stats.AveragePerDay)
	}
	if stats.MostActiveDay == nil || stats.MostActiveDay.ID != "1" {
		t.Fatalf("expected day 1 as most active, got %v", stats.MostActiveDay)
	}
}

func TestComputeWeekStatsEmpty(t *testing.T) {
	stats := ComputeWeekStats(nil)

	// 除零保护：空集合下不 panic，给出展示用的零值
	if stats.Productivity != 0 {
		t.Fatalf("expected productivity 0, got %d", stats.Productivity)
	}
	if stats.AveragePerDay != "0.0" {
		t.Fatalf("expected average %q, got %q", "0.0", stats.AveragePerDay)
	}
	if stats.MostActiveDay != nil {
		t.Fatal("expected no most active day")
	}
}

func TestComputeWeekStatsMostActiveTieBreak(t *testing.T) {
	days := []db.DaySchedule{
		{ID: "1", Schedules: []db.Schedule{{}, {}}},
		{ID: "2", Schedules: []db.Schedule{{}, {}}},
	}

	stats := ComputeWeekStats(days)

	// 相同活动数时保留最先出现的一条
	if stats.MostActiveDay == nil || stats.MostActiveDay.ID != "1" {
		t.Fatalf("expected first day to win the tie, got %v", stats.MostActiveDay)
	}
}

func TestComputeWeekStatsRounding(t *testing.T) {
	days := []db.DaySchedule{
		{Schedules: []db.Schedule{
			{Completed: true},
			{Completed: false},
			{Completed: false},
		}},
	}

	stats := ComputeWeekStats(days)
	if stats.Productivity != 33 {
		t.Fatalf("expected productivity 33, got %d", stats.Productivity)
	}

	days[0].Schedules[1].Completed = true
	stats = ComputeWeekStats(days)
	if stats.Productivity != 67 {
		t.Fatalf("expected productivity 67, got %d", stats.Productivity)
	}
}

func TestDayCompletionPercent(t *testing.T) {
	if got := DayCompletionPercent(db.DaySchedule{}); got != 0 {
		t.Fatalf("expected 0 for empty day, got %d", got)
	}

	day := db.DaySchedule{Schedules: []db.Schedule{
		{Completed: true},
		{Completed: true},
		{Completed: false},
		{Completed: false},
	}}
	if got := DayCompletionPercent(day); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestTodayActivityCount(t *testing.T) {
	now := time.Date(2026, 1, 5, 15, 30, 0, 0, time.Local)

	days := []db.DaySchedule{
		{Date: "4 Januari 2026", Schedules: []db.Schedule{{}}},
		{Date: locale.FormatDate(now), Schedules: []db.Schedule{{}, {}, {}}},
	}

	if got := TodayActivityCount(days, now); got != 3 {
		t.Fatalf("expected 3 activities today, got %d", got)
	}

	// 日期串不匹配时静默返回 0
	if got := TodayActivityCount(days, now.AddDate(0, 0, 1)); got != 0 {
		t.Fatalf("expected 0 on mismatch, got %d", got)
	}
	if got := TodayActivityCount(nil, now); got != 0 {
		t.Fatalf("expected 0 for empty collection, got %d", got)
	}
}
