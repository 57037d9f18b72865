package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jadwalku/internal/service"
)

type statsDay struct {
	ID                  string `json:"id"`
	Day                 string `json:"day"`
	Date                string `json:"date"`
	TotalActivities     int    `json:"totalActivities"`
	CompletedActivities int    `json:"completedActivities"`
	CompletionPercent   int    `json:"completionPercent"`
}

type mostActiveDay struct {
	ID            string `json:"id"`
	Day           string `json:"day"`
	ActivityCount int    `json:"activityCount"`
}

type statsPayload struct {
	TotalDays           int            `json:"totalDays"`
	TotalActivities     int            `json:"totalActivities"`
	CompletedActivities int            `json:"completedActivities"`
	Productivity        int            `json:"productivity"`
	AveragePerDay       string         `json:"averagePerDay"`
	MostActiveDay       *mostActiveDay `json:"mostActiveDay"`
	TodayActivityCount  int            `json:"todayActivityCount"`
	Days                []statsDay     `json:"days"`
}

// GetStats 基于当前全量日程返回概览统计
// 每次请求现算，不做任何缓存
func (a *API) GetStats(c *gin.Context) {
	days, err := a.schedules.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch schedules")
		return
	}

	stats := service.ComputeWeekStats(days)

	payload := statsPayload{
		TotalDays:           stats.TotalDays,
		TotalActivities:     stats.TotalActivities,
		CompletedActivities: stats.CompletedActivities,
		Productivity:        stats.Productivity,
		AveragePerDay:       stats.AveragePerDay,
		TodayActivityCount:  service.TodayActivityCount(days, time.Now()),
		Days:                make([]statsDay, 0, len(days)),
	}

	if stats.MostActiveDay != nil {
		payload.MostActiveDay = &mostActiveDay{
			ID:            stats.MostActiveDay.ID,
			Day:           stats.MostActiveDay.Day,
			ActivityCount: len(stats.MostActiveDay.Schedules),
		}
	}

	for _, day := range days {
		completed := 0
		for _, item := range day.Schedules {
			if item.Completed {
				completed++
			}
		}
		payload.Days = append(payload.Days, statsDay{
			ID:                  day.ID,
			Day:                 day.Day,
			Date:                day.Date,
			TotalActivities:     len(day.Schedules),
			CompletedActivities: completed,
			CompletionPercent:   service.DayCompletionPercent(day),
		})
	}

	c.JSON(http.StatusOK, payload)
}
