package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jadwalku/internal/db"
	"github.com/jadwalku/internal/service"
)

type scheduleItem struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Activity  string `json:"activity"`
	Completed bool   `json:"completed"`
}

type dayPayload struct {
	ID        string         `json:"id"`
	Day       string         `json:"day"`
	Date      string         `json:"date"`
	Schedules []scheduleItem `json:"schedules"`
	CreatedAt time.Time      `json:"createdAt"`
}

type dayRequest struct {
	Day       string         `json:"day"`
	Date      string         `json:"date"`
	Schedules []scheduleItem `json:"schedules"`
}

// ListSchedules 返回全部日程 JSON，支持可选的 search 过滤
func (a *API) ListSchedules(c *gin.Context) {
	days, err := a.schedules.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch schedules")
		return
	}

	if query := c.Query("search"); query != "" {
		days = service.FilterDays(days, query)
	}

	items := make([]dayPayload, 0, len(days))
	for _, day := range days {
		items = append(items, dayToPayload(day))
	}

	c.JSON(http.StatusOK, items)
}

// CreateSchedule 新建日程
func (a *API) CreateSchedule(c *gin.Context) {
	var req dayRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}

	day, err := a.schedules.Create(service.DayInput{
		Day:       req.Day,
		Date:      req.Date,
		Schedules: toScheduleInputs(req.Schedules),
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			respondError(c, http.StatusBadRequest, "Missing required fields: day and date")
			return
		}
		respondErrorDetails(c, http.StatusInternalServerError, "Failed to create schedule", err)
		return
	}

	c.JSON(http.StatusCreated, dayToPayload(*day))
}

// UpdateSchedule 整单替换指定日程的活动列表
func (a *API) UpdateSchedule(c *gin.Context) {
	id := c.Param("id")

	var req dayRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}

	day, err := a.schedules.Replace(id, service.DayInput{
		Day:       req.Day,
		Date:      req.Date,
		Schedules: toScheduleInputs(req.Schedules),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			respondError(c, http.StatusBadRequest, "Missing required fields: day and date")
		case errors.Is(err, service.ErrDayNotFound):
			respondError(c, http.StatusNotFound, "Schedule not found")
		default:
			respondErrorDetails(c, http.StatusInternalServerError, "Failed to update schedule", err)
		}
		return
	}

	c.JSON(http.StatusOK, dayToPayload(*day))
}

// DeleteSchedule 删除日程，活动一并级联删除
func (a *API) DeleteSchedule(c *gin.Context) {
	id := c.Param("id")

	if err := a.schedules.Delete(id); err != nil {
		if errors.Is(err, service.ErrDayNotFound) {
			respondError(c, http.StatusNotFound, "Schedule not found")
			return
		}
		respondErrorDetails(c, http.StatusInternalServerError, "Failed to delete schedule", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Schedule deleted"})
}

func dayToPayload(day db.DaySchedule) dayPayload {
	items := make([]scheduleItem, 0, len(day.Schedules))
	for _, item := range day.Schedules {
		items = append(items, scheduleItem{
			ID:        item.ID,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
			Activity:  item.Activity,
			Completed: item.Completed,
		})
	}

	return dayPayload{
		ID:        day.ID,
		Day:       day.Day,
		Date:      day.Date,
		Schedules: items,
		CreatedAt: day.CreatedAt,
	}
}

func toScheduleInputs(items []scheduleItem) []service.ScheduleInput {
	inputs := make([]service.ScheduleInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.ScheduleInput{
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
			Activity:  item.Activity,
			Completed: item.Completed,
		})
	}
	return inputs
}
