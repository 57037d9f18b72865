package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jadwalku/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupHandlerTest 直接挂载 handler，完整路由表由 router 包和 e2e 用例覆盖
func setupHandlerTest(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&db.DaySchedule{}, &db.Schedule{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	db.DB = gdb

	api := NewAPI(gdb)
	r := gin.New()
	r.GET("/api/schedules", api.ListSchedules)
	r.POST("/api/schedules", api.CreateSchedule)
	r.PUT("/api/schedules/:id", api.UpdateSchedule)
	r.DELETE("/api/schedules/:id", api.DeleteSchedule)
	r.GET("/api/stats", api.GetStats)
	r.POST("/api/auth/login", api.Login)

	return r, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func performJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCreateScheduleValidation(t *testing.T) {
	r, cleanup := setupHandlerTest(t)
	defer cleanup()

	rr := performJSON(t, r, http.MethodPost, "/api/schedules", gin.H{"date": "5 Januari 2026"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var payload map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode error payload: %v", err)
	}
	if payload["error"] != "Missing required fields: day and date" {
		t.Fatalf("unexpected error message: %q", payload["error"])
	}

	rr = performJSON(t, r, http.MethodPost, "/api/schedules", gin.H{"day": "Senin"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestCreateScheduleSuccess(t *testing.T) {
	r, cleanup := setupHandlerTest(t)
	defer cleanup()

	rr := performJSON(t, r, http.MethodPost, "/api/schedules", gin.H{"day": "Senin", "date": "5 Januari 2026"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var created dayPayload
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if created.Schedules == nil || len(created.Schedules) != 0 {
		t.Fatalf("expected empty schedules array, got %v", created.Schedules)
	}
}

func TestUpdateScheduleNotFound(t *testing.T) {
	r, cleanup := setupHandlerTest(t)
	defer cleanup()

	rr := performJSON(t, r, http.MethodPut, "/api/schedules/tidak-ada", gin.H{
		"day":  "Senin",
		"date": "5 Januari 2026",
		"schedules": []gin.H{
			{"startTime": "08:00", "endTime": "09:00", "activity": "Standup"},
		},
	})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestDeleteScheduleNotFound(t *testing.T) {
	r, cleanup := setupHandlerTest(t)
	defer cleanup()

	rr := performJSON(t, r, http.MethodDelete, "/api/schedules/tidak-ada", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestListSchedulesWithSearch(t *testing.T) {
	r, cleanup := setupHandlerTest(t)
	defer cleanup()

	performJSON(t, r, http.MethodPost, "/api/schedules", gin.H{"day": "Senin", "date": "5 Januari 2026"})
	performJSON(t, r, http.MethodPost, "/api/schedules", gin.H{"day": "Selasa", "date": "6 Januari 2026"})

	rr := performJSON(t, r, http.MethodGet, "/api/schedules", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var all []dayPayload
	if err := json.Unmarshal(rr.Body.Bytes(), &all); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 days, got %d", len(all))
	}

	rr = performJSON(t, r, http.MethodGet, "/api/schedules?search=selasa", nil)
	var filtered []dayPayload
	if err := json.Unmarshal(rr.Body.Bytes(), &filtered); err != nil {
		t.Fatalf("failed to decode filtered list: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Day != "Selasa" {
		t.Fatalf("expected only Selasa, got %v", filtered)
	}
}

func TestGetStatsEndpoint(t *testing.T) {
	r, cleanup := setupHandlerTest(t)
	defer cleanup()

	rr := performJSON(t, r, http.MethodPost, "/api/schedules", gin.H{
		"day":  "Senin",
		"date": "5 Januari 2026",
		"schedules": []gin.H{
			{"startTime": "08:00", "endTime": "09:00", "activity": "Standup", "completed": true},
			{"startTime": "10:00", "endTime": "11:00", "activity": "Review", "completed": false},
		},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = performJSON(t, r, http.MethodGet, "/api/stats", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var stats statsPayload
	if err := json.Unmarshal(rr.Body.Bytes(), &stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if stats.TotalDays != 1 || stats.TotalActivities != 2 || stats.CompletedActivities != 1 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.Productivity != 50 {
		t.Fatalf("expected productivity 50, got %d", stats.Productivity)
	}
	if stats.AveragePerDay != "2.0" {
		t.Fatalf("expected average 2.0, got %q", stats.AveragePerDay)
	}
	if stats.MostActiveDay == nil || stats.MostActiveDay.ActivityCount != 2 {
		t.Fatalf("unexpected most active day: %+v", stats.MostActiveDay)
	}
}

func TestLoginNotImplemented(t *testing.T) {
	r, cleanup := setupHandlerTest(t)
	defer cleanup()

	rr := performJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "budi", "password": "rahasia"})
	if rr.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", rr.Code)
	}
}
