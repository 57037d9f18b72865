package handler

import (
	"github.com/jadwalku/internal/auth"
	"github.com/jadwalku/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	schedules *service.ScheduleService
	auth      auth.Provider
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB) *API {
	return &API{
		schedules: service.NewScheduleService(db),
		auth:      auth.StubProvider{},
	}
}
