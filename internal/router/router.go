package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jadwalku/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(sessionSecret))
	r.Use(sessions.Sessions("jadwalku_session", store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/schedules", api.ListSchedules)
		apiGroup.POST("/schedules", api.CreateSchedule)
		apiGroup.PUT("/schedules/:id", api.UpdateSchedule)
		apiGroup.DELETE("/schedules/:id", api.DeleteSchedule)

		apiGroup.GET("/stats", api.GetStats)

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/login", api.Login)
			authGroup.POST("/logout", api.Logout)
		}
	}

	return r
}
