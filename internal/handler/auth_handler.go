package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/jadwalku/internal/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login 处理登录请求
// 当前唯一的认证实现是占位实现，请求会得到 501
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, "Invalid request body") {
		return
	}

	session, err := a.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrNotImplemented) {
			respondError(c, http.StatusNotImplemented, "Authentication is coming soon")
			return
		}
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// 设置会话
	s := sessions.Default(c)
	s.Set("username", session.Username)
	if err := s.Save(); err != nil {
		respondErrorDetails(c, http.StatusInternalServerError, "Failed to save session", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout 清空当前会话
func (a *API) Logout(c *gin.Context) {
	s := sessions.Default(c)
	s.Clear()
	s.Save()
	c.JSON(http.StatusOK, gin.H{"success": true})
}
