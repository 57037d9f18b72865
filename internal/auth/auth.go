package auth

import (
	"context"
	"errors"
)

// ErrNotImplemented 表示认证能力尚未上线
var ErrNotImplemented = errors.New("authentication not implemented")

// Session 描述一次已认证的会话
type Session struct {
	Username string
}

// Provider 抽象登录能力，核心日程逻辑不依赖任何具体实现
type Provider interface {
	Login(ctx context.Context, username, password string) (*Session, error)
}

// StubProvider 是当前唯一的实现，登录始终返回 ErrNotImplemented
type StubProvider struct{}

// Login 占位实现
func (StubProvider) Login(ctx context.Context, username, password string) (*Session, error) {
	return nil, ErrNotImplemented
}
