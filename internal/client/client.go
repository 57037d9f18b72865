package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jadwalku/internal/db"
)

// APIError 携带服务端返回的错误载荷
type APIError struct {
	StatusCode int
	Message    string `json:"error"`
	Details    string `json:"details"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%d): %s", e.Message, e.StatusCode, e.Details)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.StatusCode)
}

// Client 负责与日程服务之间的 HTTP 往返
// 不配置超时，由调用方通过 context 控制取消
type Client struct {
	baseURL string
	http    *http.Client
}

// New 构造指向 baseURL 的客户端
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// GetAll 拉取全部日程
func (c *Client) GetAll(ctx context.Context) ([]db.DaySchedule, error) {
	var days []db.DaySchedule
	if err := c.do(ctx, http.MethodGet, "/api/schedules", nil, &days); err != nil {
		return nil, err
	}
	return days, nil
}

// Create 新建日程，返回服务端落库后的记录
func (c *Client) Create(ctx context.Context, day db.DaySchedule) (*db.DaySchedule, error) {
	var created db.DaySchedule
	if err := c.do(ctx, http.MethodPost, "/api/schedules", day, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update 整单替换指定日程，返回服务端落库后的记录
func (c *Client) Update(ctx context.Context, dayID string, day db.DaySchedule) (*db.DaySchedule, error) {
	var updated db.DaySchedule
	if err := c.do(ctx, http.MethodPut, "/api/schedules/"+dayID, day, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete 删除指定日程
func (c *Client) Delete(ctx context.Context, dayID string) error {
	return c.do(ctx, http.MethodDelete, "/api/schedules/"+dayID, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "request failed"}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Details = err.Error()
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
