package client

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/jadwalku/internal/db"
	"github.com/jadwalku/internal/locale"
	"github.com/jadwalku/internal/service"
)

// Store 维护整份日程集合的本地镜像
// 所有读操作返回深拷贝快照，调用方拿不到可变共享状态
// 写操作先走服务端，再用服务端返回的记录修正镜像，不做乐观回滚
// 同一日程上的并发整单更新为后写覆盖，与服务端契约一致
type Store struct {
	mu     sync.RWMutex
	client *Client

	days       []db.DaySchedule
	loaded     bool
	loading    bool
	refreshing bool
}

// DayUpdate 描述一次整单更新中要覆盖的字段
// 为 nil 的字段沿用镜像中的当前值
type DayUpdate struct {
	Day       *string
	Date      *string
	Schedules []db.Schedule
}

// NewStore 构造尚未加载数据的镜像
func NewStore(c *Client) *Store {
	return &Store{client: c, loading: true}
}

// Load 全量拉取并整体替换镜像
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	s.refreshing = true
	s.mu.Unlock()

	days, err := s.client.GetAll(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.refreshing = false
	if err != nil {
		return err
	}
	s.days = days
	s.loaded = true
	return nil
}

// Loading 报告首次加载是否仍在进行
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Refreshing 报告当前是否有一次显式刷新在途
func (s *Store) Refreshing() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshing
}

// Snapshot 返回镜像的深拷贝
func (s *Store) Snapshot() []db.DaySchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]db.DaySchedule, 0, len(s.days))
	for _, day := range s.days {
		snapshot = append(snapshot, copyDay(day))
	}
	return snapshot
}

// CreateDay 新建日程并把服务端返回的记录追加进镜像
// 发送的占位 ID 由时间戳推导，服务端会用自己分配的 ID 覆盖
func (s *Store) CreateDay(ctx context.Context, day, date string) (*db.DaySchedule, error) {
	created, err := s.client.Create(ctx, db.DaySchedule{
		ID:        strconv.FormatInt(time.Now().UnixMilli(), 10),
		Day:       day,
		Date:      date,
		Schedules: []db.Schedule{},
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.days = append(s.days, copyDay(*created))
	s.mu.Unlock()

	result := copyDay(*created)
	return &result, nil
}

// CreateDayForDate 根据所选日期推导印尼语星期名与长日期串后新建日程
// 创建端只选日期，day/date 两个展示串都由这里派生
func (s *Store) CreateDayForDate(ctx context.Context, date time.Time) (*db.DaySchedule, error) {
	return s.CreateDay(ctx, locale.DayName(date), locale.FormatDate(date))
}

// SnapshotByDate 返回按真实日期先后排序的快照
// 长日期串的字符串序不可靠，这里解析后按时间比较
func (s *Store) SnapshotByDate() []db.DaySchedule {
	snapshot := s.Snapshot()
	slices.SortStableFunc(snapshot, func(a, b db.DaySchedule) int {
		return locale.CompareDisplayDates(a.Date, b.Date)
	})
	return snapshot
}

// Search 在本地镜像上做关键词过滤，不触发网络往返
func (s *Store) Search(query string) []db.DaySchedule {
	return service.FilterDays(s.Snapshot(), query)
}

// UpdateDay 把合并后的完整字段发给服务端，并用响应整体替换镜像中的对应条目
// 镜像最终反映的是真正落库的内容，包括服务端重新分配的活动 ID
func (s *Store) UpdateDay(ctx context.Context, dayID string, update DayUpdate) (*db.DaySchedule, error) {
	payload := db.DaySchedule{ID: dayID, Schedules: []db.Schedule{}}
	if current, ok := s.find(dayID); ok {
		payload = current
	}

	if update.Day != nil {
		payload.Day = *update.Day
	}
	if update.Date != nil {
		payload.Date = *update.Date
	}
	if update.Schedules != nil {
		payload.Schedules = update.Schedules
	}

	updated, err := s.client.Update(ctx, dayID, payload)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.days {
		if s.days[i].ID == dayID {
			s.days[i] = copyDay(*updated)
			break
		}
	}
	s.mu.Unlock()

	result := copyDay(*updated)
	return &result, nil
}

// DeleteDay 删除日程并把它从镜像中移除
func (s *Store) DeleteDay(ctx context.Context, dayID string) error {
	if err := s.client.Delete(ctx, dayID); err != nil {
		return err
	}

	s.mu.Lock()
	s.days = slices.DeleteFunc(s.days, func(day db.DaySchedule) bool {
		return day.ID == dayID
	})
	s.mu.Unlock()
	return nil
}

// AddSchedule 向指定日程追加一条活动并整单提交
// 追加后按 StartTime 字符串排序；日程不在镜像中时静默跳过
func (s *Store) AddSchedule(ctx context.Context, dayID string, item db.Schedule) error {
	day, ok := s.find(dayID)
	if !ok {
		return nil
	}

	schedules := append(day.Schedules, item)
	slices.SortStableFunc(schedules, func(a, b db.Schedule) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})

	_, err := s.UpdateDay(ctx, dayID, DayUpdate{
		Day:       &day.Day,
		Date:      &day.Date,
		Schedules: schedules,
	})
	return err
}

// RemoveSchedule 去掉指定活动并整单提交
func (s *Store) RemoveSchedule(ctx context.Context, dayID, scheduleID string) error {
	day, ok := s.find(dayID)
	if !ok {
		return nil
	}

	schedules := slices.DeleteFunc(day.Schedules, func(item db.Schedule) bool {
		return item.ID == scheduleID
	})

	_, err := s.UpdateDay(ctx, dayID, DayUpdate{
		Day:       &day.Day,
		Date:      &day.Date,
		Schedules: schedules,
	})
	return err
}

// ToggleComplete 翻转指定活动的完成标记并整单提交
func (s *Store) ToggleComplete(ctx context.Context, dayID, scheduleID string) error {
	day, ok := s.find(dayID)
	if !ok {
		return nil
	}

	for i := range day.Schedules {
		if day.Schedules[i].ID == scheduleID {
			day.Schedules[i].Completed = !day.Schedules[i].Completed
		}
	}

	_, err := s.UpdateDay(ctx, dayID, DayUpdate{
		Day:       &day.Day,
		Date:      &day.Date,
		Schedules: day.Schedules,
	})
	return err
}

// find 返回镜像中指定日程的深拷贝
func (s *Store) find(dayID string) (db.DaySchedule, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, day := range s.days {
		if day.ID == dayID {
			return copyDay(day), true
		}
	}
	return db.DaySchedule{}, false
}

func copyDay(day db.DaySchedule) db.DaySchedule {
	day.Schedules = slices.Clone(day.Schedules)
	return day
}
