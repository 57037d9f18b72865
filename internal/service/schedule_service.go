package service

import (
	"errors"
	"fmt"
	"html"
	"slices"
	"strings"

	"github.com/jadwalku/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrDayNotFound 在指定日程不存在时返回
	ErrDayNotFound = errors.New("schedule not found")
	// ErrMissingFields 在缺少 day/date 必填字段时返回
	ErrMissingFields = errors.New("missing required fields: day and date")
)

// labelPolicy 用于剥离自由文本中的标记，入库前统一清洗
var labelPolicy = bluemonday.StrictPolicy()

// ScheduleService 负责日程数据的增删改查
// 更新采用整单替换：每次写入都会丢弃旧活动并重建整份列表
// 两个并发的整单更新之间为后写覆盖，这是接口契约的一部分

type ScheduleService struct {
	db *gorm.DB
}

// ScheduleInput 定义单条活动的可写字段
type ScheduleInput struct {
	StartTime string
	EndTime   string
	Activity  string
	Completed bool
}

// DayInput 定义创建/替换日程时的输入对象
type DayInput struct {
	Day       string
	Date      string
	Schedules []ScheduleInput
}

// NewScheduleService 构造 ScheduleService
func NewScheduleService(gdb *gorm.DB) *ScheduleService {
	return &ScheduleService{db: gdb}
}

// List 返回全部日程，按创建时间倒序，活动按 StartTime 字符串升序
func (s *ScheduleService) List() ([]db.DaySchedule, error) {
	var days []db.DaySchedule

	if err := s.db.
		Preload("Schedules", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("start_time ASC")
		}).
		Order("created_at DESC").
		Find(&days).Error; err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	return days, nil
}

// Create 新建日程，可附带初始活动列表
func (s *ScheduleService) Create(input DayInput) (*db.DaySchedule, error) {
	if err := validateDayInput(input); err != nil {
		return nil, err
	}

	day := db.DaySchedule{
		Day:       sanitizeLabel(input.Day),
		Date:      sanitizeLabel(input.Date),
		Schedules: toScheduleRows(input.Schedules),
	}

	if err := s.db.Create(&day).Error; err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	sortSchedules(day.Schedules)
	return &day, nil
}

// Replace 整单替换指定日程的活动列表
// 旧活动全部删除，新列表整体重建并分配新 ID，删除与重建在同一事务内完成
func (s *ScheduleService) Replace(id string, input DayInput) (*db.DaySchedule, error) {
	if err := validateDayInput(input); err != nil {
		return nil, err
	}

	var day db.DaySchedule

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&day, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDayNotFound
			}
			return fmt.Errorf("find schedule: %w", err)
		}

		if err := tx.Where("day_id = ?", id).Delete(&db.Schedule{}).Error; err != nil {
			return fmt.Errorf("clear activities: %w", err)
		}

		day.Day = sanitizeLabel(input.Day)
		day.Date = sanitizeLabel(input.Date)

		if err := tx.Save(&day).Error; err != nil {
			return fmt.Errorf("update schedule: %w", err)
		}

		rows := toScheduleRows(input.Schedules)
		for i := range rows {
			rows[i].DayID = id
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return fmt.Errorf("insert activities: %w", err)
			}
		}

		day.Schedules = rows
		return nil
	}); err != nil {
		return nil, err
	}

	sortSchedules(day.Schedules)
	return &day, nil
}

// Delete 删除日程及其全部活动
func (s *ScheduleService) Delete(id string) error {
	var day db.DaySchedule
	if err := s.db.First(&day, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrDayNotFound
		}
		return fmt.Errorf("find schedule: %w", err)
	}

	if err := s.db.Select(clause.Associations).Delete(&day).Error; err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}

	return nil
}

// FilterDays 按关键词过滤日程集合，命中星期名、日期串或任一活动标签即保留
func FilterDays(days []db.DaySchedule, query string) []db.DaySchedule {
	trimmed := strings.ToLower(strings.TrimSpace(query))
	if trimmed == "" {
		return days
	}

	matched := make([]db.DaySchedule, 0, len(days))
	for _, day := range days {
		if strings.Contains(strings.ToLower(day.Day), trimmed) ||
			strings.Contains(strings.ToLower(day.Date), trimmed) ||
			slices.ContainsFunc(day.Schedules, func(item db.Schedule) bool {
				return strings.Contains(strings.ToLower(item.Activity), trimmed)
			}) {
			matched = append(matched, day)
		}
	}

	return matched
}

func validateDayInput(input DayInput) error {
	if strings.TrimSpace(input.Day) == "" || strings.TrimSpace(input.Date) == "" {
		return ErrMissingFields
	}
	return nil
}

// toScheduleRows 构造全新的活动行，入库时由 BeforeCreate 分配 ID
func toScheduleRows(items []ScheduleInput) []db.Schedule {
	rows := make([]db.Schedule, 0, len(items))
	for _, item := range items {
		rows = append(rows, db.Schedule{
			StartTime: strings.TrimSpace(item.StartTime),
			EndTime:   strings.TrimSpace(item.EndTime),
			Activity:  sanitizeLabel(item.Activity),
			Completed: item.Completed,
		})
	}
	return rows
}

// sortSchedules 按 StartTime 的字符串序排序
// 纯文本比较，"9:00" 会排在 "10:00" 之后，这一顺序是对外可见的契约
func sortSchedules(items []db.Schedule) {
	slices.SortStableFunc(items, func(a, b db.Schedule) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})
}

// sanitizeLabel 剥离标记后还原实体，得到干净的纯文本
func sanitizeLabel(raw string) string {
	return html.UnescapeString(labelPolicy.Sanitize(strings.TrimSpace(raw)))
}
