package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DaySchedule 定义了单日计划模型
// Day 为印尼语星期名（Senin、Selasa……），Date 为本地化长日期串（"5 Januari 2026"）
// 两者都在创建端由同一日期推导，Date 同时充当展示值与查找键
// Date 不做唯一约束，同一天允许存在多条记录
type DaySchedule struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Day       string     `json:"day"`
	Date      string     `json:"date"`
	Schedules []Schedule `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"schedules"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"-"`
}

// Schedule 记录一天内的单条活动
// StartTime/EndTime 为 HH:MM 墙钟字符串，不带时区，也不校验先后关系
// Activity 为自由文本标签，Completed 默认 false
type Schedule struct {
	ID        string `gorm:"primaryKey" json:"id"`
	DayID     string `gorm:"index" json:"-"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Activity  string `json:"activity"`
	Completed bool   `json:"completed"`
}

// BeforeCreate 在入库前补齐主键；服务层会先清空客户端的占位 ID
func (d *DaySchedule) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// BeforeCreate 为新活动分配主键；整单替换时上游会先清空 ID
func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
