package model

import "errors"

// ScheduleEntry 对应于数据库中的 'schedule' 表。
type ScheduleEntry struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Course string `gorm:"type:varchar(100);not null" json:"course"`
	Day    string `gorm:"type:varchar(20);not null" json:"day"`
	Time   string `gorm:"type:varchar(20);not null" json:"time"`
	Room   string `gorm:"type:varchar(50);not null" json:"room"`
}

func (ScheduleEntry) TableName() string {
	return "schedule"
}

// RestaurantEntry 对应于数据库中的 'restaurants' 表。
type RestaurantEntry struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"type:varchar(100);not null" json:"name"`
	Cuisine string  `gorm:"type:varchar(50);not null" json:"cuisine"`
	Address string  `gorm:"type:varchar(255);not null" json:"address"`
	Rating  float64 `gorm:"not null" json:"rating"`
}

func (RestaurantEntry) TableName() string {
	return "restaurants"
}

// HostelEntry 对应于数据库中的 'hostels' 表。
type HostelEntry struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Address  string `gorm:"type:varchar(255);not null" json:"address"`
	Capacity int    `gorm:"not null" json:"capacity"`
}

func (HostelEntry) TableName() string {
	return "hostels"
}

// GymEntry 对应于数据库中的 'gyms' 表。
type GymEntry struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Address  string `gorm:"type:varchar(255);not null" json:"address"`
	Features string `gorm:"type:text" json:"features"`
}

func (GymEntry) TableName() string {
	return "gyms"
}

// CampusSnapshot 是四张参考数据表在某一时刻的完整内容，
// 按固定顺序用于生成给模型的上下文文本。
type CampusSnapshot struct {
	Schedule    []ScheduleEntry
	Restaurants []RestaurantEntry
	Hostels     []HostelEntry
	Gyms        []GymEntry
}

// ReferenceKind 标识一张参考数据表。删除操作只能通过该枚举
// 选择目标表，外部输入永远不会直接拼进 SQL。
type ReferenceKind string

const (
	ReferenceSchedule    ReferenceKind = "schedule"
	ReferenceRestaurants ReferenceKind = "restaurants"
	ReferenceHostels     ReferenceKind = "hostels"
	ReferenceGyms        ReferenceKind = "gyms"
)

// ErrUnknownReference 表示传入的表名不在允许的参考表集合内。
var ErrUnknownReference = errors.New("unknown reference table")

// ParseReferenceKind 将外部提交的表名解析为枚举值。
// 只接受四张参考表的固定名称，其余一律拒绝。
func ParseReferenceKind(name string) (ReferenceKind, error) {
	switch ReferenceKind(name) {
	case ReferenceSchedule, ReferenceRestaurants, ReferenceHostels, ReferenceGyms:
		return ReferenceKind(name), nil
	default:
		return "", ErrUnknownReference
	}
}
