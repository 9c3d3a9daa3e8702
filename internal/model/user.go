// Package model 包含了应用的数据模型定义。
package model

// User 对应于数据库中的 'users' 表，即学生账号。
// 注册后不可变更，应用不提供删除入口。
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CollegeID    string `gorm:"type:varchar(64);uniqueIndex;not null" json:"collegeId"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (User) TableName() string {
	return "users"
}

// Moderator 对应于数据库中的 'moderators' 表。
// 管理员账号由种子数据带外写入，不通过应用自身的流程创建。
type Moderator struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	ModID        string `gorm:"type:varchar(64);uniqueIndex;not null" json:"modId"`
	Name         string `gorm:"type:varchar(100);not null" json:"name"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
}

// TableName 指定了此模型在数据库中对应的表名。
func (Moderator) TableName() string {
	return "moderators"
}
