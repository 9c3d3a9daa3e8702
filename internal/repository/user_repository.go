// Package repository 定义了与数据库进行数据交换的接口和实现。
package repository

import (
	"gorm.io/gorm"

	"campus-bot-go/internal/model"
)

// UserRepository 接口定义了学生账号的持久化操作。
type UserRepository interface {
	Create(user *model.User) error
	FindByCollegeID(collegeID string) (*model.User, error)
}

// userRepository 是 UserRepository 接口的 GORM 实现。
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建一个新的 UserRepository 实例。
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 在数据库中创建一个新的学生记录。
func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

// FindByCollegeID 根据学号从数据库中查找一个学生。
func (r *userRepository) FindByCollegeID(collegeID string) (*model.User, error) {
	var user model.User
	err := r.db.Where("college_id = ?", collegeID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
