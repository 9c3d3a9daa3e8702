package repository

import (
	"gorm.io/gorm"

	"campus-bot-go/internal/model"
)

// ModeratorRepository 接口定义了管理员账号的持久化操作。
// 管理员不通过应用流程注册，Create 仅用于启动时的种子写入。
type ModeratorRepository interface {
	Create(mod *model.Moderator) error
	FindByModID(modID string) (*model.Moderator, error)
	Count() (int64, error)
}

type moderatorRepository struct {
	db *gorm.DB
}

// NewModeratorRepository 创建一个新的 ModeratorRepository 实例。
func NewModeratorRepository(db *gorm.DB) ModeratorRepository {
	return &moderatorRepository{db: db}
}

// Create 在数据库中创建一个新的管理员记录。
func (r *moderatorRepository) Create(mod *model.Moderator) error {
	return r.db.Create(mod).Error
}

// FindByModID 根据管理员编号从数据库中查找一个管理员。
func (r *moderatorRepository) FindByModID(modID string) (*model.Moderator, error) {
	var mod model.Moderator
	err := r.db.Where("mod_id = ?", modID).First(&mod).Error
	if err != nil {
		return nil, err
	}
	return &mod, nil
}

// Count 返回管理员总数，用于判断是否需要写入种子数据。
func (r *moderatorRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&model.Moderator{}).Count(&total).Error
	return total, err
}
