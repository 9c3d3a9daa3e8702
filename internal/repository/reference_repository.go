package repository

import (
	"gorm.io/gorm"

	"campus-bot-go/internal/model"
)

// ReferenceRepository 接口定义了四张参考数据表的持久化操作。
type ReferenceRepository interface {
	// Snapshot 按主键升序读取四张表的全部内容，供上下文格式化使用。
	Snapshot() (*model.CampusSnapshot, error)

	CreateSchedule(entry *model.ScheduleEntry) error
	CreateRestaurant(entry *model.RestaurantEntry) error
	CreateHostel(entry *model.HostelEntry) error
	CreateGym(entry *model.GymEntry) error

	// Delete 根据枚举指定的表删除一行。表由 ReferenceKind 静态映射到
	// 对应的模型，外部文本不参与 SQL 构造。
	Delete(kind model.ReferenceKind, id uint) error

	// 管理面板的列表查询，排序与面板展示约定一致。
	ListSchedule() ([]model.ScheduleEntry, error)
	ListRestaurants() ([]model.RestaurantEntry, error)
	ListHostels() ([]model.HostelEntry, error)
	ListGyms() ([]model.GymEntry, error)
}

type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository 创建一个新的 ReferenceRepository 实例。
func NewReferenceRepository(db *gorm.DB) ReferenceRepository {
	return &referenceRepository{db: db}
}

// Snapshot 读取四张参考表的当前全量内容。
// 按主键升序排序，保证同一数据集的快照字节级可重现。
func (r *referenceRepository) Snapshot() (*model.CampusSnapshot, error) {
	var snap model.CampusSnapshot
	if err := r.db.Order("id ASC").Find(&snap.Schedule).Error; err != nil {
		return nil, err
	}
	if err := r.db.Order("id ASC").Find(&snap.Restaurants).Error; err != nil {
		return nil, err
	}
	if err := r.db.Order("id ASC").Find(&snap.Hostels).Error; err != nil {
		return nil, err
	}
	if err := r.db.Order("id ASC").Find(&snap.Gyms).Error; err != nil {
		return nil, err
	}
	return &snap, nil
}

// CreateSchedule 新增一条课程表记录。
func (r *referenceRepository) CreateSchedule(entry *model.ScheduleEntry) error {
	return r.db.Create(entry).Error
}

// CreateRestaurant 新增一条餐厅记录。
func (r *referenceRepository) CreateRestaurant(entry *model.RestaurantEntry) error {
	return r.db.Create(entry).Error
}

// CreateHostel 新增一条宿舍记录。
func (r *referenceRepository) CreateHostel(entry *model.HostelEntry) error {
	return r.db.Create(entry).Error
}

// CreateGym 新增一条健身房记录。
func (r *referenceRepository) CreateGym(entry *model.GymEntry) error {
	return r.db.Create(entry).Error
}

// Delete 按表枚举删除指定 id 的记录。
func (r *referenceRepository) Delete(kind model.ReferenceKind, id uint) error {
	switch kind {
	case model.ReferenceSchedule:
		return r.db.Delete(&model.ScheduleEntry{}, id).Error
	case model.ReferenceRestaurants:
		return r.db.Delete(&model.RestaurantEntry{}, id).Error
	case model.ReferenceHostels:
		return r.db.Delete(&model.HostelEntry{}, id).Error
	case model.ReferenceGyms:
		return r.db.Delete(&model.GymEntry{}, id).Error
	default:
		return model.ErrUnknownReference
	}
}

// ListSchedule 按上课日和时间排序返回全部课程。
func (r *referenceRepository) ListSchedule() ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.Order("day, time").Find(&entries).Error
	return entries, err
}

// ListRestaurants 按评分降序返回全部餐厅。
func (r *referenceRepository) ListRestaurants() ([]model.RestaurantEntry, error) {
	var entries []model.RestaurantEntry
	err := r.db.Order("rating DESC").Find(&entries).Error
	return entries, err
}

// ListHostels 按名称排序返回全部宿舍。
func (r *referenceRepository) ListHostels() ([]model.HostelEntry, error) {
	var entries []model.HostelEntry
	err := r.db.Order("name").Find(&entries).Error
	return entries, err
}

// ListGyms 按名称排序返回全部健身房。
func (r *referenceRepository) ListGyms() ([]model.GymEntry, error) {
	var entries []model.GymEntry
	err := r.db.Order("name").Find(&entries).Error
	return entries, err
}
