package service

import (
	"campus-bot-go/internal/model"
	"campus-bot-go/internal/repository"
)

// DashboardData 是管理面板展示的四张参考表内容。
type DashboardData struct {
	Schedule    []model.ScheduleEntry   `json:"schedule"`
	Restaurants []model.RestaurantEntry `json:"restaurants"`
	Hostels     []model.HostelEntry     `json:"hostels"`
	Gyms        []model.GymEntry        `json:"gyms"`
}

// AdminService 接口定义了管理员对参考数据的维护操作。
type AdminService interface {
	AddSchedule(course, day, timeOfDay, room string) error
	AddRestaurant(name, cuisine, address string, rating float64) error
	AddHostel(name, address string, capacity int) error
	AddGym(name, address, features string) error
	// DeleteReference 删除参考表中的一行。table 是去掉 "delete_" 前缀
	// 后的表名，必须命中固定的允许列表，否则在触达存储层之前被拒绝。
	DeleteReference(table string, id uint) (model.ReferenceKind, error)
	Dashboard() (*DashboardData, error)
}

// adminService 是 AdminService 接口的实现。
type adminService struct {
	refRepo repository.ReferenceRepository
}

// NewAdminService 创建一个新的 AdminService 实例。
func NewAdminService(refRepo repository.ReferenceRepository) AdminService {
	return &adminService{refRepo: refRepo}
}

// AddSchedule 新增一条课程表记录。
func (s *adminService) AddSchedule(course, day, timeOfDay, room string) error {
	return s.refRepo.CreateSchedule(&model.ScheduleEntry{
		Course: course,
		Day:    day,
		Time:   timeOfDay,
		Room:   room,
	})
}

// AddRestaurant 新增一条餐厅记录。
func (s *adminService) AddRestaurant(name, cuisine, address string, rating float64) error {
	return s.refRepo.CreateRestaurant(&model.RestaurantEntry{
		Name:    name,
		Cuisine: cuisine,
		Address: address,
		Rating:  rating,
	})
}

// AddHostel 新增一条宿舍记录。
func (s *adminService) AddHostel(name, address string, capacity int) error {
	return s.refRepo.CreateHostel(&model.HostelEntry{
		Name:     name,
		Address:  address,
		Capacity: capacity,
	})
}

// AddGym 新增一条健身房记录。
func (s *adminService) AddGym(name, address, features string) error {
	return s.refRepo.CreateGym(&model.GymEntry{
		Name:     name,
		Address:  address,
		Features: features,
	})
}

// DeleteReference 解析表名并删除指定行。
// 解析失败时直接返回 model.ErrUnknownReference，不触达存储层。
func (s *adminService) DeleteReference(table string, id uint) (model.ReferenceKind, error) {
	kind, err := model.ParseReferenceKind(table)
	if err != nil {
		return "", err
	}
	return kind, s.refRepo.Delete(kind, id)
}

// Dashboard 返回管理面板需要的四张表内容。
func (s *adminService) Dashboard() (*DashboardData, error) {
	schedule, err := s.refRepo.ListSchedule()
	if err != nil {
		return nil, err
	}
	restaurants, err := s.refRepo.ListRestaurants()
	if err != nil {
		return nil, err
	}
	hostels, err := s.refRepo.ListHostels()
	if err != nil {
		return nil, err
	}
	gyms, err := s.refRepo.ListGyms()
	if err != nil {
		return nil, err
	}
	return &DashboardData{
		Schedule:    schedule,
		Restaurants: restaurants,
		Hostels:     hostels,
		Gyms:        gyms,
	}, nil
}
