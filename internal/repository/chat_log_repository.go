package repository

import (
	"time"

	"gorm.io/gorm"

	"campus-bot-go/internal/model"
)

// ChatLogRepository 接口定义了问答日志的持久化与聚合查询。
type ChatLogRepository interface {
	Create(entry *model.ChatLog) error
	// FindByUserAsc 按创建时间升序返回某个学生的全部问答记录。
	FindByUserAsc(userID uint) ([]model.ChatLog, error)

	// 以下为分析页使用的只读聚合。
	CountTotal() (int64, error)
	CountActiveUsers() (int64, error)
	TopQuestions(limit int) ([]model.QuestionStat, error)
	TopUsers(limit int) ([]model.UserChatStat, error)
	DailyCounts(days int) ([]model.DailyStat, error)
}

type chatLogRepository struct {
	db *gorm.DB
}

// NewChatLogRepository 创建一个新的 ChatLogRepository 实例。
func NewChatLogRepository(db *gorm.DB) ChatLogRepository {
	return &chatLogRepository{db: db}
}

// Create 追加一条问答记录。
func (r *chatLogRepository) Create(entry *model.ChatLog) error {
	return r.db.Create(entry).Error
}

// FindByUserAsc 按创建时间升序返回某个学生的全部问答记录。
func (r *chatLogRepository) FindByUserAsc(userID uint) ([]model.ChatLog, error) {
	var logs []model.ChatLog
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&logs).Error
	return logs, err
}

// CountTotal 返回问答总数。
func (r *chatLogRepository) CountTotal() (int64, error) {
	var total int64
	err := r.db.Model(&model.ChatLog{}).Count(&total).Error
	return total, err
}

// CountActiveUsers 返回提问过的不同学生数。
func (r *chatLogRepository) CountActiveUsers() (int64, error) {
	var total int64
	err := r.db.Model(&model.ChatLog{}).Distinct("user_id").Count(&total).Error
	return total, err
}

// TopQuestions 返回出现频率最高的问题文本及其次数。
func (r *chatLogRepository) TopQuestions(limit int) ([]model.QuestionStat, error) {
	var stats []model.QuestionStat
	err := r.db.Model(&model.ChatLog{}).
		Select("question, COUNT(*) AS freq").
		Group("question").
		Order("freq DESC").
		Limit(limit).
		Scan(&stats).Error
	return stats, err
}

// TopUsers 返回提问量最高的学生（姓名 + 学号 + 次数）。
func (r *chatLogRepository) TopUsers(limit int) ([]model.UserChatStat, error) {
	var stats []model.UserChatStat
	err := r.db.Model(&model.User{}).
		Select("users.name, users.college_id, COUNT(chat_logs.id) AS chat_count").
		Joins("JOIN chat_logs ON users.id = chat_logs.user_id").
		Group("users.id").
		Order("chat_count DESC").
		Limit(limit).
		Scan(&stats).Error
	return stats, err
}

// DailyCounts 返回最近 days 天内按自然日分组的问答数，新日期在前。
func (r *chatLogRepository) DailyCounts(days int) ([]model.DailyStat, error) {
	since := time.Now().AddDate(0, 0, -days)
	var stats []model.DailyStat
	err := r.db.Model(&model.ChatLog{}).
		Select("DATE(created_at) AS date, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("date DESC").
		Scan(&stats).Error
	return stats, err
}
