package service

import (
	"campus-bot-go/internal/model"
	"campus-bot-go/internal/repository"
)

// topLimit 与 trailingDays 是分析页的固定窗口。
const (
	topLimit     = 5
	trailingDays = 7
)

// AnalyticsOverview 是分析页一次性返回的全部统计。
type AnalyticsOverview struct {
	TotalChats   int64                `json:"totalChats"`
	ActiveUsers  int64                `json:"activeUsers"`
	TopQuestions []model.QuestionStat `json:"topQuestions"`
	TopUsers     []model.UserChatStat `json:"topUsers"`
	DailyStats   []model.DailyStat    `json:"dailyStats"`
}

// AnalyticsService 接口定义了使用统计的只读聚合。
type AnalyticsService interface {
	Overview() (*AnalyticsOverview, error)
}

type analyticsService struct {
	chatLogRepo repository.ChatLogRepository
}

// NewAnalyticsService 创建一个新的 AnalyticsService 实例。
func NewAnalyticsService(chatLogRepo repository.ChatLogRepository) AnalyticsService {
	return &analyticsService{chatLogRepo: chatLogRepo}
}

// Overview 汇总全部统计指标。
func (s *analyticsService) Overview() (*AnalyticsOverview, error) {
	totalChats, err := s.chatLogRepo.CountTotal()
	if err != nil {
		return nil, err
	}
	activeUsers, err := s.chatLogRepo.CountActiveUsers()
	if err != nil {
		return nil, err
	}
	topQuestions, err := s.chatLogRepo.TopQuestions(topLimit)
	if err != nil {
		return nil, err
	}
	topUsers, err := s.chatLogRepo.TopUsers(topLimit)
	if err != nil {
		return nil, err
	}
	dailyStats, err := s.chatLogRepo.DailyCounts(trailingDays)
	if err != nil {
		return nil, err
	}

	return &AnalyticsOverview{
		TotalChats:   totalChats,
		ActiveUsers:  activeUsers,
		TopQuestions: topQuestions,
		TopUsers:     topUsers,
		DailyStats:   dailyStats,
	}, nil
}
