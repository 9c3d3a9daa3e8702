package model

import "time"

// ChatLog 代表一次单独的问答交互，仅追加，不更新。
type ChatLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Question  string    `gorm:"type:text;not null" json:"question"`
	Answer    string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (ChatLog) TableName() string {
	return "chat_logs"
}
