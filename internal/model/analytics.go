package model

// QuestionStat 是按问题文本分组的提问次数统计。
type QuestionStat struct {
	Question string `json:"question"`
	Freq     int64  `json:"freq"`
}

// UserChatStat 是按用户分组的提问量统计。
type UserChatStat struct {
	Name      string `json:"name"`
	CollegeID string `json:"collegeId"`
	ChatCount int64  `json:"chatCount"`
}

// DailyStat 是按自然日分组的提问量统计。
type DailyStat struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
