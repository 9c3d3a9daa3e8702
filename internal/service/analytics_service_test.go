package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-bot-go/internal/model"
)

func TestOverview(t *testing.T) {
	chatLogRepo := &fakeChatLogRepo{}
	for _, entry := range []model.ChatLog{
		{UserID: 1, Question: "q1", Answer: "a"},
		{UserID: 1, Question: "q1", Answer: "a"},
		{UserID: 2, Question: "q2", Answer: "a"},
	} {
		e := entry
		require.NoError(t, chatLogRepo.Create(&e))
	}

	svc := NewAnalyticsService(chatLogRepo)
	overview, err := svc.Overview()
	require.NoError(t, err)

	assert.Equal(t, int64(3), overview.TotalChats)
	assert.Equal(t, int64(2), overview.ActiveUsers)
	assert.NotEmpty(t, overview.TopQuestions)
}
